package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single file on disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
func NewFileAdapter(parser Parser, path string) (*FileAdapter, error) {
	if parser == nil {
		return nil, ErrNilParser
	}
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFailedToReadFile)
	}
	return &FileAdapter{parser: parser, path: path}, nil
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	return parseFile(ctx, a.parser, a.path, content)
}

// FSAdapter loads every file in one directory of an fs.FS that the parser
// accepts, merging their tables per language. It serves both embedded
// translations and os.DirFS directories.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter instance. dir "." reads the root of fsys.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) (*FSAdapter, error) {
	if parser == nil {
		return nil, ErrNilParser
	}
	if fsys == nil {
		return nil, fmt.Errorf("%w: nil filesystem", ErrFailedToReadDirectory)
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}, nil
}

// Load implements the TranslationAdapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	processed := 0

	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := parseFile(ctx, a.parser, filePath, content)
		if err != nil {
			return nil, err
		}

		for lang, table := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			maps.Copy(all[lang], table)
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}

	return all, nil
}

func parseFile(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}

	translations, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %s", ErrFailedToParseFile, name), err)
	}
	return translations, nil
}
