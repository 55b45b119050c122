package i18n

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a translation file into tables keyed by language code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension reports whether files with ext (".yaml" or
	// "yaml") are handled.
	SupportsFileExtension(ext string) bool
}

// YAMLParser reads files whose top-level keys are language codes:
//
//	ko:
//	  common:
//	    nav:
//	      courses: 강의
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (*YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrInvalidYAMLStructure)
	}

	tables := make(map[string]map[string]any, len(doc))
	for lang, v := range doc {
		table, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q holds %T, want a mapping", ErrInvalidYAMLStructure, lang, v)
		}
		tables[lang] = table
	}
	return tables, nil
}

func (*YAMLParser) SupportsFileExtension(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		return true
	}
	return false
}

// NewParserForFile picks a parser by file extension, or returns nil.
func NewParserForFile(filename string) Parser {
	if p := NewYAMLParser(); p.SupportsFileExtension(path.Ext(filename)) {
		return p
	}
	return nil
}
