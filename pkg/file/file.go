package file

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
)

// Object describes a stored object.
type Object struct {
	Path        string
	Size        int64
	ContentType string
}

// Entry represents a file or directory entry.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Storage is the publish target for exported pages and assets.
type Storage interface {
	// Put writes body to path, replacing any existing object.
	Put(ctx context.Context, path string, body io.Reader, contentType string) (*Object, error)
	// Exists checks if a file or directory exists.
	Exists(ctx context.Context, path string) bool
	// List returns all entries in a directory (non-recursive).
	List(ctx context.Context, dir string) ([]Entry, error)
	// DeleteDir recursively removes a directory and all its contents.
	DeleteDir(ctx context.Context, dir string) error
	// URL returns the public URL for a file.
	URL(path string) string
}

// ContentType guesses the MIME type from the file extension.
// Paths without a known extension are treated as HTML pages.
func ContentType(p string) string {
	ext := path.Ext(p)
	if ext == "" {
		return "text/html; charset=utf-8"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// CleanKey normalises a slash separated object key and rejects traversal.
// The result never starts with a slash; the root is "".
func CleanKey(p string) (string, error) {
	for seg := range strings.SplitSeq(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %s", ErrInvalidPath, p)
		}
	}
	key := strings.TrimPrefix(path.Clean("/"+p), "/")
	return key, nil
}

// PagePath maps a site route to the object key of its rendered page:
// "/" becomes "index.html", "/en/courses" becomes "en/courses/index.html".
// Routes naming a file, such as "/static/site.css", keep their key.
func PagePath(route string) (string, error) {
	key, err := CleanKey(route)
	if err != nil {
		return "", err
	}
	switch {
	case key == "":
		return "index.html", nil
	case strings.Contains(path.Base(key), "."):
		return key, nil
	}
	return key + "/index.html", nil
}
