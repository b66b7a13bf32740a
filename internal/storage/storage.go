// Package storage persists interview documents under a configured root
// directory with sanitized, collision-free filenames.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Store saves documents below a root directory.
type Store struct {
	root string
}

// New creates a Store rooted at dir. The directory is created on first save.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the store's root directory.
func (s *Store) Root() string { return s.root }

// SaveResult describes a saved document.
type SaveResult struct {
	DocumentName string
	Path         string
	BytesWritten int
}

// Save writes the document content under a sanitized version of name,
// deriving a unique filename when the preferred one is taken.
func (s *Store) Save(content, name string) (*SaveResult, error) {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return nil, fmt.Errorf("creating save root: %w", err)
	}

	path, err := s.uniquePath(SanitizeFilename(name))
	if err != nil {
		return nil, err
	}

	data := []byte(content)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	return &SaveResult{
		DocumentName: filepath.Base(path),
		Path:         path,
		BytesWritten: len(data),
	}, nil
}

// SanitizeFilename normalizes a potentially user-provided name to a safe
// filename: directory segments are stripped, unsafe characters collapse to
// underscores, and a .yml suffix is enforced.
func SanitizeFilename(name string) string {
	candidate := strings.TrimSpace(name)
	if candidate == "" {
		return "untitled.yml"
	}

	candidate = filepath.Base(candidate)
	if candidate == "." || candidate == ".." || candidate == string(filepath.Separator) {
		return "untitled.yml"
	}
	candidate = unsafeRe.ReplaceAllString(candidate, "_")

	lower := strings.ToLower(candidate)
	if !strings.HasSuffix(lower, ".yml") && !strings.HasSuffix(lower, ".yaml") {
		if candidate == "" {
			candidate = "untitled"
		}
		candidate += ".yml"
	}

	return candidate
}

// uniquePath returns a path under root that does not exist yet, appending
// -1, -2, ... before the extension when needed.
func (s *Store) uniquePath(filename string) (string, error) {
	path := filepath.Join(s.root, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".yml"
	}
	stem := strings.TrimSuffix(filename, ext)

	for i := 1; i < 10000; i++ {
		candidate := filepath.Join(s.root, fmt.Sprintf("%s-%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("unable to derive a unique filename for %s", filename)
}
