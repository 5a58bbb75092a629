package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage persists uploaded files on disk under a base directory. File
// paths recorded in the database include the directory name, so they can be
// handed back to clients as opaque handles.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage ensures the upload directory exists and returns a handle.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// SaveStream writes the reader's contents under the given filename and
// returns the stored path (directory included).
func (s *LocalStorage) SaveStream(filename string, r io.Reader) (string, error) {
	path := filepath.Join(s.baseDir, filename)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer file.Close() //nolint:errcheck
	if _, err := io.Copy(file, r); err != nil {
		return "", fmt.Errorf("write upload stream: %w", err)
	}
	return path, nil
}

// Open returns a read-only handle for a stored file by bare filename.
func (s *LocalStorage) Open(filename string) (*os.File, error) {
	// Reject traversal out of the upload dir before touching the disk.
	if filepath.Base(filename) != filename {
		return nil, fmt.Errorf("open upload file: invalid name %q", filename)
	}
	file, err := os.Open(filepath.Join(s.baseDir, filename))
	if err != nil {
		return nil, fmt.Errorf("open upload file: %w", err)
	}
	return file, nil
}

// Dir exposes the base directory path.
func (s *LocalStorage) Dir() string {
	return s.baseDir
}

// SanitizeFilename reduces a client-supplied filename to a safe flat name:
// path separators are dropped, whitespace becomes underscores and anything
// outside [A-Za-z0-9._-] is removed.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ' || r == '\t':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	return strings.Trim(b.String(), "._")
}

// Extension returns the lowercased text after the final dot, or "" when the
// name has no extension.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}
