// Package store provides the project file store that vendored components are
// written to.
//
// Paths are slash-separated and relative to the store root. Dir maps them onto
// a directory on disk; Memory keeps them in a map so the sync engine can be
// exercised without touching the file system.
package store

import (
	"io/fs"
	"path"
	"strings"
)

// FS is the project file store used by the sync engine.
type FS interface {
	// ReadFile returns the content of name. A missing file yields an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to name, creating parent directories.
	WriteFile(name string, data []byte) error

	// ListFiles returns the regular files below dir as paths relative to dir,
	// sorted. A missing directory yields an empty list and no error.
	ListFiles(dir string) ([]string, error)
}

// Clean normalizes a store path and rejects paths that escape the root.
func Clean(name string) (string, error) {
	if name == "" || strings.Contains(name, "\\") || path.IsAbs(name) {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	cleaned := path.Clean(name)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return cleaned, nil
}
