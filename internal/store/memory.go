package store

import (
	"io/fs"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-memory file store.
type Memory struct {
	mu    sync.Mutex
	files map[string][]byte

	// FailWrites makes WriteFile fail for the listed paths.
	FailWrites map[string]error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// ReadFile implements FS.
func (m *Memory) ReadFile(name string) ([]byte, error) {
	cleaned, err := Clean(name)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[cleaned]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// WriteFile implements FS.
func (m *Memory) WriteFile(name string, data []byte) error {
	cleaned, err := Clean(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FailWrites[cleaned]; ok {
		return &fs.PathError{Op: "write", Path: name, Err: err}
	}
	m.files[cleaned] = append([]byte(nil), data...)
	return nil
}

// ListFiles implements FS.
func (m *Memory) ListFiles(dir string) ([]string, error) {
	cleaned, err := Clean(dir)
	if err != nil {
		return nil, err
	}
	prefix := cleaned + "/"
	if cleaned == "." {
		prefix = ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var files []string
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			files = append(files, strings.TrimPrefix(name, prefix))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Remove deletes name if present.
func (m *Memory) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, name)
}

// Snapshot returns a copy of every file in the store.
func (m *Memory) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]string, len(m.files))
	for name, data := range m.files {
		out[name] = string(data)
	}
	return out
}
