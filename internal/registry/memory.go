package registry

import (
	"context"
	"sync"

	"github.com/vango-dev/termkit/internal/errors"
)

// Memory is an in-memory Provider. Changes made with Set and Remove are
// visible to the next call, which lets tests move "upstream" between
// operations.
type Memory struct {
	mu         sync.Mutex
	components map[string]*memoryComponent

	// FetchErr makes Fetch fail for the named components.
	FetchErr map[string]error
}

type memoryComponent struct {
	desc  Descriptor
	files map[string]string
}

// NewMemory returns an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{components: make(map[string]*memoryComponent)}
}

// Set publishes a component. The descriptor's file list is taken from d;
// files supplies their content.
func (m *Memory) Set(d Descriptor, files map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	content := make(map[string]string, len(files))
	for k, v := range files {
		content[k] = v
	}
	d.Files = append([]string(nil), d.Files...)
	m.components[d.Name] = &memoryComponent{desc: d, files: content}
}

// Remove unpublishes a component.
func (m *Memory) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.components, name)
}

// Catalog implements Provider.
func (m *Memory) Catalog(ctx context.Context) (*Manifest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	manifest := &Manifest{
		ManifestVersion: ManifestVersion,
		Registry:        "memory",
		Components:      make(map[string]*Descriptor, len(m.components)),
	}
	for name, c := range m.components {
		d := c.desc
		manifest.Components[name] = &d
	}
	return manifest, nil
}

// Lookup implements Provider.
func (m *Memory) Lookup(ctx context.Context, name string) (*Descriptor, error) {
	manifest, err := m.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return lookup(manifest, name)
}

// Fetch implements Provider.
func (m *Memory) Fetch(ctx context.Context, d *Descriptor) (Files, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.FetchErr[d.Name]; ok {
		return nil, errors.New("E112").
			WithDetailf("Could not download %s", d.Name).
			Wrap(err)
	}

	c, ok := m.components[d.Name]
	if !ok {
		return nil, errors.New("E112").
			WithDetailf("Component '%s' disappeared from the registry", d.Name)
	}

	files := make(Files, len(d.Files))
	for _, file := range d.Files {
		content, ok := c.files[file]
		if !ok {
			return nil, errors.New("E112").
				WithDetailf("Could not download %s/%s", d.Name, file)
		}
		files[file] = []byte(content)
	}
	return files, nil
}
