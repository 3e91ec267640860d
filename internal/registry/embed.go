package registry

import (
	"context"
	"embed"
	"io/fs"
	"path"
)

//go:embed catalog/manifest.json catalog/components
var embeddedCatalog embed.FS

// FSSource reads a registry laid out in a file system.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource returns a Source reading manifest.json and components/ from fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

// EmbeddedSource returns the Source for the widget catalog compiled into termkit.
func EmbeddedSource() *FSSource {
	sub, err := fs.Sub(embeddedCatalog, "catalog")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return NewFSSource(sub)
}

// Embedded returns a Registry over the embedded catalog.
func Embedded() *Registry {
	return New(EmbeddedSource(), nil)
}

// ReadManifest implements Source.
func (s *FSSource) ReadManifest(ctx context.Context) ([]byte, error) {
	return fs.ReadFile(s.fsys, "manifest.json")
}

// ReadFile implements Source.
func (s *FSSource) ReadFile(ctx context.Context, component, file string) ([]byte, error) {
	return fs.ReadFile(s.fsys, path.Join("components", component, file))
}
