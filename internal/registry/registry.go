package registry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vango-dev/termkit/internal/errors"
)

// Files maps a component's file names to their content.
type Files map[string][]byte

// Provider is the component source consumed by the sync engine.
type Provider interface {
	// Catalog returns the registry manifest.
	Catalog(ctx context.Context) (*Manifest, error)

	// Lookup returns the validated descriptor for name. Unknown names
	// yield an E110 error.
	Lookup(ctx context.Context, name string) (*Descriptor, error)

	// Fetch returns the content of every file the descriptor lists.
	// Failures yield an E112 error.
	Fetch(ctx context.Context, d *Descriptor) (Files, error)
}

// Source reads raw registry data laid out as
//
//	manifest.json
//	components/<name>/<file>
type Source interface {
	ReadManifest(ctx context.Context) ([]byte, error)
	ReadFile(ctx context.Context, component, file string) ([]byte, error)
}

// Registry is a Provider backed by a Source. The manifest is read once and
// cached for the lifetime of the Registry, which is one command invocation.
type Registry struct {
	source Source
	logger *slog.Logger

	mu       sync.Mutex
	manifest *Manifest
}

// New creates a new Registry.
func New(source Source, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		source: source,
		logger: logger.With("component", "registry"),
	}
}

// Catalog implements Provider.
func (r *Registry) Catalog(ctx context.Context) (*Manifest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.manifest != nil {
		return r.manifest, nil
	}

	data, err := r.source.ReadManifest(ctx)
	if err != nil {
		return nil, errors.FromError(err, "E111")
	}

	manifest, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("loaded manifest",
		"registry", manifest.Registry,
		"components", len(manifest.Components))

	r.manifest = manifest
	return manifest, nil
}

// Lookup implements Provider.
func (r *Registry) Lookup(ctx context.Context, name string) (*Descriptor, error) {
	manifest, err := r.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return lookup(manifest, name)
}

// Fetch implements Provider.
func (r *Registry) Fetch(ctx context.Context, d *Descriptor) (Files, error) {
	files := make(Files, len(d.Files))
	for _, file := range d.Files {
		content, err := r.source.ReadFile(ctx, d.Name, file)
		if err != nil {
			return nil, errors.New("E112").
				WithDetailf("Could not download %s/%s", d.Name, file).
				Wrap(err)
		}
		files[file] = content
	}

	r.logger.Debug("fetched component", "name", d.Name, "files", len(files))
	return files, nil
}

func lookup(manifest *Manifest, name string) (*Descriptor, error) {
	d, ok := manifest.Components[name]
	if !ok {
		return nil, errors.New("E110").
			WithDetail("Component '" + name + "' not found in registry").
			WithSuggestion("Run 'termkit list' to see available components")
	}
	if d.Name != name {
		return nil, errors.New("E113").
			WithDetailf("Manifest entry '%s' is named '%s'", name, d.Name).
			WithSuggestion("The manifest key and the descriptor name must match")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
