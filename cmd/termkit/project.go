package main

import (
	"context"
	"log/slog"

	"github.com/vango-dev/termkit/internal/config"
	"github.com/vango-dev/termkit/internal/engine"
	"github.com/vango-dev/termkit/internal/ledger"
	"github.com/vango-dev/termkit/internal/registry"
	"github.com/vango-dev/termkit/internal/store"
)

// project is a loaded termkit project: its configuration, ledger and an
// engine wired to the configured registry.
type project struct {
	cfg      *config.Config
	store    *store.Dir
	ledger   *ledger.Ledger
	provider registry.Provider
	engine   *engine.Engine
}

// openProject loads termkit.json from the working directory and the ledger
// it points to.
func (a *app) openProject() (*project, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return nil, err
	}
	return a.openProjectWith(cfg)
}

func (a *app) openProjectWith(cfg *config.Config) (*project, error) {
	fsys := store.NewDir(cfg.Dir())

	l, err := ledger.Load(fsys, cfg.LedgerPath())
	if err != nil {
		return nil, err
	}

	provider := newProvider(cfg, a.logger)

	a.logger.Debug("opened project",
		"root", fsys.Root(),
		"components", cfg.ComponentsPath(),
		"ledger", cfg.LedgerPath(),
		"registry", cfg.Registry.Source,
		"installed", len(l.Components))

	return &project{
		cfg:      cfg,
		store:    fsys,
		ledger:   l,
		provider: provider,
		engine: engine.New(provider, fsys, cfg.ComponentsPath(),
			engine.WithLogger(a.logger),
			engine.WithTelemetry(a.telemetry)),
	}, nil
}

// saveLedger writes the ledger back. Commands call it once, after the
// engine operation returns.
func (p *project) saveLedger() error {
	return p.ledger.Save(p.store, p.cfg.LedgerPath())
}

// newProvider returns the registry selected by cfg.
func newProvider(cfg *config.Config, logger *slog.Logger) registry.Provider {
	var source registry.Source
	switch cfg.Registry.Source {
	case config.SourceHTTP:
		source = registry.NewHTTPSource(cfg.Registry.URL, nil)
	case config.SourceS3:
		client := registry.NewS3Client(cfg.Registry.Region, cfg.Registry.Endpoint)
		source = registry.NewS3Source(client, cfg.Registry.Bucket, cfg.Registry.Prefix)
	default:
		source = registry.EmbeddedSource()
	}
	return registry.New(source, logger)
}

// catalog returns the configured registry's manifest.
func (p *project) catalog(ctx context.Context) (*registry.Manifest, error) {
	return p.provider.Catalog(ctx)
}
