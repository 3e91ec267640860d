package engine

import (
	"context"
	"path"

	"github.com/vango-dev/termkit/internal/drift"
	"github.com/vango-dev/termkit/internal/errors"
	"github.com/vango-dev/termkit/internal/ledger"
	"go.opentelemetry.io/otel/attribute"
)

// Compare classifies every file of an installed component. It reads the
// project and the registry but writes nothing and leaves the ledger alone.
func (e *Engine) Compare(ctx context.Context, l *ledger.Ledger, name string) (*CompareReport, error) {
	ctx, span := e.telemetry.Start(ctx, "compare", attribute.String("termkit.component", name))
	report, err := e.compare(ctx, l, name)
	span.End(err)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (e *Engine) compare(ctx context.Context, l *ledger.Ledger, name string) (*CompareReport, error) {
	entry, ok := l.Get(name)
	if !ok {
		return nil, errors.New("E130").
			WithDetailf("Component '%s' is not in the ledger", name).
			WithSuggestion("Run 'termkit add " + name + "' first")
	}

	d, err := e.provider.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	upstream, err := e.provider.Fetch(ctx, d)
	if err != nil {
		return nil, err
	}

	report := &CompareReport{
		Name:             name,
		InstalledVersion: entry.Version,
		UpstreamVersion:  d.Version,
	}

	dir := e.ComponentDir(name)
	declared := make(map[string]bool, len(d.Files))
	for _, file := range d.Files {
		declared[file] = true

		local, err := e.readLocal(path.Join(dir, file))
		if err != nil {
			return nil, err
		}

		fd := FileDrift{
			File:     file,
			Local:    local,
			Baseline: entry.Baseline(file),
			Upstream: fingerprintOf(upstream, file),
		}
		fd.State = drift.Classify(fd.Local, fd.Baseline, fd.Upstream)
		report.Files = append(report.Files, fd)
	}

	onDisk, err := e.store.ListFiles(dir)
	if err != nil {
		return nil, errors.New("E140").
			WithDetail("Could not list " + dir).
			Wrap(err)
	}
	for _, file := range onDisk {
		if declared[file] {
			continue
		}
		local, err := e.readLocal(path.Join(dir, file))
		if err != nil {
			return nil, err
		}
		report.Files = append(report.Files, FileDrift{
			File:     file,
			State:    drift.LocalOnly,
			Local:    local,
			Baseline: entry.Baseline(file),
		})
	}

	for _, f := range report.Files {
		e.telemetry.Drift(string(f.State))
	}
	e.logger.Debug("compared component",
		"name", name,
		"installed", report.InstalledVersion,
		"upstream", report.UpstreamVersion,
		"files", len(report.Files))

	return report, nil
}
