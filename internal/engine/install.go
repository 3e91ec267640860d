package engine

import (
	"context"

	"github.com/vango-dev/termkit/internal/errors"
	"github.com/vango-dev/termkit/internal/ledger"
	"github.com/vango-dev/termkit/internal/registry"
	"go.opentelemetry.io/otel/attribute"
)

// InstallOptions carries the user's intent for Install.
type InstallOptions struct {
	// Overwrite replaces components whose directory already has files.
	Overwrite bool

	// AssumeYes answers every confirmation with yes.
	AssumeYes bool

	// Confirm is asked before replacing an existing component directory.
	// A nil Confirm declines.
	Confirm func(name string) bool
}

func (o InstallOptions) allowOverwrite(name string) bool {
	if o.Overwrite || o.AssumeYes {
		return true
	}
	return o.Confirm != nil && o.Confirm(name)
}

// Install copies the named components and everything they require into the
// project.
func (e *Engine) Install(ctx context.Context, l *ledger.Ledger, names []string, opts InstallOptions) (*InstallReport, error) {
	ctx, span := e.telemetry.Start(ctx, "install", attribute.StringSlice("termkit.components", names))

	report := &InstallReport{}
	err := e.install(ctx, l, names, opts, report)

	span.SetAttributes(attribute.Int("termkit.installed", report.Results.Count(StatusInstalled)))
	span.End(err)
	return report, err
}

func (e *Engine) install(ctx context.Context, l *ledger.Ledger, names []string, opts InstallOptions, report *InstallReport) error {
	seen := make(map[string]bool)

	for _, name := range names {
		if seen[name] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		plan, err := e.resolve(ctx, name, seen)
		if err != nil {
			e.record("install", &report.Results, failure(name, err))
			e.logger.Warn("cannot install component", "name", name, "error", errors.Compact(err))
			continue
		}

		for _, d := range plan {
			result, err := e.installOne(ctx, l, d, opts)
			if err != nil {
				result = failure(d.Name, err)
				result.Version = d.Version
			}
			if d.Name != name {
				result.RequiredBy = name
			}
			e.record("install", &report.Results, result)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// resolve returns name and the components it requires, dependencies first.
// Components already in seen are left out, and the returned ones are added
// to seen only when the whole closure resolves.
func (e *Engine) resolve(ctx context.Context, name string, seen map[string]bool) ([]*registry.Descriptor, error) {
	var order []*registry.Descriptor
	done := make(map[string]bool)
	visiting := make(map[string]bool)

	var visit func(n string) error
	visit = func(n string) error {
		if seen[n] || done[n] {
			return nil
		}
		if visiting[n] {
			return errors.New("E113").
				WithDetailf("Component '%s' is part of a requires cycle", n)
		}
		visiting[n] = true

		d, err := e.provider.Lookup(ctx, n)
		if err != nil {
			if n != name && errors.CodeOf(err) == "E110" {
				return errors.New("E110").
					WithDetailf("Component '%s' requires '%s', which is not in the registry", name, n).
					Wrap(err)
			}
			return err
		}

		for _, req := range d.Requires {
			if err := visit(req); err != nil {
				return err
			}
		}

		visiting[n] = false
		done[n] = true
		order = append(order, d)
		return nil
	}

	if err := visit(name); err != nil {
		return nil, err
	}
	for n := range done {
		seen[n] = true
	}
	return order, nil
}

// installOne installs a single resolved component. Only storage errors are
// returned; everything else is folded into the Result.
func (e *Engine) installOne(ctx context.Context, l *ledger.Ledger, d *registry.Descriptor, opts InstallOptions) (Result, error) {
	result := Result{
		Name:         d.Name,
		Version:      d.Version,
		Dependencies: d.Dependencies,
	}

	dir := e.ComponentDir(d.Name)
	exists, err := e.hasContent(dir)
	if err != nil {
		return result, err
	}
	if exists {
		_, installed := l.Get(d.Name)
		if !opts.allowOverwrite(d.Name) {
			result.Status = StatusSkipped
			result.Reason = ReasonFilesExist
			if installed {
				result.Reason = ReasonAlreadyInstalled
			}
			e.logger.Debug("skipping component", "name", d.Name, "reason", result.Reason, "dir", dir)
			return result, nil
		}
	}

	written, err := e.apply(ctx, l, d)
	if err != nil {
		if isStorage(err) {
			return result, err
		}
		fail := failure(d.Name, err)
		fail.Version = d.Version
		e.logger.Warn("fetch failed", "name", d.Name, "error", errors.Compact(err))
		return fail, nil
	}

	result.Status = StatusInstalled
	result.Files = written
	e.logger.Info("installed component", "name", d.Name, "version", d.Version, "files", len(written), "dir", dir)
	return result, nil
}

func (e *Engine) record(op string, results *Results, r Result) {
	*results = append(*results, r)
	e.telemetry.Component(op, string(r.Status))
}
