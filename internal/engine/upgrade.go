package engine

import (
	"context"

	"github.com/vango-dev/termkit/internal/errors"
	"github.com/vango-dev/termkit/internal/ledger"
	"go.opentelemetry.io/otel/attribute"
)

// UpgradeOptions carries the user's intent for Upgrade.
type UpgradeOptions struct {
	// Force upgrades components even when their files were edited locally.
	Force bool

	// CheckOnly reports what would be upgraded without writing anything.
	CheckOnly bool
}

// Upgrade reinstalls the named components, or every installed component
// when names is empty, if the registry has a different version.
func (e *Engine) Upgrade(ctx context.Context, l *ledger.Ledger, names []string, opts UpgradeOptions) (*UpgradeReport, error) {
	ctx, span := e.telemetry.Start(ctx, "upgrade",
		attribute.StringSlice("termkit.components", names),
		attribute.Bool("termkit.force", opts.Force),
		attribute.Bool("termkit.check_only", opts.CheckOnly))

	report := &UpgradeReport{CheckOnly: opts.CheckOnly}
	err := e.upgrade(ctx, l, names, opts, report)

	span.SetAttributes(attribute.Int("termkit.upgraded", report.Results.Count(StatusUpgraded)))
	span.End(err)
	return report, err
}

func (e *Engine) upgrade(ctx context.Context, l *ledger.Ledger, names []string, opts UpgradeOptions, report *UpgradeReport) error {
	candidates := names
	if len(candidates) == 0 {
		candidates = l.Names()
	}

	seen := make(map[string]bool, len(candidates))
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true

		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := e.upgradeOne(ctx, l, name, opts)
		if err != nil {
			fail := failure(name, err)
			fail.Version = result.Version
			fail.PreviousVersion = result.PreviousVersion
			e.record("upgrade", &report.Results, fail)
			return err
		}
		if result.Reason == ReasonLocalChanges {
			report.Excluded = append(report.Excluded, name)
		}
		e.record("upgrade", &report.Results, result)
	}

	return nil
}

func (e *Engine) upgradeOne(ctx context.Context, l *ledger.Ledger, name string, opts UpgradeOptions) (Result, error) {
	entry, ok := l.Get(name)
	if !ok {
		return failure(name, errors.New("E130").
			WithDetailf("Component '%s' is not in the ledger", name).
			WithSuggestion("Run 'termkit add "+name+"' to install it")), nil
	}

	d, err := e.provider.Lookup(ctx, name)
	if err != nil {
		fail := failure(name, err)
		fail.PreviousVersion = entry.Version
		return fail, nil
	}

	result := Result{
		Name:            name,
		Version:         d.Version,
		PreviousVersion: entry.Version,
		Dependencies:    d.Dependencies,
	}

	if d.Version == entry.Version {
		result.Status = StatusUpToDate
		return result, nil
	}

	upstream, err := e.provider.Fetch(ctx, d)
	if err != nil {
		fail := failure(name, err)
		fail.Version = d.Version
		fail.PreviousVersion = entry.Version
		e.logger.Warn("fetch failed", "name", name, "error", errors.Compact(err))
		return fail, nil
	}

	changed, err := e.HasLocalChanges(entry, upstream)
	if err != nil {
		return result, err
	}
	result.HasLocalChanges = changed

	if opts.CheckOnly {
		result.Status = StatusPending
		return result, nil
	}

	if changed && !opts.Force {
		result.Status = StatusSkipped
		result.Reason = ReasonLocalChanges
		result.Err = errors.New("E131").
			WithDetailf("Component '%s' has local edits", name).
			WithSuggestion("Run 'termkit diff " + name + "' to review them, or 'termkit update --force " + name + "' to discard them")
		e.logger.Info("skipping modified component", "name", name, "installed", entry.Version, "upstream", d.Version)
		return result, nil
	}

	written, err := e.write(l, d, upstream)
	if err != nil {
		if isStorage(err) {
			return result, err
		}
		fail := failure(name, err)
		fail.Version = d.Version
		fail.PreviousVersion = entry.Version
		e.logger.Warn("fetch failed", "name", name, "error", errors.Compact(err))
		return fail, nil
	}

	result.Status = StatusUpgraded
	result.Files = written
	e.logger.Info("upgraded component", "name", name, "from", entry.Version, "to", d.Version, "files", len(written))
	return result, nil
}
