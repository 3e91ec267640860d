package engine

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"path"
	"time"

	"github.com/vango-dev/termkit/internal/drift"
	"github.com/vango-dev/termkit/internal/errors"
	"github.com/vango-dev/termkit/internal/fingerprint"
	"github.com/vango-dev/termkit/internal/ledger"
	"github.com/vango-dev/termkit/internal/registry"
	"github.com/vango-dev/termkit/internal/store"
	"github.com/vango-dev/termkit/internal/telemetry"
)

// Engine runs sync operations against one project.
type Engine struct {
	provider      registry.Provider
	store         store.FS
	componentsDir string

	logger    *slog.Logger
	telemetry *telemetry.Recorder
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithTelemetry sets the metrics and tracing recorder. Default: none.
func WithTelemetry(r *telemetry.Recorder) Option {
	return func(e *Engine) {
		e.telemetry = r
	}
}

// WithClock sets the time source used for ledger timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an Engine that installs components from provider into
// componentsDir/<name> within fsys.
func New(provider registry.Provider, fsys store.FS, componentsDir string, opts ...Option) *Engine {
	e := &Engine{
		provider:      provider,
		store:         fsys,
		componentsDir: componentsDir,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	e.logger = e.logger.With("component", "engine")
	return e
}

// ComponentDir returns the store path a component is installed to.
func (e *Engine) ComponentDir(name string) string {
	return path.Join(e.componentsDir, name)
}

// apply fetches d, writes its files and replaces its ledger entry. Errors
// carrying E140 come from the store; anything else is a fetch failure.
func (e *Engine) apply(ctx context.Context, l *ledger.Ledger, d *registry.Descriptor) ([]string, error) {
	files, err := e.provider.Fetch(ctx, d)
	if err != nil {
		return nil, err
	}
	return e.write(l, d, files)
}

// write stores already fetched files for d and replaces its ledger entry.
func (e *Engine) write(l *ledger.Ledger, d *registry.Descriptor, files registry.Files) ([]string, error) {
	dir := e.ComponentDir(d.Name)
	entry := &ledger.Entry{
		Name:    d.Name,
		Version: d.Version,
		Files:   make(map[string]fingerprint.Fingerprint, len(d.Files)),
	}

	written := make([]string, 0, len(d.Files))
	for _, file := range d.Files {
		content, ok := files[file]
		if !ok {
			return written, errors.New("E112").
				WithDetailf("Registry returned no content for %s/%s", d.Name, file)
		}

		target := path.Join(dir, file)
		if err := e.store.WriteFile(target, content); err != nil {
			return written, errors.New("E140").
				WithDetail("Could not write " + target).
				Wrap(err)
		}
		entry.Files[file] = fingerprint.Of(content)
		written = append(written, file)
	}

	entry.InstalledAt = e.now().UTC()
	l.Put(entry)
	e.telemetry.FilesWritten(len(written))
	return written, nil
}

// readLocal returns the fingerprint of a file in the project, or the zero
// fingerprint when it does not exist.
func (e *Engine) readLocal(name string) (fingerprint.Fingerprint, error) {
	content, err := e.store.ReadFile(name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", errors.New("E140").
			WithDetail("Could not read " + name).
			Wrap(err)
	}
	return fingerprint.Of(content), nil
}

// hasContent reports whether a component directory holds any file.
func (e *Engine) hasContent(dir string) (bool, error) {
	files, err := e.store.ListFiles(dir)
	if err != nil {
		return false, errors.New("E140").
			WithDetail("Could not list " + dir).
			Wrap(err)
	}
	return len(files) > 0, nil
}

// HasLocalChanges reports whether any recorded file of entry was edited
// locally in a way an upgrade would discard: its drift against upstream is
// locally-modified or conflict. Missing files are not local changes. With a
// nil upstream, or for a file upstream no longer ships, any difference from
// the baseline counts.
func (e *Engine) HasLocalChanges(entry *ledger.Entry, upstream registry.Files) (bool, error) {
	dir := e.ComponentDir(entry.Name)
	for _, file := range sortedFiles(entry) {
		local, err := e.readLocal(path.Join(dir, file))
		if err != nil {
			return false, err
		}
		if local.IsZero() {
			continue
		}

		baseline := entry.Files[file]
		if _, ok := upstream[file]; ok {
			if drift.Classify(local, baseline, fingerprintOf(upstream, file)).Changed() {
				return true, nil
			}
			continue
		}
		if local != baseline {
			return true, nil
		}
	}
	return false, nil
}

// failure turns a provider error into a failed Result.
func failure(name string, err error) Result {
	reason := ReasonFetchFailed
	switch errors.CodeOf(err) {
	case "E110":
		reason = ReasonUnknownComponent
	case "E111":
		reason = ReasonRegistryUnavailable
	case "E113":
		reason = ReasonInvalidDescriptor
	case "E130":
		reason = ReasonNotInstalled
	case "E140":
		reason = ReasonStorageFailed
	}
	return Result{
		Name:   name,
		Status: StatusFailed,
		Reason: reason,
		Err:    err,
	}
}

func isStorage(err error) bool {
	return errors.CodeOf(err) == "E140"
}

func sortedFiles(entry *ledger.Entry) []string {
	names := make(map[string]bool, len(entry.Files))
	for f := range entry.Files {
		names[f] = true
	}
	return sortedKeys(names)
}

func fingerprintOf(files registry.Files, name string) fingerprint.Fingerprint {
	content, ok := files[name]
	if !ok {
		return ""
	}
	return fingerprint.Of(content)
}
