// Package ledger records which components were vendored into a project and
// the fingerprints of their files at install time.
//
// The ledger is the only durable source of baseline fingerprints. Commands
// load it once, mutate it in memory, and save it once when they finish. File
// modification times are never consulted.
package ledger

import (
	"encoding/json"
	"errors"
	"io/fs"
	"sort"
	"time"

	tkerrors "github.com/vango-dev/termkit/internal/errors"
	"github.com/vango-dev/termkit/internal/fingerprint"
	"github.com/vango-dev/termkit/internal/store"
)

// FormatVersion is the ledger format written by this version of termkit.
const FormatVersion = "1"

// DefaultPath is where the ledger lives relative to the project root.
const DefaultPath = ".termkit/ledger.json"

// Ledger maps component names to their installed entries.
type Ledger struct {
	Version    string            `json:"version"`
	Components map[string]*Entry `json:"components"`
}

// Entry is one installed component.
type Entry struct {
	Name        string                             `json:"name"`
	Version     string                             `json:"version"`
	Files       map[string]fingerprint.Fingerprint `json:"files"`
	InstalledAt time.Time                          `json:"installedAt"`
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		Version:    FormatVersion,
		Components: make(map[string]*Entry),
	}
}

// Load reads the ledger at path. A missing file yields an empty ledger.
func Load(fsys store.FS, path string) (*Ledger, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, tkerrors.New("E140").
			WithDetail("Could not read " + path).
			Wrap(err)
	}

	return Parse(data, path)
}

// Parse decodes ledger JSON. path is used in error messages only.
func Parse(data []byte, path string) (*Ledger, error) {
	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, tkerrors.New("E120").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Restore the file from version control, or delete it and re-add your components with --overwrite")
	}

	if l.Version != FormatVersion {
		return nil, tkerrors.New("E121").
			WithDetailf("%s has format %q, this termkit reads %q", path, l.Version, FormatVersion).
			WithSuggestion("Upgrade termkit to a version that understands this ledger")
	}

	if l.Components == nil {
		l.Components = make(map[string]*Entry)
	}
	for name, e := range l.Components {
		if e == nil {
			delete(l.Components, name)
			continue
		}
		if e.Name == "" {
			e.Name = name
		}
		if e.Files == nil {
			e.Files = make(map[string]fingerprint.Fingerprint)
		}
	}

	return &l, nil
}

// Save writes the ledger to path, replacing any previous content.
func (l *Ledger) Save(fsys store.FS, path string) error {
	data, err := l.Marshal()
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(path, data); err != nil {
		return tkerrors.New("E140").
			WithDetail("Could not write " + path).
			Wrap(err)
	}
	return nil
}

// Marshal encodes the ledger as indented JSON with a trailing newline.
func (l *Ledger) Marshal() ([]byte, error) {
	if l.Version == "" {
		l.Version = FormatVersion
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Get returns the entry for name.
func (l *Ledger) Get(name string) (*Entry, bool) {
	e, ok := l.Components[name]
	return e, ok
}

// Put replaces the entry for e.Name.
func (l *Ledger) Put(e *Entry) {
	if l.Components == nil {
		l.Components = make(map[string]*Entry)
	}
	l.Components[e.Name] = e
}

// Names returns installed component names, sorted.
func (l *Ledger) Names() []string {
	names := make([]string, 0, len(l.Components))
	for name := range l.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	out := &Ledger{
		Version:    l.Version,
		Components: make(map[string]*Entry, len(l.Components)),
	}
	for name, e := range l.Components {
		out.Components[name] = e.Clone()
	}
	return out
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	out := *e
	out.Files = make(map[string]fingerprint.Fingerprint, len(e.Files))
	for file, fp := range e.Files {
		out.Files[file] = fp
	}
	return &out
}

// Baseline returns the recorded fingerprint for file, or the zero value.
func (e *Entry) Baseline(file string) fingerprint.Fingerprint {
	if e == nil {
		return ""
	}
	return e.Files[file]
}
