package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/vango-dev/termkit/internal/errors"
	"gopkg.in/yaml.v3"
)

// ManifestVersion is the manifest schema this package reads.
const ManifestVersion = 1

// Manifest represents the registry manifest.
type Manifest struct {
	ManifestVersion int                    `json:"manifestVersion" yaml:"manifestVersion"`
	Registry        string                 `json:"registry,omitempty" yaml:"registry,omitempty"`
	Components      map[string]*Descriptor `json:"components" yaml:"components"`
}

// Descriptor describes one component in the registry.
type Descriptor struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version is opaque. Two versions are only ever compared for equality.
	Version string `json:"version" yaml:"version"`

	// Files lists the component's files, relative to its directory, in
	// install order.
	Files []string `json:"files" yaml:"files"`

	// Dependencies maps Go module paths to the versions the component
	// needs. termkit reports them; it does not edit go.mod.
	Dependencies map[string]string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	// Requires names components that must be installed alongside this one.
	Requires []string `json:"requires,omitempty" yaml:"requires,omitempty"`

	Category string   `json:"category,omitempty" yaml:"category,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Notes    string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ParseManifest decodes a manifest. JSON is expected; anything that does not
// start with '{' is decoded as YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest

	trimmed := bytes.TrimSpace(data)
	var err error
	if bytes.HasPrefix(trimmed, []byte("{")) {
		err = json.Unmarshal(trimmed, &m)
	} else {
		err = yaml.Unmarshal(trimmed, &m)
	}
	if err != nil {
		return nil, errors.New("E111").
			WithDetail("Invalid registry manifest: " + err.Error())
	}

	if m.ManifestVersion != ManifestVersion {
		return nil, errors.New("E111").
			WithDetailf("Unsupported manifest version %d (expected %d)", m.ManifestVersion, ManifestVersion).
			WithSuggestion("Upgrade termkit or point it at a compatible registry")
	}

	if m.Components == nil {
		m.Components = make(map[string]*Descriptor)
	}
	for name, d := range m.Components {
		if d == nil {
			m.Components[name] = &Descriptor{Name: name}
			continue
		}
		if d.Name == "" {
			d.Name = name
		}
	}

	return &m, nil
}

// Names returns the component names in the manifest, sorted.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Components))
	for name := range m.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the descriptor before any of its files are fetched.
func (d *Descriptor) Validate() error {
	var problems []string

	if d.Name == "" {
		problems = append(problems, "missing name")
	} else if !validName(d.Name) {
		problems = append(problems, fmt.Sprintf("invalid name %q", d.Name))
	}
	if d.Version == "" {
		problems = append(problems, "missing version")
	}
	if len(d.Files) == 0 {
		problems = append(problems, "no files")
	}

	seen := make(map[string]bool, len(d.Files))
	for _, f := range d.Files {
		if !validFile(f) {
			problems = append(problems, fmt.Sprintf("invalid file path %q", f))
			continue
		}
		if seen[f] {
			problems = append(problems, fmt.Sprintf("duplicate file %q", f))
		}
		seen[f] = true
	}

	for _, req := range d.Requires {
		if req == d.Name {
			problems = append(problems, "requires itself")
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.New("E113").
		WithDetailf("Component '%s': %s", d.Name, strings.Join(problems, "; "))
}

// HasFile reports whether file belongs to the component.
func (d *Descriptor) HasFile(file string) bool {
	for _, f := range d.Files {
		if f == file {
			return true
		}
	}
	return false
}

// validName accepts lowercase identifiers with dashes, which double as
// directory names in the consumer's project.
func validName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case (r == '-' || r == '_') && i > 0:
		default:
			return false
		}
	}
	return name != ""
}

// validFile accepts clean, relative, slash-separated paths that stay inside
// the component directory.
func validFile(f string) bool {
	if f == "" || strings.Contains(f, "\\") || path.IsAbs(f) {
		return false
	}
	if path.Clean(f) != f {
		return false
	}
	return f != "." && f != ".." && !strings.HasPrefix(f, "../")
}
