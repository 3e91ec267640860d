package registry

import (
	"testing"

	"github.com/vango-dev/termkit/internal/errors"
)

func TestParseManifest_JSON(t *testing.T) {
	data := []byte(`{
  "manifestVersion": 1,
  "registry": "test",
  "components": {
    "badge": {"version": "1.0.0", "files": ["badge.go"]},
    "panel": {"name": "panel", "version": "2.0.0", "files": ["panel.go"], "requires": ["badge"]}
  }
}`)

	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if m.Registry != "test" {
		t.Errorf("Registry = %q, want test", m.Registry)
	}
	if got := m.Components["badge"].Name; got != "badge" {
		t.Errorf("badge name = %q, want it filled from the key", got)
	}
	if got := m.Components["panel"].Requires; len(got) != 1 || got[0] != "badge" {
		t.Errorf("panel requires = %v", got)
	}
	if names := m.Names(); len(names) != 2 || names[0] != "badge" || names[1] != "panel" {
		t.Errorf("Names() = %v", names)
	}
}

func TestParseManifest_YAML(t *testing.T) {
	data := []byte(`manifestVersion: 1
components:
  spinner:
    version: 1.2.0
    files:
      - spinner.go
      - frames.go
    dependencies:
      github.com/charmbracelet/lipgloss: v1.1.0
`)

	m, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	d := m.Components["spinner"]
	if d == nil {
		t.Fatal("spinner missing")
	}
	if d.Version != "1.2.0" || len(d.Files) != 2 || d.Files[1] != "frames.go" {
		t.Errorf("spinner = %+v", d)
	}
	if d.Dependencies["github.com/charmbracelet/lipgloss"] != "v1.1.0" {
		t.Errorf("dependencies = %v", d.Dependencies)
	}
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"manifestVersion": `},
		{"bad yaml", "components: [\n"},
		{"wrong version", `{"manifestVersion": 2, "components": {}}`},
		{"missing version", `{"components": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data))
			if !errors.HasCode(err, "E111") {
				t.Errorf("ParseManifest() error = %v, want E111", err)
			}
		})
	}
}

func TestParseManifest_EmptyComponents(t *testing.T) {
	m, err := ParseManifest([]byte(`{"manifestVersion": 1}`))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if m.Components == nil || len(m.Components) != 0 {
		t.Errorf("Components = %v, want empty map", m.Components)
	}
}

func TestDescriptor_Validate(t *testing.T) {
	tests := []struct {
		name    string
		d       Descriptor
		wantErr bool
	}{
		{"valid", Descriptor{Name: "badge", Version: "1.0.0", Files: []string{"badge.go"}}, false},
		{"nested file", Descriptor{Name: "spinner", Version: "1", Files: []string{"spinner.go", "internal/frames.go"}}, false},
		{"dashed name", Descriptor{Name: "key-hint", Version: "1", Files: []string{"a.go"}}, false},
		{"missing name", Descriptor{Version: "1", Files: []string{"a.go"}}, true},
		{"uppercase name", Descriptor{Name: "Badge", Version: "1", Files: []string{"a.go"}}, true},
		{"leading dash", Descriptor{Name: "-x", Version: "1", Files: []string{"a.go"}}, true},
		{"missing version", Descriptor{Name: "badge", Files: []string{"a.go"}}, true},
		{"no files", Descriptor{Name: "badge", Version: "1"}, true},
		{"escaping file", Descriptor{Name: "badge", Version: "1", Files: []string{"../main.go"}}, true},
		{"absolute file", Descriptor{Name: "badge", Version: "1", Files: []string{"/etc/passwd"}}, true},
		{"unclean file", Descriptor{Name: "badge", Version: "1", Files: []string{"a/../b.go"}}, true},
		{"backslash file", Descriptor{Name: "badge", Version: "1", Files: []string{`a\b.go`}}, true},
		{"duplicate file", Descriptor{Name: "badge", Version: "1", Files: []string{"a.go", "a.go"}}, true},
		{"requires itself", Descriptor{Name: "badge", Version: "1", Files: []string{"a.go"}, Requires: []string{"badge"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.HasCode(err, "E113") {
				t.Errorf("Validate() error = %v, want E113", err)
			}
		})
	}
}

func TestDescriptor_HasFile(t *testing.T) {
	d := Descriptor{Files: []string{"spinner.go", "frames.go"}}
	if !d.HasFile("frames.go") {
		t.Error("HasFile(frames.go) = false")
	}
	if d.HasFile("other.go") {
		t.Error("HasFile(other.go) = true")
	}
}
