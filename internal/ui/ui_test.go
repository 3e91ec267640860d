package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/termkit/internal/drift"
	"github.com/vango-dev/termkit/internal/engine"
	"github.com/vango-dev/termkit/internal/errors"
	"github.com/vango-dev/termkit/internal/ledger"
	"github.com/vango-dev/termkit/internal/registry"
)

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderInstall(t *testing.T) {
	report := &engine.InstallReport{Results: engine.Results{
		{
			Name:         "badge",
			Status:       engine.StatusInstalled,
			Version:      "1.0.0",
			Files:        []string{"badge.go"},
			RequiredBy:   "statusbar",
			Dependencies: map[string]string{"github.com/charmbracelet/lipgloss": "v1.1.0"},
		},
		{
			Name:   "nope",
			Status: engine.StatusFailed,
			Reason: engine.ReasonUnknownComponent,
			Err:    errors.New("E110").WithDetail("Component 'nope' not found in registry"),
		},
		{Name: "panel", Status: engine.StatusSkipped, Reason: engine.ReasonAlreadyInstalled},
	}}

	out := RenderInstall(report)

	assertContains(t, out,
		"badge",
		"installed 1.0.0 (1 files)",
		"required by statusbar",
		"unknown-component",
		"E110: Component not found - Component 'nope' not found in registry",
		"already installed",
		"go get github.com/charmbracelet/lipgloss@v1.1.0",
		"1 installed, 1 skipped, 1 failed",
	)
}

func TestRenderUpgrade(t *testing.T) {
	t.Run("applied", func(t *testing.T) {
		report := &engine.UpgradeReport{
			Results: engine.Results{
				{Name: "badge", Status: engine.StatusUpgraded, PreviousVersion: "1.0.0", Version: "2.0.0"},
				{Name: "panel", Status: engine.StatusSkipped, Reason: engine.ReasonLocalChanges, PreviousVersion: "1.0.0", Version: "1.1.0"},
				{Name: "spinner", Status: engine.StatusUpToDate, Version: "1.2.0"},
			},
			Excluded: []string{"panel"},
		}

		out := RenderUpgrade(report)
		assertContains(t, out,
			"upgraded 1.0.0 → 2.0.0",
			"local changes, 1.0.0 → 1.1.0 not applied",
			"up to date (1.2.0)",
			"Skipped 1 component(s) with local changes: panel",
			"--force",
		)
	})

	t.Run("check only", func(t *testing.T) {
		report := &engine.UpgradeReport{
			CheckOnly: true,
			Results: engine.Results{
				{Name: "badge", Status: engine.StatusPending, PreviousVersion: "1.0.0", Version: "2.0.0", HasLocalChanges: true},
			},
		}

		out := RenderUpgrade(report)
		assertContains(t, out, "1.0.0 → 2.0.0 available", "(local changes)", "1 update(s) available")
	})

	t.Run("nothing installed", func(t *testing.T) {
		out := RenderUpgrade(&engine.UpgradeReport{})
		assertContains(t, out, "No components installed.")
	})
}

func TestRenderCompare(t *testing.T) {
	tests := []struct {
		name  string
		files []engine.FileDrift
		want  string
	}{
		{
			name:  "in sync",
			files: []engine.FileDrift{{File: "badge.go", State: drift.Unchanged}},
			want:  "In sync with the registry.",
		},
		{
			name: "conflict",
			files: []engine.FileDrift{
				{File: "badge.go", State: drift.Conflict},
				{File: "extra.go", State: drift.LocalOnly},
			},
			want: "1 file(s) changed both locally and upstream",
		},
		{
			name:  "local edit",
			files: []engine.FileDrift{{File: "badge.go", State: drift.LocallyModified}},
			want:  "Local changes.",
		},
		{
			name:  "upstream moved",
			files: []engine.FileDrift{{File: "badge.go", State: drift.UpstreamUpdated}},
			want:  "Safe to update.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &engine.CompareReport{
				Name:             "badge",
				InstalledVersion: "1.0.0",
				UpstreamVersion:  "1.0.0",
				Files:            tt.files,
			}
			out := RenderCompare(report)

			assertContains(t, out, "badge", tt.want)
			for _, f := range tt.files {
				assertContains(t, out, f.File, string(f.State))
			}
		})
	}
}

func TestRenderCatalog(t *testing.T) {
	m := &registry.Manifest{Components: map[string]*registry.Descriptor{
		"badge":     {Name: "badge", Version: "1.0.0", Description: "Inline status label"},
		"spinner":   {Name: "spinner", Version: "1.2.0", Description: "Activity indicator"},
		"statusbar": {Name: "statusbar", Version: "1.0.0", Description: "Bottom bar", Requires: []string{"badge", "spinner"}},
	}}
	l := ledger.New()
	l.Put(&ledger.Entry{Name: "badge", Version: "1.0.0"})
	l.Put(&ledger.Entry{Name: "spinner", Version: "1.1.0"})

	out := RenderCatalog(m, l)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], SymbolSuccess) {
		t.Errorf("installed component should be marked: %q", lines[0])
	}
	assertContains(t, lines[1], "(installed 1.1.0)")
	assertContains(t, lines[2], "[requires badge, spinner]")

	empty := RenderCatalog(&registry.Manifest{}, l)
	assertContains(t, empty, "no components")
}

func TestColumnWidth(t *testing.T) {
	if got := columnWidth([]string{"a", "spinner", "ui"}); got != 9 {
		t.Errorf("columnWidth() = %d, want 9", got)
	}
	if got := columnWidth(nil); got != 2 {
		t.Errorf("columnWidth(nil) = %d, want 2", got)
	}
	if got := cell("ab", 5); got != fmt.Sprintf("%-5s", "ab") {
		t.Errorf("cell() = %q", got)
	}
}
