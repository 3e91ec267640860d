package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vango-dev/termkit/internal/drift"
	"github.com/vango-dev/termkit/internal/engine"
	"github.com/vango-dev/termkit/internal/errors"
)

// RenderInstall renders the result of `termkit add`.
func RenderInstall(r *engine.InstallReport) string {
	var b strings.Builder
	renderResults(&b, r.Results)
	renderDependencies(&b, r.Results.Dependencies())
	renderSummary(&b, r.Results)
	return b.String()
}

// RenderUpgrade renders the result of `termkit update`.
func RenderUpgrade(r *engine.UpgradeReport) string {
	var b strings.Builder

	if len(r.Results) == 0 {
		b.WriteString(mutedStyle.Render("No components installed.") + "\n")
		return b.String()
	}

	renderResults(&b, r.Results)
	renderDependencies(&b, r.Results.Dependencies())

	if len(r.Excluded) > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(SymbolWarning) + " ")
		fmt.Fprintf(&b, "Skipped %d component(s) with local changes: %s\n",
			len(r.Excluded), strings.Join(r.Excluded, ", "))
		b.WriteString("  Review with 'termkit diff <name>', or re-run with --force to overwrite.\n")
	}

	if r.CheckOnly {
		if n := r.Results.Count(engine.StatusPending); n > 0 {
			fmt.Fprintf(&b, "\n%d update(s) available. Run 'termkit update' to apply.\n", n)
		} else {
			b.WriteString("\nEverything is up to date.\n")
		}
		return b.String()
	}

	renderSummary(&b, r.Results)
	return b.String()
}

func renderResults(b *strings.Builder, results engine.Results) {
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	width := columnWidth(names)

	for _, r := range results {
		b.WriteString(statusSymbol(r.Status))
		b.WriteString(" ")
		b.WriteString(cell(r.Name, width))
		b.WriteString(describe(r))
		b.WriteString("\n")

		if r.Err != nil && r.Status == engine.StatusFailed {
			b.WriteString("    ")
			b.WriteString(mutedStyle.Render(errors.Compact(r.Err)))
			b.WriteString("\n")
		}
	}
}

func describe(r engine.Result) string {
	switch r.Status {
	case engine.StatusInstalled:
		s := fmt.Sprintf("installed %s (%d files)", r.Version, len(r.Files))
		if r.RequiredBy != "" {
			s += mutedStyle.Render(" required by " + r.RequiredBy)
		}
		return s
	case engine.StatusUpgraded:
		return fmt.Sprintf("upgraded %s → %s", r.PreviousVersion, r.Version)
	case engine.StatusUpToDate:
		return mutedStyle.Render("up to date (" + r.Version + ")")
	case engine.StatusPending:
		s := fmt.Sprintf("%s → %s available", r.PreviousVersion, r.Version)
		if r.HasLocalChanges {
			s += warningStyle.Render(" (local changes)")
		}
		return s
	case engine.StatusSkipped:
		switch r.Reason {
		case engine.ReasonAlreadyInstalled:
			return mutedStyle.Render("already installed, use --overwrite to replace")
		case engine.ReasonFilesExist:
			return mutedStyle.Render("directory has files, use --overwrite to replace")
		case engine.ReasonLocalChanges:
			return warningStyle.Render(fmt.Sprintf("local changes, %s → %s not applied", r.PreviousVersion, r.Version))
		}
		return mutedStyle.Render("skipped (" + string(r.Reason) + ")")
	case engine.StatusFailed:
		return errorStyle.Render(string(r.Reason))
	}
	return string(r.Status)
}

func statusSymbol(s engine.Status) string {
	switch s {
	case engine.StatusInstalled, engine.StatusUpgraded:
		return successStyle.Render(SymbolSuccess)
	case engine.StatusUpToDate:
		return mutedStyle.Render(SymbolSuccess)
	case engine.StatusPending:
		return infoStyle.Render(SymbolPending)
	case engine.StatusSkipped:
		return warningStyle.Render(SymbolSkipped)
	case engine.StatusFailed:
		return errorStyle.Render(SymbolFail)
	}
	return " "
}

func renderDependencies(b *strings.Builder, deps map[string]string) {
	if len(deps) == 0 {
		return
	}
	mods := make([]string, 0, len(deps))
	for mod := range deps {
		mods = append(mods, mod)
	}
	sort.Strings(mods)

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Go dependencies"))
	b.WriteString("\n")
	for _, mod := range mods {
		b.WriteString("  go get " + mod + "@" + deps[mod] + "\n")
	}
}

func renderSummary(b *strings.Builder, results engine.Results) {
	var parts []string
	for _, s := range []engine.Status{
		engine.StatusInstalled,
		engine.StatusUpgraded,
		engine.StatusUpToDate,
		engine.StatusSkipped,
		engine.StatusFailed,
	} {
		if n := results.Count(s); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}
	if len(parts) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Join(parts, ", ")))
	b.WriteString("\n")
}

// RenderCompare renders the result of `termkit diff`.
func RenderCompare(r *engine.CompareReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(r.Name))
	b.WriteString(" ")
	if r.InstalledVersion == r.UpstreamVersion {
		b.WriteString(mutedStyle.Render(r.InstalledVersion))
	} else {
		b.WriteString(fmt.Sprintf("%s → %s", r.InstalledVersion, r.UpstreamVersion))
	}
	b.WriteString("\n\n")

	files := make([]string, len(r.Files))
	for i, f := range r.Files {
		files[i] = f.File
	}
	width := columnWidth(files)

	for _, f := range r.Files {
		b.WriteString("  ")
		b.WriteString(cell(f.File, width))
		b.WriteString(driftStyle(f.State).Render(string(f.State)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case r.InSync():
		b.WriteString(successStyle.Render(SymbolSuccess) + " In sync with the registry.\n")
	case r.Count(drift.Conflict) > 0:
		fmt.Fprintf(&b, "%s %d file(s) changed both locally and upstream. Resolve by hand.\n",
			errorStyle.Render(SymbolFail), r.Count(drift.Conflict))
	case r.HasLocalChanges():
		b.WriteString(warningStyle.Render(SymbolWarning) + " Local changes. 'termkit update' will skip this component unless forced.\n")
	default:
		b.WriteString(infoStyle.Render(SymbolPending) + " Safe to update. Run 'termkit update " + r.Name + "'.\n")
	}

	return b.String()
}

func driftStyle(s drift.State) lipgloss.Style {
	switch s {
	case drift.Unchanged:
		return mutedStyle
	case drift.UpstreamUpdated:
		return infoStyle
	case drift.LocallyModified, drift.MissingLocally, drift.LocalOnly:
		return warningStyle
	case drift.Conflict:
		return errorStyle
	}
	return lipgloss.NewStyle()
}
