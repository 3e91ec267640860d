package ui

import (
	"strings"

	"github.com/vango-dev/termkit/internal/ledger"
	"github.com/vango-dev/termkit/internal/registry"
)

// RenderCatalog lists the registry's components, marking the ones recorded
// in the ledger and those with a newer upstream version.
func RenderCatalog(m *registry.Manifest, l *ledger.Ledger) string {
	var b strings.Builder

	names := m.Names()
	if len(names) == 0 {
		b.WriteString(mutedStyle.Render("The registry has no components.") + "\n")
		return b.String()
	}

	versions := make([]string, len(names))
	for i, name := range names {
		versions[i] = m.Components[name].Version
	}
	nameWidth := columnWidth(names)
	versionWidth := columnWidth(versions)

	for i, name := range names {
		d := m.Components[name]

		marker := " "
		status := ""
		if entry, ok := l.Get(name); ok {
			if entry.Version == d.Version {
				marker = successStyle.Render(SymbolSuccess)
			} else {
				marker = infoStyle.Render(SymbolPending)
				status = infoStyle.Render(" (installed " + entry.Version + ")")
			}
		}

		b.WriteString(marker)
		b.WriteString(" ")
		b.WriteString(cell(name, nameWidth))
		b.WriteString(cell(mutedStyle.Render(versions[i]), versionWidth))
		b.WriteString(d.Description)
		if len(d.Requires) > 0 {
			b.WriteString(mutedStyle.Render(" [requires " + strings.Join(d.Requires, ", ") + "]"))
		}
		b.WriteString(status)
		b.WriteString("\n")
	}

	return b.String()
}
