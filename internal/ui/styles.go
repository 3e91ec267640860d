// Package ui renders engine reports for the terminal.
//
// Renderers return strings and never write to the terminal themselves.
// lipgloss drops colors when the output is not a terminal, so the same text
// is used for pipes and tests.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors.
const (
	ColorSuccess lipgloss.Color = "2"
	ColorError   lipgloss.Color = "1"
	ColorWarning lipgloss.Color = "3"
	ColorInfo    lipgloss.Color = "6"
	ColorMuted   lipgloss.Color = "8"
)

// Status symbols.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolPending = "○"
	SymbolSkipped = "⊘"
	SymbolWarning = "⚠"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	infoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// cell pads s to width display cells.
func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

// columnWidth returns the widest of values, plus a gap.
func columnWidth(values []string) int {
	w := 0
	for _, v := range values {
		if n := lipgloss.Width(v); n > w {
			w = n
		}
	}
	return w + 2
}
