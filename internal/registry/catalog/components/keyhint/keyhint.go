// Package keyhint renders a one-line legend of key bindings.
package keyhint

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hint is a single key and what it does.
type Hint struct {
	Key  string
	Desc string
}

// Bar renders hints separated by a dot.
type Bar struct {
	Hints     []Hint
	Separator string

	KeyStyle  lipgloss.Style
	DescStyle lipgloss.Style
}

// New returns a bar with the default styles.
func New(hints ...Hint) Bar {
	return Bar{
		Hints:     hints,
		Separator: " • ",
		KeyStyle:  lipgloss.NewStyle().Bold(true),
		DescStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Render returns the legend, truncated to width cells when width > 0.
func (b Bar) Render(width int) string {
	parts := make([]string, 0, len(b.Hints))
	for _, h := range b.Hints {
		parts = append(parts, b.KeyStyle.Render(h.Key)+" "+b.DescStyle.Render(h.Desc))
	}

	out := strings.Join(parts, b.Separator)
	for width > 0 && lipgloss.Width(out) > width && len(parts) > 1 {
		parts = parts[:len(parts)-1]
		out = strings.Join(parts, b.Separator)
	}
	return out
}
