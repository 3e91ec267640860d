// Package progress renders a determinate progress bar.
package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar is a fixed-width progress bar.
type Bar struct {
	Width       int
	Full        rune
	Empty       rune
	ShowPercent bool

	FullStyle  lipgloss.Style
	EmptyStyle lipgloss.Style
}

// New returns a bar of the given width.
func New(width int) Bar {
	return Bar{
		Width:       width,
		Full:        '█',
		Empty:       '░',
		ShowPercent: true,
		FullStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		EmptyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Render draws the bar at fraction p, clamped to [0, 1].
func (b Bar) Render(p float64) string {
	if math.IsNaN(p) || p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	width := b.Width
	if width < 0 {
		width = 0
	}
	filled := int(math.Round(p * float64(width)))

	out := b.FullStyle.Render(strings.Repeat(string(b.Full), filled)) +
		b.EmptyStyle.Render(strings.Repeat(string(b.Empty), width-filled))
	if b.ShowPercent {
		out += fmt.Sprintf(" %3.0f%%", p*100)
	}
	return out
}
