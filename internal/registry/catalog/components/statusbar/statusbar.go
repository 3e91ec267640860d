// Package statusbar renders a full-width bottom bar with left, center and
// right segments.
//
// Segments are plain strings, so a badge or spinner frame can be dropped in
// as rendered text:
//
//	bar := statusbar.New()
//	bar.Left = []string{badge.New("NORMAL", badge.Success).Render()}
//	bar.Right = []string{spin.View()}
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar is a single-line status bar.
type Bar struct {
	Left   []string
	Center string
	Right  []string

	Gap   string
	Style lipgloss.Style
}

// New returns a bar with the default style.
func New() Bar {
	return Bar{
		Gap: "  ",
		Style: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("236")),
	}
}

// Render lays the segments out across width cells. The center segment is
// dropped first when space runs out, then right segments from the end.
func (b Bar) Render(width int) string {
	left := strings.Join(b.Left, b.Gap)
	right := strings.Join(b.Right, b.Gap)
	center := b.Center

	for len(b.Right) > 0 && lipgloss.Width(left)+lipgloss.Width(right) > width {
		b.Right = b.Right[:len(b.Right)-1]
		right = strings.Join(b.Right, b.Gap)
	}

	free := width - lipgloss.Width(left) - lipgloss.Width(right)
	if lipgloss.Width(center)+2 > free {
		center = ""
	}
	if free < 0 {
		free = 0
	}

	var line string
	if center == "" {
		line = left + strings.Repeat(" ", free) + right
	} else {
		pad := free - lipgloss.Width(center)
		before := pad / 2
		line = left + strings.Repeat(" ", before) + center + strings.Repeat(" ", pad-before) + right
	}
	return b.Style.Width(width).MaxWidth(width).Render(line)
}
