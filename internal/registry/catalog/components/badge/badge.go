// Package badge renders short inline status labels.
package badge

import "github.com/charmbracelet/lipgloss"

// Variant selects the badge color.
type Variant int

const (
	Default Variant = iota
	Success
	Warning
	Danger
	Muted
)

var palette = map[Variant]lipgloss.Color{
	Default: "12",
	Success: "2",
	Warning: "3",
	Danger:  "1",
	Muted:   "8",
}

// Badge is an inline label.
type Badge struct {
	Label   string
	Variant Variant
	Outline bool
}

// New returns a badge with the given label and variant.
func New(label string, v Variant) Badge {
	return Badge{Label: label, Variant: v}
}

// Render returns the styled badge.
func (b Badge) Render() string {
	c, ok := palette[b.Variant]
	if !ok {
		c = palette[Default]
	}

	style := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	if b.Outline {
		style = style.Foreground(c)
		return style.Render("[" + b.Label + "]")
	}
	return style.Foreground(lipgloss.Color("0")).Background(c).Render(b.Label)
}

func (b Badge) String() string {
	return b.Render()
}
