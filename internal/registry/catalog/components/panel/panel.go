// Package panel renders a bordered box with an optional title.
package panel

import "github.com/charmbracelet/lipgloss"

// Panel is a titled, bordered container.
type Panel struct {
	Title  string
	Body   string
	Width  int
	Accent lipgloss.Color
}

// New returns a panel with the default accent color.
func New(title, body string) Panel {
	return Panel{Title: title, Body: body, Accent: "12"}
}

// Render returns the boxed panel.
func (p Panel) Render() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 1)
	if p.Width > 0 {
		box = box.Width(p.Width)
	}

	content := p.Body
	if p.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(p.Title)
		content = lipgloss.JoinVertical(lipgloss.Left, title, "", p.Body)
	}
	return box.Render(content)
}
