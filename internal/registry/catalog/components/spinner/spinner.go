// Package spinner renders an indeterminate activity indicator.
//
// The spinner holds no timer. Call Tick from your own update loop and View
// from your render function.
package spinner

import "github.com/charmbracelet/lipgloss"

// Spinner cycles through a set of frames.
type Spinner struct {
	Frames []string
	Style  lipgloss.Style
	Label  string

	frame int
}

// New returns a spinner using the Dots frames.
func New(label string) *Spinner {
	return &Spinner{
		Frames: Dots,
		Style:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Label:  label,
	}
}

// Tick advances to the next frame.
func (s *Spinner) Tick() {
	if len(s.Frames) == 0 {
		return
	}
	s.frame = (s.frame + 1) % len(s.Frames)
}

// View renders the current frame followed by the label.
func (s *Spinner) View() string {
	if len(s.Frames) == 0 {
		return s.Label
	}
	out := s.Style.Render(s.Frames[s.frame])
	if s.Label != "" {
		out += " " + s.Label
	}
	return out
}
