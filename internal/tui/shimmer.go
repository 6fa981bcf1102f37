package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// shimmerTickMsg advances the highlight on the selected menu entry
type shimmerTickMsg struct{}

// Shimmer sweeps a bright window across the selected menu label
type Shimmer struct {
	Enabled  bool
	Interval time.Duration
	// Width is the number of glyphs lit at once
	Width int
	pos   int
}

// DefaultShimmer returns the menu highlight settings
func DefaultShimmer() *Shimmer {
	return &Shimmer{
		Enabled:  true,
		Interval: 120 * time.Millisecond,
		Width:    3,
	}
}

// Tick schedules the next animation frame
func (s *Shimmer) Tick() tea.Cmd {
	if !s.Enabled {
		return nil
	}
	return tea.Tick(s.Interval, func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Advance moves the window one glyph, wrapping after it has left the text
// plus a pause of the same length.
func (s *Shimmer) Advance(textLen int) {
	if textLen <= 0 {
		s.pos = 0
		return
	}
	s.pos++
	if s.pos >= 2*textLen+s.Width {
		s.pos = 0
	}
}

// Reset restarts the sweep, used when the selection moves
func (s *Shimmer) Reset() { s.pos = 0 }

// Render draws text with the lit window at the current position
func (s *Shimmer) Render(text string) string {
	base := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	if !s.Enabled {
		return base.Render(text)
	}
	glow := base.Foreground(lipgloss.Color(ColorAccentGlow))

	runes := []rune(text)
	start := s.pos - s.Width
	var out string
	for i, r := range runes {
		if i >= start && i < s.pos {
			out += glow.Render(string(r))
		} else {
			out += base.Render(string(r))
		}
	}
	return out
}
