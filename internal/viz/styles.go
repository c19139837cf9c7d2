package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bridge status colors stay constant across themes so the health
// signal always reads the same way.
var (
	Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))

	StatusAvailable   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	StatusDegraded    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	StatusUnavailable = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
)

// ProbabilityBar renders a probability in [0, 1] as a bar colored by
// weight from the current theme's gradient.
func ProbabilityBar(p float64, width int) string {
	filled := int(p * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	color := CurrentTheme.BarLow
	switch {
	case p > 0.5:
		color = CurrentTheme.BarHigh
	case p > 0.1:
		color = CurrentTheme.BarMid
	}
	return lipgloss.NewStyle().Foreground(color).Render(bar)
}

// Separator draws a horizontal rule with a centered diamond.
func Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return Subtle.Render(left + " ◆ " + right)
}
