// Package tui provides the live dashboard for neuromind.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/neuromind/internal/task"
	"github.com/javiermolinar/neuromind/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	Title    lipgloss.Style
	Greeting lipgloss.Style
	Section  lipgloss.Style
	Stat     lipgloss.Style
	StatVal  lipgloss.Style
	Muted    lipgloss.Style
	Text     lipgloss.Style

	High   lipgloss.Style
	Medium lipgloss.Style
	Low    lipgloss.Style

	Commitment lipgloss.Style
	Selected   lipgloss.Style
	Warning    lipgloss.Style
	Status     lipgloss.Style
	Error      lipgloss.Style
	Prompt     lipgloss.Style
}

// NewStyles builds the styles for a palette.
func NewStyles(p *theme.Palette) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TextOnAccent).
			Background(p.Accent).
			Padding(0, 1),
		Greeting: lipgloss.NewStyle().Foreground(p.Fg).Bold(true),
		Section: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			MarginTop(1),
		Stat:    lipgloss.NewStyle().Foreground(p.FgMuted),
		StatVal: lipgloss.NewStyle().Foreground(p.Fg).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.FgMuted),
		Text:    lipgloss.NewStyle().Foreground(p.Fg),

		High:   lipgloss.NewStyle().Foreground(p.High).Bold(true),
		Medium: lipgloss.NewStyle().Foreground(p.Medium),
		Low:    lipgloss.NewStyle().Foreground(p.Low),

		Commitment: lipgloss.NewStyle().
			Foreground(p.Commitment).
			Background(p.CommitmentBg),
		Selected: lipgloss.NewStyle().
			Foreground(p.Fg).
			Background(p.Selection).
			Bold(true),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),
		Status:  lipgloss.NewStyle().Foreground(p.Low),
		Error: lipgloss.NewStyle().
			Foreground(p.TextOnWarning).
			Background(p.Warning).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
	}
}

// Priority returns the style for a task priority.
func (s *Styles) Priority(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHigh:
		return s.High
	case task.PriorityLow:
		return s.Low
	default:
		return s.Medium
	}
}
