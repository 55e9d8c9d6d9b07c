package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/tempo/internal/ui/timepicker"
)

type Theme struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Border   lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Selected lipgloss.Style
}

var DefaultTheme = Theme{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Label:    lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
	Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
	Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1),
	Hint:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
	Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
	Selected: lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#313244")),
}

// Picker derives the time picker styles from the theme.
func (t Theme) Picker() timepicker.Styles {
	s := timepicker.DefaultStyles()
	s.Status = t.Error.Bold(false).Italic(true)
	s.Separator = s.Separator.Foreground(t.Title.GetForeground())
	return s
}
