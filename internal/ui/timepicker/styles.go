package timepicker

import "github.com/charmbracelet/lipgloss"

// Palette shared with the rest of the UI.
var (
	ColorGreen = lipgloss.Color("#A6E3A1")
	ColorRed   = lipgloss.Color("#F38BA8")
	ColorText  = lipgloss.Color("#CDD6F4")
	ColorMuted = lipgloss.Color("#6C7086")
	ColorPanel = lipgloss.Color("#313244")
)

// Styles holds the styles of the picker.
type Styles struct {
	Idle        lipgloss.Style
	Icon        lipgloss.Style
	Slot        lipgloss.Style
	SlotFocused lipgloss.Style
	SlotError   lipgloss.Style
	Separator   lipgloss.Style
	Confirm     lipgloss.Style
	Cancel      lipgloss.Style
	Status      lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Idle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Foreground(ColorText).
			Padding(0, 1),
		Icon: lipgloss.NewStyle().
			Foreground(ColorGreen).
			MarginRight(1),
		Slot: lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPanel).
			Padding(0, 1).
			MarginRight(1),
		SlotFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPanel).
			Background(ColorGreen).
			Padding(0, 1).
			MarginRight(1),
		SlotError: lipgloss.NewStyle().
			Foreground(ColorRed).
			Background(ColorPanel).
			Padding(0, 1).
			MarginRight(1),
		Separator: lipgloss.NewStyle().
			Foreground(ColorGreen).
			MarginRight(1),
		Confirm: lipgloss.NewStyle().
			Foreground(ColorGreen).
			MarginLeft(1),
		Cancel: lipgloss.NewStyle().
			Foreground(ColorRed).
			MarginLeft(1),
		Status: lipgloss.NewStyle().
			Foreground(ColorRed).
			Italic(true),
	}
}
