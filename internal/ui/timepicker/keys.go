package timepicker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ramanasai/tempo/internal/clock"
)

// Accessible labels of the picker's controls.
const (
	LabelPicker  = "time-picker"
	LabelConfirm = "Confirm time"
	LabelCancel  = "Cancel time choice"
)

// KeyMap defines the keybindings of the picker.
type KeyMap struct {
	Activate key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Paste    key.Binding

	// Field jumps straight to one digit field, out of order.
	Field [clock.Width]key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	k := KeyMap{
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "edit time"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", LabelConfirm),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", LabelCancel),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous field"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste HHMM"),
		),
	}
	for i := range k.Field {
		k.Field[i] = key.NewBinding(
			key.WithKeys(fmt.Sprintf("alt+%d", i+1)),
			key.WithHelp("alt+1-4", "jump to field"),
		)
	}
	return k
}

// ShortHelp implements help.KeyMap for the active picker.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.Next, k.Paste}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Cancel},
		{k.Next, k.Prev, k.Field[0], k.Paste},
	}
}
