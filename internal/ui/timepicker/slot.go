package timepicker

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/tempo/internal/clock"
)

// SlotCallbacks are the events a Slot reports to its owner.
type SlotCallbacks struct {
	OnChange func(raw string) // a digit was typed; raw is the field text including it
	OnPaste  func(text string)
	OnFocus  func() // the user picked this field directly
}

// Slot is a single-digit input field.
type Slot struct {
	spec    FieldSpec
	digit   clock.Digit
	input   textinput.Model
	focused bool
}

// NewSlot returns an unfocused, empty slot.
func NewSlot(spec FieldSpec) Slot {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "0"
	in.CharLimit = 1
	in.Width = 1
	in.Cursor.SetMode(cursor.CursorHide)
	return Slot{spec: spec, input: in}
}

func (s Slot) Spec() FieldSpec    { return s.spec }
func (s Slot) Digit() clock.Digit { return s.digit }
func (s Slot) Focused() bool      { return s.focused }
func (s Slot) InputFocused() bool { return s.input.Focused() }
func (s Slot) Label() string      { return s.spec.ID }

// OutOfRange reports whether the digit is above the field's advertised
// maximum. It is only used for display; nothing blocks such a digit.
func (s Slot) OutOfRange() bool {
	n, ok := s.digit.Int()
	return ok && n > s.spec.Max
}

// SetDigit replaces the shown digit.
func (s *Slot) SetDigit(d clock.Digit) {
	s.digit = d
	s.input.SetValue(d.String())
}

// SetFocused records whether the slot should hold focus. Input focus is
// only requested on the false to true edge, so calling it again is harmless.
func (s *Slot) SetFocused(focused bool) tea.Cmd {
	if focused == s.focused {
		return nil
	}
	s.focused = focused
	if focused {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// HandleKey reports typed digits and pastes through cb. Typed keys that are
// not a single digit are dropped here; pasted text is passed on untouched.
func (s Slot) HandleKey(msg tea.KeyMsg, cb SlotCallbacks) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	if msg.Paste {
		if cb.OnPaste != nil {
			cb.OnPaste(string(msg.Runes))
		}
		return true
	}
	if len(msg.Runes) != 1 || msg.Runes[0] < '0' || msg.Runes[0] > '9' {
		return false
	}
	if cb.OnChange != nil {
		cb.OnChange(s.input.Value() + string(msg.Runes))
	}
	return true
}

// RequestFocus reports that the user picked this slot out of order.
func (s Slot) RequestFocus(cb SlotCallbacks) {
	if cb.OnFocus != nil {
		cb.OnFocus()
	}
}

// View renders the slot.
func (s Slot) View(st Styles) string {
	style := st.Slot
	switch {
	case s.focused:
		style = st.SlotFocused
	case s.digit.IsInvalid() || s.OutOfRange():
		style = st.SlotError
	}
	return style.Render(s.input.View())
}
