package timepicker

import (
	"github.com/ramanasai/tempo/internal/clock"
)

// idleFocus is the focus position while no session is active.
const idleFocus = -1

// Session is the edit state of one picker: whether it is editing, which
// field has focus and the digits typed so far.
//
// A Session belongs to exactly one Model and is driven from that model's
// Update; it is not safe for concurrent use.
type Session struct {
	buf    clock.Buffer
	focus  int
	active bool

	// focus change waiting to be applied to the fields
	intent      int
	intentReady bool
}

// NewSession returns an idle session whose buffer holds the digits of value,
// or nothing when value is nil.
func NewSession(value *clock.Value) *Session {
	s := &Session{focus: idleFocus}
	s.reset(value)
	return s
}

func (s *Session) reset(value *clock.Value) {
	if value == nil {
		s.buf = clock.Buffer{}
		return
	}
	s.buf = clock.Decompose(*value)
}

// Active reports whether an edit is in progress.
func (s *Session) Active() bool { return s.active }

// Focus returns the focused field. NoFocus means past the last field;
// a negative value means the session is idle.
func (s *Session) Focus() int { return s.focus }

// Buffer returns a copy of the digits being edited.
func (s *Session) Buffer() clock.Buffer { return s.buf }

// Activate starts editing current, focusing the first field.
func (s *Session) Activate(current *clock.Value) {
	if s.active {
		return
	}
	s.active = true
	s.reset(current)
	s.moveFocus(0)
}

// EnterDigit stores the last character of raw at pos and advances focus to
// the next field. It overwrites whatever pos held. Past the last field
// focus simply goes away.
func (s *Session) EnterDigit(pos int, raw string) {
	if !s.active || pos < 0 || pos >= clock.Width {
		return
	}
	d := clock.ParseDigit(0)
	if rs := []rune(raw); len(rs) > 0 {
		d = clock.ParseDigit(rs[len(rs)-1])
	}
	s.buf[pos] = d
	s.moveFocus(pos + 1)
}

// FocusSlot moves focus to pos without touching the digits.
func (s *Session) FocusSlot(pos int) {
	if !s.active || pos < 0 || pos >= clock.Width {
		return
	}
	s.moveFocus(pos)
}

// PasteDigits replaces the whole buffer with the first four characters of
// text and leaves no field focused.
func (s *Session) PasteDigits(text string) {
	if !s.active {
		return
	}
	s.buf = parsePaste(text)
	s.moveFocus(NoFocus)
}

// Confirm ends the session and returns base with the edited hour and
// minute. ok is false when the session was not active.
func (s *Session) Confirm(base *clock.Value) (v clock.Value, ok bool) {
	if !s.active {
		return clock.Value{}, false
	}
	v = clock.Recompose(base, s.buf)
	s.active = false
	s.moveFocus(idleFocus)
	return v, true
}

// Cancel ends the session without a result. The buffer is rebuilt from
// current so the next Activate starts from the unedited value.
func (s *Session) Cancel(current *clock.Value) {
	if !s.active {
		return
	}
	s.reset(current)
	s.active = false
	s.moveFocus(idleFocus)
}

func (s *Session) moveFocus(pos int) {
	s.focus = pos
	s.intent = pos
	s.intentReady = true
}

// TakeFocusIntent returns the focus position set by the last transition,
// once. Later calls report false until focus moves again.
func (s *Session) TakeFocusIntent() (pos int, ok bool) {
	if !s.intentReady {
		return 0, false
	}
	s.intentReady = false
	return s.intent, true
}
