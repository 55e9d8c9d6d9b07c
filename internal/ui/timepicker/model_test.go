package timepicker

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/tempo/internal/clock"
)

// collect runs cmd and any batched commands and returns the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, []tea.Msg) {
	t.Helper()
	var msgs []tea.Msg
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(k)
		msgs = append(msgs, collect(cmd)...)
	}
	return m, msgs
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func focusedSlots(m Model) []int {
	var out []int
	for i, s := range m.Slots() {
		if s.Focused() {
			out = append(out, i)
		}
	}
	return out
}

func TestModelIdleFormatting(t *testing.T) {
	m := New(&clock.Value{Hour: 7, Minute: 5})
	assert.False(t, m.Active())
	assert.Equal(t, "07:05", m.Display())
	assert.Contains(t, m.View(), "07:05")
	assert.Equal(t, []string{LabelPicker}, m.Labels())
}

func TestModelIdlePlaceholderIsNow(t *testing.T) {
	now := time.Date(2025, 1, 2, 16, 42, 0, 0, time.UTC)
	m := New(nil, WithNow(func() time.Time { return now }))
	assert.Equal(t, "16:42", m.Display())
	_, ok := m.Value()
	assert.False(t, ok)
}

func TestModelActivateFocusesFirstField(t *testing.T) {
	m := New(&clock.Value{Hour: 9, Minute: 45})

	m, _ = press(t, m, keyEnter)

	require.True(t, m.Active())
	assert.Equal(t, []int{0}, focusedSlots(m))
	assert.True(t, m.Slots()[0].InputFocused())
	assert.Equal(t, []string{"hour1", "hour2", "minute1", "minute2", LabelConfirm, LabelCancel}, m.Labels())
	view := m.View()
	assert.Contains(t, view, LabelConfirm)
	assert.Contains(t, view, LabelCancel)
}

func TestModelTypingAdvancesFocus(t *testing.T) {
	m := New(nil)
	m, _ = press(t, m, keyEnter, runes("1"), runes("4"), runes("3"))

	assert.Equal(t, 3, m.Session().Focus())
	assert.Equal(t, []int{3}, focusedSlots(m))
	assert.Equal(t, "14:3_", m.Session().Buffer().String())

	m, _ = press(t, m, runes("0"))
	assert.Empty(t, focusedSlots(m))

	// nothing is focused, so further digits go nowhere
	m, _ = press(t, m, runes("9"))
	assert.Equal(t, "14:30", m.Session().Buffer().String())
}

func TestModelIgnoresLetters(t *testing.T) {
	m := New(&clock.Value{Hour: 10})
	m, _ = press(t, m, keyEnter, runes("x"))
	assert.Equal(t, 0, m.Session().Focus())
	assert.Equal(t, "10:00", m.Session().Buffer().String())
}

func TestModelTabAndArrowsMoveFocus(t *testing.T) {
	m := New(&clock.Value{Hour: 8, Minute: 15})
	m, _ = press(t, m, keyEnter, keyTab, keyTab)
	assert.Equal(t, []int{2}, focusedSlots(m))

	m, _ = press(t, m, keyLeft)
	assert.Equal(t, []int{1}, focusedSlots(m))
	assert.Equal(t, "08:15", m.Session().Buffer().String())

	m, _ = press(t, m, runes("9"))
	assert.Equal(t, "09:15", m.Session().Buffer().String())
	assert.Equal(t, []int{2}, focusedSlots(m))
}

func TestModelJumpToField(t *testing.T) {
	m := New(&clock.Value{Hour: 8, Minute: 15})
	alt := func(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true} }

	m, _ = press(t, m, keyEnter, alt('4'))
	assert.Equal(t, []int{3}, focusedSlots(m))
	assert.Equal(t, "08:15", m.Session().Buffer().String(), "jumping does not type")

	m, _ = press(t, m, alt('2'), runes("7"))
	assert.Equal(t, "07:15", m.Session().Buffer().String())
	assert.Equal(t, []int{2}, focusedSlots(m))
}

func TestModelBracketedPaste(t *testing.T) {
	m := New(&clock.Value{Hour: 1, Minute: 1})
	m, _ = press(t, m, keyEnter, keyTab)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2359"), Paste: true})

	assert.Equal(t, "23:59", m.Session().Buffer().String())
	assert.Equal(t, NoFocus, m.Session().Focus())
	assert.Empty(t, focusedSlots(m))

	// a second paste still lands although no field is focused
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12"), Paste: true})
	assert.Equal(t, "12:__", m.Session().Buffer().String())
}

func TestModelClipboardPaste(t *testing.T) {
	m := New(nil)
	m, _ = press(t, m, keyEnter)

	m, _ = m.Update(clipboardMsg{text: "0730"})
	assert.Equal(t, "07:30", m.Session().Buffer().String())

	m, _ = m.Update(clipboardMsg{err: errors.New("no xclip")})
	assert.Equal(t, "clipboard unavailable", m.Status())
	assert.Equal(t, "07:30", m.Session().Buffer().String())
}

func TestModelClipboardDisabled(t *testing.T) {
	m := New(nil, WithClipboard(false))
	m, _ = press(t, m, keyEnter)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Nil(t, cmd)
}

func TestModelConfirmPreservesOtherFields(t *testing.T) {
	day := time.Date(2025, 7, 4, 0, 0, 0, 0, time.Local)
	orig := clock.Value{Day: day, Hour: 9, Minute: 45, Second: 10}
	var committed []clock.Value
	m := New(&orig, WithOnCommit(func(v clock.Value) { committed = append(committed, v) }))

	m, msgs := press(t, m, keyEnter, runes("1"), runes("3"), runes("2"), runes("0"), keyEnter)

	want := clock.Value{Day: day, Hour: 13, Minute: 20, Second: 10}
	require.Len(t, committed, 1)
	assert.Equal(t, want, committed[0])
	assert.Contains(t, msgs, CommitMsg{Value: want})
	assert.False(t, m.Active())
	assert.Equal(t, "13:20", m.Display())
	assert.Equal(t, 9, orig.Hour, "caller value must not change")
	assert.Empty(t, focusedSlots(m))
}

func TestModelConfirmWithoutValueUsesZeroBase(t *testing.T) {
	m := New(nil)
	m, msgs := press(t, m, keyEnter, runes("0"), runes("6"), keyEnter)
	assert.Contains(t, msgs, CommitMsg{Value: clock.Value{Hour: 6}})
	v, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, 6, v.Hour)
}

func TestModelConfirmAcceptsOutOfRangeHour(t *testing.T) {
	m := New(nil)
	m, msgs := press(t, m, keyEnter, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2975"), Paste: true}, keyEnter)
	assert.Contains(t, msgs, CommitMsg{Value: clock.Value{Hour: 29, Minute: 75}})
	assert.Equal(t, "29:75", m.Display())
}

func TestModelStrictRefusesIncompleteBuffer(t *testing.T) {
	m := New(nil, WithStrict(true))
	m, msgs := press(t, m, keyEnter, runes("1"), keyEnter)

	assert.True(t, m.Active())
	assert.Empty(t, msgs)
	assert.NotEmpty(t, m.Status())

	m, msgs = press(t, m, runes("2"), runes("0"), runes("0"), keyEnter)
	assert.False(t, m.Active())
	assert.Contains(t, msgs, CommitMsg{Value: clock.Value{Hour: 12}})
}

func TestModelCancelRestores(t *testing.T) {
	orig := clock.Value{Hour: 9, Minute: 45}
	called := false
	m := New(&orig, WithOnCommit(func(clock.Value) { called = true }))

	m, msgs := press(t, m, keyEnter, runes("2"), runes("2"), keyEsc)

	assert.False(t, called)
	assert.Contains(t, msgs, CancelMsg{})
	assert.False(t, m.Active())
	assert.Equal(t, "09:45", m.Display())

	m, _ = press(t, m, keyEnter)
	assert.Equal(t, "09:45", m.Session().Buffer().String())
}

func TestModelViewShowsDigits(t *testing.T) {
	m := New(&clock.Value{Hour: 21, Minute: 5})
	m, _ = press(t, m, keyEnter)
	view := m.View()
	for _, d := range []string{"2", "1", "0", "5"} {
		assert.True(t, strings.Contains(view, d), "view should contain %q", d)
	}
	assert.Contains(t, view, ":")
}

func TestModelSetValue(t *testing.T) {
	m := New(nil)
	m.SetValue(&clock.Value{Hour: 18, Minute: 30})
	assert.Equal(t, "18:30", m.Display())
	m, _ = press(t, m, keyEnter)
	assert.Equal(t, "18:30", m.Session().Buffer().String())
}
