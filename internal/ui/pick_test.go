package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/tempo/internal/clock"
	"github.com/ramanasai/tempo/internal/config"
	"github.com/ramanasai/tempo/internal/logging"
	"github.com/ramanasai/tempo/internal/ui/timepicker"
)

// drive feeds keys into the pick program, routing produced messages back in
// the way the tea runtime would, and reports whether it quit.
func drive(m pickModel, keys ...tea.Msg) (pickModel, bool) {
	queue := append([]tea.Msg(nil), keys...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		next, cmd := m.Update(msg)
		m = next.(pickModel)
		out := collect(cmd)
		if isQuit(out) {
			return m, true
		}
		queue = append(queue, out...)
	}
	return m, false
}

func TestPickModelCommit(t *testing.T) {
	initial := clock.Value{Day: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), Hour: 9, Minute: 0, Second: 12}
	m := newPickModel("At", &initial)
	require.True(t, m.picker.Active())

	m, quit := drive(m, runes("1"), runes("4"), runes("3"), runes("0"), keyEnter)
	require.True(t, quit)
	assert.True(t, m.committed)
	assert.Equal(t, 14, m.result.Hour)
	assert.Equal(t, 30, m.result.Minute)
	assert.Equal(t, 12, m.result.Second)
	assert.Equal(t, initial.Day, m.result.Day)
}

func TestPickModelCancel(t *testing.T) {
	initial := clock.Value{Hour: 9}
	m, quit := drive(newPickModel("At", &initial), runes("2"), keyEsc)
	require.True(t, quit)
	assert.False(t, m.committed)
	assert.Empty(t, m.View())
}

func TestPickModelCtrlCQuits(t *testing.T) {
	_, quit := drive(newPickModel("At", nil), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, quit)
}

func TestPickModelViewShowsTitle(t *testing.T) {
	v := clock.Value{Hour: 7, Minute: 5}
	view := newPickModel("Log entry at", &v).View()
	assert.Contains(t, view, "Log entry at")
	assert.Contains(t, view, "╭", "framed by the theme border")
}

func TestPickerOptionsStrict(t *testing.T) {
	cfg := config.Default()
	cfg.Picker.Strict = true
	p := timepicker.New(nil, PickerOptions(cfg, logging.Discard())...)
	p.Activate()

	p, cmd := p.Update(runes("1"))
	collect(cmd)
	p, cmd = p.Update(keyEnter)
	assert.Empty(t, collect(cmd))
	assert.True(t, p.Active())
	assert.Equal(t, "enter all four digits", p.Status())
}
