package timepicker

import (
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/tempo/internal/clock"
)

// Option configures a Model.
type Option func(*Model)

// WithOnCommit registers a callback run with every confirmed value, before
// CommitMsg is delivered.
func WithOnCommit(fn func(clock.Value)) Option {
	return func(m *Model) { m.onCommit = fn }
}

// WithNow sets the clock used for the placeholder shown when there is no
// value.
func WithNow(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithStrict refuses to confirm until all four digits are valid.
func WithStrict(strict bool) Option {
	return func(m *Model) { m.strict = strict }
}

// WithClipboard enables ctrl+v reading from the system clipboard.
func WithClipboard(enabled bool) Option {
	return func(m *Model) { m.clipboard = enabled }
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// Model is the time picker component.
type Model struct {
	// State
	session *Session
	slots   [clock.Width]Slot
	value   clock.Value
	status  string

	// Dependencies
	onCommit func(clock.Value)
	now      func() time.Time
	logger   *slog.Logger

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// Boolean state
	hasValue  bool
	strict    bool
	clipboard bool
}

// New returns an idle picker showing value. A nil value shows the current
// time until something is committed. value is copied, never written to.
func New(value *clock.Value, opts ...Option) Model {
	m := Model{
		session:   NewSession(value),
		now:       time.Now,
		logger:    slog.New(slog.DiscardHandler),
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		clipboard: true,
	}
	for i, spec := range Fields {
		m.slots[i] = NewSlot(spec)
	}
	if value != nil {
		m.value, m.hasValue = *value, true
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Active reports whether the picker is editing.
func (m Model) Active() bool { return m.session.Active() }

// Session exposes the edit state.
func (m Model) Session() *Session { return m.session }

// Slots returns the four digit fields.
func (m Model) Slots() [clock.Width]Slot { return m.slots }

// Value returns the current value; ok is false until one is set.
func (m Model) Value() (v clock.Value, ok bool) { return m.value, m.hasValue }

// Status returns the last message shown under the fields.
func (m Model) Status() string { return m.status }

// SetValue replaces the value shown and used as the base of the next
// confirm. nil clears it.
func (m *Model) SetValue(v *clock.Value) {
	if v == nil {
		m.value, m.hasValue = clock.Value{}, false
		return
	}
	m.value, m.hasValue = *v, true
}

// Activate opens an edit session on the current value.
func (m *Model) Activate() tea.Cmd {
	if m.session.Active() {
		return nil
	}
	m.session.Activate(m.base())
	m.status = ""
	m.logger.Debug("picker activated", "buffer", m.session.Buffer().String())
	return m.sync()
}

// Display is the text shown while idle: the value as HH:MM, or the current
// time when there is no value.
func (m Model) Display() string {
	if m.hasValue {
		return m.value.Format()
	}
	return clock.FromTime(m.now()).Format()
}

// Labels lists the accessible names of the controls currently on screen.
func (m Model) Labels() []string {
	if !m.session.Active() {
		return []string{LabelPicker}
	}
	labels := make([]string, 0, len(m.slots)+2)
	for _, s := range m.slots {
		labels = append(labels, s.Label())
	}
	return append(labels, LabelConfirm, LabelCancel)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clipboardMsg:
		if msg.err != nil {
			m.status = "clipboard unavailable"
			m.logger.Warn("read clipboard", "err", msg.err)
			return m, nil
		}
		m.session.PasteDigits(msg.text)
		cmd := m.sync()
		return m, cmd

	case tea.KeyMsg:
		if !m.session.Active() {
			if key.Matches(msg, m.keys.Activate) {
				cmd := m.Activate()
				return m, cmd
			}
			return m, nil
		}
		return m.updateActive(msg)
	}
	return m, nil
}

func (m Model) updateActive(msg tea.KeyMsg) (Model, tea.Cmd) {
	for i, b := range m.keys.Field {
		if key.Matches(msg, b) {
			cmd := m.requestFocus(i)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()
	case key.Matches(msg, m.keys.Cancel):
		return m.cancel()
	case key.Matches(msg, m.keys.Paste):
		if !m.clipboard {
			return m, nil
		}
		return m, readClipboard
	case key.Matches(msg, m.keys.Next):
		cmd := m.requestFocus(m.neighbour(1))
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.requestFocus(m.neighbour(-1))
		return m, cmd
	}

	pos := m.session.Focus()
	if msg.Paste && pos == NoFocus {
		// nothing is focused after a paste; let the last field take the next one
		pos = NoFocus - 1
	}
	if pos < 0 || pos >= NoFocus {
		return m, nil
	}
	if m.slots[pos].HandleKey(msg, m.callbacks(pos)) {
		cmd := m.sync()
		return m, cmd
	}
	return m, nil
}

func (m Model) confirm() (Model, tea.Cmd) {
	if m.strict && !m.session.Buffer().Complete() {
		m.status = "enter all four digits"
		return m, nil
	}
	v, ok := m.session.Confirm(m.base())
	if !ok {
		return m, nil
	}
	m.value, m.hasValue = v, true
	m.status = ""
	m.logger.Debug("picker confirmed", "value", v.Format())
	if m.onCommit != nil {
		m.onCommit(v)
	}
	cmd := m.sync()
	return m, tea.Batch(cmd, func() tea.Msg { return CommitMsg{Value: v} })
}

func (m Model) cancel() (Model, tea.Cmd) {
	m.session.Cancel(m.base())
	m.status = ""
	m.logger.Debug("picker cancelled")
	cmd := m.sync()
	return m, tea.Batch(cmd, func() tea.Msg { return CancelMsg{} })
}

// base returns a copy of the value so the session never holds the
// caller's memory.
func (m Model) base() *clock.Value {
	if !m.hasValue {
		return nil
	}
	v := m.value
	return &v
}

func (m Model) callbacks(pos int) SlotCallbacks {
	s := m.session
	return SlotCallbacks{
		OnChange: func(raw string) { s.EnterDigit(pos, raw) },
		OnPaste:  s.PasteDigits,
		OnFocus:  func() { s.FocusSlot(pos) },
	}
}

func (m Model) neighbour(step int) int {
	pos := m.session.Focus()
	if pos == NoFocus {
		if step > 0 {
			return 0
		}
		return NoFocus - 1
	}
	return min(max(pos+step, 0), NoFocus-1)
}

func (m *Model) requestFocus(pos int) tea.Cmd {
	m.slots[pos].RequestFocus(m.callbacks(pos))
	return m.sync()
}

// sync copies the session's digits into the slots and applies a pending
// focus intent. Focus is only pushed to the slots here, once per change.
func (m *Model) sync() tea.Cmd {
	buf := m.session.Buffer()
	for i := range m.slots {
		m.slots[i].SetDigit(buf[i])
	}
	pos, ok := m.session.TakeFocusIntent()
	if !ok {
		return nil
	}
	var cmds []tea.Cmd
	for i := range m.slots {
		cmds = append(cmds, m.slots[i].SetFocused(i == pos))
	}
	return tea.Batch(cmds...)
}

func readClipboard() tea.Msg {
	text, err := clipboard.ReadAll()
	return clipboardMsg{text: text, err: err}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.session.Active() {
		return m.styles.Idle.Render(m.styles.Icon.Render("⏱") + m.Display())
	}

	var b strings.Builder
	for i, s := range m.slots {
		if i == clock.MinuteTens {
			b.WriteString(m.styles.Separator.Render(":"))
		}
		b.WriteString(s.View(m.styles))
	}
	b.WriteString(m.styles.Confirm.Render("✓"))
	b.WriteString(m.styles.Cancel.Render("✗"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Status.Render(m.status))
	}
	return b.String()
}
