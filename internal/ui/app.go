package ui

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/tempo/internal/clock"
	"github.com/ramanasai/tempo/internal/config"
	"github.com/ramanasai/tempo/internal/db"
	"github.com/ramanasai/tempo/internal/ui/timepicker"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Retime  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevDay: key.NewBinding(key.WithKeys("[", "h"), key.WithHelp("[", "previous day")),
		NextDay: key.NewBinding(key.WithKeys("]", "l"), key.WithHelp("]", "next day")),
		Today:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "today")),
		Retime:  key.NewBinding(key.WithKeys("t", "enter"), key.WithHelp("t", "retime")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevDay, k.NextDay, k.Retime, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type entriesLoadedMsg struct {
	day     time.Time
	entries []db.Entry
	err     error
}

type entryRetimedMsg struct {
	id       int64
	from, to string
	err      error
}

// Model is the day timeline. Selecting an entry and pressing t opens the
// time picker on the entry's clock time; confirming moves the entry.
type Model struct {
	// Dependencies
	db      *sql.DB
	loc     *time.Location
	now     func() time.Time
	logger  *slog.Logger
	pickOpt []timepicker.Option

	// State
	day     time.Time
	entries []db.Entry
	status  string
	picker  timepicker.Model

	// Components
	keys  keyMap
	help  help.Model
	theme Theme

	// Numeric state
	cursor int
	editID int64

	// Boolean state
	editing bool
}

// New returns a timeline for today.
func New(dbh *sql.DB, cfg config.Config, logger *slog.Logger) Model {
	loc := cfg.Location()
	now := time.Now
	t := now().In(loc)
	return Model{
		db:      dbh,
		loc:     loc,
		now:     now,
		logger:  logger,
		pickOpt: PickerOptions(cfg, logger),
		day:     time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc),
		keys:    defaultKeyMap(),
		help:    help.New(),
		theme:   DefaultTheme,
	}
}

// Run opens the timeline TUI.
func Run(dbh *sql.DB, cfg config.Config, logger *slog.Logger) error {
	_, err := tea.NewProgram(New(dbh, cfg, logger), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return m.loadCmd() }

func (m Model) loadCmd() tea.Cmd {
	dbh, day := m.db, m.day
	return func() tea.Msg {
		entries, err := db.ListEntries(context.Background(), dbh, day, day.AddDate(0, 0, 1))
		return entriesLoadedMsg{day: day, entries: entries, err: err}
	}
}

func (m Model) retimeCmd(e db.Entry, v clock.Value) tea.Cmd {
	dbh, loc := m.db, m.loc
	return func() tea.Msg {
		from := clock.FromTime(e.At.In(loc)).Format()
		err := db.UpdateEntryTime(context.Background(), dbh, e.ID, v.Time())
		return entryRetimedMsg{id: e.ID, from: from, to: v.Format(), err: err}
	}
}

func (m Model) selected() (db.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return db.Entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case entriesLoadedMsg:
		if !msg.day.Equal(m.day) {
			return m, nil
		}
		if msg.err != nil {
			m.status = "load error: " + msg.err.Error()
			return m, nil
		}
		m.entries = msg.entries
		m.cursor = clamp(m.cursor, 0, len(m.entries)-1)
		return m, nil

	case entryRetimedMsg:
		if msg.err != nil {
			m.status = "retime failed: " + msg.err.Error()
			m.logger.Error("retime entry", "id", msg.id, "err", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("Entry #%d moved %s → %s", msg.id, msg.from, msg.to)
		m.logger.Info("entry retimed", "id", msg.id, "from", msg.from, "to", msg.to)
		return m, m.loadCmd()

	case timepicker.CommitMsg:
		if !m.editing {
			return m, nil
		}
		m.editing = false
		e, ok := m.findEntry(m.editID)
		if !ok {
			return m, nil
		}
		return m, m.retimeCmd(e, msg.Value)

	case timepicker.CancelMsg:
		m.editing = false
		m.status = "retime cancelled"
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m.updateNormal(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, 0, len(m.entries)-1)
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, 0, len(m.entries)-1)
	case key.Matches(msg, m.keys.PrevDay):
		return m.moveDay(m.day.AddDate(0, 0, -1))
	case key.Matches(msg, m.keys.NextDay):
		return m.moveDay(m.day.AddDate(0, 0, 1))
	case key.Matches(msg, m.keys.Today):
		t := m.now().In(m.loc)
		return m.moveDay(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, m.loc))
	case key.Matches(msg, m.keys.Retime):
		e, ok := m.selected()
		if !ok {
			return m, nil
		}
		v := clock.FromTime(e.At.In(m.loc))
		m.picker = timepicker.New(&v, m.pickOpt...)
		cmd := m.picker.Activate()
		m.editing = true
		m.editID = e.ID
		m.status = ""
		return m, cmd
	}
	return m, nil
}

func (m Model) moveDay(day time.Time) (tea.Model, tea.Cmd) {
	m.day = day
	m.entries = nil
	m.cursor = 0
	m.status = ""
	return m, m.loadCmd()
}

func (m Model) findEntry(id int64) (db.Entry, bool) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, true
		}
	}
	return db.Entry{}, false
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("tempo · " + m.day.Format("Mon Jan 2, 2006")))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(m.theme.Hint.Render("No entries for this day."))
		b.WriteString("\n")
	}
	for i, e := range m.entries {
		line := m.renderEntry(e)
		if i == m.cursor {
			line = m.theme.Selected.Render("› " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
		if m.editing && e.ID == m.editID {
			b.WriteString(lipgloss.NewStyle().MarginLeft(4).Render(m.picker.View()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		style := m.theme.Success
		if strings.Contains(m.status, "error") || strings.Contains(m.status, "failed") {
			style = m.theme.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	if !m.editing {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m Model) renderEntry(e db.Entry) string {
	at := m.theme.Value.Render(clock.FromTime(e.At.In(m.loc)).Format())
	cat := lipgloss.NewStyle().Bold(true).Foreground(colorForCategory(e.Category)).Render(padRight(strings.ToUpper(e.Category), 7))
	parts := []string{at, cat}
	if p := strings.TrimSpace(e.Project); p != "" {
		parts = append(parts, m.theme.Label.Render("["+p+"]"))
	}
	text := e.Text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i] + " …"
	}
	parts = append(parts, text, m.theme.Hint.Render(fmt.Sprintf("#%d", e.ID)))
	return strings.Join(parts, " ")
}

func colorForCategory(cat string) lipgloss.Color {
	switch strings.ToLower(cat) {
	case "task":
		return lipgloss.Color("#F9E2AF")
	case "meeting":
		return lipgloss.Color("#F5C2E7")
	case "timer":
		return lipgloss.Color("#A6E3A1")
	case "note":
		return lipgloss.Color("#89B4FA")
	default:
		return lipgloss.Color("#94E2D5")
	}
}

func padRight(s string, w int) string {
	if len([]rune(s)) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len([]rune(s)))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
