package ui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/tempo/internal/clock"
	"github.com/ramanasai/tempo/internal/config"
	"github.com/ramanasai/tempo/internal/ui/timepicker"
)

// PickerOptions turns config into picker options.
func PickerOptions(cfg config.Config, logger *slog.Logger) []timepicker.Option {
	return []timepicker.Option{
		timepicker.WithStrict(cfg.Picker.Strict),
		timepicker.WithClipboard(cfg.Picker.Clipboard),
		timepicker.WithLogger(logger),
		timepicker.WithStyles(DefaultTheme.Picker()),
	}
}

// pickModel runs a single picker as a whole program and quits when the
// user confirms or cancels.
type pickModel struct {
	picker    timepicker.Model
	title     string
	init      tea.Cmd
	result    clock.Value
	committed bool
}

func newPickModel(title string, initial *clock.Value, opts ...timepicker.Option) pickModel {
	p := timepicker.New(initial, opts...)
	cmd := p.Activate()
	return pickModel{picker: p, title: title, init: cmd}
}

func (m pickModel) Init() tea.Cmd { return m.init }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timepicker.CommitMsg:
		m.result, m.committed = msg.Value, true
		return m, tea.Quit
	case timepicker.CancelMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	if !m.picker.Active() {
		return ""
	}
	return DefaultTheme.Border.Render(DefaultTheme.Title.Render(m.title)+"\n\n"+m.picker.View()) + "\n"
}

// PickTime asks for a clock time in the terminal, starting from initial.
// ok is false when the user cancelled.
func PickTime(title string, initial *clock.Value, opts ...timepicker.Option) (v clock.Value, ok bool, err error) {
	final, err := tea.NewProgram(newPickModel(title, initial, opts...)).Run()
	if err != nil {
		return clock.Value{}, false, fmt.Errorf("run picker: %w", err)
	}
	pm, isPick := final.(pickModel)
	if !isPick || !pm.committed {
		return clock.Value{}, false, nil
	}
	return pm.result, true, nil
}
