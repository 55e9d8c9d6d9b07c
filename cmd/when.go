package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/tempo/internal/clock"
	"github.com/ramanasai/tempo/internal/ui"
	"github.com/ramanasai/tempo/internal/utils"
)

var errCancelled = errors.New("cancelled")

// whenFlags is the --at/--pick pair for commands that take a clock time.
type whenFlags struct {
	at   string
	day  string
	pick bool
}

func (w *whenFlags) register(cmd *cobra.Command, what string, withDay bool) {
	cmd.Flags().StringVar(&w.at, "at", "", what+" as HH:MM")
	cmd.Flags().BoolVar(&w.pick, "pick", false, "choose "+what+" with the interactive picker")
	cmd.MarkFlagsMutuallyExclusive("at", "pick")
	if withDay {
		cmd.Flags().StringVar(&w.day, "day", "", "day of the entry (today, yesterday, 3d, 2006-01-02); keeps the current time unless --at/--pick")
	}
}

func (w whenFlags) set() bool { return w.at != "" || w.pick }

// value returns the clock time chosen by the flags, starting from initial.
// The picker returns errCancelled when the user backs out.
func (w whenFlags) value(title string, initial clock.Value) (clock.Value, error) {
	if w.at != "" {
		v, err := clock.Parse(w.at)
		if err != nil {
			return clock.Value{}, fmt.Errorf("--at: %w", err)
		}
		v.Day = initial.Day
		return v, nil
	}
	if !w.pick {
		return initial, nil
	}

	v, ok, err := ui.PickTime(title, &initial, ui.PickerOptions(cfg, logger)...)
	if err != nil {
		return clock.Value{}, err
	}
	if !ok {
		return clock.Value{}, errCancelled
	}
	return v, nil
}

// resolve turns the flags into an instant on --day (default today). Without
// --at or --pick the current clock time is used on that day.
func (w whenFlags) resolve(title string, now time.Time) (time.Time, error) {
	loc := cfg.Location()
	now = now.In(loc)
	if !w.set() && w.day == "" {
		return now, nil
	}
	day, err := utils.ParseDay(w.day, now, loc)
	if err != nil {
		return time.Time{}, err
	}
	current := clock.FromTime(now).On(day)
	if !w.set() {
		return current.Time(), nil
	}
	current.Second, current.Nanosecond = 0, 0
	v, err := w.value(title, current)
	if err != nil {
		return time.Time{}, err
	}
	return v.On(day).Time(), nil
}
