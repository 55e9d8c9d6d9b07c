package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/tempo/internal/clock"
	"github.com/ramanasai/tempo/internal/config"
)

// fallback reminder time when the configured one does not parse
var defaultReminder = clock.Value{Hour: 17}

// ReminderTime returns the configured reminder time of day.
func ReminderTime(cfg config.Config) clock.Value {
	v, err := clock.Parse(cfg.Reminder.Time)
	if err != nil {
		return defaultReminder
	}
	return v
}

// IsWorkday reports whether t falls on a configured workday that is not a
// holiday. An empty workday list means every day.
func IsWorkday(t time.Time, cfg config.Config) bool {
	t = t.In(cfg.Location())
	for _, h := range cfg.Reminder.Holidays {
		if strings.TrimSpace(h) == t.Format("2006-01-02") {
			return false
		}
	}
	if len(cfg.Reminder.Workdays) == 0 {
		return true
	}
	day := strings.ToLower(t.Weekday().String()[:3])
	for _, d := range cfg.Reminder.Workdays {
		if d = strings.TrimSpace(d); len(d) >= 3 && strings.ToLower(d[:3]) == day {
			return true
		}
	}
	return false
}

// TargetMinutes is the tracked time wanted on day: stats.target on
// workdays, zero otherwise. An unparsable target counts as 8 hours.
func TargetMinutes(day time.Time, cfg config.Config) int {
	if !IsWorkday(day, cfg) {
		return 0
	}
	v, err := clock.Parse(cfg.Stats.Target)
	if err != nil {
		return 8 * 60
	}
	return v.Hour*60 + v.Minute
}

// NextAt computes the next occurrence of reminder time that is on a configured workday and not a holiday.
func NextAt(now time.Time, cfg config.Config) time.Time {
	loc := cfg.Location()
	now = now.In(loc)
	at := ReminderTime(cfg)

	// candidate today at hh:mm
	cand := at.On(now).Time()
	if !now.Before(cand) {
		cand = at.On(now.AddDate(0, 0, 1)).Time()
	}
	for i := 0; i < 366; i++ {
		if IsWorkday(cand, cfg) {
			return cand
		}
		cand = at.On(cand.AddDate(0, 0, 1)).Time()
	}
	return cand
}

// RunConfigured runs the reminder callback at the configured schedule until ctx is canceled.
func RunConfigured(ctx context.Context, cfg config.Config, f func()) {
	next := NextAt(time.Now(), cfg)
	t := time.NewTimer(time.Until(next))
	for {
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			f()
			next = NextAt(time.Now(), cfg)
			t.Reset(time.Until(next))
		}
	}
}
