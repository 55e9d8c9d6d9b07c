package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DayTotal is the tracked time of one local day.
type DayTotal struct {
	Day        time.Time // midnight in the report location
	Minutes    int
	Entries    int
	ByCategory map[string]int
	ByProject  map[string]int
}

// DailyTotals sums duration_minutes per day of loc for days in
// [from, to). Every day in the range is present, including empty ones,
// oldest first. Running timers count zero minutes.
func DailyTotals(ctx context.Context, dbh *sql.DB, from, to time.Time, loc *time.Location) ([]DayTotal, error) {
	from, to = from.In(loc), to.In(loc)
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	if !to.After(start) {
		return nil, fmt.Errorf("empty range %s to %s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	entries, err := ListEntries(ctx, dbh, start, to)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	var days []DayTotal
	index := map[string]int{}
	for d := start; d.Before(to); d = d.AddDate(0, 0, 1) {
		index[d.Format(time.DateOnly)] = len(days)
		days = append(days, DayTotal{
			Day:        d,
			ByCategory: map[string]int{},
			ByProject:  map[string]int{},
		})
	}

	for _, e := range entries {
		i, ok := index[e.At.In(loc).Format(time.DateOnly)]
		if !ok {
			continue
		}
		t := &days[i]
		t.Entries++
		if !e.DurationMinutes.Valid || e.DurationMinutes.Int64 <= 0 {
			continue
		}
		mins := int(e.DurationMinutes.Int64)
		t.Minutes += mins
		t.ByCategory[e.Category] += mins
		if e.Project != "" {
			t.ByProject[e.Project] += mins
		}
	}
	return days, nil
}
