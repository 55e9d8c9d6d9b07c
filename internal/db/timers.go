package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoActiveTimer is returned by ActiveTimer when nothing is running.
var ErrNoActiveTimer = errors.New("no active timers")

func hasTag(csv, tag string) bool {
	for _, t := range strings.Split(csv, ",") {
		if strings.TrimSpace(t) == tag {
			return true
		}
	}
	return false
}

func withTag(csv, tag string) string {
	if hasTag(csv, tag) {
		return csv
	}
	return joinTags(append(splitTags(csv), tag))
}

func withoutTag(csv, tag string) string {
	var keep []string
	for _, t := range splitTags(csv) {
		if t != tag {
			keep = append(keep, t)
		}
	}
	return joinTags(keep)
}

func splitTags(csv string) []string {
	var out []string
	for _, t := range strings.Split(csv, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func joinTags(tags []string) string { return strings.Join(tags, ",") }

// CountActiveTimers returns how many timers are running.
func CountActiveTimers(ctx context.Context, dbh *sql.DB) (int, error) {
	rows, err := dbh.QueryContext(ctx, `SELECT COALESCE(tags,'') FROM entries WHERE category = 'timer'`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return 0, err
		}
		if hasTag(tags, "active") {
			n++
		}
	}
	return n, rows.Err()
}

// StartTimer inserts a running timer entry started at at.
func StartTimer(ctx context.Context, dbh *sql.DB, text, project, tags string, at time.Time) (int64, error) {
	return InsertEntry(ctx, dbh, Entry{
		At:       at,
		Category: "timer",
		Text:     text,
		Project:  project,
		Tags:     withTag(tags, "active"),
	})
}

// ActiveTimer returns the most recently started running timer, or the
// timer with the given id when id > 0.
func ActiveTimer(ctx context.Context, dbh *sql.DB, id int64) (Entry, error) {
	if id > 0 {
		e, err := GetEntry(ctx, dbh, id)
		if err != nil {
			return Entry{}, err
		}
		if e.Category != "timer" {
			return Entry{}, fmt.Errorf("entry %d is not a timer", id)
		}
		if !e.Active() {
			return Entry{}, fmt.Errorf("timer #%d is not active", id)
		}
		return e, nil
	}

	rows, err := dbh.QueryContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE category = 'timer' ORDER BY ts DESC, id DESC`)
	if err != nil {
		return Entry{}, err
	}
	defer rows.Close()
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return Entry{}, err
		}
		if e.Active() {
			return e, nil
		}
	}
	if err := rows.Err(); err != nil {
		return Entry{}, err
	}
	return Entry{}, ErrNoActiveTimer
}

// StopTimer marks timer e stopped at end, records its duration and appends
// an optional note. It returns the duration in minutes.
func StopTimer(ctx context.Context, dbh *sql.DB, e Entry, end time.Time, note string) (int, error) {
	minutes := int(end.Sub(e.At).Minutes())
	if minutes < 0 {
		minutes = 0
	}

	text := e.Text
	if strings.TrimSpace(note) != "" {
		sep := "\n"
		if strings.Contains(text, "\n") {
			sep = "\n\n"
		}
		text = text + sep + "Stop note: " + note
	}

	res, err := dbh.ExecContext(ctx,
		`UPDATE entries SET duration_minutes = ?, tags = ?, text = ? WHERE id = ?`,
		minutes, nullIfEmpty(withoutTag(e.Tags, "active")), text, e.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("stop timer: %w", err)
	}
	return minutes, expectOne(res, e.ID)
}
