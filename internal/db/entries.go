package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("entry not found")

// tsLayout is fixed width so ts sorts lexically in time order.
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Categories accepted for entries.
var Categories = []string{"note", "task", "meeting", "timer"}

// Entry is one row of the entries table.
type Entry struct {
	At              time.Time
	Category        string
	Text            string
	Project         string
	Tags            string
	DurationMinutes sql.NullInt64
	ID              int64
}

// Active reports whether a timer entry is still running.
func (e Entry) Active() bool {
	return e.Category == "timer" && hasTag(e.Tags, "active")
}

func formatTS(t time.Time) string { return t.UTC().Format(tsLayout) }

func parseTS(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q: %w", s, err)
	}
	return t, nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// ValidCategory reports whether c is one of Categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// InsertEntry stores e and returns its id. A zero At means now.
func InsertEntry(ctx context.Context, dbh *sql.DB, e Entry) (int64, error) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	if e.Category == "" {
		e.Category = "note"
	}
	res, err := dbh.ExecContext(ctx,
		`INSERT INTO entries(ts, category, text, project, tags, duration_minutes) VALUES(?,?,?,?,?,?)`,
		formatTS(e.At), e.Category, e.Text, nullIfEmpty(e.Project), nullIfEmpty(e.Tags), e.DurationMinutes,
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	return res.LastInsertId()
}

const entryColumns = `id, ts, category, text, COALESCE(project,''), COALESCE(tags,''), duration_minutes`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var e Entry
	var ts string
	if err := row.Scan(&e.ID, &ts, &e.Category, &e.Text, &e.Project, &e.Tags, &e.DurationMinutes); err != nil {
		return Entry{}, err
	}
	at, err := parseTS(ts)
	if err != nil {
		return Entry{}, err
	}
	e.At = at
	return e, nil
}

// GetEntry returns one entry by id.
func GetEntry(ctx context.Context, dbh *sql.DB, id int64) (Entry, error) {
	row := dbh.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("entry %d: %w", id, ErrNotFound)
	}
	return e, err
}

// ListEntries returns entries with from <= ts < to, oldest first.
func ListEntries(ctx context.Context, dbh *sql.DB, from, to time.Time) ([]Entry, error) {
	rows, err := dbh.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE ts >= ? AND ts < ? ORDER BY ts, id`,
		formatTS(from), formatTS(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func expectOne(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("entry %d: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateEntryTime moves entry id to at.
func UpdateEntryTime(ctx context.Context, dbh *sql.DB, id int64, at time.Time) error {
	res, err := dbh.ExecContext(ctx, `UPDATE entries SET ts = ? WHERE id = ?`, formatTS(at), id)
	if err != nil {
		return fmt.Errorf("update entry time: %w", err)
	}
	return expectOne(res, id)
}

// EntryUpdate lists the fields to change; nil fields are left alone.
type EntryUpdate struct {
	Text     *string
	Category *string
	Project  *string
	Tags     *string
	At       *time.Time
}

// Empty reports whether u changes nothing.
func (u EntryUpdate) Empty() bool {
	return u.Text == nil && u.Category == nil && u.Project == nil && u.Tags == nil && u.At == nil
}

// UpdateEntry applies u to entry id.
func UpdateEntry(ctx context.Context, dbh *sql.DB, id int64, u EntryUpdate) error {
	if u.Empty() {
		return fmt.Errorf("nothing to update")
	}

	var sets []string
	var args []any
	if u.Text != nil {
		sets = append(sets, "text = ?")
		args = append(args, *u.Text)
	}
	if u.Category != nil {
		if !ValidCategory(*u.Category) {
			return fmt.Errorf("invalid category %q. Valid categories: %s", *u.Category, strings.Join(Categories, ", "))
		}
		sets = append(sets, "category = ?")
		args = append(args, *u.Category)
	}
	if u.Project != nil {
		sets = append(sets, "project = ?")
		args = append(args, nullIfEmpty(*u.Project))
	}
	if u.Tags != nil {
		sets = append(sets, "tags = ?")
		args = append(args, nullIfEmpty(*u.Tags))
	}
	if u.At != nil {
		sets = append(sets, "ts = ?")
		args = append(args, formatTS(*u.At))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE entries SET %s WHERE id = ?", strings.Join(sets, ", "))
	res, err := dbh.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return expectOne(res, id)
}
