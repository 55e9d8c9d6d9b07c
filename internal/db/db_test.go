package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *sql.DB {
	t.Helper()
	dbh, err := OpenPath(filepath.Join(t.TempDir(), "tempo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	return dbh
}

func TestInsertAndGetEntry(t *testing.T) {
	ctx := context.Background()
	dbh := openTest(t)
	at := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)

	id, err := InsertEntry(ctx, dbh, Entry{At: at, Text: "standup", Project: "api", Tags: "daily"})
	require.NoError(t, err)

	e, err := GetEntry(ctx, dbh, id)
	require.NoError(t, err)
	assert.Equal(t, id, e.ID)
	assert.True(t, at.Equal(e.At))
	assert.Equal(t, "note", e.Category)
	assert.Equal(t, "standup", e.Text)
	assert.Equal(t, "api", e.Project)
	assert.Equal(t, "daily", e.Tags)
	assert.False(t, e.DurationMinutes.Valid)
}

func TestGetEntryNotFound(t *testing.T) {
	_, err := GetEntry(context.Background(), openTest(t), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListEntriesOrderAndRange(t *testing.T) {
	ctx := context.Background()
	dbh := openTest(t)
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	for _, h := range []int{15, 8, 23} {
		_, err := InsertEntry(ctx, dbh, Entry{At: day.Add(time.Duration(h) * time.Hour), Text: "x"})
		require.NoError(t, err)
	}
	_, err := InsertEntry(ctx, dbh, Entry{At: day.AddDate(0, 0, 1), Text: "tomorrow"})
	require.NoError(t, err)

	got, err := ListEntries(ctx, dbh, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 8, got[0].At.Hour())
	assert.Equal(t, 15, got[1].At.Hour())
	assert.Equal(t, 23, got[2].At.Hour())
}

func TestUpdateEntryTime(t *testing.T) {
	ctx := context.Background()
	dbh := openTest(t)
	id, err := InsertEntry(ctx, dbh, Entry{At: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC), Text: "x"})
	require.NoError(t, err)

	moved := time.Date(2025, 4, 1, 17, 45, 0, 0, time.UTC)
	require.NoError(t, UpdateEntryTime(ctx, dbh, id, moved))

	e, err := GetEntry(ctx, dbh, id)
	require.NoError(t, err)
	assert.True(t, moved.Equal(e.At))

	assert.ErrorIs(t, UpdateEntryTime(ctx, dbh, id+100, moved), ErrNotFound)
}

func TestUpdateEntry(t *testing.T) {
	ctx := context.Background()
	dbh := openTest(t)
	id, err := InsertEntry(ctx, dbh, Entry{Text: "draft", Project: "old"})
	require.NoError(t, err)

	text, cat, proj := "final", "task", ""
	require.NoError(t, UpdateEntry(ctx, dbh, id, EntryUpdate{Text: &text, Category: &cat, Project: &proj}))

	e, err := GetEntry(ctx, dbh, id)
	require.NoError(t, err)
	assert.Equal(t, "final", e.Text)
	assert.Equal(t, "task", e.Category)
	assert.Equal(t, "", e.Project)

	bad := "lunch"
	assert.Error(t, UpdateEntry(ctx, dbh, id, EntryUpdate{Category: &bad}))
	assert.Error(t, UpdateEntry(ctx, dbh, id, EntryUpdate{}))
}

func TestTimerLifecycle(t *testing.T) {
	ctx := context.Background()
	dbh := openTest(t)
	start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	_, err := ActiveTimer(ctx, dbh, 0)
	assert.ErrorIs(t, err, ErrNoActiveTimer)

	id, err := StartTimer(ctx, dbh, "deep work", "api", "focus", start)
	require.NoError(t, err)

	n, err := CountActiveTimers(ctx, dbh)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	e, err := ActiveTimer(ctx, dbh, 0)
	require.NoError(t, err)
	assert.Equal(t, id, e.ID)
	assert.Equal(t, "focus,active", e.Tags)

	minutes, err := StopTimer(ctx, dbh, e, start.Add(95*time.Minute), "done")
	require.NoError(t, err)
	assert.Equal(t, 95, minutes)

	e, err = GetEntry(ctx, dbh, id)
	require.NoError(t, err)
	assert.False(t, e.Active())
	assert.Equal(t, "focus", e.Tags)
	assert.Equal(t, "deep work\nStop note: done", e.Text)
	assert.Equal(t, int64(95), e.DurationMinutes.Int64)

	_, err = ActiveTimer(ctx, dbh, id)
	assert.Error(t, err)
}

func TestDailyTotals(t *testing.T) {
	ctx := context.Background()
	dbh := openTest(t)
	loc := time.FixedZone("UTC+2", 2*60*60)
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, loc)
	mins := func(n int64) sql.NullInt64 { return sql.NullInt64{Int64: n, Valid: true} }

	for _, e := range []Entry{
		{At: day.Add(9 * time.Hour), Category: "timer", Project: "api", DurationMinutes: mins(90)},
		{At: day.Add(14 * time.Hour), Category: "meeting", DurationMinutes: mins(30)},
		{At: day.Add(16 * time.Hour), Category: "note", Text: "no duration"},
		// 00:30 local on Apr 3 is still Apr 2 in UTC
		{At: day.AddDate(0, 0, 2).Add(30 * time.Minute), Category: "timer", DurationMinutes: mins(45)},
	} {
		_, err := InsertEntry(ctx, dbh, e)
		require.NoError(t, err)
	}

	days, err := DailyTotals(ctx, dbh, day, day.AddDate(0, 0, 3), loc)
	require.NoError(t, err)
	require.Len(t, days, 3)

	assert.Equal(t, day, days[0].Day)
	assert.Equal(t, 120, days[0].Minutes)
	assert.Equal(t, 3, days[0].Entries)
	assert.Equal(t, map[string]int{"timer": 90, "meeting": 30}, days[0].ByCategory)
	assert.Equal(t, map[string]int{"api": 90}, days[0].ByProject)

	assert.Zero(t, days[1].Minutes)
	assert.Zero(t, days[1].Entries)

	assert.Equal(t, 45, days[2].Minutes)
}

func TestDailyTotalsEmptyRange(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := DailyTotals(context.Background(), openTest(t), day, day, time.UTC)
	assert.Error(t, err)
}
