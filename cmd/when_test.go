package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/tempo/internal/clock"
)

func TestWhenFlagsUnset(t *testing.T) {
	now := time.Date(2025, 3, 5, 14, 30, 15, 0, time.Local)
	got, err := whenFlags{}.resolve("t", now)
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
}

func TestWhenFlagsAt(t *testing.T) {
	now := time.Date(2025, 3, 5, 14, 30, 15, 0, time.Local)

	got, err := whenFlags{at: "09:05"}.resolve("t", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 5, 9, 5, 0, 0, time.Local), got)

	got, err = whenFlags{at: "2330", day: "yesterday"}.resolve("t", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 23, 30, 0, 0, time.Local), got)
}

func TestWhenFlagsRejectsBadInput(t *testing.T) {
	now := time.Now()
	_, err := whenFlags{at: "25:00"}.resolve("t", now)
	assert.Error(t, err)
	_, err = whenFlags{at: "09:00", day: "someday"}.resolve("t", now)
	assert.Error(t, err)
}

func TestWhenFlagsValueKeepsDay(t *testing.T) {
	day := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	v, err := whenFlags{at: "07:45"}.value("t", clock.Value{Day: day, Hour: 1})
	require.NoError(t, err)
	assert.Equal(t, clock.Value{Day: day, Hour: 7, Minute: 45}, v)
}

func TestWhenFlagsDayAlone(t *testing.T) {
	now := time.Date(2025, 3, 5, 14, 30, 15, 0, time.Local)
	got, err := whenFlags{day: "yesterday"}.resolve("t", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 14, 30, 15, 0, time.Local), got)

	_, err = whenFlags{day: "whenever"}.resolve("t", now)
	assert.Error(t, err)
}
