package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDailyPrompt(t *testing.T) {
	title, msg := FormatDailyPrompt(0)
	assert.Equal(t, "Daily log reminder", title)
	assert.Contains(t, msg, "Nothing logged")

	_, msg = FormatDailyPrompt(3)
	assert.Contains(t, msg, "3 entries")
}

func TestFormatRetimed(t *testing.T) {
	title, msg := FormatRetimed(12, "09:00", "09:45")
	assert.Equal(t, "Entry retimed", title)
	assert.Equal(t, "Entry #12 moved from 09:00 to 09:45", msg)
}
