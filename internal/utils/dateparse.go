package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var daysAgoRe = regexp.MustCompile(`^(\d+)\s*(d|day|days)(\s+ago)?$`)

// ParseDay resolves a day expression to midnight of that day in loc.
// Accepted: "", "today", "yesterday", "tomorrow", "3d", "3 days ago",
// YYYY-MM-DD, YYYY/MM/DD and "Jan 2, 2006".
func ParseDay(input string, now time.Time, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	if m := daysAgoRe.FindStringSubmatch(input); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day count %q: %w", m[1], err)
		}
		return today.AddDate(0, 0, -n), nil
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"Jan 2, 2006",
		"2 Jan 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse day: %s", input)
}

// DayRange returns [day, day+1) for a midnight time.
func DayRange(day time.Time) (time.Time, time.Time) {
	return day, day.AddDate(0, 0, 1)
}
