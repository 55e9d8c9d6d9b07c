// Package clock holds the time-of-day value edited by the time picker and
// the codec between that value and its four clock digits.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value is a time of day anchored to a day. Hour and Minute are the only
// fields the picker edits; Day, Second and Nanosecond ride along unchanged.
type Value struct {
	Day        time.Time // midnight of the day, carries the location
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// FromTime splits t into its day anchor and time-of-day fields.
func FromTime(t time.Time) Value {
	return Value{
		Day:        time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

// Time joins the value back into a time.Time. Out-of-range hours or minutes
// are normalised by time.Date (25:00 becomes 01:00 the next day).
func (v Value) Time() time.Time {
	loc := v.Day.Location()
	return time.Date(v.Day.Year(), v.Day.Month(), v.Day.Day(), v.Hour, v.Minute, v.Second, v.Nanosecond, loc)
}

// On returns a copy of v anchored to the day of t.
func (v Value) On(t time.Time) Value {
	v.Day = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return v
}

// Format renders HH:MM. Values are not clamped, so an hour of 29 prints as 29.
func (v Value) Format() string {
	return fmt.Sprintf("%02d:%02d", v.Hour, v.Minute)
}

func (v Value) String() string { return v.Format() }

// Parse reads "HH:MM" (or "HHMM") into a Value with a zero Day.
// Unlike the picker, Parse rejects hours above 23 and minutes above 59.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	digits := strings.ReplaceAll(s, ":", "")
	if len(digits) != 4 || len(s) > 5 || (len(s) == 5 && s[2] != ':') || strings.Trim(digits, "0123456789") != "" {
		return Value{}, fmt.Errorf("invalid clock time %q (expected HH:MM)", s)
	}
	h, err := strconv.Atoi(digits[:2])
	if err != nil {
		return Value{}, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	m, err := strconv.Atoi(digits[2:])
	if err != nil {
		return Value{}, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if h > 23 || m > 59 {
		return Value{}, fmt.Errorf("clock time %q out of range", s)
	}
	return Value{Hour: h, Minute: m}, nil
}
