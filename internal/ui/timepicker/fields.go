// Package timepicker is a four-field HH:MM entry component for Bubble Tea.
//
// In view mode it shows the current value. Activating it opens an edit
// session where digits are typed one field at a time, focus advances
// automatically, and a paste fills all four fields at once. Confirm turns the
// digits back into a clock.Value and emits it; cancel throws the edit away.
package timepicker

import "github.com/ramanasai/tempo/internal/clock"

// FieldSpec names one digit field and the largest digit it advertises.
type FieldSpec struct {
	ID  string
	Max int
}

// Fields are fixed per widget. The maxima do not look at sibling digits:
// hour2 advertises 3 even when hour1 is 0 or 1, so 19 is flagged and 29 is
// reachable by paste.
var Fields = [clock.Width]FieldSpec{
	{ID: "hour1", Max: 2},
	{ID: "hour2", Max: 3},
	{ID: "minute1", Max: 5},
	{ID: "minute2", Max: 9},
}

// NoFocus is the focus position after the last field, where no field is
// focused.
const NoFocus = clock.Width
