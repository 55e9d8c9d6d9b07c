package timepicker

import "github.com/ramanasai/tempo/internal/clock"

// CommitMsg is sent when the user confirms a time.
type CommitMsg struct {
	Value clock.Value
}

// CancelMsg is sent when the user abandons an edit.
type CancelMsg struct{}

// clipboardMsg carries the system clipboard read for ctrl+v.
type clipboardMsg struct {
	text string
	err  error
}
