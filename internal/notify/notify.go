package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("tempo", message, "")
}

func FormatDailyPrompt(logged int) (string, string) {
	title := "Daily log reminder"
	if logged == 0 {
		return title, "Nothing logged today yet. Jot down what you worked on?"
	}
	return title, fmt.Sprintf("You have %d entries today. Anything left to log?", logged)
}

// FormatRetimed describes an entry moved from one clock time to another.
func FormatRetimed(id int64, from, to string) (string, string) {
	return "Entry retimed", fmt.Sprintf("Entry #%d moved from %s to %s", id, from, to)
}
