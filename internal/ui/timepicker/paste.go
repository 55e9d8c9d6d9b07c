package timepicker

import "github.com/ramanasai/tempo/internal/clock"

// parsePaste turns clipboard text into a buffer. Only the first four
// characters are read and none are filtered out first, so "9:30" gives
// 9, invalid, 3, 0. Short pastes leave the remaining positions absent.
func parsePaste(text string) clock.Buffer {
	var b clock.Buffer
	i := 0
	for _, r := range text {
		if i == clock.Width {
			break
		}
		b[i] = clock.ParseDigit(r)
		i++
	}
	return b
}
