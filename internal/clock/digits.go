package clock

import (
	"fmt"
	"strings"
)

// Positions in a Buffer.
const (
	HourTens = iota
	HourUnits
	MinuteTens
	MinuteUnits

	// Width is the number of digits in a Buffer.
	Width
)

type digitState uint8

const (
	digitAbsent digitState = iota
	digitInvalid
	digitValid
)

// Digit is one clock digit while editing: absent (never entered), invalid
// (something other than 0-9 was entered) or a valid value 0-9.
// The zero Digit is absent.
type Digit struct {
	state digitState
	n     uint8
	raw   rune
}

// Absent returns the digit of a position nothing was entered into.
func Absent() Digit { return Digit{} }

// DigitOf returns a valid digit. n outside 0-9 yields an invalid digit.
func DigitOf(n int) Digit {
	if n < 0 || n > 9 {
		return Digit{state: digitInvalid, raw: '?'}
	}
	return Digit{state: digitValid, n: uint8(n)}
}

// ParseDigit reads a single character. Anything other than '0'-'9' is
// kept as an invalid digit rather than dropped.
func ParseDigit(r rune) Digit {
	if r >= '0' && r <= '9' {
		return Digit{state: digitValid, n: uint8(r - '0')}
	}
	return Digit{state: digitInvalid, raw: r}
}

// Int returns the digit value and whether the digit is valid.
func (d Digit) Int() (int, bool) {
	if d.state != digitValid {
		return 0, false
	}
	return int(d.n), true
}

// Or returns the digit value, or def when the digit is absent or invalid.
func (d Digit) Or(def int) int {
	if n, ok := d.Int(); ok {
		return n
	}
	return def
}

func (d Digit) IsAbsent() bool  { return d.state == digitAbsent }
func (d Digit) IsInvalid() bool { return d.state == digitInvalid }
func (d Digit) IsValid() bool   { return d.state == digitValid }

// Raw returns the character an invalid digit was parsed from.
func (d Digit) Raw() rune { return d.raw }

// String renders "" for absent, "?" for invalid and the number otherwise.
func (d Digit) String() string {
	switch d.state {
	case digitValid:
		return string(rune('0' + d.n))
	case digitInvalid:
		return "?"
	default:
		return ""
	}
}

// Buffer is the four digits HHMM of a time being edited.
type Buffer [Width]Digit

// Complete reports whether every position holds a valid digit.
func (b Buffer) Complete() bool {
	for _, d := range b {
		if !d.IsValid() {
			return false
		}
	}
	return true
}

// Hours reads positions 0-1 as a two-digit number. Absent or invalid
// digits count as 0. The result is not checked against 0-23.
func (b Buffer) Hours() int { return b[HourTens].Or(0)*10 + b[HourUnits].Or(0) }

// Minutes reads positions 2-3 as a two-digit number, like Hours.
func (b Buffer) Minutes() int { return b[MinuteTens].Or(0)*10 + b[MinuteUnits].Or(0) }

// String renders the buffer as HH:MM with "_" for absent and "?" for
// invalid positions.
func (b Buffer) String() string {
	var sb strings.Builder
	for i, d := range b {
		if i == MinuteTens {
			sb.WriteByte(':')
		}
		switch {
		case d.IsAbsent():
			sb.WriteByte('_')
		default:
			sb.WriteString(d.String())
		}
	}
	return sb.String()
}

// Decompose splits v into its HHMM digits. Hours outside 0-99 wrap
// modulo 100 so the result always has four digits.
func Decompose(v Value) Buffer {
	s := fmt.Sprintf("%02d%02d", mod100(v.Hour), mod100(v.Minute))
	var b Buffer
	for i, r := range s {
		b[i] = ParseDigit(r)
	}
	return b
}

// Recompose returns base with Hour and Minute replaced by the buffer's
// digits; every other field of base is kept. A nil base is the zero Value.
// Recompose never rejects a buffer: 29:75 comes back as Hour 29, Minute 75.
func Recompose(base *Value, b Buffer) Value {
	var v Value
	if base != nil {
		v = *base
	}
	v.Hour = b.Hours()
	v.Minute = b.Minutes()
	return v
}

func mod100(n int) int {
	n %= 100
	if n < 0 {
		n += 100
	}
	return n
}
