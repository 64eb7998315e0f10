// Package datefmt implements the small date-format token language used by the
// DatePicker for display and text-entry parsing.
//
// Supported tokens:
//
//	yyyy  four-digit year            MMMM  full month name
//	yy    two-digit year             MMM   abbreviated month name
//	MM    zero-padded month          EEEE  full weekday name
//	M     month                      EEE   abbreviated weekday name
//	dd    zero-padded day            HH    zero-padded 24h hour
//	d     day                        mm    zero-padded minute
//	ss    zero-padded second
//
// Any other character is literal. Format and Parse round-trip for patterns
// that pin down year, month and day.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// tokens in scan order: longer tokens first so "MMMM" wins over "MM".
var tokens = []struct {
	token  string
	layout string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// Format renders a time using the token pattern.
func Format(t time.Time, pattern string) string {
	return t.Format(toGoLayout(pattern))
}

// Parse interprets value against the token pattern. The result is in
// time.Local like the DatePicker's selections.
func Parse(value, pattern string) (time.Time, error) {
	t, err := time.ParseInLocation(toGoLayout(pattern), strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("datefmt: %q does not match pattern %q", value, pattern)
	}
	return t, nil
}

// toGoLayout translates a token pattern into a Go reference layout.
func toGoLayout(pattern string) string {
	var sb strings.Builder
	for i := 0; i < len(pattern); {
		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(pattern[i:], tok.token) {
				sb.WriteString(tok.layout)
				i += len(tok.token)
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(pattern[i])
			i++
		}
	}
	return sb.String()
}
