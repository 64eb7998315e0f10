package datefmt_test

import (
	"testing"
	"time"

	"github.com/go-mosaic/mosaic/pkg/datefmt"
)

var reference = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)

func TestFormat(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"dd/MM/yyyy", "05/03/2024"},
		{"yyyy-MM-dd", "2024-03-05"},
		{"d/M/yy", "5/3/24"},
		{"MMMM yyyy", "March 2024"},
		{"EEE, MMM d", "Tue, Mar 5"},
		{"EEEE dd MMMM", "Tuesday 05 March"},
		{"HH:mm:ss", "14:07:09"},
	}
	for _, tc := range cases {
		if got := datefmt.Format(reference, tc.pattern); got != tc.want {
			t.Errorf("Format(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := datefmt.Parse("05/03/2024", "dd/MM/yyyy")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := datefmt.Parse("not a date", "dd/MM/yyyy"); err == nil {
		t.Error("expected error for malformed input")
	}
	if _, err := datefmt.Parse("31/02/2024", "dd/MM/yyyy"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestRoundTrip(t *testing.T) {
	patterns := []string{"dd/MM/yyyy", "yyyy-MM-dd", "MMM d, yyyy"}
	day := time.Date(2024, time.November, 30, 0, 0, 0, 0, time.Local)

	for _, pattern := range patterns {
		formatted := datefmt.Format(day, pattern)
		parsed, err := datefmt.Parse(formatted, pattern)
		if err != nil {
			t.Fatalf("round trip %q: %v", pattern, err)
		}
		if !parsed.Equal(day) {
			t.Errorf("round trip %q: %v != %v", pattern, parsed, day)
		}
	}
}

func TestFormatLiteralText(t *testing.T) {
	// Characters outside the token table pass through untouched.
	if got := datefmt.Format(reference, "yyyy.MM.dd."); got != "2024.03.05." {
		t.Errorf("Format = %q", got)
	}
}
