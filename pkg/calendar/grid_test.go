package calendar_test

import (
	"testing"
	"time"

	"github.com/go-mosaic/mosaic/pkg/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildGridSize(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		grid := calendar.BuildGrid(date(2024, month, 1), 0)
		if len(grid) != calendar.GridSize {
			t.Errorf("%v grid has %d cells, want %d", month, len(grid), calendar.GridSize)
		}
	}
}

func TestBuildGridContainsWholeMonth(t *testing.T) {
	grid := calendar.BuildGrid(date(2024, time.February, 15), 0)

	inMonth := 0
	for _, day := range grid {
		if day.InMonth {
			inMonth++
		}
	}
	// 2024 is a leap year.
	if inMonth != 29 {
		t.Errorf("February 2024 grid has %d in-month days, want 29", inMonth)
	}
}

func TestBuildGridLeadingDays(t *testing.T) {
	// March 2024 starts on a Friday. With Sunday as first day of week the
	// grid opens with 5 days of February.
	grid := calendar.BuildGrid(date(2024, time.March, 1), 0)

	if grid[0].InMonth {
		t.Fatal("expected grid to open with padding days")
	}
	if !calendar.SameDay(grid[0].Date, date(2024, time.February, 25)) {
		t.Errorf("grid starts at %v, want 2024-02-25", grid[0].Date)
	}
	if !calendar.SameDay(grid[5].Date, date(2024, time.March, 1)) {
		t.Errorf("cell 5 = %v, want 2024-03-01", grid[5].Date)
	}
}

func TestBuildGridFirstDayOfWeekMonday(t *testing.T) {
	// With Monday first, March 2024 (starting Friday) opens with 4 padding days.
	grid := calendar.BuildGrid(date(2024, time.March, 1), 1)

	if !calendar.SameDay(grid[4].Date, date(2024, time.March, 1)) {
		t.Errorf("cell 4 = %v, want 2024-03-01", grid[4].Date)
	}
	if grid[0].Date.Weekday() != time.Monday {
		t.Errorf("grid starts on %v, want Monday", grid[0].Date.Weekday())
	}
}

func TestBuildGridContiguous(t *testing.T) {
	grid := calendar.BuildGrid(date(2024, time.June, 1), 0)
	for i := 1; i < len(grid); i++ {
		if !calendar.SameDay(grid[i].Date, grid[i-1].Date.AddDate(0, 0, 1)) {
			t.Fatalf("grid not contiguous at cell %d: %v after %v", i, grid[i].Date, grid[i-1].Date)
		}
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	cases := []struct {
		start time.Time
		n     int
		want  time.Time
	}{
		{date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{date(2024, time.March, 31), -1, date(2024, time.February, 29)},
		{date(2024, time.May, 31), 1, date(2024, time.June, 30)},
		{date(2024, time.June, 15), 1, date(2024, time.July, 15)},
		{date(2024, time.December, 31), 2, date(2025, time.February, 28)},
	}
	for _, tc := range cases {
		got := calendar.AddMonths(tc.start, tc.n)
		if !calendar.SameDay(got, tc.want) {
			t.Errorf("AddMonths(%v, %d) = %v, want %v", tc.start, tc.n, got, tc.want)
		}
	}
}

func TestAddYears(t *testing.T) {
	// Leap day clamps when the target year is not a leap year.
	got := calendar.AddYears(date(2024, time.February, 29), 1)
	if !calendar.SameDay(got, date(2025, time.February, 28)) {
		t.Errorf("AddYears(2024-02-29, 1) = %v, want 2025-02-28", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := calendar.DaysInMonth(date(2024, time.February, 10)); got != 29 {
		t.Errorf("DaysInMonth(Feb 2024) = %d, want 29", got)
	}
	if got := calendar.DaysInMonth(date(2023, time.February, 10)); got != 28 {
		t.Errorf("DaysInMonth(Feb 2023) = %d, want 28", got)
	}
	if got := calendar.DaysInMonth(date(2024, time.April, 1)); got != 30 {
		t.Errorf("DaysInMonth(Apr 2024) = %d, want 30", got)
	}
}

func TestSameDayIgnoresTime(t *testing.T) {
	a := time.Date(2024, time.March, 5, 0, 0, 1, 0, time.Local)
	b := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local)
	if !calendar.SameDay(a, b) {
		t.Error("SameDay should compare calendar days, not timestamps")
	}
	if calendar.SameDay(a, b.AddDate(0, 0, 1)) {
		t.Error("different days reported equal")
	}
}
