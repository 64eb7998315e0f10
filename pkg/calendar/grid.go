// Package calendar implements the date grid and selection engine behind the
// DatePicker widget.
//
// The engine produces a fixed 42-cell grid (6 weeks x 7 days) for any month,
// so the widget's height never reflows between months and month transitions
// can animate cell-for-cell.
package calendar

import "time"

// GridSize is the fixed cell count of a month grid: 6 weeks of 7 days.
const GridSize = 42

// Day is one cell of the month grid.
type Day struct {
	// Date is the calendar day at midnight in the reference month's location.
	Date time.Time

	// InMonth is false for the leading previous-month and trailing
	// next-month padding cells.
	InMonth bool
}

// BuildGrid returns the 42-day grid for the month containing reference.
//
// firstDayOfWeek is 0 (Sunday) through 6 (Saturday); out-of-range values
// wrap. The grid starts with the trailing days of the previous month needed
// to align the 1st to the configured week start, covers the whole month, and
// pads with leading days of the next month to exactly [GridSize] cells.
func BuildGrid(reference time.Time, firstDayOfWeek int) []Day {
	firstDayOfWeek = ((firstDayOfWeek % 7) + 7) % 7

	first := StartOfMonth(reference)
	offset := (int(first.Weekday()) - firstDayOfWeek + 7) % 7

	grid := make([]Day, 0, GridSize)
	start := first.AddDate(0, 0, -offset)
	for i := 0; i < GridSize; i++ {
		date := start.AddDate(0, 0, i)
		grid = append(grid, Day{
			Date:    date,
			InMonth: date.Month() == first.Month() && date.Year() == first.Year(),
		})
	}
	return grid
}

// StartOfMonth returns midnight on the 1st of the month containing date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// DaysInMonth returns the number of days in the month containing date.
func DaysInMonth(date time.Time) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location()).Day()
}

// AddMonths shifts a date by n months, clamping the day-of-month to the last
// valid day of the target month. Jan 31 + 1 month is the last day of
// February, not March 2 or 3.
func AddMonths(date time.Time, n int) time.Time {
	target := time.Date(date.Year(), date.Month()+time.Month(n), 1, 0, 0, 0, 0, date.Location())
	day := date.Day()
	if max := DaysInMonth(target); day > max {
		day = max
	}
	return time.Date(target.Year(), target.Month(), day,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// AddYears shifts a date by n years. Feb 29 clamps to Feb 28 in non-leap
// target years.
func AddYears(date time.Time, n int) time.Time {
	return AddMonths(date, n*12)
}

// SameDay reports whether a and b fall on the same calendar day.
// Time-of-day is deliberately ignored.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// dayBefore reports whether a's calendar day is strictly before b's.
func dayBefore(a, b time.Time) bool {
	return truncateDay(a).Before(truncateDay(b))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
