package calendar_test

import (
	"testing"
	"time"

	"github.com/go-mosaic/mosaic/pkg/calendar"
)

func singleEngine() *calendar.Engine {
	return calendar.NewEngine(calendar.Config{Mode: calendar.ModeSingle}, date(2024, time.June, 1))
}

func rangeEngine() *calendar.Engine {
	return calendar.NewEngine(calendar.Config{Mode: calendar.ModeRange}, date(2024, time.June, 1))
}

func TestSingleSelect(t *testing.T) {
	e := singleEngine()

	e.Select(date(2024, time.June, 10))
	if sel := e.Selected(); sel == nil || !calendar.SameDay(*sel, date(2024, time.June, 10)) {
		t.Fatalf("Selected = %v, want 2024-06-10", sel)
	}

	// A second click replaces the selection.
	e.Select(date(2024, time.June, 12))
	if sel := e.Selected(); !calendar.SameDay(*sel, date(2024, time.June, 12)) {
		t.Errorf("Selected = %v, want 2024-06-12", *sel)
	}
}

func TestRangeSelectTwoClicks(t *testing.T) {
	e := rangeEngine()

	e.Select(date(2024, time.June, 5))
	rng := e.Range()
	if rng.Start == nil || rng.End != nil {
		t.Fatalf("after first click: %+v, want open range", rng)
	}

	e.Select(date(2024, time.June, 10))
	rng = e.Range()
	if rng.Start == nil || rng.End == nil {
		t.Fatalf("after second click: %+v, want committed range", rng)
	}
	if !calendar.SameDay(*rng.Start, date(2024, time.June, 5)) || !calendar.SameDay(*rng.End, date(2024, time.June, 10)) {
		t.Errorf("range = [%v, %v]", *rng.Start, *rng.End)
	}
}

func TestRangeSelectSwapsOutOfOrder(t *testing.T) {
	e := rangeEngine()

	e.Select(date(2024, time.June, 20))
	e.Select(date(2024, time.June, 5))

	rng := e.Range()
	if !calendar.SameDay(*rng.Start, date(2024, time.June, 5)) {
		t.Errorf("start = %v, want the earlier day", *rng.Start)
	}
	if !calendar.SameDay(*rng.End, date(2024, time.June, 20)) {
		t.Errorf("end = %v, want the later day", *rng.End)
	}
}

func TestRangeThirdClickStartsNewRange(t *testing.T) {
	e := rangeEngine()

	e.Select(date(2024, time.June, 5))
	e.Select(date(2024, time.June, 10))
	e.Select(date(2024, time.June, 15))

	rng := e.Range()
	if rng.End != nil {
		t.Fatal("third click should open a fresh range")
	}
	if !calendar.SameDay(*rng.Start, date(2024, time.June, 15)) {
		t.Errorf("new start = %v, want 2024-06-15", *rng.Start)
	}
}

func TestSelectDisabledIsNoOp(t *testing.T) {
	blocked := date(2024, time.June, 10)
	e := calendar.NewEngine(calendar.Config{
		Mode:          calendar.ModeSingle,
		DisabledDates: []time.Time{blocked},
	}, date(2024, time.June, 1))

	e.Select(blocked)
	if e.Selected() != nil {
		t.Error("clicking a disabled day should not select it")
	}
}

func TestIsDisabledBounds(t *testing.T) {
	min := date(2024, time.June, 5)
	max := date(2024, time.June, 25)
	e := calendar.NewEngine(calendar.Config{
		Mode:    calendar.ModeSingle,
		MinDate: &min,
		MaxDate: &max,
	}, date(2024, time.June, 1))

	if !e.IsDisabled(date(2024, time.June, 4)) {
		t.Error("day before MinDate should be disabled")
	}
	if !e.IsDisabled(date(2024, time.June, 26)) {
		t.Error("day after MaxDate should be disabled")
	}
	if e.IsDisabled(min) || e.IsDisabled(max) {
		t.Error("bounds themselves should be selectable")
	}
}

func TestIsDisabledFunc(t *testing.T) {
	e := calendar.NewEngine(calendar.Config{
		Mode: calendar.ModeSingle,
		DisabledFunc: func(d time.Time) bool {
			return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
		},
	}, date(2024, time.June, 1))

	// 2024-06-08 is a Saturday.
	if !e.IsDisabled(date(2024, time.June, 8)) {
		t.Error("weekend should be disabled by predicate")
	}
	if e.IsDisabled(date(2024, time.June, 10)) {
		t.Error("Monday should be selectable")
	}
}

func TestIsInRangeExcludesEndpoints(t *testing.T) {
	e := rangeEngine()
	e.Select(date(2024, time.June, 5))
	e.Select(date(2024, time.June, 10))

	if e.IsInRange(date(2024, time.June, 5)) || e.IsInRange(date(2024, time.June, 10)) {
		t.Error("endpoints should not be classified as in-range")
	}
	if !e.IsInRange(date(2024, time.June, 7)) {
		t.Error("day between endpoints should be in-range")
	}
	if e.IsInRange(date(2024, time.June, 11)) {
		t.Error("day after the end should not be in-range")
	}
}

func TestIsInRangeHoverPreview(t *testing.T) {
	e := rangeEngine()
	e.Select(date(2024, time.June, 5))
	e.Hover(date(2024, time.June, 12))

	// With an open range, the hover extends the preview.
	if !e.IsInRange(date(2024, time.June, 8)) {
		t.Error("day between start and hover should preview as in-range")
	}
	e.ClearHover()
	if e.IsInRange(date(2024, time.June, 8)) {
		t.Error("preview should clear with the hover")
	}
}

func TestRangeStartEndClassification(t *testing.T) {
	e := rangeEngine()
	e.Select(date(2024, time.June, 5))
	e.Select(date(2024, time.June, 10))

	if !e.IsRangeStart(date(2024, time.June, 5)) {
		t.Error("expected range start classification")
	}
	if !e.IsRangeEnd(date(2024, time.June, 10)) {
		t.Error("expected range end classification")
	}
	if e.IsRangeStart(date(2024, time.June, 10)) {
		t.Error("end should not classify as start")
	}
}

func TestMonthNavigation(t *testing.T) {
	e := singleEngine()

	e.NextMonth()
	if got := e.VisibleMonth(); got.Month() != time.July {
		t.Errorf("NextMonth → %v, want July", got.Month())
	}
	e.PrevMonth()
	e.PrevMonth()
	if got := e.VisibleMonth(); got.Month() != time.May {
		t.Errorf("PrevMonth ×2 → %v, want May", got.Month())
	}
	e.NextYear()
	if got := e.VisibleMonth(); got.Year() != 2025 || got.Month() != time.May {
		t.Errorf("NextYear → %v, want May 2025", got)
	}
}

func TestNavigationKeepsSelection(t *testing.T) {
	e := singleEngine()
	e.Select(date(2024, time.June, 10))

	e.NextMonth()
	e.NextMonth()
	if sel := e.Selected(); sel == nil || !calendar.SameDay(*sel, date(2024, time.June, 10)) {
		t.Error("navigating months should not disturb the selection")
	}
}

func TestSetRangeSwaps(t *testing.T) {
	e := rangeEngine()
	start := date(2024, time.June, 20)
	end := date(2024, time.June, 5)
	e.SetRange(&start, &end)

	rng := e.Range()
	if !calendar.SameDay(*rng.Start, end) || !calendar.SameDay(*rng.End, start) {
		t.Errorf("SetRange did not swap out-of-order endpoints: %+v", rng)
	}
}

func TestGridUsesVisibleMonth(t *testing.T) {
	e := singleEngine()
	e.ShowMonth(date(2025, time.January, 15))

	grid := e.Grid()
	if len(grid) != calendar.GridSize {
		t.Fatalf("grid has %d cells, want %d", len(grid), calendar.GridSize)
	}
	found := false
	for _, day := range grid {
		if day.InMonth && calendar.SameDay(day.Date, date(2025, time.January, 15)) {
			found = true
		}
	}
	if !found {
		t.Error("grid should cover the shown month")
	}
}
