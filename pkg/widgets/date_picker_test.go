package widgets_test

import (
	"testing"
	"time"

	"github.com/go-mosaic/mosaic/pkg/calendar"
	"github.com/go-mosaic/mosaic/pkg/datefmt"
	"github.com/go-mosaic/mosaic/pkg/uitest"
	"github.com/go-mosaic/mosaic/pkg/widgets"
)

const calendarToggle = "📅"

func TestDatePickerTypedDate(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	var got calendar.DateRange
	tester.MustPumpWidget(t, widgets.DatePicker{
		Mode:      calendar.ModeSingle,
		OnChanged: func(r calendar.DateRange) { got = r },
	})

	tester.MustEnterText(t, uitest.ByType[widgets.TextField](), "15/06/2024")
	if got.Start == nil {
		t.Fatal("typing a valid date should select it")
	}
	if !calendar.SameDay(*got.Start, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)) {
		t.Errorf("selected %v, want 2024-06-15", *got.Start)
	}
	if !tester.Find(uitest.ByText("15/06/2024")).Exists() {
		t.Error("field should show the formatted selection")
	}
}

func TestDatePickerInvalidInput(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	var changes int
	tester.MustPumpWidget(t, widgets.DatePicker{
		Mode:      calendar.ModeSingle,
		OnChanged: func(calendar.DateRange) { changes++ },
	})

	tester.MustEnterText(t, uitest.ByType[widgets.TextField](), "15/06/2024")
	tester.MustEnterText(t, uitest.ByType[widgets.TextField](), "garbage")

	if !tester.Find(uitest.ByText("Invalid date format")).Exists() {
		t.Error("invalid input should show the inline error")
	}
	if changes != 1 {
		t.Errorf("OnChanged fired %d times, want 1; bad input must keep the last valid selection", changes)
	}
}

func TestDatePickerInvalidRangeInput(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	tester.MustPumpWidget(t, widgets.DatePicker{Mode: calendar.ModeRange})

	tester.MustEnterText(t, uitest.ByType[widgets.TextField](), "15/06/2024")
	if !tester.Find(uitest.ByText("Invalid date range format")).Exists() {
		t.Error("a range picker should reject a single date")
	}
}

func TestDatePickerTypedRangeSwaps(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	var got calendar.DateRange
	tester.MustPumpWidget(t, widgets.DatePicker{
		Mode:      calendar.ModeRange,
		OnChanged: func(r calendar.DateRange) { got = r },
	})

	tester.MustEnterText(t, uitest.ByType[widgets.TextField](), "20/06/2024 - 05/06/2024")
	if got.Start == nil || got.End == nil {
		t.Fatal("typing a valid range should commit it")
	}
	if !got.Start.Before(*got.End) {
		t.Error("out-of-order typed range should swap")
	}
}

func TestDatePickerPopupGrid(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	tester.MustPumpWidget(t, widgets.DatePicker{Mode: calendar.ModeSingle})

	tester.MustTap(t, uitest.ByText(calendarToggle))

	month := datefmt.Format(time.Now(), "MMMM yyyy")
	if !tester.Find(uitest.ByText(month)).Exists() {
		t.Errorf("popup should show the current month header %q", month)
	}
}

func TestDatePickerTapDaySelects(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	var got calendar.DateRange
	tester.MustPumpWidget(t, widgets.DatePicker{
		Mode:      calendar.ModeSingle,
		OnChanged: func(r calendar.DateRange) { got = r },
	})

	// Anchor to a known month, then tap a day.
	tester.MustEnterText(t, uitest.ByType[widgets.TextField](), "01/06/2024")
	tester.MustTap(t, uitest.ByText(calendarToggle))
	if !tester.Find(uitest.ByText("June 2024")).Exists() {
		t.Fatal("popup should open on the selected month")
	}

	tester.MustTap(t, uitest.ByText("15"))
	if got.Start == nil || !calendar.SameDay(*got.Start, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)) {
		t.Errorf("selected %v, want 2024-06-15", got.Start)
	}
	// Single mode closes the popup after selection.
	if tester.Find(uitest.ByText("June 2024")).Exists() {
		t.Error("popup should close after a single-mode selection")
	}
}

func TestDatePickerMonthNavigation(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	tester.MustPumpWidget(t, widgets.DatePicker{Mode: calendar.ModeSingle})
	tester.MustEnterText(t, uitest.ByType[widgets.TextField](), "01/06/2024")
	tester.MustTap(t, uitest.ByText(calendarToggle))

	tester.MustTap(t, uitest.ByText("›"))
	if !tester.Find(uitest.ByText("July 2024")).Exists() {
		t.Error("next-month arrow should advance the header")
	}
	tester.MustTap(t, uitest.ByText("«"))
	if !tester.Find(uitest.ByText("July 2023")).Exists() {
		t.Error("prev-year arrow should rewind a year")
	}
}

func TestDatePickerDisabledDayNotTappable(t *testing.T) {
	tester := uitest.NewTesterWithT(t)

	var got calendar.DateRange
	blocked := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	tester.MustPumpWidget(t, widgets.DatePicker{
		Mode:          calendar.ModeSingle,
		DisabledDates: []time.Time{blocked},
		OnChanged:     func(r calendar.DateRange) { got = r },
	})
	tester.MustEnterText(t, uitest.ByType[widgets.TextField](), "01/06/2024")
	tester.MustTap(t, uitest.ByText(calendarToggle))

	if err := tester.Tap(uitest.ByText("15")); err == nil && got.Start != nil && calendar.SameDay(*got.Start, blocked) {
		t.Error("disabled day should not be selectable")
	}
}
