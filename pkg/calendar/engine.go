package calendar

import "time"

// SelectionMode picks between single-date and two-click range selection.
// Exactly one mode is active per engine instance.
type SelectionMode int

const (
	// ModeSingle replaces the selection on every accepted click.
	ModeSingle SelectionMode = iota
	// ModeRange collects a start and end date over two clicks.
	ModeRange
)

// rangePhase is the range-mode state machine position.
type rangePhase int

const (
	awaitingStart rangePhase = iota
	awaitingEnd
)

// DateRange is a committed or in-progress range selection.
// While both ends are set, Start never follows End.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Config constrains what an engine instance allows.
type Config struct {
	// Mode selects single or range behavior.
	Mode SelectionMode

	// FirstDayOfWeek is 0 (Sunday) through 6 (Saturday).
	FirstDayOfWeek int

	// MinDate disables days before it (calendar-day comparison). Optional.
	MinDate *time.Time

	// MaxDate disables days after it. Optional.
	MaxDate *time.Time

	// DisabledDates lists individually disabled days, matched by calendar
	// day regardless of time-of-day. Optional.
	DisabledDates []time.Time

	// DisabledFunc disables any day it returns true for. Optional,
	// combined with DisabledDates when both are set.
	DisabledFunc func(date time.Time) bool
}

// Engine holds the visible month and the selection state machine.
//
// Construct with [NewEngine]. All methods must be called from the UI thread;
// the hosting widget re-renders after each mutation.
type Engine struct {
	config  Config
	visible time.Time

	selected *time.Time
	rng      DateRange
	phase    rangePhase
	hover    *time.Time
}

// NewEngine creates an engine showing the month containing initial.
func NewEngine(config Config, initial time.Time) *Engine {
	return &Engine{
		config:  config,
		visible: StartOfMonth(initial),
	}
}

// Grid returns the 42-day grid for the visible month.
func (e *Engine) Grid() []Day {
	return BuildGrid(e.visible, e.config.FirstDayOfWeek)
}

// VisibleMonth returns the first day of the currently shown month.
func (e *Engine) VisibleMonth() time.Time {
	return e.visible
}

// NextMonth advances the visible month by one.
func (e *Engine) NextMonth() { e.visible = AddMonths(e.visible, 1) }

// PrevMonth moves the visible month back by one.
func (e *Engine) PrevMonth() { e.visible = AddMonths(e.visible, -1) }

// NextYear advances the visible month by a year.
func (e *Engine) NextYear() { e.visible = AddYears(e.visible, 1) }

// PrevYear moves the visible month back by a year.
func (e *Engine) PrevYear() { e.visible = AddYears(e.visible, -1) }

// ShowMonth jumps the visible month to the month containing date.
func (e *Engine) ShowMonth(date time.Time) { e.visible = StartOfMonth(date) }

// Select handles a click on a day.
//
// Disabled days are silently ignored. In single mode the selection is
// replaced. In range mode the first click opens a range, the second commits
// it; a second click before the first swaps so the earlier day becomes the
// start rather than rejecting the input. Committing returns the machine to
// the awaiting-start phase without clearing the committed range.
func (e *Engine) Select(date time.Time) {
	if e.IsDisabled(date) {
		return
	}

	if e.config.Mode == ModeSingle {
		d := truncateDay(date)
		e.selected = &d
		return
	}

	switch e.phase {
	case awaitingStart:
		d := truncateDay(date)
		e.rng = DateRange{Start: &d}
		e.phase = awaitingEnd
	case awaitingEnd:
		start := *e.rng.Start
		end := truncateDay(date)
		if end.Before(start) {
			start, end = end, start
		}
		e.rng = DateRange{Start: &start, End: &end}
		e.phase = awaitingStart
		e.hover = nil
	}
}

// Selected returns the single-mode selection, or nil.
func (e *Engine) Selected() *time.Time {
	return e.selected
}

// Range returns the current range selection. End is nil while a range is
// open (awaiting its second click).
func (e *Engine) Range() DateRange {
	return e.rng
}

// SetSelected programmatically sets the single-mode selection.
// Pass nil to clear. Disabled dates are ignored.
func (e *Engine) SetSelected(date *time.Time) {
	if date == nil {
		e.selected = nil
		return
	}
	if e.IsDisabled(*date) {
		return
	}
	d := truncateDay(*date)
	e.selected = &d
}

// SetRange programmatically sets a committed range, swapping out-of-order
// endpoints. Either end may be nil.
func (e *Engine) SetRange(start, end *time.Time) {
	if start != nil && end != nil && dayBefore(*end, *start) {
		start, end = end, start
	}
	e.rng = DateRange{Start: start, End: end}
	e.phase = awaitingStart
	if start != nil && end == nil {
		e.phase = awaitingEnd
	}
}

// Hover records a live hover-preview date for range mode.
func (e *Engine) Hover(date time.Time) {
	d := truncateDay(date)
	e.hover = &d
}

// ClearHover drops the hover-preview date.
func (e *Engine) ClearHover() {
	e.hover = nil
}

// IsDisabled reports whether a day cannot be selected: outside the min/max
// bounds, listed in DisabledDates, or rejected by DisabledFunc.
func (e *Engine) IsDisabled(date time.Time) bool {
	if e.config.MinDate != nil && dayBefore(date, *e.config.MinDate) {
		return true
	}
	if e.config.MaxDate != nil && dayBefore(*e.config.MaxDate, date) {
		return true
	}
	for _, disabled := range e.config.DisabledDates {
		if SameDay(date, disabled) {
			return true
		}
	}
	if e.config.DisabledFunc != nil && e.config.DisabledFunc(date) {
		return true
	}
	return false
}

// IsRangeStart reports whether date is the start of the current range.
func (e *Engine) IsRangeStart(date time.Time) bool {
	return e.rng.Start != nil && SameDay(date, *e.rng.Start)
}

// IsRangeEnd reports whether date is the end of the current range.
func (e *Engine) IsRangeEnd(date time.Time) bool {
	return e.rng.End != nil && SameDay(date, *e.rng.End)
}

// IsSelected reports whether date is the single-mode selection.
func (e *Engine) IsSelected(date time.Time) bool {
	return e.selected != nil && SameDay(date, *e.selected)
}

// IsInRange reports whether date lies strictly between the range start and
// the later of the committed end or the live hover preview. Endpoints are
// excluded; they carry their own start/end classification.
func (e *Engine) IsInRange(date time.Time) bool {
	if e.rng.Start == nil {
		return false
	}
	end := e.rng.End
	if end == nil {
		end = e.hover
	} else if e.hover != nil && dayBefore(*end, *e.hover) {
		end = e.hover
	}
	if end == nil {
		return false
	}

	lo, hi := *e.rng.Start, *end
	if dayBefore(hi, lo) {
		lo, hi = hi, lo
	}
	return dayBefore(lo, date) && dayBefore(date, hi)
}
