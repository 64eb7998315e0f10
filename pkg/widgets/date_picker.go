package widgets

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-mosaic/mosaic/pkg/calendar"
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/datefmt"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/layout"
	"github.com/go-mosaic/mosaic/pkg/theme"
)

// rangeSeparator joins the two halves of a typed range value.
const rangeSeparator = " - "

// DatePicker is a text field paired with a popup month calendar.
//
// Single mode selects one day; range mode selects a start and end with the
// usual two-click flow. Dates typed into the field are parsed against Format;
// invalid input shows an inline error and leaves the selection untouched.
type DatePicker struct {
	// Mode selects single or range behavior.
	Mode calendar.SelectionMode

	// Format is the display pattern, for example "dd/MM/yyyy".
	// Defaults to "dd/MM/yyyy".
	Format string

	// Placeholder is shown in the empty field.
	Placeholder string

	// FirstDayOfWeek is 0 (Sunday) through 6 (Saturday).
	FirstDayOfWeek int

	// MinDate disables days before it. Optional.
	MinDate *time.Time

	// MaxDate disables days after it. Optional.
	MaxDate *time.Time

	// DisabledDates lists individually disabled days. Optional.
	DisabledDates []time.Time

	// DisabledFunc disables any day it returns true for. Optional.
	DisabledFunc func(date time.Time) bool

	// OnChanged is called with the selection after every change. In single
	// mode End is nil and Start carries the selected day.
	OnChanged func(selected calendar.DateRange)

	// Disabled blocks all interaction.
	Disabled bool
}

func (d DatePicker) CreateElement() core.Element {
	return core.NewStatefulElement(d, nil)
}

func (d DatePicker) Key() any {
	return nil
}

func (d DatePicker) CreateState() core.State {
	return &datePickerState{}
}

func (d DatePicker) format() string {
	if d.Format == "" {
		return "dd/MM/yyyy"
	}
	return d.Format
}

type datePickerState struct {
	core.StateBase

	engine    *calendar.Engine
	open      bool
	text      string
	errorText string
}

func (s *datePickerState) widget() DatePicker {
	return s.Element().Widget().(DatePicker)
}

func (s *datePickerState) InitState() {
	w := s.widget()
	s.engine = calendar.NewEngine(calendar.Config{
		Mode:           w.Mode,
		FirstDayOfWeek: w.FirstDayOfWeek,
		MinDate:        w.MinDate,
		MaxDate:        w.MaxDate,
		DisabledDates:  w.DisabledDates,
		DisabledFunc:   w.DisabledFunc,
	}, time.Now())
}

// displayText formats the current selection for the text field.
func (s *datePickerState) displayText() string {
	w := s.widget()
	if w.Mode == calendar.ModeRange {
		rng := s.engine.Range()
		if rng.Start == nil {
			return ""
		}
		out := datefmt.Format(*rng.Start, w.format())
		if rng.End != nil {
			out += rangeSeparator + datefmt.Format(*rng.End, w.format())
		}
		return out
	}
	if sel := s.engine.Selected(); sel != nil {
		return datefmt.Format(*sel, w.format())
	}
	return ""
}

// handleInput parses typed text. Invalid input sets the inline error and
// keeps the previous selection; valid input replaces it.
func (s *datePickerState) handleInput(value string) {
	w := s.widget()
	s.SetState(func() {
		s.text = value
		s.errorText = ""
	})
	if strings.TrimSpace(value) == "" {
		s.SetState(func() {
			if w.Mode == calendar.ModeRange {
				s.engine.SetRange(nil, nil)
			} else {
				s.engine.SetSelected(nil)
			}
		})
		s.notify()
		return
	}

	if w.Mode == calendar.ModeRange {
		s.parseRange(value, w)
		return
	}
	parsed, err := datefmt.Parse(value, w.format())
	if err != nil {
		s.SetState(func() { s.errorText = "Invalid date format" })
		return
	}
	s.SetState(func() {
		s.engine.SetSelected(&parsed)
		s.engine.ShowMonth(parsed)
		s.text = ""
	})
	s.notify()
}

func (s *datePickerState) parseRange(value string, w DatePicker) {
	parts := strings.Split(value, rangeSeparator)
	if len(parts) != 2 {
		s.SetState(func() { s.errorText = "Invalid date range format" })
		return
	}
	start, errStart := datefmt.Parse(strings.TrimSpace(parts[0]), w.format())
	end, errEnd := datefmt.Parse(strings.TrimSpace(parts[1]), w.format())
	if errStart != nil || errEnd != nil {
		s.SetState(func() { s.errorText = "Invalid date range format" })
		return
	}
	if end.Before(start) {
		start, end = end, start
	}
	s.SetState(func() {
		s.engine.SetRange(&start, &end)
		s.engine.ShowMonth(start)
		s.text = ""
	})
	s.notify()
}

func (s *datePickerState) handleDayTap(day time.Time) {
	s.SetState(func() {
		s.engine.Select(day)
		s.text = ""
		s.errorText = ""
	})
	w := s.widget()
	if w.Mode == calendar.ModeSingle && s.engine.Selected() != nil {
		s.SetState(func() { s.open = false })
	}
	if w.Mode == calendar.ModeRange {
		rng := s.engine.Range()
		if rng.Start != nil && rng.End != nil {
			s.SetState(func() { s.open = false })
		}
	}
	s.notify()
}

func (s *datePickerState) notify() {
	w := s.widget()
	if w.OnChanged == nil {
		return
	}
	if w.Mode == calendar.ModeRange {
		w.OnChanged(s.engine.Range())
		return
	}
	w.OnChanged(calendar.DateRange{Start: s.engine.Selected()})
}

func (s *datePickerState) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	t := theme.ThemeOf(ctx)

	fieldValue := s.text
	if fieldValue == "" {
		fieldValue = s.displayText()
	}

	field := TextField{
		Value:       fieldValue,
		Placeholder: w.Placeholder,
		ErrorText:   s.errorText,
		Disabled:    w.Disabled,
		OnChanged:   s.handleInput,
	}

	var toggleTap func()
	if !w.Disabled {
		toggleTap = func() {
			s.SetState(func() { s.open = !s.open })
		}
	}

	children := []core.Widget{
		Row{
			Spacing: 4,
			ChildrenWidgets: []core.Widget{
				field,
				GestureDetector{
					OnTap:       toggleTap,
					ChildWidget: Text{Content: "📅", Style: t.TextTheme.Body},
				},
			},
		},
	}
	if s.open {
		children = append(children, s.calendarPopup(t))
	}

	return Column{Spacing: 4, ChildrenWidgets: children}
}

func (s *datePickerState) calendarPopup(t *theme.ThemeData) core.Widget {
	calTheme := t.CalendarThemeOf()

	header := Row{
		Spacing: 8,
		ChildrenWidgets: []core.Widget{
			s.navButton("«", func() { s.engine.PrevYear() }),
			s.navButton("‹", func() { s.engine.PrevMonth() }),
			Text{
				Content: datefmt.Format(s.engine.VisibleMonth(), "MMMM yyyy"),
				Style:   t.TextTheme.Label.Merge(graphics.TextStyle{FontWeight: graphics.FontWeightSemiBold}),
			},
			s.navButton("›", func() { s.engine.NextMonth() }),
			s.navButton("»", func() { s.engine.NextYear() }),
		},
	}

	grid := s.engine.Grid()
	var weeks []core.Widget
	for row := 0; row < len(grid)/7; row++ {
		cells := make([]core.Widget, 0, 7)
		for col := 0; col < 7; col++ {
			cells = append(cells, s.dayCell(grid[row*7+col], calTheme, t))
		}
		weeks = append(weeks, Row{ChildrenWidgets: cells})
	}

	body := append([]core.Widget{header}, weeks...)
	return Box{
		Color:        t.ColorScheme.Surface,
		BorderColor:  t.ColorScheme.Border,
		BorderWidth:  1,
		BorderRadius: 8,
		Padding:      layout.EdgeInsetsAll(12),
		ChildWidget:  Column{Spacing: 4, ChildrenWidgets: body},
	}
}

func (s *datePickerState) navButton(label string, move func()) core.Widget {
	return GestureDetector{
		OnTap: func() {
			s.SetState(move)
		},
		ChildWidget: Text{Content: label},
	}
}

func (s *datePickerState) dayCell(day calendar.Day, calTheme theme.CalendarThemeData, t *theme.ThemeData) core.Widget {
	disabled := s.engine.IsDisabled(day.Date)
	selected := s.engine.IsSelected(day.Date) ||
		s.engine.IsRangeStart(day.Date) ||
		s.engine.IsRangeEnd(day.Date)
	inRange := s.engine.IsInRange(day.Date)

	foreground := calTheme.DayForeground
	var background graphics.Color
	switch {
	case selected:
		background = calTheme.SelectedBackground
		foreground = calTheme.SelectedForeground
	case inRange:
		background = calTheme.InRangeBackground
	case disabled:
		foreground = calTheme.DisabledForeground
	case !day.InMonth:
		foreground = calTheme.OutsideMonthForeground
	}

	var borderColor graphics.Color
	var borderWidth float64
	if calendar.SameDay(day.Date, time.Now()) {
		borderColor = calTheme.TodayBorder
		borderWidth = 1
	}

	var tap, hoverEnter, hoverExit func()
	if !disabled {
		date := day.Date
		tap = func() { s.handleDayTap(date) }
		hoverEnter = func() {
			s.SetState(func() { s.engine.Hover(date) })
		}
		hoverExit = func() {
			s.SetState(func() { s.engine.ClearHover() })
		}
	}

	return GestureDetector{
		OnTap:        tap,
		OnHoverEnter: hoverEnter,
		OnHoverExit:  hoverExit,
		ChildWidget: Box{
			Color:        background,
			BorderColor:  borderColor,
			BorderWidth:  borderWidth,
			BorderRadius: calTheme.DayRadius,
			Padding:      layout.EdgeInsetsAll(6),
			ChildWidget: Text{
				Content: fmt.Sprintf("%d", day.Date.Day()),
				Style:   t.TextTheme.Body.Merge(graphics.TextStyle{Color: foreground}),
			},
		},
	}
}
