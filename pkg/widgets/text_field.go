package widgets

import (
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/theme"
)

// TextField is a single-line text input. The caller owns the value; the
// field owns only its focus state.
type TextField struct {
	// Value is the current text.
	Value string

	// OnChanged is called with the new text on every edit.
	OnChanged func(string)

	// OnSubmit is called with the current text when editing is committed.
	OnSubmit func(string)

	// Placeholder is shown when Value is empty.
	Placeholder string

	// ErrorText, when non-empty, shows below the field and switches the
	// border to the error color.
	ErrorText string

	// Disabled disables interaction when true.
	Disabled bool
}

func (t TextField) CreateElement() core.Element {
	return core.NewStatefulElement(t, nil)
}

func (t TextField) Key() any {
	return nil
}

func (t TextField) CreateState() core.State {
	return &textFieldState{}
}

type textFieldState struct {
	core.StateBase
	focused bool
}

// EnterText replaces the field text as a user edit would, firing OnChanged.
// Exposed for the widget tester.
func (s *textFieldState) EnterText(text string) {
	w := s.Element().Widget().(TextField)
	if w.Disabled {
		return
	}
	if w.OnChanged != nil {
		w.OnChanged(text)
	}
}

// Submit commits the current text, firing OnSubmit.
func (s *textFieldState) Submit() {
	w := s.Element().Widget().(TextField)
	if w.Disabled {
		return
	}
	if w.OnSubmit != nil {
		w.OnSubmit(w.Value)
	}
}

func (s *textFieldState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(TextField)
	t := theme.ThemeOf(ctx)
	fieldTheme := t.TextFieldThemeOf()

	border := fieldTheme.BorderColor
	if s.focused {
		border = fieldTheme.FocusColor
	}
	if w.ErrorText != "" {
		border = fieldTheme.ErrorColor
	}

	display := w.Value
	style := graphics.TextStyle{Color: fieldTheme.TextColor, FontSize: t.TextTheme.Body.FontSize}
	if display == "" {
		display = w.Placeholder
		style.Color = fieldTheme.PlaceholderColor
	}

	field := GestureDetector{
		OnTap: func() {
			if !w.Disabled {
				s.SetState(func() { s.focused = true })
			}
		},
		ChildWidget: Box{
			Color:        fieldTheme.BackgroundColor,
			BorderColor:  border,
			BorderWidth:  1,
			BorderRadius: fieldTheme.BorderRadius,
			Padding:      fieldTheme.Padding,
			ChildWidget:  Text{Content: display, Style: style},
		},
	}

	if w.ErrorText == "" {
		return field
	}
	return Column{
		Spacing: 4,
		ChildrenWidgets: []core.Widget{
			field,
			Text{
				Content: w.ErrorText,
				Style:   graphics.TextStyle{Color: fieldTheme.ErrorColor, FontSize: t.TextTheme.Caption.FontSize},
			},
		},
	}
}
