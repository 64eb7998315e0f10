package widgets

import (
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/theme"
)

// Checkbox is a controlled two-state checkbox. The caller owns the value and
// passes a new one through OnChanged.
type Checkbox struct {
	// Value is the current checked state.
	Value bool

	// OnChanged is called with the toggled value when tapped.
	OnChanged func(bool)

	// Label is an optional text shown next to the box.
	Label string

	// Disabled disables interaction when true.
	Disabled bool
}

func (c Checkbox) CreateElement() core.Element {
	return core.NewStatelessElement(c, nil)
}

func (c Checkbox) Key() any {
	return nil
}

func (c Checkbox) Build(ctx core.BuildContext) core.Widget {
	t := theme.ThemeOf(ctx)
	boxTheme := t.CheckboxThemeOf()

	fill := graphics.ColorTransparent
	border := boxTheme.BorderColor
	if c.Value {
		fill = boxTheme.ActiveColor
		border = boxTheme.ActiveColor
	}
	if c.Disabled {
		border = boxTheme.DisabledColor
		if c.Value {
			fill = boxTheme.DisabledColor
		}
	}

	var mark core.Widget
	if c.Value {
		mark = Text{
			Content: "✓",
			Style:   graphics.TextStyle{Color: boxTheme.CheckColor, FontSize: boxTheme.Size - 4},
		}
	}

	box := Box{
		Width:        boxTheme.Size,
		Height:       boxTheme.Size,
		Color:        fill,
		BorderColor:  border,
		BorderWidth:  1,
		BorderRadius: boxTheme.BorderRadius,
		ChildWidget:  mark,
	}

	var content core.Widget = box
	if c.Label != "" {
		content = Row{
			Spacing: 8,
			ChildrenWidgets: []core.Widget{
				box,
				Text{Content: c.Label, Style: t.TextTheme.Body},
			},
		}
	}

	var onTap func()
	if !c.Disabled && c.OnChanged != nil {
		value := c.Value
		onChanged := c.OnChanged
		onTap = func() { onChanged(!value) }
	}

	return GestureDetector{
		OnTap:       onTap,
		ChildWidget: content,
	}
}
