package widgets

import (
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/theme"
)

// TabBar is a controlled horizontal tab strip. The caller owns the active
// index and receives changes through OnChanged.
type TabBar struct {
	// Tabs are the tab labels in display order.
	Tabs []string

	// ActiveIndex is the selected tab. Out-of-range values render with no
	// selection.
	ActiveIndex int

	// OnChanged is called with the tapped tab's index.
	OnChanged func(int)
}

func (t TabBar) CreateElement() core.Element {
	return core.NewStatelessElement(t, nil)
}

func (t TabBar) Key() any {
	return nil
}

func (t TabBar) Build(ctx core.BuildContext) core.Widget {
	tabTheme := theme.ThemeOf(ctx).TabBarThemeOf()

	items := make([]core.Widget, 0, len(t.Tabs))
	for i, label := range t.Tabs {
		active := i == t.ActiveIndex

		color := tabTheme.InactiveColor
		indicator := graphics.ColorTransparent
		if active {
			color = tabTheme.ActiveColor
			indicator = tabTheme.IndicatorColor
		}

		index := i
		var onTap func()
		if t.OnChanged != nil && !active {
			onChanged := t.OnChanged
			onTap = func() { onChanged(index) }
		}

		items = append(items, GestureDetector{
			OnTap: onTap,
			ChildWidget: Column{
				ChildrenWidgets: []core.Widget{
					Padding{
						Padding: tabTheme.Padding,
						ChildWidget: Text{
							Content: label,
							Style:   graphics.TextStyle{Color: color, FontSize: 14, FontWeight: graphics.FontWeightMedium},
						},
					},
					Box{Height: tabTheme.IndicatorHeight, Color: indicator},
				},
			},
		})
	}

	return Box{
		Color:       tabTheme.BackgroundColor,
		ChildWidget: Row{ChildrenWidgets: items},
	}
}
