package theme

import "github.com/go-mosaic/mosaic/pkg/core"

// Theme makes a ThemeData available to every descendant widget.
// Wrap your page root:
//
//	theme.Theme{
//	    Data:        theme.DefaultDarkTheme(),
//	    ChildWidget: app,
//	}
type Theme struct {
	// Data is the theme to provide. Nil falls back to the default light theme.
	Data *ThemeData

	// ChildWidget is the subtree the theme applies to.
	ChildWidget core.Widget
}

func (t Theme) CreateElement() core.Element {
	return core.NewHostElement(t, nil)
}

func (t Theme) Key() any {
	return nil
}

// Child returns the wrapped subtree.
func (t Theme) Child() core.Widget {
	return t.ChildWidget
}

// ThemeOf returns the nearest ancestor theme, or the default light theme
// when none is in scope. Widgets call this in Build for their defaults.
func ThemeOf(ctx core.BuildContext) *ThemeData {
	element := ctx.FindAncestor(func(e core.Element) bool {
		_, ok := e.Widget().(Theme)
		return ok
	})
	if element != nil {
		if data := element.Widget().(Theme).Data; data != nil {
			return data
		}
	}
	return DefaultLightTheme()
}
