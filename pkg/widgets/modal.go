package widgets

import (
	"github.com/go-mosaic/mosaic/pkg/animation"
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/theme"
)

// Modal is a centered dialog over a dimmed barrier.
//
// Modal is controlled: the caller owns the Open flag and clears it from
// OnClose. When closed it renders nothing, so it can stay in the tree:
//
//	widgets.Modal{
//	    Open:    s.confirmOpen.Value(),
//	    Title:   "Delete row?",
//	    OnClose: func() { s.confirmOpen.Set(false) },
//	    ChildWidget: body,
//	}
type Modal struct {
	// Open shows the dialog.
	Open bool

	// Title is the optional dialog heading.
	Title string

	// ChildWidget is the dialog body.
	ChildWidget core.Widget

	// OnClose is called when the user dismisses the dialog.
	OnClose func()

	// BarrierDismiss allows tapping the barrier to dismiss. Defaults off;
	// use ModalOf for the common dismissible dialog.
	BarrierDismiss bool

	// Transition is forwarded to the compositor for enter/exit motion.
	// Zero value means the stock zoom transition.
	Transition animation.TransitionSpec
}

// ModalOf creates a barrier-dismissible modal with the stock zoom transition.
func ModalOf(title string, child core.Widget, onClose func()) Modal {
	return Modal{
		Title:          title,
		ChildWidget:    child,
		OnClose:        onClose,
		BarrierDismiss: true,
		Transition:     animation.TransitionOf(animation.TransitionZoom),
	}
}

func (m Modal) CreateElement() core.Element {
	return core.NewStatelessElement(m, nil)
}

func (m Modal) Key() any {
	return nil
}

func (m Modal) Build(ctx core.BuildContext) core.Widget {
	if !m.Open {
		return nil
	}

	t := theme.ThemeOf(ctx)
	modalTheme := t.ModalThemeOf()

	var barrierTap func()
	if m.BarrierDismiss && m.OnClose != nil {
		barrierTap = m.OnClose
	}

	var children []core.Widget
	if m.Title != "" {
		children = append(children, Text{
			Content: m.Title,
			Style:   t.TextTheme.Title.Merge(graphics.TextStyle{Color: modalTheme.TitleColor}),
		})
	}
	if m.ChildWidget != nil {
		children = append(children, m.ChildWidget)
	}

	return Stack{
		ChildrenWidgets: []core.Widget{
			GestureDetector{
				OnTap:       barrierTap,
				ChildWidget: Box{Color: modalTheme.BarrierColor},
			},
			Box{
				Color:        modalTheme.BackgroundColor,
				BorderRadius: modalTheme.BorderRadius,
				Padding:      modalTheme.Padding,
				ChildWidget:  Column{Spacing: 12, ChildrenWidgets: children},
			},
		},
	}
}
