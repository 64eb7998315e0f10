package widgets

import (
	"time"

	"github.com/go-mosaic/mosaic/pkg/animation"
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/theme"
)

// Spinner is an indeterminate activity indicator driven by a looping
// animation controller.
type Spinner struct {
	// Size is the spinner diameter. Defaults to 16 if zero.
	Size float64

	// Color of the arc. Defaults to the theme primary if zero.
	Color graphics.Color
}

func (s Spinner) CreateElement() core.Element {
	return core.NewStatefulElement(s, nil)
}

func (s Spinner) Key() any {
	return nil
}

func (s Spinner) CreateState() core.State {
	return &spinnerState{}
}

type spinnerState struct {
	core.StateBase
	ctrl *animation.Controller
}

func (s *spinnerState) InitState() {
	s.ctrl = core.UseController(s, func() *animation.Controller {
		return animation.NewController(800 * time.Millisecond)
	})
	unsub := s.ctrl.AddStatusListener(func(status animation.Status) {
		// Loop: restart from zero whenever a cycle completes.
		if status == animation.StatusCompleted {
			s.ctrl.Reset()
			s.ctrl.Forward()
		}
	})
	s.OnDispose(unsub)
	core.UseListenable(s, s.ctrl)
	s.ctrl.Forward()
}

func (s *spinnerState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(Spinner)

	size := w.Size
	if size == 0 {
		size = 16
	}
	color := w.Color
	if color == 0 {
		color = theme.ThemeOf(ctx).ColorScheme.Primary
	}

	// The host paints the arc; the widget tree carries the rotation value.
	return Box{
		Width:        size,
		Height:       size,
		BorderRadius: size / 2,
		BorderColor:  color,
		BorderWidth:  2,
	}
}
