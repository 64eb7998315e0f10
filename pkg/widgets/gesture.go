package widgets

import "github.com/go-mosaic/mosaic/pkg/core"

// GestureDetector reports pointer interactions on its child.
type GestureDetector struct {
	// OnTap fires on a completed tap.
	OnTap func()

	// OnHoverEnter fires when the pointer moves over the child.
	OnHoverEnter func()

	// OnHoverExit fires when the pointer leaves the child.
	OnHoverExit func()

	ChildWidget core.Widget
}

func (g GestureDetector) CreateElement() core.Element {
	return core.NewHostElement(g, nil)
}

func (g GestureDetector) Key() any {
	return nil
}

func (g GestureDetector) Child() core.Widget {
	return g.ChildWidget
}
