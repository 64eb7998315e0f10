package widgets

import (
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/layout"
)

// Text displays a run of styled text.
type Text struct {
	// Content is the text to display.
	Content string

	// Style controls color, size, and weight. Zero fields inherit.
	Style graphics.TextStyle
}

func (t Text) CreateElement() core.Element {
	return core.NewHostElement(t, nil)
}

func (t Text) Key() any {
	return nil
}

// Box is a decorated container: fill, border, rounded corners, padding, and
// an optional fixed size around a single child.
type Box struct {
	// Color fills the background.
	Color graphics.Color

	// BorderColor draws an outline when non-zero.
	BorderColor graphics.Color

	// BorderWidth of the outline. Defaults to 1 when BorderColor is set.
	BorderWidth float64

	// BorderRadius rounds the corners.
	BorderRadius float64

	// Padding insets the child.
	Padding layout.EdgeInsets

	// Width and Height fix the box size when non-zero.
	Width  float64
	Height float64

	// ChildWidget is the contained widget. Optional.
	ChildWidget core.Widget
}

func (b Box) CreateElement() core.Element {
	return core.NewHostElement(b, nil)
}

func (b Box) Key() any {
	return nil
}

func (b Box) Child() core.Widget {
	return b.ChildWidget
}

// Padding insets a single child.
type Padding struct {
	Padding     layout.EdgeInsets
	ChildWidget core.Widget
}

func (p Padding) CreateElement() core.Element {
	return core.NewHostElement(p, nil)
}

func (p Padding) Key() any {
	return nil
}

func (p Padding) Child() core.Widget {
	return p.ChildWidget
}

// SizedBox is an empty fixed-size spacer.
type SizedBox struct {
	Width  float64
	Height float64
}

func (s SizedBox) CreateElement() core.Element {
	return core.NewHostElement(s, nil)
}

func (s SizedBox) Key() any {
	return nil
}

// Row lays out children horizontally.
type Row struct {
	// Spacing between adjacent children in logical pixels.
	Spacing float64

	// Alignment positions children along the cross axis.
	Alignment layout.Alignment

	ChildrenWidgets []core.Widget
}

func (r Row) CreateElement() core.Element {
	return core.NewHostElement(r, nil)
}

func (r Row) Key() any {
	return nil
}

func (r Row) Children() []core.Widget {
	return r.ChildrenWidgets
}

// Column lays out children vertically.
type Column struct {
	// Spacing between adjacent children in logical pixels.
	Spacing float64

	// Alignment positions children along the cross axis.
	Alignment layout.Alignment

	ChildrenWidgets []core.Widget
}

func (c Column) CreateElement() core.Element {
	return core.NewHostElement(c, nil)
}

func (c Column) Key() any {
	return nil
}

func (c Column) Children() []core.Widget {
	return c.ChildrenWidgets
}

// Stack layers children on top of each other, first child lowest.
type Stack struct {
	ChildrenWidgets []core.Widget
}

func (s Stack) CreateElement() core.Element {
	return core.NewHostElement(s, nil)
}

func (s Stack) Key() any {
	return nil
}

func (s Stack) Children() []core.Widget {
	return s.ChildrenWidgets
}
