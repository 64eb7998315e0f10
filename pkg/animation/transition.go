package animation

import (
	"time"

	"github.com/go-mosaic/mosaic/pkg/graphics"
)

// TransitionStyle selects the enter/exit motion for transient surfaces such
// as toasts and modals.
type TransitionStyle int

const (
	// TransitionFade cross-fades opacity.
	TransitionFade TransitionStyle = iota
	// TransitionSlide translates in from the nearest screen edge.
	TransitionSlide
	// TransitionZoom scales up from a smaller size while fading in.
	TransitionZoom
	// TransitionFlip rotates around the horizontal axis while fading in.
	TransitionFlip
)

// String returns the style name as used in configuration.
func (s TransitionStyle) String() string {
	switch s {
	case TransitionSlide:
		return "slide"
	case TransitionZoom:
		return "zoom"
	case TransitionFlip:
		return "flip"
	default:
		return "fade"
	}
}

// ParseTransitionStyle converts a configuration token into a TransitionStyle.
// Unknown tokens fall back to TransitionFade.
func ParseTransitionStyle(token string) TransitionStyle {
	switch token {
	case "slide":
		return TransitionSlide
	case "zoom":
		return TransitionZoom
	case "flip":
		return TransitionFlip
	default:
		return TransitionFade
	}
}

// TransitionSpec bundles the parameters a widget forwards to the host
// compositor for an enter or exit transition. The value is declarative; the
// compositor owns the actual interpolation.
type TransitionSpec struct {
	// Style selects the motion family.
	Style TransitionStyle

	// Duration of the transition.
	Duration time.Duration

	// Curve applied to linear progress.
	Curve func(float64) float64

	// OpacityFrom is the starting opacity (enter) or ending opacity (exit).
	OpacityFrom float64

	// SlideFrom is the starting displacement for TransitionSlide.
	SlideFrom graphics.Offset

	// ScaleFrom is the starting scale factor for TransitionZoom.
	ScaleFrom float64

	// RotationFrom is the starting rotation in radians for TransitionFlip.
	RotationFrom float64
}

// TransitionOf returns the default parameter bundle for a style. The values
// match the library's stock enter transitions.
func TransitionOf(style TransitionStyle) TransitionSpec {
	spec := TransitionSpec{
		Style:       style,
		Duration:    250 * time.Millisecond,
		Curve:       EaseOut,
		OpacityFrom: 0,
		ScaleFrom:   1,
	}
	switch style {
	case TransitionSlide:
		spec.SlideFrom = graphics.Offset{Y: 16}
		spec.Curve = EaseOutBack
	case TransitionZoom:
		spec.ScaleFrom = 0.85
	case TransitionFlip:
		spec.RotationFrom = 1.2
		spec.Duration = 350 * time.Millisecond
	}
	return spec
}

// Spring describes physics parameters for gesture-driven motion. Widgets
// forward a Spring to the host engine; the solver lives there.
type Spring struct {
	// Stiffness of the spring. Higher values snap faster.
	Stiffness float64

	// Damping resists motion. Critical damping avoids oscillation.
	Damping float64

	// Mass of the animated object.
	Mass float64

	// InitialVelocity in logical pixels per second, carried over from a
	// gesture fling.
	InitialVelocity float64
}

// DefaultSpring is a gently damped spring suitable for sheet and toast
// settles.
var DefaultSpring = Spring{Stiffness: 180, Damping: 20, Mass: 1}
