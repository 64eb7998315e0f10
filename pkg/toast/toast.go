// Package toast implements the notification queue behind the ToastHost
// widget: timed, dismissible records grouped by screen position.
package toast

import (
	"math"
	"time"

	"github.com/go-mosaic/mosaic/pkg/animation"
)

// Type classifies a toast for styling.
type Type int

const (
	// TypeDefault is a neutral notification.
	TypeDefault Type = iota
	// TypeSuccess indicates a completed operation.
	TypeSuccess
	// TypeError indicates a failed operation.
	TypeError
	// TypeWarning indicates a condition needing attention.
	TypeWarning
	// TypeInfo is an informational notice.
	TypeInfo
)

// String returns the type name as used in configuration.
func (t Type) String() string {
	switch t {
	case TypeSuccess:
		return "success"
	case TypeError:
		return "error"
	case TypeWarning:
		return "warning"
	case TypeInfo:
		return "info"
	default:
		return "default"
	}
}

// Position is the screen corner or edge a toast stacks into.
type Position int

const (
	PositionTopLeft Position = iota
	PositionTopCenter
	PositionTopRight
	PositionBottomLeft
	PositionBottomCenter
	PositionBottomRight
)

// String returns the position name as used in configuration.
func (p Position) String() string {
	switch p {
	case PositionTopLeft:
		return "top-left"
	case PositionTopCenter:
		return "top-center"
	case PositionBottomLeft:
		return "bottom-left"
	case PositionBottomCenter:
		return "bottom-center"
	case PositionBottomRight:
		return "bottom-right"
	default:
		return "top-right"
	}
}

// DurationInfinite disables auto-expiry; the toast stays until dismissed.
// Use it for long-running operation indicators that are later updated into a
// finite-duration success or error state.
const DurationInfinite = time.Duration(math.MaxInt64)

// DefaultDuration applies when a Spec leaves Duration zero.
const DefaultDuration = 4 * time.Second

// Spec configures a new toast.
type Spec struct {
	// Type selects the visual styling.
	Type Type

	// Title is the bold headline. Optional.
	Title string

	// Message is the body text.
	Message string

	// Position is the stack the toast renders into.
	Position Position

	// Style is the enter/exit transition forwarded to the compositor.
	Style animation.TransitionStyle

	// Duration before auto-expiry. Zero means DefaultDuration;
	// DurationInfinite disables the timer.
	Duration time.Duration

	// OnClose is invoked exactly once when the toast is dismissed, whether
	// manually or by timer. Optional.
	OnClose func()
}

// Toast is the queue-owned record of a live notification. Consumers hold
// only the ID; Toasts returns copies.
type Toast struct {
	// ID is the unique handle returned by Add.
	ID string

	Type     Type
	Title    string
	Message  string
	Position Position
	Style    animation.TransitionStyle

	// Duration currently in effect.
	Duration time.Duration

	// CreatedAt is when the toast was added.
	CreatedAt time.Time

	onClose func()
}

// Patch is a partial update for [Queue.Update]. Nil fields are left
// untouched; the toast ID is immutable.
type Patch struct {
	Type     *Type
	Title    *string
	Message  *string
	Position *Position
	Style    *animation.TransitionStyle

	// Duration, when set, cancels the existing expiry timer and schedules a
	// new one measured from the time of the update.
	Duration *time.Duration

	OnClose *func()
}

// Of is a shorthand for taking the address of a patch field value.
func Of[T any](v T) *T { return &v }
