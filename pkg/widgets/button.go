package widgets

import (
	"github.com/go-mosaic/mosaic/pkg/core"
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/theme"
)

// Button is a tappable button with theme-aware variant and size styling.
//
// Colors come from the current [theme.ButtonThemeData] variant table.
//
// Example using struct literal:
//
//	Button{
//	    Label:   "Delete",
//	    Variant: theme.ButtonDanger,
//	    OnTap:   handleDelete,
//	}
//
// Example using XxxOf helper:
//
//	ButtonOf("Save", handleSave).
//	    WithVariant(theme.ButtonOutline).
//	    WithSize(theme.ButtonSizeSm)
type Button struct {
	// Label is the text displayed on the button.
	Label string

	// OnTap is called when the button is tapped.
	OnTap func()

	// Variant selects the color row of the theme's variant table.
	Variant theme.ButtonVariant

	// Size selects the geometry row of the theme's size table.
	Size theme.ButtonSize

	// Disabled disables the button when true.
	Disabled bool

	// Loading shows a spinner in place of interaction. A loading button
	// does not fire OnTap.
	Loading bool
}

// ButtonOf creates a primary medium button with the given label and tap handler.
func ButtonOf(label string, onTap func()) Button {
	return Button{Label: label, OnTap: onTap}
}

// WithVariant returns a copy of the button with the given variant.
func (b Button) WithVariant(variant theme.ButtonVariant) Button {
	b.Variant = variant
	return b
}

// WithSize returns a copy of the button with the given size.
func (b Button) WithSize(size theme.ButtonSize) Button {
	b.Size = size
	return b
}

// WithDisabled returns a copy of the button with the given disabled state.
func (b Button) WithDisabled(disabled bool) Button {
	b.Disabled = disabled
	return b
}

func (b Button) CreateElement() core.Element {
	return core.NewStatelessElement(b, nil)
}

func (b Button) Key() any {
	return nil
}

func (b Button) Build(ctx core.BuildContext) core.Widget {
	buttonTheme := theme.ThemeOf(ctx).ButtonThemeOf()
	style := buttonTheme.VariantOf(b.Variant)
	size := buttonTheme.SizeOf(b.Size)

	background := style.Background
	foreground := style.Foreground
	if b.Disabled {
		background = style.DisabledBackground
		foreground = style.DisabledForeground
	}

	var onTap func()
	if !b.Disabled && !b.Loading {
		onTap = b.OnTap
	}

	var content core.Widget = Text{
		Content: b.Label,
		Style:   graphics.TextStyle{Color: foreground, FontSize: size.FontSize, FontWeight: graphics.FontWeightMedium},
	}
	if b.Loading {
		content = Row{
			Spacing: 8,
			ChildrenWidgets: []core.Widget{
				Spinner{Size: size.FontSize, Color: foreground},
				content,
			},
		}
	}

	borderWidth := 0.0
	if style.Border != 0 {
		borderWidth = 1
	}

	return GestureDetector{
		OnTap: onTap,
		ChildWidget: Box{
			Color:        background,
			BorderColor:  style.Border,
			BorderWidth:  borderWidth,
			BorderRadius: buttonTheme.BorderRadius,
			Padding:      size.Padding,
			ChildWidget:  content,
		},
	}
}
