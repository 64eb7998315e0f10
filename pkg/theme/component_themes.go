package theme

import (
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/layout"
	"github.com/go-mosaic/mosaic/pkg/toast"
)

// ButtonVariant selects a row of the button variant table.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonOutline
	ButtonGhost
	ButtonDanger
)

// ButtonSize selects a row of the button size table.
type ButtonSize int

const (
	ButtonSizeSm ButtonSize = iota
	ButtonSizeMd
	ButtonSizeLg
)

// ButtonStyle is one row of the button variant table.
type ButtonStyle struct {
	// Background fill.
	Background graphics.Color
	// Foreground is the label color.
	Foreground graphics.Color
	// Border color; transparent for filled variants.
	Border graphics.Color
	// DisabledBackground replaces Background when disabled.
	DisabledBackground graphics.Color
	// DisabledForeground replaces Foreground when disabled.
	DisabledForeground graphics.Color
}

// ButtonSizeStyle is one row of the button size table.
type ButtonSizeStyle struct {
	// Padding inside the button.
	Padding layout.EdgeInsets
	// FontSize of the label.
	FontSize float64
}

// ButtonThemeData defines default styling for Button widgets.
type ButtonThemeData struct {
	// Variants maps each variant to its color row.
	Variants map[ButtonVariant]ButtonStyle
	// Sizes maps each size to its geometry row.
	Sizes map[ButtonSize]ButtonSizeStyle
	// BorderRadius is the corner radius shared by all variants.
	BorderRadius float64
}

// VariantOf returns the style row for a variant, falling back to primary.
func (t ButtonThemeData) VariantOf(v ButtonVariant) ButtonStyle {
	if style, ok := t.Variants[v]; ok {
		return style
	}
	return t.Variants[ButtonPrimary]
}

// SizeOf returns the geometry row for a size, falling back to medium.
func (t ButtonThemeData) SizeOf(s ButtonSize) ButtonSizeStyle {
	if style, ok := t.Sizes[s]; ok {
		return style
	}
	return t.Sizes[ButtonSizeMd]
}

// CheckboxThemeData defines default styling for Checkbox widgets.
type CheckboxThemeData struct {
	// ActiveColor is the fill color when checked.
	ActiveColor graphics.Color
	// CheckColor is the checkmark color.
	CheckColor graphics.Color
	// BorderColor is the outline color when unchecked.
	BorderColor graphics.Color
	// DisabledColor replaces ActiveColor and BorderColor when disabled.
	DisabledColor graphics.Color
	// Size is the default checkbox edge length.
	Size float64
	// BorderRadius is the default corner radius.
	BorderRadius float64
}

// TextFieldThemeData defines default styling for TextField widgets.
type TextFieldThemeData struct {
	// BackgroundColor is the field background.
	BackgroundColor graphics.Color
	// BorderColor is the default border color.
	BorderColor graphics.Color
	// FocusColor is the border color when focused.
	FocusColor graphics.Color
	// ErrorColor is the border and message color in the error state.
	ErrorColor graphics.Color
	// TextColor is the input text color.
	TextColor graphics.Color
	// PlaceholderColor is the placeholder text color.
	PlaceholderColor graphics.Color
	// Padding is the default inner padding.
	Padding layout.EdgeInsets
	// BorderRadius is the default corner radius.
	BorderRadius float64
}

// BadgeStyle is one row of the badge variant table.
type BadgeStyle struct {
	Background graphics.Color
	Foreground graphics.Color
}

// BadgeThemeData defines default styling for Badge widgets, keyed by the
// same status taxonomy toasts use.
type BadgeThemeData struct {
	Variants     map[toast.Type]BadgeStyle
	BorderRadius float64
	FontSize     float64
}

// VariantOf returns the style row for a badge type, falling back to default.
func (t BadgeThemeData) VariantOf(v toast.Type) BadgeStyle {
	if style, ok := t.Variants[v]; ok {
		return style
	}
	return t.Variants[toast.TypeDefault]
}

// TabBarThemeData defines default styling for TabBar widgets.
type TabBarThemeData struct {
	// BackgroundColor is the tab bar background.
	BackgroundColor graphics.Color
	// ActiveColor is the color for the selected tab label.
	ActiveColor graphics.Color
	// InactiveColor is the color for unselected tab labels.
	InactiveColor graphics.Color
	// IndicatorColor is the color for the selection indicator.
	IndicatorColor graphics.Color
	// IndicatorHeight is the height of the selection indicator.
	IndicatorHeight float64
	// Padding is the default tab item padding.
	Padding layout.EdgeInsets
}

// ModalThemeData defines default styling for Modal widgets.
type ModalThemeData struct {
	// BackgroundColor is the dialog surface color.
	BackgroundColor graphics.Color
	// BarrierColor covers the page behind the dialog.
	BarrierColor graphics.Color
	// TitleColor is the title text color.
	TitleColor graphics.Color
	// BorderRadius is the dialog corner radius.
	BorderRadius float64
	// Padding is the dialog content padding.
	Padding layout.EdgeInsets
}

// ToastStyle is one row of the toast variant table.
type ToastStyle struct {
	// Background fill of the toast card.
	Background graphics.Color
	// Foreground is the message text color.
	Foreground graphics.Color
	// Accent is the leading bar/icon color.
	Accent graphics.Color
}

// ToastThemeData defines default styling for toast cards, keyed by toast type.
type ToastThemeData struct {
	Variants     map[toast.Type]ToastStyle
	BorderRadius float64
	Padding      layout.EdgeInsets
}

// VariantOf returns the style row for a toast type, falling back to default.
func (t ToastThemeData) VariantOf(v toast.Type) ToastStyle {
	if style, ok := t.Variants[v]; ok {
		return style
	}
	return t.Variants[toast.TypeDefault]
}

// TableThemeData defines default styling for DataTable widgets.
type TableThemeData struct {
	// HeaderBackground is the header row fill.
	HeaderBackground graphics.Color
	// HeaderForeground is the header text color.
	HeaderForeground graphics.Color
	// RowBackground is the default row fill.
	RowBackground graphics.Color
	// StripeBackground is the alternating row fill.
	StripeBackground graphics.Color
	// SelectedBackground is the fill of selected rows.
	SelectedBackground graphics.Color
	// BorderColor separates rows.
	BorderColor graphics.Color
	// CellPadding is the padding inside each cell.
	CellPadding layout.EdgeInsets
}

// CalendarThemeData defines default styling for the DatePicker's day grid.
type CalendarThemeData struct {
	// SelectedBackground fills the selected day and range endpoints.
	SelectedBackground graphics.Color
	// SelectedForeground is the text color on selected days.
	SelectedForeground graphics.Color
	// InRangeBackground fills days strictly inside a range.
	InRangeBackground graphics.Color
	// TodayBorder outlines the current day.
	TodayBorder graphics.Color
	// DayForeground is the default day text color.
	DayForeground graphics.Color
	// OutsideMonthForeground is the text color of padding cells.
	OutsideMonthForeground graphics.Color
	// DisabledForeground is the text color of disabled days.
	DisabledForeground graphics.Color
	// DayRadius is the corner radius of day cells.
	DayRadius float64
}
