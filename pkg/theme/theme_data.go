package theme

import "github.com/go-mosaic/mosaic/pkg/graphics"

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// ColorScheme defines the color palette all component themes derive from.
type ColorScheme struct {
	// Primary is the main brand color.
	Primary graphics.Color
	// OnPrimary is the text/icon color drawn on Primary.
	OnPrimary graphics.Color
	// Secondary is the supporting accent color.
	Secondary graphics.Color
	// OnSecondary is the text/icon color drawn on Secondary.
	OnSecondary graphics.Color
	// Background is the app background.
	Background graphics.Color
	// OnBackground is the default text color.
	OnBackground graphics.Color
	// Surface is the background of cards, sheets, and toasts.
	Surface graphics.Color
	// OnSurface is the text color drawn on Surface.
	OnSurface graphics.Color
	// Border is the default outline color.
	Border graphics.Color
	// Muted is the color for secondary text and placeholders.
	Muted graphics.Color
	// Success, Warning, Danger, Info are the status colors.
	Success graphics.Color
	Warning graphics.Color
	Danger  graphics.Color
	Info    graphics.Color
}

// TextTheme defines the standard text styles.
type TextTheme struct {
	// Title is for headings and modal titles.
	Title graphics.TextStyle
	// Body is the default text style.
	Body graphics.TextStyle
	// Label is for buttons and form labels.
	Label graphics.TextStyle
	// Caption is for helper text and table metadata.
	Caption graphics.TextStyle
}

// ThemeData contains all theme configuration for an application.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// TextTheme defines text styles.
	TextTheme TextTheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Component themes - optional, derived from ColorScheme if nil.
	ButtonTheme     *ButtonThemeData
	CheckboxTheme   *CheckboxThemeData
	TextFieldTheme  *TextFieldThemeData
	BadgeTheme      *BadgeThemeData
	TabBarTheme     *TabBarThemeData
	ModalTheme      *ModalThemeData
	ToastTheme      *ToastThemeData
	TableTheme      *TableThemeData
	CalendarTheme   *CalendarThemeData
}

// ButtonThemeOf returns the button theme, deriving from ColorScheme if not set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.ColorScheme)
}

// CheckboxThemeOf returns the checkbox theme, deriving from ColorScheme if not set.
func (t *ThemeData) CheckboxThemeOf() CheckboxThemeData {
	if t.CheckboxTheme != nil {
		return *t.CheckboxTheme
	}
	return DefaultCheckboxTheme(t.ColorScheme)
}

// TextFieldThemeOf returns the text field theme, deriving from ColorScheme if not set.
func (t *ThemeData) TextFieldThemeOf() TextFieldThemeData {
	if t.TextFieldTheme != nil {
		return *t.TextFieldTheme
	}
	return DefaultTextFieldTheme(t.ColorScheme)
}

// BadgeThemeOf returns the badge theme, deriving from ColorScheme if not set.
func (t *ThemeData) BadgeThemeOf() BadgeThemeData {
	if t.BadgeTheme != nil {
		return *t.BadgeTheme
	}
	return DefaultBadgeTheme(t.ColorScheme)
}

// TabBarThemeOf returns the tab bar theme, deriving from ColorScheme if not set.
func (t *ThemeData) TabBarThemeOf() TabBarThemeData {
	if t.TabBarTheme != nil {
		return *t.TabBarTheme
	}
	return DefaultTabBarTheme(t.ColorScheme)
}

// ModalThemeOf returns the modal theme, deriving from ColorScheme if not set.
func (t *ThemeData) ModalThemeOf() ModalThemeData {
	if t.ModalTheme != nil {
		return *t.ModalTheme
	}
	return DefaultModalTheme(t.ColorScheme)
}

// ToastThemeOf returns the toast theme, deriving from ColorScheme if not set.
func (t *ThemeData) ToastThemeOf() ToastThemeData {
	if t.ToastTheme != nil {
		return *t.ToastTheme
	}
	return DefaultToastTheme(t.ColorScheme)
}

// TableThemeOf returns the table theme, deriving from ColorScheme if not set.
func (t *ThemeData) TableThemeOf() TableThemeData {
	if t.TableTheme != nil {
		return *t.TableTheme
	}
	return DefaultTableTheme(t.ColorScheme)
}

// CalendarThemeOf returns the calendar theme, deriving from ColorScheme if not set.
func (t *ThemeData) CalendarThemeOf() CalendarThemeData {
	if t.CalendarTheme != nil {
		return *t.CalendarTheme
	}
	return DefaultCalendarTheme(t.ColorScheme)
}
