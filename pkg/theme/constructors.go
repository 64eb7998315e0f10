package theme

import (
	"github.com/go-mosaic/mosaic/pkg/graphics"
	"github.com/go-mosaic/mosaic/pkg/layout"
	"github.com/go-mosaic/mosaic/pkg/toast"
)

// LightColorScheme returns the stock light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      graphics.RGB(0x3B, 0x82, 0xF6),
		OnPrimary:    graphics.ColorWhite,
		Secondary:    graphics.RGB(0x64, 0x74, 0x8B),
		OnSecondary:  graphics.ColorWhite,
		Background:   graphics.ColorWhite,
		OnBackground: graphics.RGB(0x0F, 0x17, 0x2A),
		Surface:      graphics.RGB(0xF8, 0xFA, 0xFC),
		OnSurface:    graphics.RGB(0x0F, 0x17, 0x2A),
		Border:       graphics.RGB(0xE2, 0xE8, 0xF0),
		Muted:        graphics.RGB(0x94, 0xA3, 0xB8),
		Success:      graphics.RGB(0x22, 0xC5, 0x5E),
		Warning:      graphics.RGB(0xF5, 0x9E, 0x0B),
		Danger:       graphics.RGB(0xEF, 0x44, 0x44),
		Info:         graphics.RGB(0x0E, 0xA5, 0xE9),
	}
}

// DarkColorScheme returns the stock dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      graphics.RGB(0x60, 0xA5, 0xFA),
		OnPrimary:    graphics.RGB(0x0F, 0x17, 0x2A),
		Secondary:    graphics.RGB(0x94, 0xA3, 0xB8),
		OnSecondary:  graphics.RGB(0x0F, 0x17, 0x2A),
		Background:   graphics.RGB(0x0F, 0x17, 0x2A),
		OnBackground: graphics.RGB(0xF1, 0xF5, 0xF9),
		Surface:      graphics.RGB(0x1E, 0x29, 0x3B),
		OnSurface:    graphics.RGB(0xF1, 0xF5, 0xF9),
		Border:       graphics.RGB(0x33, 0x41, 0x55),
		Muted:        graphics.RGB(0x64, 0x74, 0x8B),
		Success:      graphics.RGB(0x4A, 0xDE, 0x80),
		Warning:      graphics.RGB(0xFB, 0xBF, 0x24),
		Danger:       graphics.RGB(0xF8, 0x71, 0x71),
		Info:         graphics.RGB(0x38, 0xBD, 0xF8),
	}
}

// DefaultTextTheme derives a text theme with the given base color.
func DefaultTextTheme(color graphics.Color) TextTheme {
	return TextTheme{
		Title:   graphics.TextStyle{Color: color, FontSize: 18, FontWeight: graphics.FontWeightSemiBold},
		Body:    graphics.TextStyle{Color: color, FontSize: 14},
		Label:   graphics.TextStyle{Color: color, FontSize: 14, FontWeight: graphics.FontWeightMedium},
		Caption: graphics.TextStyle{Color: color, FontSize: 12},
	}
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	colors := LightColorScheme()
	return &ThemeData{
		ColorScheme: colors,
		TextTheme:   DefaultTextTheme(colors.OnBackground),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	colors := DarkColorScheme()
	return &ThemeData{
		ColorScheme: colors,
		TextTheme:   DefaultTextTheme(colors.OnBackground),
		Brightness:  BrightnessDark,
	}
}

// DefaultButtonTheme derives the button variant and size tables from a scheme.
func DefaultButtonTheme(colors ColorScheme) ButtonThemeData {
	disabledBg := colors.Border
	disabledFg := colors.Muted
	return ButtonThemeData{
		Variants: map[ButtonVariant]ButtonStyle{
			ButtonPrimary: {
				Background: colors.Primary, Foreground: colors.OnPrimary,
				DisabledBackground: disabledBg, DisabledForeground: disabledFg,
			},
			ButtonSecondary: {
				Background: colors.Secondary, Foreground: colors.OnSecondary,
				DisabledBackground: disabledBg, DisabledForeground: disabledFg,
			},
			ButtonOutline: {
				Background: graphics.ColorTransparent, Foreground: colors.Primary,
				Border:             colors.Border,
				DisabledBackground: graphics.ColorTransparent, DisabledForeground: disabledFg,
			},
			ButtonGhost: {
				Background: graphics.ColorTransparent, Foreground: colors.Primary,
				DisabledBackground: graphics.ColorTransparent, DisabledForeground: disabledFg,
			},
			ButtonDanger: {
				Background: colors.Danger, Foreground: colors.OnPrimary,
				DisabledBackground: disabledBg, DisabledForeground: disabledFg,
			},
		},
		Sizes: map[ButtonSize]ButtonSizeStyle{
			ButtonSizeSm: {Padding: layout.EdgeInsetsSymmetric(12, 6), FontSize: 12},
			ButtonSizeMd: {Padding: layout.EdgeInsetsSymmetric(16, 8), FontSize: 14},
			ButtonSizeLg: {Padding: layout.EdgeInsetsSymmetric(24, 12), FontSize: 16},
		},
		BorderRadius: 8,
	}
}

// DefaultCheckboxTheme derives the checkbox theme from a scheme.
func DefaultCheckboxTheme(colors ColorScheme) CheckboxThemeData {
	return CheckboxThemeData{
		ActiveColor:   colors.Primary,
		CheckColor:    colors.OnPrimary,
		BorderColor:   colors.Border,
		DisabledColor: colors.Muted,
		Size:          18,
		BorderRadius:  4,
	}
}

// DefaultTextFieldTheme derives the text field theme from a scheme.
func DefaultTextFieldTheme(colors ColorScheme) TextFieldThemeData {
	return TextFieldThemeData{
		BackgroundColor:  colors.Background,
		BorderColor:      colors.Border,
		FocusColor:       colors.Primary,
		ErrorColor:       colors.Danger,
		TextColor:        colors.OnBackground,
		PlaceholderColor: colors.Muted,
		Padding:          layout.EdgeInsetsSymmetric(12, 8),
		BorderRadius:     6,
	}
}

// DefaultBadgeTheme derives the badge variant table from a scheme.
func DefaultBadgeTheme(colors ColorScheme) BadgeThemeData {
	return BadgeThemeData{
		Variants: map[toast.Type]BadgeStyle{
			toast.TypeDefault: {Background: colors.Border, Foreground: colors.OnBackground},
			toast.TypeSuccess: {Background: colors.Success, Foreground: colors.OnPrimary},
			toast.TypeError:   {Background: colors.Danger, Foreground: colors.OnPrimary},
			toast.TypeWarning: {Background: colors.Warning, Foreground: colors.OnPrimary},
			toast.TypeInfo:    {Background: colors.Info, Foreground: colors.OnPrimary},
		},
		BorderRadius: 9999,
		FontSize:     11,
	}
}

// DefaultTabBarTheme derives the tab bar theme from a scheme.
func DefaultTabBarTheme(colors ColorScheme) TabBarThemeData {
	return TabBarThemeData{
		BackgroundColor: colors.Background,
		ActiveColor:     colors.Primary,
		InactiveColor:   colors.Muted,
		IndicatorColor:  colors.Primary,
		IndicatorHeight: 2,
		Padding:         layout.EdgeInsetsSymmetric(16, 10),
	}
}

// DefaultModalTheme derives the modal theme from a scheme.
func DefaultModalTheme(colors ColorScheme) ModalThemeData {
	return ModalThemeData{
		BackgroundColor: colors.Surface,
		BarrierColor:    graphics.ColorBlack.WithAlpha(0.5),
		TitleColor:      colors.OnSurface,
		BorderRadius:    12,
		Padding:         layout.EdgeInsetsAll(20),
	}
}

// DefaultToastTheme derives the toast variant table from a scheme.
func DefaultToastTheme(colors ColorScheme) ToastThemeData {
	return ToastThemeData{
		Variants: map[toast.Type]ToastStyle{
			toast.TypeDefault: {Background: colors.Surface, Foreground: colors.OnSurface, Accent: colors.Border},
			toast.TypeSuccess: {Background: colors.Surface, Foreground: colors.OnSurface, Accent: colors.Success},
			toast.TypeError:   {Background: colors.Surface, Foreground: colors.OnSurface, Accent: colors.Danger},
			toast.TypeWarning: {Background: colors.Surface, Foreground: colors.OnSurface, Accent: colors.Warning},
			toast.TypeInfo:    {Background: colors.Surface, Foreground: colors.OnSurface, Accent: colors.Info},
		},
		BorderRadius: 8,
		Padding:      layout.EdgeInsetsSymmetric(16, 12),
	}
}

// DefaultTableTheme derives the data table theme from a scheme.
func DefaultTableTheme(colors ColorScheme) TableThemeData {
	return TableThemeData{
		HeaderBackground:   colors.Surface,
		HeaderForeground:   colors.Muted,
		RowBackground:      colors.Background,
		StripeBackground:   colors.Surface,
		SelectedBackground: colors.Primary.WithAlpha(0.08),
		BorderColor:        colors.Border,
		CellPadding:        layout.EdgeInsetsSymmetric(12, 10),
	}
}

// DefaultCalendarTheme derives the calendar theme from a scheme.
func DefaultCalendarTheme(colors ColorScheme) CalendarThemeData {
	return CalendarThemeData{
		SelectedBackground:     colors.Primary,
		SelectedForeground:     colors.OnPrimary,
		InRangeBackground:      colors.Primary.WithAlpha(0.12),
		TodayBorder:            colors.Primary,
		DayForeground:          colors.OnBackground,
		OutsideMonthForeground: colors.Muted,
		DisabledForeground:     colors.Border,
		DayRadius:              6,
	}
}
