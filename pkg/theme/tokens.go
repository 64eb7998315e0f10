package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-mosaic/mosaic/pkg/graphics"
)

// tokensFile is the YAML shape of a design-token file.
//
// Example:
//
//	brightness: dark
//	colors:
//	  primary: "#60A5FA"
//	  surface: slategray
//	button:
//	  border-radius: 10
type tokensFile struct {
	Brightness string            `yaml:"brightness"`
	Colors     map[string]string `yaml:"colors"`
	Button     *struct {
		BorderRadius *float64 `yaml:"border-radius"`
	} `yaml:"button"`
}

// LoadTokens builds a ThemeData from YAML design tokens.
//
// The base palette is chosen by the brightness token ("light" when absent);
// entries under colors override individual scheme fields. Color values accept
// every form graphics.ParseColor does.
func LoadTokens(data []byte) (*ThemeData, error) {
	var file tokensFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("theme: parse tokens: %w", err)
	}

	var base *ThemeData
	switch file.Brightness {
	case "", "light":
		base = DefaultLightTheme()
	case "dark":
		base = DefaultDarkTheme()
	default:
		return nil, fmt.Errorf("theme: unknown brightness %q", file.Brightness)
	}

	for name, token := range file.Colors {
		color, err := graphics.ParseColor(token)
		if err != nil {
			return nil, fmt.Errorf("theme: color %q: %w", name, err)
		}
		if err := setSchemeColor(&base.ColorScheme, name, color); err != nil {
			return nil, err
		}
	}
	base.TextTheme = DefaultTextTheme(base.ColorScheme.OnBackground)

	if file.Button != nil && file.Button.BorderRadius != nil {
		buttonTheme := DefaultButtonTheme(base.ColorScheme)
		buttonTheme.BorderRadius = *file.Button.BorderRadius
		base.ButtonTheme = &buttonTheme
	}

	return base, nil
}

// LoadTokensFile is LoadTokens over a file path.
func LoadTokensFile(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read tokens: %w", err)
	}
	return LoadTokens(data)
}

func setSchemeColor(scheme *ColorScheme, name string, color graphics.Color) error {
	switch name {
	case "primary":
		scheme.Primary = color
	case "on-primary":
		scheme.OnPrimary = color
	case "secondary":
		scheme.Secondary = color
	case "on-secondary":
		scheme.OnSecondary = color
	case "background":
		scheme.Background = color
	case "on-background":
		scheme.OnBackground = color
	case "surface":
		scheme.Surface = color
	case "on-surface":
		scheme.OnSurface = color
	case "border":
		scheme.Border = color
	case "muted":
		scheme.Muted = color
	case "success":
		scheme.Success = color
	case "warning":
		scheme.Warning = color
	case "danger":
		scheme.Danger = color
	case "info":
		scheme.Info = color
	default:
		return fmt.Errorf("theme: unknown color token %q", name)
	}
	return nil
}
