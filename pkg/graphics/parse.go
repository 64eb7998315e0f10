package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor converts a color token into a Color.
//
// Accepted forms:
//   - "#RGB" shorthand hex (each digit doubled)
//   - "#RRGGBB" opaque hex
//   - "#AARRGGBB" hex with alpha
//   - SVG 1.1 color names ("steelblue", "rebeccapurple", ...), case-insensitive
//   - "transparent"
//
// Theme token files use this for every color-valued field.
func ParseColor(token string) (Color, error) {
	s := strings.TrimSpace(strings.ToLower(token))
	if s == "" {
		return 0, fmt.Errorf("graphics: empty color token")
	}

	if s == "transparent" {
		return ColorTransparent, nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}

	if c, ok := colornames.Map[s]; ok {
		return RGBA8(c.R, c.G, c.B, c.A), nil
	}

	return 0, fmt.Errorf("graphics: unknown color %q", token)
}

// MustParseColor is ParseColor for compile-time-known tokens. It panics on
// malformed input.
func MustParseColor(token string) Color {
	c, err := ParseColor(token)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(hex string) (Color, error) {
	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
		fallthrough
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("graphics: malformed hex color %q", "#"+hex)
		}
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("graphics: malformed hex color %q", "#"+hex)
		}
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("graphics: hex color %q must have 3, 6 or 8 digits", "#"+hex)
	}
}

// Hex returns the canonical "#AARRGGBB" form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
