package graphics

// FontWeight controls the stroke weight of rendered text.
type FontWeight int

const (
	// FontWeightNormal is regular text weight (400).
	FontWeightNormal FontWeight = iota
	// FontWeightMedium is slightly heavier than normal (500).
	FontWeightMedium
	// FontWeightSemiBold sits between medium and bold (600).
	FontWeightSemiBold
	// FontWeightBold is bold text weight (700).
	FontWeightBold
)

// TextStyle describes how a run of text should be drawn.
type TextStyle struct {
	// Color is the text color. Zero renders with the ambient text color.
	Color Color

	// FontSize in logical pixels. Zero means the ambient size.
	FontSize float64

	// FontWeight of the text.
	FontWeight FontWeight

	// Italic renders the text slanted.
	Italic bool

	// LetterSpacing in logical pixels added between characters.
	LetterSpacing float64
}

// Merge returns a copy of the style with non-zero fields of other applied on top.
func (s TextStyle) Merge(other TextStyle) TextStyle {
	result := s
	if other.Color != 0 {
		result.Color = other.Color
	}
	if other.FontSize != 0 {
		result.FontSize = other.FontSize
	}
	if other.FontWeight != FontWeightNormal {
		result.FontWeight = other.FontWeight
	}
	if other.Italic {
		result.Italic = true
	}
	if other.LetterSpacing != 0 {
		result.LetterSpacing = other.LetterSpacing
	}
	return result
}

// Offset is a 2D position or displacement.
type Offset struct {
	X float64
	Y float64
}
