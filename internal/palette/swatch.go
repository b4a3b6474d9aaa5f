package palette

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
)

const (
	textDark  = "#000000"
	textLight = "#ffffff"
	onWhite   = "#ffffff"
)

// Swatch is a catalog color annotated for display.
type Swatch struct {
	domain.Color
	OnWhite   float64 `json:"contrastOnWhite"`
	TextColor string  `json:"textColor"`
}

// Generate returns the palette for a theme and mood with display
// annotations.
func Generate(theme Theme, mood Mood) ([]Swatch, error) {
	colors, err := Lookup(theme, mood)
	if err != nil {
		return nil, err
	}
	return Annotate(colors), nil
}

// Annotate computes the contrast on white and a readable text color for
// each color.
func Annotate(colors []domain.Color) []Swatch {
	swatches := make([]Swatch, len(colors))
	for i, col := range colors {
		swatches[i] = Swatch{
			Color:     col,
			OnWhite:   domain.ContrastRatio(col.Hex, onWhite),
			TextColor: TextColor(col.Hex),
		}
	}
	return swatches
}

// Colors strips the annotations.
func Colors(swatches []Swatch) []domain.Color {
	colors := make([]domain.Color, len(swatches))
	for i, s := range swatches {
		colors[i] = s.Color
	}
	return colors
}

// TextColor picks black or white text for a background using perceived
// brightness (ITU-R BT.601 weights). Malformed input gets black text.
func TextColor(hex string) string {
	normalized, err := domain.NormalizeHex(hex)
	if err != nil {
		return textDark
	}
	col, err := colorful.Hex(normalized)
	if err != nil {
		return textDark
	}
	r, g, b := col.RGB255()
	brightness := float64(int(r)*299+int(g)*587+int(b)*114) / 1000
	if brightness > 128 {
		return textDark
	}
	return textLight
}
