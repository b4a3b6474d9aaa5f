package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MinContrast and MaxContrast bound every contrast ratio.
const (
	MinContrast = 1.0
	MaxContrast = 21.0
)

// ErrInvalidHex is returned for values that are not #rrggbb hex colors.
var ErrInvalidHex = errors.New("invalid hex color")

// HSL is a display-only hue/saturation/lightness triple.
// Hue is in [0,360), saturation and lightness in [0,100].
type HSL struct {
	H float64
	S float64
	L float64
}

func (h HSL) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{h.H, h.S, h.L})
}

func (h *HSL) UnmarshalJSON(data []byte) error {
	var v [3]float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	h.H, h.S, h.L = v[0], v[1], v[2]
	return nil
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h.H, h.S, h.L)
}

// Color is a named color. Two colors are the same color when their
// normalized hex values match, regardless of name.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
	HSL  *HSL   `json:"hsl,omitempty"`
}

// Key returns the identity used for selection. Malformed hex values fall
// back to the lowercased raw string so they still compare consistently.
func (c Color) Key() string {
	if hex, err := NormalizeHex(c.Hex); err == nil {
		return hex
	}
	return strings.ToLower(strings.TrimSpace(c.Hex))
}

// Validate reports whether the color has a name and a well-formed hex value.
func (c Color) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("color %q: name is required", c.Hex)
	}
	if _, err := NormalizeHex(c.Hex); err != nil {
		return fmt.Errorf("color %q: %w", c.Name, err)
	}
	return nil
}

// Normalized returns a copy with a canonical hex value and an HSL triple
// derived from the hex when none was provided. Malformed colors are
// returned unchanged.
func (c Color) Normalized() Color {
	hex, err := NormalizeHex(c.Hex)
	if err != nil {
		return c
	}
	out := c
	out.Hex = hex
	if out.HSL == nil {
		if hsl, err := HSLFromHex(hex); err == nil {
			out.HSL = &hsl
		}
	}
	return out
}

// NormalizeHex accepts "#rrggbb" or "rrggbb" in any case and returns the
// lowercase "#rrggbb" form.
func NormalizeHex(s string) (string, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	for _, r := range raw {
		if !isHexDigit(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}
	return "#" + strings.ToLower(raw), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func parseHex(s string) (colorful.Color, error) {
	hex, err := NormalizeHex(s)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return c, nil
}

// HSLFromHex derives the display HSL triple for a hex color.
func HSLFromHex(s string) (HSL, error) {
	c, err := parseHex(s)
	if err != nil {
		return HSL{}, err
	}
	h, sat, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSL{H: math.Round(h), S: math.Round(sat * 100), L: math.Round(l * 100)}, nil
}

// linearize converts a normalized sRGB channel to linear light.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of a hex color, in
// [0,1]. Malformed input yields 0 together with an ErrInvalidHex error.
func RelativeLuminance(hex string) (float64, error) {
	c, err := parseHex(hex)
	if err != nil {
		return 0, err
	}
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B), nil
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors, in
// [1,21]. It is symmetric in its arguments.
//
// If either value is not a valid hex color the ratio is MinContrast. Callers
// that need to tell a genuinely low contrast from bad data should check the
// colors with NormalizeHex or Color.Validate first.
func ContrastRatio(hexA, hexB string) float64 {
	l1, err := RelativeLuminance(hexA)
	if err != nil {
		return MinContrast
	}
	l2, err := RelativeLuminance(hexB)
	if err != nil {
		return MinContrast
	}
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
