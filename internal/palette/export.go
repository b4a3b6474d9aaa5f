package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
)

// Format is a plain-text palette export.
type Format string

const (
	FormatHex Format = "hex"
	FormatCSS Format = "css"
)

// ErrUnknownFormat is returned for format names other than hex and css.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat matches s against the export formats, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHex, FormatCSS:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (expected hex or css)", ErrUnknownFormat, s)
}

// Export renders colors in the given format, one color per line.
func Export(colors []domain.Color, f Format) (string, error) {
	switch f {
	case FormatHex:
		return HexList(colors), nil
	case FormatCSS:
		return CSSVariables(colors), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// HexList joins the hex values with newlines.
func HexList(colors []domain.Color) string {
	lines := make([]string, len(colors))
	for i, c := range colors {
		lines[i] = c.Hex
	}
	return strings.Join(lines, "\n")
}

// CSSVariables renders one custom property per color, named after the
// color: "Deep Blue" becomes "--deep-blue: #1e3a8a;".
func CSSVariables(colors []domain.Color) string {
	lines := make([]string, len(colors))
	for i, c := range colors {
		lines[i] = fmt.Sprintf("--%s: %s;", cssName(c.Name), c.Hex)
	}
	return strings.Join(lines, "\n")
}

func cssName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
