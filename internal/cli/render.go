package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
	"github.com/emiliopalmerini/chromastudio/internal/palette"
	"github.com/emiliopalmerini/chromastudio/internal/pkg/tui/components"
	"github.com/emiliopalmerini/chromastudio/internal/pkg/tui/theme"
)

const scoreBarWidth = 20

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderReport prints a report the way the web checker panel lays it out.
func renderReport(w io.Writer, report domain.AccessibilityReport, colorCount int) {
	s := theme.Default()

	fmt.Fprintln(w, s.Title.Render("Accessibility Report"))
	if colorCount < 2 {
		fmt.Fprintln(w, s.Muted.Render("Select at least 2 colors to test accessibility."))
		return
	}
	fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("%d colors, %s tested", colorCount, pluralize(len(report.Results), "combination"))))
	fmt.Fprintln(w)

	tone := s.Tone(domain.ScoreTone(report.OverallScore))
	fmt.Fprintf(w, "Score  %s  %s\n",
		tone.Render(fmt.Sprintf("%d%% %s", report.OverallScore, domain.ScoreLabel(report.OverallScore))),
		components.NewScoreBar(report.OverallScore, scoreBarWidth).View(),
	)
	fmt.Fprintln(w)

	width := 0
	for _, r := range report.Results {
		width = max(width, len(pairLabel(r)))
	}
	for _, r := range report.Results {
		level := s.Level(r.Level())
		fmt.Fprintf(w, "  %s  %-*s  %8s:1  AA %s  AAA %s\n",
			level.Render(fmt.Sprintf("%-4s", r.Level())),
			width, pairLabel(r),
			domain.FormatRatio(r.Ratio),
			mark(r.MeetsAA), mark(r.MeetsAAA),
		)
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Subtitle.Render("Recommendations"))
		for _, rec := range report.Recommendations {
			fmt.Fprintln(w, "  "+s.Recommendation(rec.Kind).Render(rec.Message))
			for _, d := range rec.Details {
				fmt.Fprintln(w, "    - "+s.Body.Render(d))
			}
		}
	}
}

// renderSwatches prints one line per swatch with a colored chip.
func renderSwatches(w io.Writer, swatches []palette.Swatch) {
	s := theme.Default()

	width := 0
	for _, sw := range swatches {
		width = max(width, len(sw.Name))
	}
	for _, sw := range swatches {
		hsl := ""
		if sw.HSL != nil {
			hsl = sw.HSL.String()
		}
		fmt.Fprintf(w, "  %s  %-*s  %s  %s\n",
			theme.Swatch(sw.Hex, sw.TextColor, sw.Hex),
			width, sw.Name,
			s.Muted.Render(fmt.Sprintf("%-20s", hsl)),
			s.Tone(domain.RatioTone(sw.OnWhite)).Render("on white "+domain.FormatRatio(sw.OnWhite)+":1"),
		)
	}
}

const formatText = "text"

// parseOutputFormat accepts "text" or a palette export format. It returns
// "" for text.
func parseOutputFormat(s string, asJSON bool) (palette.Format, error) {
	if strings.EqualFold(strings.TrimSpace(s), formatText) {
		return "", nil
	}
	f, err := palette.ParseFormat(s)
	if err != nil {
		return "", err
	}
	if asJSON {
		return "", fmt.Errorf("--format %s cannot be combined with --json", f)
	}
	return f, nil
}

func pairLabel(r domain.ContrastResult) string {
	return r.ColorA.Name + " + " + r.ColorB.Name
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// joinKeys lists catalog keys for error messages.
func joinKeys[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
