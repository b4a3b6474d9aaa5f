package templates

import (
	"fmt"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
)

func formatRatio(r float64) string {
	return domain.FormatRatio(r) + ":1"
}

func formatScore(score int) string {
	return fmt.Sprintf("%d%%", score)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func levelClass(r domain.ContrastResult) string {
	switch r.Level() {
	case domain.LevelAAA:
		return "level-aaa"
	case domain.LevelAA:
		return "level-aa"
	default:
		return "level-fail"
	}
}

func check(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func swatchStyle(bg, fg string) string {
	return fmt.Sprintf("background-color: %s; color: %s", bg, fg)
}
