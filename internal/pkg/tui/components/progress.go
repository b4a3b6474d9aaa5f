package components

import (
	"strings"

	"github.com/emiliopalmerini/chromastudio/internal/pkg/tui/theme"
)

// ScoreBar renders a 0-100 score as a horizontal bar
type ScoreBar struct {
	Score  int
	Width  int
	styles *theme.Styles
}

// NewScoreBar creates a new score bar
func NewScoreBar(score, width int) ScoreBar {
	return ScoreBar{
		Score:  score,
		Width:  width,
		styles: theme.Default(),
	}
}

// Filled returns the number of filled cells, rounded half up
func (b ScoreBar) Filled() int {
	score := min(max(b.Score, 0), 100)
	return (2*score*b.Width + 100) / 200
}

// View renders the score bar
func (b ScoreBar) View() string {
	filled := b.Filled()
	var sb strings.Builder
	sb.WriteString(b.styles.ProgressActive.Render(strings.Repeat("█", filled)))
	sb.WriteString(b.styles.ProgressInactive.Render(strings.Repeat("░", b.Width-filled)))
	return sb.String()
}
