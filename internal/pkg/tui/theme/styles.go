package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
)

// Styles contains the shared terminal styles
type Styles struct {
	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Layout
	Card lipgloss.Style

	// Score bar
	ProgressActive   lipgloss.Style
	ProgressInactive lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(BrightIndigo),

		Subtitle: lipgloss.NewStyle().
			Foreground(Indigo).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(LightGray),

		Muted: lipgloss.NewStyle().
			Foreground(DimGray),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 1),

		ProgressActive: lipgloss.NewStyle().
			Foreground(Indigo),

		ProgressInactive: lipgloss.NewStyle().
			Foreground(DarkGray),

		Success: lipgloss.NewStyle().
			Foreground(Success),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Error: lipgloss.NewStyle().
			Foreground(Error),

		Info: lipgloss.NewStyle().
			Foreground(Info),
	}
}

// Level returns the style for a conformance level.
func (s *Styles) Level(level string) lipgloss.Style {
	switch level {
	case domain.LevelAAA:
		return s.Success
	case domain.LevelAA:
		return s.Warning
	default:
		return s.Error
	}
}

// Tone returns the style for a score tone.
func (s *Styles) Tone(tone string) lipgloss.Style {
	switch tone {
	case "good":
		return s.Success
	case "fair":
		return s.Warning
	default:
		return s.Error
	}
}

// Recommendation returns the style for a recommendation kind.
func (s *Styles) Recommendation(kind string) lipgloss.Style {
	switch kind {
	case domain.KindSuccess:
		return s.Success
	case domain.KindWarning:
		return s.Warning
	case domain.KindError:
		return s.Error
	default:
		return s.Info
	}
}

// Swatch renders text on a background of the given color.
func Swatch(hex, textColor, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(textColor)).
		Padding(0, 1).
		Render(text)
}
