// Package templates holds the templ components of the web workspace.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import "github.com/emiliopalmerini/chromastudio/internal/domain"

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type SwatchView struct {
	Name        string
	Hex         string
	HSL         string
	OnWhite     float64
	OnWhiteTone string // good, fair or poor
	TextColor   string
	Selected    bool
}

type WorkspaceView struct {
	Themes     []Option
	Moods      []Option
	Theme      string // Label of the generated theme, empty before the first generation
	Mood       string
	Palette    []SwatchView
	ExportPath string // palette API resource, empty before the first generation
	Selection  []domain.Color
	Report     domain.AccessibilityReport
}
