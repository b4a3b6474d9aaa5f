package theme

import "github.com/charmbracelet/lipgloss"

// Terminal palette
var (
	// Primary colors
	Indigo       = lipgloss.Color("#6366F1")
	BrightIndigo = lipgloss.Color("#818CF8")

	// Neutrals
	White     = lipgloss.Color("#FFFFFF")
	LightGray = lipgloss.Color("#9CA3AF")
	DimGray   = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")
	Black     = lipgloss.Color("#000000")

	// Semantic colors, shared by conformance levels and score tones
	Success = lipgloss.Color("#22C55E")
	Warning = lipgloss.Color("#F59E0B")
	Error   = lipgloss.Color("#EF4444")
	Info    = lipgloss.Color("#3B82F6")
)
