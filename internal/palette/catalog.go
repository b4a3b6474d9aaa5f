// Package palette holds the fixed theme/mood color catalog.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
)

// Theme is the design direction of a palette.
type Theme string

const (
	ThemeModern Theme = "modern"
	ThemeWarm   Theme = "warm"
	ThemeCool   Theme = "cool"
)

// Mood is the feel of a palette within a theme.
type Mood string

const (
	MoodProfessional Mood = "professional"
	MoodCreative     Mood = "creative"
	MoodCalm         Mood = "calm"
)

// Lookup and the Parse functions wrap these for names outside the catalog.
var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrUnknownMood  = errors.New("unknown mood")
)

// Key identifies one catalog entry.
type Key struct {
	Theme Theme
	Mood  Mood
}

// String returns "theme/mood".
func (k Key) String() string {
	return string(k.Theme) + "/" + string(k.Mood)
}

var (
	themes = []Theme{ThemeModern, ThemeWarm, ThemeCool}
	moods  = []Mood{MoodProfessional, MoodCreative, MoodCalm}
)

// Themes lists the available themes in display order.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// Moods lists the available moods in display order.
func Moods() []Mood {
	return append([]Mood(nil), moods...)
}

// Label returns the capitalized display name.
func (t Theme) Label() string { return capitalize(string(t)) }

// Label returns the capitalized display name.
func (m Mood) Label() string { return capitalize(string(m)) }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseTheme matches s against the known themes, ignoring case and
// surrounding space.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range themes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// ParseMood is ParseTheme for moods.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range moods {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMood, s)
}

func c(name, hex string, h, s, l float64) domain.Color {
	return domain.Color{Name: name, Hex: hex, HSL: &domain.HSL{H: h, S: s, L: l}}
}

var catalog = map[Key][]domain.Color{
	{ThemeModern, MoodProfessional}: {
		c("Deep Blue", "#1e3a8a", 217, 91, 33),
		c("Slate Gray", "#475569", 215, 25, 27),
		c("Cool White", "#f8fafc", 210, 40, 98),
		c("Accent Blue", "#3b82f6", 217, 91, 60),
		c("Light Gray", "#e2e8f0", 214, 32, 91),
	},
	{ThemeModern, MoodCreative}: {
		c("Vibrant Purple", "#7c3aed", 262, 83, 58),
		c("Electric Blue", "#06b6d4", 187, 95, 43),
		c("Neon Green", "#10b981", 160, 84, 39),
		c("Hot Pink", "#ec4899", 330, 81, 60),
		c("Sunny Yellow", "#f59e0b", 43, 96, 53),
	},
	{ThemeModern, MoodCalm}: {
		c("Sage Green", "#6b7280", 220, 9, 46),
		c("Soft Blue", "#93c5fd", 217, 91, 68),
		c("Warm Beige", "#f3f4f6", 220, 14, 96),
		c("Muted Teal", "#5eead4", 168, 76, 78),
		c("Dusty Rose", "#fecaca", 0, 100, 88),
	},
	{ThemeWarm, MoodProfessional}: {
		c("Rich Brown", "#92400e", 25, 83, 31),
		c("Warm Gray", "#6b7280", 220, 9, 46),
		c("Cream", "#fef3c7", 48, 96, 89),
		c("Terracotta", "#dc2626", 0, 84, 60),
		c("Golden", "#d97706", 32, 95, 44),
	},
	{ThemeWarm, MoodCreative}: {
		c("Sunset Orange", "#ea580c", 25, 90, 48),
		c("Golden Yellow", "#fbbf24", 43, 96, 56),
		c("Coral Pink", "#fb7185", 351, 96, 70),
		c("Warm Red", "#dc2626", 0, 84, 60),
		c("Peach", "#fed7aa", 39, 100, 83),
	},
	{ThemeWarm, MoodCalm}: {
		c("Soft Peach", "#fed7aa", 39, 100, 83),
		c("Warm Beige", "#f5f5f4", 60, 9, 96),
		c("Muted Orange", "#fb923c", 24, 94, 58),
		c("Dusty Pink", "#fecaca", 0, 100, 88),
		c("Cream", "#fef3c7", 48, 96, 89),
	},
	{ThemeCool, MoodProfessional}: {
		c("Navy Blue", "#1e40af", 221, 83, 53),
		c("Cool Gray", "#6b7280", 220, 9, 46),
		c("Ice White", "#f8fafc", 210, 40, 98),
		c("Steel Blue", "#64748b", 217, 33, 49),
		c("Light Blue", "#dbeafe", 214, 100, 94),
	},
	{ThemeCool, MoodCreative}: {
		c("Electric Blue", "#06b6d4", 187, 95, 43),
		c("Vibrant Cyan", "#0891b2", 187, 95, 37),
		c("Neon Green", "#10b981", 160, 84, 39),
		c("Purple", "#8b5cf6", 262, 83, 58),
		c("Teal", "#14b8a6", 173, 80, 36),
	},
	{ThemeCool, MoodCalm}: {
		c("Soft Blue", "#93c5fd", 217, 91, 68),
		c("Mint Green", "#a7f3d0", 160, 84, 39),
		c("Lavender", "#c4b5fd", 262, 83, 58),
		c("Sky Blue", "#bae6fd", 199, 98, 66),
		c("Cool Gray", "#e5e7eb", 220, 13, 91),
	},
}

// Lookup returns a copy of the colors for a theme and mood.
func Lookup(theme Theme, mood Mood) ([]domain.Color, error) {
	t, err := ParseTheme(string(theme))
	if err != nil {
		return nil, err
	}
	m, err := ParseMood(string(mood))
	if err != nil {
		return nil, err
	}
	colors := catalog[Key{t, m}]
	out := make([]domain.Color, len(colors))
	for i, col := range colors {
		out[i] = col
		if col.HSL != nil {
			hsl := *col.HSL
			out[i].HSL = &hsl
		}
	}
	return out, nil
}

// Keys lists every catalog entry, themes outer and moods inner.
func Keys() []Key {
	keys := make([]Key, 0, len(themes)*len(moods))
	for _, t := range themes {
		for _, m := range moods {
			keys = append(keys, Key{t, m})
		}
	}
	return keys
}
