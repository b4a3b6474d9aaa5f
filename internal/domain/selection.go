package domain

// Selection is an ordered set of colors keyed by hex value. Operations
// return a new Selection and leave the receiver untouched.
type Selection []Color

// Contains reports whether a color with the given hex is selected.
func (s Selection) Contains(hex string) bool {
	return s.index(Color{Hex: hex}.Key()) >= 0
}

// Toggle removes c if a color with the same hex is selected, otherwise
// appends it.
func (s Selection) Toggle(c Color) Selection {
	key := c.Key()
	if i := s.index(key); i >= 0 {
		out := make(Selection, 0, len(s)-1)
		out = append(out, s[:i]...)
		return append(out, s[i+1:]...)
	}
	out := make(Selection, 0, len(s)+1)
	out = append(out, s...)
	return append(out, c)
}

// Colors returns a copy of the selected colors in selection order.
func (s Selection) Colors() []Color {
	out := make([]Color, len(s))
	copy(out, s)
	return out
}

// Len returns the number of selected colors.
func (s Selection) Len() int {
	return len(s)
}

func (s Selection) index(key string) int {
	for i, c := range s {
		if c.Key() == key {
			return i
		}
	}
	return -1
}
