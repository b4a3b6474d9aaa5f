package domain

// Workspace is the palette and selection of one browser session.
type Workspace struct {
	ID        string
	Theme     string
	Mood      string
	Palette   []Color
	Selection Selection
}

// Clone returns a deep copy so callers never share slices with a store.
func (w *Workspace) Clone() *Workspace {
	if w == nil {
		return nil
	}
	out := *w
	out.Palette = append([]Color(nil), w.Palette...)
	out.Selection = append(Selection(nil), w.Selection...)
	return &out
}

// SelectFromPalette toggles the palette color with the given hex. It
// reports false when the hex is not part of the current palette.
func (w *Workspace) SelectFromPalette(hex string) bool {
	key := Color{Hex: hex}.Key()
	for _, c := range w.Palette {
		if c.Key() == key {
			w.Selection = w.Selection.Toggle(c)
			return true
		}
	}
	return false
}

// IsSelected reports whether a palette color is currently selected.
func (w *Workspace) IsSelected(hex string) bool {
	return w.Selection.Contains(hex)
}
