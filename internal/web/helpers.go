package web

import (
	"encoding/json"
	"net/http"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
	"github.com/emiliopalmerini/chromastudio/internal/palette"
	"github.com/emiliopalmerini/chromastudio/internal/web/templates"
)

// swatchViews annotates the workspace palette for display and marks the
// selected colors.
func swatchViews(ws *domain.Workspace) []templates.SwatchView {
	swatches := palette.Annotate(ws.Palette)
	views := make([]templates.SwatchView, 0, len(swatches))
	for _, sw := range swatches {
		v := templates.SwatchView{
			Name:        sw.Name,
			Hex:         sw.Hex,
			OnWhite:     sw.OnWhite,
			OnWhiteTone: domain.RatioTone(sw.OnWhite),
			TextColor:   sw.TextColor,
			Selected:    ws.IsSelected(sw.Hex),
		}
		if sw.HSL != nil {
			v.HSL = sw.HSL.String()
		}
		views = append(views, v)
	}
	return views
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
