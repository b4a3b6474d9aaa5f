package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
	"github.com/emiliopalmerini/chromastudio/internal/palette"
)

type paletteCatalogResponse struct {
	Themes   []string                    `json:"themes"`
	Moods    []string                    `json:"moods"`
	Palettes map[string][]palette.Swatch `json:"palettes"`
}

// Evaluation is quadratic in the number of colors, so requests are bounded
// both in bytes and in colors.
const (
	maxEvaluateBody   = 64 << 10
	maxEvaluateColors = 64
)

type evaluateRequest struct {
	Colors []domain.Color `json:"colors"`
}

func (s *Server) handleAPIPalettes(w http.ResponseWriter, r *http.Request) {
	resp := paletteCatalogResponse{
		Palettes: make(map[string][]palette.Swatch),
	}
	for _, t := range palette.Themes() {
		resp.Themes = append(resp.Themes, string(t))
	}
	for _, m := range palette.Moods() {
		resp.Moods = append(resp.Moods, string(m))
	}
	for _, k := range palette.Keys() {
		swatches, err := palette.Generate(k.Theme, k.Mood)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.Palettes[k.String()] = swatches
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAPIPalette(w http.ResponseWriter, r *http.Request) {
	theme, err := palette.ParseTheme(r.PathValue("theme"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	mood, err := palette.ParseMood(r.PathValue("mood"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	swatches, err := palette.Generate(theme, mood)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, palette.ErrUnknownTheme) || errors.Is(err, palette.ErrUnknownMood) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	if f := r.URL.Query().Get("format"); f != "" && f != "json" {
		format, err := palette.ParseFormat(f)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		export, err := palette.Export(palette.Colors(swatches), format)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, export)
		return
	}

	writeJSON(w, http.StatusOK, swatches)
}

func (s *Server) handleAPIEvaluate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEvaluateBody)

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if len(req.Colors) > maxEvaluateColors {
		http.Error(w, fmt.Sprintf("At most %d colors can be evaluated at once, got %d", maxEvaluateColors, len(req.Colors)), http.StatusRequestEntityTooLarge)
		return
	}

	report := s.checker.Check(r.Context(), "api", req.Colors)
	writeJSON(w, http.StatusOK, report)
}
