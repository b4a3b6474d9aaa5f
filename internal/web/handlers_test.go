package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
	"github.com/emiliopalmerini/chromastudio/internal/palette"
)

// generate creates a workspace with the modern/professional palette and
// returns its cookie.
func generate(t *testing.T, s *Server) *http.Cookie {
	t.Helper()
	rec := serve(t, s, postForm("/palette", url.Values{"theme": {"modern"}, "mood": {"professional"}}, nil, false))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	return workspaceCookieFrom(t, rec)
}

func TestGeneratePalette_Redirect(t *testing.T) {
	s, _ := testServer(t)
	cookie := generate(t, s)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	body := serve(t, s, req).Body.String()

	for _, want := range []string{
		"Deep Blue", "#1e3a8a", "Cool White", "hsl(217, 91%, 33%)", "Modern",
		`<span class="contrast tone-good">on white 10.36:1</span>`,
		`class="contrast tone-poor"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestGeneratePalette_HTMXPartial(t *testing.T) {
	s, _ := testServer(t)
	rec := serve(t, s, postForm("/palette", url.Values{"theme": {"warm"}, "mood": {"creative"}}, nil, true))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!doctype html>") {
		t.Error("expected a partial, got a full page")
	}
	if !strings.HasPrefix(body, `<div id="workspace"`) {
		t.Errorf("expected workspace partial, got %.60q", body)
	}
	if !strings.Contains(body, "Sunset Orange") {
		t.Error("expected warm/creative colors in partial")
	}
}

func TestGeneratePalette_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{name: "unknown theme", values: url.Values{"theme": {"retro"}, "mood": {"calm"}}},
		{name: "unknown mood", values: url.Values{"theme": {"cool"}, "mood": {"angry"}}},
		{name: "missing fields", values: url.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := testServer(t)
			rec := serve(t, s, postForm("/palette", tt.values, nil, true))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestGeneratePalette_KeepsSelection(t *testing.T) {
	s, store := testServer(t)
	cookie := generate(t, s)
	serve(t, s, postForm("/selection/toggle", url.Values{"hex": {"#1e3a8a"}}, cookie, true))

	serve(t, s, postForm("/palette", url.Values{"theme": {"cool"}, "mood": {"calm"}}, cookie, true))

	ws, err := store.Get(t.Context(), cookie.Value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Theme != "cool" || ws.Mood != "calm" {
		t.Errorf("expected cool/calm, got %s/%s", ws.Theme, ws.Mood)
	}
	if ws.Selection.Len() != 1 || !ws.IsSelected("#1e3a8a") {
		t.Errorf("expected selection to survive regeneration, got %v", ws.Selection)
	}
}

func TestToggleSelection_Report(t *testing.T) {
	s, _ := testServer(t)
	cookie := generate(t, s)

	first := serve(t, s, postForm("/selection/toggle", url.Values{"hex": {"#1e3a8a"}}, cookie, true))
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	if !strings.Contains(first.Body.String(), "Select at least 2 colors") {
		t.Error("expected empty report with one color selected")
	}

	rec := serve(t, s, postForm("/selection/toggle", url.Values{"hex": {"#F8FAFC"}}, cookie, true))
	body := rec.Body.String()
	for _, want := range []string{
		"1 combination tested",
		"100% - Excellent",
		"9.90:1",
		"1 color combination meets WCAG AAA standards",
		"Deep Blue + Cool White (9.90:1)",
		"level-aaa",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected report to contain %q", want)
		}
	}
	if strings.Contains(body, "rec-warning") || strings.Contains(body, "rec-error") {
		t.Error("expected only a success recommendation")
	}
}

func TestToggleSelection_Deselect(t *testing.T) {
	s, store := testServer(t)
	cookie := generate(t, s)

	serve(t, s, postForm("/selection/toggle", url.Values{"hex": {"#475569"}}, cookie, true))
	serve(t, s, postForm("/selection/toggle", url.Values{"hex": {"#475569"}}, cookie, true))

	ws, _ := store.Get(t.Context(), cookie.Value)
	if ws.Selection.Len() != 0 {
		t.Errorf("expected empty selection, got %v", ws.Selection)
	}
}

func TestToggleSelection_NotInPalette(t *testing.T) {
	s, _ := testServer(t)
	cookie := generate(t, s)

	rec := serve(t, s, postForm("/selection/toggle", url.Values{"hex": {"#123456"}}, cookie, true))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestToggleSelection_Concurrent(t *testing.T) {
	s, store := testServer(t)
	cookie := generate(t, s)
	hexes := []string{"#1e3a8a", "#475569", "#f8fafc", "#3b82f6", "#e2e8f0"}

	var wg sync.WaitGroup
	for _, hex := range hexes {
		wg.Add(1)
		go func(hex string) {
			defer wg.Done()
			req := postForm("/selection/toggle", url.Values{"hex": {hex}}, cookie, true)
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", hex, rec.Code)
			}
		}(hex)
	}
	wg.Wait()

	ws, err := store.Get(t.Context(), cookie.Value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Selection.Len() != len(hexes) {
		t.Errorf("expected %d selected colors, got %v", len(hexes), ws.Selection)
	}
}

func TestSelectionWithoutWorkspace(t *testing.T) {
	s, store := testServer(t)

	toggle := serve(t, s, postForm("/selection/toggle", url.Values{"hex": {"#1e3a8a"}}, nil, true))
	if toggle.Code != http.StatusBadRequest {
		t.Errorf("toggle: expected 400, got %d", toggle.Code)
	}
	clear := serve(t, s, postForm("/selection/clear", nil, nil, true))
	if clear.Code != http.StatusOK {
		t.Errorf("clear: expected 200, got %d", clear.Code)
	}
	if store.Len() != 0 {
		t.Errorf("expected selection changes not to create workspaces, got %d", store.Len())
	}
}

func TestClearSelection(t *testing.T) {
	s, store := testServer(t)
	cookie := generate(t, s)
	serve(t, s, postForm("/selection/toggle", url.Values{"hex": {"#1e3a8a"}}, cookie, true))
	serve(t, s, postForm("/selection/toggle", url.Values{"hex": {"#3b82f6"}}, cookie, true))

	rec := serve(t, s, postForm("/selection/clear", nil, cookie, false))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}

	ws, _ := store.Get(t.Context(), cookie.Value)
	if ws.Selection.Len() != 0 {
		t.Errorf("expected empty selection, got %v", ws.Selection)
	}
	if len(ws.Palette) != 5 {
		t.Errorf("expected palette to be kept, got %d colors", len(ws.Palette))
	}
}

func TestAPIPalettes(t *testing.T) {
	s, _ := testServer(t)
	rec := serve(t, s, httptest.NewRequest(http.MethodGet, "/api/palettes", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var resp paletteCatalogResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Themes) != 3 || len(resp.Moods) != 3 {
		t.Errorf("expected 3 themes and 3 moods, got %v %v", resp.Themes, resp.Moods)
	}
	if len(resp.Palettes) != 9 {
		t.Fatalf("expected 9 palettes, got %d", len(resp.Palettes))
	}
	for key, swatches := range resp.Palettes {
		if len(swatches) != 5 {
			t.Errorf("%s: expected 5 colors, got %d", key, len(swatches))
		}
	}
}

func TestAPIPalette(t *testing.T) {
	s, _ := testServer(t)
	rec := serve(t, s, httptest.NewRequest(http.MethodGet, "/api/palettes/modern/professional", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var swatches []palette.Swatch
	if err := json.NewDecoder(rec.Body).Decode(&swatches); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(swatches) != 5 {
		t.Fatalf("expected 5 swatches, got %d", len(swatches))
	}
	if swatches[0].Name != "Deep Blue" || swatches[0].TextColor != "#ffffff" {
		t.Errorf("unexpected first swatch: %+v", swatches[0])
	}
	if swatches[0].OnWhite < 10.35 || swatches[0].OnWhite > 10.37 {
		t.Errorf("expected Deep Blue on white near 10.36, got %f", swatches[0].OnWhite)
	}
}

func TestAPIPalette_Export(t *testing.T) {
	tests := []struct {
		query string
		code  int
		want  string
	}{
		{query: "?format=hex", code: http.StatusOK, want: "#1e3a8a\n#475569\n#f8fafc\n#3b82f6\n#e2e8f0\n"},
		{query: "?format=css", code: http.StatusOK, want: "--deep-blue: #1e3a8a;\n--slate-gray: #475569;\n--cool-white: #f8fafc;\n--accent-blue: #3b82f6;\n--light-gray: #e2e8f0;\n"},
		{query: "?format=toml", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			s, _ := testServer(t)
			rec := serve(t, s, httptest.NewRequest(http.MethodGet, "/api/palettes/modern/professional"+tt.query, nil))
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			if tt.want == "" {
				return
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
				t.Errorf("expected text/plain, got %s", ct)
			}
			if got := rec.Body.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAPIPalette_Unknown(t *testing.T) {
	s, _ := testServer(t)
	for _, path := range []string{"/api/palettes/retro/calm", "/api/palettes/warm/angry"} {
		rec := serve(t, s, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", path, rec.Code)
		}
	}
}

func TestAPIEvaluate(t *testing.T) {
	s, _ := testServer(t)
	body := `{"colors":[
		{"name":"Black","hex":"#000000"},
		{"name":"White","hex":"#ffffff"},
		{"name":"Gray","hex":"#808080"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(body))
	rec := serve(t, s, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var report domain.AccessibilityReport
	if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	if report.OverallScore != 67 {
		t.Errorf("expected score 67, got %d", report.OverallScore)
	}
	if len(report.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(report.Recommendations))
	}
	if report.Recommendations[0].Kind != domain.KindWarning || report.Recommendations[1].Kind != domain.KindSuccess {
		t.Errorf("unexpected recommendation order: %+v", report.Recommendations)
	}
}

func TestAPIEvaluate_Empty(t *testing.T) {
	s, _ := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(`{"colors":[]}`))
	rec := serve(t, s, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	want := `{"results":[],"overallScore":0,"recommendations":[]}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestAPIEvaluate_BadBody(t *testing.T) {
	s, _ := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(`{"colors":`))
	rec := serve(t, s, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func evaluateBody(n int) string {
	colors := make([]domain.Color, n)
	for i := range colors {
		colors[i] = domain.Color{Name: fmt.Sprintf("C%d", i), Hex: fmt.Sprintf("#%06x", i*997)}
	}
	b, _ := json.Marshal(evaluateRequest{Colors: colors})
	return string(b)
}

func TestAPIEvaluate_Limits(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "at color cap", body: evaluateBody(maxEvaluateColors), code: http.StatusOK},
		{name: "over color cap", body: evaluateBody(maxEvaluateColors + 1), code: http.StatusRequestEntityTooLarge},
		{name: "oversized body", body: `{"colors":[],"pad":"` + strings.Repeat("x", maxEvaluateBody) + `"}`, code: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := testServer(t)
			req := httptest.NewRequest(http.MethodPost, "/api/evaluate", strings.NewReader(tt.body))
			rec := serve(t, s, req)
			if rec.Code != tt.code {
				t.Errorf("expected %d, got %d: %s", tt.code, rec.Code, rec.Body.String())
			}
		})
	}
}
