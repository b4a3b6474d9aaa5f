package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
	"github.com/emiliopalmerini/chromastudio/internal/palette"
	"github.com/emiliopalmerini/chromastudio/internal/ports"
	"github.com/emiliopalmerini/chromastudio/internal/shared/middleware"
	"github.com/emiliopalmerini/chromastudio/internal/web/templates"
)

const workspaceCookie = "chromastudio_workspace"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ws, err := s.currentWorkspace(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, r, templates.Page(s.buildView(r.Context(), ws)))
}

func (s *Server) handleGeneratePalette(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	theme, err := palette.ParseTheme(r.FormValue("theme"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	mood, err := palette.ParseMood(r.FormValue("mood"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	colors, err := palette.Lookup(theme, mood)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.updateWorkspace(w, r, true, func(ws *domain.Workspace) error {
		ws.Theme = string(theme)
		ws.Mood = string(mood)
		ws.Palette = colors
		return nil
	})
}

func (s *Server) handleToggleSelection(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	hex := r.FormValue("hex")

	s.updateWorkspace(w, r, false, func(ws *domain.Workspace) error {
		if !ws.SelectFromPalette(hex) {
			return errColorNotInPalette
		}
		return nil
	})
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	s.updateWorkspace(w, r, false, func(ws *domain.Workspace) error {
		ws.Selection = nil
		return nil
	})
}

var errColorNotInPalette = errors.New("color is not part of the current palette")

// updateWorkspace applies fn to the caller's workspace and responds with the
// refreshed workspace partial or a redirect. A visitor without a workspace
// only gets one stored when create is set; otherwise fn runs against an
// empty workspace that is rendered and dropped.
func (s *Server) updateWorkspace(w http.ResponseWriter, r *http.Request, create bool, fn func(*domain.Workspace) error) {
	ctx := r.Context()
	id, err := s.workspaceID(w, r, create)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var ws *domain.Workspace
	if id == "" {
		ws = &domain.Workspace{}
		err = fn(ws)
	} else {
		ws, err = s.workspaces.Update(ctx, id, fn)
	}
	switch {
	case errors.Is(err, errColorNotInPalette):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		s.logger.Error("failed to update workspace", "workspace", id, "error", err)
		http.Error(w, "Failed to update workspace", http.StatusInternalServerError)
		return
	}

	if !middleware.IsHTMX(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, r, templates.Workspace(s.buildView(ctx, ws)))
}

// currentWorkspace returns the workspace named by the request cookie, or an
// empty unsaved one for visitors without a live workspace.
func (s *Server) currentWorkspace(r *http.Request) (*domain.Workspace, error) {
	c, err := r.Cookie(workspaceCookie)
	if err != nil {
		return &domain.Workspace{}, nil
	}
	ws, err := s.workspaces.Get(r.Context(), c.Value)
	if errors.Is(err, ports.ErrWorkspaceNotFound) {
		return &domain.Workspace{}, nil
	}
	return ws, err
}

// workspaceID returns the id of the caller's live workspace. When there is
// none it creates one and sets the cookie if create is true, and returns ""
// otherwise.
func (s *Server) workspaceID(w http.ResponseWriter, r *http.Request, create bool) (string, error) {
	ctx := r.Context()
	if c, err := r.Cookie(workspaceCookie); err == nil {
		_, err := s.workspaces.Get(ctx, c.Value)
		if err == nil {
			return c.Value, nil
		}
		if !errors.Is(err, ports.ErrWorkspaceNotFound) {
			return "", err
		}
	}
	if !create {
		return "", nil
	}

	ws, err := s.workspaces.Create(ctx)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     workspaceCookie,
		Value:    ws.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return ws.ID, nil
}

func (s *Server) buildView(ctx context.Context, ws *domain.Workspace) templates.WorkspaceView {
	view := templates.WorkspaceView{
		Selection: ws.Selection.Colors(),
	}

	current := palette.Theme(ws.Theme)
	if current == "" {
		current = palette.Themes()[0]
	}
	for _, t := range palette.Themes() {
		view.Themes = append(view.Themes, templates.Option{Value: string(t), Label: t.Label(), Selected: t == current})
	}
	currentMood := palette.Mood(ws.Mood)
	if currentMood == "" {
		currentMood = palette.Moods()[0]
	}
	for _, m := range palette.Moods() {
		view.Moods = append(view.Moods, templates.Option{Value: string(m), Label: m.Label(), Selected: m == currentMood})
	}

	if ws.Theme != "" {
		view.Theme = palette.Theme(ws.Theme).Label()
		view.Mood = palette.Mood(ws.Mood).Label()
		view.ExportPath = "/api/palettes/" + ws.Theme + "/" + ws.Mood
	}

	view.Palette = swatchViews(ws)

	if len(view.Selection) >= 2 {
		view.Report = s.checker.Check(ctx, "web", view.Selection)
	} else {
		view.Report = domain.Evaluate(nil)
	}
	return view
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		s.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}
