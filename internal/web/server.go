package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/emiliopalmerini/chromastudio/internal/checker"
	"github.com/emiliopalmerini/chromastudio/internal/ports"
	"github.com/emiliopalmerini/chromastudio/internal/shared/middleware"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	router          *http.ServeMux
	port            int
	shutdownTimeout time.Duration
	logger          *slog.Logger
	checker         *checker.Service
	workspaces      ports.WorkspaceRepository
}

func NewServer(
	port int,
	svc *checker.Service,
	workspaces ports.WorkspaceRepository,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		router:          http.NewServeMux(),
		port:            port,
		shutdownTimeout: 5 * time.Second,
		logger:          logger,
		checker:         svc,
		workspaces:      workspaces,
	}
	s.setupRoutes()
	return s
}

// WithShutdownTimeout sets how long Start waits for in-flight requests.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	if d > 0 {
		s.shutdownTimeout = d
	}
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("POST /palette", s.handleGeneratePalette)
	s.router.HandleFunc("POST /selection/toggle", s.handleToggleSelection)
	s.router.HandleFunc("POST /selection/clear", s.handleClearSelection)

	// JSON API
	s.router.HandleFunc("GET /api/palettes", s.handleAPIPalettes)
	s.router.HandleFunc("GET /api/palettes/{theme}/{mood}", s.handleAPIPalette)
	s.router.HandleFunc("POST /api/evaluate", s.handleAPIEvaluate)
}

// Handler returns the router wrapped in the request middleware.
func (s *Server) Handler() http.Handler {
	return s.logRequests(middleware.HTMX(s.router))
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", "url", fmt.Sprintf("http://localhost:%d", s.port))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil // Graceful shutdown
	}
	return err
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"htmx", r.Header.Get("HX-Request") == "true",
			"duration", time.Since(start),
		)
	})
}
