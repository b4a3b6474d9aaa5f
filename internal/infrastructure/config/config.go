package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Server holds configuration for the web UI.
type Server struct {
	Port            int           `envconfig:"CHROMASTUDIO_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"CHROMASTUDIO_SHUTDOWN_TIMEOUT" default:"5s"`
	MaxWorkspaces   int           `envconfig:"CHROMASTUDIO_MAX_WORKSPACES" default:"10000"`
}

// Log holds logger configuration.
type Log struct {
	Level  string `envconfig:"CHROMASTUDIO_LOG_LEVEL" default:"info"`
	Format string `envconfig:"CHROMASTUDIO_LOG_FORMAT" default:"text"`
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLog loads logger configuration from environment variables.
func LoadLog() (*Log, error) {
	var cfg Log
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewLogger builds a slog.Logger writing to w.
func (c *Log) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: expected text or json", c.Format)
	}
}
