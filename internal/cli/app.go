package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emiliopalmerini/chromastudio/internal/adapters/otel"
	"github.com/emiliopalmerini/chromastudio/internal/checker"
	"github.com/emiliopalmerini/chromastudio/internal/infrastructure/config"
	"github.com/emiliopalmerini/chromastudio/internal/ports"
)

const exporterCloseTimeout = 5 * time.Second

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Logger   *slog.Logger
	Exporter ports.MetricsExporter
	Checker  *checker.Service
}

// NewAppContext creates an AppContext from the environment. Logs go to
// stderr. Metrics fall back to a no-op exporter when OTEL is disabled or
// the collector cannot be reached.
func NewAppContext(ctx context.Context, stderr io.Writer) (*AppContext, error) {
	logCfg, err := config.LoadLog()
	if err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}
	logger, err := logCfg.NewLogger(stderr)
	if err != nil {
		return nil, err
	}

	otelCfg, err := otel.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load OTEL config: %w", err)
	}

	var exporter ports.MetricsExporter = otel.NewNoOpExporter()
	if otelCfg.Enabled {
		exp, err := otel.NewExporter(ctx, otelCfg)
		if err != nil {
			logger.Warn("metrics export disabled", "error", err)
		} else {
			logger.Debug("exporting metrics", "endpoint", otelCfg.Endpoint)
			exporter = exp
		}
	}

	return &AppContext{
		Logger:   logger,
		Exporter: exporter,
		Checker:  checker.NewService(exporter, logger),
	}, nil
}

// Close flushes pending metrics.
func (a *AppContext) Close() error {
	if a.Exporter == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), exporterCloseTimeout)
	defer cancel()
	return a.Exporter.Close(ctx)
}
