package otel

import (
	"context"

	"github.com/emiliopalmerini/chromastudio/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) ExportEvaluation(ctx context.Context, m *ports.EvaluationMetrics) error {
	return nil
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
