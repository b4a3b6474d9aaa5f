package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/chromastudio/internal/adapters/memory"
	"github.com/emiliopalmerini/chromastudio/internal/adapters/otel"
	"github.com/emiliopalmerini/chromastudio/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestWorkspaceRepositoryConformance(t *testing.T) {
	var _ ports.WorkspaceRepository = (*memory.WorkspaceStore)(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
}

func TestNoOpMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}
