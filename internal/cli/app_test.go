package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/emiliopalmerini/chromastudio/internal/adapters/otel"
	"github.com/emiliopalmerini/chromastudio/internal/ports"
)

func TestAppContextFieldTypes(t *testing.T) {
	// Compile-time verification that AppContext uses port interfaces.
	var a AppContext
	var _ ports.MetricsExporter = a.Exporter //nolint:staticcheck
}

func TestAppContextClose_NilExporter(t *testing.T) {
	a := &AppContext{}
	if err := a.Close(); err != nil {
		t.Errorf("Close() on nil exporter should not error, got: %v", err)
	}
}

func TestNewAppContext_Defaults(t *testing.T) {
	t.Setenv("CHROMASTUDIO_OTEL_ENABLED", "false")

	a, err := NewAppContext(context.Background(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	if _, ok := a.Exporter.(*otel.NoOpExporter); !ok {
		t.Errorf("expected no-op exporter, got %T", a.Exporter)
	}
	if a.Checker == nil || a.Logger == nil {
		t.Error("expected checker and logger to be set")
	}
}

func TestNewAppContext_EnabledWithoutEndpointFallsBack(t *testing.T) {
	t.Setenv("CHROMASTUDIO_OTEL_ENABLED", "true")
	t.Setenv("CHROMASTUDIO_OTEL_ENDPOINT", "")

	var stderr bytes.Buffer
	a, err := NewAppContext(context.Background(), &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer a.Close()

	if _, ok := a.Exporter.(*otel.NoOpExporter); !ok {
		t.Errorf("expected no-op exporter, got %T", a.Exporter)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("metrics export disabled")) {
		t.Errorf("expected a warning, got %q", stderr.String())
	}
}

func TestNewAppContext_BadLogLevel(t *testing.T) {
	t.Setenv("CHROMASTUDIO_LOG_LEVEL", "loud")

	if _, err := NewAppContext(context.Background(), &bytes.Buffer{}); err == nil {
		t.Error("expected error for invalid log level")
	}
}
