package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
	"github.com/emiliopalmerini/chromastudio/internal/ports"
)

const (
	serviceName    = "chromastudio"
	serviceVersion = "1.0.0"
)

// Exporter exports evaluation metrics to an OTEL Collector.
type Exporter struct {
	provider        *sdkmetric.MeterProvider
	evaluations     metric.Int64Counter
	pairs           metric.Int64Counter
	overallScore    metric.Int64Histogram
	averageRatio    metric.Float64Histogram
	malformedColors metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter pushing over OTLP/gRPC.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	e, err := NewExporterWithReader(ctx, sdkmetric.NewPeriodicReader(exp))
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(e.provider)
	return e, nil
}

// NewExporterWithReader builds the instruments on top of any metric reader.
func NewExporterWithReader(ctx context.Context, reader sdkmetric.Reader) (*Exporter, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	meter := provider.Meter(serviceName)

	evaluations, err := meter.Int64Counter(
		"chromastudio_evaluations_total",
		metric.WithDescription("Total accessibility evaluations"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating evaluations counter: %w", err)
	}

	pairs, err := meter.Int64Counter(
		"chromastudio_pairs_total",
		metric.WithDescription("Color pairs evaluated, by conformance level"),
		metric.WithUnit("{pair}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating pairs counter: %w", err)
	}

	overallScore, err := meter.Int64Histogram(
		"chromastudio_overall_score",
		metric.WithDescription("Overall accessibility score per evaluation"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating score histogram: %w", err)
	}

	averageRatio, err := meter.Float64Histogram(
		"chromastudio_average_contrast_ratio",
		metric.WithDescription("Mean contrast ratio per evaluation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ratio histogram: %w", err)
	}

	malformedColors, err := meter.Int64Counter(
		"chromastudio_malformed_colors_total",
		metric.WithDescription("Colors with an unparseable hex value"),
		metric.WithUnit("{color}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating malformed counter: %w", err)
	}

	return &Exporter{
		provider:        provider,
		evaluations:     evaluations,
		pairs:           pairs,
		overallScore:    overallScore,
		averageRatio:    averageRatio,
		malformedColors: malformedColors,
	}, nil
}

// ExportEvaluation records the metrics of one evaluation.
func (e *Exporter) ExportEvaluation(ctx context.Context, m *ports.EvaluationMetrics) error {
	source := metric.WithAttributes(attribute.String("source", m.Source))

	e.evaluations.Add(ctx, 1, source)

	levels := []struct {
		level string
		count int
	}{
		{domain.LevelFail, m.FailCount},
		{domain.LevelAA, m.AACount},
		{domain.LevelAAA, m.AAACount},
	}
	for _, l := range levels {
		if l.count == 0 {
			continue
		}
		e.pairs.Add(ctx, int64(l.count), metric.WithAttributes(
			attribute.String("source", m.Source),
			attribute.String("level", l.level),
		))
	}

	// Degenerate selections have no score worth recording.
	if m.PairCount > 0 {
		e.overallScore.Record(ctx, int64(m.OverallScore), source)
		e.averageRatio.Record(ctx, m.AverageRatio, source)
	}

	if m.MalformedCount > 0 {
		e.malformedColors.Add(ctx, int64(m.MalformedCount), source)
	}

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
