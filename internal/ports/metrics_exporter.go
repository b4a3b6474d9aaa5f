package ports

import "context"

// MetricsExporter exports evaluation metrics to an external observability system.
type MetricsExporter interface {
	// ExportEvaluation records one accessibility evaluation.
	ExportEvaluation(ctx context.Context, m *EvaluationMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// EvaluationMetrics summarizes one accessibility evaluation.
type EvaluationMetrics struct {
	Source string // "web", "api" or "cli"

	ColorCount     int
	MalformedCount int

	PairCount    int
	FailCount    int
	AACount      int
	AAACount     int
	OverallScore int
	AverageRatio float64
}
