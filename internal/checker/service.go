package checker

import (
	"context"
	"log/slog"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
	"github.com/emiliopalmerini/chromastudio/internal/ports"
)

// Service runs accessibility evaluations and reports on them.
type Service struct {
	exporter ports.MetricsExporter
	logger   *slog.Logger
}

// NewService creates a new checker service
func NewService(exporter ports.MetricsExporter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		exporter: exporter,
		logger:   logger,
	}
}

// Check evaluates the colors. Malformed colors are logged and still scored
// at the minimum contrast; exporter failures never fail the check.
func (s *Service) Check(ctx context.Context, source string, colors []domain.Color) domain.AccessibilityReport {
	malformed := 0
	for _, c := range colors {
		if err := c.Validate(); err != nil {
			malformed++
			s.logger.Warn("malformed color in selection",
				"source", source,
				"name", c.Name,
				"hex", c.Hex,
				"error", err,
			)
		}
	}

	report := domain.Evaluate(colors)
	counts := report.Counts()

	s.logger.Debug("evaluated selection",
		"source", source,
		"colors", len(colors),
		"pairs", len(report.Results),
		"score", report.OverallScore,
	)

	if s.exporter != nil {
		m := &ports.EvaluationMetrics{
			Source:         source,
			ColorCount:     len(colors),
			MalformedCount: malformed,
			PairCount:      len(report.Results),
			FailCount:      counts.Fail,
			AACount:        counts.AA,
			AAACount:       counts.AAA,
			OverallScore:   report.OverallScore,
			AverageRatio:   report.AverageRatio(),
		}
		if err := s.exporter.ExportEvaluation(ctx, m); err != nil {
			s.logger.Error("failed to export evaluation metrics", "error", err)
		}
	}

	return report
}
