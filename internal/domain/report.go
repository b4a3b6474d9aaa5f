package domain

import "fmt"

// Recommendation kinds, in the order Evaluate emits them.
const (
	KindWarning = "warning"
	KindSuccess = "success"
	KindError   = "error"
)

// LowAverageContrast is the mean ratio below which the selection as a whole
// is flagged.
const LowAverageContrast = 4.0

// Recommendation is an advisory message derived from a report.
type Recommendation struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

// AccessibilityReport aggregates the pairwise results for a selection.
type AccessibilityReport struct {
	Results         []ContrastResult `json:"results"`
	OverallScore    int              `json:"overallScore"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Counts tallies results per conformance level.
type Counts struct {
	Fail int
	AA   int
	AAA  int
}

// Evaluate scores every unordered pair of colors. Pairs are produced for
// indices i < j in input order. Fewer than two colors yield an empty report.
// Evaluate never mutates its input and keeps no state between calls.
func Evaluate(colors []Color) AccessibilityReport {
	report := AccessibilityReport{
		Results:         []ContrastResult{},
		Recommendations: []Recommendation{},
	}
	n := len(colors)
	if n < 2 {
		return report
	}

	results := make([]ContrastResult, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			results = append(results, NewContrastResult(colors[i], colors[j]))
		}
	}

	report.Results = results
	report.OverallScore = overallScore(results)
	report.Recommendations = recommend(results)
	return report
}

// overallScore is the mean score rounded half up. Integer arithmetic keeps
// ties exact: round(sum/n) == (2*sum + n) / (2*n) for non-negative sums.
func overallScore(results []ContrastResult) int {
	n := len(results)
	if n == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.Score
	}
	return (2*sum + n) / (2 * n)
}

func recommend(results []ContrastResult) []Recommendation {
	recs := []Recommendation{}

	var failing, excellent []string
	for _, r := range results {
		if !r.MeetsAA {
			failing = append(failing, r.Describe())
		}
		if r.MeetsAAA {
			excellent = append(excellent, r.Describe())
		}
	}

	if len(failing) > 0 {
		recs = append(recs, Recommendation{
			Kind:    KindWarning,
			Message: fmt.Sprintf("%d %s WCAG AA standards", len(failing), combinationVerb(len(failing), "fails", "fail")),
			Details: failing,
		})
	}

	if len(excellent) > 0 {
		recs = append(recs, Recommendation{
			Kind:    KindSuccess,
			Message: fmt.Sprintf("%d %s WCAG AAA standards", len(excellent), combinationVerb(len(excellent), "meets", "meet")),
			Details: excellent,
		})
	}

	if len(results) > 0 && averageRatio(results) < LowAverageContrast {
		recs = append(recs, Recommendation{
			Kind:    KindError,
			Message: "Overall contrast is too low for good accessibility",
			Details: []string{
				"Consider using darker or lighter color variations",
				"Test with actual text content",
			},
		})
	}

	return recs
}

func combinationVerb(n int, singular, plural string) string {
	if n == 1 {
		return "color combination " + singular
	}
	return "color combinations " + plural
}

func averageRatio(results []ContrastResult) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += r.Ratio
	}
	return sum / float64(len(results))
}

// AverageRatio is the arithmetic mean of the raw ratios, 0 when empty.
func (r AccessibilityReport) AverageRatio() float64 {
	return averageRatio(r.Results)
}

// Counts returns how many pairs fall in each conformance level.
func (r AccessibilityReport) Counts() Counts {
	var c Counts
	for _, res := range r.Results {
		switch res.Level() {
		case LevelAAA:
			c.AAA++
		case LevelAA:
			c.AA++
		default:
			c.Fail++
		}
	}
	return c
}

// ScoreLabel names an overall score band.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

// ScoreTone buckets a score for badge coloring: "good", "fair" or "poor".
func ScoreTone(score int) string {
	switch {
	case score >= 80:
		return "good"
	case score >= 60:
		return "fair"
	default:
		return "poor"
	}
}

// RatioTone buckets a single contrast ratio for display: "good" from AA,
// "fair" from the large-text minimum, "poor" below it.
func RatioTone(ratio float64) string {
	switch {
	case ratio >= ThresholdAA:
		return "good"
	case ratio >= ThresholdLargeText:
		return "fair"
	default:
		return "poor"
	}
}

// FormatRatio formats a contrast ratio with two decimals.
func FormatRatio(ratio float64) string {
	return fmt.Sprintf("%.2f", ratio)
}
