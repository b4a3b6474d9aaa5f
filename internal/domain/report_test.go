package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	black = Color{Name: "Black", Hex: "#000000"}
	white = Color{Name: "White", Hex: "#ffffff"}
	gray  = Color{Name: "Gray", Hex: "#808080"}
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		ratio     float64
		wantAA    bool
		wantAAA   bool
		wantScore int
	}{
		{name: "minimum", ratio: 1.0, wantScore: ScoreFail},
		{name: "just below AA", ratio: 4.4999, wantScore: ScoreFail},
		{name: "exactly AA", ratio: 4.5, wantAA: true, wantScore: ScoreAA},
		{name: "between tiers", ratio: 5.5, wantAA: true, wantScore: ScoreAA},
		{name: "just below AAA", ratio: 6.9999, wantAA: true, wantScore: ScoreAA},
		{name: "exactly AAA", ratio: 7.0, wantAA: true, wantAAA: true, wantScore: ScoreAAA},
		{name: "maximum", ratio: 21.0, wantAA: true, wantAAA: true, wantScore: ScoreAAA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aa, aaa, score := Classify(tt.ratio)
			if aa != tt.wantAA || aaa != tt.wantAAA || score != tt.wantScore {
				t.Errorf("Classify(%v) = (%v, %v, %d), want (%v, %v, %d)",
					tt.ratio, aa, aaa, score, tt.wantAA, tt.wantAAA, tt.wantScore)
			}
		})
	}
}

func TestEvaluate_DegenerateInputs(t *testing.T) {
	for _, colors := range [][]Color{nil, {}, {black}} {
		report := Evaluate(colors)
		if len(report.Results) != 0 || report.OverallScore != 0 || len(report.Recommendations) != 0 {
			t.Errorf("Evaluate(%v) = %+v, expected empty report", colors, report)
		}
		if report.Results == nil || report.Recommendations == nil {
			t.Error("expected non-nil empty slices")
		}
	}
}

func TestEvaluate_EmptyReportJSON(t *testing.T) {
	data, err := json.Marshal(Evaluate(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	expected := `{"results":[],"overallScore":0,"recommendations":[]}`
	if string(data) != expected {
		t.Errorf("expected %s, got %s", expected, data)
	}
}

func TestEvaluate_PairCount(t *testing.T) {
	palette := []Color{
		black, white, gray,
		{Name: "Deep Blue", Hex: "#1e3a8a"},
		{Name: "Cool White", Hex: "#f8fafc"},
		{Name: "Hot Pink", Hex: "#ec4899"},
		{Name: "Cream", Hex: "#fef3c7"},
	}

	for n := 0; n <= len(palette); n++ {
		report := Evaluate(palette[:n])
		want := n * (n - 1) / 2
		if len(report.Results) != want {
			t.Errorf("n=%d: expected %d results, got %d", n, want, len(report.Results))
		}
	}
}

func TestEvaluate_PairOrder(t *testing.T) {
	colors := []Color{black, white, gray}
	report := Evaluate(colors)

	expected := [][2]string{{"Black", "White"}, {"Black", "Gray"}, {"White", "Gray"}}
	for i, r := range report.Results {
		if r.ColorA.Name != expected[i][0] || r.ColorB.Name != expected[i][1] {
			t.Errorf("result %d: expected %s + %s, got %s + %s",
				i, expected[i][0], expected[i][1], r.ColorA.Name, r.ColorB.Name)
		}
	}
}

func TestEvaluate_TierInvariants(t *testing.T) {
	colors := []Color{
		black, white, gray,
		{Name: "Deep Blue", Hex: "#1e3a8a"},
		{Name: "Sunny Yellow", Hex: "#f59e0b"},
		{Name: "Broken", Hex: "#xyz"},
	}

	for _, r := range Evaluate(colors).Results {
		if r.MeetsAAA && !r.MeetsAA {
			t.Errorf("%s: AAA without AA", r.Describe())
		}
		switch r.Score {
		case ScoreFail:
			if r.MeetsAA {
				t.Errorf("%s: score 30 but meets AA", r.Describe())
			}
		case ScoreAA:
			if !r.MeetsAA || r.MeetsAAA {
				t.Errorf("%s: score 70 with wrong flags", r.Describe())
			}
		case ScoreAAA:
			if !r.MeetsAAA {
				t.Errorf("%s: score 100 without AAA", r.Describe())
			}
		default:
			t.Errorf("%s: unexpected score %d", r.Describe(), r.Score)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	colors := []Color{
		{Name: "Deep Blue", Hex: "#1e3a8a"},
		{Name: "Slate Gray", Hex: "#475569"},
		{Name: "Cool White", Hex: "#f8fafc"},
		{Name: "Accent Blue", Hex: "#3b82f6"},
		{Name: "Light Gray", Hex: "#e2e8f0"},
	}

	first := Evaluate(colors)
	second := Evaluate(colors)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Evaluate is not idempotent (-first +second):\n%s", diff)
	}
}

func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	colors := []Color{{Name: "Upper", Hex: "#FFFFFF"}, black}
	before := append([]Color(nil), colors...)
	_ = Evaluate(colors)
	if diff := cmp.Diff(before, colors); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestEvaluate_DeepBlueOnCoolWhite(t *testing.T) {
	report := Evaluate([]Color{
		{Name: "Deep Blue", Hex: "#1e3a8a"},
		{Name: "Cool White", Hex: "#f8fafc"},
	})

	if len(report.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(report.Results))
	}
	r := report.Results[0]
	if !r.MeetsAAA || !r.MeetsAA || r.Score != ScoreAAA {
		t.Errorf("expected AAA pair, got %+v", r)
	}
	if report.OverallScore != 100 {
		t.Errorf("expected overall score 100, got %d", report.OverallScore)
	}

	expected := []Recommendation{{
		Kind:    KindSuccess,
		Message: "1 color combination meets WCAG AAA standards",
		Details: []string{"Deep Blue + Cool White (9.90:1)"},
	}}
	if diff := cmp.Diff(expected, report.Recommendations); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_GrayOnGray(t *testing.T) {
	report := Evaluate([]Color{
		{Name: "A", Hex: "#777777"},
		{Name: "B", Hex: "#888888"},
	})

	if len(report.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(report.Results))
	}
	r := report.Results[0]
	if r.MeetsAA || r.MeetsAAA || r.Score != ScoreFail {
		t.Errorf("expected failing pair, got %+v", r)
	}
	if r.Ratio > 1.5 {
		t.Errorf("expected ratio close to 1, got %f", r.Ratio)
	}

	expected := []Recommendation{
		{
			Kind:    KindWarning,
			Message: "1 color combination fails WCAG AA standards",
			Details: []string{"A + B (1.26:1)"},
		},
		{
			Kind:    KindError,
			Message: "Overall contrast is too low for good accessibility",
			Details: []string{
				"Consider using darker or lighter color variations",
				"Test with actual text content",
			},
		},
	}
	if diff := cmp.Diff(expected, report.Recommendations); diff != "" {
		t.Errorf("recommendations mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_MixedTiers(t *testing.T) {
	// Black/White is AAA, Black/Gray is AA only, White/Gray fails.
	report := Evaluate([]Color{black, white, gray})

	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	scores := []int{report.Results[0].Score, report.Results[1].Score, report.Results[2].Score}
	if diff := cmp.Diff([]int{ScoreAAA, ScoreAA, ScoreFail}, scores); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
	if report.OverallScore != 67 {
		t.Errorf("expected overall score 67, got %d", report.OverallScore)
	}

	if len(report.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendations, got %+v", report.Recommendations)
	}
	if report.Recommendations[0].Kind != KindWarning || report.Recommendations[1].Kind != KindSuccess {
		t.Errorf("expected warning then success, got %s then %s",
			report.Recommendations[0].Kind, report.Recommendations[1].Kind)
	}
	if got := report.Recommendations[0].Details; len(got) != 1 || got[0] != "White + Gray (3.95:1)" {
		t.Errorf("unexpected warning details: %v", got)
	}
	if got := report.Recommendations[1].Details; len(got) != 1 || got[0] != "Black + White (21.00:1)" {
		t.Errorf("unexpected success details: %v", got)
	}

	counts := report.Counts()
	if counts != (Counts{Fail: 1, AA: 1, AAA: 1}) {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestEvaluate_PluralMessages(t *testing.T) {
	// Every pair among three near-identical grays fails; average is far below 4.
	report := Evaluate([]Color{
		{Name: "G1", Hex: "#777777"},
		{Name: "G2", Hex: "#7a7a7a"},
		{Name: "G3", Hex: "#7d7d7d"},
	})

	if len(report.Recommendations) != 2 {
		t.Fatalf("expected warning and error, got %+v", report.Recommendations)
	}
	warning := report.Recommendations[0]
	if warning.Message != "3 color combinations fail WCAG AA standards" {
		t.Errorf("unexpected message: %q", warning.Message)
	}
	if len(warning.Details) != 3 {
		t.Errorf("expected 3 detail lines, got %d", len(warning.Details))
	}
	if report.OverallScore != ScoreFail {
		t.Errorf("expected overall score 30, got %d", report.OverallScore)
	}

	success := Evaluate([]Color{black, white, {Name: "Snow", Hex: "#fefefe"}}).Recommendations
	var found bool
	for _, rec := range success {
		if rec.Kind == KindSuccess {
			found = true
			if rec.Message != "2 color combinations meet WCAG AAA standards" {
				t.Errorf("unexpected message: %q", rec.Message)
			}
		}
	}
	if !found {
		t.Error("expected a success recommendation")
	}
}

func TestEvaluate_MalformedColorScoresAsMinimum(t *testing.T) {
	report := Evaluate([]Color{black, {Name: "Broken", Hex: "#12345"}})

	r := report.Results[0]
	if r.Ratio != MinContrast || r.Score != ScoreFail {
		t.Errorf("expected minimum contrast fallback, got %+v", r)
	}
	if !strings.Contains(report.Recommendations[0].Details[0], "Black + Broken (1.00:1)") {
		t.Errorf("unexpected details: %v", report.Recommendations[0].Details)
	}
}

func TestOverallScore_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		expected int
	}{
		{name: "empty", scores: nil, expected: 0},
		{name: "exact", scores: []int{100, 30}, expected: 65},
		{name: "two thirds rounds up", scores: []int{100, 70, 30}, expected: 67},
		{name: "one third rounds down", scores: []int{100, 30, 30}, expected: 53},
		{name: "tie rounds up", scores: []int{100, 100, 100, 70}, expected: 93},
		{name: "exact quarter", scores: []int{70, 30, 30, 30}, expected: 40},
		{name: "another tie", scores: []int{100, 70, 70, 70}, expected: 78},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make([]ContrastResult, len(tt.scores))
			for i, s := range tt.scores {
				results[i] = ContrastResult{Score: s}
			}
			if got := overallScore(results); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestContrastResult_Level(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{1.0, LevelFail},
		{4.5, LevelAA},
		{7.0, LevelAAA},
	}

	for _, tt := range tests {
		aa, aaa, score := Classify(tt.ratio)
		r := ContrastResult{Ratio: tt.ratio, MeetsAA: aa, MeetsAAA: aaa, Score: score}
		if got := r.Level(); got != tt.expected {
			t.Errorf("ratio %.1f: expected %s, got %s", tt.ratio, tt.expected, got)
		}
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score int
		label string
		tone  string
	}{
		{100, "Excellent", "good"},
		{80, "Excellent", "good"},
		{79, "Good", "fair"},
		{60, "Good", "fair"},
		{59, "Fair", "poor"},
		{40, "Fair", "poor"},
		{39, "Poor", "poor"},
		{0, "Poor", "poor"},
	}

	for _, tt := range tests {
		if got := ScoreLabel(tt.score); got != tt.label {
			t.Errorf("ScoreLabel(%d) = %s, want %s", tt.score, got, tt.label)
		}
		if got := ScoreTone(tt.score); got != tt.tone {
			t.Errorf("ScoreTone(%d) = %s, want %s", tt.score, got, tt.tone)
		}
	}
}

func TestAccessibilityReport_AverageRatio(t *testing.T) {
	report := Evaluate([]Color{black, white})
	assertFloatNear(t, "average", 21, report.AverageRatio())

	if got := Evaluate(nil).AverageRatio(); got != 0 {
		t.Errorf("expected 0 for empty report, got %f", got)
	}
}

func TestRatioTone(t *testing.T) {
	tests := []struct {
		ratio float64
		tone  string
	}{
		{21, "good"},
		{4.5, "good"},
		{4.49, "fair"},
		{3.0, "fair"},
		{2.99, "poor"},
		{1, "poor"},
	}
	for _, tt := range tests {
		if got := RatioTone(tt.ratio); got != tt.tone {
			t.Errorf("RatioTone(%.2f) = %s, want %s", tt.ratio, got, tt.tone)
		}
	}
}
