package domain

// WCAG contrast thresholds for normal text.
const (
	ThresholdAA  = 4.5
	ThresholdAAA = 7.0
)

// ThresholdLargeText is the AA minimum for 18pt+ or 14pt+ bold text.
const ThresholdLargeText = 3.0

// Per-pair scores by conformance tier.
const (
	ScoreFail = 30
	ScoreAA   = 70
	ScoreAAA  = 100
)

// Conformance levels reported for a pair.
const (
	LevelAAA  = "AAA"
	LevelAA   = "AA"
	LevelFail = "Fail"
)

// ContrastResult is the evaluation of one unordered pair of colors.
type ContrastResult struct {
	ColorA   Color   `json:"colorA"`
	ColorB   Color   `json:"colorB"`
	Ratio    float64 `json:"ratio"`
	MeetsAA  bool    `json:"meetsAA"`
	MeetsAAA bool    `json:"meetsAAA"`
	Score    int     `json:"score"`
}

// Classify maps a contrast ratio to its conformance flags and score.
// Both thresholds are inclusive lower bounds.
func Classify(ratio float64) (meetsAA, meetsAAA bool, score int) {
	switch {
	case ratio >= ThresholdAAA:
		return true, true, ScoreAAA
	case ratio >= ThresholdAA:
		return true, false, ScoreAA
	default:
		return false, false, ScoreFail
	}
}

// NewContrastResult evaluates the pair (a, b).
func NewContrastResult(a, b Color) ContrastResult {
	ratio := ContrastRatio(a.Hex, b.Hex)
	aa, aaa, score := Classify(ratio)
	return ContrastResult{
		ColorA:   a,
		ColorB:   b,
		Ratio:    ratio,
		MeetsAA:  aa,
		MeetsAAA: aaa,
		Score:    score,
	}
}

// Level returns the highest conformance level met by the pair.
func (r ContrastResult) Level() string {
	switch {
	case r.MeetsAAA:
		return LevelAAA
	case r.MeetsAA:
		return LevelAA
	default:
		return LevelFail
	}
}

// Describe formats the pair as "<nameA> + <nameB> (<ratio>:1)".
func (r ContrastResult) Describe() string {
	return r.ColorA.Name + " + " + r.ColorB.Name + " (" + FormatRatio(r.Ratio) + ":1)"
}
