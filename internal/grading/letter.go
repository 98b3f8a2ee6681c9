package grading

import (
	"math"

	"gradecli/internal/errors"
)

// LetterScale maps numeric grades to letter grades through a descending list
// of cut points. Letters carries one more entry than Thresholds; the last
// letter is the catch-all for scores below every threshold.
type LetterScale struct {
	Thresholds []float64
	Letters    []string
}

// Validate records non-fatal diagnostics for a scale that is usable but
// suspicious: thresholds out of descending order, or a letter count that does
// not line up with the threshold count.
func (s LetterScale) Validate(diags *errors.Diagnostics) {
	for i := 1; i < len(s.Thresholds); i++ {
		if s.Thresholds[i] >= s.Thresholds[i-1] {
			diags.Addf(errors.DiagThresholdOrder,
				"letter thresholds are not strictly descending: %v >= %v at position %d",
				s.Thresholds[i], s.Thresholds[i-1], i)
			break
		}
	}
	if len(s.Thresholds) != len(s.Letters)-1 {
		diags.Addf(errors.DiagThresholdCount,
			"%d thresholds require %d letters, got %d",
			len(s.Thresholds), len(s.Thresholds)+1, len(s.Letters))
	}
}

// ToLetter returns the letter for the first threshold the score meets, or the
// last letter when the score is below all of them.
func (s LetterScale) ToLetter(score float64) string {
	for i, threshold := range s.Thresholds {
		if score >= threshold {
			return s.Letters[i]
		}
	}
	return s.Letters[len(s.Letters)-1]
}

// ToNumeric inverts ToLetter for reimport of manually edited letter grades.
// It brackets each letter between its threshold and the previous one, with 0
// and 100 as outer bounds, and returns the integer midpoint of that bracket.
func (s LetterScale) ToNumeric(letter string) (float64, error) {
	idx := -1
	for i, l := range s.Letters {
		if l == letter {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, errors.LookupError("letter grade %q is not in the scale %v", letter, s.Letters)
	}

	bounds := make([]float64, 0, len(s.Thresholds)+2)
	bounds = append(bounds, s.Thresholds...)
	bounds = append(bounds, 0, 100)

	lower := bounds[idx]
	upper := 100.0
	if idx > 0 {
		upper = bounds[idx-1]
	}
	return math.Floor((lower + upper) / 2), nil
}
