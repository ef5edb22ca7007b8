package evaluate

// Result is a completed challenge evaluation. Scores map criterion names
// to values on the 1-5 scale. Extras carry kind-specific details (optimal
// order, correct placements, chosen path) for display; they are not scored.
type Result struct {
	Scores   map[string]float64
	Feedback string
	Extras   map[string]any
	Raw      string
	Fallback bool
}

// Mean returns the mean of the result's criterion scores, or 0 when empty.
func (r Result) Mean() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range r.Scores {
		sum += v
	}
	return sum / float64(len(r.Scores))
}

const neutralFeedback = "Your response was recorded, but automatic analysis wasn't available. A neutral score was applied."

// clampScore forces v into the 1-5 scoring range.
func clampScore(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// Neutral builds the fallback result used when the evaluation boundary
// fails: every criterion scores 3.
func Neutral(criteria ...string) Result {
	scores := make(map[string]float64, len(criteria))
	for _, c := range criteria {
		scores[c] = 3
	}
	return Result{Scores: scores, Feedback: neutralFeedback, Fallback: true}
}

// Minimum builds the result for empty or malformed local input: every
// criterion scores the minimum valid 1.
func Minimum(feedback string, criteria ...string) Result {
	scores := make(map[string]float64, len(criteria))
	for _, c := range criteria {
		scores[c] = 1
	}
	return Result{Scores: scores, Feedback: feedback}
}
