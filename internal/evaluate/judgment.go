package evaluate

import "github.com/trio-sh/academy-builder-sub001/internal/catalog"

// Judgment scores a forced-choice judgment call from the chosen option's
// authored ethical and practical weights.
func Judgment(payload *catalog.JudgmentPayload, chosen int) Result {
	if chosen < 0 || chosen >= len(payload.Options) {
		return Minimum("No option was chosen.", "ethical", "practical")
	}

	opt := payload.Options[chosen]
	feedback := opt.Feedback
	if feedback == "" {
		feedback = "Your choice was recorded."
	}

	return Result{
		Scores: map[string]float64{
			"ethical":   clampScore(opt.Ethical),
			"practical": clampScore(opt.Practical),
		},
		Feedback: feedback,
		Extras: map[string]any{
			"chosen": opt.Label,
		},
	}
}
