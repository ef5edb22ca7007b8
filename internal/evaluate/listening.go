package evaluate

import (
	"fmt"
	"math"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
)

// Listening scores submitted answer indices against the payload's answer
// key. The single "listening" criterion is the correct fraction scaled to
// the 1-5 range: clamp(round(fraction * 5), 1, 5).
func Listening(payload *catalog.ListeningPayload, answers []int) Result {
	total := len(payload.Questions)
	if total == 0 || len(answers) != total {
		return Minimum("No answers were submitted.", "listening")
	}

	correct := 0
	for i, q := range payload.Questions {
		if answers[i] == q.Answer {
			correct++
		}
	}

	fraction := float64(correct) / float64(total)
	score := clampScore(math.Round(fraction * 5))

	feedback := fmt.Sprintf("You answered %d of %d questions correctly.", correct, total)
	if correct == total {
		feedback = fmt.Sprintf("Perfect! You caught every detail, %d of %d.", correct, total)
	}

	return Result{
		Scores:   map[string]float64{"listening": score},
		Feedback: feedback,
		Extras: map[string]any{
			"correct": correct,
			"total":   total,
		},
	}
}
