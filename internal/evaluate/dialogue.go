package evaluate

import (
	"fmt"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
)

// RolePlay scores the dialogue choices made during a role-play. Each
// chosen option carries an authored 1-5 weight; the single
// "communication" criterion is the mean of the chosen weights.
// choices[i] is the selected option index for the i-th choice turn.
// The subject may leave the conversation before exhausting every choice
// turn; only the choices actually made are scored.
func RolePlay(payload *catalog.RolePlayPayload, choices []int) Result {
	choiceTurns := make([]catalog.DialogueTurn, 0, len(payload.Turns))
	for _, turn := range payload.Turns {
		if len(turn.Options) > 0 {
			choiceTurns = append(choiceTurns, turn)
		}
	}

	if len(choices) == 0 || len(choices) > len(choiceTurns) {
		return Minimum("The conversation ended before any choices were made.", "communication")
	}

	sum := 0.0
	strong := 0
	for i, idx := range choices {
		turn := choiceTurns[i]
		if idx < 0 || idx >= len(turn.Options) {
			return Minimum("The conversation record was incomplete.", "communication")
		}
		opt := turn.Options[idx]
		sum += float64(opt.Weight)
		if opt.Quality == "strong" {
			strong++
		}
	}

	score := clampScore(sum / float64(len(choices)))

	feedback := fmt.Sprintf("You made %d strong choice(s) across %d exchanges.", strong, len(choices))
	if strong == len(choices) {
		feedback = "You handled every exchange with a strong, empathetic response."
	}

	return Result{
		Scores:   map[string]float64{"communication": score},
		Feedback: feedback,
		Extras: map[string]any{
			"strongChoices": strong,
			"exchanges":     len(choices),
		},
	}
}
