package evaluate

import (
	"strings"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
)

// Branching scores a walked decision path. Each step records the node ID
// and the chosen option index. The single "problem_solving" criterion is
// the earned points scaled against the best possible total for a path of
// that length, len(path) * ChoicePointCap, mapped onto the 1-5 range.
func Branching(payload *catalog.BranchingPayload, path []PathStep) Result {
	if len(path) == 0 {
		return Minimum("No decisions were made.", "problem_solving")
	}

	pointCap := payload.ChoicePointCap
	if pointCap <= 0 {
		pointCap = catalog.DefaultChoicePointCap
	}

	earned := 0
	var notes []string
	for _, step := range path {
		node := payload.Node(step.NodeID)
		if node == nil || step.Choice < 0 || step.Choice >= len(node.Choices) {
			return Minimum("The decision record was incomplete.", "problem_solving")
		}
		chosen := node.Choices[step.Choice]
		earned += chosen.Points
		if chosen.Feedback != "" {
			notes = append(notes, chosen.Feedback)
		}
	}

	possible := len(path) * pointCap
	fraction := float64(earned) / float64(possible)
	score := clampScore(fraction * 5)

	feedback := strings.Join(notes, " ")
	if feedback == "" {
		feedback = "Your decision path was recorded."
	}

	return Result{
		Scores:   map[string]float64{"problem_solving": score},
		Feedback: feedback,
		Extras: map[string]any{
			"points":   earned,
			"possible": possible,
		},
	}
}

// PathStep is one decision along a branching walk.
type PathStep struct {
	NodeID string
	Choice int
}
