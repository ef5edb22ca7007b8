package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
)

// QuickfireCriteria is the single rubric criterion for timed responses.
var QuickfireCriteria = []string{"initiative"}

const quickfireSystemPrompt = `You are assessing a workplace-readiness candidate's response to a sudden situation under time pressure. Reward decisive, sensible first moves over polish; the candidate had under a minute.`

// Quickfire evaluates a short timed free-text response.
func Quickfire(ctx context.Context, p llm.Provider, scene catalog.Scene, text string) Result {
	user := buildQuickfireUserMessage(scene, text)
	return runDelegated(ctx, p, "quickfire-eval", "quickfire-evaluation", quickfireSystemPrompt, user, QuickfireCriteria)
}

func buildQuickfireUserMessage(scene catalog.Scene, text string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Situation: %s\n", scene.Quickfire.Situation))
	b.WriteString(fmt.Sprintf("Time allowed: %s\n", scene.TimeLimit))
	b.WriteString(fmt.Sprintf("\nCandidate's response:\n%s\n", text))

	b.WriteString(`
Instructions:
Score initiative 1-5: does the candidate take sensible ownership of the situation rather than deflecting or freezing? Then write 1-2 sentences of feedback addressed directly to the candidate.`)

	return b.String()
}
