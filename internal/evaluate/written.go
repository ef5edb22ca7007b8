package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
)

// WrittenCriteria are the rubric criteria for typed free responses.
var WrittenCriteria = []string{"tone", "clarity", "actionability", "professionalism"}

const writtenSystemPrompt = `You are assessing a workplace-readiness candidate's written response, such as an email or message. Judge it as the intended recipient would.`

// WordCount counts whitespace-separated words. The submit gate and the
// length penalty both use this count.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Written evaluates a typed response. Responses outside the scene's word
// bounds lose one point per criterion, applied after clamping so a
// penalized score can drop below what the rubric alone would give, but
// never below 1.
func Written(ctx context.Context, p llm.Provider, scene catalog.Scene, text string) Result {
	user := buildWrittenUserMessage(scene, text)
	result := runDelegated(ctx, p, "written-eval", "written-evaluation", writtenSystemPrompt, user, WrittenCriteria)

	words := WordCount(text)
	payload := scene.Written
	if words < payload.MinWords || (payload.MaxWords > 0 && words > payload.MaxWords) {
		for c, v := range result.Scores {
			penalized := v - 1
			if penalized < 1 {
				penalized = 1
			}
			result.Scores[c] = penalized
		}
		result.Feedback += fmt.Sprintf(" Note: your response was outside the requested length of %d-%d words.", payload.MinWords, payload.MaxWords)
	}

	return result
}

func buildWrittenUserMessage(scene catalog.Scene, text string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Scenario: %s\n", scene.Written.Scenario))
	b.WriteString(fmt.Sprintf("Requested length: %d-%d words\n", scene.Written.MinWords, scene.Written.MaxWords))
	b.WriteString(fmt.Sprintf("\nCandidate's response (%d words):\n%s\n", WordCount(text), text))

	b.WriteString(`
Instructions:
Score the response 1-5 on each criterion:
- tone: is it appropriately warm and respectful for the situation?
- clarity: is the message unambiguous?
- actionability: does the recipient know what happens next?
- professionalism: spelling, formality, and structure.
Then write 2-3 sentences of feedback addressed directly to the candidate. Be specific about one strength and one improvement.`)

	return b.String()
}
