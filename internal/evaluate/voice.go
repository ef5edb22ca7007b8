package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
)

// VoiceCriteria are the rubric criteria for spoken free responses.
var VoiceCriteria = []string{"clarity", "structure", "professionalism", "completeness"}

const voiceSystemPrompt = `You are assessing a workplace-readiness candidate's spoken response, transcribed to text. Judge the content and delivery structure, not transcription artifacts like missing punctuation or filler words.`

// Voice evaluates a transcribed spoken response against the scene's
// scenario rubric.
func Voice(ctx context.Context, p llm.Provider, scene catalog.Scene, transcript string) Result {
	user := buildVoiceUserMessage(scene, transcript)
	return runDelegated(ctx, p, "voice-eval", "voice-evaluation", voiceSystemPrompt, user, VoiceCriteria)
}

func buildVoiceUserMessage(scene catalog.Scene, transcript string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Scenario: %s\n", scene.Voice.Scenario))
	if len(scene.Voice.Hints) > 0 {
		b.WriteString("The candidate was prompted to cover:\n")
		for _, h := range scene.Voice.Hints {
			b.WriteString(fmt.Sprintf("- %s\n", h))
		}
	}

	b.WriteString(fmt.Sprintf("\nTranscribed response:\n%s\n", transcript))

	b.WriteString(`
Instructions:
Score the response 1-5 on each criterion:
- clarity: is the message easy to follow?
- structure: does it have a recognizable beginning, middle, and end?
- professionalism: is the tone appropriate for a workplace?
- completeness: does it address what was asked?
Then write 2-3 sentences of feedback addressed directly to the candidate. Be specific about one strength and one improvement.`)

	return b.String()
}
