package evaluate

import (
	"context"
	"encoding/json"

	"github.com/trio-sh/academy-builder-sub001/internal/llm"
)

const evalMaxTokens = 700

// defaultCreativity keeps delegated scoring mostly deterministic while
// letting feedback phrasing vary.
const defaultCreativity = 0.3

// runDelegated sends one evaluation request to the provider and parses
// the reply into a Result. Any failure at the boundary, including
// malformed or partial replies, yields the neutral fallback so the
// assessment never stalls on the evaluator.
func runDelegated(ctx context.Context, p llm.Provider, purpose, schemaName, system, user string, criteria []string) Result {
	if p == nil {
		return Neutral(criteria...)
	}

	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := p.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Schema:      scoreSchema(schemaName, criteria),
		MaxTokens:   evalMaxTokens,
		Temperature: defaultCreativity,
	})
	if err != nil {
		return Neutral(criteria...)
	}

	result, ok := parseScores(string(resp.Content), criteria)
	if !ok {
		fallback := Neutral(criteria...)
		fallback.Raw = string(resp.Content)
		return fallback
	}
	result.Raw = string(resp.Content)
	return result
}

// parseScores extracts criterion scores and feedback from a reply that
// may be wrapped in prose. Every criterion must be present and numeric;
// values are clamped to the 1-5 range.
func parseScores(reply string, criteria []string) (Result, bool) {
	obj, err := FirstJSONObject(reply)
	if err != nil {
		return Result{}, false
	}

	var fields map[string]any
	if err := json.Unmarshal(obj, &fields); err != nil {
		return Result{}, false
	}

	scores := make(map[string]float64, len(criteria))
	for _, c := range criteria {
		v, ok := fields[c].(float64)
		if !ok {
			return Result{}, false
		}
		scores[c] = clampScore(v)
	}

	feedback, _ := fields["feedback"].(string)
	if feedback == "" {
		feedback = neutralFeedback
	}

	return Result{Scores: scores, Feedback: feedback}, true
}
