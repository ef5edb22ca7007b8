package evaluate

import (
	"fmt"

	"github.com/trio-sh/academy-builder-sub001/internal/llm"
)

// scoreSchema builds the JSON schema for a delegated evaluation: one
// integer score per criterion on the 1-5 scale, plus feedback text.
func scoreSchema(name string, criteria []string) *llm.Schema {
	props := map[string]any{
		"feedback": map[string]any{
			"type":        "string",
			"description": "2-3 sentences of specific, constructive feedback addressed to the candidate",
		},
	}
	required := []any{"feedback"}

	for _, c := range criteria {
		props[c] = map[string]any{
			"type":        "integer",
			"minimum":     1,
			"maximum":     5,
			"description": fmt.Sprintf("Score for %s, 1 (poor) to 5 (excellent)", c),
		}
		required = append(required, c)
	}

	return &llm.Schema{
		Name:        name,
		Description: "Rubric scores and feedback for one assessment challenge",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}
