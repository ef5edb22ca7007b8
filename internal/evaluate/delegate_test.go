package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
)

func voiceScene() catalog.Scene {
	return catalog.Scene{
		ID:        "voice-intro",
		Kind:      catalog.KindVoice,
		Dimension: "communication",
		Voice: &catalog.VoicePayload{
			Scenario: "Introduce yourself to the team.",
			Hints:    []string{"your name", "what you bring"},
		},
	}
}

func writtenScene() catalog.Scene {
	return catalog.Scene{
		ID:        "email-followup",
		Kind:      catalog.KindWritten,
		Dimension: "professionalism",
		Written: &catalog.WrittenPayload{
			Scenario: "Write a follow-up email.",
			MinWords: 10,
			MaxWords: 50,
		},
	}
}

func TestVoiceEvaluation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"clarity":4,"structure":3,"professionalism":5,"completeness":4,"feedback":"Clear and warm introduction."}`),
	})

	result := Voice(context.Background(), mock, voiceScene(), "Hi, I'm Sam and I bring three years of support experience.")

	require.False(t, result.Fallback)
	assert.Equal(t, 4.0, result.Scores["clarity"])
	assert.Equal(t, 5.0, result.Scores["professionalism"])
	assert.Equal(t, "Clear and warm introduction.", result.Feedback)
	assert.NotEmpty(t, result.Raw)

	// The prompt carried the scenario and the transcript.
	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Introduce yourself")
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "three years")
}

func TestVoiceEvaluationClampsOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"clarity":9,"structure":0,"professionalism":3,"completeness":-2,"feedback":"f"}`),
	})

	result := Voice(context.Background(), mock, voiceScene(), "hello")

	assert.Equal(t, 5.0, result.Scores["clarity"])
	assert.Equal(t, 1.0, result.Scores["structure"])
	assert.Equal(t, 1.0, result.Scores["completeness"])
}

func TestVoiceEvaluationProviderFailureFallsBackNeutral(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})

	result := Voice(context.Background(), mock, voiceScene(), "hello")

	require.True(t, result.Fallback)
	for _, c := range VoiceCriteria {
		assert.Equal(t, 3.0, result.Scores[c], "criterion %s", c)
	}
	assert.Equal(t, neutralFeedback, result.Feedback)
}

func TestVoiceEvaluationMalformedReplyFallsBackNeutral(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`I think it was pretty good overall!`),
	})

	result := Voice(context.Background(), mock, voiceScene(), "hello")

	require.True(t, result.Fallback)
	assert.Equal(t, 3.0, result.Scores["clarity"])
	// The raw reply is still preserved for the audit trail.
	assert.NotEmpty(t, result.Raw)
}

func TestVoiceEvaluationMissingCriterionFallsBackNeutral(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"clarity":4,"feedback":"partial"}`),
	})

	result := Voice(context.Background(), mock, voiceScene(), "hello")

	require.True(t, result.Fallback)
	assert.Equal(t, 3.0, result.Scores["structure"])
}

func TestVoiceEvaluationProseWrappedReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Here you go:\n{\"clarity\":4,\"structure\":4,\"professionalism\":4,\"completeness\":4,\"feedback\":\"Solid.\"}\nDone."),
	})

	result := Voice(context.Background(), mock, voiceScene(), "hello")

	require.False(t, result.Fallback)
	assert.Equal(t, "Solid.", result.Feedback)
}

func TestWrittenEvaluationInBounds(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"tone":4,"clarity":4,"actionability":3,"professionalism":4,"feedback":"Good follow-up."}`),
	})

	text := "Thank you for meeting with me today I will send the revised proposal by Friday"
	result := Written(context.Background(), mock, writtenScene(), text)

	assert.Equal(t, 4.0, result.Scores["tone"])
	assert.Equal(t, "Good follow-up.", result.Feedback)
}

func TestWrittenEvaluationOverLengthPenalty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"tone":4,"clarity":1,"actionability":3,"professionalism":5,"feedback":"Thorough but long."}`),
	})

	long := ""
	for i := 0; i < 60; i++ {
		long += "word "
	}
	result := Written(context.Background(), mock, writtenScene(), long)

	// One point off each criterion, floored at 1.
	assert.Equal(t, 3.0, result.Scores["tone"])
	assert.Equal(t, 1.0, result.Scores["clarity"])
	assert.Equal(t, 2.0, result.Scores["actionability"])
	assert.Equal(t, 4.0, result.Scores["professionalism"])
	assert.Contains(t, result.Feedback, "outside the requested length")
}

func TestPriorityEvaluation(t *testing.T) {
	scene := catalog.Scene{
		ID:        "monday-triage",
		Kind:      catalog.KindPriority,
		Dimension: "organization",
		Priority: &catalog.PriorityPayload{
			Tasks: []catalog.Task{
				{ID: "outage", Title: "Customer outage", DueInHours: 1, Urgency: 5, Importance: 5},
				{ID: "board-deck", Title: "Board deck draft", DueInHours: 24, Urgency: 3, Importance: 5},
				{ID: "deck-numbers", Title: "Deck numbers", DueInHours: 24, Urgency: 3, Importance: 4, DependsOn: "board-deck"},
				{ID: "lunch", Title: "Team lunch order", DueInHours: 4, Urgency: 2, Importance: 1},
			},
		},
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"prioritization":4,"feedback":"Outage first was right."}`),
	})

	// Optimal: outage, board-deck, deck-numbers, lunch.
	// Submitted swaps the last two: 2 matches at the top, plus... positions
	// 0 and 1 match, 2 and 3 are swapped.
	submitted := []string{"outage", "board-deck", "lunch", "deck-numbers"}
	result := Priority(context.Background(), mock, scene, submitted)

	assert.Equal(t, 4.0, result.Scores["prioritization"])
	assert.Equal(t, []string{"outage", "board-deck", "deck-numbers", "lunch"}, result.Extras["optimalOrder"])
	assert.Equal(t, 2, result.Extras["correctPlacements"])
}

func TestPriorityCorrectPlacementsCountsFixedPositions(t *testing.T) {
	optimal := []string{"a", "b", "c", "d"}
	submitted := []string{"a", "b", "d", "c"}
	assert.Equal(t, 2, CorrectPlacements(submitted, optimal))

	submitted = []string{"a", "b", "c", "d"}
	assert.Equal(t, 4, CorrectPlacements(submitted, optimal))

	submitted = []string{"a", "c", "b", "d"}
	assert.Equal(t, 2, CorrectPlacements(submitted, optimal))
}

func TestPriorityNotAPermutation(t *testing.T) {
	scene := catalog.Scene{
		Priority: &catalog.PriorityPayload{
			Tasks: []catalog.Task{{ID: "a", Urgency: 3, Importance: 3}, {ID: "b", Urgency: 2, Importance: 2}},
		},
	}

	result := Priority(context.Background(), llm.NewMockProvider(), scene, []string{"a", "a"})
	assert.Equal(t, 1.0, result.Scores["prioritization"])
}

func TestOptimalOrderRespectsDependencies(t *testing.T) {
	tasks := []catalog.Task{
		{ID: "numbers", Urgency: 5, Importance: 5, DependsOn: "deck"},
		{ID: "deck", Urgency: 1, Importance: 1},
	}

	// "numbers" outranks "deck" but cannot be placed first.
	assert.Equal(t, []string{"deck", "numbers"}, OptimalOrder(tasks))
}

func TestOptimalOrderTieBreaksByDeadline(t *testing.T) {
	tasks := []catalog.Task{
		{ID: "later", Urgency: 3, Importance: 3, DueInHours: 24},
		{ID: "sooner", Urgency: 3, Importance: 3, DueInHours: 2},
	}

	assert.Equal(t, []string{"sooner", "later"}, OptimalOrder(tasks))
}

func TestQuickfireEvaluation(t *testing.T) {
	scene := catalog.Scene{
		ID:        "printer-fire",
		Kind:      catalog.KindQuickfire,
		Dimension: "initiative",
		Quickfire: &catalog.QuickfirePayload{Situation: "The office printer is smoking."},
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"initiative":5,"feedback":"Decisive and safe."}`),
	})

	result := Quickfire(context.Background(), mock, scene, "Unplug it, warn people nearby, grab the extinguisher.")

	assert.Equal(t, 5.0, result.Scores["initiative"])
	assert.Equal(t, "Decisive and safe.", result.Feedback)
}

func TestNilProviderFallsBackNeutral(t *testing.T) {
	result := Voice(context.Background(), nil, voiceScene(), "hello")
	require.True(t, result.Fallback)
	assert.Equal(t, 3.0, result.Scores["clarity"])
}
