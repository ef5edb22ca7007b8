package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
)

func listeningPayload() *catalog.ListeningPayload {
	return &catalog.ListeningPayload{
		Script: "Standup recap script.",
		Questions: []catalog.ListeningQuestion{
			{Text: "q1", Options: []string{"a", "b", "c"}, Answer: 1},
			{Text: "q2", Options: []string{"a", "b", "c"}, Answer: 0},
			{Text: "q3", Options: []string{"a", "b", "c"}, Answer: 2},
		},
	}
}

func TestListeningPerfectScore(t *testing.T) {
	result := Listening(listeningPayload(), []int{1, 0, 2})

	assert.Equal(t, 5.0, result.Scores["listening"])
	assert.Contains(t, result.Feedback, "Perfect")
}

func TestListeningPartialScore(t *testing.T) {
	// 2 of 3 correct: round(2/3 * 5) = round(3.33) = 3.
	result := Listening(listeningPayload(), []int{1, 0, 0})

	assert.Equal(t, 3.0, result.Scores["listening"])
	assert.Equal(t, 2, result.Extras["correct"])
}

func TestListeningAllWrongClampsToMinimum(t *testing.T) {
	// 0 of 3 correct: round(0) = 0, clamped to 1.
	result := Listening(listeningPayload(), []int{0, 1, 0})

	assert.Equal(t, 1.0, result.Scores["listening"])
}

func TestListeningMissingAnswers(t *testing.T) {
	result := Listening(listeningPayload(), nil)

	assert.Equal(t, 1.0, result.Scores["listening"])
}

func rolePlayPayload() *catalog.RolePlayPayload {
	return &catalog.RolePlayPayload{
		Persona: "Upset customer",
		Turns: []catalog.DialogueTurn{
			{Speaker: "customer", Text: "This is unacceptable!"},
			{Speaker: "you", Options: []catalog.DialogueOption{
				{Label: "apologize and ask details", Quality: "strong", Weight: 5},
				{Label: "explain policy", Quality: "adequate", Weight: 3},
				{Label: "blame shipping", Quality: "weak", Weight: 1},
			}},
			{Speaker: "you", Options: []catalog.DialogueOption{
				{Label: "offer replacement", Quality: "strong", Weight: 5},
				{Label: "offer partial refund", Quality: "adequate", Weight: 2},
				{Label: "end the chat", Quality: "weak", Weight: 1},
			}},
		},
	}
}

func TestRolePlayMeanOfWeights(t *testing.T) {
	// Weights 5 and 2: mean 3.5.
	result := RolePlay(rolePlayPayload(), []int{0, 1})

	assert.InDelta(t, 3.5, result.Scores["communication"], 1e-9)
	assert.Equal(t, 1, result.Extras["strongChoices"])
}

func TestRolePlayAllStrong(t *testing.T) {
	result := RolePlay(rolePlayPayload(), []int{0, 0})

	assert.Equal(t, 5.0, result.Scores["communication"])
	assert.Contains(t, result.Feedback, "every exchange")
}

func TestRolePlayNoChoices(t *testing.T) {
	result := RolePlay(rolePlayPayload(), nil)

	assert.Equal(t, 1.0, result.Scores["communication"])
}

func TestRolePlayPartialConversationScoresChoicesMade(t *testing.T) {
	// The subject left after the first choice turn; only that choice
	// is scored.
	result := RolePlay(rolePlayPayload(), []int{0})

	assert.Equal(t, 5.0, result.Scores["communication"])
	assert.Equal(t, 1, result.Extras["exchanges"])
}

func TestRolePlayTooManyChoices(t *testing.T) {
	result := RolePlay(rolePlayPayload(), []int{0, 0, 0})

	assert.Equal(t, 1.0, result.Scores["communication"])
}

func branchingPayload() *catalog.BranchingPayload {
	return &catalog.BranchingPayload{
		Start:          "n1",
		ChoicePointCap: 85,
		Nodes: []catalog.BranchNode{
			{ID: "n1", Situation: "Launch slips.", Choices: []catalog.BranchChoice{
				{Label: "escalate early", Points: 85, Quality: "strong", Feedback: "Early escalation kept options open.", Next: "n2"},
				{Label: "wait and see", Points: 25, Quality: "weak", Feedback: "Waiting burned the buffer.", Next: "n2"},
			}},
			{ID: "n2", Situation: "Team asks for direction.", Choices: []catalog.BranchChoice{
				{Label: "re-scope", Points: 85, Quality: "strong", Feedback: "Re-scoping saved the date."},
				{Label: "push overtime", Points: 15, Quality: "weak", Feedback: "Overtime hid the real problem."},
			}},
		},
	}
}

func TestBranchingBestPath(t *testing.T) {
	result := Branching(branchingPayload(), []PathStep{
		{NodeID: "n1", Choice: 0},
		{NodeID: "n2", Choice: 0},
	})

	// 170 of 170 possible: full marks.
	assert.Equal(t, 5.0, result.Scores["problem_solving"])
	assert.Equal(t, 170, result.Extras["points"])
	assert.Equal(t, 170, result.Extras["possible"])
}

func TestBranchingWeakPath(t *testing.T) {
	result := Branching(branchingPayload(), []PathStep{
		{NodeID: "n1", Choice: 1},
		{NodeID: "n2", Choice: 1},
	})

	// 40 of 170: fraction 0.235 * 5 = 1.18.
	assert.InDelta(t, 1.176, result.Scores["problem_solving"], 0.01)
	assert.Contains(t, result.Feedback, "buffer")
}

func TestBranchingEmptyPath(t *testing.T) {
	result := Branching(branchingPayload(), nil)

	assert.Equal(t, 1.0, result.Scores["problem_solving"])
}

func TestBranchingUnknownNode(t *testing.T) {
	result := Branching(branchingPayload(), []PathStep{{NodeID: "missing", Choice: 0}})

	assert.Equal(t, 1.0, result.Scores["problem_solving"])
}

func TestJudgmentWeights(t *testing.T) {
	payload := &catalog.JudgmentPayload{
		Situation: "A vendor offers you a personal gift.",
		Options: []catalog.JudgmentOption{
			{Label: "decline and disclose", Ethical: 5, Practical: 4, Feedback: "Transparent and safe."},
			{Label: "accept quietly", Ethical: 1, Practical: 2, Feedback: "This risks your credibility."},
		},
	}

	result := Judgment(payload, 0)
	assert.Equal(t, 5.0, result.Scores["ethical"])
	assert.Equal(t, 4.0, result.Scores["practical"])
	assert.Equal(t, "Transparent and safe.", result.Feedback)

	result = Judgment(payload, 1)
	assert.Equal(t, 1.0, result.Scores["ethical"])
	assert.Equal(t, 2.0, result.Scores["practical"])
}

func TestJudgmentNoChoice(t *testing.T) {
	payload := &catalog.JudgmentPayload{
		Options: []catalog.JudgmentOption{{Label: "only", Ethical: 3, Practical: 3}},
	}

	result := Judgment(payload, -1)
	assert.Equal(t, 1.0, result.Scores["ethical"])
	assert.Equal(t, 1.0, result.Scores["practical"])
}
