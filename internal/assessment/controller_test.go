package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/evaluate"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]Scene{
		{ID: "welcome", Kind: catalog.KindNarrative, Narration: "Welcome."},
		{ID: "intro", Kind: catalog.KindVoice, Dimension: "communication",
			Voice: &catalog.VoicePayload{Scenario: "Introduce yourself."}},
		{ID: "email", Kind: catalog.KindWritten, Dimension: "professionalism",
			TimeLimit: 2 * time.Minute,
			Written:   &catalog.WrittenPayload{Scenario: "Write a follow-up.", MinWords: 10, MaxWords: 50}},
		{ID: "triage", Kind: catalog.KindPriority, Dimension: "organization",
			Priority: &catalog.PriorityPayload{Tasks: []catalog.Task{
				{ID: "a", Urgency: 5, Importance: 5},
				{ID: "b", Urgency: 2, Importance: 2},
			}}},
		{ID: "customer", Kind: catalog.KindRolePlay, Dimension: "empathy",
			RolePlay: &catalog.RolePlayPayload{Persona: "Upset customer", Turns: []catalog.DialogueTurn{
				{Speaker: "customer", Text: "This is broken!"},
				{Speaker: "you", Text: "", Options: []catalog.DialogueOption{
					{Label: "Apologize", Quality: "strong", Weight: 5},
					{Label: "Deflect", Quality: "weak", Weight: 1},
				}},
				{Speaker: "you", Text: "", Options: []catalog.DialogueOption{
					{Label: "Offer fix", Quality: "strong", Weight: 5},
					{Label: "Escalate", Quality: "adequate", Weight: 3},
				}},
			}}},
		{ID: "incident", Kind: catalog.KindBranching, Dimension: "problem-solving",
			Branching: &catalog.BranchingPayload{Start: "n1", ChoicePointCap: 100, Nodes: []catalog.BranchNode{
				{ID: "n1", Situation: "Server down.", Choices: []catalog.BranchChoice{
					{Label: "Investigate", Points: 100, Next: "n2"},
					{Label: "Ignore", Points: 0, Next: ""},
				}},
				{ID: "n2", Situation: "Found the bug.", Choices: []catalog.BranchChoice{
					{Label: "Fix and verify", Points: 100, Next: ""},
					{Label: "Hotfix blind", Points: 40, Next: ""},
				}},
			}}},
		{ID: "standup", Kind: catalog.KindListening, Dimension: "active-listening",
			Listening: &catalog.ListeningPayload{Script: "The deploy is at noon.", Questions: []catalog.ListeningQuestion{
				{Text: "When is the deploy?", Options: []string{"Noon", "Midnight"}, Answer: 0},
			}}},
		{ID: "wallet", Kind: catalog.KindJudgment, Dimension: "integrity",
			Judgment: &catalog.JudgmentPayload{Situation: "You find a wallet.", Options: []catalog.JudgmentOption{
				{Label: "Turn it in", Ethical: 5, Practical: 4},
				{Label: "Keep it", Ethical: 1, Practical: 2},
			}}},
		{ID: "printer", Kind: catalog.KindQuickfire, Dimension: "initiative",
			TimeLimit: 30 * time.Second,
			Quickfire: &catalog.QuickfirePayload{Situation: "The printer is smoking."}},
		{ID: "review", Kind: catalog.KindReview},
		{ID: "done", Kind: catalog.KindCompletion},
	})
}

// Scene alias keeps the fixture readable.
type Scene = catalog.Scene

func advance(t *testing.T, c *Controller) {
	t.Helper()
	_, _, moved := c.Advance()
	require.True(t, moved, "expected to advance past %s", c.Scene().ID)
}

func TestNarrativeGateIsOpen(t *testing.T) {
	c := NewController(testCatalog())

	assert.Equal(t, "welcome", c.Scene().ID)
	assert.True(t, c.CanAdvance())
	advance(t, c)
	assert.Equal(t, "intro", c.Scene().ID)
}

func TestVoiceGateNeedsResult(t *testing.T) {
	c := NewController(testCatalog())
	advance(t, c)
	require.Equal(t, catalog.KindVoice, c.Scene().Kind)

	assert.False(t, c.CanAdvance())

	visit := c.BeginEvaluation()
	assert.True(t, c.Session().Evaluating)

	res, recorded := c.ApplyEvaluation(visit, evaluate.Result{
		Scores:   map[string]float64{"clarity": 4},
		Feedback: "Good.",
	})
	require.True(t, recorded)
	assert.Equal(t, "intro", res.SceneID)
	assert.Equal(t, "communication", res.Dimension)
	assert.True(t, c.CanAdvance())
	assert.Len(t, c.Results(), 1)
}

func TestStaleEvaluationIsDropped(t *testing.T) {
	c := NewController(testCatalog())
	advance(t, c)

	visit := c.BeginEvaluation()

	// The subject backs out before the reply lands.
	require.True(t, c.Retreat())
	advance(t, c)

	_, recorded := c.ApplyEvaluation(visit, evaluate.Result{Scores: map[string]float64{"clarity": 4}})
	assert.False(t, recorded)
	assert.Empty(t, c.Results())
	assert.False(t, c.CanAdvance())
}

func TestResultRecordedOncePerVisit(t *testing.T) {
	c := NewController(testCatalog())
	advance(t, c)

	visit := c.BeginEvaluation()
	_, recorded := c.ApplyEvaluation(visit, evaluate.Result{Scores: map[string]float64{"clarity": 4}})
	require.True(t, recorded)

	_, recorded = c.ApplyEvaluation(visit, evaluate.Result{Scores: map[string]float64{"clarity": 2}})
	assert.False(t, recorded)
	assert.Len(t, c.Results(), 1)
}

func TestFallbackResultStillRecorded(t *testing.T) {
	c := NewController(testCatalog())
	advance(t, c)

	visit := c.BeginEvaluation()
	res, recorded := c.ApplyEvaluation(visit, evaluate.Neutral("clarity", "structure"))
	require.True(t, recorded)
	assert.True(t, res.Fallback)
	assert.True(t, c.CanAdvance())
}

func TestRetryAppendsSecondResult(t *testing.T) {
	c := NewController(testCatalog())
	advance(t, c)

	visit := c.BeginEvaluation()
	_, _ = c.ApplyEvaluation(visit, evaluate.Result{Scores: map[string]float64{"clarity": 2}})

	// Leave and come back; the new visit records its own result.
	require.True(t, c.Retreat())
	advance(t, c)
	assert.False(t, c.Session().Recorded)

	visit = c.BeginEvaluation()
	_, recorded := c.ApplyEvaluation(visit, evaluate.Result{Scores: map[string]float64{"clarity": 5}})
	require.True(t, recorded)
	assert.Len(t, c.Results(), 2)
	assert.Equal(t, "intro", c.Results()[0].SceneID)
	assert.Equal(t, "intro", c.Results()[1].SceneID)
}

func TestReentryGetsFreshSessionAndEpoch(t *testing.T) {
	c := NewController(testCatalog())
	advance(t, c)

	firstVisit := c.Session().VisitID
	firstEpoch := c.Epoch()
	c.SetTranscript("half a thought")

	require.True(t, c.Retreat())
	advance(t, c)

	assert.NotEqual(t, firstVisit, c.Session().VisitID)
	assert.Greater(t, c.Epoch(), firstEpoch)
	assert.Empty(t, c.Session().Transcript)
	assert.False(t, c.Session().NarrationPlayed)
}

func TestWrittenSubmitGate(t *testing.T) {
	c := NewController(testCatalog())
	advance(t, c)
	visit := c.BeginEvaluation()
	c.ApplyEvaluation(visit, evaluate.Neutral("clarity"))
	advance(t, c)
	require.Equal(t, catalog.KindWritten, c.Scene().Kind)

	c.SetDraft("too short to count")
	assert.False(t, c.CanSubmitWritten())

	c.SetDraft("this draft has exactly ten words so it should pass")
	assert.True(t, c.CanSubmitWritten())
	assert.False(t, c.CanAdvance())
}

func TestPriorityGateAndReorder(t *testing.T) {
	c := NewController(testCatalog())
	for c.Scene().Kind != catalog.KindPriority {
		openGate(t, c)
		advance(t, c)
	}

	assert.Equal(t, []string{"a", "b"}, c.Session().Ranking)
	c.MoveTask(0, 1)
	assert.Equal(t, []string{"b", "a"}, c.Session().Ranking)

	assert.False(t, c.CanAdvance())
	c.SubmitRanking()
	assert.True(t, c.CanAdvance())

	// Reordering after submission is ignored.
	c.MoveTask(0, 1)
	assert.Equal(t, []string{"b", "a"}, c.Session().Ranking)
}

func TestRolePlayRecordsOnAdvance(t *testing.T) {
	c := NewController(testCatalog())
	for c.Scene().Kind != catalog.KindRolePlay {
		openGate(t, c)
		advance(t, c)
	}

	assert.False(t, c.CanAdvance())
	c.ChooseDialogue(0)
	assert.False(t, c.CanAdvance())
	c.ChooseDialogue(1)
	assert.True(t, c.CanAdvance())

	// Picks beyond the authored choice turns are ignored.
	c.ChooseDialogue(0)
	assert.Len(t, c.Session().DialogueChoices, 2)

	before := len(c.Results())
	res, has, moved := c.Advance()
	require.True(t, moved)
	require.True(t, has)
	assert.Len(t, c.Results(), before+1)
	// Weights 5 and 3 average to 4.
	assert.Equal(t, 4.0, res.Scores["communication"])
}

func TestRolePlayGateOpensAtTwoChoices(t *testing.T) {
	// A longer conversation with three choice turns still opens the
	// gate after the second choice; leaving early scores the two
	// choices made.
	c := NewController(catalog.New([]Scene{
		{ID: "negotiation", Kind: catalog.KindRolePlay, Dimension: "empathy",
			RolePlay: &catalog.RolePlayPayload{Persona: "Frustrated vendor", Turns: []catalog.DialogueTurn{
				{Speaker: "you", Options: []catalog.DialogueOption{
					{Label: "Acknowledge", Quality: "strong", Weight: 5},
					{Label: "Dismiss", Quality: "weak", Weight: 1},
				}},
				{Speaker: "you", Options: []catalog.DialogueOption{
					{Label: "Propose terms", Quality: "strong", Weight: 5},
					{Label: "Stall", Quality: "adequate", Weight: 3},
				}},
				{Speaker: "you", Options: []catalog.DialogueOption{
					{Label: "Confirm next steps", Quality: "strong", Weight: 5},
					{Label: "Hang up", Quality: "weak", Weight: 1},
				}},
			}}},
		{ID: "done", Kind: catalog.KindCompletion},
	}))

	c.ChooseDialogue(0)
	assert.False(t, c.CanAdvance())
	c.ChooseDialogue(1)
	assert.True(t, c.CanAdvance())

	res, has, moved := c.Advance()
	require.True(t, moved)
	require.True(t, has)
	// Weights 5 and 3 average to 4; the unanswered third turn is not
	// scored.
	assert.Equal(t, 4.0, res.Scores["communication"])
}

func TestBranchingWalkAndRecord(t *testing.T) {
	c := NewController(testCatalog())
	for c.Scene().Kind != catalog.KindBranching {
		openGate(t, c)
		advance(t, c)
	}

	assert.False(t, c.CanAdvance())
	c.ChooseBranch(0)
	assert.Equal(t, "n2", c.Session().BranchNode)
	assert.True(t, c.CanAdvance())
	assert.False(t, c.BranchEnded())

	c.ChooseBranch(0)
	assert.True(t, c.BranchEnded())

	res, has, moved := c.Advance()
	require.True(t, moved)
	require.True(t, has)
	// 200 of 200 possible points.
	assert.Equal(t, 5.0, res.Scores["problem_solving"])
}

func TestListeningRecordsImmediately(t *testing.T) {
	c := NewController(testCatalog())
	for c.Scene().Kind != catalog.KindListening {
		openGate(t, c)
		advance(t, c)
	}

	assert.False(t, c.CanAdvance())
	res, recorded := c.SubmitListening([]int{0})
	require.True(t, recorded)
	assert.Equal(t, 5.0, res.Scores["listening"])
	assert.True(t, c.CanAdvance())

	// A second submission is ignored.
	_, recorded = c.SubmitListening([]int{1})
	assert.False(t, recorded)
}

func TestJudgmentRecordsImmediately(t *testing.T) {
	c := NewController(testCatalog())
	for c.Scene().Kind != catalog.KindJudgment {
		openGate(t, c)
		advance(t, c)
	}

	res, recorded := c.ChooseJudgment(0)
	require.True(t, recorded)
	assert.Equal(t, 5.0, res.Scores["ethical"])
	assert.Equal(t, 4.0, res.Scores["practical"])
	assert.True(t, c.CanAdvance())

	_, recorded = c.ChooseJudgment(1)
	assert.False(t, recorded)
}

func TestQuickfireGate(t *testing.T) {
	c := NewController(testCatalog())
	for c.Scene().Kind != catalog.KindQuickfire {
		openGate(t, c)
		advance(t, c)
	}

	assert.False(t, c.CanAdvance())
	c.SubmitQuickfire("Unplug it and warn the room.")
	assert.True(t, c.CanAdvance())
}

func TestCompletionIsTerminal(t *testing.T) {
	c := NewController(testCatalog())
	for !c.Terminal() {
		openGate(t, c)
		advance(t, c)
	}

	assert.Equal(t, "done", c.Scene().ID)
	assert.False(t, c.CanAdvance())
	_, _, moved := c.Advance()
	assert.False(t, moved)
	assert.Equal(t, c.Len(), c.ScenesCompleted())
}

func TestRetreatFromFirstScene(t *testing.T) {
	c := NewController(testCatalog())
	assert.False(t, c.Retreat())
}

// openGate drives whatever interaction the current scene needs so the
// walkthrough tests can march forward.
func openGate(t *testing.T, c *Controller) {
	t.Helper()
	switch c.Scene().Kind {
	case catalog.KindVoice, catalog.KindWritten:
		visit := c.BeginEvaluation()
		c.ApplyEvaluation(visit, evaluate.Neutral("clarity"))
	case catalog.KindQuickfire:
		c.SubmitQuickfire("response")
	case catalog.KindPriority:
		c.SubmitRanking()
	case catalog.KindRolePlay:
		c.ChooseDialogue(0)
		c.ChooseDialogue(0)
	case catalog.KindBranching:
		c.ChooseBranch(1)
	case catalog.KindListening:
		c.SubmitListening([]int{0})
	case catalog.KindJudgment:
		c.ChooseJudgment(0)
	}
}
