package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())
	assert.Greater(t, cat.Len(), 0)
	assert.Equal(t, KindCompletion, cat.Scene(cat.Len()-1).Kind)
}

func TestDefaultCatalogCoversEveryDimension(t *testing.T) {
	cat := Default()

	covered := make(map[string]bool)
	for _, s := range cat.Scenes() {
		if s.Kind.Scored() {
			covered[s.Dimension] = true
		}
	}

	for _, d := range Dimensions {
		assert.True(t, covered[d.ID], "no scored scene for dimension %q", d.ID)
	}
}

func TestNewAssignsOrdinals(t *testing.T) {
	cat := New([]Scene{
		{ID: "a", Kind: KindNarrative},
		{ID: "b", Kind: KindReview},
		{ID: "c", Kind: KindCompletion},
	})

	for i := 0; i < cat.Len(); i++ {
		assert.Equal(t, i, cat.Scene(i).Ordinal)
	}
}

func TestScoredCount(t *testing.T) {
	cat := New([]Scene{
		{ID: "a", Kind: KindNarrative},
		{ID: "b", Kind: KindVoice, Dimension: "communication", Voice: &VoicePayload{Scenario: "x"}},
		{ID: "c", Kind: KindJudgment, Dimension: "integrity", Judgment: &JudgmentPayload{
			Situation: "x",
			Options:   []JudgmentOption{{Label: "a"}, {Label: "b"}},
		}},
		{ID: "d", Kind: KindCompletion},
	})

	assert.Equal(t, 2, cat.ScoredCount())
}

func TestValidateRejectsBrokenCatalogs(t *testing.T) {
	completion := Scene{ID: "end", Kind: KindCompletion}

	tests := []struct {
		name   string
		scenes []Scene
		errSub string
	}{
		{
			name:   "empty catalog",
			scenes: nil,
			errSub: "no scenes",
		},
		{
			name: "duplicate ID",
			scenes: []Scene{
				{ID: "a", Kind: KindNarrative},
				{ID: "a", Kind: KindNarrative},
				completion,
			},
			errSub: "duplicate ID",
		},
		{
			name: "scored scene without dimension",
			scenes: []Scene{
				{ID: "v", Kind: KindVoice, Voice: &VoicePayload{Scenario: "x"}},
				completion,
			},
			errSub: "without dimension",
		},
		{
			name: "scored scene with unknown dimension",
			scenes: []Scene{
				{ID: "v", Kind: KindVoice, Dimension: "charisma", Voice: &VoicePayload{Scenario: "x"}},
				completion,
			},
			errSub: "unknown dimension",
		},
		{
			name: "missing payload",
			scenes: []Scene{
				{ID: "v", Kind: KindVoice, Dimension: "communication"},
				completion,
			},
			errSub: "missing voice scenario",
		},
		{
			name: "inverted word bounds",
			scenes: []Scene{
				{ID: "w", Kind: KindWritten, Dimension: "professionalism", Written: &WrittenPayload{
					Scenario: "x", MinWords: 50, MaxWords: 10,
				}},
				completion,
			},
			errSub: "word bounds",
		},
		{
			name: "priority task with unknown dependency",
			scenes: []Scene{
				{ID: "p", Kind: KindPriority, Dimension: "organization", Priority: &PriorityPayload{
					Tasks: []Task{{ID: "t1", Title: "x", DependsOn: "ghost"}},
				}},
				completion,
			},
			errSub: "unknown task",
		},
		{
			name: "role-play with one choice turn",
			scenes: []Scene{
				{ID: "r", Kind: KindRolePlay, Dimension: "empathy", RolePlay: &RolePlayPayload{
					Persona: "x",
					Turns: []DialogueTurn{
						{Speaker: "them", Text: "hi"},
						{Speaker: "you", Options: []DialogueOption{{Label: "a", Weight: 3}}},
					},
				}},
				completion,
			},
			errSub: "two choice turns",
		},
		{
			name: "branching choice targets unknown node",
			scenes: []Scene{
				{ID: "b", Kind: KindBranching, Dimension: "problem-solving", Branching: &BranchingPayload{
					Start:          "n1",
					ChoicePointCap: 100,
					Nodes: []BranchNode{
						{ID: "n1", Situation: "x", Choices: []BranchChoice{{Label: "a", Points: 50, Next: "nowhere"}}},
					},
				}},
				completion,
			},
			errSub: "unknown node",
		},
		{
			name: "branching choice over the point cap",
			scenes: []Scene{
				{ID: "b", Kind: KindBranching, Dimension: "problem-solving", Branching: &BranchingPayload{
					Start:          "n1",
					ChoicePointCap: 100,
					Nodes: []BranchNode{
						{ID: "n1", Situation: "x", Choices: []BranchChoice{{Label: "a", Points: 150}}},
					},
				}},
				completion,
			},
			errSub: "out of range",
		},
		{
			name: "listening answer index out of range",
			scenes: []Scene{
				{ID: "l", Kind: KindListening, Dimension: "active-listening", Listening: &ListeningPayload{
					Script: "x",
					Questions: []ListeningQuestion{
						{Text: "q", Options: []string{"a", "b"}, Answer: 5},
					},
				}},
				completion,
			},
			errSub: "out of range",
		},
		{
			name: "judgment with one option",
			scenes: []Scene{
				{ID: "j", Kind: KindJudgment, Dimension: "integrity", Judgment: &JudgmentPayload{
					Situation: "x",
					Options:   []JudgmentOption{{Label: "only"}},
				}},
				completion,
			},
			errSub: "two options",
		},
		{
			name: "last scene not completion",
			scenes: []Scene{
				{ID: "a", Kind: KindNarrative},
				{ID: "b", Kind: KindReview},
			},
			errSub: "want completion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.scenes).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "voice-response", KindVoice.String())
	assert.Equal(t, "problem-solving", KindBranching.String())
	assert.Equal(t, "unknown", ChallengeKind(99).String())
}

func TestDimensionByID(t *testing.T) {
	d, ok := DimensionByID("empathy")
	require.True(t, ok)
	assert.Equal(t, "Empathy", d.Label)

	_, ok = DimensionByID("charisma")
	assert.False(t, ok)
}

func TestDefaultTimedScenesHaveSaneLimits(t *testing.T) {
	for _, s := range Default().Scenes() {
		if s.TimeLimit > 0 {
			assert.GreaterOrEqual(t, s.TimeLimit, 10*time.Second, "scene %q limit too tight", s.ID)
		}
	}
}
