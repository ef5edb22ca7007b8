package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/evaluate"
)

// Session is the ephemeral working state for one visit to one scene.
// A fresh Session is constructed on every scene entry, including
// re-entries via back-navigation; nothing carries over between visits.
// The VisitID keys in-flight asynchronous evaluations so that replies
// arriving after the visit ended are silently dropped.
type Session struct {
	VisitID   string
	Scene     catalog.Scene
	Epoch     int
	EnteredAt time.Time

	// Voice working state.
	Transcript string

	// Written working state.
	Draft string

	// Priority working state.
	Ranking          []string
	RankingSubmitted bool

	// Role-play working state.
	DialogueChoices []int

	// Branching working state.
	BranchNode string
	BranchPath []evaluate.PathStep

	// Listening working state.
	ListeningAnswers []int

	// Judgment working state. -1 until a choice is made.
	JudgmentChoice int

	// Quickfire working state.
	QuickfireText      string
	QuickfireSubmitted bool

	// Evaluating is true while a delegated evaluation is in flight.
	Evaluating bool

	// Recorded guards the once-per-visit result append.
	Recorded bool

	// Result is this visit's recorded result, nil until recorded.
	Result *Result

	// NarrationPlayed guards the one-shot entry narration.
	NarrationPlayed bool
}

// newSession builds the fresh working state for a scene visit.
func newSession(scene catalog.Scene, epoch int) *Session {
	s := &Session{
		VisitID:        uuid.NewString(),
		Scene:          scene,
		Epoch:          epoch,
		EnteredAt:      time.Now(),
		JudgmentChoice: -1,
	}

	if scene.Kind == catalog.KindPriority && scene.Priority != nil {
		s.Ranking = make([]string, 0, len(scene.Priority.Tasks))
		for _, t := range scene.Priority.Tasks {
			s.Ranking = append(s.Ranking, t.ID)
		}
	}
	if scene.Kind == catalog.KindBranching && scene.Branching != nil {
		s.BranchNode = scene.Branching.Start
	}

	return s
}

// choiceTurnCount returns the number of role-play turns awaiting a choice.
func choiceTurnCount(p *catalog.RolePlayPayload) int {
	n := 0
	for _, turn := range p.Turns {
		if len(turn.Options) > 0 {
			n++
		}
	}
	return n
}
