package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/evaluate"
)

// Controller drives one assessment run over an ordered scene catalog.
// It owns the scene cursor, the per-visit session, and the in-memory
// result ledger. It performs no I/O: callers run delegated evaluations
// themselves and feed outcomes back through ApplyEvaluation, and they
// persist recorded results as they see fit.
//
// Navigation rules: forward movement is gated per challenge kind, back
// movement is always allowed except from the first scene, and every
// entry builds a fresh session with a new visit ID and a bumped epoch.
type Controller struct {
	catalog *catalog.Catalog

	// AssessmentID identifies this run in the persisted ledger.
	AssessmentID string

	index     int
	epoch     int
	session   *Session
	results   []Result
	maxIndex  int
	startedAt time.Time
}

// NewController starts a run at the first scene.
func NewController(cat *catalog.Catalog) *Controller {
	c := &Controller{
		catalog:      cat,
		AssessmentID: uuid.NewString(),
		startedAt:    time.Now(),
	}
	c.enterScene(0)
	return c
}

// enterScene moves the cursor and builds fresh visit state. The epoch
// bump invalidates any timers still ticking for the previous visit.
func (c *Controller) enterScene(i int) {
	c.index = i
	c.epoch++
	c.session = newSession(c.catalog.Scene(i), c.epoch)
	if i > c.maxIndex {
		c.maxIndex = i
	}
}

// Scene returns the current scene.
func (c *Controller) Scene() catalog.Scene { return c.session.Scene }

// Session returns the current visit's working state.
func (c *Controller) Session() *Session { return c.session }

// Index returns the current scene index.
func (c *Controller) Index() int { return c.index }

// Len returns the total number of scenes.
func (c *Controller) Len() int { return c.catalog.Len() }

// Epoch returns the current visit epoch. Timer messages stamped with an
// older epoch belong to an ended visit and must be ignored.
func (c *Controller) Epoch() int { return c.epoch }

// Terminal reports whether the run has reached the completion scene.
func (c *Controller) Terminal() bool {
	return c.session.Scene.Kind == catalog.KindCompletion
}

// Results returns the run's recorded results in order.
func (c *Controller) Results() []Result { return c.results }

// ScenesCompleted returns how many scenes the run has passed through.
func (c *Controller) ScenesCompleted() int { return c.maxIndex + 1 }

// Elapsed returns the wall time since the run started.
func (c *Controller) Elapsed() time.Duration { return time.Since(c.startedAt) }

// CanAdvance reports whether the current scene's forward gate is open.
//
// Narrative and review scenes are always open. Voice and written scenes
// open once an evaluation result exists for this visit. Interactive
// scenes open once the subject has committed the interaction: a ranking
// submitted, at least two dialogue choices made, at least one branch
// taken, all comprehension answers in, a judgment picked, a quickfire
// response submitted. The completion scene never opens; the run ends
// there.
func (c *Controller) CanAdvance() bool {
	s := c.session
	switch s.Scene.Kind {
	case catalog.KindNarrative, catalog.KindReview:
		return true
	case catalog.KindVoice, catalog.KindWritten:
		return s.Result != nil
	case catalog.KindPriority:
		return s.RankingSubmitted
	case catalog.KindRolePlay:
		return len(s.DialogueChoices) >= 2
	case catalog.KindBranching:
		return len(s.BranchPath) >= 1
	case catalog.KindListening:
		return s.ListeningAnswers != nil
	case catalog.KindJudgment:
		return s.JudgmentChoice >= 0
	case catalog.KindQuickfire:
		return s.QuickfireSubmitted
	case catalog.KindCompletion:
		return false
	}
	return true
}

// Advance moves to the next scene if the gate is open. Role-play and
// branching results are evaluated locally at this boundary, since the
// subject may keep exploring the dialogue or tree until leaving.
// Returns the result recorded at the boundary, if any, and whether the
// cursor moved.
func (c *Controller) Advance() (Result, bool, bool) {
	if !c.CanAdvance() {
		return Result{}, false, false
	}

	var recorded Result
	var has bool
	switch c.session.Scene.Kind {
	case catalog.KindRolePlay:
		if !c.session.Recorded {
			res := evaluate.RolePlay(c.session.Scene.RolePlay, c.session.DialogueChoices)
			recorded, has = c.record(res)
		}
	case catalog.KindBranching:
		if !c.session.Recorded {
			res := evaluate.Branching(c.session.Scene.Branching, c.session.BranchPath)
			recorded, has = c.record(res)
		}
	}

	if c.index+1 >= c.catalog.Len() {
		return recorded, has, false
	}
	c.enterScene(c.index + 1)
	return recorded, has, true
}

// Retreat moves back one scene. Back navigation is gate-free; the
// ledger keeps whatever was already recorded.
func (c *Controller) Retreat() bool {
	if c.index == 0 {
		return false
	}
	c.enterScene(c.index - 1)
	return true
}

// record appends a result for the current visit, at most once.
func (c *Controller) record(res evaluate.Result) (Result, bool) {
	if c.session.Recorded {
		return Result{}, false
	}
	r := fromEvaluation(c.session.Scene, res)
	c.session.Recorded = true
	c.session.Result = &r
	c.results = append(c.results, r)
	return r, true
}

// BeginEvaluation marks a delegated evaluation as in flight and returns
// the visit ID the reply must carry to be accepted.
func (c *Controller) BeginEvaluation() string {
	c.session.Evaluating = true
	return c.session.VisitID
}

// ApplyEvaluation records a delegated evaluation outcome. Replies keyed
// to an earlier visit are dropped: the subject has already moved on and
// a late result must not attach to whatever scene is now current.
func (c *Controller) ApplyEvaluation(visitID string, res evaluate.Result) (Result, bool) {
	if visitID != c.session.VisitID {
		return Result{}, false
	}
	c.session.Evaluating = false
	return c.record(res)
}

// SetTranscript stores the captured speech for the current visit.
func (c *Controller) SetTranscript(text string) {
	c.session.Transcript = text
}

// SetDraft stores the written draft for the current visit.
func (c *Controller) SetDraft(text string) {
	c.session.Draft = text
}

// CanSubmitWritten reports whether the draft meets the minimum length.
// Under-length drafts are rejected before any evaluation is attempted.
func (c *Controller) CanSubmitWritten() bool {
	p := c.session.Scene.Written
	if p == nil {
		return false
	}
	return evaluate.WordCount(c.session.Draft) >= p.MinWords
}

// MoveTask shifts the task at position i to position j in the working
// ranking. No-op once the ranking has been submitted.
func (c *Controller) MoveTask(i, j int) {
	r := c.session.Ranking
	if c.session.RankingSubmitted || i < 0 || j < 0 || i >= len(r) || j >= len(r) {
		return
	}
	id := r[i]
	r = append(r[:i], r[i+1:]...)
	r = append(r[:j], append([]string{id}, r[j:]...)...)
	c.session.Ranking = r
}

// SubmitRanking locks in the current task order and opens the gate.
func (c *Controller) SubmitRanking() {
	c.session.RankingSubmitted = true
}

// ChooseDialogue records the subject's pick for the next choice turn.
// Out-of-range picks and extra picks beyond the authored turns are
// ignored.
func (c *Controller) ChooseDialogue(option int) {
	p := c.session.Scene.RolePlay
	if p == nil || len(c.session.DialogueChoices) >= choiceTurnCount(p) {
		return
	}
	turn := nthChoiceTurn(p, len(c.session.DialogueChoices))
	if turn == nil || option < 0 || option >= len(turn.Options) {
		return
	}
	c.session.DialogueChoices = append(c.session.DialogueChoices, option)
}

// nthChoiceTurn returns the n-th turn that carries options.
func nthChoiceTurn(p *catalog.RolePlayPayload, n int) *catalog.DialogueTurn {
	seen := 0
	for i := range p.Turns {
		if len(p.Turns[i].Options) == 0 {
			continue
		}
		if seen == n {
			return &p.Turns[i]
		}
		seen++
	}
	return nil
}

// ChooseBranch takes a choice at the current tree node and walks to its
// successor. An empty successor ends the path.
func (c *Controller) ChooseBranch(choice int) {
	p := c.session.Scene.Branching
	if p == nil || c.session.BranchNode == "" {
		return
	}
	node := p.Node(c.session.BranchNode)
	if node == nil || choice < 0 || choice >= len(node.Choices) {
		return
	}
	c.session.BranchPath = append(c.session.BranchPath, evaluate.PathStep{
		NodeID: node.ID,
		Choice: choice,
	})
	c.session.BranchNode = node.Choices[choice].Next
}

// BranchEnded reports whether the decision path has reached a leaf.
func (c *Controller) BranchEnded() bool {
	return len(c.session.BranchPath) > 0 && c.session.BranchNode == ""
}

// SubmitListening evaluates the comprehension answers locally and
// records the result.
func (c *Controller) SubmitListening(answers []int) (Result, bool) {
	if c.session.Scene.Listening == nil || c.session.ListeningAnswers != nil {
		return Result{}, false
	}
	c.session.ListeningAnswers = answers
	return c.record(evaluate.Listening(c.session.Scene.Listening, answers))
}

// ChooseJudgment evaluates the forced choice locally and records the
// result.
func (c *Controller) ChooseJudgment(option int) (Result, bool) {
	p := c.session.Scene.Judgment
	if p == nil || c.session.JudgmentChoice >= 0 || option < 0 || option >= len(p.Options) {
		return Result{}, false
	}
	c.session.JudgmentChoice = option
	return c.record(evaluate.Judgment(p, option))
}

// SubmitQuickfire stores the response text and opens the gate. The
// delegated evaluation runs separately via BeginEvaluation.
func (c *Controller) SubmitQuickfire(text string) {
	c.session.QuickfireText = text
	c.session.QuickfireSubmitted = true
}
