package catalog

import "time"

// Scene is one step of the assessment. Scenes are read-only inputs: the
// catalog is built once and never mutated at runtime.
type Scene struct {
	ID      string
	Ordinal int
	Kind    ChallengeKind

	// Title is the short heading shown in the header and progress rail.
	Title string

	// Dimension is the skill dimension this scene contributes evidence to.
	// Empty for unscored kinds.
	Dimension string

	// Prompt is the main instruction text shown to the subject.
	Prompt string

	// Narration is spoken on entry for narrative scenes (unless muted).
	Narration string

	// TimeLimit bounds the scene's countdown. Zero means untimed.
	TimeLimit time.Duration

	// Exactly one payload is set, matching Kind, for kinds that carry one.
	Voice     *VoicePayload
	Written   *WrittenPayload
	Priority  *PriorityPayload
	RolePlay  *RolePlayPayload
	Branching *BranchingPayload
	Listening *ListeningPayload
	Judgment  *JudgmentPayload
	Quickfire *QuickfirePayload
}

// VoicePayload describes a spoken free-response challenge.
type VoicePayload struct {
	Scenario string
	Hints    []string
}

// WrittenPayload describes a typed free-response challenge with word bounds.
type WrittenPayload struct {
	Scenario string
	MinWords int
	MaxWords int
}

// Task is one prioritizable work item.
type Task struct {
	ID         string
	Title      string
	DueInHours int    // hours until deadline
	Urgency    int    // 1 (low) .. 5 (high)
	Importance int    // 1 (low) .. 5 (high)
	DependsOn  string // task ID that must be completed first, or empty
}

// PriorityPayload describes a drag-to-rank challenge.
type PriorityPayload struct {
	Tasks []Task
}

// DialogueOption is one selectable subject reply in a role-play turn.
type DialogueOption struct {
	Label   string
	Quality string // authored label: "strong", "adequate", "weak"
	Weight  int    // 1..5 contribution to the communication score
	Reply   string // the counterpart's reaction after this choice
}

// DialogueTurn is one exchange in a role-play. Turns with no options are
// counterpart lines; turns with options wait for the subject's choice.
type DialogueTurn struct {
	Speaker string
	Text    string
	Options []DialogueOption
}

// RolePlayPayload describes a branching dialogue with a fixed persona.
type RolePlayPayload struct {
	Persona string
	Turns   []DialogueTurn
}

// BranchChoice is one decision at a problem-solving node.
type BranchChoice struct {
	Label    string
	Points   int // 0 .. ChoicePointCap
	Quality  string
	Feedback string
	Next     string // next node ID, or empty to end the path
}

// BranchNode is one situation in a problem-solving tree.
type BranchNode struct {
	ID        string
	Situation string
	Choices   []BranchChoice
}

// BranchingPayload describes a scored decision tree.
type BranchingPayload struct {
	Start string
	Nodes []BranchNode

	// ChoicePointCap is the maximum points a single choice can carry. The
	// path's best possible total is len(path) * ChoicePointCap.
	ChoicePointCap int
}

// Node returns the node with the given ID, or nil.
func (p *BranchingPayload) Node(id string) *BranchNode {
	for i := range p.Nodes {
		if p.Nodes[i].ID == id {
			return &p.Nodes[i]
		}
	}
	return nil
}

// ListeningQuestion is one comprehension question over the audio script.
type ListeningQuestion struct {
	Text    string
	Options []string
	Answer  int // index into Options
}

// ListeningPayload describes a timed listening-comprehension challenge.
type ListeningPayload struct {
	Script    string
	Questions []ListeningQuestion
}

// JudgmentOption is one forced-choice answer with authored weights.
type JudgmentOption struct {
	Label     string
	Ethical   float64 // 1..5
	Practical float64 // 1..5
	Feedback  string
}

// JudgmentPayload describes a forced-choice judgment call.
type JudgmentPayload struct {
	Situation string
	Options   []JudgmentOption
}

// QuickfirePayload describes a short timed free-text response.
type QuickfirePayload struct {
	Situation string
}

// Catalog is the ordered, immutable sequence of scenes for one assessment.
type Catalog struct {
	scenes []Scene
}

// New builds a catalog from scenes, assigning ordinals by position.
func New(scenes []Scene) *Catalog {
	for i := range scenes {
		scenes[i].Ordinal = i
	}
	return &Catalog{scenes: scenes}
}

// Len returns the number of scenes.
func (c *Catalog) Len() int { return len(c.scenes) }

// Scene returns the scene at index i.
func (c *Catalog) Scene(i int) Scene { return c.scenes[i] }

// Scenes returns all scenes in order.
func (c *Catalog) Scenes() []Scene { return c.scenes }

// ScoredCount returns the number of scenes that produce results.
func (c *Catalog) ScoredCount() int {
	n := 0
	for _, s := range c.scenes {
		if s.Kind.Scored() {
			n++
		}
	}
	return n
}
