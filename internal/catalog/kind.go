package catalog

// ChallengeKind identifies the interaction model of a scene. Rendering and
// input handling dispatch exhaustively on this tag.
type ChallengeKind int

const (
	KindNarrative ChallengeKind = iota
	KindVoice
	KindWritten
	KindPriority
	KindRolePlay
	KindBranching
	KindListening
	KindJudgment
	KindQuickfire
	KindReview
	KindCompletion
)

var kindNames = map[ChallengeKind]string{
	KindNarrative:  "narrative",
	KindVoice:      "voice-response",
	KindWritten:    "written-challenge",
	KindPriority:   "prioritization",
	KindRolePlay:   "role-play",
	KindBranching:  "problem-solving",
	KindListening:  "active-listening",
	KindJudgment:   "judgment",
	KindQuickfire:  "quick-response",
	KindReview:     "review",
	KindCompletion: "completion",
}

func (k ChallengeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Scored reports whether scenes of this kind produce a challenge result.
func (k ChallengeKind) Scored() bool {
	switch k {
	case KindNarrative, KindReview, KindCompletion:
		return false
	}
	return true
}
