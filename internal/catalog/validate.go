package catalog

import (
	"errors"
	"fmt"
)

// Validate checks the structural integrity of the catalog. A catalog that
// fails validation must not be served.
func (c *Catalog) Validate() error {
	if len(c.scenes) == 0 {
		return errors.New("catalog has no scenes")
	}

	seen := make(map[string]bool, len(c.scenes))
	for i, s := range c.scenes {
		if s.ID == "" {
			return fmt.Errorf("scene %d: empty ID", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("scene %q: duplicate ID", s.ID)
		}
		seen[s.ID] = true

		if s.Ordinal != i {
			return fmt.Errorf("scene %q: ordinal %d at position %d", s.ID, s.Ordinal, i)
		}

		if s.Kind.Scored() {
			if s.Dimension == "" {
				return fmt.Errorf("scene %q: scored scene without dimension", s.ID)
			}
			if _, ok := DimensionByID(s.Dimension); !ok {
				return fmt.Errorf("scene %q: unknown dimension %q", s.ID, s.Dimension)
			}
		}

		if err := validatePayload(s); err != nil {
			return fmt.Errorf("scene %q: %w", s.ID, err)
		}
	}

	if last := c.scenes[len(c.scenes)-1]; last.Kind != KindCompletion {
		return fmt.Errorf("last scene %q is %s, want completion", last.ID, last.Kind)
	}

	return nil
}

func validatePayload(s Scene) error {
	switch s.Kind {
	case KindVoice:
		if s.Voice == nil || s.Voice.Scenario == "" {
			return errors.New("missing voice scenario")
		}
	case KindWritten:
		if s.Written == nil || s.Written.Scenario == "" {
			return errors.New("missing written scenario")
		}
		if s.Written.MinWords < 0 || (s.Written.MaxWords > 0 && s.Written.MaxWords < s.Written.MinWords) {
			return errors.New("invalid word bounds")
		}
	case KindPriority:
		if s.Priority == nil || len(s.Priority.Tasks) == 0 {
			return errors.New("missing priority tasks")
		}
		ids := make(map[string]bool, len(s.Priority.Tasks))
		for _, t := range s.Priority.Tasks {
			ids[t.ID] = true
		}
		for _, t := range s.Priority.Tasks {
			if t.DependsOn != "" && !ids[t.DependsOn] {
				return fmt.Errorf("task %q depends on unknown task %q", t.ID, t.DependsOn)
			}
		}
	case KindRolePlay:
		if s.RolePlay == nil || len(s.RolePlay.Turns) == 0 {
			return errors.New("missing role-play turns")
		}
		choiceTurns := 0
		for _, t := range s.RolePlay.Turns {
			if len(t.Options) > 0 {
				choiceTurns++
			}
		}
		if choiceTurns < 2 {
			return errors.New("role-play needs at least two choice turns")
		}
	case KindBranching:
		if s.Branching == nil || len(s.Branching.Nodes) == 0 {
			return errors.New("missing branching nodes")
		}
		if s.Branching.ChoicePointCap <= 0 {
			return errors.New("branching choice point cap must be positive")
		}
		if s.Branching.Node(s.Branching.Start) == nil {
			return fmt.Errorf("branching start node %q not found", s.Branching.Start)
		}
		for _, n := range s.Branching.Nodes {
			for _, ch := range n.Choices {
				if ch.Next != "" && s.Branching.Node(ch.Next) == nil {
					return fmt.Errorf("node %q: choice targets unknown node %q", n.ID, ch.Next)
				}
				if ch.Points < 0 || ch.Points > s.Branching.ChoicePointCap {
					return fmt.Errorf("node %q: choice points %d out of range", n.ID, ch.Points)
				}
			}
		}
	case KindListening:
		if s.Listening == nil || s.Listening.Script == "" || len(s.Listening.Questions) == 0 {
			return errors.New("missing listening script or questions")
		}
		for i, q := range s.Listening.Questions {
			if q.Answer < 0 || q.Answer >= len(q.Options) {
				return fmt.Errorf("question %d: answer index %d out of range", i, q.Answer)
			}
		}
	case KindJudgment:
		if s.Judgment == nil || len(s.Judgment.Options) < 2 {
			return errors.New("judgment needs at least two options")
		}
	case KindQuickfire:
		if s.Quickfire == nil || s.Quickfire.Situation == "" {
			return errors.New("missing quickfire situation")
		}
	}
	return nil
}
