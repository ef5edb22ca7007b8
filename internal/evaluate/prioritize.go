package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
)

// PriorityCriteria is the single rubric criterion for task ranking.
var PriorityCriteria = []string{"prioritization"}

const prioritySystemPrompt = `You are assessing how a workplace-readiness candidate prioritized a set of competing tasks. A reference order is provided; orders that differ from it can still score well when the candidate's trade-offs are defensible.`

// OptimalOrder computes the reference ranking for a task list: tasks
// become eligible once their dependency is placed, and among eligible
// tasks the highest urgency+importance goes first, with the nearer
// deadline breaking ties, then catalog order.
func OptimalOrder(tasks []catalog.Task) []string {
	placed := make(map[string]bool, len(tasks))
	remaining := make([]int, 0, len(tasks))
	for i := range tasks {
		remaining = append(remaining, i)
	}

	order := make([]string, 0, len(tasks))
	for len(remaining) > 0 {
		best := -1
		for _, idx := range remaining {
			t := tasks[idx]
			if t.DependsOn != "" && !placed[t.DependsOn] {
				continue
			}
			if best < 0 || priorityLess(tasks[idx], tasks[best]) {
				best = idx
			}
		}
		if best < 0 {
			// Unresolvable dependency cycle; catalog validation rejects
			// these, but fall back to catalog order rather than spin.
			best = remaining[0]
		}

		order = append(order, tasks[best].ID)
		placed[tasks[best].ID] = true
		for i, idx := range remaining {
			if idx == best {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return order
}

// priorityLess reports whether a should be placed before b.
func priorityLess(a, b catalog.Task) bool {
	aw, bw := a.Urgency+a.Importance, b.Urgency+b.Importance
	if aw != bw {
		return aw > bw
	}
	return a.DueInHours < b.DueInHours
}

// CorrectPlacements counts positions where the submitted order matches
// the reference order.
func CorrectPlacements(submitted, optimal []string) int {
	n := 0
	for i := range submitted {
		if i < len(optimal) && submitted[i] == optimal[i] {
			n++
		}
	}
	return n
}

// Priority evaluates a submitted task ranking. The reference order and
// placement count are computed locally and attached as extras; the score
// and feedback come from the evaluation boundary.
func Priority(ctx context.Context, p llm.Provider, scene catalog.Scene, submitted []string) Result {
	tasks := scene.Priority.Tasks
	if !isPermutation(submitted, tasks) {
		return Minimum("The submitted ranking didn't cover every task.", PriorityCriteria...)
	}

	optimal := OptimalOrder(tasks)
	correct := CorrectPlacements(submitted, optimal)

	user := buildPriorityUserMessage(tasks, submitted, optimal, correct)
	result := runDelegated(ctx, p, "priority-eval", "priority-evaluation", prioritySystemPrompt, user, PriorityCriteria)
	result.Extras = map[string]any{
		"optimalOrder":      optimal,
		"correctPlacements": correct,
	}
	return result
}

func isPermutation(submitted []string, tasks []catalog.Task) bool {
	if len(submitted) != len(tasks) {
		return false
	}
	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		seen[t.ID] = true
	}
	for _, id := range submitted {
		if !seen[id] {
			return false
		}
		delete(seen, id)
	}
	return len(seen) == 0
}

func buildPriorityUserMessage(tasks []catalog.Task, submitted, optimal []string, correct int) string {
	var b strings.Builder

	byID := make(map[string]catalog.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	b.WriteString("Tasks:\n")
	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("- %s: %s (due in %dh, urgency %d/5, importance %d/5", t.ID, t.Title, t.DueInHours, t.Urgency, t.Importance))
		if t.DependsOn != "" {
			b.WriteString(fmt.Sprintf(", depends on %s", t.DependsOn))
		}
		b.WriteString(")\n")
	}

	b.WriteString("\nCandidate's order:\n")
	for i, id := range submitted {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, byID[id].Title))
	}

	b.WriteString("\nReference order:\n")
	for i, id := range optimal {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, byID[id].Title))
	}

	b.WriteString(fmt.Sprintf("\nPositions matching the reference: %d of %d\n", correct, len(tasks)))

	b.WriteString(`
Instructions:
Score prioritization 1-5. A 5 matches the reference or deviates with clearly sound reasoning visible in the order itself; a 1 ignores deadlines and dependencies. Then write 2-3 sentences of feedback addressed directly to the candidate about their ordering.`)

	return b.String()
}
