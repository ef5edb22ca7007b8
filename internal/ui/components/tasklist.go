package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/theme"
)

// TaskList is a reorderable list for prioritization challenges. Arrow
// keys move the cursor; shift+arrows (or J/K) move the task under the
// cursor up and down.
type TaskList struct {
	Tasks  map[string]catalog.Task
	Order  []string
	Cursor int
	Locked bool
}

// NewTaskList builds the list in catalog order.
func NewTaskList(tasks []catalog.Task) TaskList {
	byID := make(map[string]catalog.Task, len(tasks))
	order := make([]string, 0, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
		order = append(order, t.ID)
	}
	return TaskList{Tasks: byID, Order: order}
}

// MoveMsg reports that the subject moved a task from one slot to another.
type MoveMsg struct {
	From int
	To   int
}

// Init returns nil.
func (l TaskList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and task reordering.
func (l TaskList) Update(msg tea.Msg) (TaskList, tea.Cmd) {
	if l.Locked {
		return l, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
		}
	case "down", "j":
		if l.Cursor < len(l.Order)-1 {
			l.Cursor++
		}
	case "shift+up", "K":
		if l.Cursor > 0 {
			from := l.Cursor
			l.Order[from], l.Order[from-1] = l.Order[from-1], l.Order[from]
			l.Cursor--
			return l, moveCmd(from, l.Cursor)
		}
	case "shift+down", "J":
		if l.Cursor < len(l.Order)-1 {
			from := l.Cursor
			l.Order[from], l.Order[from+1] = l.Order[from+1], l.Order[from]
			l.Cursor++
			return l, moveCmd(from, l.Cursor)
		}
	}

	return l, nil
}

func moveCmd(from, to int) tea.Cmd {
	return func() tea.Msg {
		return MoveMsg{From: from, To: to}
	}
}

// View renders the ranked tasks, most important first.
func (l TaskList) View() string {
	var s string
	for i, id := range l.Order {
		task := l.Tasks[id]

		line := fmt.Sprintf("%d. %s", i+1, task.Title)
		meta := fmt.Sprintf("   due in %dh", task.DueInHours)
		if task.DependsOn != "" {
			if dep, ok := l.Tasks[task.DependsOn]; ok {
				meta += fmt.Sprintf(", needs %q first", dep.Title)
			}
		}

		if i == l.Cursor && !l.Locked {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("  "+line) + "\n"
		}
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+meta) + "\n"
	}
	return s
}
