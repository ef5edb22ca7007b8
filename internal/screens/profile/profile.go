package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/router"
	"github.com/trio-sh/academy-builder-sub001/internal/screen"
	"github.com/trio-sh/academy-builder-sub001/internal/store"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/components"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/layout"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/theme"
)

// ProfileScreen shows the skill profile from the latest snapshot plus
// the run history from the assessment ledger.
type ProfileScreen struct {
	snapRepo  store.SnapshotRepo
	eventRepo store.EventRepo

	snapshot *store.Snapshot
	runs     []store.AssessmentRecord
	errMsg   string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// profileLoadedMsg carries the loaded snapshot and run history.
type profileLoadedMsg struct {
	Snapshot *store.Snapshot
	Runs     []store.AssessmentRecord
	Err      error
}

// New creates a new ProfileScreen.
func New(snapRepo store.SnapshotRepo, eventRepo store.EventRepo) *ProfileScreen {
	return &ProfileScreen{snapRepo: snapRepo, eventRepo: eventRepo}
}

func (p *ProfileScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		snap, err := p.snapRepo.Latest(ctx)
		if err != nil {
			return profileLoadedMsg{Err: err}
		}
		runs, err := p.eventRepo.Assessments(ctx)
		if err != nil {
			return profileLoadedMsg{Err: err}
		}
		return profileLoadedMsg{Snapshot: snap, Runs: runs}
	}
}

func (p *ProfileScreen) Title() string {
	return "Skill Profile"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.snapshot = msg.Snapshot
		p.runs = msg.Runs
		return p, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	if p.errMsg != "" {
		return theme.Weak.Render("  " + p.errMsg)
	}

	var b strings.Builder
	b.WriteString("\n")

	if p.snapshot == nil || len(p.snapshot.Data.Dimensions) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Subtitle.Render("No assessments yet. Complete one to build your profile.")))
		return b.String()
	}

	barWidth := min(width/3, 30)
	for _, d := range catalog.Dimensions {
		label := lipgloss.NewStyle().
			Foreground(theme.DimensionColor(d.ID)).
			Render(fmt.Sprintf("%-20s", theme.IconGlyph(d.Icon)+" "+d.Label))

		var line string
		if score, ok := p.snapshot.Data.Dimensions[d.ID]; ok {
			line = fmt.Sprintf("  %s %s", label, components.ScoreBar(d.ID, score, barWidth))
		} else {
			line = fmt.Sprintf("  %s %s", label,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("not assessed"))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	// Completed runs, newest last.
	ended := 0
	for _, r := range p.runs {
		if r.Action == "end" {
			ended++
		}
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("Assessments completed: %d", ended))))
	b.WriteString("\n")

	return b.String()
}
