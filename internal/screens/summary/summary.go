package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/assessment"
	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/profile"
	"github.com/trio-sh/academy-builder-sub001/internal/router"
	"github.com/trio-sh/academy-builder-sub001/internal/screen"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/components"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/layout"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/theme"
)

// SummaryScreen displays the run's aggregated skill profile.
type SummaryScreen struct {
	profile  profile.Profile
	results  []assessment.Result
	duration time.Duration
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(prof profile.Profile, results []assessment.Result, duration time.Duration) *SummaryScreen {
	return &SummaryScreen{
		profile:  prof,
		results:  results,
		duration: duration,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Assessment Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Assessment complete!"))
	b.WriteString("\n\n")

	mins := int(s.duration.Minutes())
	secs := int(s.duration.Seconds()) % 60
	overall, evidence := s.profile.Overall()
	statsLine := fmt.Sprintf("Duration: %d:%02d        Challenges: %d        Overall: %.1f/5",
		mins, secs, evidence, overall)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skill Profile")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width/3, 30)
	for _, d := range s.profile.Dimensions {
		icon := ""
		if dim, ok := catalog.DimensionByID(d.Dimension); ok {
			icon = theme.IconGlyph(dim.Icon) + " "
		}

		label := lipgloss.NewStyle().
			Foreground(theme.DimensionColor(d.Dimension)).
			Render(fmt.Sprintf("%-20s", icon+d.Label))

		var line string
		if d.Evidence > 0 {
			line = fmt.Sprintf("  %s %s", label, components.ScoreBar(d.Dimension, d.Score, barWidth))
		} else {
			line = fmt.Sprintf("  %s %s", label,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("not assessed"))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	// Per-challenge feedback.
	if len(s.results) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Feedback")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, r := range s.results {
			line := fmt.Sprintf("  %s: %s", r.SceneID, r.Feedback)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
