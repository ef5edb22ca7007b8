package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/evaluate"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	scene := s.ctrl.Scene()
	prompt := lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render("  " + scene.Prompt)
	b.WriteString(prompt)
	b.WriteString("\n\n")

	switch scene.Kind {
	case catalog.KindNarrative, catalog.KindReview, catalog.KindCompletion:
		b.WriteString(s.renderStatic(width))
	case catalog.KindVoice:
		b.WriteString(s.renderVoice(width))
	case catalog.KindWritten:
		b.WriteString(s.renderWritten(width))
	case catalog.KindPriority:
		b.WriteString(s.renderPriority(width))
	case catalog.KindRolePlay:
		b.WriteString(s.renderRolePlay(width))
	case catalog.KindBranching, catalog.KindListening, catalog.KindJudgment:
		b.WriteString(s.renderChoice(width))
	case catalog.KindQuickfire:
		b.WriteString(s.renderQuickfire(width))
	}

	if res := s.ctrl.Session().Result; res != nil {
		b.WriteString("\n\n")
		b.WriteString(s.renderFeedback(res.Feedback, width))
	}

	return b.String()
}

// renderInfoLine shows the skill dimension and any active countdown.
func (s *AssessmentScreen) renderInfoLine(width int) string {
	scene := s.ctrl.Scene()

	left := ""
	if d, ok := catalog.DimensionByID(scene.Dimension); ok {
		left = lipgloss.NewStyle().
			Foreground(theme.DimensionColor(d.ID)).
			Bold(true).
			Render(fmt.Sprintf("  %s %s", theme.IconGlyph(d.Icon), d.Label))
	}

	right := ""
	if scene.TimeLimit > 0 {
		mins := int(s.remaining.Minutes())
		secs := int(s.remaining.Seconds()) % 60
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.remaining < scene.TimeLimit/4 {
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		right = style.Render(fmt.Sprintf("⏱ %d:%02d", mins, secs))
	}

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *AssessmentScreen) renderStatic(width int) string {
	hint := "Press Enter to continue."
	if s.ctrl.Scene().Kind == catalog.KindCompletion {
		hint = "Press Enter to see your results."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n" + hint)
}

func (s *AssessmentScreen) renderVoice(width int) string {
	var b strings.Builder
	p := s.ctrl.Scene().Voice

	b.WriteString(theme.Body.Render("  " + p.Scenario))
	b.WriteString("\n\n")
	if len(p.Hints) > 0 {
		b.WriteString(theme.Hint.Render("  Consider mentioning: " + strings.Join(p.Hints, ", ")))
		b.WriteString("\n\n")
	}

	sess := s.ctrl.Session()
	switch {
	case s.micDenied:
		b.WriteString(theme.Hint.Render("  No microphone available. Type what you would say and press Enter."))
		b.WriteString("\n\n  " + s.input.View())
	case s.recording:
		interim := ""
		if s.recorder != nil {
			interim = s.recorder.Interim()
		}
		b.WriteString(theme.Weak.Render("  ● Recording..."))
		if transcript := s.liveTranscript(); transcript != "" {
			b.WriteString("\n\n" + theme.Body.Render("  "+transcript))
		}
		if interim != "" {
			b.WriteString("\n" + theme.Hint.Render("  "+interim))
		}
	case sess.Evaluating:
		b.WriteString(theme.Hint.Render("  Analyzing your response..."))
	case sess.Result != nil:
		b.WriteString(theme.Body.Render("  You said: " + sess.Transcript))
	default:
		b.WriteString(theme.Hint.Render("  Press Space to start recording."))
	}

	return b.String()
}

func (s *AssessmentScreen) liveTranscript() string {
	if s.recorder == nil {
		return ""
	}
	return s.recorder.Transcript()
}

func (s *AssessmentScreen) renderWritten(width int) string {
	var b strings.Builder
	p := s.ctrl.Scene().Written

	b.WriteString(theme.Body.Render("  " + p.Scenario))
	b.WriteString("\n\n")

	sess := s.ctrl.Session()
	if sess.Evaluating {
		b.WriteString(theme.Hint.Render("  Analyzing your response..."))
		return b.String()
	}

	b.WriteString(s.editor.View(evaluate.WordCount(s.editor.Value())))
	return b.String()
}

func (s *AssessmentScreen) renderPriority(width int) string {
	var b strings.Builder
	b.WriteString(s.tasks.View())

	sess := s.ctrl.Session()
	if sess.Evaluating {
		b.WriteString("\n" + theme.Hint.Render("  Analyzing your priorities..."))
	}
	if res := sess.Result; res != nil {
		if optimal, ok := res.Extras["optimalOrder"].([]string); ok {
			b.WriteString("\n" + theme.Hint.Render("  Suggested order: "+strings.Join(optimal, " → ")))
		}
	}
	return b.String()
}

func (s *AssessmentScreen) renderRolePlay(width int) string {
	var b strings.Builder
	p := s.ctrl.Scene().RolePlay
	sess := s.ctrl.Session()

	b.WriteString(theme.Hint.Render("  Speaking with: " + p.Persona))
	b.WriteString("\n\n")

	// Replay the conversation so far.
	made := 0
	for _, turn := range p.Turns {
		if len(turn.Options) == 0 {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  %s: %s", turn.Speaker, turn.Text)))
			b.WriteString("\n")
			continue
		}
		if made >= len(sess.DialogueChoices) {
			break
		}
		opt := turn.Options[sess.DialogueChoices[made]]
		b.WriteString(theme.Selected.Render("  You: " + opt.Label))
		b.WriteString("\n")
		if opt.Reply != "" {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  %s: %s", p.Persona, opt.Reply)))
			b.WriteString("\n")
		}
		made++
	}

	if len(sess.DialogueChoices) < countChoiceTurns(p) {
		b.WriteString("\n")
		b.WriteString(s.choice.View())
	}
	return b.String()
}

func countChoiceTurns(p *catalog.RolePlayPayload) int {
	n := 0
	for _, t := range p.Turns {
		if len(t.Options) > 0 {
			n++
		}
	}
	return n
}

func (s *AssessmentScreen) renderChoice(width int) string {
	sess := s.ctrl.Session()
	if sess.Result != nil {
		return theme.Body.Render("  " + sess.Result.Feedback)
	}
	if s.ctrl.Scene().Kind == catalog.KindBranching && s.ctrl.BranchEnded() {
		return theme.Hint.Render("  Path complete. Press Tab to continue.")
	}
	return s.choice.View()
}

func (s *AssessmentScreen) renderQuickfire(width int) string {
	var b strings.Builder
	p := s.ctrl.Scene().Quickfire

	b.WriteString(theme.Body.Render("  " + p.Situation))
	b.WriteString("\n\n")

	sess := s.ctrl.Session()
	switch {
	case sess.Evaluating:
		b.WriteString(theme.Hint.Render("  Analyzing your response..."))
	case sess.QuickfireSubmitted:
		b.WriteString(theme.Body.Render("  Your move: " + sess.QuickfireText))
	default:
		b.WriteString("  " + s.input.View())
	}
	return b.String()
}

func (s *AssessmentScreen) renderFeedback(feedback string, width int) string {
	return theme.Card.Width(max(width-8, 20)).Render(
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Feedback") +
			"\n" + theme.Body.Render(feedback))
}
