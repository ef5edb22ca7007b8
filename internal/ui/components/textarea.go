package components

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/ui/theme"
)

// TextArea wraps bubbles/textarea for multi-line written responses,
// with a live word counter against the challenge's word bounds.
type TextArea struct {
	Model    textarea.Model
	MinWords int
	MaxWords int
}

// NewTextArea creates a focused multi-line editor.
func NewTextArea(placeholder string, minWords, maxWords int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Focus()

	return TextArea{
		Model:    ta,
		MinWords: minWords,
		MaxWords: maxWords,
	}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// SetSize resizes the editor.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}

// View renders the editor with the word counter underneath.
func (t TextArea) View(wordCount int) string {
	counter := fmt.Sprintf("%d words", wordCount)
	if t.MinWords > 0 || t.MaxWords > 0 {
		counter = fmt.Sprintf("%d words (aim for %d-%d)", wordCount, t.MinWords, t.MaxWords)
	}

	style := lipgloss.NewStyle().Foreground(theme.TextDim)
	if t.MinWords > 0 && wordCount < t.MinWords {
		style = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	if t.MaxWords > 0 && wordCount > t.MaxWords {
		style = lipgloss.NewStyle().Foreground(theme.Error)
	}

	return t.Model.View() + "\n" + style.Render(counter)
}

// Value returns the current text.
func (t TextArea) Value() string {
	return t.Model.Value()
}
