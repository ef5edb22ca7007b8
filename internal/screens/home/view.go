package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/ui/theme"
)

var banner = []string{
	"    _                _                      ",
	"   / \\   ___ __ _ __| | ___ _ __ ___  _   _ ",
	"  / _ \\ / __/ _` / _` |/ _ \\ '_ ` _ \\| | | |",
	" / ___ \\ (_| (_| | (_| |  __/ | | | | | |_| |",
	"/_/   \\_\\___\\__,_|\\__,_|\\___|_| |_| |_|\\__, |",
	"                                       |___/ ",
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	for _, line := range banner {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Your first day at the office starts now.")))
	b.WriteString("\n\n")

	if h.completed > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("Assessments completed: %d", h.completed))))
		b.WriteString("\n\n")
	}

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}
