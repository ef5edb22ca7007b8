package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
)

// Color palette — calm office tones, readable on dark terminals
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Strong = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Weak = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// DimensionColor returns the authored color for a skill dimension, or
// the dim text color for unknown IDs.
func DimensionColor(id string) color.Color {
	if d, ok := catalog.DimensionByID(id); ok {
		return lipgloss.Color(d.Color)
	}
	return TextDim
}

// IconGlyph maps a dimension icon to its terminal rendering. The switch
// is exhaustive over the icon set.
func IconGlyph(icon catalog.Icon) string {
	switch icon {
	case catalog.IconSpeech:
		return "🗣"
	case catalog.IconPen:
		return "✎"
	case catalog.IconChecklist:
		return "☑"
	case catalog.IconPeople:
		return "👥"
	case catalog.IconPuzzle:
		return "🧩"
	case catalog.IconEar:
		return "👂"
	case catalog.IconScale:
		return "⚖"
	case catalog.IconBolt:
		return "⚡"
	}
	return "•"
}
