package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/capture"
	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
	"github.com/trio-sh/academy-builder-sub001/internal/router"
	"github.com/trio-sh/academy-builder-sub001/internal/screen"
	"github.com/trio-sh/academy-builder-sub001/internal/screens/home"
	"github.com/trio-sh/academy-builder-sub001/internal/store"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/layout"
)

// Options carries the wired services for the TUI.
type Options struct {
	Catalog    *catalog.Catalog
	Provider   llm.Provider
	EventRepo  store.EventRepo
	SnapRepo   store.SnapshotRepo
	Recognizer capture.Recognizer
	Narrator   *capture.Narrator
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Catalog:    opts.Catalog,
		Provider:   opts.Provider,
		EventRepo:  opts.EventRepo,
		SnapRepo:   opts.SnapRepo,
		Recognizer: opts.Recognizer,
		Narrator:   opts.Narrator,
	})
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	scene, total := 0, 0
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.ProgressProvider); ok {
			scene, total = p.Progress()
		}
	}

	header := layout.RenderHeader(title, scene, total, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
