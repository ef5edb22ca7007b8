package home

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/trio-sh/academy-builder-sub001/internal/capture"
	"github.com/trio-sh/academy-builder-sub001/internal/catalog"
	"github.com/trio-sh/academy-builder-sub001/internal/llm"
	"github.com/trio-sh/academy-builder-sub001/internal/router"
	"github.com/trio-sh/academy-builder-sub001/internal/screen"
	assessmentscreen "github.com/trio-sh/academy-builder-sub001/internal/screens/assessment"
	profilescreen "github.com/trio-sh/academy-builder-sub001/internal/screens/profile"
	"github.com/trio-sh/academy-builder-sub001/internal/store"
	"github.com/trio-sh/academy-builder-sub001/internal/ui/components"
)

// Deps carries the services the home screen hands to child screens.
type Deps struct {
	Catalog    *catalog.Catalog
	Provider   llm.Provider
	EventRepo  store.EventRepo
	SnapRepo   store.SnapshotRepo
	Recognizer capture.Recognizer
	Narrator   *capture.Narrator
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu      components.Menu
	completed int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	completed := 0
	if deps.SnapRepo != nil {
		if snap, err := deps.SnapRepo.Latest(context.Background()); err == nil && snap != nil {
			completed = snap.Data.AssessmentsCompleted
		}
	}

	items := []components.MenuItem{
		{Label: "START ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessmentscreen.New(deps.Catalog, deps.Provider, deps.EventRepo, deps.SnapRepo, deps.Recognizer, deps.Narrator),
				}
			}
		}},
		{Label: "SKILL PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profilescreen.New(deps.SnapRepo, deps.EventRepo)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		completed: completed,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}
