// Package home is the entry menu: start a wizard, review cards, or
// browse history.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"mentora/internal/api"
	"mentora/internal/flow"
	"mentora/internal/router"
	"mentora/internal/screen"
	"mentora/internal/screens/course"
	"mentora/internal/screens/history"
	"mentora/internal/screens/reviewscreen"
	"mentora/internal/screens/roadmap"
	"mentora/internal/store"
	"mentora/internal/ui/components"
	"mentora/internal/ui/theme"
)

type statsLoadedMsg struct {
	stats store.ReviewStats
	decks int
}

// Deps carries everything the screens stack needs.
type Deps struct {
	Backend api.Backend
	Events  store.EventRepo
	Cards   store.CardRepo
	Clock   flow.Clock
	Logger  *zap.Logger
}

// Screen is the main menu.
type Screen struct {
	deps Deps
	menu components.Menu

	stats      store.ReviewStats
	deckCount  int
	statsReady bool
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen.
func New(deps Deps) *Screen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	s := &Screen{deps: deps}

	items := []components.MenuItem{
		{Label: "NEW ROADMAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: roadmap.New(deps.Backend, deps.Events, deps.Clock, deps.Logger)}
			}
		}},
		{Label: "NEW COURSE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: course.New(deps.Backend, deps.Events, deps.Clock, deps.Logger)}
			}
		}},
		{Label: "REVIEW CARDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reviewscreen.New(deps.Backend, deps.Events, deps.Clock, deps.Logger, "")}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) Init() tea.Cmd {
	events, cards := s.deps.Events, s.deps.Cards
	return func() tea.Msg {
		ctx := context.Background()
		msg := statsLoadedMsg{}
		if events != nil {
			msg.stats, _ = events.DeckStats(ctx, "")
		}
		if cards != nil {
			decks, _ := cards.Decks(ctx)
			msg.decks = len(decks)
		}
		return msg
	}
}

func (s *Screen) Title() string {
	return "Home"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if loaded, ok := msg.(statsLoadedMsg); ok {
		s.stats = loaded.stats
		s.deckCount = loaded.decks
		s.statsReady = true
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("MENTORA"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Learn anything, one step at a time"))
	b.WriteString("\n\n")

	if s.statsReady {
		b.WriteString(theme.Hint.Render(statsLine(s.deckCount, s.stats)))
		b.WriteString("\n\n")
	}

	b.WriteString(s.menu.View())

	card := theme.Card.Width(48).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func statsLine(decks int, stats store.ReviewStats) string {
	if decks == 0 && stats.Reviewed == 0 {
		return "No decks yet. Generate a course to build one."
	}
	accuracy := 0
	if stats.Reviewed > 0 {
		accuracy = stats.Correct * 100 / stats.Reviewed
	}
	return fmt.Sprintf("%s · %s · %d%% correct",
		withPlural(decks, "deck"), withPlural(stats.Reviewed, "review"), accuracy)
}

func withPlural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
