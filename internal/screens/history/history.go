// Package history lists recent wizard runs from the local event log,
// with review totals at the top.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"mentora/internal/screen"
	"mentora/internal/store"
	"mentora/internal/ui/layout"
	"mentora/internal/ui/theme"
)

type loadedMsg struct {
	events []store.FlowEvent
	stats  store.ReviewStats
	err    error
}

// Screen displays the activity log.
type Screen struct {
	events store.EventRepo

	rows     []store.FlowEvent
	stats    store.ReviewStats
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the history screen.
func New(events store.EventRepo) *Screen {
	return &Screen{events: events}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		rows, err := s.events.RecentFlowEvents(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return loadedMsg{err: err}
		}
		stats, err := s.events.DeckStats(ctx, "")
		if err != nil {
			return loadedMsg{events: rows, err: err}
		}
		return loadedMsg{events: rows, stats: stats}
	}
}

func (s *Screen) Title() string {
	return "History"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		}
		s.rows = msg.events
		s.stats = msg.stats
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	var b strings.Builder

	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Cards reviewed: %d   correct: %d   avg response: %.1fs",
		s.stats.Reviewed, s.stats.Correct, s.stats.AvgTimeSecs)))
	b.WriteString("\n\n")

	if len(s.rows) == 0 {
		b.WriteString(theme.Hint.Render("No activity yet. Create a roadmap or a course to get started."))
	}

	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	for i := start; i < len(s.rows) && i < start+visible; i++ {
		row := s.rows[i]
		line := fmt.Sprintf("%s  %-8s %-9s step %d",
			row.Timestamp.Local().Format("Jan 02 15:04"),
			row.Flow, row.Action, row.Step)
		if row.Detail != "" {
			line += "  " + row.Detail
		}
		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Width(width - 8).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}
