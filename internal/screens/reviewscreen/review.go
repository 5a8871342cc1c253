// Package reviewscreen runs a flashcard review session: cards are shown
// front-first, flipped, rated 0-4, and each rating is reported to the
// backend scheduler before the next card appears.
package reviewscreen

import (
	"context"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"mentora/internal/api"
	"mentora/internal/flow"
	"mentora/internal/review"
	"mentora/internal/screen"
	"mentora/internal/store"
	"mentora/internal/ui/layout"
)

// sessionLimit caps how many cards one sitting serves.
const sessionLimit = 20

// cardsLoadedMsg reports the due-card fetch that opens the screen.
type cardsLoadedMsg struct {
	cards []api.Card
	err   error
}

// ratedMsg reports one rating submission.
type ratedMsg struct {
	sub api.ReviewSubmission
	err error
}

// Screen drives the review loop.
type Screen struct {
	backend api.Backend
	events  store.EventRepo
	clock   flow.Clock
	logger  *zap.Logger
	deck    string

	sess    *review.Session
	loadErr error
	loading bool
	empty   bool

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*Screen)(nil)

// New creates the review screen for deck. An empty deck reviews across
// all decks.
func New(backend api.Backend, events store.EventRepo, clock flow.Clock, logger *zap.Logger, deck string) *Screen {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Screen{
		backend: backend,
		events:  events,
		clock:   clock,
		logger:  logger,
		deck:    deck,
		loading: true,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Close tears down the session and aborts any in-flight call.
func (s *Screen) Close() {
	if s.sess != nil {
		s.sess.Close()
	}
	s.cancel()
}

func (s *Screen) Init() tea.Cmd {
	ctx := s.ctx
	deck := s.deck
	return func() tea.Msg {
		cards, err := s.backend.GetDueCards(ctx, deck, sessionLimit)
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

func (s *Screen) Title() string {
	if s.deck != "" {
		return "Review: " + s.deck
	}
	return "Review"
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.loadErr = msg.err
			return s, nil
		}
		if len(msg.cards) == 0 {
			s.empty = true
			return s, nil
		}
		s.sess = review.NewSession(s.ctx, msg.cards, s.clock)
		return s, nil

	case ratedMsg:
		s.sess.ResolveRate(msg.sub, msg.err)
		s.recordRating(msg.sub, msg.err)
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.sess == nil {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case " ", "f":
		s.sess.Flip()
	case "0", "1", "2", "3", "4":
		quality, _ := strconv.Atoi(key)
		return s, s.rate(quality)
	}
	return s, nil
}

// rate begins a rating submission for the current card.
func (s *Screen) rate(quality int) tea.Cmd {
	sub, ok := s.sess.BeginRate(quality)
	if !ok {
		return nil
	}
	ctx := s.sess.Context()
	return func() tea.Msg {
		err := s.backend.ReviewCard(ctx, sub)
		return ratedMsg{sub: sub, err: err}
	}
}

// recordRating mirrors an acknowledged rating into the local event log.
func (s *Screen) recordRating(sub api.ReviewSubmission, cause error) {
	if cause != nil || s.events == nil {
		return
	}
	data := store.ReviewEventData{
		SessionID:        s.sess.ID(),
		CardID:           sub.CardID,
		Deck:             s.deck,
		Quality:          sub.Quality,
		Correct:          sub.Quality >= api.QualityPass,
		ResponseTimeSecs: sub.ResponseTimeSecs,
	}
	if err := s.events.AppendReviewEvent(context.Background(), data); err != nil {
		s.logger.Warn("append review event", zap.Error(err))
	}
}

// KeyHints provides footer hints for the current phase.
func (s *Screen) KeyHints() []layout.KeyHint {
	if s.sess == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.sess.Phase() == review.PhaseResults {
		return []layout.KeyHint{{Key: "Esc", Description: "Done"}}
	}
	if !s.sess.Flipped() {
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "Esc", Description: "Quit session"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-4", Description: "Rate recall"},
		{Key: "Space", Description: "Flip back"},
		{Key: "Esc", Description: "Quit session"},
	}
}
