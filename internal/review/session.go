// Package review drives a flashcard review session: a fixed ordered card
// sequence, shown front-first, rated on a 0-4 quality scale after a flip.
// Scheduling is entirely the backend's concern; this package only reports
// outcomes and keeps local session statistics.
package review

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"mentora/internal/api"
	"mentora/internal/flow"
)

// Phase is the review session phase.
type Phase int

const (
	PhaseReviewing Phase = iota
	PhaseResults
)

// Stats accumulates per-session review counters.
type Stats struct {
	Reviewed  int
	Correct   int
	Incorrect int
}

// Accuracy returns the percentage of correct reviews, rounded to the
// nearest integer. Zero reviews yields 0.
func (s Stats) Accuracy() int {
	if s.Reviewed == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Reviewed) * 100))
}

// Session is the per-item review loop. Like the wizard sessions it is
// ephemeral, single-threaded, and allows at most one in-flight rating
// submission; the submission is applied to local state only once the
// backend acknowledges it, so a failure never corrupts the counters.
type Session struct {
	cards   []api.Card
	index   int
	flipped bool
	stats   Stats
	phase   Phase

	clock   flow.Clock
	shownAt time.Time // when the current card's front was displayed

	inflight bool
	err      error

	id     string
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSession creates a review session over cards. The first card's timer
// starts immediately. Cards must be non-empty; callers handle the
// no-cards-due case before constructing a session.
func NewSession(parent context.Context, cards []api.Card, clock flow.Clock) *Session {
	if clock == nil {
		clock = flow.SystemClock()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		cards:   cards,
		clock:   clock,
		shownAt: clock.Now(),
		id:      uuid.New().String(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// ID returns the session UUID for event correlation.
func (s *Session) ID() string { return s.id }

// Context returns the session context for rating submissions.
func (s *Session) Context() context.Context { return s.ctx }

// Close tears the session down, cancelling any in-flight submission.
func (s *Session) Close() { s.cancel() }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Current returns the card being reviewed.
func (s *Session) Current() api.Card { return s.cards[s.index] }

// Index returns the 0-based position of the current card.
func (s *Session) Index() int { return s.index }

// Count returns the total number of cards in the session.
func (s *Session) Count() int { return len(s.cards) }

// Flipped reports whether the current card's back is visible.
func (s *Session) Flipped() bool { return s.flipped }

// Stats returns the accumulated counters.
func (s *Session) Stats() Stats { return s.stats }

// Submitting reports whether a rating submission is in flight.
func (s *Session) Submitting() bool { return s.inflight }

// Err returns the last submission failure, or nil.
func (s *Session) Err() error { return s.err }

// Flip toggles visibility of the current card's back. A no-op while a
// submission is in flight or after the session has ended.
func (s *Session) Flip() {
	if s.phase != PhaseReviewing || s.inflight {
		return
	}
	s.flipped = !s.flipped
	s.err = nil
}

// BeginRate accepts a quality rating for the current card and returns
// the submission to send to the backend scheduler. The response time is
// elapsed wall-clock seconds since this card was shown (not since the
// session started). Rejected (ok == false) before a flip, outside the
// 0-4 scale, while another submission is in flight, or after Results.
func (s *Session) BeginRate(quality int) (api.ReviewSubmission, bool) {
	if s.phase != PhaseReviewing || !s.flipped || s.inflight {
		return api.ReviewSubmission{}, false
	}
	if quality < api.QualityMin || quality > api.QualityMax {
		return api.ReviewSubmission{}, false
	}
	s.inflight = true
	s.err = nil
	elapsed := int(math.Round(s.clock.Now().Sub(s.shownAt).Seconds()))
	if elapsed < 0 {
		elapsed = 0
	}
	return api.ReviewSubmission{
		CardID:           s.Current().ID,
		Quality:          quality,
		ResponseTimeSecs: elapsed,
	}, true
}

// ResolveRate completes a submission started with BeginRate. On success
// the counters update (correct iff quality >= 3), and the session either
// advances to the next card, restarting its timer, or reaches Results on
// the last card. On failure the rating controls re-arm on the same card
// and the counters are untouched.
func (s *Session) ResolveRate(sub api.ReviewSubmission, err error) {
	if !s.inflight {
		return
	}
	s.inflight = false

	if err != nil {
		s.err = err
		return
	}

	s.stats.Reviewed++
	if sub.Quality >= api.QualityPass {
		s.stats.Correct++
	} else {
		s.stats.Incorrect++
	}

	if s.index+1 >= len(s.cards) {
		s.phase = PhaseResults
		return
	}
	s.index++
	s.flipped = false
	s.shownAt = s.clock.Now()
}

// Progress renders a "3/10" style position indicator.
func (s *Session) Progress() string {
	return fmt.Sprintf("%d/%d", s.index+1, len(s.cards))
}
