package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"

	"mentora/internal/api"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func testCards(n int) []api.Card {
	cards := make([]api.Card, n)
	for i := range cards {
		cards[i] = api.Card{
			ID:    string(rune('a' + i)),
			Front: "front",
			Back:  "back",
		}
	}
	return cards
}

func newTestSession(n int) (*Session, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	return NewSession(context.Background(), testCards(n), clock), clock
}

func TestRate_RejectedBeforeFlip(t *testing.T) {
	s, _ := newTestSession(2)

	if _, ok := s.BeginRate(3); ok {
		t.Error("expected rating before flip to be rejected")
	}

	s.Flip()
	if _, ok := s.BeginRate(3); !ok {
		t.Error("expected rating after flip to be accepted")
	}
}

func TestRate_OutOfScaleRejected(t *testing.T) {
	s, _ := newTestSession(1)
	s.Flip()

	if _, ok := s.BeginRate(5); ok {
		t.Error("expected quality 5 to be rejected")
	}
	if _, ok := s.BeginRate(-1); ok {
		t.Error("expected quality -1 to be rejected")
	}
}

func TestRate_ResponseTimePerCard(t *testing.T) {
	s, clock := newTestSession(2)

	clock.advance(7 * time.Second)
	s.Flip()
	sub, ok := s.BeginRate(4)
	if !ok {
		t.Fatal("expected rating to be accepted")
	}
	if sub.ResponseTimeSecs != 7 {
		t.Errorf("ResponseTimeSecs = %d, want 7", sub.ResponseTimeSecs)
	}
	s.ResolveRate(sub, nil)

	// The timer restarts with each card, so only time on the second
	// card counts.
	clock.advance(3 * time.Second)
	s.Flip()
	sub, _ = s.BeginRate(2)
	if sub.ResponseTimeSecs != 3 {
		t.Errorf("second card ResponseTimeSecs = %d, want 3", sub.ResponseTimeSecs)
	}
}

func TestRate_CountersAndThreshold(t *testing.T) {
	// Quality >= 3 counts correct, below counts incorrect.
	tests := []struct {
		quality       int
		wantCorrect   int
		wantIncorrect int
	}{
		{0, 0, 1},
		{2, 0, 1},
		{3, 1, 0},
		{4, 1, 0},
	}

	for _, tt := range tests {
		s, _ := newTestSession(2)
		s.Flip()
		sub, _ := s.BeginRate(tt.quality)
		s.ResolveRate(sub, nil)

		stats := s.Stats()
		if stats.Reviewed != 1 {
			t.Errorf("quality %d: Reviewed = %d, want 1", tt.quality, stats.Reviewed)
		}
		if stats.Correct != tt.wantCorrect {
			t.Errorf("quality %d: Correct = %d, want %d", tt.quality, stats.Correct, tt.wantCorrect)
		}
		if stats.Incorrect != tt.wantIncorrect {
			t.Errorf("quality %d: Incorrect = %d, want %d", tt.quality, stats.Incorrect, tt.wantIncorrect)
		}
	}
}

func TestSession_ThreeCardScenario(t *testing.T) {
	// Ratings [4, 1, 3] over three cards: reviewed 3, correct 2,
	// incorrect 1, accuracy 67.
	s, _ := newTestSession(3)

	for _, q := range []int{4, 1, 3} {
		s.Flip()
		sub, ok := s.BeginRate(q)
		if !ok {
			t.Fatalf("rating %d rejected", q)
		}
		s.ResolveRate(sub, nil)
	}

	stats := s.Stats()
	if stats.Reviewed != 3 || stats.Correct != 2 || stats.Incorrect != 1 {
		t.Errorf("stats = %+v, want {3 2 1}", stats)
	}
	if got := stats.Accuracy(); got != 67 {
		t.Errorf("Accuracy = %d, want 67", got)
	}
	if s.Phase() != PhaseResults {
		t.Errorf("phase = %v, want PhaseResults after last card", s.Phase())
	}
}

func TestLastCard_DoesNotAdvancePastEnd(t *testing.T) {
	s, _ := newTestSession(1)
	s.Flip()
	sub, _ := s.BeginRate(4)
	s.ResolveRate(sub, nil)

	if s.Phase() != PhaseResults {
		t.Fatalf("phase = %v, want PhaseResults", s.Phase())
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0 (never past sequence length)", s.Index())
	}
	// Further interaction is inert.
	s.Flip()
	if _, ok := s.BeginRate(4); ok {
		t.Error("expected rating in Results to be rejected")
	}
}

func TestResolveRate_FailureKeepsStats(t *testing.T) {
	s, _ := newTestSession(2)
	s.Flip()
	sub, _ := s.BeginRate(4)
	s.ResolveRate(sub, errors.New("scheduler unreachable"))

	stats := s.Stats()
	if stats.Reviewed != 0 {
		t.Errorf("Reviewed = %d, want 0 after failed submission", stats.Reviewed)
	}
	if s.Index() != 0 {
		t.Errorf("Index = %d, want 0 (stay on card)", s.Index())
	}
	if s.Err() == nil {
		t.Error("expected submission error to be surfaced")
	}

	// The rating controls re-arm: retry succeeds.
	sub, ok := s.BeginRate(4)
	if !ok {
		t.Fatal("expected retry rating to be accepted")
	}
	s.ResolveRate(sub, nil)
	if s.Stats().Reviewed != 1 {
		t.Errorf("Reviewed = %d, want 1 after retry", s.Stats().Reviewed)
	}
	if s.Err() != nil {
		t.Error("expected error cleared after successful retry")
	}
}

func TestRate_SingleInFlight(t *testing.T) {
	s, _ := newTestSession(2)
	s.Flip()
	if _, ok := s.BeginRate(3); !ok {
		t.Fatal("first rating rejected")
	}
	if _, ok := s.BeginRate(3); ok {
		t.Error("expected second rating to be rejected while in flight")
	}
}

func TestAccuracy_ZeroReviews(t *testing.T) {
	var stats Stats
	if got := stats.Accuracy(); got != 0 {
		t.Errorf("Accuracy = %d, want 0", got)
	}
}
