package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendFlowEvent(ctx, FlowEventData{
		FlowID: "f1", Flow: "roadmap", Action: "start", Step: 1,
	})
	if err != nil {
		t.Fatalf("append flow event: %v", err)
	}
	err = repo.AppendReviewEvent(ctx, ReviewEventData{
		SessionID: "r1", CardID: "c1", Deck: "algebra", Quality: 4, Correct: true,
	})
	if err != nil {
		t.Fatalf("append review event: %v", err)
	}
	err = repo.AppendFlowEvent(ctx, FlowEventData{
		FlowID: "f1", Flow: "roadmap", Action: "succeed", Step: 3, DurationSecs: 40,
	})
	if err != nil {
		t.Fatalf("append flow event: %v", err)
	}

	events, err := repo.RecentFlowEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent flow events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d flow events, want 2", len(events))
	}
	// Descending order, and the review event consumed sequence 2.
	if events[0].Action != "succeed" || events[1].Action != "start" {
		t.Errorf("wrong order: %s, %s", events[0].Action, events[1].Action)
	}
	if events[0].Sequence != 3 || events[1].Sequence != 1 {
		t.Errorf("sequences = %d, %d, want 3, 1", events[0].Sequence, events[1].Sequence)
	}
}

func TestRecentFlowEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendFlowEvent(ctx, FlowEventData{
			FlowID: "f1", Flow: "course", Action: "advance", Step: i + 1,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.RecentFlowEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent flow events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Step != 5 {
		t.Errorf("first event step = %d, want 5", events[0].Step)
	}
}

func TestDeckStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ratings := []ReviewEventData{
		{SessionID: "r1", CardID: "c1", Deck: "algebra", Quality: 4, Correct: true, ResponseTimeSecs: 4},
		{SessionID: "r1", CardID: "c2", Deck: "algebra", Quality: 1, Correct: false, ResponseTimeSecs: 8},
		{SessionID: "r2", CardID: "c3", Deck: "calculus", Quality: 3, Correct: true, ResponseTimeSecs: 6},
	}
	for _, rd := range ratings {
		if err := repo.AppendReviewEvent(ctx, rd); err != nil {
			t.Fatalf("append review event: %v", err)
		}
	}

	stats, err := repo.DeckStats(ctx, "algebra")
	if err != nil {
		t.Fatalf("deck stats: %v", err)
	}
	if stats.Reviewed != 2 || stats.Correct != 1 {
		t.Errorf("algebra stats = %+v, want Reviewed=2 Correct=1", stats)
	}
	if stats.AvgTimeSecs != 6 {
		t.Errorf("algebra avg time = %v, want 6", stats.AvgTimeSecs)
	}

	all, err := repo.DeckStats(ctx, "")
	if err != nil {
		t.Fatalf("all stats: %v", err)
	}
	if all.Reviewed != 3 || all.Correct != 2 {
		t.Errorf("all stats = %+v, want Reviewed=3 Correct=2", all)
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "roadmap", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "course-preview", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "deck-gen", InputTokens: 300, OutputTokens: 120, Success: false, ErrorMessage: "timeout"},
	}
	for _, rd := range requests {
		if err := repo.AppendLLMRequest(ctx, rd); err != nil {
			t.Fatalf("append LLM request: %v", err)
		}
	}

	usage, err := repo.Usage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d usage rows, want 2", len(usage))
	}
	if usage[0].Model != "claude-haiku" || usage[0].Requests != 2 || usage[0].InputTokens != 300 {
		t.Errorf("claude usage = %+v", usage[0])
	}
	if usage[1].Model != "gpt-4o-mini" || usage[1].OutputTokens != 120 {
		t.Errorf("openai usage = %+v", usage[1])
	}
}

func TestCardRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	cards := []CardData{
		{ID: "c1", Front: "What is a derivative?", Back: "Rate of change", Tags: []string{"calculus"}},
		{ID: "c2", Front: "What is an integral?", Back: "Accumulated change"},
	}
	if err := repo.SaveDeck(ctx, "calculus", "Calc fundamentals", cards); err != nil {
		t.Fatalf("save deck: %v", err)
	}

	decks, err := repo.Decks(ctx)
	if err != nil {
		t.Fatalf("decks: %v", err)
	}
	if len(decks) != 1 || decks[0] != "calculus" {
		t.Fatalf("decks = %v, want [calculus]", decks)
	}

	due, err := repo.DueCards(ctx, "calculus", 10)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d due cards, want 2", len(due))
	}
}

func TestDueCardsOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	cards := []CardData{
		{ID: "c1", Front: "q1", Back: "a1"},
		{ID: "c2", Front: "q2", Back: "a2"},
		{ID: "c3", Front: "q3", Back: "a3"},
	}
	if err := repo.SaveDeck(ctx, "algebra", "", cards); err != nil {
		t.Fatalf("save deck: %v", err)
	}

	// Review c1 recently and c3 a while ago; c2 stays unreviewed.
	now := time.Now().UTC()
	if err := repo.MarkReviewed(ctx, "c3", now.Add(-time.Hour)); err != nil {
		t.Fatalf("mark c3: %v", err)
	}
	if err := repo.MarkReviewed(ctx, "c1", now); err != nil {
		t.Fatalf("mark c1: %v", err)
	}

	due, err := repo.DueCards(ctx, "algebra", 10)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	got := []string{due[0].ID, due[1].ID, due[2].ID}
	want := []string{"c2", "c3", "c1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if due[1].ReviewCount != 1 {
		t.Errorf("c3 review count = %d, want 1", due[1].ReviewCount)
	}
}

func TestMarkReviewedUnknownCard(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	err := repo.MarkReviewed(ctx, "nope", time.Now())
	if err == nil {
		t.Fatal("expected error for unknown card")
	}
	if !errors.Is(err, ErrCardNotFound) {
		t.Errorf("err = %v, want ErrCardNotFound", err)
	}
}

func TestDueCardsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.CardRepo()
	ctx := context.Background()

	var cards []CardData
	for _, id := range []string{"c1", "c2", "c3", "c4"} {
		cards = append(cards, CardData{ID: id, Front: "q " + id, Back: "a " + id})
	}
	if err := repo.SaveDeck(ctx, "geometry", "", cards); err != nil {
		t.Fatalf("save deck: %v", err)
	}

	due, err := repo.DueCards(ctx, "geometry", 2)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d cards, want 2", len(due))
	}
}
