package tutorgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mentora/internal/api"
	"mentora/internal/llm"
	"mentora/internal/store"
)

func testService(t *testing.T, responses ...llm.MockResponse) (*Service, *llm.MockProvider) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	mock := llm.NewMockProvider(responses...)
	svc := NewService(mock, s.CardRepo(), DefaultConfig(), nil)
	return svc, mock
}

func TestGenerateRoadmap(t *testing.T) {
	content := `{"title":"Path to Backend Go","milestones":[` +
		`{"title":"Go syntax","description":"Write small programs.","weeks":2},` +
		`{"title":"Concurrency","description":"Use goroutines and channels.","weeks":3}]}`
	svc, mock := testService(t, llm.MockResponse{Content: json.RawMessage(content)})

	roadmap, err := svc.GenerateRoadmap(context.Background(), api.RoadmapRequest{
		Goal: "become a backend Go developer", Level: api.LevelBeginner, HoursPerWeek: 5,
	})
	if err != nil {
		t.Fatalf("generate roadmap: %v", err)
	}
	if roadmap.Title != "Path to Backend Go" {
		t.Errorf("title = %q", roadmap.Title)
	}
	if len(roadmap.Milestones) != 2 || roadmap.Milestones[1].Weeks != 3 {
		t.Errorf("milestones = %+v", roadmap.Milestones)
	}
	if roadmap.ID == "" {
		t.Error("expected a generated roadmap ID")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].Schema != RoadmapSchema {
		t.Error("roadmap schema not attached to request")
	}
}

func TestGenerateRoadmapProviderError(t *testing.T) {
	svc, _ := testService(t, llm.MockResponse{Err: errors.New("rate limited")})

	_, err := svc.GenerateRoadmap(context.Background(), api.RoadmapRequest{Goal: "g"})
	if err == nil {
		t.Fatal("expected error")
	}
	if api.KindOf(err) != api.KindServer {
		t.Errorf("kind = %v, want KindServer", api.KindOf(err))
	}
}

func TestCheckSimilarEmptyWithNoDecks(t *testing.T) {
	svc, _ := testService(t)

	matches, err := svc.CheckSimilar(context.Background(), "rust for embedded", api.LevelIntermediate)
	if err != nil {
		t.Fatalf("check similar: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestGenerateFullSavesDeck(t *testing.T) {
	preview := `{"title":"Intro to SQL","description":"Query databases.","module_titles":["SELECT basics","JOINs"],"estimated_hours":8}`
	deck := `{"cards":[` +
		`{"front":"What does SELECT do?","back":"Reads rows","tags":["basics"]},` +
		`{"front":"What is an INNER JOIN?","back":"Rows matching in both tables","tags":[]}]}`
	svc, _ := testService(t,
		llm.MockResponse{Content: json.RawMessage(preview)},
		llm.MockResponse{Content: json.RawMessage(deck)},
	)

	course, err := svc.GenerateFull(context.Background(), api.GenerateRequest{
		Prompt: "sql", Level: api.LevelBeginner, NumModules: 2, LessonsPerModule: 4,
	})
	if err != nil {
		t.Fatalf("generate full: %v", err)
	}
	if course.Title != "Intro to SQL" {
		t.Errorf("title = %q", course.Title)
	}
	if course.Stats.Modules != 2 || course.Stats.Lessons != 8 || course.Stats.Exercises != 2 {
		t.Errorf("stats = %+v", course.Stats)
	}

	due, err := svc.GetDueCards(context.Background(), "Intro to SQL", 10)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d cards, want 2", len(due))
	}
	if due[0].Deck != "Intro to SQL" {
		t.Errorf("deck = %q", due[0].Deck)
	}
}

func TestCheckSimilarFindsSavedDeck(t *testing.T) {
	preview := `{"title":"Intro to SQL","description":"Query databases.","module_titles":["SELECT basics"],"estimated_hours":4}`
	deck := `{"cards":[{"front":"f","back":"b","tags":[]}]}`
	svc, _ := testService(t,
		llm.MockResponse{Content: json.RawMessage(preview)},
		llm.MockResponse{Content: json.RawMessage(deck)},
	)

	_, err := svc.GenerateFull(context.Background(), api.GenerateRequest{Prompt: "sql", NumModules: 1, LessonsPerModule: 1})
	if err != nil {
		t.Fatalf("generate full: %v", err)
	}

	matches, err := svc.CheckSimilar(context.Background(), "intro to sql and more", api.LevelBeginner)
	if err != nil {
		t.Fatalf("check similar: %v", err)
	}
	if len(matches) != 1 || matches[0].Title != "Intro to SQL" {
		t.Errorf("matches = %+v", matches)
	}
}

func TestReviewCardValidatesQuality(t *testing.T) {
	svc, _ := testService(t)

	err := svc.ReviewCard(context.Background(), api.ReviewSubmission{CardID: "c1", Quality: 5})
	if api.KindOf(err) != api.KindValidation {
		t.Errorf("kind = %v, want KindValidation", api.KindOf(err))
	}
}

func TestReviewCardUnknownCard(t *testing.T) {
	svc, _ := testService(t)

	err := svc.ReviewCard(context.Background(), api.ReviewSubmission{CardID: "missing", Quality: 3})
	if api.KindOf(err) != api.KindNotFound {
		t.Errorf("kind = %v, want KindNotFound", api.KindOf(err))
	}
}

// failingCards stubs a card repo whose MarkReviewed hits a storage error.
type failingCards struct {
	store.CardRepo
	err error
}

func (f failingCards) MarkReviewed(context.Context, string, time.Time) error {
	return f.err
}

func TestReviewCardStorageFailureIsNotNotFound(t *testing.T) {
	svc := NewService(nil, failingCards{err: errors.New("disk I/O error")}, DefaultConfig(), nil)

	err := svc.ReviewCard(context.Background(), api.ReviewSubmission{CardID: "c1", Quality: 3})
	if api.KindOf(err) != api.KindServer {
		t.Errorf("kind = %v, want KindServer for a storage failure", api.KindOf(err))
	}
}

func TestReviewCardStampsAndReorders(t *testing.T) {
	preview := `{"title":"Decks","description":"d","module_titles":["m"],"estimated_hours":1}`
	deck := `{"cards":[{"front":"f1","back":"b1","tags":[]},{"front":"f2","back":"b2","tags":[]}]}`
	svc, _ := testService(t,
		llm.MockResponse{Content: json.RawMessage(preview)},
		llm.MockResponse{Content: json.RawMessage(deck)},
	)

	_, err := svc.GenerateFull(context.Background(), api.GenerateRequest{Prompt: "p", NumModules: 1, LessonsPerModule: 1})
	if err != nil {
		t.Fatalf("generate full: %v", err)
	}

	due, err := svc.GetDueCards(context.Background(), "Decks", 10)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	first := due[0].ID

	if err := svc.ReviewCard(context.Background(), api.ReviewSubmission{CardID: first, Quality: 4, ResponseTimeSecs: 6}); err != nil {
		t.Fatalf("review card: %v", err)
	}

	due, err = svc.GetDueCards(context.Background(), "Decks", 10)
	if err != nil {
		t.Fatalf("due cards: %v", err)
	}
	if due[len(due)-1].ID != first {
		t.Error("reviewed card should sort last")
	}
}
