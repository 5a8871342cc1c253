// Package tutorgen is the local backend. When no remote API is
// configured, roadmaps, course outlines and flashcard decks are
// generated directly through the LLM provider and decks are kept in
// the local store.
package tutorgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mentora/internal/api"
	"mentora/internal/llm"
	"mentora/internal/store"
)

// Config bounds LLM generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation settings tuned for outline-sized output.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Service implements api.Backend against a local LLM provider and store.
type Service struct {
	provider llm.Provider
	cards    store.CardRepo
	cfg      Config
	logger   *zap.Logger

	now func() time.Time
}

// NewService creates the local backend.
func NewService(provider llm.Provider, cards store.CardRepo, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: provider,
		cards:    cards,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *Service) GenerateRoadmap(ctx context.Context, req api.RoadmapRequest) (*api.Roadmap, error) {
	ctx = llm.WithPurpose(ctx, "roadmap")

	var out struct {
		Title      string `json:"title"`
		Milestones []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Weeks       int    `json:"weeks"`
		} `json:"milestones"`
	}
	err := s.generate(ctx, roadmapSystemPrompt, buildRoadmapUserMessage(req), RoadmapSchema, &out)
	if err != nil {
		return nil, err
	}

	roadmap := &api.Roadmap{
		ID:    uuid.NewString(),
		Title: out.Title,
	}
	for _, m := range out.Milestones {
		roadmap.Milestones = append(roadmap.Milestones, api.Milestone{
			Title:       m.Title,
			Description: m.Description,
			Weeks:       m.Weeks,
		})
	}
	return roadmap, nil
}

// CheckSimilar matches the prompt against locally saved decks by name.
// There is no shared catalog locally, so most prompts find nothing and
// the wizard proceeds straight to preview.
func (s *Service) CheckSimilar(ctx context.Context, prompt string, level api.ExperienceLevel) ([]api.SimilarCourse, error) {
	decks, err := s.cards.Decks(ctx)
	if err != nil {
		return nil, api.NewError(api.KindServer, "Could not read local decks.", err)
	}

	var matches []api.SimilarCourse
	needle := strings.ToLower(prompt)
	for _, d := range decks {
		if strings.Contains(needle, strings.ToLower(d)) || strings.Contains(strings.ToLower(d), needle) {
			matches = append(matches, api.SimilarCourse{
				ID:    d,
				Title: d,
				Level: level,
			})
		}
	}
	return matches, nil
}

func (s *Service) GeneratePreview(ctx context.Context, req api.PreviewRequest) (*api.CoursePreview, error) {
	ctx = llm.WithPurpose(ctx, "course-preview")

	var out struct {
		Title          string   `json:"title"`
		Description    string   `json:"description"`
		ModuleTitles   []string `json:"module_titles"`
		EstimatedHours int      `json:"estimated_hours"`
	}
	err := s.generate(ctx, previewSystemPrompt, buildPreviewUserMessage(req), PreviewSchema, &out)
	if err != nil {
		return nil, err
	}

	return &api.CoursePreview{
		Title:             out.Title,
		Description:       out.Description,
		ModuleTitles:      out.ModuleTitles,
		EstimatedDuration: fmt.Sprintf("%d hours", out.EstimatedHours),
	}, nil
}

// GenerateFull builds the course outline, then a flashcard deck for it,
// and saves the deck locally so it can be reviewed immediately.
func (s *Service) GenerateFull(ctx context.Context, req api.GenerateRequest) (*api.Course, error) {
	preview, err := s.GeneratePreview(ctx, api.PreviewRequest{
		Prompt:     req.Prompt,
		Level:      req.Level,
		NumModules: req.NumModules,
	})
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "deck-gen")
	var out struct {
		Cards []struct {
			Front string   `json:"front"`
			Back  string   `json:"back"`
			Tags  []string `json:"tags"`
		} `json:"cards"`
	}
	err = s.generate(ctx, deckSystemPrompt, buildDeckUserMessage(preview.Title, preview.Description, preview.ModuleTitles), DeckSchema, &out)
	if err != nil {
		return nil, err
	}

	cards := make([]store.CardData, 0, len(out.Cards))
	for _, c := range out.Cards {
		cards = append(cards, store.CardData{
			ID:    uuid.NewString(),
			Front: c.Front,
			Back:  c.Back,
			Tags:  c.Tags,
		})
	}
	if err := s.cards.SaveDeck(ctx, preview.Title, preview.Description, cards); err != nil {
		return nil, api.NewError(api.KindServer, "Could not save the generated deck.", err)
	}

	s.logger.Info("generated course",
		zap.String("title", preview.Title),
		zap.Int("modules", len(preview.ModuleTitles)),
		zap.Int("cards", len(cards)))

	return &api.Course{
		ID:          preview.Title,
		Title:       preview.Title,
		Description: preview.Description,
		Stats: api.CourseStats{
			Modules:   len(preview.ModuleTitles),
			Lessons:   len(preview.ModuleTitles) * req.LessonsPerModule,
			Exercises: len(cards),
		},
	}, nil
}

// Publish is a no-op locally. There is no catalog to publish to.
func (s *Service) Publish(ctx context.Context, courseID string) error {
	return nil
}

// Enroll is a no-op locally. Generated courses are already available.
func (s *Service) Enroll(ctx context.Context, courseID string) error {
	return nil
}

func (s *Service) GetDueCards(ctx context.Context, deck string, limit int) ([]api.Card, error) {
	rows, err := s.cards.DueCards(ctx, deck, limit)
	if err != nil {
		return nil, api.NewError(api.KindServer, "Could not load due cards.", err)
	}
	cards := make([]api.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, api.Card{
			ID:    row.ID,
			Deck:  row.Deck,
			Front: row.Front,
			Back:  row.Back,
			Tags:  row.Tags,
		})
	}
	return cards, nil
}

// ReviewCard stamps the card as reviewed. Scheduling locally is
// least-recently-reviewed ordering, so the stamp is all the scheduler
// needs. The caller owns the review event log.
func (s *Service) ReviewCard(ctx context.Context, sub api.ReviewSubmission) error {
	if sub.Quality < api.QualityMin || sub.Quality > api.QualityMax {
		return api.NewError(api.KindValidation, "Rating must be between 0 and 4.", nil)
	}

	if err := s.cards.MarkReviewed(ctx, sub.CardID, s.now().UTC()); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return api.NewError(api.KindNotFound, "Card not found.", err)
		}
		return api.NewError(api.KindServer, "Could not record the review.", err)
	}
	return nil
}

// generate runs one structured-output request and decodes it into out.
func (s *Service) generate(ctx context.Context, system, user string, schema *llm.Schema, out any) error {
	if s.provider == nil {
		return api.NewError(api.KindServer,
			"No AI provider configured. Set MENTORA_LLM_PROVIDER and an API key.", nil)
	}

	req := llm.Request{
		System:      system,
		Prompt:      user,
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return api.NewError(api.KindServer, "Generation failed. Please try again.", err)
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return api.NewError(api.KindServer, "Generation returned an unreadable response.", err)
	}
	return nil
}
