package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// FlowEventData captures a single wizard flow event.
type FlowEventData struct {
	FlowID       string
	Flow         string
	Action       string
	Step         int
	Detail       string
	DurationSecs int
}

// FlowEvent is a persisted flow event read back from the log.
type FlowEvent struct {
	Sequence  int64
	Timestamp time.Time
	FlowEventData
}

// ReviewEventData captures a single flashcard rating.
type ReviewEventData struct {
	SessionID        string
	CardID           string
	Deck             string
	Quality          int
	Correct          bool
	ResponseTimeSecs int
}

// ReviewStats aggregates the review event log for a deck
// (or all decks when Deck is empty).
type ReviewStats struct {
	Reviewed    int
	Correct     int
	AvgTimeSecs float64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted LLM request event read back from the log.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token counts per model from the request log.
type LLMUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendFlowEvent records a wizard flow lifecycle event.
	AppendFlowEvent(ctx context.Context, data FlowEventData) error

	// RecentFlowEvents returns flow events ordered by sequence descending.
	RecentFlowEvents(ctx context.Context, opts QueryOpts) ([]FlowEvent, error)

	// AppendReviewEvent records a flashcard rating.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error

	// DeckStats aggregates review events for deck. Empty deck means all.
	DeckStats(ctx context.Context, deck string) (ReviewStats, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns LLM request events ordered by sequence
	// descending.
	RecentLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// Usage aggregates LLM token usage per model.
	Usage(ctx context.Context) ([]LLMUsage, error)
}

// CardData is a flashcard as stored.
type CardData struct {
	ID             string
	Deck           string
	Front          string
	Back           string
	Tags           []string
	LastReviewedAt *time.Time
	ReviewCount    int
}

// CardRepo manages locally generated flashcard decks.
type CardRepo interface {
	// SaveDeck creates the deck if needed and inserts its cards.
	SaveDeck(ctx context.Context, name, description string, cards []CardData) error

	// Decks returns all deck names, oldest first.
	Decks(ctx context.Context) ([]string, error)

	// DueCards returns up to limit cards from deck, least recently
	// reviewed first, never-reviewed cards ahead of all others.
	DueCards(ctx context.Context, deck string, limit int) ([]CardData, error)

	// MarkReviewed stamps the card with now and bumps its review count.
	MarkReviewed(ctx context.Context, cardID string, now time.Time) error
}
