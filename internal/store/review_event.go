package store

import (
	"context"
	"fmt"

	"mentora/ent/reviewevent"
)

func (r *eventRepo) AppendReviewEvent(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetCardID(data.CardID).
		SetDeck(data.Deck).
		SetQuality(data.Quality).
		SetCorrect(data.Correct).
		SetResponseTimeSecs(data.ResponseTimeSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}
	return nil
}

func (r *eventRepo) DeckStats(ctx context.Context, deck string) (ReviewStats, error) {
	q := r.client.ReviewEvent.Query()
	if deck != "" {
		q = q.Where(reviewevent.Deck(deck))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return ReviewStats{}, fmt.Errorf("query review events: %w", err)
	}

	var stats ReviewStats
	totalSecs := 0
	for _, row := range rows {
		stats.Reviewed++
		if row.Correct {
			stats.Correct++
		}
		totalSecs += row.ResponseTimeSecs
	}
	if stats.Reviewed > 0 {
		stats.AvgTimeSecs = float64(totalSecs) / float64(stats.Reviewed)
	}
	return stats, nil
}
