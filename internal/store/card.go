package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"mentora/ent"
	"mentora/ent/card"
	"mentora/ent/deck"
)

// ErrCardNotFound is returned by MarkReviewed when no card matches the
// given ID. Callers use it to tell a missing card from a storage failure.
var ErrCardNotFound = errors.New("card not found")

// cardRepo implements CardRepo using the ent client.
type cardRepo struct {
	client *ent.Client
}

func (r *cardRepo) SaveDeck(ctx context.Context, name, description string, cards []CardData) error {
	existing, err := r.client.Deck.Query().
		Where(deck.Name(name)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check deck: %w", err)
	}
	if !existing {
		_, err = r.client.Deck.Create().
			SetName(name).
			SetDescription(description).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create deck: %w", err)
		}
	}

	for _, c := range cards {
		builder := r.client.Card.Create().
			SetCardID(c.ID).
			SetDeck(name).
			SetFront(c.Front).
			SetBack(c.Back)
		if len(c.Tags) > 0 {
			builder = builder.SetTags(c.Tags)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create card: %w", err)
		}
	}
	return nil
}

func (r *cardRepo) Decks(ctx context.Context) ([]string, error) {
	rows, err := r.client.Deck.Query().
		Order(ent.Asc(deck.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query decks: %w", err)
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	return names, nil
}

func (r *cardRepo) DueCards(ctx context.Context, deckName string, limit int) ([]CardData, error) {
	q := r.client.Card.Query()
	if deckName != "" {
		q = q.Where(card.Deck(deckName))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}

	// Least recently reviewed first; cards never reviewed come before all.
	sortCards(rows)

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	cards := make([]CardData, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, CardData{
			ID:             row.CardID,
			Deck:           row.Deck,
			Front:          row.Front,
			Back:           row.Back,
			Tags:           row.Tags,
			LastReviewedAt: row.LastReviewedAt,
			ReviewCount:    row.ReviewCount,
		})
	}
	return cards, nil
}

func (r *cardRepo) MarkReviewed(ctx context.Context, cardID string, now time.Time) error {
	n, err := r.client.Card.Update().
		Where(card.CardID(cardID)).
		SetLastReviewedAt(now).
		AddReviewCount(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark reviewed: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("card %s: %w", cardID, ErrCardNotFound)
	}
	return nil
}

func sortCards(rows []*ent.Card) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.LastReviewedAt == nil && b.LastReviewedAt == nil:
			return a.ID < b.ID
		case a.LastReviewedAt == nil:
			return true
		case b.LastReviewedAt == nil:
			return false
		default:
			return a.LastReviewedAt.Before(*b.LastReviewedAt)
		}
	})
}
