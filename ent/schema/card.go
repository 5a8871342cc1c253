package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Card is a single flashcard. Cards are flat rows keyed by deck name
// rather than linked by edges; decks are small and queried as a whole.
type Card struct {
	ent.Schema
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			NotEmpty().
			Unique().
			Comment("Stable UUID, independent of the row ID"),
		field.String("deck").
			NotEmpty(),
		field.Text("front").
			NotEmpty(),
		field.Text("back").
			NotEmpty(),
		field.JSON("tags", []string{}).
			Optional(),
		field.Time("last_reviewed_at").
			Optional().
			Nillable().
			Comment("Unset until the card is rated for the first time"),
		field.Int("review_count").
			Default(0),
	}
}

func (Card) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deck"),
		index.Fields("card_id"),
	}
}
