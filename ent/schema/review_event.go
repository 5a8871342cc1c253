package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single flashcard rating during a review session.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping ratings in a review session"),
		field.String("card_id").
			NotEmpty(),
		field.String("deck").
			Default("").
			Comment("Deck the card belongs to"),
		field.Int("quality").
			Comment("Recall quality on the 0-4 scale"),
		field.Bool("correct").
			Comment("Whether the rating counts as a successful recall"),
		field.Int("response_time_secs").
			Default(0).
			Comment("Seconds between the card being shown and the rating"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("card_id"),
		index.Fields("deck"),
	}
}
