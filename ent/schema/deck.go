package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Deck groups flashcards generated for a course.
type Deck struct {
	ent.Schema
}

func (Deck) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("description").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
