package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FlowEvent records wizard flow lifecycle events: starts, step
// transitions, lookups, submissions and their outcomes.
type FlowEvent struct {
	ent.Schema
}

func (FlowEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FlowEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("flow_id").
			NotEmpty().
			Comment("UUID grouping events in a single wizard run"),
		field.String("flow").
			NotEmpty().
			Comment("Flow definition name: roadmap or course"),
		field.String("action").
			NotEmpty().
			Comment("start, advance, retreat, lookup, submit, restart, succeed, fail"),
		field.Int("step").
			Default(0).
			Comment("1-indexed step the action occurred on"),
		field.String("detail").
			Default("").
			Comment("Action-specific context, e.g. lookup result count or error text"),
		field.Int("duration_secs").
			Default(0).
			Comment("Seconds since the flow started (on succeed/fail only)"),
	}
}

func (FlowEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("flow_id"),
		index.Fields("flow"),
		index.Fields("action"),
	}
}
