// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_id", Type: field.TypeString, Unique: true},
		{Name: "deck", Type: field.TypeString},
		{Name: "front", Type: field.TypeString, Size: 2147483647},
		{Name: "back", Type: field.TypeString, Size: 2147483647},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "card_deck",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[2]},
			},
			{
				Name:    "card_card_id",
				Unique:  false,
				Columns: []*schema.Column{CardsColumns[1]},
			},
		},
	}
	// DecksColumns holds the columns for the "decks" table.
	DecksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DecksTable holds the schema information for the "decks" table.
	DecksTable = &schema.Table{
		Name:       "decks",
		Columns:    DecksColumns,
		PrimaryKey: []*schema.Column{DecksColumns[0]},
	}
	// FlowEventsColumns holds the columns for the "flow_events" table.
	FlowEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "flow_id", Type: field.TypeString},
		{Name: "flow", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "step", Type: field.TypeInt, Default: 0},
		{Name: "detail", Type: field.TypeString, Default: ""},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// FlowEventsTable holds the schema information for the "flow_events" table.
	FlowEventsTable = &schema.Table{
		Name:       "flow_events",
		Columns:    FlowEventsColumns,
		PrimaryKey: []*schema.Column{FlowEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "flowevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FlowEventsColumns[1]},
			},
			{
				Name:    "flowevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FlowEventsColumns[2]},
			},
			{
				Name:    "flowevent_flow_id",
				Unique:  false,
				Columns: []*schema.Column{FlowEventsColumns[3]},
			},
			{
				Name:    "flowevent_flow",
				Unique:  false,
				Columns: []*schema.Column{FlowEventsColumns[4]},
			},
			{
				Name:    "flowevent_action",
				Unique:  false,
				Columns: []*schema.Column{FlowEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "card_id", Type: field.TypeString},
		{Name: "deck", Type: field.TypeString, Default: ""},
		{Name: "quality", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_time_secs", Type: field.TypeInt, Default: 0},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_card_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
			{
				Name:    "reviewevent_deck",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CardsTable,
		DecksTable,
		FlowEventsTable,
		LlmRequestEventsTable,
		ReviewEventsTable,
	}
)

func init() {
}
