// Code generated by ent, DO NOT EDIT.

package flowevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the flowevent type in the database.
	Label = "flow_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldFlowID holds the string denoting the flow_id field in the database.
	FieldFlowID = "flow_id"
	// FieldFlow holds the string denoting the flow field in the database.
	FieldFlow = "flow"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldStep holds the string denoting the step field in the database.
	FieldStep = "step"
	// FieldDetail holds the string denoting the detail field in the database.
	FieldDetail = "detail"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the flowevent in the database.
	Table = "flow_events"
)

// Columns holds all SQL columns for flowevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldFlowID,
	FieldFlow,
	FieldAction,
	FieldStep,
	FieldDetail,
	FieldDurationSecs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// FlowIDValidator is a validator for the "flow_id" field. It is called by the builders before save.
	FlowIDValidator func(string) error
	// FlowValidator is a validator for the "flow" field. It is called by the builders before save.
	FlowValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultStep holds the default value on creation for the "step" field.
	DefaultStep int
	// DefaultDetail holds the default value on creation for the "detail" field.
	DefaultDetail string
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the FlowEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByFlowID orders the results by the flow_id field.
func ByFlowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowID, opts...).ToFunc()
}

// ByFlow orders the results by the flow field.
func ByFlow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlow, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByStep orders the results by the step field.
func ByStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStep, opts...).ToFunc()
}

// ByDetail orders the results by the detail field.
func ByDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetail, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
