// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"mentora/ent/flowevent"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// FlowEvent is the model entity for the FlowEvent schema.
type FlowEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID grouping events in a single wizard run
	FlowID string `json:"flow_id,omitempty"`
	// Flow definition name: roadmap or course
	Flow string `json:"flow,omitempty"`
	// start, advance, retreat, lookup, submit, restart, succeed, fail
	Action string `json:"action,omitempty"`
	// 1-indexed step the action occurred on
	Step int `json:"step,omitempty"`
	// Action-specific context, e.g. lookup result count or error text
	Detail string `json:"detail,omitempty"`
	// Seconds since the flow started (on succeed/fail only)
	DurationSecs int `json:"duration_secs,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FlowEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flowevent.FieldID, flowevent.FieldSequence, flowevent.FieldStep, flowevent.FieldDurationSecs:
			values[i] = new(sql.NullInt64)
		case flowevent.FieldFlowID, flowevent.FieldFlow, flowevent.FieldAction, flowevent.FieldDetail:
			values[i] = new(sql.NullString)
		case flowevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FlowEvent fields.
func (_m *FlowEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flowevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case flowevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case flowevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case flowevent.FieldFlowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow_id", values[i])
			} else if value.Valid {
				_m.FlowID = value.String
			}
		case flowevent.FieldFlow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flow", values[i])
			} else if value.Valid {
				_m.Flow = value.String
			}
		case flowevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case flowevent.FieldStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step", values[i])
			} else if value.Valid {
				_m.Step = int(value.Int64)
			}
		case flowevent.FieldDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detail", values[i])
			} else if value.Valid {
				_m.Detail = value.String
			}
		case flowevent.FieldDurationSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_secs", values[i])
			} else if value.Valid {
				_m.DurationSecs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FlowEvent.
// This includes values selected through modifiers, order, etc.
func (_m *FlowEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FlowEvent.
// Note that you need to call FlowEvent.Unwrap() before calling this method if this FlowEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FlowEvent) Update() *FlowEventUpdateOne {
	return NewFlowEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FlowEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FlowEvent) Unwrap() *FlowEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FlowEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FlowEvent) String() string {
	var builder strings.Builder
	builder.WriteString("FlowEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("flow_id=")
	builder.WriteString(_m.FlowID)
	builder.WriteString(", ")
	builder.WriteString("flow=")
	builder.WriteString(_m.Flow)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("step=")
	builder.WriteString(fmt.Sprintf("%v", _m.Step))
	builder.WriteString(", ")
	builder.WriteString("detail=")
	builder.WriteString(_m.Detail)
	builder.WriteString(", ")
	builder.WriteString("duration_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationSecs))
	builder.WriteByte(')')
	return builder.String()
}

// FlowEvents is a parsable slice of FlowEvent.
type FlowEvents []*FlowEvent
