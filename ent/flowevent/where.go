// Code generated by ent, DO NOT EDIT.

package flowevent

import (
	"mentora/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldTimestamp, v))
}

// FlowID applies equality check predicate on the "flow_id" field. It's identical to FlowIDEQ.
func FlowID(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldFlowID, v))
}

// Flow applies equality check predicate on the "flow" field. It's identical to FlowEQ.
func Flow(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldFlow, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldAction, v))
}

// Step applies equality check predicate on the "step" field. It's identical to StepEQ.
func Step(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldStep, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldDetail, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLTE(FieldTimestamp, v))
}

// FlowIDEQ applies the EQ predicate on the "flow_id" field.
func FlowIDEQ(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldFlowID, v))
}

// FlowIDNEQ applies the NEQ predicate on the "flow_id" field.
func FlowIDNEQ(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNEQ(FieldFlowID, v))
}

// FlowIDIn applies the In predicate on the "flow_id" field.
func FlowIDIn(vs ...string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldIn(FieldFlowID, vs...))
}

// FlowIDNotIn applies the NotIn predicate on the "flow_id" field.
func FlowIDNotIn(vs ...string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNotIn(FieldFlowID, vs...))
}

// FlowIDGT applies the GT predicate on the "flow_id" field.
func FlowIDGT(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGT(FieldFlowID, v))
}

// FlowIDGTE applies the GTE predicate on the "flow_id" field.
func FlowIDGTE(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGTE(FieldFlowID, v))
}

// FlowIDLT applies the LT predicate on the "flow_id" field.
func FlowIDLT(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLT(FieldFlowID, v))
}

// FlowIDLTE applies the LTE predicate on the "flow_id" field.
func FlowIDLTE(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLTE(FieldFlowID, v))
}

// FlowIDContains applies the Contains predicate on the "flow_id" field.
func FlowIDContains(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldContains(FieldFlowID, v))
}

// FlowIDHasPrefix applies the HasPrefix predicate on the "flow_id" field.
func FlowIDHasPrefix(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldHasPrefix(FieldFlowID, v))
}

// FlowIDHasSuffix applies the HasSuffix predicate on the "flow_id" field.
func FlowIDHasSuffix(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldHasSuffix(FieldFlowID, v))
}

// FlowIDEqualFold applies the EqualFold predicate on the "flow_id" field.
func FlowIDEqualFold(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEqualFold(FieldFlowID, v))
}

// FlowIDContainsFold applies the ContainsFold predicate on the "flow_id" field.
func FlowIDContainsFold(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldContainsFold(FieldFlowID, v))
}

// FlowEQ applies the EQ predicate on the "flow" field.
func FlowEQ(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldFlow, v))
}

// FlowNEQ applies the NEQ predicate on the "flow" field.
func FlowNEQ(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNEQ(FieldFlow, v))
}

// FlowIn applies the In predicate on the "flow" field.
func FlowIn(vs ...string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldIn(FieldFlow, vs...))
}

// FlowNotIn applies the NotIn predicate on the "flow" field.
func FlowNotIn(vs ...string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNotIn(FieldFlow, vs...))
}

// FlowGT applies the GT predicate on the "flow" field.
func FlowGT(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGT(FieldFlow, v))
}

// FlowGTE applies the GTE predicate on the "flow" field.
func FlowGTE(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGTE(FieldFlow, v))
}

// FlowLT applies the LT predicate on the "flow" field.
func FlowLT(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLT(FieldFlow, v))
}

// FlowLTE applies the LTE predicate on the "flow" field.
func FlowLTE(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLTE(FieldFlow, v))
}

// FlowContains applies the Contains predicate on the "flow" field.
func FlowContains(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldContains(FieldFlow, v))
}

// FlowHasPrefix applies the HasPrefix predicate on the "flow" field.
func FlowHasPrefix(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldHasPrefix(FieldFlow, v))
}

// FlowHasSuffix applies the HasSuffix predicate on the "flow" field.
func FlowHasSuffix(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldHasSuffix(FieldFlow, v))
}

// FlowEqualFold applies the EqualFold predicate on the "flow" field.
func FlowEqualFold(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEqualFold(FieldFlow, v))
}

// FlowContainsFold applies the ContainsFold predicate on the "flow" field.
func FlowContainsFold(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldContainsFold(FieldFlow, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldContainsFold(FieldAction, v))
}

// StepEQ applies the EQ predicate on the "step" field.
func StepEQ(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldStep, v))
}

// StepNEQ applies the NEQ predicate on the "step" field.
func StepNEQ(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNEQ(FieldStep, v))
}

// StepIn applies the In predicate on the "step" field.
func StepIn(vs ...int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldIn(FieldStep, vs...))
}

// StepNotIn applies the NotIn predicate on the "step" field.
func StepNotIn(vs ...int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNotIn(FieldStep, vs...))
}

// StepGT applies the GT predicate on the "step" field.
func StepGT(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGT(FieldStep, v))
}

// StepGTE applies the GTE predicate on the "step" field.
func StepGTE(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGTE(FieldStep, v))
}

// StepLT applies the LT predicate on the "step" field.
func StepLT(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLT(FieldStep, v))
}

// StepLTE applies the LTE predicate on the "step" field.
func StepLTE(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLTE(FieldStep, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldContainsFold(FieldDetail, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.FlowEvent {
	return predicate.FlowEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FlowEvent) predicate.FlowEvent {
	return predicate.FlowEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FlowEvent) predicate.FlowEvent {
	return predicate.FlowEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FlowEvent) predicate.FlowEvent {
	return predicate.FlowEvent(sql.NotPredicates(p))
}
