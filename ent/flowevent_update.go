// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mentora/ent/flowevent"
	"mentora/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FlowEventUpdate is the builder for updating FlowEvent entities.
type FlowEventUpdate struct {
	config
	hooks    []Hook
	mutation *FlowEventMutation
}

// Where appends a list predicates to the FlowEventUpdate builder.
func (_u *FlowEventUpdate) Where(ps ...predicate.FlowEvent) *FlowEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFlowID sets the "flow_id" field.
func (_u *FlowEventUpdate) SetFlowID(v string) *FlowEventUpdate {
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *FlowEventUpdate) SetNillableFlowID(v *string) *FlowEventUpdate {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// SetFlow sets the "flow" field.
func (_u *FlowEventUpdate) SetFlow(v string) *FlowEventUpdate {
	_u.mutation.SetFlow(v)
	return _u
}

// SetNillableFlow sets the "flow" field if the given value is not nil.
func (_u *FlowEventUpdate) SetNillableFlow(v *string) *FlowEventUpdate {
	if v != nil {
		_u.SetFlow(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *FlowEventUpdate) SetAction(v string) *FlowEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *FlowEventUpdate) SetNillableAction(v *string) *FlowEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *FlowEventUpdate) SetStep(v int) *FlowEventUpdate {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *FlowEventUpdate) SetNillableStep(v *int) *FlowEventUpdate {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *FlowEventUpdate) AddStep(v int) *FlowEventUpdate {
	_u.mutation.AddStep(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *FlowEventUpdate) SetDetail(v string) *FlowEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *FlowEventUpdate) SetNillableDetail(v *string) *FlowEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *FlowEventUpdate) SetDurationSecs(v int) *FlowEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *FlowEventUpdate) SetNillableDurationSecs(v *int) *FlowEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *FlowEventUpdate) AddDurationSecs(v int) *FlowEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the FlowEventMutation object of the builder.
func (_u *FlowEventUpdate) Mutation() *FlowEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlowEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlowEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowEventUpdate) check() error {
	if v, ok := _u.mutation.FlowID(); ok {
		if err := flowevent.FlowIDValidator(v); err != nil {
			return &ValidationError{Name: "flow_id", err: fmt.Errorf(`ent: validator failed for field "FlowEvent.flow_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Flow(); ok {
		if err := flowevent.FlowValidator(v); err != nil {
			return &ValidationError{Name: "flow", err: fmt.Errorf(`ent: validator failed for field "FlowEvent.flow": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := flowevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "FlowEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *FlowEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowevent.Table, flowevent.Columns, sqlgraph.NewFieldSpec(flowevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FlowID(); ok {
		_spec.SetField(flowevent.FieldFlowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Flow(); ok {
		_spec.SetField(flowevent.FieldFlow, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(flowevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(flowevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(flowevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(flowevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(flowevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(flowevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlowEventUpdateOne is the builder for updating a single FlowEvent entity.
type FlowEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlowEventMutation
}

// SetFlowID sets the "flow_id" field.
func (_u *FlowEventUpdateOne) SetFlowID(v string) *FlowEventUpdateOne {
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *FlowEventUpdateOne) SetNillableFlowID(v *string) *FlowEventUpdateOne {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// SetFlow sets the "flow" field.
func (_u *FlowEventUpdateOne) SetFlow(v string) *FlowEventUpdateOne {
	_u.mutation.SetFlow(v)
	return _u
}

// SetNillableFlow sets the "flow" field if the given value is not nil.
func (_u *FlowEventUpdateOne) SetNillableFlow(v *string) *FlowEventUpdateOne {
	if v != nil {
		_u.SetFlow(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *FlowEventUpdateOne) SetAction(v string) *FlowEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *FlowEventUpdateOne) SetNillableAction(v *string) *FlowEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStep sets the "step" field.
func (_u *FlowEventUpdateOne) SetStep(v int) *FlowEventUpdateOne {
	_u.mutation.ResetStep()
	_u.mutation.SetStep(v)
	return _u
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_u *FlowEventUpdateOne) SetNillableStep(v *int) *FlowEventUpdateOne {
	if v != nil {
		_u.SetStep(*v)
	}
	return _u
}

// AddStep adds value to the "step" field.
func (_u *FlowEventUpdateOne) AddStep(v int) *FlowEventUpdateOne {
	_u.mutation.AddStep(v)
	return _u
}

// SetDetail sets the "detail" field.
func (_u *FlowEventUpdateOne) SetDetail(v string) *FlowEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *FlowEventUpdateOne) SetNillableDetail(v *string) *FlowEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *FlowEventUpdateOne) SetDurationSecs(v int) *FlowEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *FlowEventUpdateOne) SetNillableDurationSecs(v *int) *FlowEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *FlowEventUpdateOne) AddDurationSecs(v int) *FlowEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the FlowEventMutation object of the builder.
func (_u *FlowEventUpdateOne) Mutation() *FlowEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FlowEventUpdate builder.
func (_u *FlowEventUpdateOne) Where(ps ...predicate.FlowEvent) *FlowEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlowEventUpdateOne) Select(field string, fields ...string) *FlowEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FlowEvent entity.
func (_u *FlowEventUpdateOne) Save(ctx context.Context) (*FlowEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlowEventUpdateOne) SaveX(ctx context.Context) *FlowEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlowEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlowEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlowEventUpdateOne) check() error {
	if v, ok := _u.mutation.FlowID(); ok {
		if err := flowevent.FlowIDValidator(v); err != nil {
			return &ValidationError{Name: "flow_id", err: fmt.Errorf(`ent: validator failed for field "FlowEvent.flow_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Flow(); ok {
		if err := flowevent.FlowValidator(v); err != nil {
			return &ValidationError{Name: "flow", err: fmt.Errorf(`ent: validator failed for field "FlowEvent.flow": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := flowevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "FlowEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *FlowEventUpdateOne) sqlSave(ctx context.Context) (_node *FlowEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flowevent.Table, flowevent.Columns, sqlgraph.NewFieldSpec(flowevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FlowEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flowevent.FieldID)
		for _, f := range fields {
			if !flowevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flowevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FlowID(); ok {
		_spec.SetField(flowevent.FieldFlowID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Flow(); ok {
		_spec.SetField(flowevent.FieldFlow, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(flowevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Step(); ok {
		_spec.SetField(flowevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStep(); ok {
		_spec.AddField(flowevent.FieldStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(flowevent.FieldDetail, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(flowevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(flowevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &FlowEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flowevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
