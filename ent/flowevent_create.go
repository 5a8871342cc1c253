// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mentora/ent/flowevent"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FlowEventCreate is the builder for creating a FlowEvent entity.
type FlowEventCreate struct {
	config
	mutation *FlowEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *FlowEventCreate) SetSequence(v int64) *FlowEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *FlowEventCreate) SetTimestamp(v time.Time) *FlowEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *FlowEventCreate) SetNillableTimestamp(v *time.Time) *FlowEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetFlowID sets the "flow_id" field.
func (_c *FlowEventCreate) SetFlowID(v string) *FlowEventCreate {
	_c.mutation.SetFlowID(v)
	return _c
}

// SetFlow sets the "flow" field.
func (_c *FlowEventCreate) SetFlow(v string) *FlowEventCreate {
	_c.mutation.SetFlow(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *FlowEventCreate) SetAction(v string) *FlowEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetStep sets the "step" field.
func (_c *FlowEventCreate) SetStep(v int) *FlowEventCreate {
	_c.mutation.SetStep(v)
	return _c
}

// SetNillableStep sets the "step" field if the given value is not nil.
func (_c *FlowEventCreate) SetNillableStep(v *int) *FlowEventCreate {
	if v != nil {
		_c.SetStep(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *FlowEventCreate) SetDetail(v string) *FlowEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *FlowEventCreate) SetNillableDetail(v *string) *FlowEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *FlowEventCreate) SetDurationSecs(v int) *FlowEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *FlowEventCreate) SetNillableDurationSecs(v *int) *FlowEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the FlowEventMutation object of the builder.
func (_c *FlowEventCreate) Mutation() *FlowEventMutation {
	return _c.mutation
}

// Save creates the FlowEvent in the database.
func (_c *FlowEventCreate) Save(ctx context.Context) (*FlowEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlowEventCreate) SaveX(ctx context.Context) *FlowEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlowEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := flowevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Step(); !ok {
		v := flowevent.DefaultStep
		_c.mutation.SetStep(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := flowevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := flowevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlowEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "FlowEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "FlowEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.FlowID(); !ok {
		return &ValidationError{Name: "flow_id", err: errors.New(`ent: missing required field "FlowEvent.flow_id"`)}
	}
	if v, ok := _c.mutation.FlowID(); ok {
		if err := flowevent.FlowIDValidator(v); err != nil {
			return &ValidationError{Name: "flow_id", err: fmt.Errorf(`ent: validator failed for field "FlowEvent.flow_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Flow(); !ok {
		return &ValidationError{Name: "flow", err: errors.New(`ent: missing required field "FlowEvent.flow"`)}
	}
	if v, ok := _c.mutation.Flow(); ok {
		if err := flowevent.FlowValidator(v); err != nil {
			return &ValidationError{Name: "flow", err: fmt.Errorf(`ent: validator failed for field "FlowEvent.flow": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "FlowEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := flowevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "FlowEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Step(); !ok {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required field "FlowEvent.step"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "FlowEvent.detail"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "FlowEvent.duration_secs"`)}
	}
	return nil
}

func (_c *FlowEventCreate) sqlSave(ctx context.Context) (*FlowEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FlowEventCreate) createSpec() (*FlowEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FlowEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flowevent.Table, sqlgraph.NewFieldSpec(flowevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(flowevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(flowevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.FlowID(); ok {
		_spec.SetField(flowevent.FieldFlowID, field.TypeString, value)
		_node.FlowID = value
	}
	if value, ok := _c.mutation.Flow(); ok {
		_spec.SetField(flowevent.FieldFlow, field.TypeString, value)
		_node.Flow = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(flowevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Step(); ok {
		_spec.SetField(flowevent.FieldStep, field.TypeInt, value)
		_node.Step = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(flowevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(flowevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// FlowEventCreateBulk is the builder for creating many FlowEvent entities in bulk.
type FlowEventCreateBulk struct {
	config
	err      error
	builders []*FlowEventCreate
}

// Save creates the FlowEvent entities in the database.
func (_c *FlowEventCreateBulk) Save(ctx context.Context) ([]*FlowEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FlowEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlowEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FlowEventCreateBulk) SaveX(ctx context.Context) []*FlowEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlowEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlowEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
