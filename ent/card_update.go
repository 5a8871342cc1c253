// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mentora/ent/card"
	"mentora/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *CardUpdate) SetCardID(v string) *CardUpdate {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCardID(v *string) *CardUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetDeck sets the "deck" field.
func (_u *CardUpdate) SetDeck(v string) *CardUpdate {
	_u.mutation.SetDeck(v)
	return _u
}

// SetNillableDeck sets the "deck" field if the given value is not nil.
func (_u *CardUpdate) SetNillableDeck(v *string) *CardUpdate {
	if v != nil {
		_u.SetDeck(*v)
	}
	return _u
}

// SetFront sets the "front" field.
func (_u *CardUpdate) SetFront(v string) *CardUpdate {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *CardUpdate) SetNillableFront(v *string) *CardUpdate {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *CardUpdate) SetBack(v string) *CardUpdate {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBack(v *string) *CardUpdate {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *CardUpdate) SetTags(v []string) *CardUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CardUpdate) AppendTags(v []string) *CardUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CardUpdate) ClearTags() *CardUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *CardUpdate) SetLastReviewedAt(v time.Time) *CardUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *CardUpdate) SetNillableLastReviewedAt(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *CardUpdate) ClearLastReviewedAt() *CardUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *CardUpdate) SetReviewCount(v int) *CardUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *CardUpdate) SetNillableReviewCount(v *int) *CardUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *CardUpdate) AddReviewCount(v int) *CardUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdate) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := card.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "Card.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Deck(); ok {
		if err := card.DeckValidator(v); err != nil {
			return &ValidationError{Name: "deck", err: fmt.Errorf(`ent: validator failed for field "Card.deck": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Front(); ok {
		if err := card.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Card.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Back(); ok {
		if err := card.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Card.back": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(card.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deck(); ok {
		_spec.SetField(card.FieldDeck, field.TypeString, value)
	}
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(card.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(card.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(card.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(card.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(card.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(card.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(card.FieldReviewCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetCardID sets the "card_id" field.
func (_u *CardUpdateOne) SetCardID(v string) *CardUpdateOne {
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCardID(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// SetDeck sets the "deck" field.
func (_u *CardUpdateOne) SetDeck(v string) *CardUpdateOne {
	_u.mutation.SetDeck(v)
	return _u
}

// SetNillableDeck sets the "deck" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableDeck(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetDeck(*v)
	}
	return _u
}

// SetFront sets the "front" field.
func (_u *CardUpdateOne) SetFront(v string) *CardUpdateOne {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableFront(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *CardUpdateOne) SetBack(v string) *CardUpdateOne {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBack(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *CardUpdateOne) SetTags(v []string) *CardUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *CardUpdateOne) AppendTags(v []string) *CardUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *CardUpdateOne) ClearTags() *CardUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *CardUpdateOne) SetLastReviewedAt(v time.Time) *CardUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableLastReviewedAt(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *CardUpdateOne) ClearLastReviewedAt() *CardUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *CardUpdateOne) SetReviewCount(v int) *CardUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableReviewCount(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *CardUpdateOne) AddReviewCount(v int) *CardUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdateOne) check() error {
	if v, ok := _u.mutation.CardID(); ok {
		if err := card.CardIDValidator(v); err != nil {
			return &ValidationError{Name: "card_id", err: fmt.Errorf(`ent: validator failed for field "Card.card_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Deck(); ok {
		if err := card.DeckValidator(v); err != nil {
			return &ValidationError{Name: "deck", err: fmt.Errorf(`ent: validator failed for field "Card.deck": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Front(); ok {
		if err := card.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Card.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Back(); ok {
		if err := card.BackValidator(v); err != nil {
			return &ValidationError{Name: "back", err: fmt.Errorf(`ent: validator failed for field "Card.back": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
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
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(card.FieldCardID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Deck(); ok {
		_spec.SetField(card.FieldDeck, field.TypeString, value)
	}
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(card.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(card.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(card.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, card.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(card.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(card.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(card.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(card.FieldReviewCount, field.TypeInt, value)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
