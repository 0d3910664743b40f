// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/valvo/ent/answerevent"
	"github.com/abhisek/valvo/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTrackKey sets the "track_key" field.
func (_u *AnswerEventUpdate) SetTrackKey(v string) *AnswerEventUpdate {
	_u.mutation.SetTrackKey(v)
	return _u
}

// SetNillableTrackKey sets the "track_key" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTrackKey(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetTrackKey(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *AnswerEventUpdate) SetNote(v string) *AnswerEventUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableNote(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetExpectedFingering sets the "expected_fingering" field.
func (_u *AnswerEventUpdate) SetExpectedFingering(v string) *AnswerEventUpdate {
	_u.mutation.SetExpectedFingering(v)
	return _u
}

// SetNillableExpectedFingering sets the "expected_fingering" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableExpectedFingering(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetExpectedFingering(*v)
	}
	return _u
}

// SetAnsweredFingering sets the "answered_fingering" field.
func (_u *AnswerEventUpdate) SetAnsweredFingering(v string) *AnswerEventUpdate {
	_u.mutation.SetAnsweredFingering(v)
	return _u
}

// SetNillableAnsweredFingering sets the "answered_fingering" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAnsweredFingering(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetAnsweredFingering(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *AnswerEventUpdate) SetMode(v string) *AnswerEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableMode(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TrackKey(); ok {
		if err := answerevent.TrackKeyValidator(v); err != nil {
			return &ValidationError{Name: "track_key", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.track_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := answerevent.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.note": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedFingering(); ok {
		if err := answerevent.ExpectedFingeringValidator(v); err != nil {
			return &ValidationError{Name: "expected_fingering", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_fingering": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnsweredFingering(); ok {
		if err := answerevent.AnsweredFingeringValidator(v); err != nil {
			return &ValidationError{Name: "answered_fingering", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.answered_fingering": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := answerevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrackKey(); ok {
		_spec.SetField(answerevent.FieldTrackKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(answerevent.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedFingering(); ok {
		_spec.SetField(answerevent.FieldExpectedFingering, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnsweredFingering(); ok {
		_spec.SetField(answerevent.FieldAnsweredFingering, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(answerevent.FieldMode, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTrackKey sets the "track_key" field.
func (_u *AnswerEventUpdateOne) SetTrackKey(v string) *AnswerEventUpdateOne {
	_u.mutation.SetTrackKey(v)
	return _u
}

// SetNillableTrackKey sets the "track_key" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTrackKey(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTrackKey(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *AnswerEventUpdateOne) SetNote(v string) *AnswerEventUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableNote(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetExpectedFingering sets the "expected_fingering" field.
func (_u *AnswerEventUpdateOne) SetExpectedFingering(v string) *AnswerEventUpdateOne {
	_u.mutation.SetExpectedFingering(v)
	return _u
}

// SetNillableExpectedFingering sets the "expected_fingering" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableExpectedFingering(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetExpectedFingering(*v)
	}
	return _u
}

// SetAnsweredFingering sets the "answered_fingering" field.
func (_u *AnswerEventUpdateOne) SetAnsweredFingering(v string) *AnswerEventUpdateOne {
	_u.mutation.SetAnsweredFingering(v)
	return _u
}

// SetNillableAnsweredFingering sets the "answered_fingering" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAnsweredFingering(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAnsweredFingering(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetMode sets the "mode" field.
func (_u *AnswerEventUpdateOne) SetMode(v string) *AnswerEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableMode(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TrackKey(); ok {
		if err := answerevent.TrackKeyValidator(v); err != nil {
			return &ValidationError{Name: "track_key", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.track_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Note(); ok {
		if err := answerevent.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.note": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedFingering(); ok {
		if err := answerevent.ExpectedFingeringValidator(v); err != nil {
			return &ValidationError{Name: "expected_fingering", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_fingering": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnsweredFingering(); ok {
		if err := answerevent.AnsweredFingeringValidator(v); err != nil {
			return &ValidationError{Name: "answered_fingering", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.answered_fingering": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := answerevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrackKey(); ok {
		_spec.SetField(answerevent.FieldTrackKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(answerevent.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedFingering(); ok {
		_spec.SetField(answerevent.FieldExpectedFingering, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnsweredFingering(); ok {
		_spec.SetField(answerevent.FieldAnsweredFingering, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(answerevent.FieldMode, field.TypeString, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
