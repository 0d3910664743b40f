// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/valvo/ent/predicate"
	"github.com/abhisek/valvo/ent/schema"
	"github.com/abhisek/valvo/ent/trackrecord"
)

// TrackRecordUpdate is the builder for updating TrackRecord entities.
type TrackRecordUpdate struct {
	config
	hooks    []Hook
	mutation *TrackRecordMutation
}

// Where appends a list predicates to the TrackRecordUpdate builder.
func (_u *TrackRecordUpdate) Where(ps ...predicate.TrackRecord) *TrackRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTrackKey sets the "track_key" field.
func (_u *TrackRecordUpdate) SetTrackKey(v string) *TrackRecordUpdate {
	_u.mutation.SetTrackKey(v)
	return _u
}

// SetNillableTrackKey sets the "track_key" field if the given value is not nil.
func (_u *TrackRecordUpdate) SetNillableTrackKey(v *string) *TrackRecordUpdate {
	if v != nil {
		_u.SetTrackKey(*v)
	}
	return _u
}

// SetCompetency sets the "competency" field.
func (_u *TrackRecordUpdate) SetCompetency(v float64) *TrackRecordUpdate {
	_u.mutation.ResetCompetency()
	_u.mutation.SetCompetency(v)
	return _u
}

// SetNillableCompetency sets the "competency" field if the given value is not nil.
func (_u *TrackRecordUpdate) SetNillableCompetency(v *float64) *TrackRecordUpdate {
	if v != nil {
		_u.SetCompetency(*v)
	}
	return _u
}

// AddCompetency adds value to the "competency" field.
func (_u *TrackRecordUpdate) AddCompetency(v float64) *TrackRecordUpdate {
	_u.mutation.AddCompetency(v)
	return _u
}

// SetLastPractice sets the "last_practice" field.
func (_u *TrackRecordUpdate) SetLastPractice(v time.Time) *TrackRecordUpdate {
	_u.mutation.SetLastPractice(v)
	return _u
}

// SetNillableLastPractice sets the "last_practice" field if the given value is not nil.
func (_u *TrackRecordUpdate) SetNillableLastPractice(v *time.Time) *TrackRecordUpdate {
	if v != nil {
		_u.SetLastPractice(*v)
	}
	return _u
}

// SetSessionHistory sets the "session_history" field.
func (_u *TrackRecordUpdate) SetSessionHistory(v []schema.SessionRecordData) *TrackRecordUpdate {
	_u.mutation.SetSessionHistory(v)
	return _u
}

// AppendSessionHistory appends value to the "session_history" field.
func (_u *TrackRecordUpdate) AppendSessionHistory(v []schema.SessionRecordData) *TrackRecordUpdate {
	_u.mutation.AppendSessionHistory(v)
	return _u
}

// ClearSessionHistory clears the value of the "session_history" field.
func (_u *TrackRecordUpdate) ClearSessionHistory() *TrackRecordUpdate {
	_u.mutation.ClearSessionHistory()
	return _u
}

// SetNotesCovered sets the "notes_covered" field.
func (_u *TrackRecordUpdate) SetNotesCovered(v []string) *TrackRecordUpdate {
	_u.mutation.SetNotesCovered(v)
	return _u
}

// AppendNotesCovered appends value to the "notes_covered" field.
func (_u *TrackRecordUpdate) AppendNotesCovered(v []string) *TrackRecordUpdate {
	_u.mutation.AppendNotesCovered(v)
	return _u
}

// ClearNotesCovered clears the value of the "notes_covered" field.
func (_u *TrackRecordUpdate) ClearNotesCovered() *TrackRecordUpdate {
	_u.mutation.ClearNotesCovered()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TrackRecordUpdate) SetCreatedAt(v time.Time) *TrackRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TrackRecordUpdate) SetNillableCreatedAt(v *time.Time) *TrackRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TrackRecordMutation object of the builder.
func (_u *TrackRecordUpdate) Mutation() *TrackRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrackRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrackRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackRecordUpdate) check() error {
	if v, ok := _u.mutation.TrackKey(); ok {
		if err := trackrecord.TrackKeyValidator(v); err != nil {
			return &ValidationError{Name: "track_key", err: fmt.Errorf(`ent: validator failed for field "TrackRecord.track_key": %w`, err)}
		}
	}
	return nil
}

func (_u *TrackRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackrecord.Table, trackrecord.Columns, sqlgraph.NewFieldSpec(trackrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TrackKey(); ok {
		_spec.SetField(trackrecord.FieldTrackKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Competency(); ok {
		_spec.SetField(trackrecord.FieldCompetency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompetency(); ok {
		_spec.AddField(trackrecord.FieldCompetency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastPractice(); ok {
		_spec.SetField(trackrecord.FieldLastPractice, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionHistory(); ok {
		_spec.SetField(trackrecord.FieldSessionHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessionHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trackrecord.FieldSessionHistory, value)
		})
	}
	if _u.mutation.SessionHistoryCleared() {
		_spec.ClearField(trackrecord.FieldSessionHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotesCovered(); ok {
		_spec.SetField(trackrecord.FieldNotesCovered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotesCovered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trackrecord.FieldNotesCovered, value)
		})
	}
	if _u.mutation.NotesCoveredCleared() {
		_spec.ClearField(trackrecord.FieldNotesCovered, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(trackrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrackRecordUpdateOne is the builder for updating a single TrackRecord entity.
type TrackRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrackRecordMutation
}

// SetTrackKey sets the "track_key" field.
func (_u *TrackRecordUpdateOne) SetTrackKey(v string) *TrackRecordUpdateOne {
	_u.mutation.SetTrackKey(v)
	return _u
}

// SetNillableTrackKey sets the "track_key" field if the given value is not nil.
func (_u *TrackRecordUpdateOne) SetNillableTrackKey(v *string) *TrackRecordUpdateOne {
	if v != nil {
		_u.SetTrackKey(*v)
	}
	return _u
}

// SetCompetency sets the "competency" field.
func (_u *TrackRecordUpdateOne) SetCompetency(v float64) *TrackRecordUpdateOne {
	_u.mutation.ResetCompetency()
	_u.mutation.SetCompetency(v)
	return _u
}

// SetNillableCompetency sets the "competency" field if the given value is not nil.
func (_u *TrackRecordUpdateOne) SetNillableCompetency(v *float64) *TrackRecordUpdateOne {
	if v != nil {
		_u.SetCompetency(*v)
	}
	return _u
}

// AddCompetency adds value to the "competency" field.
func (_u *TrackRecordUpdateOne) AddCompetency(v float64) *TrackRecordUpdateOne {
	_u.mutation.AddCompetency(v)
	return _u
}

// SetLastPractice sets the "last_practice" field.
func (_u *TrackRecordUpdateOne) SetLastPractice(v time.Time) *TrackRecordUpdateOne {
	_u.mutation.SetLastPractice(v)
	return _u
}

// SetNillableLastPractice sets the "last_practice" field if the given value is not nil.
func (_u *TrackRecordUpdateOne) SetNillableLastPractice(v *time.Time) *TrackRecordUpdateOne {
	if v != nil {
		_u.SetLastPractice(*v)
	}
	return _u
}

// SetSessionHistory sets the "session_history" field.
func (_u *TrackRecordUpdateOne) SetSessionHistory(v []schema.SessionRecordData) *TrackRecordUpdateOne {
	_u.mutation.SetSessionHistory(v)
	return _u
}

// AppendSessionHistory appends value to the "session_history" field.
func (_u *TrackRecordUpdateOne) AppendSessionHistory(v []schema.SessionRecordData) *TrackRecordUpdateOne {
	_u.mutation.AppendSessionHistory(v)
	return _u
}

// ClearSessionHistory clears the value of the "session_history" field.
func (_u *TrackRecordUpdateOne) ClearSessionHistory() *TrackRecordUpdateOne {
	_u.mutation.ClearSessionHistory()
	return _u
}

// SetNotesCovered sets the "notes_covered" field.
func (_u *TrackRecordUpdateOne) SetNotesCovered(v []string) *TrackRecordUpdateOne {
	_u.mutation.SetNotesCovered(v)
	return _u
}

// AppendNotesCovered appends value to the "notes_covered" field.
func (_u *TrackRecordUpdateOne) AppendNotesCovered(v []string) *TrackRecordUpdateOne {
	_u.mutation.AppendNotesCovered(v)
	return _u
}

// ClearNotesCovered clears the value of the "notes_covered" field.
func (_u *TrackRecordUpdateOne) ClearNotesCovered() *TrackRecordUpdateOne {
	_u.mutation.ClearNotesCovered()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TrackRecordUpdateOne) SetCreatedAt(v time.Time) *TrackRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TrackRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *TrackRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the TrackRecordMutation object of the builder.
func (_u *TrackRecordUpdateOne) Mutation() *TrackRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrackRecordUpdate builder.
func (_u *TrackRecordUpdateOne) Where(ps ...predicate.TrackRecord) *TrackRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrackRecordUpdateOne) Select(field string, fields ...string) *TrackRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrackRecord entity.
func (_u *TrackRecordUpdateOne) Save(ctx context.Context) (*TrackRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrackRecordUpdateOne) SaveX(ctx context.Context) *TrackRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrackRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrackRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrackRecordUpdateOne) check() error {
	if v, ok := _u.mutation.TrackKey(); ok {
		if err := trackrecord.TrackKeyValidator(v); err != nil {
			return &ValidationError{Name: "track_key", err: fmt.Errorf(`ent: validator failed for field "TrackRecord.track_key": %w`, err)}
		}
	}
	return nil
}

func (_u *TrackRecordUpdateOne) sqlSave(ctx context.Context) (_node *TrackRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trackrecord.Table, trackrecord.Columns, sqlgraph.NewFieldSpec(trackrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrackRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trackrecord.FieldID)
		for _, f := range fields {
			if !trackrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trackrecord.FieldID {
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
	if value, ok := _u.mutation.TrackKey(); ok {
		_spec.SetField(trackrecord.FieldTrackKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Competency(); ok {
		_spec.SetField(trackrecord.FieldCompetency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompetency(); ok {
		_spec.AddField(trackrecord.FieldCompetency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastPractice(); ok {
		_spec.SetField(trackrecord.FieldLastPractice, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionHistory(); ok {
		_spec.SetField(trackrecord.FieldSessionHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSessionHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trackrecord.FieldSessionHistory, value)
		})
	}
	if _u.mutation.SessionHistoryCleared() {
		_spec.ClearField(trackrecord.FieldSessionHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.NotesCovered(); ok {
		_spec.SetField(trackrecord.FieldNotesCovered, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotesCovered(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trackrecord.FieldNotesCovered, value)
		})
	}
	if _u.mutation.NotesCoveredCleared() {
		_spec.ClearField(trackrecord.FieldNotesCovered, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(trackrecord.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &TrackRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trackrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
