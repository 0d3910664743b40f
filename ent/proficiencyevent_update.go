// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/valvo/ent/predicate"
	"github.com/abhisek/valvo/ent/proficiencyevent"
)

// ProficiencyEventUpdate is the builder for updating ProficiencyEvent entities.
type ProficiencyEventUpdate struct {
	config
	hooks    []Hook
	mutation *ProficiencyEventMutation
}

// Where appends a list predicates to the ProficiencyEventUpdate builder.
func (_u *ProficiencyEventUpdate) Where(ps ...predicate.ProficiencyEvent) *ProficiencyEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTrackKey sets the "track_key" field.
func (_u *ProficiencyEventUpdate) SetTrackKey(v string) *ProficiencyEventUpdate {
	_u.mutation.SetTrackKey(v)
	return _u
}

// SetNillableTrackKey sets the "track_key" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableTrackKey(v *string) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetTrackKey(*v)
	}
	return _u
}

// SetRawPerformance sets the "raw_performance" field.
func (_u *ProficiencyEventUpdate) SetRawPerformance(v float64) *ProficiencyEventUpdate {
	_u.mutation.ResetRawPerformance()
	_u.mutation.SetRawPerformance(v)
	return _u
}

// SetNillableRawPerformance sets the "raw_performance" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableRawPerformance(v *float64) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetRawPerformance(*v)
	}
	return _u
}

// AddRawPerformance adds value to the "raw_performance" field.
func (_u *ProficiencyEventUpdate) AddRawPerformance(v float64) *ProficiencyEventUpdate {
	_u.mutation.AddRawPerformance(v)
	return _u
}

// SetWeightedPerformance sets the "weighted_performance" field.
func (_u *ProficiencyEventUpdate) SetWeightedPerformance(v float64) *ProficiencyEventUpdate {
	_u.mutation.ResetWeightedPerformance()
	_u.mutation.SetWeightedPerformance(v)
	return _u
}

// SetNillableWeightedPerformance sets the "weighted_performance" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableWeightedPerformance(v *float64) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetWeightedPerformance(*v)
	}
	return _u
}

// AddWeightedPerformance adds value to the "weighted_performance" field.
func (_u *ProficiencyEventUpdate) AddWeightedPerformance(v float64) *ProficiencyEventUpdate {
	_u.mutation.AddWeightedPerformance(v)
	return _u
}

// SetCompetencyBefore sets the "competency_before" field.
func (_u *ProficiencyEventUpdate) SetCompetencyBefore(v float64) *ProficiencyEventUpdate {
	_u.mutation.ResetCompetencyBefore()
	_u.mutation.SetCompetencyBefore(v)
	return _u
}

// SetNillableCompetencyBefore sets the "competency_before" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableCompetencyBefore(v *float64) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetCompetencyBefore(*v)
	}
	return _u
}

// AddCompetencyBefore adds value to the "competency_before" field.
func (_u *ProficiencyEventUpdate) AddCompetencyBefore(v float64) *ProficiencyEventUpdate {
	_u.mutation.AddCompetencyBefore(v)
	return _u
}

// SetCompetencyAfter sets the "competency_after" field.
func (_u *ProficiencyEventUpdate) SetCompetencyAfter(v float64) *ProficiencyEventUpdate {
	_u.mutation.ResetCompetencyAfter()
	_u.mutation.SetCompetencyAfter(v)
	return _u
}

// SetNillableCompetencyAfter sets the "competency_after" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableCompetencyAfter(v *float64) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetCompetencyAfter(*v)
	}
	return _u
}

// AddCompetencyAfter adds value to the "competency_after" field.
func (_u *ProficiencyEventUpdate) AddCompetencyAfter(v float64) *ProficiencyEventUpdate {
	_u.mutation.AddCompetencyAfter(v)
	return _u
}

// SetBand sets the "band" field.
func (_u *ProficiencyEventUpdate) SetBand(v string) *ProficiencyEventUpdate {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableBand(v *string) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProficiencyEventUpdate) SetSessionID(v string) *ProficiencyEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProficiencyEventUpdate) SetNillableSessionID(v *string) *ProficiencyEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ProficiencyEventUpdate) ClearSessionID() *ProficiencyEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ProficiencyEventMutation object of the builder.
func (_u *ProficiencyEventUpdate) Mutation() *ProficiencyEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProficiencyEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProficiencyEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProficiencyEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProficiencyEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProficiencyEventUpdate) check() error {
	if v, ok := _u.mutation.TrackKey(); ok {
		if err := proficiencyevent.TrackKeyValidator(v); err != nil {
			return &ValidationError{Name: "track_key", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.track_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Band(); ok {
		if err := proficiencyevent.BandValidator(v); err != nil {
			return &ValidationError{Name: "band", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.band": %w`, err)}
		}
	}
	return nil
}

func (_u *ProficiencyEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proficiencyevent.Table, proficiencyevent.Columns, sqlgraph.NewFieldSpec(proficiencyevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TrackKey(); ok {
		_spec.SetField(proficiencyevent.FieldTrackKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawPerformance(); ok {
		_spec.SetField(proficiencyevent.FieldRawPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawPerformance(); ok {
		_spec.AddField(proficiencyevent.FieldRawPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeightedPerformance(); ok {
		_spec.SetField(proficiencyevent.FieldWeightedPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedPerformance(); ok {
		_spec.AddField(proficiencyevent.FieldWeightedPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompetencyBefore(); ok {
		_spec.SetField(proficiencyevent.FieldCompetencyBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompetencyBefore(); ok {
		_spec.AddField(proficiencyevent.FieldCompetencyBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompetencyAfter(); ok {
		_spec.SetField(proficiencyevent.FieldCompetencyAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompetencyAfter(); ok {
		_spec.AddField(proficiencyevent.FieldCompetencyAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(proficiencyevent.FieldBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(proficiencyevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(proficiencyevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proficiencyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProficiencyEventUpdateOne is the builder for updating a single ProficiencyEvent entity.
type ProficiencyEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProficiencyEventMutation
}

// SetTrackKey sets the "track_key" field.
func (_u *ProficiencyEventUpdateOne) SetTrackKey(v string) *ProficiencyEventUpdateOne {
	_u.mutation.SetTrackKey(v)
	return _u
}

// SetNillableTrackKey sets the "track_key" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableTrackKey(v *string) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetTrackKey(*v)
	}
	return _u
}

// SetRawPerformance sets the "raw_performance" field.
func (_u *ProficiencyEventUpdateOne) SetRawPerformance(v float64) *ProficiencyEventUpdateOne {
	_u.mutation.ResetRawPerformance()
	_u.mutation.SetRawPerformance(v)
	return _u
}

// SetNillableRawPerformance sets the "raw_performance" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableRawPerformance(v *float64) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetRawPerformance(*v)
	}
	return _u
}

// AddRawPerformance adds value to the "raw_performance" field.
func (_u *ProficiencyEventUpdateOne) AddRawPerformance(v float64) *ProficiencyEventUpdateOne {
	_u.mutation.AddRawPerformance(v)
	return _u
}

// SetWeightedPerformance sets the "weighted_performance" field.
func (_u *ProficiencyEventUpdateOne) SetWeightedPerformance(v float64) *ProficiencyEventUpdateOne {
	_u.mutation.ResetWeightedPerformance()
	_u.mutation.SetWeightedPerformance(v)
	return _u
}

// SetNillableWeightedPerformance sets the "weighted_performance" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableWeightedPerformance(v *float64) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetWeightedPerformance(*v)
	}
	return _u
}

// AddWeightedPerformance adds value to the "weighted_performance" field.
func (_u *ProficiencyEventUpdateOne) AddWeightedPerformance(v float64) *ProficiencyEventUpdateOne {
	_u.mutation.AddWeightedPerformance(v)
	return _u
}

// SetCompetencyBefore sets the "competency_before" field.
func (_u *ProficiencyEventUpdateOne) SetCompetencyBefore(v float64) *ProficiencyEventUpdateOne {
	_u.mutation.ResetCompetencyBefore()
	_u.mutation.SetCompetencyBefore(v)
	return _u
}

// SetNillableCompetencyBefore sets the "competency_before" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableCompetencyBefore(v *float64) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetCompetencyBefore(*v)
	}
	return _u
}

// AddCompetencyBefore adds value to the "competency_before" field.
func (_u *ProficiencyEventUpdateOne) AddCompetencyBefore(v float64) *ProficiencyEventUpdateOne {
	_u.mutation.AddCompetencyBefore(v)
	return _u
}

// SetCompetencyAfter sets the "competency_after" field.
func (_u *ProficiencyEventUpdateOne) SetCompetencyAfter(v float64) *ProficiencyEventUpdateOne {
	_u.mutation.ResetCompetencyAfter()
	_u.mutation.SetCompetencyAfter(v)
	return _u
}

// SetNillableCompetencyAfter sets the "competency_after" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableCompetencyAfter(v *float64) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetCompetencyAfter(*v)
	}
	return _u
}

// AddCompetencyAfter adds value to the "competency_after" field.
func (_u *ProficiencyEventUpdateOne) AddCompetencyAfter(v float64) *ProficiencyEventUpdateOne {
	_u.mutation.AddCompetencyAfter(v)
	return _u
}

// SetBand sets the "band" field.
func (_u *ProficiencyEventUpdateOne) SetBand(v string) *ProficiencyEventUpdateOne {
	_u.mutation.SetBand(v)
	return _u
}

// SetNillableBand sets the "band" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableBand(v *string) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetBand(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProficiencyEventUpdateOne) SetSessionID(v string) *ProficiencyEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProficiencyEventUpdateOne) SetNillableSessionID(v *string) *ProficiencyEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ProficiencyEventUpdateOne) ClearSessionID() *ProficiencyEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ProficiencyEventMutation object of the builder.
func (_u *ProficiencyEventUpdateOne) Mutation() *ProficiencyEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProficiencyEventUpdate builder.
func (_u *ProficiencyEventUpdateOne) Where(ps ...predicate.ProficiencyEvent) *ProficiencyEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProficiencyEventUpdateOne) Select(field string, fields ...string) *ProficiencyEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProficiencyEvent entity.
func (_u *ProficiencyEventUpdateOne) Save(ctx context.Context) (*ProficiencyEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProficiencyEventUpdateOne) SaveX(ctx context.Context) *ProficiencyEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProficiencyEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProficiencyEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProficiencyEventUpdateOne) check() error {
	if v, ok := _u.mutation.TrackKey(); ok {
		if err := proficiencyevent.TrackKeyValidator(v); err != nil {
			return &ValidationError{Name: "track_key", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.track_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Band(); ok {
		if err := proficiencyevent.BandValidator(v); err != nil {
			return &ValidationError{Name: "band", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.band": %w`, err)}
		}
	}
	return nil
}

func (_u *ProficiencyEventUpdateOne) sqlSave(ctx context.Context) (_node *ProficiencyEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proficiencyevent.Table, proficiencyevent.Columns, sqlgraph.NewFieldSpec(proficiencyevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProficiencyEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proficiencyevent.FieldID)
		for _, f := range fields {
			if !proficiencyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proficiencyevent.FieldID {
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
		_spec.SetField(proficiencyevent.FieldTrackKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawPerformance(); ok {
		_spec.SetField(proficiencyevent.FieldRawPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawPerformance(); ok {
		_spec.AddField(proficiencyevent.FieldRawPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeightedPerformance(); ok {
		_spec.SetField(proficiencyevent.FieldWeightedPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedPerformance(); ok {
		_spec.AddField(proficiencyevent.FieldWeightedPerformance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompetencyBefore(); ok {
		_spec.SetField(proficiencyevent.FieldCompetencyBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompetencyBefore(); ok {
		_spec.AddField(proficiencyevent.FieldCompetencyBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompetencyAfter(); ok {
		_spec.SetField(proficiencyevent.FieldCompetencyAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompetencyAfter(); ok {
		_spec.AddField(proficiencyevent.FieldCompetencyAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Band(); ok {
		_spec.SetField(proficiencyevent.FieldBand, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(proficiencyevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(proficiencyevent.FieldSessionID, field.TypeString)
	}
	_node = &ProficiencyEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proficiencyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
