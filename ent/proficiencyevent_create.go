// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/valvo/ent/proficiencyevent"
)

// ProficiencyEventCreate is the builder for creating a ProficiencyEvent entity.
type ProficiencyEventCreate struct {
	config
	mutation *ProficiencyEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ProficiencyEventCreate) SetSequence(v int64) *ProficiencyEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ProficiencyEventCreate) SetTimestamp(v time.Time) *ProficiencyEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ProficiencyEventCreate) SetNillableTimestamp(v *time.Time) *ProficiencyEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetTrackKey sets the "track_key" field.
func (_c *ProficiencyEventCreate) SetTrackKey(v string) *ProficiencyEventCreate {
	_c.mutation.SetTrackKey(v)
	return _c
}

// SetRawPerformance sets the "raw_performance" field.
func (_c *ProficiencyEventCreate) SetRawPerformance(v float64) *ProficiencyEventCreate {
	_c.mutation.SetRawPerformance(v)
	return _c
}

// SetWeightedPerformance sets the "weighted_performance" field.
func (_c *ProficiencyEventCreate) SetWeightedPerformance(v float64) *ProficiencyEventCreate {
	_c.mutation.SetWeightedPerformance(v)
	return _c
}

// SetCompetencyBefore sets the "competency_before" field.
func (_c *ProficiencyEventCreate) SetCompetencyBefore(v float64) *ProficiencyEventCreate {
	_c.mutation.SetCompetencyBefore(v)
	return _c
}

// SetCompetencyAfter sets the "competency_after" field.
func (_c *ProficiencyEventCreate) SetCompetencyAfter(v float64) *ProficiencyEventCreate {
	_c.mutation.SetCompetencyAfter(v)
	return _c
}

// SetBand sets the "band" field.
func (_c *ProficiencyEventCreate) SetBand(v string) *ProficiencyEventCreate {
	_c.mutation.SetBand(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ProficiencyEventCreate) SetSessionID(v string) *ProficiencyEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ProficiencyEventCreate) SetNillableSessionID(v *string) *ProficiencyEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// Mutation returns the ProficiencyEventMutation object of the builder.
func (_c *ProficiencyEventCreate) Mutation() *ProficiencyEventMutation {
	return _c.mutation
}

// Save creates the ProficiencyEvent in the database.
func (_c *ProficiencyEventCreate) Save(ctx context.Context) (*ProficiencyEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProficiencyEventCreate) SaveX(ctx context.Context) *ProficiencyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProficiencyEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProficiencyEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProficiencyEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := proficiencyevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProficiencyEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ProficiencyEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ProficiencyEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.TrackKey(); !ok {
		return &ValidationError{Name: "track_key", err: errors.New(`ent: missing required field "ProficiencyEvent.track_key"`)}
	}
	if v, ok := _c.mutation.TrackKey(); ok {
		if err := proficiencyevent.TrackKeyValidator(v); err != nil {
			return &ValidationError{Name: "track_key", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.track_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawPerformance(); !ok {
		return &ValidationError{Name: "raw_performance", err: errors.New(`ent: missing required field "ProficiencyEvent.raw_performance"`)}
	}
	if _, ok := _c.mutation.WeightedPerformance(); !ok {
		return &ValidationError{Name: "weighted_performance", err: errors.New(`ent: missing required field "ProficiencyEvent.weighted_performance"`)}
	}
	if _, ok := _c.mutation.CompetencyBefore(); !ok {
		return &ValidationError{Name: "competency_before", err: errors.New(`ent: missing required field "ProficiencyEvent.competency_before"`)}
	}
	if _, ok := _c.mutation.CompetencyAfter(); !ok {
		return &ValidationError{Name: "competency_after", err: errors.New(`ent: missing required field "ProficiencyEvent.competency_after"`)}
	}
	if _, ok := _c.mutation.Band(); !ok {
		return &ValidationError{Name: "band", err: errors.New(`ent: missing required field "ProficiencyEvent.band"`)}
	}
	if v, ok := _c.mutation.Band(); ok {
		if err := proficiencyevent.BandValidator(v); err != nil {
			return &ValidationError{Name: "band", err: fmt.Errorf(`ent: validator failed for field "ProficiencyEvent.band": %w`, err)}
		}
	}
	return nil
}

func (_c *ProficiencyEventCreate) sqlSave(ctx context.Context) (*ProficiencyEvent, error) {
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

func (_c *ProficiencyEventCreate) createSpec() (*ProficiencyEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProficiencyEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proficiencyevent.Table, sqlgraph.NewFieldSpec(proficiencyevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(proficiencyevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(proficiencyevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.TrackKey(); ok {
		_spec.SetField(proficiencyevent.FieldTrackKey, field.TypeString, value)
		_node.TrackKey = value
	}
	if value, ok := _c.mutation.RawPerformance(); ok {
		_spec.SetField(proficiencyevent.FieldRawPerformance, field.TypeFloat64, value)
		_node.RawPerformance = value
	}
	if value, ok := _c.mutation.WeightedPerformance(); ok {
		_spec.SetField(proficiencyevent.FieldWeightedPerformance, field.TypeFloat64, value)
		_node.WeightedPerformance = value
	}
	if value, ok := _c.mutation.CompetencyBefore(); ok {
		_spec.SetField(proficiencyevent.FieldCompetencyBefore, field.TypeFloat64, value)
		_node.CompetencyBefore = value
	}
	if value, ok := _c.mutation.CompetencyAfter(); ok {
		_spec.SetField(proficiencyevent.FieldCompetencyAfter, field.TypeFloat64, value)
		_node.CompetencyAfter = value
	}
	if value, ok := _c.mutation.Band(); ok {
		_spec.SetField(proficiencyevent.FieldBand, field.TypeString, value)
		_node.Band = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(proficiencyevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	return _node, _spec
}

// ProficiencyEventCreateBulk is the builder for creating many ProficiencyEvent entities in bulk.
type ProficiencyEventCreateBulk struct {
	config
	err      error
	builders []*ProficiencyEventCreate
}

// Save creates the ProficiencyEvent entities in the database.
func (_c *ProficiencyEventCreateBulk) Save(ctx context.Context) ([]*ProficiencyEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProficiencyEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProficiencyEventMutation)
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
func (_c *ProficiencyEventCreateBulk) SaveX(ctx context.Context) []*ProficiencyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProficiencyEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProficiencyEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
