// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/valvo/ent/schema"
	"github.com/abhisek/valvo/ent/trackrecord"
)

// TrackRecordCreate is the builder for creating a TrackRecord entity.
type TrackRecordCreate struct {
	config
	mutation *TrackRecordMutation
	hooks    []Hook
}

// SetTrackKey sets the "track_key" field.
func (_c *TrackRecordCreate) SetTrackKey(v string) *TrackRecordCreate {
	_c.mutation.SetTrackKey(v)
	return _c
}

// SetCompetency sets the "competency" field.
func (_c *TrackRecordCreate) SetCompetency(v float64) *TrackRecordCreate {
	_c.mutation.SetCompetency(v)
	return _c
}

// SetLastPractice sets the "last_practice" field.
func (_c *TrackRecordCreate) SetLastPractice(v time.Time) *TrackRecordCreate {
	_c.mutation.SetLastPractice(v)
	return _c
}

// SetSessionHistory sets the "session_history" field.
func (_c *TrackRecordCreate) SetSessionHistory(v []schema.SessionRecordData) *TrackRecordCreate {
	_c.mutation.SetSessionHistory(v)
	return _c
}

// SetNotesCovered sets the "notes_covered" field.
func (_c *TrackRecordCreate) SetNotesCovered(v []string) *TrackRecordCreate {
	_c.mutation.SetNotesCovered(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrackRecordCreate) SetCreatedAt(v time.Time) *TrackRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrackRecordCreate) SetNillableCreatedAt(v *time.Time) *TrackRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TrackRecordMutation object of the builder.
func (_c *TrackRecordCreate) Mutation() *TrackRecordMutation {
	return _c.mutation
}

// Save creates the TrackRecord in the database.
func (_c *TrackRecordCreate) Save(ctx context.Context) (*TrackRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrackRecordCreate) SaveX(ctx context.Context) *TrackRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrackRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trackrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrackRecordCreate) check() error {
	if _, ok := _c.mutation.TrackKey(); !ok {
		return &ValidationError{Name: "track_key", err: errors.New(`ent: missing required field "TrackRecord.track_key"`)}
	}
	if v, ok := _c.mutation.TrackKey(); ok {
		if err := trackrecord.TrackKeyValidator(v); err != nil {
			return &ValidationError{Name: "track_key", err: fmt.Errorf(`ent: validator failed for field "TrackRecord.track_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Competency(); !ok {
		return &ValidationError{Name: "competency", err: errors.New(`ent: missing required field "TrackRecord.competency"`)}
	}
	if _, ok := _c.mutation.LastPractice(); !ok {
		return &ValidationError{Name: "last_practice", err: errors.New(`ent: missing required field "TrackRecord.last_practice"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrackRecord.created_at"`)}
	}
	return nil
}

func (_c *TrackRecordCreate) sqlSave(ctx context.Context) (*TrackRecord, error) {
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

func (_c *TrackRecordCreate) createSpec() (*TrackRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &TrackRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trackrecord.Table, sqlgraph.NewFieldSpec(trackrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TrackKey(); ok {
		_spec.SetField(trackrecord.FieldTrackKey, field.TypeString, value)
		_node.TrackKey = value
	}
	if value, ok := _c.mutation.Competency(); ok {
		_spec.SetField(trackrecord.FieldCompetency, field.TypeFloat64, value)
		_node.Competency = value
	}
	if value, ok := _c.mutation.LastPractice(); ok {
		_spec.SetField(trackrecord.FieldLastPractice, field.TypeTime, value)
		_node.LastPractice = value
	}
	if value, ok := _c.mutation.SessionHistory(); ok {
		_spec.SetField(trackrecord.FieldSessionHistory, field.TypeJSON, value)
		_node.SessionHistory = value
	}
	if value, ok := _c.mutation.NotesCovered(); ok {
		_spec.SetField(trackrecord.FieldNotesCovered, field.TypeJSON, value)
		_node.NotesCovered = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trackrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TrackRecordCreateBulk is the builder for creating many TrackRecord entities in bulk.
type TrackRecordCreateBulk struct {
	config
	err      error
	builders []*TrackRecordCreate
}

// Save creates the TrackRecord entities in the database.
func (_c *TrackRecordCreateBulk) Save(ctx context.Context) ([]*TrackRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrackRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrackRecordMutation)
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
func (_c *TrackRecordCreateBulk) SaveX(ctx context.Context) []*TrackRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrackRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrackRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
