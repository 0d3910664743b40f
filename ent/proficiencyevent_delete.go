// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/valvo/ent/predicate"
	"github.com/abhisek/valvo/ent/proficiencyevent"
)

// ProficiencyEventDelete is the builder for deleting a ProficiencyEvent entity.
type ProficiencyEventDelete struct {
	config
	hooks    []Hook
	mutation *ProficiencyEventMutation
}

// Where appends a list predicates to the ProficiencyEventDelete builder.
func (_d *ProficiencyEventDelete) Where(ps ...predicate.ProficiencyEvent) *ProficiencyEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProficiencyEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProficiencyEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProficiencyEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(proficiencyevent.Table, sqlgraph.NewFieldSpec(proficiencyevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProficiencyEventDeleteOne is the builder for deleting a single ProficiencyEvent entity.
type ProficiencyEventDeleteOne struct {
	_d *ProficiencyEventDelete
}

// Where appends a list predicates to the ProficiencyEventDelete builder.
func (_d *ProficiencyEventDeleteOne) Where(ps ...predicate.ProficiencyEvent) *ProficiencyEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProficiencyEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{proficiencyevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProficiencyEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
