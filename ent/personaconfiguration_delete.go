// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-dev/conclave/ent/personaconfiguration"
	"github.com/conclave-dev/conclave/ent/predicate"
)

// PersonaConfigurationDelete is the builder for deleting a PersonaConfiguration entity.
type PersonaConfigurationDelete struct {
	config
	hooks    []Hook
	mutation *PersonaConfigurationMutation
}

// Where appends a list predicates to the PersonaConfigurationDelete builder.
func (_d *PersonaConfigurationDelete) Where(ps ...predicate.PersonaConfiguration) *PersonaConfigurationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PersonaConfigurationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PersonaConfigurationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PersonaConfigurationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(personaconfiguration.Table, sqlgraph.NewFieldSpec(personaconfiguration.FieldID, field.TypeString))
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

// PersonaConfigurationDeleteOne is the builder for deleting a single PersonaConfiguration entity.
type PersonaConfigurationDeleteOne struct {
	_d *PersonaConfigurationDelete
}

// Where appends a list predicates to the PersonaConfigurationDelete builder.
func (_d *PersonaConfigurationDeleteOne) Where(ps ...predicate.PersonaConfiguration) *PersonaConfigurationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PersonaConfigurationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{personaconfiguration.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PersonaConfigurationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
