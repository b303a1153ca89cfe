// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-dev/conclave/ent/memory"
	"github.com/conclave-dev/conclave/ent/predicate"
)

// MemoryUpdate is the builder for updating Memory entities.
type MemoryUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryMutation
}

// Where appends a list predicates to the MemoryUpdate builder.
func (_u *MemoryUpdate) Where(ps ...predicate.Memory) *MemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIdentifier sets the "identifier" field.
func (_u *MemoryUpdate) SetIdentifier(v string) *MemoryUpdate {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableIdentifier(v *string) *MemoryUpdate {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryUpdate) SetContent(v string) *MemoryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableContent(v *string) *MemoryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryUpdate) SetAccessCount(v int) *MemoryUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableAccessCount(v *int) *MemoryUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryUpdate) AddAccessCount(v int) *MemoryUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *MemoryUpdate) SetLastAccessedAt(v time.Time) *MemoryUpdate {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *MemoryUpdate) SetNillableLastAccessedAt(v *time.Time) *MemoryUpdate {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *MemoryUpdate) ClearLastAccessedAt() *MemoryUpdate {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// Mutation returns the MemoryMutation object of the builder.
func (_u *MemoryUpdate) Mutation() *MemoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Memory.session"`)
	}
	return nil
}

func (_u *MemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memory.Table, memory.Columns, sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(memory.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memory.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(memory.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(memory.FieldLastAccessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryUpdateOne is the builder for updating a single Memory entity.
type MemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryMutation
}

// SetIdentifier sets the "identifier" field.
func (_u *MemoryUpdateOne) SetIdentifier(v string) *MemoryUpdateOne {
	_u.mutation.SetIdentifier(v)
	return _u
}

// SetNillableIdentifier sets the "identifier" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableIdentifier(v *string) *MemoryUpdateOne {
	if v != nil {
		_u.SetIdentifier(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *MemoryUpdateOne) SetContent(v string) *MemoryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableContent(v *string) *MemoryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *MemoryUpdateOne) SetAccessCount(v int) *MemoryUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableAccessCount(v *int) *MemoryUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *MemoryUpdateOne) AddAccessCount(v int) *MemoryUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetLastAccessedAt sets the "last_accessed_at" field.
func (_u *MemoryUpdateOne) SetLastAccessedAt(v time.Time) *MemoryUpdateOne {
	_u.mutation.SetLastAccessedAt(v)
	return _u
}

// SetNillableLastAccessedAt sets the "last_accessed_at" field if the given value is not nil.
func (_u *MemoryUpdateOne) SetNillableLastAccessedAt(v *time.Time) *MemoryUpdateOne {
	if v != nil {
		_u.SetLastAccessedAt(*v)
	}
	return _u
}

// ClearLastAccessedAt clears the value of the "last_accessed_at" field.
func (_u *MemoryUpdateOne) ClearLastAccessedAt() *MemoryUpdateOne {
	_u.mutation.ClearLastAccessedAt()
	return _u
}

// Mutation returns the MemoryMutation object of the builder.
func (_u *MemoryUpdateOne) Mutation() *MemoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MemoryUpdate builder.
func (_u *MemoryUpdateOne) Where(ps ...predicate.Memory) *MemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryUpdateOne) Select(field string, fields ...string) *MemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Memory entity.
func (_u *MemoryUpdateOne) Save(ctx context.Context) (*Memory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryUpdateOne) SaveX(ctx context.Context) *Memory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MemoryUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Memory.session"`)
	}
	return nil
}

func (_u *MemoryUpdateOne) sqlSave(ctx context.Context) (_node *Memory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(memory.Table, memory.Columns, sqlgraph.NewFieldSpec(memory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Memory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memory.FieldID)
		for _, f := range fields {
			if !memory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memory.FieldID {
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
	if value, ok := _u.mutation.Identifier(); ok {
		_spec.SetField(memory.FieldIdentifier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(memory.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(memory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(memory.FieldAccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAccessedAt(); ok {
		_spec.SetField(memory.FieldLastAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.LastAccessedAtCleared() {
		_spec.ClearField(memory.FieldLastAccessedAt, field.TypeTime)
	}
	_node = &Memory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
