// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-dev/conclave/ent/personaconfiguration"
	"github.com/conclave-dev/conclave/ent/predicate"
)

// PersonaConfigurationUpdate is the builder for updating PersonaConfiguration entities.
type PersonaConfigurationUpdate struct {
	config
	hooks    []Hook
	mutation *PersonaConfigurationMutation
}

// Where appends a list predicates to the PersonaConfigurationUpdate builder.
func (_u *PersonaConfigurationUpdate) Where(ps ...predicate.PersonaConfiguration) *PersonaConfigurationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPersona sets the "persona" field.
func (_u *PersonaConfigurationUpdate) SetPersona(v string) *PersonaConfigurationUpdate {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *PersonaConfigurationUpdate) SetNillablePersona(v *string) *PersonaConfigurationUpdate {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PersonaConfigurationUpdate) SetDisplayName(v string) *PersonaConfigurationUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PersonaConfigurationUpdate) SetNillableDisplayName(v *string) *PersonaConfigurationUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PersonaConfigurationUpdate) SetModelName(v string) *PersonaConfigurationUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PersonaConfigurationUpdate) SetNillableModelName(v *string) *PersonaConfigurationUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PersonaConfigurationUpdate) SetSystemPrompt(v string) *PersonaConfigurationUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PersonaConfigurationUpdate) SetNillableSystemPrompt(v *string) *PersonaConfigurationUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *PersonaConfigurationUpdate) SetTemperature(v float64) *PersonaConfigurationUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *PersonaConfigurationUpdate) SetNillableTemperature(v *float64) *PersonaConfigurationUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *PersonaConfigurationUpdate) AddTemperature(v float64) *PersonaConfigurationUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *PersonaConfigurationUpdate) SetMaxTokens(v int) *PersonaConfigurationUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *PersonaConfigurationUpdate) SetNillableMaxTokens(v *int) *PersonaConfigurationUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *PersonaConfigurationUpdate) AddMaxTokens(v int) *PersonaConfigurationUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PersonaConfigurationUpdate) SetEnabled(v bool) *PersonaConfigurationUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PersonaConfigurationUpdate) SetNillableEnabled(v *bool) *PersonaConfigurationUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *PersonaConfigurationUpdate) SetSortOrder(v int) *PersonaConfigurationUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *PersonaConfigurationUpdate) SetNillableSortOrder(v *int) *PersonaConfigurationUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *PersonaConfigurationUpdate) AddSortOrder(v int) *PersonaConfigurationUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *PersonaConfigurationUpdate) SetDescription(v string) *PersonaConfigurationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PersonaConfigurationUpdate) SetNillableDescription(v *string) *PersonaConfigurationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PersonaConfigurationUpdate) ClearDescription() *PersonaConfigurationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the PersonaConfigurationMutation object of the builder.
func (_u *PersonaConfigurationUpdate) Mutation() *PersonaConfigurationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonaConfigurationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonaConfigurationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonaConfigurationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonaConfigurationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PersonaConfigurationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(personaconfiguration.Table, personaconfiguration.Columns, sqlgraph.NewFieldSpec(personaconfiguration.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(personaconfiguration.FieldPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(personaconfiguration.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(personaconfiguration.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(personaconfiguration.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(personaconfiguration.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(personaconfiguration.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(personaconfiguration.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(personaconfiguration.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(personaconfiguration.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(personaconfiguration.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(personaconfiguration.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(personaconfiguration.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(personaconfiguration.FieldDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personaconfiguration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonaConfigurationUpdateOne is the builder for updating a single PersonaConfiguration entity.
type PersonaConfigurationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonaConfigurationMutation
}

// SetPersona sets the "persona" field.
func (_u *PersonaConfigurationUpdateOne) SetPersona(v string) *PersonaConfigurationUpdateOne {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *PersonaConfigurationUpdateOne) SetNillablePersona(v *string) *PersonaConfigurationUpdateOne {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *PersonaConfigurationUpdateOne) SetDisplayName(v string) *PersonaConfigurationUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *PersonaConfigurationUpdateOne) SetNillableDisplayName(v *string) *PersonaConfigurationUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PersonaConfigurationUpdateOne) SetModelName(v string) *PersonaConfigurationUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PersonaConfigurationUpdateOne) SetNillableModelName(v *string) *PersonaConfigurationUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PersonaConfigurationUpdateOne) SetSystemPrompt(v string) *PersonaConfigurationUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PersonaConfigurationUpdateOne) SetNillableSystemPrompt(v *string) *PersonaConfigurationUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *PersonaConfigurationUpdateOne) SetTemperature(v float64) *PersonaConfigurationUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *PersonaConfigurationUpdateOne) SetNillableTemperature(v *float64) *PersonaConfigurationUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *PersonaConfigurationUpdateOne) AddTemperature(v float64) *PersonaConfigurationUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *PersonaConfigurationUpdateOne) SetMaxTokens(v int) *PersonaConfigurationUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *PersonaConfigurationUpdateOne) SetNillableMaxTokens(v *int) *PersonaConfigurationUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *PersonaConfigurationUpdateOne) AddMaxTokens(v int) *PersonaConfigurationUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *PersonaConfigurationUpdateOne) SetEnabled(v bool) *PersonaConfigurationUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *PersonaConfigurationUpdateOne) SetNillableEnabled(v *bool) *PersonaConfigurationUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *PersonaConfigurationUpdateOne) SetSortOrder(v int) *PersonaConfigurationUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *PersonaConfigurationUpdateOne) SetNillableSortOrder(v *int) *PersonaConfigurationUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *PersonaConfigurationUpdateOne) AddSortOrder(v int) *PersonaConfigurationUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *PersonaConfigurationUpdateOne) SetDescription(v string) *PersonaConfigurationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PersonaConfigurationUpdateOne) SetNillableDescription(v *string) *PersonaConfigurationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PersonaConfigurationUpdateOne) ClearDescription() *PersonaConfigurationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the PersonaConfigurationMutation object of the builder.
func (_u *PersonaConfigurationUpdateOne) Mutation() *PersonaConfigurationMutation {
	return _u.mutation
}

// Where appends a list predicates to the PersonaConfigurationUpdate builder.
func (_u *PersonaConfigurationUpdateOne) Where(ps ...predicate.PersonaConfiguration) *PersonaConfigurationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonaConfigurationUpdateOne) Select(field string, fields ...string) *PersonaConfigurationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PersonaConfiguration entity.
func (_u *PersonaConfigurationUpdateOne) Save(ctx context.Context) (*PersonaConfiguration, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonaConfigurationUpdateOne) SaveX(ctx context.Context) *PersonaConfiguration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonaConfigurationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonaConfigurationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PersonaConfigurationUpdateOne) sqlSave(ctx context.Context) (_node *PersonaConfiguration, err error) {
	_spec := sqlgraph.NewUpdateSpec(personaconfiguration.Table, personaconfiguration.Columns, sqlgraph.NewFieldSpec(personaconfiguration.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PersonaConfiguration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, personaconfiguration.FieldID)
		for _, f := range fields {
			if !personaconfiguration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != personaconfiguration.FieldID {
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
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(personaconfiguration.FieldPersona, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(personaconfiguration.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(personaconfiguration.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(personaconfiguration.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(personaconfiguration.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(personaconfiguration.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(personaconfiguration.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(personaconfiguration.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(personaconfiguration.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(personaconfiguration.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(personaconfiguration.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(personaconfiguration.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(personaconfiguration.FieldDescription, field.TypeString)
	}
	_node = &PersonaConfiguration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personaconfiguration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
