// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-dev/conclave/ent/personaconfiguration"
)

// PersonaConfigurationCreate is the builder for creating a PersonaConfiguration entity.
type PersonaConfigurationCreate struct {
	config
	mutation *PersonaConfigurationMutation
	hooks    []Hook
}

// SetPersona sets the "persona" field.
func (_c *PersonaConfigurationCreate) SetPersona(v string) *PersonaConfigurationCreate {
	_c.mutation.SetPersona(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *PersonaConfigurationCreate) SetDisplayName(v string) *PersonaConfigurationCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *PersonaConfigurationCreate) SetModelName(v string) *PersonaConfigurationCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *PersonaConfigurationCreate) SetSystemPrompt(v string) *PersonaConfigurationCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *PersonaConfigurationCreate) SetTemperature(v float64) *PersonaConfigurationCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *PersonaConfigurationCreate) SetMaxTokens(v int) *PersonaConfigurationCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *PersonaConfigurationCreate) SetEnabled(v bool) *PersonaConfigurationCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *PersonaConfigurationCreate) SetNillableEnabled(v *bool) *PersonaConfigurationCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *PersonaConfigurationCreate) SetSortOrder(v int) *PersonaConfigurationCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PersonaConfigurationCreate) SetDescription(v string) *PersonaConfigurationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PersonaConfigurationCreate) SetNillableDescription(v *string) *PersonaConfigurationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonaConfigurationCreate) SetID(v string) *PersonaConfigurationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PersonaConfigurationMutation object of the builder.
func (_c *PersonaConfigurationCreate) Mutation() *PersonaConfigurationMutation {
	return _c.mutation
}

// Save creates the PersonaConfiguration in the database.
func (_c *PersonaConfigurationCreate) Save(ctx context.Context) (*PersonaConfiguration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonaConfigurationCreate) SaveX(ctx context.Context) *PersonaConfiguration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonaConfigurationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonaConfigurationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonaConfigurationCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := personaconfiguration.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonaConfigurationCreate) check() error {
	if _, ok := _c.mutation.Persona(); !ok {
		return &ValidationError{Name: "persona", err: errors.New(`ent: missing required field "PersonaConfiguration.persona"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "PersonaConfiguration.display_name"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "PersonaConfiguration.model_name"`)}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "PersonaConfiguration.system_prompt"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "PersonaConfiguration.temperature"`)}
	}
	if _, ok := _c.mutation.MaxTokens(); !ok {
		return &ValidationError{Name: "max_tokens", err: errors.New(`ent: missing required field "PersonaConfiguration.max_tokens"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "PersonaConfiguration.enabled"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "PersonaConfiguration.sort_order"`)}
	}
	return nil
}

func (_c *PersonaConfigurationCreate) sqlSave(ctx context.Context) (*PersonaConfiguration, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PersonaConfiguration.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PersonaConfigurationCreate) createSpec() (*PersonaConfiguration, *sqlgraph.CreateSpec) {
	var (
		_node = &PersonaConfiguration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(personaconfiguration.Table, sqlgraph.NewFieldSpec(personaconfiguration.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Persona(); ok {
		_spec.SetField(personaconfiguration.FieldPersona, field.TypeString, value)
		_node.Persona = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(personaconfiguration.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(personaconfiguration.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(personaconfiguration.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(personaconfiguration.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(personaconfiguration.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(personaconfiguration.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(personaconfiguration.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(personaconfiguration.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// PersonaConfigurationCreateBulk is the builder for creating many PersonaConfiguration entities in bulk.
type PersonaConfigurationCreateBulk struct {
	config
	err      error
	builders []*PersonaConfigurationCreate
}

// Save creates the PersonaConfiguration entities in the database.
func (_c *PersonaConfigurationCreateBulk) Save(ctx context.Context) ([]*PersonaConfiguration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PersonaConfiguration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonaConfigurationMutation)
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
func (_c *PersonaConfigurationCreateBulk) SaveX(ctx context.Context) []*PersonaConfiguration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonaConfigurationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonaConfigurationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
