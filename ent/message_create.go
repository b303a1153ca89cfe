// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/session"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *MessageCreate) SetSessionID(v string) *MessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFromPersona sets the "from_persona" field.
func (_c *MessageCreate) SetFromPersona(v string) *MessageCreate {
	_c.mutation.SetFromPersona(v)
	return _c
}

// SetToPersona sets the "to_persona" field.
func (_c *MessageCreate) SetToPersona(v string) *MessageCreate {
	_c.mutation.SetToPersona(v)
	return _c
}

// SetNillableToPersona sets the "to_persona" field if the given value is not nil.
func (_c *MessageCreate) SetNillableToPersona(v *string) *MessageCreate {
	if v != nil {
		_c.SetToPersona(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetType sets the "type" field.
func (_c *MessageCreate) SetType(v message.Type) *MessageCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetInternalReasoning sets the "internal_reasoning" field.
func (_c *MessageCreate) SetInternalReasoning(v string) *MessageCreate {
	_c.mutation.SetInternalReasoning(v)
	return _c
}

// SetNillableInternalReasoning sets the "internal_reasoning" field if the given value is not nil.
func (_c *MessageCreate) SetNillableInternalReasoning(v *string) *MessageCreate {
	if v != nil {
		_c.SetInternalReasoning(*v)
	}
	return _c
}

// SetDelegateToPersona sets the "delegate_to_persona" field.
func (_c *MessageCreate) SetDelegateToPersona(v string) *MessageCreate {
	_c.mutation.SetDelegateToPersona(v)
	return _c
}

// SetNillableDelegateToPersona sets the "delegate_to_persona" field if the given value is not nil.
func (_c *MessageCreate) SetNillableDelegateToPersona(v *string) *MessageCreate {
	if v != nil {
		_c.SetDelegateToPersona(*v)
	}
	return _c
}

// SetDelegationContext sets the "delegation_context" field.
func (_c *MessageCreate) SetDelegationContext(v string) *MessageCreate {
	_c.mutation.SetDelegationContext(v)
	return _c
}

// SetNillableDelegationContext sets the "delegation_context" field if the given value is not nil.
func (_c *MessageCreate) SetNillableDelegationContext(v *string) *MessageCreate {
	if v != nil {
		_c.SetDelegationContext(*v)
	}
	return _c
}

// SetIsStuck sets the "is_stuck" field.
func (_c *MessageCreate) SetIsStuck(v bool) *MessageCreate {
	_c.mutation.SetIsStuck(v)
	return _c
}

// SetNillableIsStuck sets the "is_stuck" field if the given value is not nil.
func (_c *MessageCreate) SetNillableIsStuck(v *bool) *MessageCreate {
	if v != nil {
		_c.SetIsStuck(*v)
	}
	return _c
}

// SetRawResponse sets the "raw_response" field.
func (_c *MessageCreate) SetRawResponse(v string) *MessageCreate {
	_c.mutation.SetRawResponse(v)
	return _c
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_c *MessageCreate) SetNillableRawResponse(v *string) *MessageCreate {
	if v != nil {
		_c.SetRawResponse(*v)
	}
	return _c
}

// SetParentMessageID sets the "parent_message_id" field.
func (_c *MessageCreate) SetParentMessageID(v string) *MessageCreate {
	_c.mutation.SetParentMessageID(v)
	return _c
}

// SetNillableParentMessageID sets the "parent_message_id" field if the given value is not nil.
func (_c *MessageCreate) SetNillableParentMessageID(v *string) *MessageCreate {
	if v != nil {
		_c.SetParentMessageID(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MessageCreate) SetTimestamp(v time.Time) *MessageCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MessageCreate) SetNillableTimestamp(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *MessageCreate) SetSession(v *Session) *MessageCreate {
	return _c.SetSessionID(v.ID)
}

// SetParentID sets the "parent" edge to the Message entity by ID.
func (_c *MessageCreate) SetParentID(id string) *MessageCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetNillableParentID sets the "parent" edge to the Message entity by ID if the given value is not nil.
func (_c *MessageCreate) SetNillableParentID(id *string) *MessageCreate {
	if id != nil {
		_c = _c.SetParentID(*id)
	}
	return _c
}

// SetParent sets the "parent" edge to the Message entity.
func (_c *MessageCreate) SetParent(v *Message) *MessageCreate {
	return _c.SetParentID(v.ID)
}

// AddReplyIDs adds the "replies" edge to the Message entity by IDs.
func (_c *MessageCreate) AddReplyIDs(ids ...string) *MessageCreate {
	_c.mutation.AddReplyIDs(ids...)
	return _c
}

// AddReplies adds the "replies" edges to the Message entity.
func (_c *MessageCreate) AddReplies(v ...*Message) *MessageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReplyIDs(ids...)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.IsStuck(); !ok {
		v := message.DefaultIsStuck
		_c.mutation.SetIsStuck(v)
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := message.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Message.session_id"`)}
	}
	if _, ok := _c.mutation.FromPersona(); !ok {
		return &ValidationError{Name: "from_persona", err: errors.New(`ent: missing required field "Message.from_persona"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Message.content"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Message.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := message.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Message.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsStuck(); !ok {
		return &ValidationError{Name: "is_stuck", err: errors.New(`ent: missing required field "Message.is_stuck"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Message.timestamp"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Message.session"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
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
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FromPersona(); ok {
		_spec.SetField(message.FieldFromPersona, field.TypeString, value)
		_node.FromPersona = value
	}
	if value, ok := _c.mutation.ToPersona(); ok {
		_spec.SetField(message.FieldToPersona, field.TypeString, value)
		_node.ToPersona = &value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(message.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.InternalReasoning(); ok {
		_spec.SetField(message.FieldInternalReasoning, field.TypeString, value)
		_node.InternalReasoning = &value
	}
	if value, ok := _c.mutation.DelegateToPersona(); ok {
		_spec.SetField(message.FieldDelegateToPersona, field.TypeString, value)
		_node.DelegateToPersona = &value
	}
	if value, ok := _c.mutation.DelegationContext(); ok {
		_spec.SetField(message.FieldDelegationContext, field.TypeString, value)
		_node.DelegationContext = &value
	}
	if value, ok := _c.mutation.IsStuck(); ok {
		_spec.SetField(message.FieldIsStuck, field.TypeBool, value)
		_node.IsStuck = value
	}
	if value, ok := _c.mutation.RawResponse(); ok {
		_spec.SetField(message.FieldRawResponse, field.TypeString, value)
		_node.RawResponse = &value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(message.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.SessionTable,
			Columns: []string{message.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.ParentTable,
			Columns: []string{message.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentMessageID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RepliesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   message.RepliesTable,
			Columns: []string{message.RepliesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
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
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
