// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/session"
)

// Message is the model entity for the Message schema.
type Message struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Author: User or one of the ten personas
	FromPersona string `json:"from_persona,omitempty"`
	// ToPersona holds the value of the "to_persona" field.
	ToPersona *string `json:"to_persona,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Type holds the value of the "type" field.
	Type message.Type `json:"type,omitempty"`
	// REASONING block extracted from the raw model output
	InternalReasoning *string `json:"internal_reasoning,omitempty"`
	// DelegateToPersona holds the value of the "delegate_to_persona" field.
	DelegateToPersona *string `json:"delegate_to_persona,omitempty"`
	// DelegationContext holds the value of the "delegation_context" field.
	DelegationContext *string `json:"delegation_context,omitempty"`
	// IsStuck holds the value of the "is_stuck" field.
	IsStuck bool `json:"is_stuck,omitempty"`
	// Unparsed model output, preserved for audit and replay
	RawResponse *string `json:"raw_response,omitempty"`
	// Reply tree: the message this one responds to
	ParentMessageID *string `json:"parent_message_id,omitempty"`
	// Strictly increasing within a session
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MessageQuery when eager-loading is set.
	Edges        MessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MessageEdges holds the relations/edges for other nodes in the graph.
type MessageEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *Message `json:"parent,omitempty"`
	// Replies holds the value of the replies edge.
	Replies []*Message `json:"replies,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MessageEdges) ParentOrErr() (*Message, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: message.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// RepliesOrErr returns the Replies value or an error if the edge
// was not loaded in eager-loading.
func (e MessageEdges) RepliesOrErr() ([]*Message, error) {
	if e.loadedTypes[2] {
		return e.Replies, nil
	}
	return nil, &NotLoadedError{edge: "replies"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Message) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case message.FieldIsStuck:
			values[i] = new(sql.NullBool)
		case message.FieldID, message.FieldSessionID, message.FieldFromPersona, message.FieldToPersona, message.FieldContent, message.FieldType, message.FieldInternalReasoning, message.FieldDelegateToPersona, message.FieldDelegationContext, message.FieldRawResponse, message.FieldParentMessageID:
			values[i] = new(sql.NullString)
		case message.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Message fields.
func (_m *Message) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case message.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case message.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case message.FieldFromPersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_persona", values[i])
			} else if value.Valid {
				_m.FromPersona = value.String
			}
		case message.FieldToPersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_persona", values[i])
			} else if value.Valid {
				_m.ToPersona = new(string)
				*_m.ToPersona = value.String
			}
		case message.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case message.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = message.Type(value.String)
			}
		case message.FieldInternalReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field internal_reasoning", values[i])
			} else if value.Valid {
				_m.InternalReasoning = new(string)
				*_m.InternalReasoning = value.String
			}
		case message.FieldDelegateToPersona:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delegate_to_persona", values[i])
			} else if value.Valid {
				_m.DelegateToPersona = new(string)
				*_m.DelegateToPersona = value.String
			}
		case message.FieldDelegationContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delegation_context", values[i])
			} else if value.Valid {
				_m.DelegationContext = new(string)
				*_m.DelegationContext = value.String
			}
		case message.FieldIsStuck:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_stuck", values[i])
			} else if value.Valid {
				_m.IsStuck = value.Bool
			}
		case message.FieldRawResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_response", values[i])
			} else if value.Valid {
				_m.RawResponse = new(string)
				*_m.RawResponse = value.String
			}
		case message.FieldParentMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_message_id", values[i])
			} else if value.Valid {
				_m.ParentMessageID = new(string)
				*_m.ParentMessageID = value.String
			}
		case message.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Message.
// This includes values selected through modifiers, order, etc.
func (_m *Message) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Message entity.
func (_m *Message) QuerySession() *SessionQuery {
	return NewMessageClient(_m.config).QuerySession(_m)
}

// QueryParent queries the "parent" edge of the Message entity.
func (_m *Message) QueryParent() *MessageQuery {
	return NewMessageClient(_m.config).QueryParent(_m)
}

// QueryReplies queries the "replies" edge of the Message entity.
func (_m *Message) QueryReplies() *MessageQuery {
	return NewMessageClient(_m.config).QueryReplies(_m)
}

// Update returns a builder for updating this Message.
// Note that you need to call Message.Unwrap() before calling this method if this Message
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Message) Update() *MessageUpdateOne {
	return NewMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Message entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Message) Unwrap() *Message {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Message is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Message) String() string {
	var builder strings.Builder
	builder.WriteString("Message(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("from_persona=")
	builder.WriteString(_m.FromPersona)
	builder.WriteString(", ")
	if v := _m.ToPersona; v != nil {
		builder.WriteString("to_persona=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	if v := _m.InternalReasoning; v != nil {
		builder.WriteString("internal_reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DelegateToPersona; v != nil {
		builder.WriteString("delegate_to_persona=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DelegationContext; v != nil {
		builder.WriteString("delegation_context=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_stuck=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsStuck))
	builder.WriteString(", ")
	if v := _m.RawResponse; v != nil {
		builder.WriteString("raw_response=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ParentMessageID; v != nil {
		builder.WriteString("parent_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Messages is a parsable slice of Message.
type Messages []*Message
