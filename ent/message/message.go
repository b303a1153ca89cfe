// Code generated by ent, DO NOT EDIT.

package message

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the message type in the database.
	Label = "message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldFromPersona holds the string denoting the from_persona field in the database.
	FieldFromPersona = "from_persona"
	// FieldToPersona holds the string denoting the to_persona field in the database.
	FieldToPersona = "to_persona"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldInternalReasoning holds the string denoting the internal_reasoning field in the database.
	FieldInternalReasoning = "internal_reasoning"
	// FieldDelegateToPersona holds the string denoting the delegate_to_persona field in the database.
	FieldDelegateToPersona = "delegate_to_persona"
	// FieldDelegationContext holds the string denoting the delegation_context field in the database.
	FieldDelegationContext = "delegation_context"
	// FieldIsStuck holds the string denoting the is_stuck field in the database.
	FieldIsStuck = "is_stuck"
	// FieldRawResponse holds the string denoting the raw_response field in the database.
	FieldRawResponse = "raw_response"
	// FieldParentMessageID holds the string denoting the parent_message_id field in the database.
	FieldParentMessageID = "parent_message_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeReplies holds the string denoting the replies edge name in mutations.
	EdgeReplies = "replies"
	// Table holds the table name of the message in the database.
	Table = "messages"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "messages"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "messages"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_message_id"
	// RepliesTable is the table that holds the replies relation/edge.
	RepliesTable = "messages"
	// RepliesColumn is the table column denoting the replies relation/edge.
	RepliesColumn = "parent_message_id"
)

// Columns holds all SQL columns for message fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldFromPersona,
	FieldToPersona,
	FieldContent,
	FieldType,
	FieldInternalReasoning,
	FieldDelegateToPersona,
	FieldDelegationContext,
	FieldIsStuck,
	FieldRawResponse,
	FieldParentMessageID,
	FieldTimestamp,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsStuck holds the default value on creation for the "is_stuck" field.
	DefaultIsStuck bool
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeProblemStatement Type = "problem_statement"
	TypeQuestion         Type = "question"
	TypeAnswer           Type = "answer"
	TypeDelegation       Type = "delegation"
	TypeClarification    Type = "clarification"
	TypeUserResponse     Type = "user_response"
	TypeSolution         Type = "solution"
	TypeStuck            Type = "stuck"
	TypeDecline          Type = "decline"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeProblemStatement, TypeQuestion, TypeAnswer, TypeDelegation, TypeClarification, TypeUserResponse, TypeSolution, TypeStuck, TypeDecline:
		return nil
	default:
		return fmt.Errorf("message: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Message queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByFromPersona orders the results by the from_persona field.
func ByFromPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromPersona, opts...).ToFunc()
}

// ByToPersona orders the results by the to_persona field.
func ByToPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToPersona, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByInternalReasoning orders the results by the internal_reasoning field.
func ByInternalReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInternalReasoning, opts...).ToFunc()
}

// ByDelegateToPersona orders the results by the delegate_to_persona field.
func ByDelegateToPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelegateToPersona, opts...).ToFunc()
}

// ByDelegationContext orders the results by the delegation_context field.
func ByDelegationContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelegationContext, opts...).ToFunc()
}

// ByIsStuck orders the results by the is_stuck field.
func ByIsStuck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsStuck, opts...).ToFunc()
}

// ByRawResponse orders the results by the raw_response field.
func ByRawResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawResponse, opts...).ToFunc()
}

// ByParentMessageID orders the results by the parent_message_id field.
func ByParentMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentMessageID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByRepliesCount orders the results by replies count.
func ByRepliesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRepliesStep(), opts...)
	}
}

// ByReplies orders the results by replies terms.
func ByReplies(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRepliesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newRepliesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RepliesTable, RepliesColumn),
	)
}
