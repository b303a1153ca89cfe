package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for a single conversation turn.
// One row per user input and one per persona invocation; never updated
// after creation.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("from_persona").
			Immutable().
			Comment("Author: User or one of the ten personas"),
		field.String("to_persona").
			Optional().
			Nillable().
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Enum("type").
			Values("problem_statement", "question", "answer", "delegation",
				"clarification", "user_response", "solution", "stuck", "decline").
			Immutable(),
		field.Text("internal_reasoning").
			Optional().
			Nillable().
			Immutable().
			Comment("REASONING block extracted from the raw model output"),
		field.String("delegate_to_persona").
			Optional().
			Nillable().
			Immutable(),
		field.Text("delegation_context").
			Optional().
			Nillable().
			Immutable(),
		field.Bool("is_stuck").
			Default(false).
			Immutable(),
		field.Text("raw_response").
			Optional().
			Nillable().
			Immutable().
			Comment("Unparsed model output, preserved for audit and replay"),
		field.String("parent_message_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Reply tree: the message this one responds to"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("Strictly increasing within a session"),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("replies", Message.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)).
			From("parent").
			Field("parent_message_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "timestamp"),
	}
}
