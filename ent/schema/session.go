package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for a problem-solving session.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title").
			Comment("Short title derived from the problem statement"),
		field.Text("problem_statement").
			Immutable().
			Comment("Original user input, never modified after creation"),
		field.Enum("status").
			Values("active", "waiting_for_clarification", "completed",
				"stuck", "cancelled", "interrupted", "error").
			Default("active"),
		field.String("current_persona").
			Optional().
			Nillable().
			Comment("Persona currently scheduled; nil when the session is idle"),
		field.Text("final_solution").
			Optional().
			Nillable().
			Comment("Set when the session completes or gives up (partial solution)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("memories", Memory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
