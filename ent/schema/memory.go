package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Memory holds the schema definition for a persona's associative memory
// entry. Bounded per (session, persona); oldest rows are evicted when the
// cap is exceeded.
type Memory struct {
	ent.Schema
}

// Fields of the Memory.
func (Memory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("persona").
			Immutable(),
		field.String("identifier").
			Comment("Short key chosen by the persona, at most 10 words"),
		field.Text("content").
			Comment("At most 2000 words"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Int("access_count").
			Default(0),
		field.Time("last_accessed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Memory.
func (Memory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("memories").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Memory.
func (Memory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "persona", "identifier").
			Unique(),
		index.Fields("session_id", "persona", "created_at"),
	}
}
