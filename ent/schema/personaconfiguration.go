package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PersonaConfiguration holds the schema definition for a persona's model
// settings. Seeded with ten defaults at startup; read-only to the
// orchestration loop.
type PersonaConfiguration struct {
	ent.Schema
}

// Fields of the PersonaConfiguration.
func (PersonaConfiguration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("persona").
			Unique(),
		field.String("display_name"),
		field.String("model_name"),
		field.Text("system_prompt"),
		field.Float("temperature").
			Comment("Sampling temperature, 0..1"),
		field.Int("max_tokens"),
		field.Bool("enabled").
			Default(true),
		field.Int("sort_order"),
		field.String("description").
			Optional(),
	}
}
