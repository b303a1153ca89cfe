// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_sessions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[3]},
			},
			{
				Name:    "event_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// MemoriesColumns holds the columns for the "memories" table.
	MemoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "persona", Type: field.TypeString},
		{Name: "identifier", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "access_count", Type: field.TypeInt, Default: 0},
		{Name: "last_accessed_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// MemoriesTable holds the schema information for the "memories" table.
	MemoriesTable = &schema.Table{
		Name:       "memories",
		Columns:    MemoriesColumns,
		PrimaryKey: []*schema.Column{MemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "memories_sessions_memories",
				Columns:    []*schema.Column{MemoriesColumns[7]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "memory_session_id_persona_identifier",
				Unique:  true,
				Columns: []*schema.Column{MemoriesColumns[7], MemoriesColumns[1], MemoriesColumns[2]},
			},
			{
				Name:    "memory_session_id_persona_created_at",
				Unique:  false,
				Columns: []*schema.Column{MemoriesColumns[7], MemoriesColumns[1], MemoriesColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "from_persona", Type: field.TypeString},
		{Name: "to_persona", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"problem_statement", "question", "answer", "delegation", "clarification", "user_response", "solution", "stuck", "decline"}},
		{Name: "internal_reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "delegate_to_persona", Type: field.TypeString, Nullable: true},
		{Name: "delegation_context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_stuck", Type: field.TypeBool, Default: false},
		{Name: "raw_response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "parent_message_id", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_messages_replies",
				Columns:    []*schema.Column{MessagesColumns[11]},
				RefColumns: []*schema.Column{MessagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[12]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[12], MessagesColumns[10]},
			},
		},
	}
	// PersonaConfigurationsColumns holds the columns for the "persona_configurations" table.
	PersonaConfigurationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "persona", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "model_name", Type: field.TypeString},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "temperature", Type: field.TypeFloat64},
		{Name: "max_tokens", Type: field.TypeInt},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "sort_order", Type: field.TypeInt},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// PersonaConfigurationsTable holds the schema information for the "persona_configurations" table.
	PersonaConfigurationsTable = &schema.Table{
		Name:       "persona_configurations",
		Columns:    PersonaConfigurationsColumns,
		PrimaryKey: []*schema.Column{PersonaConfigurationsColumns[0]},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "problem_statement", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "waiting_for_clarification", "completed", "stuck", "cancelled", "interrupted", "error"}, Default: "active"},
		{Name: "current_persona", Type: field.TypeString, Nullable: true},
		{Name: "final_solution", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
			{
				Name:    "session_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		MemoriesTable,
		MessagesTable,
		PersonaConfigurationsTable,
		SessionsTable,
	}
)

func init() {
	EventsTable.ForeignKeys[0].RefTable = SessionsTable
	MemoriesTable.ForeignKeys[0].RefTable = SessionsTable
	MessagesTable.ForeignKeys[0].RefTable = MessagesTable
	MessagesTable.ForeignKeys[1].RefTable = SessionsTable
}
