package models

import "github.com/conclave-dev/conclave/ent/message"

// CreateSessionRequest contains fields for creating a new session.
type CreateSessionRequest struct {
	SessionID        string `json:"session_id"`
	Title            string `json:"title"`
	ProblemStatement string `json:"problem_statement"`
	CurrentPersona   string `json:"current_persona,omitempty"`
}

// AppendMessageRequest contains fields for appending a message to a
// session's timeline. The service assigns the ID and a strictly
// increasing timestamp.
type AppendMessageRequest struct {
	SessionID         string       `json:"session_id"`
	FromPersona       Persona      `json:"from_persona"`
	ToPersona         *Persona     `json:"to_persona,omitempty"`
	Content           string       `json:"content"`
	Type              message.Type `json:"type"`
	InternalReasoning string       `json:"internal_reasoning,omitempty"`
	DelegateToPersona *Persona     `json:"delegate_to_persona,omitempty"`
	DelegationContext string       `json:"delegation_context,omitempty"`
	IsStuck           bool         `json:"is_stuck"`
	RawResponse       string       `json:"raw_response,omitempty"`
	ParentMessageID   *string      `json:"parent_message_id,omitempty"`
}

// PersonaSeed describes one row of the default persona configuration
// set applied at startup.
type PersonaSeed struct {
	Persona      Persona
	DisplayName  string
	ModelName    string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
	Enabled      bool
	SortOrder    int
	Description  string
}
