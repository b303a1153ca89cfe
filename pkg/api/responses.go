package api

import (
	"time"

	"github.com/conclave-dev/conclave/ent"
)

// SessionResponse is the wire form of a session.
type SessionResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	ProblemStatement string  `json:"problem_statement"`
	Status           string  `json:"status"`
	CurrentPersona   *string `json:"current_persona,omitempty"`
	FinalSolution    *string `json:"final_solution,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func newSessionResponse(sess *ent.Session) SessionResponse {
	return SessionResponse{
		ID:               sess.ID,
		Title:            sess.Title,
		ProblemStatement: sess.ProblemStatement,
		Status:           string(sess.Status),
		CurrentPersona:   sess.CurrentPersona,
		FinalSolution:    sess.FinalSolution,
		CreatedAt:        sess.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:        sess.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// MessageResponse is the wire form of a timeline message. Internal
// reasoning and raw model output stay server-side.
type MessageResponse struct {
	ID                string  `json:"id"`
	SessionID         string  `json:"session_id"`
	FromPersona       string  `json:"from_persona"`
	ToPersona         *string `json:"to_persona,omitempty"`
	Content           string  `json:"content"`
	Type              string  `json:"type"`
	DelegateToPersona *string `json:"delegate_to_persona,omitempty"`
	DelegationContext *string `json:"delegation_context,omitempty"`
	IsStuck           bool    `json:"is_stuck"`
	ParentMessageID   *string `json:"parent_message_id,omitempty"`
	Timestamp         string  `json:"timestamp"`
}

func newMessageResponse(msg *ent.Message) MessageResponse {
	return MessageResponse{
		ID:                msg.ID,
		SessionID:         msg.SessionID,
		FromPersona:       msg.FromPersona,
		ToPersona:         msg.ToPersona,
		Content:           msg.Content,
		Type:              string(msg.Type),
		DelegateToPersona: msg.DelegateToPersona,
		DelegationContext: msg.DelegationContext,
		IsStuck:           msg.IsStuck,
		ParentMessageID:   msg.ParentMessageID,
		Timestamp:         msg.Timestamp.Format(time.RFC3339Nano),
	}
}

func newMessageResponses(msgs []*ent.Message) []MessageResponse {
	out := make([]MessageResponse, len(msgs))
	for i, m := range msgs {
		out[i] = newMessageResponse(m)
	}
	return out
}

// PersonaConfigResponse is the wire form of a persona configuration.
// The system prompt is included: the endpoint is administrative.
type PersonaConfigResponse struct {
	Persona      string  `json:"persona"`
	DisplayName  string  `json:"display_name"`
	ModelName    string  `json:"model_name"`
	SystemPrompt string  `json:"system_prompt"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"max_tokens"`
	Enabled      bool    `json:"enabled"`
	SortOrder    int     `json:"sort_order"`
	Description  string  `json:"description,omitempty"`
}

func newPersonaConfigResponse(cfg *ent.PersonaConfiguration) PersonaConfigResponse {
	return PersonaConfigResponse{
		Persona:      cfg.Persona,
		DisplayName:  cfg.DisplayName,
		ModelName:    cfg.ModelName,
		SystemPrompt: cfg.SystemPrompt,
		Temperature:  cfg.Temperature,
		MaxTokens:    cfg.MaxTokens,
		Enabled:      cfg.Enabled,
		SortOrder:    cfg.SortOrder,
		Description:  cfg.Description,
	}
}
