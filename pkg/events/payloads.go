package events

import (
	"time"

	"github.com/conclave-dev/conclave/ent"
)

// MessageRecord is the wire form of a timeline message.
type MessageRecord struct {
	ID                string  `json:"id"`
	SessionID         string  `json:"session_id"`
	FromPersona       string  `json:"from_persona"`
	ToPersona         *string `json:"to_persona,omitempty"`
	Content           string  `json:"content"`
	MessageType       string  `json:"message_type"`
	DelegateToPersona *string `json:"delegate_to_persona,omitempty"`
	DelegationContext *string `json:"delegation_context,omitempty"`
	IsStuck           bool    `json:"is_stuck"`
	ParentMessageID   *string `json:"parent_message_id,omitempty"`
	Timestamp         string  `json:"timestamp"` // RFC3339Nano
}

// NewMessageRecord converts a persisted message into its wire form.
// Internal reasoning and the raw model output stay server-side.
func NewMessageRecord(msg *ent.Message) MessageRecord {
	return MessageRecord{
		ID:                msg.ID,
		SessionID:         msg.SessionID,
		FromPersona:       msg.FromPersona,
		ToPersona:         msg.ToPersona,
		Content:           msg.Content,
		MessageType:       string(msg.Type),
		DelegateToPersona: msg.DelegateToPersona,
		DelegationContext: msg.DelegationContext,
		IsStuck:           msg.IsStuck,
		ParentMessageID:   msg.ParentMessageID,
		Timestamp:         msg.Timestamp.Format(time.RFC3339Nano),
	}
}

// SessionRecord is the wire form of a session.
type SessionRecord struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Status         string  `json:"status"`
	CurrentPersona *string `json:"current_persona,omitempty"`
	FinalSolution  *string `json:"final_solution,omitempty"`
	UpdatedAt      string  `json:"updated_at"` // RFC3339Nano
}

// NewSessionRecord converts a persisted session into its wire form.
func NewSessionRecord(sess *ent.Session) SessionRecord {
	return SessionRecord{
		ID:             sess.ID,
		Title:          sess.Title,
		Status:         string(sess.Status),
		CurrentPersona: sess.CurrentPersona,
		FinalSolution:  sess.FinalSolution,
		UpdatedAt:      sess.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// MessageReceivedPayload is the payload for message.received events.
type MessageReceivedPayload struct {
	Type      string        `json:"type"` // always EventTypeMessageReceived
	SessionID string        `json:"session_id"`
	Message   MessageRecord `json:"message"`
	Timestamp string        `json:"timestamp"` // RFC3339Nano
}

// SessionStatusPayload is the payload for session.status events.
type SessionStatusPayload struct {
	Type      string        `json:"type"` // always EventTypeSessionStatus
	SessionID string        `json:"session_id"`
	Session   SessionRecord `json:"session"`
	Timestamp string        `json:"timestamp"` // RFC3339Nano
}

// ClarificationRequestedPayload is the payload for clarification.requested
// events. Carries the clarification message so clients can render the
// question without a refetch.
type ClarificationRequestedPayload struct {
	Type      string        `json:"type"` // always EventTypeClarificationRequested
	SessionID string        `json:"session_id"`
	Message   MessageRecord `json:"message"`
	Question  string        `json:"question"`
	Timestamp string        `json:"timestamp"` // RFC3339Nano
}

// SolutionReadyPayload is the payload for solution.ready events.
type SolutionReadyPayload struct {
	Type      string        `json:"type"` // always EventTypeSolutionReady
	SessionID string        `json:"session_id"`
	Session   SessionRecord `json:"session"`
	Timestamp string        `json:"timestamp"` // RFC3339Nano
}

// SessionStuckPayload is the payload for session.stuck events.
type SessionStuckPayload struct {
	Type        string        `json:"type"` // always EventTypeSessionStuck
	SessionID   string        `json:"session_id"`
	Session     SessionRecord `json:"session"`
	PartialText string        `json:"partial_text"`
	Timestamp   string        `json:"timestamp"` // RFC3339Nano
}
