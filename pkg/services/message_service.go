package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/pkg/models"
)

// MessageService manages the per-session conversation timeline
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// AppendMessage appends a message to a session's timeline. Timestamps
// are strictly increasing within a session: if the wall clock has not
// advanced past the last message, the new timestamp is bumped just
// beyond it.
func (s *MessageService) AppendMessage(_ context.Context, req models.AppendMessageRequest) (*ent.Message, error) {
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.FromPersona == "" {
		return nil, NewValidationError("from_persona", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ts := time.Now()
	last, err := tx.Message.Query().
		Where(message.SessionIDEQ(req.SessionID)).
		Order(ent.Desc(message.FieldTimestamp)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query last message: %w", err)
	}
	if last != nil && !ts.After(last.Timestamp) {
		ts = last.Timestamp.Add(time.Microsecond)
	}

	builder := tx.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(req.SessionID).
		SetFromPersona(req.FromPersona.String()).
		SetContent(req.Content).
		SetType(req.Type).
		SetIsStuck(req.IsStuck).
		SetTimestamp(ts)
	if req.ToPersona != nil {
		builder.SetToPersona(req.ToPersona.String())
	}
	if req.InternalReasoning != "" {
		builder.SetInternalReasoning(req.InternalReasoning)
	}
	if req.DelegateToPersona != nil {
		builder.SetDelegateToPersona(req.DelegateToPersona.String())
	}
	if req.DelegationContext != "" {
		builder.SetDelegationContext(req.DelegationContext)
	}
	if req.RawResponse != "" {
		builder.SetRawResponse(req.RawResponse)
	}
	if req.ParentMessageID != nil {
		builder.SetParentMessageID(*req.ParentMessageID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message: %w", err)
	}

	return msg, nil
}

// GetSessionMessages retrieves all messages for a session in timeline order
func (s *MessageService) GetSessionMessages(ctx context.Context, sessionID string) ([]*ent.Message, error) {
	messages, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Asc(message.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session messages: %w", err)
	}

	return messages, nil
}

// GetRecentMessages retrieves the last n messages of a session in
// chronological order
func (s *MessageService) GetRecentMessages(ctx context.Context, sessionID string, n int) ([]*ent.Message, error) {
	if n <= 0 {
		return nil, nil
	}

	messages, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Desc(message.FieldTimestamp)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %w", err)
	}

	// Reverse into chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// GetMessage retrieves a single message by ID
func (s *MessageService) GetMessage(ctx context.Context, messageID string) (*ent.Message, error) {
	msg, err := s.client.Message.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return msg, nil
}

// GetLastMessageOfType retrieves the most recent message of the given type
// in a session. Returns ErrNotFound when the session has none.
func (s *MessageService) GetLastMessageOfType(ctx context.Context, sessionID string, msgType message.Type) (*ent.Message, error) {
	msg, err := s.client.Message.Query().
		Where(
			message.SessionIDEQ(sessionID),
			message.TypeEQ(msgType),
		).
		Order(ent.Desc(message.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get last message of type: %w", err)
	}

	return msg, nil
}

// CountSessionMessages returns the number of messages in a session
func (s *MessageService) CountSessionMessages(ctx context.Context, sessionID string) (int, error) {
	count, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count session messages: %w", err)
	}

	return count, nil
}
