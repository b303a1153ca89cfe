package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/pkg/models"
	testdb "github.com/conclave-dev/conclave/test/database"
)

func createTestSession(t *testing.T, service *SessionService) *ent.Session {
	t.Helper()
	sess, err := service.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID:        uuid.New().String(),
		ProblemStatement: "test problem",
	})
	require.NoError(t, err)
	return sess
}

func TestMessageService_AppendMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, sessions)

	t.Run("persists all fields", func(t *testing.T) {
		coordinator := models.PersonaCoordinator
		target := models.PersonaSeniorDeveloper
		msg, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:         sess.ID,
			FromPersona:       coordinator,
			ToPersona:         &target,
			Content:           "Please implement the parser.",
			Type:              message.TypeDelegation,
			InternalReasoning: "The developer owns implementation work.",
			DelegateToPersona: &target,
			DelegationContext: "Use the existing lexer.",
			RawResponse:       "[REASONING]...[DELEGATE:SeniorDeveloper]",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, msg.ID)
		assert.Equal(t, "Coordinator", msg.FromPersona)
		require.NotNil(t, msg.ToPersona)
		assert.Equal(t, "SeniorDeveloper", *msg.ToPersona)
		assert.Equal(t, message.TypeDelegation, msg.Type)
		require.NotNil(t, msg.DelegateToPersona)
		assert.Equal(t, "SeniorDeveloper", *msg.DelegateToPersona)
		require.NotNil(t, msg.DelegationContext)
		assert.Equal(t, "Use the existing lexer.", *msg.DelegationContext)
		assert.False(t, msg.IsStuck)
	})

	t.Run("links parent message", func(t *testing.T) {
		parent, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:   sess.ID,
			FromPersona: models.PersonaCoordinator,
			Content:     "parent",
			Type:        message.TypeAnswer,
		})
		require.NoError(t, err)

		child, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:       sess.ID,
			FromPersona:     models.PersonaSeniorDeveloper,
			Content:         "child",
			Type:            message.TypeAnswer,
			ParentMessageID: &parent.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, child.ParentMessageID)
		assert.Equal(t, parent.ID, *child.ParentMessageID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		cases := []models.AppendMessageRequest{
			{FromPersona: models.PersonaUser, Content: "x", Type: message.TypeAnswer},
			{SessionID: sess.ID, Content: "x", Type: message.TypeAnswer},
			{SessionID: sess.ID, FromPersona: models.PersonaUser, Type: message.TypeAnswer},
			{SessionID: sess.ID, FromPersona: models.PersonaUser, Content: "x"},
		}
		for i, req := range cases {
			_, err := service.AppendMessage(ctx, req)
			assert.True(t, IsValidationError(err), "case %d", i)
		}
	})
}

func TestMessageService_TimestampsStrictlyIncrease(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, sessions)

	var msgs []*ent.Message
	for i := 0; i < 10; i++ {
		msg, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:   sess.ID,
			FromPersona: models.PersonaCoordinator,
			Content:     fmt.Sprintf("message %d", i),
			Type:        message.TypeAnswer,
		})
		require.NoError(t, err)
		msgs = append(msgs, msg)
	}

	for i := 1; i < len(msgs); i++ {
		assert.True(t, msgs[i].Timestamp.After(msgs[i-1].Timestamp),
			"message %d timestamp must be after message %d", i, i-1)
	}
}

func TestMessageService_GetSessionMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, sessions)

	for i := 0; i < 5; i++ {
		_, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:   sess.ID,
			FromPersona: models.PersonaCoordinator,
			Content:     fmt.Sprintf("message %d", i),
			Type:        message.TypeAnswer,
		})
		require.NoError(t, err)
	}

	all, err := service.GetSessionMessages(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, msg := range all {
		assert.Equal(t, fmt.Sprintf("message %d", i), msg.Content)
	}

	count, err := service.CountSessionMessages(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestMessageService_GetRecentMessages(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, sessions)

	for i := 0; i < 5; i++ {
		_, err := service.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:   sess.ID,
			FromPersona: models.PersonaCoordinator,
			Content:     fmt.Sprintf("message %d", i),
			Type:        message.TypeAnswer,
		})
		require.NoError(t, err)
	}

	recent, err := service.GetRecentMessages(ctx, sess.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Chronological order, newest last
	assert.Equal(t, "message 3", recent[0].Content)
	assert.Equal(t, "message 4", recent[1].Content)

	none, err := service.GetRecentMessages(ctx, sess.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMessageService_GetLastMessageOfType(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, sessions)

	_, err := service.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:   sess.ID,
		FromPersona: models.PersonaBusinessAnalyst,
		Content:     "Which database version?",
		Type:        message.TypeClarification,
	})
	require.NoError(t, err)
	_, err = service.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:   sess.ID,
		FromPersona: models.PersonaBusinessAnalyst,
		Content:     "Which cloud provider?",
		Type:        message.TypeClarification,
	})
	require.NoError(t, err)

	last, err := service.GetLastMessageOfType(ctx, sess.ID, message.TypeClarification)
	require.NoError(t, err)
	assert.Equal(t, "Which cloud provider?", last.Content)

	_, err = service.GetLastMessageOfType(ctx, sess.ID, message.TypeSolution)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageService_GetMessage(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewMessageService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, sessions)

	msg, err := service.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:   sess.ID,
		FromPersona: models.PersonaUser,
		Content:     "hello",
		Type:        message.TypeProblemStatement,
	})
	require.NoError(t, err)

	got, err := service.GetMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, msg.ID, got.ID)

	_, err = service.GetMessage(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}
