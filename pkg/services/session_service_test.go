package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/models"
	testdb "github.com/conclave-dev/conclave/test/database"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates active session with derived title", func(t *testing.T) {
		req := models.CreateSessionRequest{
			SessionID:        uuid.New().String(),
			ProblemStatement: "Design a rate limiter for the public API",
		}

		sess, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.SessionID, sess.ID)
		assert.Equal(t, req.ProblemStatement, sess.ProblemStatement)
		assert.Equal(t, session.StatusActive, sess.Status)
		assert.Equal(t, "Design a rate limiter for the public API", sess.Title)
		assert.Nil(t, sess.CurrentPersona)
		assert.Nil(t, sess.FinalSolution)
	})

	t.Run("truncates long titles", func(t *testing.T) {
		long := ""
		for i := 0; i < 30; i++ {
			long += fmt.Sprintf("word%d ", i)
		}
		sess, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:        uuid.New().String(),
			ProblemStatement: long,
		})
		require.NoError(t, err)
		assert.Less(t, len(sess.Title), len(long))
		assert.Contains(t, sess.Title, "...")
	})

	t.Run("truncates multibyte titles on rune boundaries", func(t *testing.T) {
		sess, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:        uuid.New().String(),
			ProblemStatement: strings.Repeat("ü", 60),
		})
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(sess.Title))
		assert.Equal(t, strings.Repeat("ü", 50)+"...", sess.Title)
	})

	t.Run("rejects blank problem statement", func(t *testing.T) {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:        uuid.New().String(),
			ProblemStatement: "   ",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate session ID", func(t *testing.T) {
		id := uuid.New().String()
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:        id,
			ProblemStatement: "first",
		})
		require.NoError(t, err)

		_, err = service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:        id,
			ProblemStatement: "second",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestSessionService_GetSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	created, err := service.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:        uuid.New().String(),
		ProblemStatement: "test problem",
	})
	require.NoError(t, err)

	got, err := service.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = service.GetSession(ctx, uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	ids := make([]string, 3)
	for i := range ids {
		sess, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:        uuid.New().String(),
			ProblemStatement: fmt.Sprintf("problem %d", i),
		})
		require.NoError(t, err)
		ids[i] = sess.ID
	}
	require.NoError(t, service.UpdateSessionStatus(ctx, ids[0], session.StatusCompleted))

	t.Run("filters by status", func(t *testing.T) {
		page, err := service.ListSessions(ctx, SessionFilters{Status: string(session.StatusCompleted)})
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalCount)
		require.Len(t, page.Sessions, 1)
		assert.Equal(t, ids[0], page.Sessions[0].ID)
	})

	t.Run("paginates newest first", func(t *testing.T) {
		page, err := service.ListSessions(ctx, SessionFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, page.TotalCount)
		assert.Len(t, page.Sessions, 2)
		assert.Equal(t, 2, page.Limit)

		rest, err := service.ListSessions(ctx, SessionFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest.Sessions, 1)
	})

	t.Run("filters by creation window", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		page, err := service.ListSessions(ctx, SessionFilters{CreatedAfter: &future})
		require.NoError(t, err)
		assert.Equal(t, 0, page.TotalCount)
	})
}

func TestSessionService_StatusAndPersona(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess, err := service.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:        uuid.New().String(),
		ProblemStatement: "test problem",
	})
	require.NoError(t, err)

	require.NoError(t, service.UpdateSessionStatus(ctx, sess.ID, session.StatusWaitingForClarification))
	persona := models.PersonaSeniorDeveloper
	require.NoError(t, service.SetCurrentPersona(ctx, sess.ID, &persona))

	got, err := service.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, session.StatusWaitingForClarification, got.Status)
	require.NotNil(t, got.CurrentPersona)
	assert.Equal(t, "SeniorDeveloper", *got.CurrentPersona)

	require.NoError(t, service.SetCurrentPersona(ctx, sess.ID, nil))
	got, err = service.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CurrentPersona)

	assert.ErrorIs(t, service.UpdateSessionStatus(ctx, uuid.New().String(), session.StatusActive), ErrNotFound)
}

func TestSessionService_SetFinalSolution(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	sess, err := service.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:        uuid.New().String(),
		ProblemStatement: "test problem",
	})
	require.NoError(t, err)

	require.NoError(t, service.SetFinalSolution(ctx, sess.ID, "Use a token bucket."))

	got, err := service.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FinalSolution)
	assert.Equal(t, "Use a token bucket.", *got.FinalSolution)
}

func TestSessionService_FindSessionsByStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	var activeIDs []string
	for i := 0; i < 2; i++ {
		sess, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID:        uuid.New().String(),
			ProblemStatement: fmt.Sprintf("problem %d", i),
		})
		require.NoError(t, err)
		activeIDs = append(activeIDs, sess.ID)
	}
	require.NoError(t, service.UpdateSessionStatus(ctx, activeIDs[1], session.StatusInterrupted))

	active, err := service.FindSessionsByStatus(ctx, session.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, activeIDs[0], active[0].ID)

	interrupted, err := service.FindSessionsByStatus(ctx, session.StatusInterrupted)
	require.NoError(t, err)
	require.Len(t, interrupted, 1)
	assert.Equal(t, activeIDs[1], interrupted[0].ID)
}

func TestSessionService_DeleteSessionCascades(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	messages := NewMessageService(client.Client)
	ctx := context.Background()

	sess, err := service.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:        uuid.New().String(),
		ProblemStatement: "test problem",
	})
	require.NoError(t, err)

	_, err = messages.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:   sess.ID,
		FromPersona: models.PersonaUser,
		Content:     "test problem",
		Type:        message.TypeProblemStatement,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteSession(ctx, sess.ID))

	_, err = service.GetSession(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	remaining, err := messages.GetSessionMessages(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	assert.ErrorIs(t, service.DeleteSession(ctx, sess.ID), ErrNotFound)
}
