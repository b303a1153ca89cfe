package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/conclave-dev/conclave/test/database"
)

func TestEventService_CreateAndGetEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, sessions)
	channel := "session:" + sess.ID

	first, err := service.CreateEvent(ctx, sess.ID, channel, map[string]any{"type": "session.status", "status": "active"})
	require.NoError(t, err)
	second, err := service.CreateEvent(ctx, sess.ID, channel, map[string]any{"type": "message.created"})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID, "event IDs must be monotonically increasing")

	t.Run("returns events after sinceID in order", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, first.ID, events[0].ID)
		assert.Equal(t, second.ID, events[1].ID)

		tail, err := service.GetEventsSince(ctx, channel, first.ID, 0)
		require.NoError(t, err)
		require.Len(t, tail, 1)
		assert.Equal(t, second.ID, tail[0].ID)
	})

	t.Run("honors limit", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, channel, 0, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, first.ID, events[0].ID)
	})

	t.Run("scopes by channel", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "session:other", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventService_CleanupSessionEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	sess := createTestSession(t, sessions)
	other := createTestSession(t, sessions)

	for i := 0; i < 3; i++ {
		_, err := service.CreateEvent(ctx, sess.ID, "session:"+sess.ID, map[string]any{"n": i})
		require.NoError(t, err)
	}
	_, err := service.CreateEvent(ctx, other.ID, "session:"+other.ID, map[string]any{})
	require.NoError(t, err)

	count, err := service.CleanupSessionEvents(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	remaining, err := service.GetEventsSince(ctx, "session:"+other.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestEventService_CleanupOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := NewSessionService(client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()
	sess := createTestSession(t, sessions)
	channel := "session:" + sess.ID

	_, err := client.Client.Event.Create().
		SetSessionID(sess.ID).
		SetChannel(channel).
		SetPayload(map[string]any{}).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := service.CreateEvent(ctx, sess.ID, channel, map[string]any{})
	require.NoError(t, err)

	count, err := service.CleanupOldEvents(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	events, err := service.GetEventsSince(ctx, channel, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fresh.ID, events[0].ID)
}
