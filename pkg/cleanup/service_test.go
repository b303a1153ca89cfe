package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/pkg/config"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/services"
	testdb "github.com/conclave-dev/conclave/test/database"
)

func TestService_CleansUpOldEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessionService := services.NewSessionService(client.Client)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	sess, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:        uuid.New().String(),
		ProblemStatement: "How should we version the public API?",
	})
	require.NoError(t, err)

	// One event past the TTL, one fresh
	_, err = client.Client.Event.Create().
		SetSessionID(sess.ID).
		SetChannel("session:" + sess.ID).
		SetPayload(map[string]any{"type": "session.status"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Client.Event.Create().
		SetSessionID(sess.ID).
		SetChannel("session:" + sess.ID).
		SetPayload(map[string]any{"type": "session.status"}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		EventTTL:        1 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
	svc := NewService(cfg, eventService)
	svc.cleanupOldEvents(ctx)

	events, err := eventService.GetEventsSince(ctx, "session:"+sess.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, events, 1, "old event should be deleted, recent event preserved")
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := services.NewEventService(client.Client)

	cfg := &config.RetentionConfig{
		EventTTL:        1 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
	svc := NewService(cfg, eventService)

	svc.Start(context.Background())
	svc.Stop()
}
