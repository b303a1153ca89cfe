package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/database"
	"github.com/conclave-dev/conclave/pkg/services"
	testdb "github.com/conclave-dev/conclave/test/database"
	"github.com/conclave-dev/conclave/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	sessionID    string // Pre-created session (satisfies FK on events)
	channel      string // session:<sessionID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create a session to satisfy the FK on the events table
	sessionID := uuid.New().String()
	_, err := dbClient.Session.Create().
		SetID(sessionID).
		SetTitle("integration test").
		SetProblemStatement("How should we partition the event log?").
		SetStatus(session.StatusActive).
		Save(ctx)
	require.NoError(t, err)

	channel := SessionChannel(sessionID)

	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		sessionID:    sessionID,
		channel:      channel,
	}
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := connectWS(t, env.server)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the LISTEN command to complete on the NotifyListener's
	// dedicated connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

func (env *streamingTestEnv) statusPayload(status string) SessionStatusPayload {
	return SessionStatusPayload{
		Type:      EventTypeSessionStatus,
		SessionID: env.sessionID,
		Session: SessionRecord{
			ID:        env.sessionID,
			Title:     "integration test",
			Status:    status,
			UpdatedAt: time.Now().Format(time.RFC3339Nano),
		},
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	require.NoError(t, env.publisher.PublishSessionStatus(ctx, env.sessionID, env.statusPayload("active")))

	msgPayload := MessageReceivedPayload{
		Type:      EventTypeMessageReceived,
		SessionID: env.sessionID,
		Message: MessageRecord{
			ID:          uuid.New().String(),
			SessionID:   env.sessionID,
			FromPersona: "Coordinator",
			Content:     "first delegation",
			MessageType: "delegation",
			Timestamp:   time.Now().Format(time.RFC3339Nano),
		},
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
	require.NoError(t, env.publisher.PublishMessageReceived(ctx, env.sessionID, msgPayload))

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, env.sessionID, events[0].SessionID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeSessionStatus, events[0].Payload["type"])
	assert.Equal(t, EventTypeMessageReceived, events[1].Payload["type"])
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	require.NoError(t, env.publisher.PublishSolutionReady(ctx, env.sessionID, SolutionReadyPayload{
		Type:      EventTypeSolutionReady,
		SessionID: env.sessionID,
		Session: SessionRecord{
			ID:     env.sessionID,
			Status: "completed",
		},
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}))

	// The event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeSolutionReady, msg["type"])
	assert.Equal(t, env.sessionID, msg["session_id"])
	// db_event_id is added by persistAndNotify after INSERT
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_EventOrderPreserved(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	statuses := []string{"active", "waiting_for_clarification", "active", "completed"}
	for _, status := range statuses {
		require.NoError(t, env.publisher.PublishSessionStatus(ctx, env.sessionID, env.statusPayload(status)))
	}

	var lastEventID float64
	for _, status := range statuses {
		msg := readJSONTimeout(t, conn, 5*time.Second)
		require.Equal(t, EventTypeSessionStatus, msg["type"])
		sess := msg["session"].(map[string]interface{})
		assert.Equal(t, status, sess["status"])

		id, ok := msg["db_event_id"].(float64)
		require.True(t, ok)
		assert.Greater(t, id, lastEventID, "events must arrive in insertion order")
		lastEventID = id
	}
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate the event log before any client connects
	for _, status := range []string{"active", "waiting_for_clarification", "active"} {
		require.NoError(t, env.publisher.PublishSessionStatus(ctx, env.sessionID, env.statusPayload(status)))
	}

	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// A new client subscribing gets all prior events via auto-catchup
	conn := connectWS(t, env.server)
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: env.channel})
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	for i := 0; i < 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeSessionStatus, msg["type"])
		assert.Equal(t, float64(allEvents[i].ID), msg["db_event_id"])
	}

	// Explicit catchup from the first event's ID returns only the tail
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: env.channel, LastEventID: &firstEventID})
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, float64(allEvents[1].ID), msg["db_event_id"])
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, float64(allEvents[2].ID), msg["db_event_id"])
}

func TestIntegration_GlobalSessionsChannelTransient(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Subscribe to the global sessions channel
	conn := connectWS(t, env.server)
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalSessionsChannel})
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.isListening(GlobalSessionsChannel)
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, env.publisher.PublishSessionStatus(ctx, env.sessionID, env.statusPayload("completed")))

	// The copy on the global channel arrives live...
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeSessionStatus, msg["type"])
	assert.Equal(t, env.sessionID, msg["session_id"])

	// ...but is not persisted there: only the session channel stores rows
	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalSessionsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents, "global sessions channel events are transient")
}

func TestIntegration_OversizedPayloadTruncatedOnWire(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	big := make([]byte, 9000)
	for i := range big {
		big[i] = 'z'
	}
	require.NoError(t, env.publisher.PublishSessionStuck(ctx, env.sessionID, SessionStuckPayload{
		Type:        EventTypeSessionStuck,
		SessionID:   env.sessionID,
		Session:     SessionRecord{ID: env.sessionID, Status: "stuck"},
		PartialText: string(big),
		Timestamp:   time.Now().Format(time.RFC3339Nano),
	}))

	// The NOTIFY copy is a truncation envelope; the DB row keeps the full payload
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeSessionStuck, msg["type"])
	assert.Equal(t, true, msg["truncated"])
	assert.NotNil(t, msg["db_event_id"])

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	partial, _ := events[0].Payload["partial_text"].(string)
	assert.Len(t, partial, 9000)
}
