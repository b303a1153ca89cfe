package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatchupQuerier implements CatchupQuerier for tests.
type mockCatchupQuerier struct {
	events []CatchupEvent
	err    error
}

func (m *mockCatchupQuerier) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]CatchupEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]CatchupEvent, 0, len(m.events))
	for _, evt := range m.events {
		if evt.ID > sinceID {
			out = append(out, evt)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func setupTestManager(t *testing.T, querier CatchupQuerier) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(querier, 5*time.Second)
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
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestManager_ConnectionEstablished(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestManager_SubscribeAndBroadcast(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSONTimeout(t, conn, 5*time.Second) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "subscription.confirmed", msg["type"])
	assert.Equal(t, "session:abc", msg["channel"])

	require.Eventually(t, func() bool {
		return manager.subscriberCount("session:abc") == 1
	}, 2*time.Second, 10*time.Millisecond)

	manager.Broadcast("session:abc", []byte(`{"type":"session.status","session_id":"abc"}`))
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "session.status", msg["type"])
	assert.Equal(t, "abc", msg["session_id"])
}

func TestManager_BroadcastScopedToChannel(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSONTimeout(t, conn, 5*time.Second)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed

	// Event on a different channel must not reach this client
	manager.Broadcast("session:other", []byte(`{"type":"session.status"}`))
	manager.Broadcast("session:abc", []byte(`{"type":"solution.ready"}`))

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "solution.ready", msg["type"])
}

func TestManager_SubscribeRequiresChannel(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSONTimeout(t, conn, 5*time.Second)

	writeJSON(t, conn, ClientMessage{Action: "subscribe"})
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "error", msg["type"])
}

func TestManager_Ping(t *testing.T) {
	_, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSONTimeout(t, conn, 5*time.Second)

	writeJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "pong", msg["type"])
}

func TestManager_AutoCatchupOnSubscribe(t *testing.T) {
	querier := &mockCatchupQuerier{
		events: []CatchupEvent{
			{ID: 1, Payload: map[string]interface{}{"type": "session.status", "n": 1.0}},
			{ID: 2, Payload: map[string]interface{}{"type": "message.received", "n": 2.0}},
		},
	}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSONTimeout(t, conn, 5*time.Second)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Prior events replay in insertion order with db_event_id injected
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "session.status", msg["type"])
	assert.Equal(t, float64(1), msg["db_event_id"])

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "message.received", msg["type"])
	assert.Equal(t, float64(2), msg["db_event_id"])
}

func TestManager_ExplicitCatchupSince(t *testing.T) {
	querier := &mockCatchupQuerier{
		events: []CatchupEvent{
			{ID: 1, Payload: map[string]interface{}{"type": "session.status"}},
			{ID: 2, Payload: map[string]interface{}{"type": "message.received"}},
			{ID: 3, Payload: map[string]interface{}{"type": "solution.ready"}},
		},
	}
	_, server := setupTestManager(t, querier)
	conn := connectWS(t, server)
	readJSONTimeout(t, conn, 5*time.Second)

	since := 2
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: "session:abc", LastEventID: &since})

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "solution.ready", msg["type"])
	assert.Equal(t, float64(3), msg["db_event_id"])
}

func TestManager_CatchupOverflow(t *testing.T) {
	var events []CatchupEvent
	for i := 1; i <= catchupLimit+10; i++ {
		events = append(events, CatchupEvent{
			ID:      i,
			Payload: map[string]interface{}{"type": "message.received"},
		})
	}
	_, server := setupTestManager(t, &mockCatchupQuerier{events: events})
	conn := connectWS(t, server)
	readJSONTimeout(t, conn, 5*time.Second)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	for i := 1; i <= catchupLimit; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		require.Equal(t, float64(i), msg["db_event_id"])
	}

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "catchup.overflow", msg["type"])
	assert.Equal(t, true, msg["has_more"])
}

func TestManager_UnsubscribeStopsDelivery(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSONTimeout(t, conn, 5*time.Second)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	readJSONTimeout(t, conn, 5*time.Second)

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: "session:abc"})
	require.Eventually(t, func() bool {
		return manager.subscriberCount("session:abc") == 0
	}, 2*time.Second, 10*time.Millisecond)

	manager.Broadcast("session:abc", []byte(`{"type":"session.status"}`))

	// Ping round-trip proves no broadcast arrived first
	writeJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, "pong", msg["type"])
}

func TestManager_DisconnectCleansUp(t *testing.T) {
	manager, server := setupTestManager(t, &mockCatchupQuerier{})
	conn := connectWS(t, server)
	readJSONTimeout(t, conn, 5*time.Second)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: "session:abc"})
	readJSONTimeout(t, conn, 5*time.Second)

	conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool {
		return manager.ActiveConnections() == 0 && manager.subscriberCount("session:abc") == 0
	}, 2*time.Second, 10*time.Millisecond)
}
