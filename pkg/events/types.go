// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Every event is persisted to the events table and broadcast via
// pg_notify in the same transaction, so the stored log and the live
// stream observe the same per-session insertion order. Reconnecting
// clients replay missed events from the table (catchup) before
// receiving live notifications.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeMessageReceived fires for every message appended to a
	// session's timeline, user input and persona output alike.
	EventTypeMessageReceived = "message.received"

	// EventTypeSessionStatus fires on every session lifecycle transition.
	EventTypeSessionStatus = "session.status"

	// EventTypeClarificationRequested fires when a persona asks the
	// user a question and the session suspends.
	EventTypeClarificationRequested = "clarification.requested"

	// EventTypeSolutionReady fires when a session completes with a
	// compiled final solution.
	EventTypeSolutionReady = "solution.ready"

	// EventTypeSessionStuck fires when a session gives up; the payload
	// carries the partial solution compiled from prior contributions.
	EventTypeSessionStuck = "session.stuck"
)

// GlobalSessionsChannel is the channel for session-level status events.
// The session list page subscribes to this for real-time updates.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a specific session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
