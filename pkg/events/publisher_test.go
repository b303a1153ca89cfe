package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStatusPayload{
			Type:      EventTypeSessionStatus,
			SessionID: "abc-123",
			Session:   SessionRecord{ID: "abc-123", Status: "active"},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeSessionStatus)
		assert.Contains(t, result, "abc-123")
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStuckPayload{
			Type:        EventTypeSessionStuck,
			SessionID:   "abc-123",
			PartialText: strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(MessageReceivedPayload{
			Type:      EventTypeMessageReceived,
			SessionID: "sess-789",
			Message:   MessageRecord{Content: strings.Repeat("x", 8000)},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeMessageReceived)
		assert.Contains(t, result, "sess-789")
		assert.Contains(t, result, `"truncated":true`)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(SolutionReadyPayload{
			Type:      EventTypeSolutionReady,
			SessionID: "sess-1",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(42), m["db_event_id"])
		assert.Equal(t, EventTypeSolutionReady, m["type"])
	})

	t.Run("keeps db_event_id in truncation envelope", func(t *testing.T) {
		payload, _ := json.Marshal(SessionStuckPayload{
			Type:        EventTypeSessionStuck,
			SessionID:   "sess-1",
			PartialText: strings.Repeat("y", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 7)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &m))
		assert.Equal(t, float64(7), m["db_event_id"])
		assert.Equal(t, true, m["truncated"])
		assert.Nil(t, m["partial_text"])
	})

	t.Run("rejects non-object payload", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte(`"not an object"`), 1)
		assert.Error(t, err)
	})
}

func TestSessionChannel(t *testing.T) {
	assert.Equal(t, "session:abc", SessionChannel("abc"))
}
