package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "gpt-4o-mini",
			"choices": [{"message": {"role": "assistant", "content": "[SOLUTION] done"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 42, "completion_tokens": 7}
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/v1", "test-key", 5*time.Second)
	result, err := client.Generate(context.Background(), &Request{
		Model:        "gpt-4o-mini",
		SystemPrompt: "You are the Coordinator.",
		Messages: []Message{
			{Role: "user", Content: "solve it"},
		},
		Temperature: 0.4,
		MaxTokens:   1024,
	})
	require.NoError(t, err)

	assert.Equal(t, "[SOLUTION] done", result.Content)
	assert.Equal(t, "stop", result.FinishReason)
	assert.Equal(t, 42, result.PromptTokens)
	assert.Equal(t, 7, result.OutputTokens)

	// System prompt is prepended as the first message.
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "You are the Coordinator.", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, 0.4, captured.Temperature)
	assert.Equal(t, 1024, captured.MaxTokens)
	assert.False(t, captured.Stream)
}

func TestClient_GenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limit exceeded", "type": "rate_limit"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Generate(context.Background(), &Request{Model: "m", Messages: []Message{{Role: "user", Content: "x"}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestClient_GenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model": "m", "choices": []}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	result, err := client.Generate(context.Background(), &Request{Model: "m"})
	require.NoError(t, err)
	assert.Empty(t, result.Content)
}

func TestClient_GenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Generate(context.Background(), &Request{Model: "m"})
	require.Error(t, err)
}

func TestClient_GenerateContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, "", time.Second)
	_, err := client.Generate(ctx, &Request{Model: "m"})
	require.Error(t, err)
}

func TestClient_GenerateOmitsAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "ok"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second)
	result, err := client.Generate(context.Background(), &Request{Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Content)
}
