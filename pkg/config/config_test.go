package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/pkg/models"
)

var configEnvKeys = []string{
	"HTTP_PORT", "ALLOWED_WS_ORIGINS",
	"LLM_BASE_URL", "LLM_API_KEY", "LLM_DEFAULT_MODEL", "LLM_TIMEOUT",
	"WORKSPACE_ROOT", "MEMORY_CAP_PER_PERSONA",
	"EVENT_TTL", "CLEANUP_INTERVAL",
}

func clearConfigEnv(t *testing.T) {
	for _, key := range configEnvKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range configEnvKeys {
			os.Unsetenv(key)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.AllowedWSOrigins)
	assert.Equal(t, "http://localhost:8000/v1", cfg.LLM.BaseURL)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, 120*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "./workspace", cfg.Workspace.Root)
	assert.Equal(t, 10, cfg.Memory.CapPerPersona)
	assert.Equal(t, time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 12*time.Hour, cfg.Retention.CleanupInterval)
}

func TestLoadCustomValues(t *testing.T) {
	clearConfigEnv(t)
	os.Setenv("HTTP_PORT", "9090")
	os.Setenv("ALLOWED_WS_ORIGINS", "https://a.example.com, https://b.example.com ,")
	os.Setenv("LLM_BASE_URL", "https://api.example.com/v1")
	os.Setenv("LLM_API_KEY", "sk-test")
	os.Setenv("LLM_TIMEOUT", "30s")
	os.Setenv("MEMORY_CAP_PER_PERSONA", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedWSOrigins)
	assert.Equal(t, "https://api.example.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 25, cfg.Memory.CapPerPersona)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		value       string
		errContains string
	}{
		{"bad timeout", "LLM_TIMEOUT", "soon", "invalid LLM_TIMEOUT"},
		{"bad memory cap", "MEMORY_CAP_PER_PERSONA", "many", "invalid MEMORY_CAP_PER_PERSONA"},
		{"zero memory cap", "MEMORY_CAP_PER_PERSONA", "0", "must be positive"},
		{"bad event ttl", "EVENT_TTL", "never", "invalid EVENT_TTL"},
		{"bad cleanup interval", "CLEANUP_INTERVAL", "often", "invalid CLEANUP_INTERVAL"},
		{"non-http llm url", "LLM_BASE_URL", "ftp://models.example.com", "must be an http(s) URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			os.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestDefaultPersonaConfigsCoversAllAgents(t *testing.T) {
	seeds := DefaultPersonaConfigs("test-model")
	require.Len(t, seeds, len(models.AgentPersonas))

	seen := make(map[models.Persona]bool)
	for i, seed := range seeds {
		assert.True(t, seed.Persona.IsAgent(), "seed %d persona %q", i, seed.Persona)
		assert.False(t, seen[seed.Persona], "duplicate seed for %q", seed.Persona)
		seen[seed.Persona] = true

		assert.NotEmpty(t, seed.DisplayName)
		assert.NotEmpty(t, seed.SystemPrompt)
		assert.Equal(t, "test-model", seed.ModelName)
		assert.GreaterOrEqual(t, seed.Temperature, 0.0)
		assert.LessOrEqual(t, seed.Temperature, 1.0)
		assert.Positive(t, seed.MaxTokens)
		assert.Equal(t, i+1, seed.SortOrder)
		assert.True(t, seed.Enabled)
	}
}
