// Package config loads and validates application configuration from the
// environment. A .env file (loaded by main before Load runs) can supply
// any of these variables for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the umbrella configuration object returned by Load and used
// throughout the application.
type Config struct {
	// HTTPPort is the port the API server listens on.
	HTTPPort string

	// AllowedWSOrigins lists origins allowed to open WebSocket
	// connections. Empty means same-origin only.
	AllowedWSOrigins []string

	LLM       LLMConfig
	Workspace WorkspaceConfig
	Memory    MemoryConfig
	Retention RetentionConfig
}

// LLMConfig holds settings for the OpenAI-compatible completion backend.
type LLMConfig struct {
	BaseURL      string        // Endpoint base, e.g. "https://api.openai.com/v1"
	APIKey       string        // Bearer token; empty for unauthenticated local backends
	DefaultModel string        // Model used when a persona configuration has none
	Timeout      time.Duration // Per-request completion timeout
}

// WorkspaceConfig holds settings for the session file workspace.
type WorkspaceConfig struct {
	Root string // Directory under which per-session files are written
}

// MemoryConfig bounds per-persona session memory.
type MemoryConfig struct {
	CapPerPersona int
}

// RetentionConfig controls the background event cleanup loop.
type RetentionConfig struct {
	// EventTTL is the maximum age of Event rows before deletion. The
	// messages table remains the durable record; events only need to
	// outlive client reconnect windows.
	EventTTL time.Duration

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration
}

// Load reads configuration from the environment, applying defaults and
// validating the result.
func Load() (*Config, error) {
	llmTimeout, err := time.ParseDuration(getEnvOrDefault("LLM_TIMEOUT", "120s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
	}

	memoryCap, err := strconv.Atoi(getEnvOrDefault("MEMORY_CAP_PER_PERSONA", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MEMORY_CAP_PER_PERSONA: %w", err)
	}
	if memoryCap <= 0 {
		return nil, fmt.Errorf("MEMORY_CAP_PER_PERSONA must be positive, got %d", memoryCap)
	}

	eventTTL, err := time.ParseDuration(getEnvOrDefault("EVENT_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_TTL: %w", err)
	}
	cleanupInterval, err := time.ParseDuration(getEnvOrDefault("CLEANUP_INTERVAL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLEANUP_INTERVAL: %w", err)
	}

	cfg := &Config{
		HTTPPort:         getEnvOrDefault("HTTP_PORT", "8080"),
		AllowedWSOrigins: splitOrigins(os.Getenv("ALLOWED_WS_ORIGINS")),
		LLM: LLMConfig{
			BaseURL:      getEnvOrDefault("LLM_BASE_URL", "http://localhost:8000/v1"),
			APIKey:       os.Getenv("LLM_API_KEY"),
			DefaultModel: getEnvOrDefault("LLM_DEFAULT_MODEL", "gpt-4o"),
			Timeout:      llmTimeout,
		},
		Workspace: WorkspaceConfig{
			Root: getEnvOrDefault("WORKSPACE_ROOT", "./workspace"),
		},
		Memory: MemoryConfig{
			CapPerPersona: memoryCap,
		},
		Retention: RetentionConfig{
			EventTTL:        eventTTL,
			CleanupInterval: cleanupInterval,
		},
	}

	if cfg.LLM.BaseURL == "" {
		return nil, fmt.Errorf("LLM_BASE_URL cannot be empty")
	}
	if !strings.HasPrefix(cfg.LLM.BaseURL, "http://") && !strings.HasPrefix(cfg.LLM.BaseURL, "https://") {
		return nil, fmt.Errorf("LLM_BASE_URL must be an http(s) URL, got %q", cfg.LLM.BaseURL)
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
