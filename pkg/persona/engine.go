package persona

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/pkg/llm"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/parser"
	"github.com/conclave-dev/conclave/pkg/services"
	"github.com/conclave-dev/conclave/pkg/workspace"
)

// ConfigSource provides persona configurations.
// Implemented by services.PersonaConfigService.
type ConfigSource interface {
	GetByPersona(ctx context.Context, persona models.Persona) (*ent.PersonaConfiguration, error)
}

// HistorySource provides the recent conversation window.
// Implemented by services.MessageService.
type HistorySource interface {
	GetRecentMessages(ctx context.Context, sessionID string, n int) ([]*ent.Message, error)
}

// MemoryWriter persists STORE directives.
// Implemented by memory.Store.
type MemoryWriter interface {
	Store(ctx context.Context, sessionID string, persona models.Persona, identifier, content string) (*ent.Memory, error)
}

// Engine runs a single persona invocation: prompt assembly, model call,
// response parsing, and directive side effects.
type Engine struct {
	configs  ConfigSource
	history  HistorySource
	memories MemoryWriter
	files    workspace.Sink
	provider llm.Provider
}

// NewEngine creates a persona engine. files may be nil when no workspace
// is configured; FILE directives are then dropped with a warning.
func NewEngine(configs ConfigSource, history HistorySource, memories MemoryWriter, files workspace.Sink, provider llm.Provider) *Engine {
	return &Engine{
		configs:  configs,
		history:  history,
		memories: memories,
		files:    files,
		provider: provider,
	}
}

// Process invokes the persona on the incoming message and returns its
// parsed response. Model and configuration problems never surface as
// errors; they are absorbed into synthesized Stuck or Decline responses
// so the session keeps a coherent timeline. Only repository failures
// are returned as errors.
func (e *Engine) Process(ctx context.Context, p models.Persona, incoming *ent.Message, session *ent.Session, memories []*ent.Memory) (*parser.PersonaResponse, error) {
	cfg, err := e.configs.GetByPersona(ctx, p)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			slog.Error("Persona has no configuration", "persona", p)
			return synthesize(parser.TypeStuck,
				fmt.Sprintf("I cannot respond: configuration error for persona %s.", p),
				"no persona configuration row found"), nil
		}
		return nil, fmt.Errorf("failed to load persona configuration: %w", err)
	}
	if !cfg.Enabled {
		return synthesize(parser.TypeDecline,
			fmt.Sprintf("%s is currently unavailable.", cfg.DisplayName), ""), nil
	}

	history, err := e.history.GetRecentMessages(ctx, session.ID, historyWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load message history: %w", err)
	}

	result, err := e.provider.Generate(ctx, &llm.Request{
		Model:        cfg.ModelName,
		SystemPrompt: buildSystemPrompt(cfg, session, memories),
		Messages:     buildConversation(history, incoming),
		Temperature:  cfg.Temperature,
		MaxTokens:    cfg.MaxTokens,
	})
	if err != nil {
		slog.Warn("LLM call failed", "persona", p, "session_id", session.ID, "error", err)
		return synthesize(parser.TypeStuck,
			"I encountered an error processing this request.",
			err.Error()), nil
	}
	if strings.TrimSpace(result.Content) == "" {
		slog.Warn("LLM returned empty response", "persona", p, "session_id", session.ID)
		return synthesize(parser.TypeStuck,
			"I received an empty response and cannot proceed.", ""), nil
	}

	resp := parser.Parse(result.Content)
	e.applyDirectives(ctx, p, session.ID, resp)

	return resp, nil
}

// applyDirectives performs the memory and file side effects of a parsed
// response. Failures are absorbed: a bad memory or file never interrupts
// the conversation.
func (e *Engine) applyDirectives(ctx context.Context, p models.Persona, sessionID string, resp *parser.PersonaResponse) {
	for _, store := range resp.Stores {
		if _, err := e.memories.Store(ctx, sessionID, p, store.Identifier, store.Content); err != nil {
			slog.Warn("Memory store directive failed",
				"persona", p, "session_id", sessionID,
				"identifier", store.Identifier, "error", err)
		}
	}

	for _, file := range resp.Files {
		if e.files == nil {
			slog.Warn("File directive dropped: no workspace configured",
				"persona", p, "session_id", sessionID, "path", file.Path)
			continue
		}
		if err := e.files.Write(ctx, sessionID, file.Path, []byte(file.Body)); err != nil {
			slog.Warn("File directive failed",
				"persona", p, "session_id", sessionID,
				"path", file.Path, "error", err)
		}
	}
}

// synthesize builds a response that did not come from the model.
func synthesize(t parser.ResponseType, content, reasoning string) *parser.PersonaResponse {
	return &parser.PersonaResponse{
		Type:              t,
		Content:           content,
		InternalReasoning: reasoning,
		IsStuck:           t == parser.TypeStuck,
		RawResponse:       content,
	}
}
