package persona

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/llm"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/parser"
	"github.com/conclave-dev/conclave/pkg/services"
)

type fakeConfigs struct {
	configs map[models.Persona]*ent.PersonaConfiguration
	err     error
}

func (f *fakeConfigs) GetByPersona(_ context.Context, p models.Persona) (*ent.PersonaConfiguration, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, ok := f.configs[p]
	if !ok {
		return nil, services.ErrNotFound
	}
	return cfg, nil
}

type fakeHistory struct {
	messages []*ent.Message
}

func (f *fakeHistory) GetRecentMessages(_ context.Context, _ string, n int) ([]*ent.Message, error) {
	if len(f.messages) > n {
		return f.messages[len(f.messages)-n:], nil
	}
	return f.messages, nil
}

type storedMemory struct {
	persona    models.Persona
	identifier string
	content    string
}

type fakeMemories struct {
	stored []storedMemory
	err    error
}

func (f *fakeMemories) Store(_ context.Context, _ string, p models.Persona, identifier, content string) (*ent.Memory, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.stored = append(f.stored, storedMemory{persona: p, identifier: identifier, content: content})
	return &ent.Memory{Identifier: identifier, Content: content}, nil
}

type writtenFile struct {
	sessionID string
	path      string
	content   string
}

type fakeSink struct {
	files []writtenFile
	err   error
}

func (f *fakeSink) Write(_ context.Context, sessionID, path string, content []byte) error {
	if f.err != nil {
		return f.err
	}
	f.files = append(f.files, writtenFile{sessionID: sessionID, path: path, content: string(content)})
	return nil
}

type scriptedProvider struct {
	responses []string
	err       error
	requests  []*llm.Request
}

func (p *scriptedProvider) Generate(_ context.Context, req *llm.Request) (*llm.Result, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	content := ""
	if len(p.responses) > 0 {
		content = p.responses[0]
		p.responses = p.responses[1:]
	}
	return &llm.Result{Content: content}, nil
}

func coordinatorConfig() *ent.PersonaConfiguration {
	return &ent.PersonaConfiguration{
		Persona:      "Coordinator",
		DisplayName:  "Coordinator",
		ModelName:    "gpt-4o-mini",
		SystemPrompt: "You are the Coordinator of a software team.",
		Temperature:  0.4,
		MaxTokens:    2048,
		Enabled:      true,
	}
}

func testSession() *ent.Session {
	return &ent.Session{
		ID:               "sess-1",
		Title:            "Build a calculator",
		ProblemStatement: "Build a calculator",
		Status:           session.StatusActive,
	}
}

func incomingProblem() *ent.Message {
	return &ent.Message{
		ID:          "msg-1",
		SessionID:   "sess-1",
		FromPersona: "User",
		Content:     "Build a calculator",
		Type:        message.TypeProblemStatement,
	}
}

func newTestEngine(provider llm.Provider, mems *fakeMemories, sink *fakeSink) *Engine {
	cfgs := &fakeConfigs{configs: map[models.Persona]*ent.PersonaConfiguration{
		models.PersonaCoordinator: coordinatorConfig(),
	}}
	return NewEngine(cfgs, &fakeHistory{}, mems, sink, provider)
}

func TestEngineProcess_Solution(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"[SOLUTION] Use +, -, *, /."}}
	engine := newTestEngine(provider, &fakeMemories{}, &fakeSink{})

	resp, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), nil)
	require.NoError(t, err)

	assert.Equal(t, parser.TypeSolution, resp.Type)
	assert.Equal(t, "Use +, -, *, /.", resp.Content)

	// The request carries the persona's configured parameters.
	require.Len(t, provider.requests, 1)
	req := provider.requests[0]
	assert.Equal(t, "gpt-4o-mini", req.Model)
	assert.Equal(t, 0.4, req.Temperature)
	assert.Equal(t, 2048, req.MaxTokens)
	assert.Contains(t, req.SystemPrompt, "You are the Coordinator of a software team.")
	assert.Contains(t, req.SystemPrompt, "[DELEGATE:PersonaName]")
	assert.Contains(t, req.SystemPrompt, "Session ID: sess-1")
}

func TestEngineProcess_MissingConfiguration(t *testing.T) {
	engine := NewEngine(&fakeConfigs{configs: map[models.Persona]*ent.PersonaConfiguration{}},
		&fakeHistory{}, &fakeMemories{}, &fakeSink{}, &scriptedProvider{})

	resp, err := engine.Process(context.Background(), models.PersonaSeniorQA,
		incomingProblem(), testSession(), nil)
	require.NoError(t, err)

	assert.Equal(t, parser.TypeStuck, resp.Type)
	assert.True(t, resp.IsStuck)
	assert.Contains(t, resp.Content, "configuration error")
}

func TestEngineProcess_DisabledPersona(t *testing.T) {
	cfg := coordinatorConfig()
	cfg.Enabled = false
	engine := NewEngine(&fakeConfigs{configs: map[models.Persona]*ent.PersonaConfiguration{
		models.PersonaCoordinator: cfg,
	}}, &fakeHistory{}, &fakeMemories{}, &fakeSink{}, &scriptedProvider{})

	resp, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), nil)
	require.NoError(t, err)

	assert.Equal(t, parser.TypeDecline, resp.Type)
	assert.Contains(t, resp.Content, "unavailable")
}

func TestEngineProcess_ConfigRepositoryErrorIsFatal(t *testing.T) {
	engine := NewEngine(&fakeConfigs{err: errors.New("connection refused")},
		&fakeHistory{}, &fakeMemories{}, &fakeSink{}, &scriptedProvider{})

	_, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), nil)
	require.Error(t, err)
}

func TestEngineProcess_TransportFailureBecomesStuck(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("dial tcp: connection refused")}
	engine := newTestEngine(provider, &fakeMemories{}, &fakeSink{})

	resp, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), nil)
	require.NoError(t, err)

	assert.Equal(t, parser.TypeStuck, resp.Type)
	assert.Contains(t, resp.Content, "error processing")
	// The transport error is preserved as reasoning, not shown as content.
	assert.Contains(t, resp.InternalReasoning, "connection refused")
}

func TestEngineProcess_EmptyResponseBecomesStuck(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"   \n  "}}
	engine := newTestEngine(provider, &fakeMemories{}, &fakeSink{})

	resp, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), nil)
	require.NoError(t, err)

	assert.Equal(t, parser.TypeStuck, resp.Type)
	assert.Contains(t, resp.Content, "empty response")
}

func TestEngineProcess_StoreDirectivesPersisted(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		"[STORE:db choice] PostgreSQL 16.\nProceeding with the schema design.",
	}}
	mems := &fakeMemories{}
	engine := newTestEngine(provider, mems, &fakeSink{})

	resp, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), nil)
	require.NoError(t, err)

	assert.Equal(t, parser.TypeAnswer, resp.Type)
	require.Len(t, mems.stored, 1)
	assert.Equal(t, models.PersonaCoordinator, mems.stored[0].persona)
	assert.Equal(t, "db choice", mems.stored[0].identifier)
}

func TestEngineProcess_MemoryFailureAbsorbed(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"[STORE:x] y\n[SOLUTION] done"}}
	mems := &fakeMemories{err: services.NewValidationError("content", "too long")}
	engine := newTestEngine(provider, mems, &fakeSink{})

	resp, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, parser.TypeSolution, resp.Type)
}

func TestEngineProcess_FileDirectivesWritten(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		"[FILE:docs/plan.md]\n# Plan\n[/FILE]\n[SOLUTION] Plan delivered.",
	}}
	sink := &fakeSink{}
	engine := newTestEngine(provider, &fakeMemories{}, sink)

	resp, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), nil)
	require.NoError(t, err)

	assert.Equal(t, parser.TypeSolution, resp.Type)
	require.Len(t, sink.files, 1)
	assert.Equal(t, "sess-1", sink.files[0].sessionID)
	assert.Equal(t, "docs/plan.md", sink.files[0].path)
	assert.Contains(t, sink.files[0].content, "# Plan")
}

func TestEngineProcess_FileFailureAbsorbed(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		"[FILE:../escape.txt]x[/FILE]\n[SOLUTION] done",
	}}
	sink := &fakeSink{err: errors.New("path escapes the workspace")}
	engine := newTestEngine(provider, &fakeMemories{}, sink)

	resp, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), nil)
	require.NoError(t, err)
	assert.Equal(t, parser.TypeSolution, resp.Type)
}

func TestEngineProcess_MemoriesInSystemPrompt(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"ok"}}
	engine := newTestEngine(provider, &fakeMemories{}, &fakeSink{})

	memories := []*ent.Memory{
		{Identifier: "db choice", Content: "PostgreSQL 16"},
	}
	_, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incomingProblem(), testSession(), memories)
	require.NoError(t, err)

	require.Len(t, provider.requests, 1)
	assert.Contains(t, provider.requests[0].SystemPrompt, "[db choice]")
	assert.Contains(t, provider.requests[0].SystemPrompt, "PostgreSQL 16")
}

func TestEngineProcess_HistoryExcludesIncoming(t *testing.T) {
	incoming := &ent.Message{
		ID:          "msg-2",
		SessionID:   "sess-1",
		FromPersona: "Coordinator",
		Content:     "design it",
		Type:        message.TypeDelegation,
	}
	history := &fakeHistory{messages: []*ent.Message{
		{ID: "msg-1", FromPersona: "User", Content: "Build a calculator", Type: message.TypeProblemStatement},
		incoming,
	}}

	provider := &scriptedProvider{responses: []string{"ok"}}
	cfgs := &fakeConfigs{configs: map[models.Persona]*ent.PersonaConfiguration{
		models.PersonaTechnicalArchitect: {
			Persona: "TechnicalArchitect", DisplayName: "Technical Architect",
			ModelName: "m", SystemPrompt: "You are the architect.",
			Temperature: 0.3, MaxTokens: 1024, Enabled: true,
		},
	}}
	engine := NewEngine(cfgs, history, &fakeMemories{}, &fakeSink{}, provider)

	_, err := engine.Process(context.Background(), models.PersonaTechnicalArchitect,
		incoming, testSession(), nil)
	require.NoError(t, err)

	require.Len(t, provider.requests, 1)
	msgs := provider.requests[0].Messages
	// History contributes one turn; the incoming delegation is the final
	// user turn, not duplicated from history.
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Contains(t, msgs[1].Content, "Message from Coordinator")
	assert.Equal(t, "user", msgs[1].Role)
}

func TestEngineProcess_DelegationContextInIncoming(t *testing.T) {
	delegCtx := "design the storage layer"
	incoming := &ent.Message{
		ID:                "msg-2",
		SessionID:         "sess-1",
		FromPersona:       "Coordinator",
		Content:           "handing off",
		Type:              message.TypeDelegation,
		DelegationContext: &delegCtx,
	}

	provider := &scriptedProvider{responses: []string{"ok"}}
	engine := newTestEngine(provider, &fakeMemories{}, &fakeSink{})

	_, err := engine.Process(context.Background(), models.PersonaCoordinator,
		incoming, testSession(), nil)
	require.NoError(t, err)

	last := provider.requests[0].Messages[len(provider.requests[0].Messages)-1]
	assert.Contains(t, last.Content, "Your task: design the storage layer")
}
