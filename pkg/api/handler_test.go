package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/config"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/services"
)

type fakeOrchestrator struct {
	startFn   func(ctx context.Context, problem string) (*ent.Session, error)
	clarifyFn func(ctx context.Context, sessionID, response string) (*ent.Session, error)
	resumeFn  func(ctx context.Context, sessionID string) (*ent.Session, error)
	cancelFn  func(ctx context.Context, sessionID string) (*ent.Session, error)
}

func (f *fakeOrchestrator) StartSession(ctx context.Context, problem string) (*ent.Session, error) {
	return f.startFn(ctx, problem)
}

func (f *fakeOrchestrator) HandleUserClarification(ctx context.Context, sessionID, response string) (*ent.Session, error) {
	return f.clarifyFn(ctx, sessionID, response)
}

func (f *fakeOrchestrator) ResumeSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	return f.resumeFn(ctx, sessionID)
}

func (f *fakeOrchestrator) CancelSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	return f.cancelFn(ctx, sessionID)
}

type fakeSessionQueries struct {
	sessions map[string]*ent.Session
	listFn   func(filters services.SessionFilters) (*services.SessionListResponse, error)
}

func (f *fakeSessionQueries) GetSession(_ context.Context, sessionID string) (*ent.Session, error) {
	sess, ok := f.sessions[sessionID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return sess, nil
}

func (f *fakeSessionQueries) ListSessions(_ context.Context, filters services.SessionFilters) (*services.SessionListResponse, error) {
	return f.listFn(filters)
}

type fakeMessageQueries struct {
	messages map[string][]*ent.Message
}

func (f *fakeMessageQueries) GetSessionMessages(_ context.Context, sessionID string) ([]*ent.Message, error) {
	return f.messages[sessionID], nil
}

type fakePersonaConfigs struct {
	configs  []*ent.PersonaConfiguration
	updateFn func(persona models.Persona, req services.UpdateConfigurationRequest) (*ent.PersonaConfiguration, error)
}

func (f *fakePersonaConfigs) ListConfigurations(_ context.Context) ([]*ent.PersonaConfiguration, error) {
	return f.configs, nil
}

func (f *fakePersonaConfigs) UpdateConfiguration(_ context.Context, persona models.Persona, req services.UpdateConfigurationRequest) (*ent.PersonaConfiguration, error) {
	return f.updateFn(persona, req)
}

func testSession(id string, status session.Status) *ent.Session {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &ent.Session{
		ID:               id,
		Title:            "Test session",
		ProblemStatement: "How do we shard the index?",
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

type serverFixture struct {
	server   *Server
	orch     *fakeOrchestrator
	sessions *fakeSessionQueries
	messages *fakeMessageQueries
	personas *fakePersonaConfigs
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &serverFixture{
		orch:     &fakeOrchestrator{},
		sessions: &fakeSessionQueries{sessions: map[string]*ent.Session{}},
		messages: &fakeMessageQueries{messages: map[string][]*ent.Message{}},
		personas: &fakePersonaConfigs{},
	}
	cfg := &config.Config{HTTPPort: "8080"}
	f.server = NewServer(cfg, nil, f.orch, f.sessions, f.messages, f.personas, nil)
	return f
}

func (f *serverFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestCreateSession(t *testing.T) {
	f := newServerFixture(t)
	f.orch.startFn = func(_ context.Context, problem string) (*ent.Session, error) {
		assert.Equal(t, "How do we shard the index?", problem)
		sess := testSession("sess-1", session.StatusCompleted)
		solution := "Shard by tenant ID."
		sess.FinalSolution = &solution
		return sess, nil
	}

	rec := f.do(t, http.MethodPost, "/api/v1/sessions", gin.H{
		"problem_statement": "How do we shard the index?",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp SessionResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "sess-1", resp.ID)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.FinalSolution)
	assert.Equal(t, "Shard by tenant ID.", *resp.FinalSolution)
}

func TestCreateSessionMissingBody(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/sessions", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSessionValidationError(t *testing.T) {
	f := newServerFixture(t)
	f.orch.startFn = func(_ context.Context, _ string) (*ent.Session, error) {
		return nil, services.NewValidationError("problem_statement", "must not be blank")
	}

	rec := f.do(t, http.MethodPost, "/api/v1/sessions", gin.H{
		"problem_statement": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "problem_statement")
}

func TestListSessionsPassesFilters(t *testing.T) {
	f := newServerFixture(t)
	var gotFilters services.SessionFilters
	f.sessions.listFn = func(filters services.SessionFilters) (*services.SessionListResponse, error) {
		gotFilters = filters
		return &services.SessionListResponse{
			Sessions:   []*ent.Session{testSession("sess-1", session.StatusActive)},
			TotalCount: 1,
			Limit:      filters.Limit,
			Offset:     filters.Offset,
		}, nil
	}

	rec := f.do(t, http.MethodGet, "/api/v1/sessions?status=active&limit=5&offset=10", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "active", gotFilters.Status)
	assert.Equal(t, 5, gotFilters.Limit)
	assert.Equal(t, 10, gotFilters.Offset)

	var resp struct {
		Sessions   []SessionResponse `json:"sessions"`
		TotalCount int               `json:"total_count"`
	}
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestGetSession(t *testing.T) {
	f := newServerFixture(t)
	f.sessions.sessions["sess-1"] = testSession("sess-1", session.StatusActive)

	rec := f.do(t, http.MethodGet, "/api/v1/sessions/sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "sess-1", resp.ID)
	assert.Equal(t, "active", resp.Status)
}

func TestGetSessionNotFound(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSessionMessages(t *testing.T) {
	f := newServerFixture(t)
	f.sessions.sessions["sess-1"] = testSession("sess-1", session.StatusCompleted)
	coordinator := string(models.PersonaCoordinator)
	f.messages.messages["sess-1"] = []*ent.Message{
		{
			ID:          "msg-1",
			SessionID:   "sess-1",
			FromPersona: string(models.PersonaUser),
			ToPersona:   &coordinator,
			Content:     "How do we shard the index?",
			Type:        message.TypeProblemStatement,
			Timestamp:   time.Now(),
		},
	}

	rec := f.do(t, http.MethodGet, "/api/v1/sessions/sess-1/messages", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Messages []MessageResponse `json:"messages"`
	}
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "problem_statement", resp.Messages[0].Type)
	assert.Equal(t, "User", resp.Messages[0].FromPersona)
}

func TestGetSessionMessagesUnknownSession(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/sessions/missing/messages", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitClarification(t *testing.T) {
	f := newServerFixture(t)
	f.orch.clarifyFn = func(_ context.Context, sessionID, response string) (*ent.Session, error) {
		assert.Equal(t, "sess-1", sessionID)
		assert.Equal(t, "Postgres 16", response)
		return testSession("sess-1", session.StatusCompleted), nil
	}

	rec := f.do(t, http.MethodPost, "/api/v1/sessions/sess-1/clarification", gin.H{
		"response": "Postgres 16",
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitClarificationWrongState(t *testing.T) {
	f := newServerFixture(t)
	f.orch.clarifyFn = func(_ context.Context, _, _ string) (*ent.Session, error) {
		return nil, services.ErrInvalidState
	}

	rec := f.do(t, http.MethodPost, "/api/v1/sessions/sess-1/clarification", gin.H{
		"response": "Postgres 16",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResumeSession(t *testing.T) {
	f := newServerFixture(t)
	f.orch.resumeFn = func(_ context.Context, sessionID string) (*ent.Session, error) {
		assert.Equal(t, "sess-1", sessionID)
		return testSession("sess-1", session.StatusCompleted), nil
	}

	rec := f.do(t, http.MethodPost, "/api/v1/sessions/sess-1/resume", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelSession(t *testing.T) {
	f := newServerFixture(t)
	f.orch.cancelFn = func(_ context.Context, sessionID string) (*ent.Session, error) {
		return testSession(sessionID, session.StatusCancelled), nil
	}

	rec := f.do(t, http.MethodPost, "/api/v1/sessions/sess-1/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SessionResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestListPersonas(t *testing.T) {
	f := newServerFixture(t)
	f.personas.configs = []*ent.PersonaConfiguration{
		{
			Persona:     string(models.PersonaCoordinator),
			DisplayName: "Coordinator",
			ModelName:   "gpt-4o",
			Temperature: 0.3,
			MaxTokens:   8192,
			Enabled:     true,
			SortOrder:   1,
		},
	}

	rec := f.do(t, http.MethodGet, "/api/v1/personas", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Personas []PersonaConfigResponse `json:"personas"`
	}
	decodeJSON(t, rec, &resp)
	require.Len(t, resp.Personas, 1)
	assert.Equal(t, "Coordinator", resp.Personas[0].DisplayName)
}

func TestUpdatePersona(t *testing.T) {
	f := newServerFixture(t)
	f.personas.updateFn = func(persona models.Persona, req services.UpdateConfigurationRequest) (*ent.PersonaConfiguration, error) {
		assert.Equal(t, models.PersonaTechnicalArchitect, persona)
		require.NotNil(t, req.Temperature)
		assert.Equal(t, 0.1, *req.Temperature)
		return &ent.PersonaConfiguration{
			Persona:     string(persona),
			DisplayName: "Technical Architect",
			Temperature: *req.Temperature,
		}, nil
	}

	rec := f.do(t, http.MethodPatch, "/api/v1/personas/TechnicalArchitect", gin.H{
		"temperature": 0.1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PersonaConfigResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, 0.1, resp.Temperature)
}

func TestUpdatePersonaUnknown(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodPatch, "/api/v1/personas/Wizard", gin.H{
		"temperature": 0.1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthWithoutDatabase(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestSecurityHeaders(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}
