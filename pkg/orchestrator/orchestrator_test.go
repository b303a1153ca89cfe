package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/events"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/parser"
	"github.com/conclave-dev/conclave/pkg/services"
)

// --- In-memory fakes ---

// fakeStore implements SessionStore and MessageStore over maps.
type fakeStore struct {
	mu       sync.Mutex
	sessions map[string]*ent.Session
	messages []*ent.Message
	seq      int
	now      time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: make(map[string]*ent.Session),
		now:      time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) tick() time.Time {
	s.now = s.now.Add(time.Millisecond)
	return s.now
}

func cloneSession(in *ent.Session) *ent.Session {
	out := *in
	return &out
}

func cloneMessage(in *ent.Message) *ent.Message {
	out := *in
	return &out
}

func (s *fakeStore) CreateSession(_ context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.tick()
	sess := &ent.Session{
		ID:               req.SessionID,
		Title:            req.Title,
		ProblemStatement: req.ProblemStatement,
		Status:           session.StatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	s.sessions[req.SessionID] = sess
	return cloneSession(sess), nil
}

func (s *fakeStore) GetSession(_ context.Context, sessionID string) (*ent.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, services.ErrNotFound)
	}
	return cloneSession(sess), nil
}

func (s *fakeStore) UpdateSessionStatus(_ context.Context, sessionID string, status session.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, services.ErrNotFound)
	}
	sess.Status = status
	sess.UpdatedAt = s.tick()
	return nil
}

func (s *fakeStore) SetCurrentPersona(_ context.Context, sessionID string, persona *models.Persona) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, services.ErrNotFound)
	}
	if persona == nil {
		sess.CurrentPersona = nil
	} else {
		v := string(*persona)
		sess.CurrentPersona = &v
	}
	return nil
}

func (s *fakeStore) SetFinalSolution(_ context.Context, sessionID string, solution string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, services.ErrNotFound)
	}
	sess.FinalSolution = &solution
	return nil
}

func (s *fakeStore) ClearFinalSolution(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, services.ErrNotFound)
	}
	sess.FinalSolution = nil
	return nil
}

func (s *fakeStore) FindSessionsByStatus(_ context.Context, status session.Status) ([]*ent.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*ent.Session
	for _, sess := range s.sessions {
		if sess.Status == status {
			out = append(out, cloneSession(sess))
		}
	}
	return out, nil
}

func (s *fakeStore) AppendMessage(_ context.Context, req models.AppendMessageRequest) (*ent.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	msg := &ent.Message{
		ID:          fmt.Sprintf("msg-%03d", s.seq),
		SessionID:   req.SessionID,
		FromPersona: string(req.FromPersona),
		Content:     req.Content,
		Type:        req.Type,
		IsStuck:     req.IsStuck,
		Timestamp:   s.tick(),
	}
	if req.ToPersona != nil {
		v := string(*req.ToPersona)
		msg.ToPersona = &v
	}
	if req.InternalReasoning != "" {
		v := req.InternalReasoning
		msg.InternalReasoning = &v
	}
	if req.DelegateToPersona != nil {
		v := string(*req.DelegateToPersona)
		msg.DelegateToPersona = &v
	}
	if req.DelegationContext != "" {
		v := req.DelegationContext
		msg.DelegationContext = &v
	}
	if req.RawResponse != "" {
		v := req.RawResponse
		msg.RawResponse = &v
	}
	if req.ParentMessageID != nil {
		v := *req.ParentMessageID
		msg.ParentMessageID = &v
	}
	s.messages = append(s.messages, msg)
	return cloneMessage(msg), nil
}

func (s *fakeStore) GetSessionMessages(_ context.Context, sessionID string) ([]*ent.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*ent.Message
	for _, m := range s.messages {
		if m.SessionID == sessionID {
			out = append(out, cloneMessage(m))
		}
	}
	return out, nil
}

func (s *fakeStore) GetRecentMessages(_ context.Context, sessionID string, n int) ([]*ent.Message, error) {
	all, _ := s.GetSessionMessages(context.Background(), sessionID)
	if n > 0 && len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

func (s *fakeStore) GetMessage(_ context.Context, messageID string) (*ent.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.ID == messageID {
			return cloneMessage(m), nil
		}
	}
	return nil, fmt.Errorf("message %s: %w", messageID, services.ErrNotFound)
}

func (s *fakeStore) GetLastMessageOfType(_ context.Context, sessionID string, msgType message.Type) (*ent.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].SessionID == sessionID && s.messages[i].Type == msgType {
			return cloneMessage(s.messages[i]), nil
		}
	}
	return nil, fmt.Errorf("no %s message in session %s: %w", msgType, sessionID, services.ErrNotFound)
}

func (s *fakeStore) setStatus(sessionID string, status session.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID].Status = status
}

// fakeMemories implements MemoryReader.
type fakeMemories struct {
	mu    sync.Mutex
	items []*ent.Memory
	calls []models.Persona
}

func (f *fakeMemories) Recent(_ context.Context, _ string, persona models.Persona, _ int) ([]*ent.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, persona)
	return f.items, nil
}

// scriptedEngine implements Engine by replaying a fixed response script.
type engineCall struct {
	persona  models.Persona
	incoming *ent.Message
}

type scriptedEngine struct {
	mu     sync.Mutex
	script []*parser.PersonaResponse
	errAt  map[int]error
	onCall func(i int, p models.Persona)
	calls  []engineCall

	// defaultResp is returned once the script is exhausted; nil means stuck.
	defaultResp func() *parser.PersonaResponse
}

func (e *scriptedEngine) Process(_ context.Context, p models.Persona, incoming *ent.Message, _ *ent.Session, _ []*ent.Memory) (*parser.PersonaResponse, error) {
	e.mu.Lock()
	i := len(e.calls)
	e.calls = append(e.calls, engineCall{persona: p, incoming: incoming})
	onCall := e.onCall
	e.mu.Unlock()

	if onCall != nil {
		onCall(i, p)
	}
	if err, ok := e.errAt[i]; ok {
		return nil, err
	}
	if i < len(e.script) {
		return e.script[i], nil
	}
	if e.defaultResp != nil {
		return e.defaultResp(), nil
	}
	return respStuck("nothing scripted"), nil
}

func (e *scriptedEngine) calledPersonas() []models.Persona {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Persona, len(e.calls))
	for i, c := range e.calls {
		out[i] = c.persona
	}
	return out
}

// recordingSink implements EventSink and records delivery order.
type sinkEvent struct {
	kind      string
	sessionID string
	payload   any
}

type recordingSink struct {
	mu     sync.Mutex
	events []sinkEvent
}

func (r *recordingSink) record(kind, sessionID string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, sinkEvent{kind: kind, sessionID: sessionID, payload: payload})
}

func (r *recordingSink) PublishMessageReceived(_ context.Context, sessionID string, p events.MessageReceivedPayload) error {
	r.record(events.EventTypeMessageReceived, sessionID, p)
	return nil
}

func (r *recordingSink) PublishSessionStatus(_ context.Context, sessionID string, p events.SessionStatusPayload) error {
	r.record(events.EventTypeSessionStatus, sessionID, p)
	return nil
}

func (r *recordingSink) PublishClarificationRequested(_ context.Context, sessionID string, p events.ClarificationRequestedPayload) error {
	r.record(events.EventTypeClarificationRequested, sessionID, p)
	return nil
}

func (r *recordingSink) PublishSolutionReady(_ context.Context, sessionID string, p events.SolutionReadyPayload) error {
	r.record(events.EventTypeSolutionReady, sessionID, p)
	return nil
}

func (r *recordingSink) PublishSessionStuck(_ context.Context, sessionID string, p events.SessionStuckPayload) error {
	r.record(events.EventTypeSessionStuck, sessionID, p)
	return nil
}

func (r *recordingSink) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.kind
	}
	return out
}

// --- Response helpers ---

func respAnswer(content string) *parser.PersonaResponse {
	return &parser.PersonaResponse{Type: parser.TypeAnswer, Content: content}
}

func respDelegate(target models.Persona, content string) *parser.PersonaResponse {
	t := target
	return &parser.PersonaResponse{
		Type:              parser.TypeDelegation,
		Content:           content,
		DelegateToPersona: &t,
		DelegationContext: "Task for " + string(target),
	}
}

func respSolution(content string) *parser.PersonaResponse {
	return &parser.PersonaResponse{Type: parser.TypeSolution, Content: content}
}

func respStuck(content string) *parser.PersonaResponse {
	return &parser.PersonaResponse{Type: parser.TypeStuck, Content: content, IsStuck: true}
}

func respDecline(content string) *parser.PersonaResponse {
	return &parser.PersonaResponse{Type: parser.TypeDecline, Content: content}
}

func respClarify(question string) *parser.PersonaResponse {
	return &parser.PersonaResponse{Type: parser.TypeClarification, Content: question, ClarificationQuestion: question}
}

// --- Rig ---

func newTestRig(script ...*parser.PersonaResponse) (*Orchestrator, *fakeStore, *scriptedEngine, *recordingSink) {
	store := newFakeStore()
	engine := &scriptedEngine{script: script}
	sink := &recordingSink{}
	orch := New(store, store, &fakeMemories{}, engine, sink)
	return orch, store, engine, sink
}

func seedSession(store *fakeStore, id string, status session.Status) {
	store.mu.Lock()
	defer store.mu.Unlock()
	now := store.tick()
	store.sessions[id] = &ent.Session{
		ID:               id,
		Title:            "Seeded session",
		ProblemStatement: "Seeded problem",
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// --- Tests ---

func TestStartSessionCoordinatorSolvesDirectly(t *testing.T) {
	orch, store, engine, sink := newTestRig(
		respSolution("Use a hash map for O(1) lookups."),
	)

	sess, err := orch.StartSession(context.Background(), "How do I speed up lookups?")
	require.NoError(t, err)
	require.NotNil(t, sess)

	assert.Equal(t, session.StatusCompleted, sess.Status)
	require.NotNil(t, sess.FinalSolution)
	assert.Equal(t, "Use a hash map for O(1) lookups.", *sess.FinalSolution)
	assert.Nil(t, sess.CurrentPersona)

	assert.Equal(t, []models.Persona{models.PersonaCoordinator}, engine.calledPersonas())

	msgs, err := store.GetSessionMessages(context.Background(), sess.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, message.TypeProblemStatement, msgs[0].Type)
	assert.Equal(t, "User", msgs[0].FromPersona)
	assert.Equal(t, message.TypeSolution, msgs[1].Type)
	assert.Equal(t, "Coordinator", msgs[1].FromPersona)
	require.NotNil(t, msgs[1].ParentMessageID)
	assert.Equal(t, msgs[0].ID, *msgs[1].ParentMessageID)

	kinds := sink.kinds()
	assert.Equal(t, []string{
		events.EventTypeSessionStatus,
		events.EventTypeMessageReceived,
		events.EventTypeMessageReceived,
		events.EventTypeSessionStatus,
		events.EventTypeSolutionReady,
	}, kinds)
}

func TestStartSessionDelegationChain(t *testing.T) {
	orch, store, engine, _ := newTestRig(
		respDelegate(models.PersonaSeniorDeveloper, "Please implement the parser."),
		respSolution("Here is the parser implementation."),
		respAnswer("Final write-up: the parser is implemented as requested."),
	)

	sess, err := orch.StartSession(context.Background(), "Build a config parser.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusCompleted, sess.Status)
	require.NotNil(t, sess.FinalSolution)
	assert.Equal(t, "Final write-up: the parser is implemented as requested.", *sess.FinalSolution)

	assert.Equal(t, []models.Persona{
		models.PersonaCoordinator,
		models.PersonaSeniorDeveloper,
		models.PersonaCoordinator,
	}, engine.calledPersonas())

	msgs, _ := store.GetSessionMessages(context.Background(), sess.ID)
	require.Len(t, msgs, 4)
	assert.Equal(t, message.TypeDelegation, msgs[1].Type)
	require.NotNil(t, msgs[1].DelegateToPersona)
	assert.Equal(t, "SeniorDeveloper", *msgs[1].DelegateToPersona)
	require.NotNil(t, msgs[1].ToPersona)
	assert.Equal(t, "SeniorDeveloper", *msgs[1].ToPersona)
	assert.Equal(t, message.TypeSolution, msgs[2].Type)
	assert.Equal(t, "SeniorDeveloper", msgs[2].FromPersona)
	assert.Equal(t, message.TypeSolution, msgs[3].Type)
	assert.Equal(t, "Coordinator", msgs[3].FromPersona)

	// Reply tree: each message points at the one it answered.
	assert.Equal(t, msgs[0].ID, *msgs[1].ParentMessageID)
	assert.Equal(t, msgs[1].ID, *msgs[2].ParentMessageID)
	assert.Equal(t, msgs[2].ID, *msgs[3].ParentMessageID)
}

func TestStartSessionEmptyProblemRejected(t *testing.T) {
	orch, _, engine, _ := newTestRig()

	_, err := orch.StartSession(context.Background(), "   \n\t ")
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
	assert.Empty(t, engine.calls)
}

func TestClarificationPausesAndResumes(t *testing.T) {
	orch, store, engine, sink := newTestRig(
		respClarify("Which database are you using?"),
		respSolution("Add an index on the user_id column."),
	)

	sess, err := orch.StartSession(context.Background(), "My queries are slow.")
	require.NoError(t, err)
	assert.Equal(t, session.StatusWaitingForClarification, sess.Status)
	require.NotNil(t, sess.CurrentPersona)
	assert.Equal(t, "Coordinator", *sess.CurrentPersona)

	kinds := sink.kinds()
	assert.Contains(t, kinds, events.EventTypeClarificationRequested)

	// Answering resumes with the persona that asked.
	sess, err = orch.HandleUserClarification(context.Background(), sess.ID, "PostgreSQL 16")
	require.NoError(t, err)
	assert.Equal(t, session.StatusCompleted, sess.Status)
	require.NotNil(t, sess.FinalSolution)
	assert.Equal(t, "Add an index on the user_id column.", *sess.FinalSolution)

	assert.Equal(t, []models.Persona{
		models.PersonaCoordinator,
		models.PersonaCoordinator,
	}, engine.calledPersonas())

	msgs, _ := store.GetSessionMessages(context.Background(), sess.ID)
	require.Len(t, msgs, 4)
	assert.Equal(t, message.TypeClarification, msgs[1].Type)
	assert.Equal(t, message.TypeUserResponse, msgs[2].Type)
	assert.Equal(t, "User", msgs[2].FromPersona)
	require.NotNil(t, msgs[2].ToPersona)
	assert.Equal(t, "Coordinator", *msgs[2].ToPersona)
	require.NotNil(t, msgs[2].ParentMessageID)
	assert.Equal(t, msgs[1].ID, *msgs[2].ParentMessageID)
}

func TestHandleUserClarificationWrongState(t *testing.T) {
	orch, store, _, _ := newTestRig()
	seedSession(store, "sess-1", session.StatusActive)

	_, err := orch.HandleUserClarification(context.Background(), "sess-1", "here you go")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestHandleUserClarificationEmptyResponse(t *testing.T) {
	orch, store, _, _ := newTestRig()
	seedSession(store, "sess-1", session.StatusWaitingForClarification)

	_, err := orch.HandleUserClarification(context.Background(), "sess-1", "  ")
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
}

func TestConsecutiveStuckGivesUp(t *testing.T) {
	// Five workers stuck in a row, Coordinator re-entered between each.
	// Its routing turns must not break the streak.
	orch, store, engine, sink := newTestRig(
		respDelegate(models.PersonaBusinessAnalyst, "Analyze the requirements."),
		respStuck("I cannot analyze this."),
		respDelegate(models.PersonaTechnicalArchitect, "Try an architecture view."),
		respStuck("No viable architecture."),
		respDelegate(models.PersonaSeniorDeveloper, "Try implementing directly."),
		respStuck("Cannot implement this."),
		respDelegate(models.PersonaSeniorQA, "Can this be tested into shape?"),
		respStuck("Nothing to test."),
		respDelegate(models.PersonaDocumentWriter, "Document what we know."),
		respStuck("Nothing to document."),
	)

	sess, err := orch.StartSession(context.Background(), "An impossible problem.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusStuck, sess.Status)
	assert.Nil(t, sess.CurrentPersona)
	require.NotNil(t, sess.FinalSolution)
	assert.Contains(t, *sess.FinalSolution, "partial progress")
	assert.Contains(t, *sess.FinalSolution, "**Coordinator:**")
	assert.Contains(t, *sess.FinalSolution, "Split the problem")

	// Exactly ten invocations: five delegations and five stuck responses.
	assert.Len(t, engine.calls, 10)

	kinds := sink.kinds()
	assert.Equal(t, events.EventTypeSessionStuck, kinds[len(kinds)-1])

	msgs, _ := store.GetSessionMessages(context.Background(), sess.ID)
	stuckCount := 0
	for _, m := range msgs {
		if m.Type == message.TypeStuck {
			stuckCount++
			assert.True(t, m.IsStuck)
		}
	}
	assert.Equal(t, 5, stuckCount)
}

func TestCoordinatorStuckImmediately(t *testing.T) {
	orch, _, engine, sink := newTestRig(
		respStuck("I do not understand this problem at all."),
	)

	sess, err := orch.StartSession(context.Background(), "Unintelligible input.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusStuck, sess.Status)
	assert.Len(t, engine.calls, 1)
	require.NotNil(t, sess.FinalSolution)
	assert.Contains(t, *sess.FinalSolution, "unable to make any progress")

	assert.Contains(t, sink.kinds(), events.EventTypeSessionStuck)
}

func TestSuccessfulWorkBreaksStuckStreak(t *testing.T) {
	longAnswer := strings.Repeat("Useful analysis. ", 10) // > 100 bytes
	orch, _, engine, _ := newTestRig(
		respDelegate(models.PersonaBusinessAnalyst, "Analyze."),
		respStuck("stuck"),
		respDelegate(models.PersonaTechnicalArchitect, "Architect."),
		respStuck("stuck"),
		respDelegate(models.PersonaSeniorDeveloper, "Develop."),
		respAnswer(longAnswer), // breaks the streak, routed to Coordinator
		respDelegate(models.PersonaSeniorQA, "Test."),
		respStuck("stuck"),
		respDelegate(models.PersonaJuniorQA, "Test differently."),
		respStuck("stuck"),
		respDelegate(models.PersonaDocumentWriter, "Write it down."),
		respStuck("stuck"),
		respDelegate(models.PersonaUXEngineer, "Sketch it."),
		respStuck("stuck"),
		respDelegate(models.PersonaUIEngineer, "Mock it up."),
		respStuck("stuck"), // fifth consecutive since the reset
	)

	sess, err := orch.StartSession(context.Background(), "A very hard problem.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusStuck, sess.Status)
	assert.Len(t, engine.calls, 16)
}

func TestMaxDelegationDepth(t *testing.T) {
	orch, store, engine, sink := newTestRig()
	engine.defaultResp = func() *parser.PersonaResponse {
		return respDelegate(models.PersonaSeniorDeveloper, "Keep going.")
	}

	sess, err := orch.StartSession(context.Background(), "A problem that never converges.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusStuck, sess.Status)
	assert.Len(t, engine.calls, MaxDelegationDepth)

	msgs, _ := store.GetSessionMessages(context.Background(), sess.ID)
	last := msgs[len(msgs)-1]
	assert.Equal(t, message.TypeStuck, last.Type)
	assert.Equal(t, "Coordinator", last.FromPersona)
	assert.Equal(t, maxDepthNotice, last.Content)

	assert.Contains(t, sink.kinds(), events.EventTypeSessionStuck)
}

func TestLongAnswerRoutedToCoordinator(t *testing.T) {
	longAnswer := strings.Repeat("x", answerRouteThreshold+1)
	orch, _, engine, _ := newTestRig(
		respDelegate(models.PersonaJuniorDeveloper, "Give it a try."),
		respAnswer(longAnswer),
		respAnswer("Done."),
	)

	sess, err := orch.StartSession(context.Background(), "A small task.")
	require.NoError(t, err)

	// Coordinator's short answer ends the invocation without terminating
	// the session.
	assert.Equal(t, session.StatusActive, sess.Status)
	assert.Nil(t, sess.CurrentPersona)
	assert.Nil(t, sess.FinalSolution)

	assert.Equal(t, []models.Persona{
		models.PersonaCoordinator,
		models.PersonaJuniorDeveloper,
		models.PersonaCoordinator,
	}, engine.calledPersonas())
}

func TestShortAnswerEndsInvocation(t *testing.T) {
	orch, _, engine, _ := newTestRig(
		respDelegate(models.PersonaJuniorQA, "Quick check please."),
		respAnswer("Looks fine."),
	)

	sess, err := orch.StartSession(context.Background(), "Please sanity check this.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusActive, sess.Status)
	assert.Nil(t, sess.CurrentPersona)
	assert.Len(t, engine.calls, 2)
}

func TestDeclineRoutesBackToCoordinator(t *testing.T) {
	orch, _, engine, _ := newTestRig(
		respDelegate(models.PersonaUXEngineer, "Design the flow."),
		respDecline("This is not a UX problem."),
		respDelegate(models.PersonaUIEngineer, "Build the screen then."),
		respSolution("Screen implemented."),
		respAnswer("The screen is implemented and ready."),
	)

	sess, err := orch.StartSession(context.Background(), "We need a settings screen.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusCompleted, sess.Status)
	assert.Equal(t, []models.Persona{
		models.PersonaCoordinator,
		models.PersonaUXEngineer,
		models.PersonaCoordinator,
		models.PersonaUIEngineer,
		models.PersonaCoordinator,
	}, engine.calledPersonas())
}

func TestCoordinatorDeclineEndsInvocation(t *testing.T) {
	orch, _, _, _ := newTestRig(
		respDecline("This request is out of scope."),
	)

	sess, err := orch.StartSession(context.Background(), "Do something inappropriate.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusActive, sess.Status)
	assert.Nil(t, sess.CurrentPersona)
	assert.Nil(t, sess.FinalSolution)
}

func TestMalformedDelegationRerunsSamePersona(t *testing.T) {
	orch, _, engine, _ := newTestRig(
		&parser.PersonaResponse{Type: parser.TypeDelegation, Content: "Handing to the specialist."},
		respSolution("Handled it myself after all."),
	)

	sess, err := orch.StartSession(context.Background(), "A routable problem.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusCompleted, sess.Status)
	assert.Equal(t, []models.Persona{
		models.PersonaCoordinator,
		models.PersonaCoordinator,
	}, engine.calledPersonas())
}

func TestCompileFallbackKeepsWorkerSolution(t *testing.T) {
	orch, store, _, _ := newTestRig(
		respDelegate(models.PersonaSeniorDeveloper, "Implement it."),
		respSolution("Worker solution text."),
		respStuck("cannot summarize"),
	)

	sess, err := orch.StartSession(context.Background(), "Implement the thing.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusCompleted, sess.Status)
	require.NotNil(t, sess.FinalSolution)
	assert.Equal(t, "Worker solution text.", *sess.FinalSolution)

	// No compiled solution message was persisted.
	msgs, _ := store.GetSessionMessages(context.Background(), sess.ID)
	solutions := 0
	for _, m := range msgs {
		if m.Type == message.TypeSolution {
			solutions++
		}
	}
	assert.Equal(t, 1, solutions)
}

func TestCancelSession(t *testing.T) {
	orch, store, _, sink := newTestRig()
	seedSession(store, "sess-1", session.StatusActive)

	sess, err := orch.CancelSession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.StatusCancelled, sess.Status)
	assert.Nil(t, sess.CurrentPersona)
	assert.Contains(t, sink.kinds(), events.EventTypeSessionStatus)
}

func TestCancelSessionTerminalStates(t *testing.T) {
	orch, store, _, _ := newTestRig()
	seedSession(store, "done", session.StatusCompleted)
	seedSession(store, "gone", session.StatusCancelled)

	_, err := orch.CancelSession(context.Background(), "done")
	assert.ErrorIs(t, err, services.ErrInvalidState)

	_, err = orch.CancelSession(context.Background(), "gone")
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestCancelStopsRunningLoop(t *testing.T) {
	orch, store, engine, _ := newTestRig()
	engine.defaultResp = func() *parser.PersonaResponse {
		return respDelegate(models.PersonaSeniorDeveloper, "Keep going.")
	}
	engine.onCall = func(i int, _ models.Persona) {
		if i == 0 {
			store.setStatus(sessionIDOf(store), session.StatusCancelled)
		}
	}

	sess, err := orch.StartSession(context.Background(), "A problem that gets cancelled.")
	require.NoError(t, err)

	assert.Equal(t, session.StatusCancelled, sess.Status)
	assert.Nil(t, sess.CurrentPersona)
	assert.Len(t, engine.calls, 1)
}

// sessionIDOf returns the single session's ID.
func sessionIDOf(store *fakeStore) string {
	store.mu.Lock()
	defer store.mu.Unlock()
	for id := range store.sessions {
		return id
	}
	return ""
}

func TestProcessDelegationValidation(t *testing.T) {
	orch, store, _, _ := newTestRig()
	seedSession(store, "sess-1", session.StatusActive)

	target := models.PersonaSeniorDeveloper
	answer, err := store.AppendMessage(context.Background(), models.AppendMessageRequest{
		SessionID:   "sess-1",
		FromPersona: models.PersonaCoordinator,
		Content:     "just an answer",
		Type:        message.TypeAnswer,
	})
	require.NoError(t, err)
	delegation, err := store.AppendMessage(context.Background(), models.AppendMessageRequest{
		SessionID:         "sess-1",
		FromPersona:       models.PersonaCoordinator,
		Content:           "over to you",
		Type:              message.TypeDelegation,
		DelegateToPersona: &target,
	})
	require.NoError(t, err)

	_, err = orch.ProcessDelegation(context.Background(), "sess-1", "no-such-message")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = orch.ProcessDelegation(context.Background(), "other-session", delegation.ID)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = orch.ProcessDelegation(context.Background(), "sess-1", answer.ID)
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestProcessDelegationRunsTarget(t *testing.T) {
	orch, store, engine, _ := newTestRig(
		respSolution("Implemented."),
		respAnswer("All done, here is the final solution: implemented."),
	)
	seedSession(store, "sess-1", session.StatusActive)

	target := models.PersonaSeniorDeveloper
	delegation, err := store.AppendMessage(context.Background(), models.AppendMessageRequest{
		SessionID:         "sess-1",
		FromPersona:       models.PersonaCoordinator,
		Content:           "over to you",
		Type:              message.TypeDelegation,
		DelegateToPersona: &target,
	})
	require.NoError(t, err)

	sess, err := orch.ProcessDelegation(context.Background(), "sess-1", delegation.ID)
	require.NoError(t, err)

	assert.Equal(t, session.StatusCompleted, sess.Status)
	assert.Equal(t, []models.Persona{
		models.PersonaSeniorDeveloper,
		models.PersonaCoordinator,
	}, engine.calledPersonas())
}

func TestResumeInterruptedFromDelegation(t *testing.T) {
	orch, store, engine, _ := newTestRig(
		respSolution("Resumed and solved."),
		respAnswer("The resumed work is complete; the solution is attached."),
	)
	seedSession(store, "sess-1", session.StatusInterrupted)

	target := models.PersonaTechnicalArchitect
	_, err := store.AppendMessage(context.Background(), models.AppendMessageRequest{
		SessionID:         "sess-1",
		FromPersona:       models.PersonaCoordinator,
		Content:           "design this",
		Type:              message.TypeDelegation,
		DelegateToPersona: &target,
	})
	require.NoError(t, err)

	sess, err := orch.ResumeSession(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, session.StatusCompleted, sess.Status)
	assert.Equal(t, models.PersonaTechnicalArchitect, engine.calls[0].persona)
	assert.Equal(t, "design this", engine.calls[0].incoming.Content)
}

func TestResumeInterruptedFromStuck(t *testing.T) {
	orch, store, engine, _ := newTestRig(
		respAnswer("Noted."),
	)
	seedSession(store, "sess-1", session.StatusInterrupted)

	_, err := store.AppendMessage(context.Background(), models.AppendMessageRequest{
		SessionID:   "sess-1",
		FromPersona: models.PersonaSeniorDeveloper,
		Content:     "I give up",
		Type:        message.TypeStuck,
		IsStuck:     true,
	})
	require.NoError(t, err)

	sess, err := orch.ResumeSession(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, session.StatusActive, sess.Status)
	assert.Equal(t, models.PersonaCoordinator, engine.calls[0].persona)
}

func TestResumeStuckSessionReroutesToCoordinator(t *testing.T) {
	orch, store, engine, _ := newTestRig(
		respAnswer("Noted."),
	)
	seedSession(store, "sess-1", session.StatusStuck)
	require.NoError(t, store.SetFinalSolution(context.Background(), "sess-1", "## Session incomplete\npartial notes"))

	_, err := store.AppendMessage(context.Background(), models.AppendMessageRequest{
		SessionID:   "sess-1",
		FromPersona: models.PersonaSeniorDeveloper,
		Content:     "I give up",
		Type:        message.TypeStuck,
		IsStuck:     true,
	})
	require.NoError(t, err)

	sess, err := orch.ResumeSession(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, session.StatusActive, sess.Status)
	assert.Equal(t, models.PersonaCoordinator, engine.calls[0].persona)

	// The partial write-up does not survive another run at the problem.
	assert.Nil(t, sess.FinalSolution)
}

func TestResumeErroredSessionFromDelegation(t *testing.T) {
	orch, store, engine, _ := newTestRig(
		respSolution("Recovered and solved."),
		respAnswer("The recovered work is complete; nothing else is outstanding."),
	)
	seedSession(store, "sess-1", session.StatusError)

	target := models.PersonaSeniorQA
	_, err := store.AppendMessage(context.Background(), models.AppendMessageRequest{
		SessionID:         "sess-1",
		FromPersona:       models.PersonaCoordinator,
		Content:           "verify the fix",
		Type:              message.TypeDelegation,
		DelegateToPersona: &target,
	})
	require.NoError(t, err)

	sess, err := orch.ResumeSession(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, session.StatusCompleted, sess.Status)
	assert.Equal(t, models.PersonaSeniorQA, engine.calls[0].persona)
}

func TestResumeTerminalSessionRejected(t *testing.T) {
	orch, store, engine, _ := newTestRig()
	seedSession(store, "sess-1", session.StatusCompleted)
	seedSession(store, "sess-2", session.StatusCancelled)

	_, err := orch.ResumeSession(context.Background(), "sess-1")
	assert.ErrorIs(t, err, services.ErrInvalidState)

	_, err = orch.ResumeSession(context.Background(), "sess-2")
	assert.ErrorIs(t, err, services.ErrInvalidState)

	assert.Empty(t, engine.calls)
}

func TestResumeFromUnresumableMessage(t *testing.T) {
	orch, store, _, _ := newTestRig()
	seedSession(store, "sess-1", session.StatusInterrupted)

	_, err := store.AppendMessage(context.Background(), models.AppendMessageRequest{
		SessionID:   "sess-1",
		FromPersona: models.PersonaCoordinator,
		Content:     "the answer",
		Type:        message.TypeAnswer,
	})
	require.NoError(t, err)

	_, err = orch.ResumeSession(context.Background(), "sess-1")
	assert.ErrorIs(t, err, services.ErrInvalidState)
}

func TestEngineRepositoryFailureMarksSessionErrored(t *testing.T) {
	orch, store, engine, _ := newTestRig()
	engine.errAt = map[int]error{0: fmt.Errorf("config table unreachable")}

	sess, err := orch.StartSession(context.Background(), "A doomed problem.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config table unreachable")

	// StartSession returns the post-failure snapshot.
	require.NotNil(t, sess)
	assert.Equal(t, session.StatusError, sess.Status)

	stored, _ := store.GetSession(context.Background(), sess.ID)
	assert.Equal(t, session.StatusError, stored.Status)
	assert.Nil(t, stored.CurrentPersona)
}

func TestRecoveryTaskMarksActiveInterrupted(t *testing.T) {
	store := newFakeStore()
	sink := &recordingSink{}
	seedSession(store, "running-1", session.StatusActive)
	seedSession(store, "running-2", session.StatusActive)
	seedSession(store, "finished", session.StatusCompleted)
	seedSession(store, "waiting", session.StatusWaitingForClarification)

	task := NewRecoveryTask(store, sink)
	require.NoError(t, task.Run(context.Background()))

	for _, id := range []string{"running-1", "running-2"} {
		sess, err := store.GetSession(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, session.StatusInterrupted, sess.Status)
		assert.Nil(t, sess.CurrentPersona)
	}

	sess, _ := store.GetSession(context.Background(), "finished")
	assert.Equal(t, session.StatusCompleted, sess.Status)
	sess, _ = store.GetSession(context.Background(), "waiting")
	assert.Equal(t, session.StatusWaitingForClarification, sess.Status)

	kinds := sink.kinds()
	assert.Len(t, kinds, 2)
	for _, k := range kinds {
		assert.Equal(t, events.EventTypeSessionStatus, k)
	}
}
