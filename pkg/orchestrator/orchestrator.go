package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/events"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/services"
)

const (
	// MaxDelegationDepth bounds persona invocations per loop run.
	MaxDelegationDepth = 50

	// MaxConsecutiveStuck bounds back-to-back stuck responses before the
	// session gives up with a partial solution.
	MaxConsecutiveStuck = 5

	// memoryWindow is how many recent memories are loaded per invocation.
	memoryWindow = 10

	// answerRouteThreshold: substantive answers from non-Coordinator
	// personas (longer than this many bytes) are routed back to the
	// Coordinator instead of ending the invocation.
	answerRouteThreshold = 100
)

// Orchestrator drives the delegation loop: it schedules persona
// invocations, persists their messages, routes on the parsed response
// type, and publishes timeline events. All public operations serialize
// per session.
type Orchestrator struct {
	sessions SessionStore
	messages MessageStore
	memories MemoryReader
	engine   Engine
	sink     EventSink

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates an Orchestrator over the given stores and engine.
func New(sessions SessionStore, messages MessageStore, memories MemoryReader, engine Engine, sink EventSink) *Orchestrator {
	return &Orchestrator{
		sessions: sessions,
		messages: messages,
		memories: memories,
		engine:   engine,
		sink:     sink,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockSession acquires the per-session mutex and returns its unlock func.
func (o *Orchestrator) lockSession(sessionID string) func() {
	o.mu.Lock()
	l, ok := o.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		o.locks[sessionID] = l
	}
	o.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// StartSession creates a session from a problem statement, records the
// problem message, and runs the delegation loop starting at the
// Coordinator. It blocks until the loop reaches a pause or terminal
// state and returns the final session snapshot.
func (o *Orchestrator) StartSession(ctx context.Context, problemStatement string) (*ent.Session, error) {
	if strings.TrimSpace(problemStatement) == "" {
		return nil, services.NewValidationError("problem_statement", "problem statement cannot be empty")
	}

	sessionID := uuid.New().String()
	sess, err := o.sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionID:        sessionID,
		Title:            services.TitleFromProblem(problemStatement),
		ProblemStatement: problemStatement,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	unlock := o.lockSession(sessionID)
	defer unlock()

	o.publishStatus(ctx, sess)

	toCoordinator := models.PersonaCoordinator
	problemMsg, err := o.messages.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:   sessionID,
		FromPersona: models.PersonaUser,
		ToPersona:   &toCoordinator,
		Content:     problemStatement,
		Type:        message.TypeProblemStatement,
	})
	if err != nil {
		return nil, o.failSession(sessionID, fmt.Errorf("failed to record problem statement: %w", err))
	}
	o.publishMessage(ctx, problemMsg)

	slog.Info("Session started", "session_id", sessionID, "title", sess.Title)

	if err := o.runLoop(ctx, sessionID, models.PersonaCoordinator, problemMsg); err != nil {
		snap, _ := o.sessions.GetSession(context.Background(), sessionID)
		return snap, err
	}

	return o.sessions.GetSession(ctx, sessionID)
}

// ProcessDelegation resumes the delegation loop from a previously
// persisted delegation message, invoking its target persona.
func (o *Orchestrator) ProcessDelegation(ctx context.Context, sessionID, messageID string) (*ent.Session, error) {
	msg, err := o.messages.GetMessage(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg.SessionID != sessionID {
		return nil, fmt.Errorf("message %s does not belong to session %s: %w", messageID, sessionID, services.ErrInvalidInput)
	}
	if msg.Type != message.TypeDelegation || msg.DelegateToPersona == nil {
		return nil, fmt.Errorf("message %s is not a delegation: %w", messageID, services.ErrInvalidState)
	}
	target, ok := models.ResolvePersona(*msg.DelegateToPersona)
	if !ok || !target.IsAgent() {
		return nil, fmt.Errorf("delegation target %q is not a known persona: %w", *msg.DelegateToPersona, services.ErrInvalidInput)
	}

	unlock := o.lockSession(sessionID)
	defer unlock()

	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != session.StatusActive {
		return nil, fmt.Errorf("session %s is %s, not active: %w", sessionID, sess.Status, services.ErrInvalidState)
	}

	if err := o.runLoop(ctx, sessionID, target, msg); err != nil {
		snap, _ := o.sessions.GetSession(context.Background(), sessionID)
		return snap, err
	}
	return o.sessions.GetSession(ctx, sessionID)
}

// HandleUserClarification records the user's answer to a pending
// clarification request and resumes the loop with the persona that
// asked the question.
func (o *Orchestrator) HandleUserClarification(ctx context.Context, sessionID, response string) (*ent.Session, error) {
	if strings.TrimSpace(response) == "" {
		return nil, services.NewValidationError("response", "clarification response cannot be empty")
	}

	unlock := o.lockSession(sessionID)
	defer unlock()

	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != session.StatusWaitingForClarification {
		return nil, fmt.Errorf("session %s is %s, not waiting for clarification: %w", sessionID, sess.Status, services.ErrInvalidState)
	}

	// The persona that asked resumes with the user's answer.
	asker := models.PersonaCoordinator
	var parentID *string
	clarMsg, err := o.messages.GetLastMessageOfType(ctx, sessionID, message.TypeClarification)
	if err != nil {
		slog.Warn("No clarification message found; resuming with Coordinator",
			"session_id", sessionID, "error", err)
	} else {
		parentID = &clarMsg.ID
		if p, ok := models.ResolvePersona(clarMsg.FromPersona); ok {
			asker = p
		}
	}

	userMsg, err := o.messages.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:       sessionID,
		FromPersona:     models.PersonaUser,
		ToPersona:       &asker,
		Content:         response,
		Type:            message.TypeUserResponse,
		ParentMessageID: parentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record clarification response: %w", err)
	}

	if err := o.sessions.UpdateSessionStatus(ctx, sessionID, session.StatusActive); err != nil {
		return nil, o.failSession(sessionID, fmt.Errorf("failed to reactivate session: %w", err))
	}

	o.publishMessage(ctx, userMsg)
	o.publishStatusByID(ctx, sessionID)

	if err := o.runLoop(ctx, sessionID, asker, userMsg); err != nil {
		snap, _ := o.sessions.GetSession(context.Background(), sessionID)
		return snap, err
	}
	return o.sessions.GetSession(ctx, sessionID)
}

// ResumeSession restarts the delegation loop from a session's last
// persisted message. Works for interrupted sessions as well as stuck
// and errored ones; only terminal sessions (completed, cancelled) are
// rejected. Resuming a stuck session discards its partial solution.
func (o *Orchestrator) ResumeSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	unlock := o.lockSession(sessionID)
	defer unlock()

	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == session.StatusCompleted || sess.Status == session.StatusCancelled {
		return nil, fmt.Errorf("session %s is %s and cannot be resumed: %w", sessionID, sess.Status, services.ErrInvalidState)
	}

	recent, err := o.messages.GetRecentMessages(ctx, sessionID, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to load last message: %w", err)
	}
	if len(recent) == 0 {
		return nil, fmt.Errorf("session %s has no messages to resume from: %w", sessionID, services.ErrInvalidState)
	}
	last := recent[len(recent)-1]

	// Pick up where the interruption left the timeline.
	var next models.Persona
	switch {
	case last.Type == message.TypeDelegation && last.DelegateToPersona != nil:
		if p, ok := models.ResolvePersona(*last.DelegateToPersona); ok {
			next = p
		} else {
			next = models.PersonaCoordinator
		}
	case last.Type == message.TypeStuck || last.IsStuck:
		next = models.PersonaCoordinator
	case last.Type == message.TypeProblemStatement || last.Type == message.TypeUserResponse:
		next = models.PersonaCoordinator
		if last.ToPersona != nil {
			if p, ok := models.ResolvePersona(*last.ToPersona); ok && p.IsAgent() {
				next = p
			}
		}
	default:
		return nil, fmt.Errorf("session %s cannot be resumed from a %s message: %w",
			sessionID, last.Type, services.ErrInvalidState)
	}

	// A stuck session carries its partial write-up as finalSolution;
	// it no longer stands once the team takes another run at the problem.
	if sess.FinalSolution != nil {
		if err := o.sessions.ClearFinalSolution(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("failed to clear partial solution: %w", err)
		}
	}

	if err := o.sessions.UpdateSessionStatus(ctx, sessionID, session.StatusActive); err != nil {
		return nil, fmt.Errorf("failed to reactivate session: %w", err)
	}
	o.publishStatusByID(ctx, sessionID)

	slog.Info("Session resumed", "session_id", sessionID, "persona", next, "last_message_type", last.Type)

	if err := o.runLoop(ctx, sessionID, next, last); err != nil {
		snap, _ := o.sessions.GetSession(context.Background(), sessionID)
		return snap, err
	}
	return o.sessions.GetSession(ctx, sessionID)
}

// CancelSession marks a session cancelled. It deliberately does not take
// the session lock: a running loop observes the new status on its next
// iteration and stops.
func (o *Orchestrator) CancelSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status == session.StatusCompleted || sess.Status == session.StatusCancelled {
		return nil, fmt.Errorf("session %s is already %s: %w", sessionID, sess.Status, services.ErrInvalidState)
	}

	if err := o.sessions.UpdateSessionStatus(ctx, sessionID, session.StatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel session: %w", err)
	}
	if err := o.sessions.SetCurrentPersona(ctx, sessionID, nil); err != nil {
		slog.Warn("Failed to clear current persona on cancel", "session_id", sessionID, "error", err)
	}

	slog.Info("Session cancelled", "session_id", sessionID)
	o.publishStatusByID(ctx, sessionID)

	return o.sessions.GetSession(ctx, sessionID)
}

// failSession transitions a session to error state after a repository
// failure mid-loop. Uses a background context so the write survives
// request cancellation.
func (o *Orchestrator) failSession(sessionID string, cause error) error {
	slog.Error("Session failed", "session_id", sessionID, "error", cause)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := o.sessions.UpdateSessionStatus(ctx, sessionID, session.StatusError); err != nil {
		slog.Error("Failed to mark session as errored", "session_id", sessionID, "error", err)
	}
	if err := o.sessions.SetCurrentPersona(ctx, sessionID, nil); err != nil {
		slog.Warn("Failed to clear current persona", "session_id", sessionID, "error", err)
	}
	o.publishStatusByID(ctx, sessionID)

	return cause
}

// --- Event helpers (best-effort: delivery failures are logged, never fatal) ---

func (o *Orchestrator) publishMessage(ctx context.Context, msg *ent.Message) {
	payload := events.MessageReceivedPayload{
		Type:      events.EventTypeMessageReceived,
		SessionID: msg.SessionID,
		Message:   events.NewMessageRecord(msg),
		Timestamp: eventTimestamp(),
	}
	if err := o.sink.PublishMessageReceived(ctx, msg.SessionID, payload); err != nil {
		slog.Warn("Failed to publish message event", "session_id", msg.SessionID, "message_id", msg.ID, "error", err)
	}
}

func (o *Orchestrator) publishStatus(ctx context.Context, sess *ent.Session) {
	payload := events.SessionStatusPayload{
		Type:      events.EventTypeSessionStatus,
		SessionID: sess.ID,
		Session:   events.NewSessionRecord(sess),
		Timestamp: eventTimestamp(),
	}
	if err := o.sink.PublishSessionStatus(ctx, sess.ID, payload); err != nil {
		slog.Warn("Failed to publish session status event", "session_id", sess.ID, "error", err)
	}
}

// publishStatusByID refetches the session so the event carries the
// post-transition snapshot.
func (o *Orchestrator) publishStatusByID(ctx context.Context, sessionID string) {
	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		slog.Warn("Failed to load session for status event", "session_id", sessionID, "error", err)
		return
	}
	o.publishStatus(ctx, sess)
}

func eventTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
