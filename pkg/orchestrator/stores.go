package orchestrator

import (
	"context"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/events"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/parser"
)

// Consumer-side interfaces for the services the orchestrator drives.
// Declared here so the loop can be tested with in-memory fakes.

// SessionStore persists sessions. Implemented by services.SessionService.
type SessionStore interface {
	CreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error)
	GetSession(ctx context.Context, sessionID string) (*ent.Session, error)
	UpdateSessionStatus(ctx context.Context, sessionID string, status session.Status) error
	SetCurrentPersona(ctx context.Context, sessionID string, persona *models.Persona) error
	SetFinalSolution(ctx context.Context, sessionID string, solution string) error
	ClearFinalSolution(ctx context.Context, sessionID string) error
	FindSessionsByStatus(ctx context.Context, status session.Status) ([]*ent.Session, error)
}

// MessageStore persists timeline messages. Implemented by services.MessageService.
type MessageStore interface {
	AppendMessage(ctx context.Context, req models.AppendMessageRequest) (*ent.Message, error)
	GetSessionMessages(ctx context.Context, sessionID string) ([]*ent.Message, error)
	GetRecentMessages(ctx context.Context, sessionID string, n int) ([]*ent.Message, error)
	GetMessage(ctx context.Context, messageID string) (*ent.Message, error)
	GetLastMessageOfType(ctx context.Context, sessionID string, msgType message.Type) (*ent.Message, error)
}

// MemoryReader fetches a persona's recent memories for prompt assembly.
// Implemented by memory.Store.
type MemoryReader interface {
	Recent(ctx context.Context, sessionID string, persona models.Persona, n int) ([]*ent.Memory, error)
}

// Engine runs one persona invocation. Implemented by persona.Engine.
type Engine interface {
	Process(ctx context.Context, p models.Persona, incoming *ent.Message, sess *ent.Session, memories []*ent.Memory) (*parser.PersonaResponse, error)
}

// EventSink delivers ordered per-session events to observers.
// Implemented by events.EventPublisher; tests use a recording fake.
type EventSink interface {
	PublishMessageReceived(ctx context.Context, sessionID string, payload events.MessageReceivedPayload) error
	PublishSessionStatus(ctx context.Context, sessionID string, payload events.SessionStatusPayload) error
	PublishClarificationRequested(ctx context.Context, sessionID string, payload events.ClarificationRequestedPayload) error
	PublishSolutionReady(ctx context.Context, sessionID string, payload events.SolutionReadyPayload) error
	PublishSessionStuck(ctx context.Context, sessionID string, payload events.SessionStuckPayload) error
}
