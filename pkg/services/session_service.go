package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/models"
)

const titleMaxLen = 50

// SessionService manages problem-solving session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// TitleFromProblem derives a session title from the problem statement:
// the text up to the first sentence-ending punctuation or newline,
// capped at 50 characters, with a trailing ellipsis when anything was
// cut off.
func TitleFromProblem(problem string) string {
	title := strings.TrimSpace(problem)
	truncated := false
	if idx := strings.IndexAny(title, ".?!\n"); idx >= 0 {
		title = strings.TrimSpace(title[:idx])
		truncated = true
	}
	if runes := []rune(title); len(runes) > titleMaxLen {
		title = string(runes[:titleMaxLen])
		truncated = true
	}
	if truncated {
		title += "..."
	}
	return title
}

// CreateSession creates a new session in Active status
func (s *SessionService) CreateSession(_ context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	if strings.TrimSpace(req.ProblemStatement) == "" {
		return nil, NewValidationError("problem_statement", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	title := req.Title
	if title == "" {
		title = TitleFromProblem(req.ProblemStatement)
	}

	builder := s.client.Session.Create().
		SetID(sessionID).
		SetTitle(title).
		SetProblemStatement(req.ProblemStatement).
		SetStatus(session.StatusActive)
	if req.CurrentPersona != "" {
		builder.SetCurrentPersona(req.CurrentPersona)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return created, nil
}

// GetSession retrieves a session by ID
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().
		Where(session.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return sess, nil
}

// SessionFilters narrows ListSessions results
type SessionFilters struct {
	Status        string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
	Offset        int
}

// SessionListResponse is a page of sessions plus the unpaged total
type SessionListResponse struct {
	Sessions   []*ent.Session `json:"sessions"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// ListSessions lists sessions with filtering and pagination, newest first
func (s *SessionService) ListSessions(ctx context.Context, filters SessionFilters) (*SessionListResponse, error) {
	query := s.client.Session.Query()

	if filters.Status != "" {
		query = query.Where(session.StatusEQ(session.Status(filters.Status)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(session.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(session.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateSessionStatus updates a session's status
func (s *SessionService) UpdateSessionStatus(ctx context.Context, sessionID string, status session.Status) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Session.UpdateOneID(sessionID).
		SetStatus(status).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session status: %w", err)
	}

	return nil
}

// SetCurrentPersona records which persona is scheduled next for the session.
// A nil persona clears the field.
func (s *SessionService) SetCurrentPersona(ctx context.Context, sessionID string, persona *models.Persona) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Session.UpdateOneID(sessionID)
	if persona == nil {
		update.ClearCurrentPersona()
	} else {
		update.SetCurrentPersona(persona.String())
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current persona: %w", err)
	}

	return nil
}

// SetFinalSolution stores the compiled solution text on the session
func (s *SessionService) SetFinalSolution(ctx context.Context, sessionID string, solution string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Session.UpdateOneID(sessionID).
		SetFinalSolution(solution).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set final solution: %w", err)
	}

	return nil
}

// ClearFinalSolution removes a stored solution, e.g. when a stuck
// session is resumed and its partial write-up no longer stands
func (s *SessionService) ClearFinalSolution(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Session.UpdateOneID(sessionID).
		ClearFinalSolution().
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to clear final solution: %w", err)
	}

	return nil
}

// FindSessionsByStatus returns all sessions currently in the given status,
// oldest first. Used by startup recovery to locate interrupted work.
func (s *SessionService) FindSessionsByStatus(ctx context.Context, status session.Status) ([]*ent.Session, error) {
	sessions, err := s.client.Session.Query().
		Where(session.StatusEQ(status)).
		Order(ent.Asc(session.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions by status: %w", err)
	}

	return sessions, nil
}

// DeleteSession removes a session and, via cascading foreign keys, its
// messages, memories, and events
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.Session.DeleteOneID(sessionID).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
