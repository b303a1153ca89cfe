package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/memory"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/services"
)

const (
	// DefaultCap is the per-(session, persona) row limit.
	DefaultCap = 10

	maxIdentifierWords = 10
	maxContentWords    = 2000
	maxSearchResults   = 10
)

// Store is the bounded associative memory each persona carries per
// session. Writes never grow a (session, persona) slot past the cap;
// the oldest row is evicted to make room.
type Store struct {
	client *ent.Client
	cap    int
}

// NewStore creates a Store with the given per-slot cap. A cap of zero
// or less falls back to DefaultCap.
func NewStore(client *ent.Client, cap int) *Store {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Store{client: client, cap: cap}
}

// WordCount counts whitespace-separated words; empty string counts as zero.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Store inserts or overwrites the memory row keyed by
// (session, persona, identifier). Overwrites bump the access counters;
// inserts evict the oldest row first when the slot is full.
func (s *Store) Store(_ context.Context, sessionID string, persona models.Persona, identifier, content string) (*ent.Memory, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, services.NewValidationError("identifier", "required")
	}
	if WordCount(identifier) > maxIdentifierWords {
		return nil, services.NewValidationError("identifier",
			fmt.Sprintf("must be at most %d words", maxIdentifierWords))
	}
	if WordCount(content) > maxContentWords {
		return nil, services.NewValidationError("content",
			fmt.Sprintf("must be at most %d words", maxContentWords))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.Memory.Query().
		Where(
			memory.SessionIDEQ(sessionID),
			memory.PersonaEQ(persona.String()),
			memory.IdentifierEQ(identifier),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query memory: %w", err)
	}

	var row *ent.Memory
	if existing != nil {
		row, err = existing.Update().
			SetContent(content).
			AddAccessCount(1).
			SetLastAccessedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to overwrite memory: %w", err)
		}
	} else {
		count, err := tx.Memory.Query().
			Where(
				memory.SessionIDEQ(sessionID),
				memory.PersonaEQ(persona.String()),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count memories: %w", err)
		}
		if count >= s.cap {
			oldest, err := tx.Memory.Query().
				Where(
					memory.SessionIDEQ(sessionID),
					memory.PersonaEQ(persona.String()),
				).
				Order(ent.Asc(memory.FieldCreatedAt)).
				First(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to find oldest memory: %w", err)
			}
			if err := tx.Memory.DeleteOne(oldest).Exec(ctx); err != nil {
				return nil, fmt.Errorf("failed to evict memory: %w", err)
			}
		}

		row, err = tx.Memory.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetPersona(persona.String()).
			SetIdentifier(identifier).
			SetContent(content).
			SetCreatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create memory: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit memory write: %w", err)
	}

	return row, nil
}

// Search returns rows whose identifier or content contains the query,
// case-insensitively, ranked by access count then recency. Results are
// capped at 10 and each hit's access counters are bumped.
func (s *Store) Search(ctx context.Context, sessionID string, persona models.Persona, query string) ([]*ent.Memory, error) {
	rows, err := s.client.Memory.Query().
		Where(
			memory.SessionIDEQ(sessionID),
			memory.PersonaEQ(persona.String()),
			memory.Or(
				memory.IdentifierContainsFold(query),
				memory.ContentContainsFold(query),
			),
		).
		Order(ent.Desc(memory.FieldAccessCount), ent.Desc(memory.FieldCreatedAt)).
		Limit(maxSearchResults).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search memories: %w", err)
	}

	if err := s.touch(rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// Recent returns the n most recently created rows, newest first,
// bounded by the configured cap. Access counters are bumped.
func (s *Store) Recent(ctx context.Context, sessionID string, persona models.Persona, n int) ([]*ent.Memory, error) {
	if n <= 0 || n > s.cap {
		n = s.cap
	}

	rows, err := s.client.Memory.Query().
		Where(
			memory.SessionIDEQ(sessionID),
			memory.PersonaEQ(persona.String()),
		).
		Order(ent.Desc(memory.FieldCreatedAt)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent memories: %w", err)
	}

	if err := s.touch(rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// ByIdentifier returns the row with the exact identifier, bumping its
// access counters on a hit. Returns services.ErrNotFound on a miss.
func (s *Store) ByIdentifier(ctx context.Context, sessionID string, persona models.Persona, identifier string) (*ent.Memory, error) {
	row, err := s.client.Memory.Query().
		Where(
			memory.SessionIDEQ(sessionID),
			memory.PersonaEQ(persona.String()),
			memory.IdentifierEQ(identifier),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get memory by identifier: %w", err)
	}

	if err := s.touch([]*ent.Memory{row}); err != nil {
		return nil, err
	}

	return row, nil
}

// Delete removes a memory row by ID
func (s *Store) Delete(ctx context.Context, id string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Memory.DeleteOneID(id).Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to delete memory: %w", err)
	}

	return nil
}

// touch bumps access counters on retrieved rows
func (s *Store) touch(rows []*ent.Memory) error {
	if len(rows) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	err := s.client.Memory.Update().
		Where(memory.IDIn(ids...)).
		AddAccessCount(1).
		SetLastAccessedAt(now).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update memory access: %w", err)
	}

	// Keep the returned rows consistent with what was persisted.
	for _, row := range rows {
		row.AccessCount++
		row.LastAccessedAt = &now
	}

	return nil
}
