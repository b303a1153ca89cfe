package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/events"
)

// RecoveryTask marks sessions that were active when the process died as
// interrupted, so they surface for resumption instead of looking live.
// Runs once at startup, before the API accepts traffic.
type RecoveryTask struct {
	sessions SessionStore
	sink     EventSink
}

// NewRecoveryTask creates a RecoveryTask.
func NewRecoveryTask(sessions SessionStore, sink EventSink) *RecoveryTask {
	return &RecoveryTask{sessions: sessions, sink: sink}
}

// Run performs the recovery pass. Per-session failures are logged and
// skipped; only a failure to list sessions is returned, and callers
// treat even that as non-fatal to startup.
func (t *RecoveryTask) Run(ctx context.Context) error {
	orphaned, err := t.sessions.FindSessionsByStatus(ctx, session.StatusActive)
	if err != nil {
		return err
	}
	if len(orphaned) == 0 {
		slog.Info("Recovery: no orphaned sessions")
		return nil
	}

	recovered := 0
	for _, sess := range orphaned {
		if err := t.sessions.UpdateSessionStatus(ctx, sess.ID, session.StatusInterrupted); err != nil {
			slog.Error("Recovery: failed to mark session interrupted", "session_id", sess.ID, "error", err)
			continue
		}
		if err := t.sessions.SetCurrentPersona(ctx, sess.ID, nil); err != nil {
			slog.Warn("Recovery: failed to clear current persona", "session_id", sess.ID, "error", err)
		}
		recovered++

		updated, err := t.sessions.GetSession(ctx, sess.ID)
		if err != nil {
			slog.Warn("Recovery: failed to reload session for event", "session_id", sess.ID, "error", err)
			continue
		}
		payload := events.SessionStatusPayload{
			Type:      events.EventTypeSessionStatus,
			SessionID: updated.ID,
			Session:   events.NewSessionRecord(updated),
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		}
		if err := t.sink.PublishSessionStatus(ctx, updated.ID, payload); err != nil {
			slog.Warn("Recovery: failed to publish status event", "session_id", updated.ID, "error", err)
		}
	}

	slog.Info("Recovery complete", "orphaned", len(orphaned), "recovered", recovered)
	return nil
}
