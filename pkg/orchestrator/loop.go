package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/message"
	"github.com/conclave-dev/conclave/ent/session"
	"github.com/conclave-dev/conclave/pkg/events"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/parser"
)

const maxDepthNotice = "Maximum delegation depth reached before the team converged on a solution."

// runLoop executes the delegation loop: invoke the current persona on
// the current message, persist and broadcast the response, then route
// on its type until the session pauses or terminates. Callers must hold
// the session lock. Returns an error only on repository failures, which
// leave the session in error state.
func (o *Orchestrator) runLoop(ctx context.Context, sessionID string, start models.Persona, incoming *ent.Message) error {
	currentPersona := start
	currentMsg := incoming
	depth := 0
	consecutiveStuck := 0
	stuckPersonas := make(map[models.Persona]bool)

	for {
		if err := ctx.Err(); err != nil {
			// Shutdown or caller gave up: leave the session as-is so the
			// startup recovery pass marks it interrupted.
			slog.Warn("Delegation loop stopped by context", "session_id", sessionID, "error", err)
			return err
		}

		sess, err := o.sessions.GetSession(ctx, sessionID)
		if err != nil {
			return o.failSession(sessionID, fmt.Errorf("failed to load session: %w", err))
		}
		if sess.Status != session.StatusActive {
			// Cancelled (or otherwise moved) out from under us.
			slog.Info("Delegation loop stopped", "session_id", sessionID, "status", sess.Status)
			if err := o.sessions.SetCurrentPersona(ctx, sessionID, nil); err != nil {
				slog.Warn("Failed to clear current persona", "session_id", sessionID, "error", err)
			}
			return nil
		}

		depth++
		if depth > MaxDelegationDepth {
			return o.giveUpMaxDepth(ctx, sessionID, currentMsg)
		}

		if err := o.sessions.SetCurrentPersona(ctx, sessionID, &currentPersona); err != nil {
			return o.failSession(sessionID, fmt.Errorf("failed to set current persona: %w", err))
		}

		memories, err := o.memories.Recent(ctx, sessionID, currentPersona, memoryWindow)
		if err != nil {
			slog.Warn("Failed to load persona memories", "session_id", sessionID, "persona", currentPersona, "error", err)
			memories = nil
		}

		resp, err := o.engine.Process(ctx, currentPersona, currentMsg, sess, memories)
		if err != nil {
			return o.failSession(sessionID, fmt.Errorf("persona %s failed: %w", currentPersona, err))
		}

		msg, err := o.messages.AppendMessage(ctx, appendRequestFor(sessionID, currentPersona, resp, currentMsg))
		if err != nil {
			return o.failSession(sessionID, fmt.Errorf("failed to persist %s response: %w", currentPersona, err))
		}
		o.publishMessage(ctx, msg)

		slog.Debug("Persona responded",
			"session_id", sessionID, "persona", currentPersona, "response_type", resp.Type, "depth", depth)

		// A working (non-stuck) response from a non-Coordinator persona
		// breaks the stuck streak. The Coordinator's routing turns in
		// between do not, so a run of stuck workers still counts as
		// consecutive.
		if currentPersona != models.PersonaCoordinator && resp.Type != parser.TypeStuck {
			consecutiveStuck = 0
		}

		switch resp.Type {
		case parser.TypeSolution:
			return o.completeSession(ctx, sessionID, currentPersona, msg)

		case parser.TypeClarification:
			// currentPersona stays set so the answer routes back to whoever asked.
			return o.pauseForClarification(ctx, sessionID, msg, resp)

		case parser.TypeDelegation:
			if resp.DelegateToPersona == nil {
				// Unknown target: re-run the same persona on its own
				// message so it can correct course. Bounded by depth.
				slog.Warn("Delegation to unknown persona; re-running",
					"session_id", sessionID, "persona", currentPersona)
				currentMsg = msg
				continue
			}
			currentPersona = *resp.DelegateToPersona
			currentMsg = msg

		case parser.TypeStuck:
			stuckPersonas[currentPersona] = true
			consecutiveStuck++
			if consecutiveStuck >= MaxConsecutiveStuck ||
				len(stuckPersonas) >= len(models.AgentPersonas) ||
				currentPersona == models.PersonaCoordinator {
				return o.giveUpStuck(ctx, sessionID)
			}
			currentPersona = models.PersonaCoordinator
			currentMsg = msg

		case parser.TypeDecline:
			if currentPersona == models.PersonaCoordinator {
				// Nobody left to route to; the invocation ends here.
				return o.endInvocation(ctx, sessionID)
			}
			currentPersona = models.PersonaCoordinator
			currentMsg = msg

		default: // TypeAnswer
			if currentPersona != models.PersonaCoordinator && len(resp.Content) > answerRouteThreshold {
				// Substantive intermediate result: hand it back to the
				// Coordinator to decide the next step.
				currentPersona = models.PersonaCoordinator
				currentMsg = msg
				continue
			}
			return o.endInvocation(ctx, sessionID)
		}
	}
}

// appendRequestFor maps a parsed persona response onto a timeline row.
func appendRequestFor(sessionID string, from models.Persona, resp *parser.PersonaResponse, parent *ent.Message) models.AppendMessageRequest {
	req := models.AppendMessageRequest{
		SessionID:         sessionID,
		FromPersona:       from,
		Content:           resp.Content,
		InternalReasoning: resp.InternalReasoning,
		DelegationContext: resp.DelegationContext,
		IsStuck:           resp.IsStuck,
		RawResponse:       resp.RawResponse,
	}
	if parent != nil {
		req.ParentMessageID = &parent.ID
	}

	user := models.PersonaUser
	switch resp.Type {
	case parser.TypeDelegation:
		req.Type = message.TypeDelegation
		req.ToPersona = resp.DelegateToPersona
		req.DelegateToPersona = resp.DelegateToPersona
	case parser.TypeClarification:
		req.Type = message.TypeClarification
		req.ToPersona = &user
	case parser.TypeSolution:
		req.Type = message.TypeSolution
		req.ToPersona = &user
	case parser.TypeStuck:
		req.Type = message.TypeStuck
	case parser.TypeDecline:
		req.Type = message.TypeDecline
	default:
		req.Type = message.TypeAnswer
	}

	if req.Content == "" {
		switch {
		case resp.DelegationContext != "":
			req.Content = resp.DelegationContext
		case resp.ClarificationQuestion != "":
			req.Content = resp.ClarificationQuestion
		default:
			req.Content = "(no content)"
		}
	}
	return req
}

// completeSession finalizes a solved session. Solutions from personas
// other than the Coordinator get one Coordinator pass to compile the
// final write-up before the session is marked completed.
func (o *Orchestrator) completeSession(ctx context.Context, sessionID string, solver models.Persona, solutionMsg *ent.Message) error {
	finalMsg := solutionMsg

	if solver != models.PersonaCoordinator {
		compiled, err := o.compileFinal(ctx, sessionID, solutionMsg)
		if err != nil {
			return o.failSession(sessionID, err)
		}
		if compiled != nil {
			finalMsg = compiled
		}
	}

	if err := o.sessions.SetFinalSolution(ctx, sessionID, finalMsg.Content); err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to store final solution: %w", err))
	}
	if err := o.sessions.SetCurrentPersona(ctx, sessionID, nil); err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to clear current persona: %w", err))
	}
	if err := o.sessions.UpdateSessionStatus(ctx, sessionID, session.StatusCompleted); err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to complete session: %w", err))
	}

	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to load completed session: %w", err))
	}
	o.publishStatus(ctx, sess)

	payload := events.SolutionReadyPayload{
		Type:      events.EventTypeSolutionReady,
		SessionID: sessionID,
		Session:   events.NewSessionRecord(sess),
		Timestamp: eventTimestamp(),
	}
	if err := o.sink.PublishSolutionReady(ctx, sessionID, payload); err != nil {
		slog.Warn("Failed to publish solution event", "session_id", sessionID, "error", err)
	}

	slog.Info("Session completed", "session_id", sessionID, "solver", solver)
	return nil
}

// compileFinal invokes the Coordinator once over a worker's solution to
// produce the final write-up. Returns nil (no error) when the
// Coordinator produced nothing usable, in which case the worker's
// solution stands.
func (o *Orchestrator) compileFinal(ctx context.Context, sessionID string, solutionMsg *ent.Message) (*ent.Message, error) {
	coordinator := models.PersonaCoordinator
	if err := o.sessions.SetCurrentPersona(ctx, sessionID, &coordinator); err != nil {
		return nil, fmt.Errorf("failed to set current persona: %w", err)
	}

	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	memories, err := o.memories.Recent(ctx, sessionID, coordinator, memoryWindow)
	if err != nil {
		slog.Warn("Failed to load coordinator memories", "session_id", sessionID, "error", err)
		memories = nil
	}

	resp, err := o.engine.Process(ctx, coordinator, solutionMsg, sess, memories)
	if err != nil {
		return nil, fmt.Errorf("coordinator failed to compile solution: %w", err)
	}
	if resp.Content == "" || resp.IsStuck || resp.Type == parser.TypeDecline {
		slog.Warn("Coordinator produced no usable compilation; keeping original solution",
			"session_id", sessionID, "response_type", resp.Type)
		return nil, nil
	}

	user := models.PersonaUser
	msg, err := o.messages.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:         sessionID,
		FromPersona:       coordinator,
		ToPersona:         &user,
		Content:           resp.Content,
		Type:              message.TypeSolution,
		InternalReasoning: resp.InternalReasoning,
		RawResponse:       resp.RawResponse,
		ParentMessageID:   &solutionMsg.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist compiled solution: %w", err)
	}
	o.publishMessage(ctx, msg)
	return msg, nil
}

// pauseForClarification parks the session until the user answers.
func (o *Orchestrator) pauseForClarification(ctx context.Context, sessionID string, msg *ent.Message, resp *parser.PersonaResponse) error {
	if err := o.sessions.UpdateSessionStatus(ctx, sessionID, session.StatusWaitingForClarification); err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to pause session: %w", err))
	}

	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to load paused session: %w", err))
	}
	o.publishStatus(ctx, sess)

	question := resp.ClarificationQuestion
	if question == "" {
		question = msg.Content
	}
	payload := events.ClarificationRequestedPayload{
		Type:      events.EventTypeClarificationRequested,
		SessionID: sessionID,
		Message:   events.NewMessageRecord(msg),
		Question:  question,
		Timestamp: eventTimestamp(),
	}
	if err := o.sink.PublishClarificationRequested(ctx, sessionID, payload); err != nil {
		slog.Warn("Failed to publish clarification event", "session_id", sessionID, "error", err)
	}

	slog.Info("Session waiting for clarification", "session_id", sessionID, "persona", msg.FromPersona)
	return nil
}

// endInvocation finishes a loop run without changing the session's
// status: the session stays active and idle until the user acts.
func (o *Orchestrator) endInvocation(ctx context.Context, sessionID string) error {
	if err := o.sessions.SetCurrentPersona(ctx, sessionID, nil); err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to clear current persona: %w", err))
	}
	o.publishStatusByID(ctx, sessionID)
	return nil
}

// giveUpMaxDepth records a Coordinator stuck notice for the depth limit,
// then hands off to the shared give-up path.
func (o *Orchestrator) giveUpMaxDepth(ctx context.Context, sessionID string, currentMsg *ent.Message) error {
	req := models.AppendMessageRequest{
		SessionID:   sessionID,
		FromPersona: models.PersonaCoordinator,
		Content:     maxDepthNotice,
		Type:        message.TypeStuck,
		IsStuck:     true,
	}
	if currentMsg != nil {
		req.ParentMessageID = &currentMsg.ID
	}
	msg, err := o.messages.AppendMessage(ctx, req)
	if err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to record depth limit: %w", err))
	}
	o.publishMessage(ctx, msg)

	slog.Warn("Delegation depth limit reached", "session_id", sessionID, "max_depth", MaxDelegationDepth)
	return o.giveUpStuck(ctx, sessionID)
}

// giveUpStuck compiles whatever partial progress exists into the final
// solution and marks the session stuck.
func (o *Orchestrator) giveUpStuck(ctx context.Context, sessionID string) error {
	msgs, err := o.messages.GetSessionMessages(ctx, sessionID)
	if err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to load messages for partial solution: %w", err))
	}
	partial := CompilePartialSolution(msgs)

	if err := o.sessions.SetFinalSolution(ctx, sessionID, partial); err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to store partial solution: %w", err))
	}
	if err := o.sessions.SetCurrentPersona(ctx, sessionID, nil); err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to clear current persona: %w", err))
	}
	if err := o.sessions.UpdateSessionStatus(ctx, sessionID, session.StatusStuck); err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to mark session stuck: %w", err))
	}

	sess, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return o.failSession(sessionID, fmt.Errorf("failed to load stuck session: %w", err))
	}
	o.publishStatus(ctx, sess)

	payload := events.SessionStuckPayload{
		Type:        events.EventTypeSessionStuck,
		SessionID:   sessionID,
		Session:     events.NewSessionRecord(sess),
		PartialText: partial,
		Timestamp:   eventTimestamp(),
	}
	if err := o.sink.PublishSessionStuck(ctx, sessionID, payload); err != nil {
		slog.Warn("Failed to publish stuck event", "session_id", sessionID, "error", err)
	}

	slog.Warn("Session stuck", "session_id", sessionID)
	return nil
}
