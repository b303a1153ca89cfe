package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conclave-dev/conclave/pkg/services"
)

// CreateSessionRequest is the body for POST /api/v1/sessions.
type CreateSessionRequest struct {
	ProblemStatement string `json:"problem_statement" binding:"required"`
}

// ClarificationRequest is the body for POST /api/v1/sessions/:id/clarification.
type ClarificationRequest struct {
	Response string `json:"response" binding:"required"`
}

// createSession starts a new problem-solving session. The request blocks
// until the delegation loop pauses or terminates, then returns the final
// session snapshot. Clients follow live progress over the WebSocket.
func (s *Server) createSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.orch.StartSession(c.Request.Context(), req.ProblemStatement)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newSessionResponse(sess))
}

// listSessions returns a page of sessions, newest first.
// Query params: status, limit, offset.
func (s *Server) listSessions(c *gin.Context) {
	var query struct {
		Status string `form:"status"`
		Limit  int    `form:"limit"`
		Offset int    `form:"offset"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := s.sessions.ListSessions(c.Request.Context(), services.SessionFilters{
		Status: query.Status,
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]SessionResponse, len(page.Sessions))
	for i, sess := range page.Sessions {
		out[i] = newSessionResponse(sess)
	}
	c.JSON(http.StatusOK, gin.H{
		"sessions":    out,
		"total_count": page.TotalCount,
		"limit":       page.Limit,
		"offset":      page.Offset,
	})
}

func (s *Server) getSession(c *gin.Context) {
	sess, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(sess))
}

func (s *Server) getSessionMessages(c *gin.Context) {
	sessionID := c.Param("id")

	// 404 for unknown sessions rather than an empty list
	if _, err := s.sessions.GetSession(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}

	msgs, err := s.messages.GetSessionMessages(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": newMessageResponses(msgs)})
}

// submitClarification records the user's answer to a pending question
// and resumes processing. Blocks like createSession.
func (s *Server) submitClarification(c *gin.Context) {
	var req ClarificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.orch.HandleUserClarification(c.Request.Context(), c.Param("id"), req.Response)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(sess))
}

// resumeSession restarts an interrupted session from its last message.
func (s *Server) resumeSession(c *gin.Context) {
	sess, err := s.orch.ResumeSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(sess))
}

func (s *Server) cancelSession(c *gin.Context) {
	sess, err := s.orch.CancelSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(sess))
}
