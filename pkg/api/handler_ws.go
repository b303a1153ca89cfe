package api

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades the request to a WebSocket and hands the connection
// to the event manager. Clients subscribe to per-session channels and
// receive ordered events; see pkg/events for the protocol.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming unavailable"})
		return
	}

	opts := &websocket.AcceptOptions{}
	if len(s.cfg.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.AllowedWSOrigins
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		slog.Warn("WebSocket accept failed", "error", err)
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}
