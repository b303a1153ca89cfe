package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conclave-dev/conclave/pkg/database"
	"github.com/conclave-dev/conclave/pkg/version"
)

// health reports service liveness plus database pool statistics. Returns
// 503 when the database cannot be reached.
func (s *Server) health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": version.Full()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	status := http.StatusOK
	overall := "healthy"
	if err != nil {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"version":  version.Full(),
		"database": dbHealth,
	})
}
