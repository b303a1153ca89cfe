package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/services"
)

func (s *Server) listPersonas(c *gin.Context) {
	configs, err := s.personas.ListConfigurations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]PersonaConfigResponse, len(configs))
	for i, cfg := range configs {
		out[i] = newPersonaConfigResponse(cfg)
	}
	c.JSON(http.StatusOK, gin.H{"personas": out})
}

// updatePersona applies a partial update to one persona's configuration.
// Only fields present in the body are changed.
func (s *Server) updatePersona(c *gin.Context) {
	persona, ok := models.ResolvePersona(c.Param("persona"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown persona: " + c.Param("persona")})
		return
	}

	var req services.UpdateConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := s.personas.UpdateConfiguration(c.Request.Context(), persona, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPersonaConfigResponse(cfg))
}
