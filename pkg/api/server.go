// Package api exposes the HTTP and WebSocket surface of the server.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/pkg/config"
	"github.com/conclave-dev/conclave/pkg/database"
	"github.com/conclave-dev/conclave/pkg/events"
	"github.com/conclave-dev/conclave/pkg/models"
	"github.com/conclave-dev/conclave/pkg/services"
)

// SessionOrchestrator drives session processing. Implemented by
// orchestrator.Orchestrator; handler tests use a fake.
type SessionOrchestrator interface {
	StartSession(ctx context.Context, problemStatement string) (*ent.Session, error)
	HandleUserClarification(ctx context.Context, sessionID, response string) (*ent.Session, error)
	ResumeSession(ctx context.Context, sessionID string) (*ent.Session, error)
	CancelSession(ctx context.Context, sessionID string) (*ent.Session, error)
}

// SessionQueries reads sessions. Implemented by services.SessionService.
type SessionQueries interface {
	GetSession(ctx context.Context, sessionID string) (*ent.Session, error)
	ListSessions(ctx context.Context, filters services.SessionFilters) (*services.SessionListResponse, error)
}

// MessageQueries reads session timelines. Implemented by services.MessageService.
type MessageQueries interface {
	GetSessionMessages(ctx context.Context, sessionID string) ([]*ent.Message, error)
}

// PersonaConfigs manages persona configuration rows. Implemented by
// services.PersonaConfigService.
type PersonaConfigs interface {
	ListConfigurations(ctx context.Context) ([]*ent.PersonaConfiguration, error)
	UpdateConfiguration(ctx context.Context, persona models.Persona, req services.UpdateConfigurationRequest) (*ent.PersonaConfiguration, error)
}

// Server is the HTTP API server.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	orch     SessionOrchestrator
	sessions SessionQueries
	messages MessageQueries
	personas PersonaConfigs

	connManager *events.ConnectionManager

	httpServer *http.Server
	engine     *gin.Engine
}

// NewServer creates the API server and registers all routes.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	orch SessionOrchestrator,
	sessions SessionQueries,
	messages MessageQueries,
	personas PersonaConfigs,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:         cfg,
		db:          db,
		orch:        orch,
		sessions:    sessions,
		messages:    messages,
		personas:    personas,
		connManager: connManager,
	}
	s.engine = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(securityHeaders())

	r.GET("/health", s.health)
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/sessions", s.createSession)
		v1.GET("/sessions", s.listSessions)
		v1.GET("/sessions/:id", s.getSession)
		v1.GET("/sessions/:id/messages", s.getSessionMessages)
		v1.POST("/sessions/:id/clarification", s.submitClarification)
		v1.POST("/sessions/:id/resume", s.resumeSession)
		v1.POST("/sessions/:id/cancel", s.cancelSession)

		v1.GET("/personas", s.listPersonas)
		v1.PATCH("/personas/:persona", s.updatePersona)
	}

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
