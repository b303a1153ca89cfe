// Conclave server — exposes the HTTP API, streams session events over
// WebSocket, and drives multi-persona problem-solving sessions.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/conclave-dev/conclave/pkg/api"
	"github.com/conclave-dev/conclave/pkg/cleanup"
	"github.com/conclave-dev/conclave/pkg/config"
	"github.com/conclave-dev/conclave/pkg/database"
	"github.com/conclave-dev/conclave/pkg/events"
	"github.com/conclave-dev/conclave/pkg/llm"
	"github.com/conclave-dev/conclave/pkg/memory"
	"github.com/conclave-dev/conclave/pkg/orchestrator"
	"github.com/conclave-dev/conclave/pkg/persona"
	"github.com/conclave-dev/conclave/pkg/services"
	"github.com/conclave-dev/conclave/pkg/version"
	"github.com/conclave-dev/conclave/pkg/workspace"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to the environment file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	slog.Info("Starting conclave", "version", version.Full())

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	personaConfigService := services.NewPersonaConfigService(dbClient.Client)
	memoryStore := memory.NewStore(dbClient.Client, cfg.Memory.CapPerPersona)
	slog.Info("Services initialized")

	// Seed default persona rows; operator edits to existing rows survive.
	if err := personaConfigService.SeedDefaults(ctx, config.DefaultPersonaConfigs(cfg.LLM.DefaultModel)); err != nil {
		slog.Error("Failed to seed persona configurations", "error", err)
		os.Exit(1)
	}

	// 4. Session workspace for FILE directives
	workspaceDir, err := workspace.NewDir(cfg.Workspace.Root)
	if err != nil {
		slog.Error("Failed to prepare workspace directory", "root", cfg.Workspace.Root, "error", err)
		os.Exit(1)
	}
	slog.Info("Workspace ready", "root", workspaceDir.Root())

	// 5. LLM provider and persona engine
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Timeout)
	slog.Info("LLM client initialized", "base_url", cfg.LLM.BaseURL, "default_model", cfg.LLM.DefaultModel)

	personaEngine := persona.NewEngine(personaConfigService, messageService, memoryStore, workspaceDir, llmClient)

	// 5a. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Orchestrator + startup recovery
	orch := orchestrator.New(sessionService, messageService, memoryStore, personaEngine, eventPublisher)

	// Sessions left active by a previous process crashed mid-loop; mark
	// them interrupted so clients can resume them.
	if err := orchestrator.NewRecoveryTask(sessionService, eventPublisher).Run(ctx); err != nil {
		slog.Error("Startup recovery failed", "error", err)
		// Non-fatal — continue
	}

	// 7. Background event retention
	cleanupService := cleanup.NewService(&cfg.Retention, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. Start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, orch, sessionService, messageService, personaConfigService, connManager)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Conclave started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown. In-flight session loops run on request
	// contexts; the HTTP drain below gives them time to persist their
	// state, and anything still active is interrupt-recovered on the
	// next start.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
