package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/conclave-dev/conclave/ent"
	"github.com/conclave-dev/conclave/ent/personaconfiguration"
	"github.com/conclave-dev/conclave/pkg/models"
)

// PersonaConfigService manages the persona configuration table
type PersonaConfigService struct {
	client *ent.Client
}

// NewPersonaConfigService creates a new PersonaConfigService
func NewPersonaConfigService(client *ent.Client) *PersonaConfigService {
	return &PersonaConfigService{client: client}
}

// SeedDefaults inserts the default persona rows that do not exist yet.
// Existing rows are left untouched so operator edits survive restarts.
func (s *PersonaConfigService) SeedDefaults(_ context.Context, seeds []models.PersonaSeed) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, seed := range seeds {
		exists, err := s.client.PersonaConfiguration.Query().
			Where(personaconfiguration.PersonaEQ(seed.Persona.String())).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check persona configuration: %w", err)
		}
		if exists {
			continue
		}

		builder := s.client.PersonaConfiguration.Create().
			SetID(uuid.New().String()).
			SetPersona(seed.Persona.String()).
			SetDisplayName(seed.DisplayName).
			SetModelName(seed.ModelName).
			SetSystemPrompt(seed.SystemPrompt).
			SetTemperature(seed.Temperature).
			SetMaxTokens(seed.MaxTokens).
			SetEnabled(seed.Enabled).
			SetSortOrder(seed.SortOrder)
		if seed.Description != "" {
			builder.SetDescription(seed.Description)
		}

		if _, err := builder.Save(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Concurrent seeding; the row is there, move on.
				continue
			}
			return fmt.Errorf("failed to seed persona %s: %w", seed.Persona, err)
		}
		slog.Info("Seeded persona configuration", "persona", seed.Persona)
	}

	return nil
}

// GetByPersona retrieves the configuration for one persona
func (s *PersonaConfigService) GetByPersona(ctx context.Context, persona models.Persona) (*ent.PersonaConfiguration, error) {
	cfg, err := s.client.PersonaConfiguration.Query().
		Where(personaconfiguration.PersonaEQ(persona.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get persona configuration: %w", err)
	}

	return cfg, nil
}

// ListConfigurations retrieves all persona configurations in sort order
func (s *PersonaConfigService) ListConfigurations(ctx context.Context) ([]*ent.PersonaConfiguration, error) {
	configs, err := s.client.PersonaConfiguration.Query().
		Order(ent.Asc(personaconfiguration.FieldSortOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persona configurations: %w", err)
	}

	return configs, nil
}

// UpdateConfigurationRequest carries mutable persona configuration fields.
// Nil pointers leave the current value in place.
type UpdateConfigurationRequest struct {
	DisplayName  *string  `json:"display_name,omitempty"`
	ModelName    *string  `json:"model_name,omitempty"`
	SystemPrompt *string  `json:"system_prompt,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	MaxTokens    *int     `json:"max_tokens,omitempty"`
	Enabled      *bool    `json:"enabled,omitempty"`
	SortOrder    *int     `json:"sort_order,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// UpdateConfiguration applies an administrative edit to one persona
func (s *PersonaConfigService) UpdateConfiguration(_ context.Context, persona models.Persona, req UpdateConfigurationRequest) (*ent.PersonaConfiguration, error) {
	if req.Temperature != nil && (*req.Temperature < 0 || *req.Temperature > 1) {
		return nil, NewValidationError("temperature", "must be between 0 and 1")
	}
	if req.MaxTokens != nil && *req.MaxTokens <= 0 {
		return nil, NewValidationError("max_tokens", "must be positive")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := s.GetByPersona(ctx, persona)
	if err != nil {
		return nil, err
	}

	update := existing.Update()
	if req.DisplayName != nil {
		update.SetDisplayName(*req.DisplayName)
	}
	if req.ModelName != nil {
		update.SetModelName(*req.ModelName)
	}
	if req.SystemPrompt != nil {
		update.SetSystemPrompt(*req.SystemPrompt)
	}
	if req.Temperature != nil {
		update.SetTemperature(*req.Temperature)
	}
	if req.MaxTokens != nil {
		update.SetMaxTokens(*req.MaxTokens)
	}
	if req.Enabled != nil {
		update.SetEnabled(*req.Enabled)
	}
	if req.SortOrder != nil {
		update.SetSortOrder(*req.SortOrder)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update persona configuration: %w", err)
	}

	return updated, nil
}
