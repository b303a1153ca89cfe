package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-dev/conclave/pkg/models"
	testdb "github.com/conclave-dev/conclave/test/database"
)

func testSeeds() []models.PersonaSeed {
	return []models.PersonaSeed{
		{
			Persona:      models.PersonaCoordinator,
			DisplayName:  "Coordinator",
			ModelName:    "gpt-4o",
			SystemPrompt: "You coordinate the team.",
			Temperature:  0.3,
			MaxTokens:    8192,
			Enabled:      true,
			SortOrder:    1,
		},
		{
			Persona:      models.PersonaSeniorDeveloper,
			DisplayName:  "Senior Developer",
			ModelName:    "gpt-4o",
			SystemPrompt: "You write production code.",
			Temperature:  0.2,
			MaxTokens:    8192,
			Enabled:      true,
			SortOrder:    2,
		},
	}
}

func TestPersonaConfigService_SeedDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPersonaConfigService(client.Client)
	ctx := context.Background()

	require.NoError(t, service.SeedDefaults(ctx, testSeeds()))

	configs, err := service.ListConfigurations(ctx)
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "Coordinator", configs[0].Persona)
	assert.Equal(t, "SeniorDeveloper", configs[1].Persona)

	t.Run("reseeding preserves operator edits", func(t *testing.T) {
		temp := 0.9
		_, err := service.UpdateConfiguration(ctx, models.PersonaCoordinator, UpdateConfigurationRequest{
			Temperature: &temp,
		})
		require.NoError(t, err)

		require.NoError(t, service.SeedDefaults(ctx, testSeeds()))

		cfg, err := service.GetByPersona(ctx, models.PersonaCoordinator)
		require.NoError(t, err)
		assert.Equal(t, 0.9, cfg.Temperature)
	})
}

func TestPersonaConfigService_GetByPersona(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPersonaConfigService(client.Client)
	ctx := context.Background()

	require.NoError(t, service.SeedDefaults(ctx, testSeeds()))

	cfg, err := service.GetByPersona(ctx, models.PersonaSeniorDeveloper)
	require.NoError(t, err)
	assert.Equal(t, "Senior Developer", cfg.DisplayName)
	assert.Equal(t, 8192, cfg.MaxTokens)

	_, err = service.GetByPersona(ctx, models.PersonaJuniorQA)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPersonaConfigService_UpdateConfiguration(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPersonaConfigService(client.Client)
	ctx := context.Background()

	require.NoError(t, service.SeedDefaults(ctx, testSeeds()))

	t.Run("applies only provided fields", func(t *testing.T) {
		model := "gpt-4o-mini"
		enabled := false
		updated, err := service.UpdateConfiguration(ctx, models.PersonaSeniorDeveloper, UpdateConfigurationRequest{
			ModelName: &model,
			Enabled:   &enabled,
		})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", updated.ModelName)
		assert.False(t, updated.Enabled)
		// Untouched fields keep their seeded values
		assert.Equal(t, "Senior Developer", updated.DisplayName)
		assert.Equal(t, 0.2, updated.Temperature)
	})

	t.Run("rejects out-of-range temperature", func(t *testing.T) {
		temp := 1.5
		_, err := service.UpdateConfiguration(ctx, models.PersonaCoordinator, UpdateConfigurationRequest{
			Temperature: &temp,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects non-positive max tokens", func(t *testing.T) {
		tokens := 0
		_, err := service.UpdateConfiguration(ctx, models.PersonaCoordinator, UpdateConfigurationRequest{
			MaxTokens: &tokens,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown persona returns not found", func(t *testing.T) {
		_, err := service.UpdateConfiguration(ctx, models.PersonaDocumentWriter, UpdateConfigurationRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
