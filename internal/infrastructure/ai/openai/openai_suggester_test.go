package openai

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	domainerrors "github.com/Tomas-vilte/MateTriage/internal/domain/errors"
	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	return &config.Config{
		OpenAIAPIKey:      "sk-test",
		OpenAIModel:       "gpt-4o",
		OpenAITemperature: 0.0,
		MaxResponseTokens: 600,
		RetryAttempts:     3,
		RetryBackoff:      2.0,
	}
}

func TestNewOpenAISuggester(t *testing.T) {
	trans, err := i18n.NewTranslations("es", "")
	require.NoError(t, err)

	t.Run("requires API key", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.OpenAIAPIKey = ""

		_, err := NewOpenAISuggester(cfg, trans)

		var notConfigured *domainerrors.AIProviderNotConfiguredError
		require.ErrorAs(t, err, &notConfigured)
		assert.Equal(t, "openai", notConfigured.Provider)
	})

	t.Run("takes model and retry policy from config", func(t *testing.T) {
		suggester, err := NewOpenAISuggester(newTestConfig(), trans)
		require.NoError(t, err)

		assert.Equal(t, "gpt-4o", suggester.GetModelName())
		assert.Equal(t, "openai", suggester.GetProviderName())
		assert.Equal(t, 3, suggester.retry.Attempts)
		assert.Equal(t, 2.0, suggester.retry.Backoff)
	})
}

func TestOpenAISuggester_Suggest_EmptyPrompt(t *testing.T) {
	trans, err := i18n.NewTranslations("es", "")
	require.NoError(t, err)

	suggester, err := NewOpenAISuggester(newTestConfig(), trans)
	require.NoError(t, err)

	// Un prompt vacío se rechaza antes de tocar la red
	_, err = suggester.Suggest(context.Background(), models.Prompt{})
	assert.Error(t, err)

	_, err = suggester.Suggest(context.Background(), models.Prompt{System: "solo sistema", User: []string{""}})
	assert.Error(t, err)
}

func TestOpenAISuggester_CountTokens(t *testing.T) {
	trans, err := i18n.NewTranslations("es", "")
	require.NoError(t, err)

	suggester, err := NewOpenAISuggester(newTestConfig(), trans)
	require.NoError(t, err)

	count, err := suggester.CountTokens(context.Background(), "1234567890123456")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
