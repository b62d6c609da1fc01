package openai

import (
	"context"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	domainerrors "github.com/Tomas-vilte/MateTriage/internal/domain/errors"
	"github.com/Tomas-vilte/MateTriage/internal/domain/ports"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
)

// OpenAIProviderFactory implementa registry.AIProviderFactory para OpenAI
type OpenAIProviderFactory struct{}

// NewOpenAIProviderFactory crea una nueva factory para OpenAI
func NewOpenAIProviderFactory() *OpenAIProviderFactory {
	return &OpenAIProviderFactory{}
}

// CreateSuggester crea el suggester de OpenAI
func (f *OpenAIProviderFactory) CreateSuggester(_ context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Suggester, error) {
	return NewOpenAISuggester(cfg, trans)
}

// ValidateConfig valida la configuración de OpenAI
func (f *OpenAIProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.OpenAIAPIKey == "" {
		return domainerrors.NewAIProviderNotConfiguredError("openai", "OPENAI_API_KEY no está definida")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *OpenAIProviderFactory) Name() string {
	return "openai"
}
