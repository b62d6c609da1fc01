package gemini

import (
	"context"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	domainerrors "github.com/Tomas-vilte/MateTriage/internal/domain/errors"
	"github.com/Tomas-vilte/MateTriage/internal/domain/ports"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
)

// GeminiProviderFactory implementa registry.AIProviderFactory para Gemini
type GeminiProviderFactory struct{}

// NewGeminiProviderFactory crea una nueva factory para Gemini
func NewGeminiProviderFactory() *GeminiProviderFactory {
	return &GeminiProviderFactory{}
}

// CreateSuggester crea el suggester de Gemini
func (f *GeminiProviderFactory) CreateSuggester(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Suggester, error) {
	return NewGeminiSuggester(ctx, cfg, trans)
}

// ValidateConfig valida la configuración de Gemini
func (f *GeminiProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.GeminiAPIKey == "" {
		return domainerrors.NewAIProviderNotConfiguredError("gemini", "GEMINI_API_KEY no está definida")
	}
	return nil
}

// Name retorna el nombre del proveedor
func (f *GeminiProviderFactory) Name() string {
	return "gemini"
}
