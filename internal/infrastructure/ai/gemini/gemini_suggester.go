package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	domainerrors "github.com/Tomas-vilte/MateTriage/internal/domain/errors"
	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
	"github.com/Tomas-vilte/MateTriage/internal/domain/ports"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/ai"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var (
	_ ports.Suggester           = (*GeminiSuggester)(nil)
	_ ports.CostAwareAIProvider = (*GeminiSuggester)(nil)
)

// GeminiSuggester genera sugerencias con Gemini. Es el proveedor
// alternativo cuando el operador configura GEMINI_API_KEY en lugar de
// OPENAI_API_KEY.
type GeminiSuggester struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	retry     ai.RetryPolicy
	trans     *i18n.Translations
}

func NewGeminiSuggester(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (*GeminiSuggester, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, domainerrors.NewAIProviderNotConfiguredError("gemini", trans.GetMessage("error.missing_gemini_key", 0, nil))
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// OPENAI_TEMPERATURE es el único knob de temperatura del workflow y
	// aplica a ambos proveedores.
	model := client.GenerativeModel(cfg.GeminiModel)
	model.SetTemperature(float32(cfg.OpenAITemperature))
	model.SetMaxOutputTokens(int32(cfg.MaxResponseTokens))

	return &GeminiSuggester{
		client:    client,
		model:     model,
		modelName: cfg.GeminiModel,
		retry: ai.RetryPolicy{
			Attempts: cfg.RetryAttempts,
			Backoff:  cfg.RetryBackoff,
		},
		trans: trans,
	}, nil
}

func (s *GeminiSuggester) Suggest(ctx context.Context, prompt models.Prompt) (models.Suggestion, error) {
	if prompt.IsEmpty() {
		return models.Suggestion{}, fmt.Errorf("%s", s.trans.GetMessage("error.empty_prompt", 0, nil))
	}

	if prompt.System != "" {
		s.model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(prompt.System)},
		}
	}

	parts := make([]genai.Part, 0, len(prompt.User))
	for _, user := range prompt.User {
		if user != "" {
			parts = append(parts, genai.Text(user))
		}
	}

	var resp *genai.GenerateContentResponse
	err := s.retry.Do(ctx, func() error {
		var callErr error
		resp, callErr = s.model.GenerateContent(ctx, parts...)
		return callErr
	})
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("%s: %w", s.trans.GetMessage("error.gemini_call_failed", 0, nil), err)
	}

	text := formatResponse(resp)
	if text == "" {
		return models.Suggestion{}, fmt.Errorf("%s", s.trans.GetMessage("error.empty_response", 0, nil))
	}

	return models.Suggestion{
		Text:  text,
		Usage: extractUsage(resp),
	}, nil
}

// Close libera el cliente subyacente.
func (s *GeminiSuggester) Close() error {
	return s.client.Close()
}

// CountTokens implementa ports.CostAwareAIProvider
func (s *GeminiSuggester) CountTokens(ctx context.Context, prompt string) (int, error) {
	resp, err := s.model.CountTokens(ctx, genai.Text(prompt))
	if err != nil {
		return 0, err
	}
	return int(resp.TotalTokens), nil
}

// GetModelName implementa ports.CostAwareAIProvider
func (s *GeminiSuggester) GetModelName() string {
	return s.modelName
}

// GetProviderName implementa ports.CostAwareAIProvider
func (s *GeminiSuggester) GetProviderName() string {
	return "gemini"
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}

func extractUsage(resp *genai.GenerateContentResponse) *models.TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &models.TokenUsage{
		InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
		OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
	}
}
