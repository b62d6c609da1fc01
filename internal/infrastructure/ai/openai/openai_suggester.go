package openai

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	domainerrors "github.com/Tomas-vilte/MateTriage/internal/domain/errors"
	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
	"github.com/Tomas-vilte/MateTriage/internal/domain/ports"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/ai"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	_ ports.Suggester           = (*OpenAISuggester)(nil)
	_ ports.CostAwareAIProvider = (*OpenAISuggester)(nil)
)

// OpenAISuggester genera sugerencias con la API de chat completions de
// OpenAI, con reintentos y backoff exponencial.
type OpenAISuggester struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int64
	retry       ai.RetryPolicy
	trans       *i18n.Translations
}

func NewOpenAISuggester(cfg *config.Config, trans *i18n.Translations) (*OpenAISuggester, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, domainerrors.NewAIProviderNotConfiguredError("openai", trans.GetMessage("error.missing_openai_key", 0, nil))
	}

	client := openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey))

	return &OpenAISuggester{
		client:      client,
		model:       cfg.OpenAIModel,
		temperature: cfg.OpenAITemperature,
		maxTokens:   int64(cfg.MaxResponseTokens),
		retry: ai.RetryPolicy{
			Attempts: cfg.RetryAttempts,
			Backoff:  cfg.RetryBackoff,
		},
		trans: trans,
	}, nil
}

func (s *OpenAISuggester) Suggest(ctx context.Context, prompt models.Prompt) (models.Suggestion, error) {
	if prompt.IsEmpty() {
		return models.Suggestion{}, fmt.Errorf("%s", s.trans.GetMessage("error.empty_prompt", 0, nil))
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(prompt.User)+1)
	if prompt.System != "" {
		messages = append(messages, openai.SystemMessage(prompt.System))
	}
	for _, user := range prompt.User {
		if user != "" {
			messages = append(messages, openai.UserMessage(user))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(s.model),
		Messages:    messages,
		Temperature: openai.Float(s.temperature),
		MaxTokens:   openai.Int(s.maxTokens),
	}

	var resp *openai.ChatCompletion
	err := s.retry.Do(ctx, func() error {
		var callErr error
		resp, callErr = s.client.Chat.Completions.New(ctx, params)
		return callErr
	})
	if err != nil {
		return models.Suggestion{}, fmt.Errorf("%s: %w", s.trans.GetMessage("error.openai_call_failed", 0, nil), err)
	}

	if len(resp.Choices) == 0 {
		return models.Suggestion{}, fmt.Errorf("%s", s.trans.GetMessage("error.empty_response", 0, nil))
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return models.Suggestion{}, fmt.Errorf("%s", s.trans.GetMessage("error.empty_response", 0, nil))
	}

	return models.Suggestion{
		Text: text,
		Usage: &models.TokenUsage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}, nil
}

// CountTokens implementa ports.CostAwareAIProvider. La API de OpenAI no
// expone conteo de tokens sin generar, así que se estima con la heurística
// de ~4 caracteres por token.
func (s *OpenAISuggester) CountTokens(_ context.Context, prompt string) (int, error) {
	return utf8.RuneCountInString(prompt) / 4, nil
}

// GetModelName implementa ports.CostAwareAIProvider
func (s *OpenAISuggester) GetModelName() string {
	return s.model
}

// GetProviderName implementa ports.CostAwareAIProvider
func (s *OpenAISuggester) GetProviderName() string {
	return "openai"
}
