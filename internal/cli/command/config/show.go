package config

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			ui.PrintSectionBanner(t.GetMessage("config_show.title", 0, nil))

			active := string(cfg.ActiveAI())
			if active == "" {
				active = t.GetMessage("config_show.none", 0, nil)
			}
			fmt.Printf("%s: %s\n", t.GetMessage("config_show.provider", 0, nil), active)

			fmt.Printf("OPENAI_API_KEY: %s\n", maskedState(t, cfg.OpenAIAPIKey))
			fmt.Printf("OPENAI_MODEL: %s\n", cfg.OpenAIModel)
			fmt.Printf("OPENAI_TEMPERATURE: %.2f\n", cfg.OpenAITemperature)
			fmt.Printf("GEMINI_API_KEY: %s\n", maskedState(t, cfg.GeminiAPIKey))
			fmt.Printf("GEMINI_MODEL: %s\n", cfg.GeminiModel)
			fmt.Printf("GITHUB_TOKEN: %s\n", maskedState(t, cfg.GitHubToken))
			fmt.Printf("ASSISTANT_LABEL: %s\n", cfg.Label)
			fmt.Printf("ASSISTANT_LANG: %s\n", cfg.Language)
			fmt.Printf("ASSISTANT_LOG_LEVEL: %s\n", cfg.LogLevel)
			fmt.Printf("MAX_RESPONSE_TOKENS: %d\n", cfg.MaxResponseTokens)
			fmt.Printf("MAX_SNIPPET_FILES: %d\n", cfg.MaxSnippetFiles)
			fmt.Printf("OPENAI_RETRY_ATTEMPTS: %d\n", cfg.RetryAttempts)
			fmt.Printf("OPENAI_RETRY_BACKOFF: %.1f\n", cfg.RetryBackoff)

			return nil
		},
	}
}

// maskedState nunca imprime el secreto, solo si está definido o no.
func maskedState(t *i18n.Translations, secret string) string {
	if secret == "" {
		return ui.Warning.Sprint(t.GetMessage("config_show.not_set", 0, nil))
	}
	return ui.Success.Sprint(t.GetMessage("config_show.set", 0, nil))
}
