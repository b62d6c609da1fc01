package run

import (
	"context"

	cfg "github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/event"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/factory"
	"github.com/Tomas-vilte/MateTriage/internal/logger"
	"github.com/urfave/cli/v3"
)

// RunCommandFactory crea el comando `run`, el punto de entrada pensado para
// GitHub Actions: lee el evento, genera la sugerencia y la publica.
//
// El comando es deliberadamente tolerante: un payload ilegible, un evento no
// soportado o una falla del modelo terminan en exit 0 con un log, nunca en un
// workflow rojo. Los errores de configuración sí cortan con código distinto
// de cero.
type RunCommandFactory struct {
	assistantFactory *factory.AssistantFactory
}

func NewRunCommandFactory(assistantFactory *factory.AssistantFactory) *RunCommandFactory {
	return &RunCommandFactory{assistantFactory: assistantFactory}
}

func (c *RunCommandFactory) CreateCommand(t *i18n.Translations, appCfg *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: t.GetMessage("run.usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			payload, err := event.Read(appCfg.EventPath)
			if err != nil {
				logger.Warn(ctx, t.GetMessage("run.unsupported_event", 0, nil), "err", err)
				return nil
			}

			owner, repo := payload.OwnerRepo()
			service, err := c.assistantFactory.CreateAssistantService(ctx, owner, repo)
			if err != nil {
				return err
			}

			switch payload.Kind() {
			case models.EventPullRequestKind:
				suggestion, err := service.HandlePullRequest(ctx, *payload.PullRequest)
				if err != nil {
					logger.Warn(ctx, t.GetMessage("run.model_failed", 0, nil), "err", err)
					return nil
				}
				logRunResult(ctx, t, "run.pr_done", payload.PullRequest.Number, suggestion)

			case models.EventIssueKind:
				suggestion, err := service.HandleIssue(ctx, *payload.Issue)
				if err != nil {
					logger.Warn(ctx, t.GetMessage("run.model_failed", 0, nil), "err", err)
					return nil
				}
				logRunResult(ctx, t, "run.issue_done", payload.Issue.Number, suggestion)

			default:
				logger.Info(ctx, t.GetMessage("run.unsupported_event", 0, nil), "action", payload.Action)
			}

			return nil
		},
	}
}

func logRunResult(ctx context.Context, t *i18n.Translations, doneKey string, number int, suggestion models.Suggestion) {
	if suggestion.Text == "" {
		logger.Info(ctx, t.GetMessage("run.no_suggestion", 0, nil))
		return
	}
	args := []any{"number", number}
	if suggestion.Usage != nil {
		args = append(args, "total_tokens", suggestion.Usage.TotalTokens)
	}
	logger.Info(ctx, t.GetMessage(doneKey, 0, map[string]interface{}{"Number": number}), args...)
}
