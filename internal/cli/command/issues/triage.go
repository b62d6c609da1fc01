package issues

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateTriage/internal/cli/command/pr"
	cfg "github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/factory"
	"github.com/Tomas-vilte/MateTriage/internal/ui"
	"github.com/urfave/cli/v3"
)

// TriageCommandFactory crea el comando `issue`: triage manual de un issue.
type TriageCommandFactory struct {
	assistantFactory *factory.AssistantFactory
}

func NewTriageCommandFactory(assistantFactory *factory.AssistantFactory) *TriageCommandFactory {
	return &TriageCommandFactory{assistantFactory: assistantFactory}
}

func (c *TriageCommandFactory) CreateCommand(t *i18n.Translations, appCfg *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "issue",
		Usage: t.GetMessage("issue.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Aliases:  []string{"n"},
				Usage:    t.GetMessage("issue.flag_number", 0, nil),
				Required: true,
			},
			&cli.StringFlag{
				Name:    "owner",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("pr.flag_owner", 0, nil),
			},
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   t.GetMessage("pr.flag_repo", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if appCfg.ActiveAI() == "" {
				return fmt.Errorf("%s", t.GetMessage("gate.no_api_key", 0, nil))
			}

			owner, repo := pr.ResolveOwnerRepo(cmd.String("owner"), cmd.String("repo"))
			issueNumber := int(cmd.Int("number"))

			service, err := c.assistantFactory.CreateAssistantService(ctx, owner, repo)
			if err != nil {
				return err
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("issue.generating", 0, map[string]interface{}{
				"Number": issueNumber,
			}))
			spinner.Start()

			suggestion, err := service.HandleIssue(ctx, models.EventIssue{Number: issueNumber})
			if err != nil {
				spinner.Error(err.Error())
				return err
			}

			spinner.Success(t.GetMessage("issue.success", 0, nil))
			ui.PrintSuggestion(suggestion.Text)
			return nil
		},
	}
}
