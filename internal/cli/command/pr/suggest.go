package pr

import (
	"context"
	"fmt"
	"os"
	"strings"

	cfg "github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/factory"
	"github.com/Tomas-vilte/MateTriage/internal/ui"
	"github.com/urfave/cli/v3"
)

// SuggestCommandFactory crea el comando `pr`, la variante manual del
// asistente: genera y publica la sugerencia para un PR puntual. A diferencia
// de `run`, acá los errores sí cortan con código distinto de cero.
type SuggestCommandFactory struct {
	assistantFactory *factory.AssistantFactory
}

func NewSuggestCommandFactory(assistantFactory *factory.AssistantFactory) *SuggestCommandFactory {
	return &SuggestCommandFactory{assistantFactory: assistantFactory}
}

func (c *SuggestCommandFactory) CreateCommand(t *i18n.Translations, appCfg *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "pr",
		Usage: t.GetMessage("pr.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Aliases:  []string{"n"},
				Usage:    t.GetMessage("pr.flag_number", 0, nil),
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

			owner, repo := ResolveOwnerRepo(cmd.String("owner"), cmd.String("repo"))
			prNumber := int(cmd.Int("number"))

			service, err := c.assistantFactory.CreateAssistantService(ctx, owner, repo)
			if err != nil {
				return err
			}

			spinner := ui.NewSmartSpinner(t.GetMessage("pr.generating", 0, map[string]interface{}{
				"Number": prNumber,
			}))
			spinner.Start()

			suggestion, err := service.HandlePullRequest(ctx, models.EventPullRequest{Number: prNumber})
			if err != nil {
				spinner.Error(err.Error())
				return err
			}

			spinner.Success(t.GetMessage("pr.success", 0, nil))
			ui.PrintSuggestion(suggestion.Text)
			return nil
		},
	}
}

// ResolveOwnerRepo completa owner/repo con GITHUB_REPOSITORY cuando los
// flags vienen vacíos, que es el caso habitual dentro de Actions.
func ResolveOwnerRepo(owner, repo string) (string, string) {
	if owner != "" && repo != "" {
		return owner, repo
	}
	parts := strings.SplitN(os.Getenv("GITHUB_REPOSITORY"), "/", 2)
	if len(parts) == 2 {
		if owner == "" {
			owner = parts[0]
		}
		if repo == "" {
			repo = parts[1]
		}
	}
	return owner, repo
}
