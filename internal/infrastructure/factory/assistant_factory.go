package factory

import (
	"context"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/domain/ports"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateTriage/internal/services"
)

// AssistantFactory arma el servicio del asistente a partir de la
// configuración: resuelve el suggester activo contra el registro de
// proveedores y el cliente de GitHub si hay token.
type AssistantFactory struct {
	config   *config.Config
	trans    *i18n.Translations
	registry *registry.AIProviderRegistry
}

func NewAssistantFactory(cfg *config.Config, trans *i18n.Translations, reg *registry.AIProviderRegistry) *AssistantFactory {
	return &AssistantFactory{
		config:   cfg,
		trans:    trans,
		registry: reg,
	}
}

// CreateAssistantService construye el servicio para el repo owner/repo.
// Sin clave de proveedor el suggester queda en nil y el servicio no llama
// al modelo; sin token el cliente VCS queda en nil y no se publica nada.
func (f *AssistantFactory) CreateAssistantService(ctx context.Context, owner, repo string) (ports.AssistantService, error) {
	suggester, err := f.registry.CreateFromConfig(ctx, f.config, f.trans)
	if err != nil {
		return nil, err
	}

	var vcsClient ports.VCSClient
	if f.config.GitHubToken != "" && owner != "" && repo != "" {
		vcsClient = github.NewGitHubClient(owner, repo, f.config.GitHubToken, f.trans)
	}

	repoFull := owner + "/" + repo
	return services.NewAssistantService(vcsClient, suggester, f.config, f.trans, repoFull), nil
}
