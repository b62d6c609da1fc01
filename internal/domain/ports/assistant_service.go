package ports

import (
	"context"

	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
)

// AssistantService orquesta el flujo completo del asistente para un evento:
// obtener contexto, generar la sugerencia y publicarla con su etiqueta.
type AssistantService interface {
	// HandlePullRequest procesa un evento de pull request.
	HandlePullRequest(ctx context.Context, pr models.EventPullRequest) (models.Suggestion, error)
	// HandleIssue procesa un evento de issue.
	HandleIssue(ctx context.Context, issue models.EventIssue) (models.Suggestion, error)
}
