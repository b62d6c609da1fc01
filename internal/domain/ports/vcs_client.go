package ports

import (
	"context"

	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
)

// VCSClient define los métodos comunes para interactuar con las APIs de los
// sistemas de control de versiones.
type VCSClient interface {
	// GetPR obtiene los datos del PR junto con sus archivos modificados.
	GetPR(ctx context.Context, prNumber int) (models.PRData, error)
	// GetIssue obtiene los datos de una issue.
	GetIssue(ctx context.Context, issueNumber int) (models.IssueData, error)
	// GetFileContent obtiene el contenido de un archivo en una referencia dada.
	GetFileContent(ctx context.Context, path, ref string) (string, error)
	// CreateComment publica un comentario en el PR o issue indicado.
	CreateComment(ctx context.Context, number int, body string) error
	// EnsureLabel garantiza que la etiqueta exista en el repositorio,
	// creándola si hace falta.
	EnsureLabel(ctx context.Context, name, color, description string) error
	// AddLabels aplica etiquetas al PR o issue indicado.
	AddLabels(ctx context.Context, number int, labels []string) error
}
