package ports

import (
	"context"

	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
)

// Suggester define la interfaz para los proveedores de IA que generan
// sugerencias de texto a partir de un prompt.
type Suggester interface {
	Suggest(ctx context.Context, prompt models.Prompt) (models.Suggestion, error)
}
