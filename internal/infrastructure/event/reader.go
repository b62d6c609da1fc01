package event

import (
	"encoding/json"
	"fmt"
	"os"

	domainerrors "github.com/Tomas-vilte/MateTriage/internal/domain/errors"
	"github.com/Tomas-vilte/MateTriage/internal/domain/models"
)

// Read carga y parsea el payload de GITHUB_EVENT_PATH.
func Read(path string) (*models.EventPayload, error) {
	if path == "" {
		return nil, domainerrors.NewPayloadInvalidError("GITHUB_EVENT_PATH no está definido")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error al leer el payload del evento en %s: %w", path, err)
	}

	var payload models.EventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, domainerrors.NewPayloadInvalidError(fmt.Sprintf("JSON inválido: %v", err))
	}

	if owner, repo := payload.OwnerRepo(); owner == "" || repo == "" {
		return nil, domainerrors.NewPayloadInvalidError("repository.full_name ausente o malformado")
	}

	return &payload, nil
}
