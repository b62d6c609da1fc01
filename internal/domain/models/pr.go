package models

type (
	// PRData contiene la información extraída de una Pull Request.
	PRData struct {
		Number       int
		Title        string
		Body         string
		Creator      string
		HeadSHA      string
		ChangedFiles []ChangedFile
	}

	// ChangedFile es un archivo modificado dentro del PR. Patch puede estar
	// vacío para archivos binarios o renombrados.
	ChangedFile struct {
		Filename string
		Patch    string
	}

	// Prompt es el mensaje armado para el modelo: una instrucción de sistema
	// y uno o más mensajes de usuario en orden.
	Prompt struct {
		System string
		User   []string
	}

	// Suggestion es la respuesta generada por el modelo.
	Suggestion struct {
		Text  string
		Usage *TokenUsage
	}

	// TokenUsage son los metadatos de consumo de tokens de una generación.
	TokenUsage struct {
		InputTokens  int
		OutputTokens int
		TotalTokens  int
	}
)

// IsEmpty indica si el prompt no tiene contenido para enviar.
func (p Prompt) IsEmpty() bool {
	if len(p.User) == 0 {
		return true
	}
	for _, u := range p.User {
		if u != "" {
			return false
		}
	}
	return true
}
