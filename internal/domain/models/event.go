package models

import "strings"

// EventKind clasifica el payload recibido desde GitHub Actions.
type EventKind string

const (
	EventPullRequestKind EventKind = "pull_request"
	EventIssueKind       EventKind = "issue"
	EventUnknownKind     EventKind = "unknown"
)

type (
	// EventPayload es el subconjunto del payload de GITHUB_EVENT_PATH que
	// necesita el asistente. Los campos que no se usan se ignoran al parsear.
	EventPayload struct {
		Action      string            `json:"action,omitempty"`
		PullRequest *EventPullRequest `json:"pull_request,omitempty"`
		Issue       *EventIssue       `json:"issue,omitempty"`
		Repository  EventRepository   `json:"repository"`
	}

	// EventRepository identifica el repositorio que disparó el evento.
	EventRepository struct {
		FullName string `json:"full_name"`
	}

	// EventPullRequest contiene los datos del PR incluidos en el evento.
	EventPullRequest struct {
		Number int      `json:"number"`
		Title  string   `json:"title"`
		Body   string   `json:"body"`
		Head   EventRef `json:"head"`
	}

	// EventRef es una referencia de rama dentro del payload.
	EventRef struct {
		Ref string `json:"ref"`
		SHA string `json:"sha"`
	}

	// EventIssue contiene los datos de la issue incluidos en el evento.
	EventIssue struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		Body   string `json:"body"`
	}
)

// Kind determina el tipo de evento. Un payload con ambas secciones se trata
// como PR.
func (p *EventPayload) Kind() EventKind {
	switch {
	case p.PullRequest != nil:
		return EventPullRequestKind
	case p.Issue != nil:
		return EventIssueKind
	default:
		return EventUnknownKind
	}
}

// OwnerRepo separa "owner/repo" del nombre completo del repositorio.
// Retorna cadenas vacías si el nombre no tiene el formato esperado.
func (p *EventPayload) OwnerRepo() (string, string) {
	parts := strings.SplitN(p.Repository.FullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", ""
	}
	return parts[0], parts[1]
}
