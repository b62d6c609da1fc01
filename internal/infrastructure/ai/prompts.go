package ai

import "strings"

// Prompts por defecto del asistente. El operador puede reemplazarlos desde
// .github/assistant-config.yaml; estos templates usan los mismos
// placeholders {title}, {body}, {changed_files_list}, {repo_full},
// {pr_number} e {issue_number} que el archivo de configuración.

const (
	prSystemPromptEN = "You are a cautious, security-minded coding assistant. Prioritize human review and be concise."
	prSystemPromptES = "Sos un asistente de código cauteloso y atento a la seguridad. Priorizá la revisión humana y sé conciso."

	issueSystemPromptEN = "You are a careful triage assistant. Request reproduction steps and emphasize security when relevant."
	issueSystemPromptES = "Sos un asistente de triage cuidadoso. Pedí pasos de reproducción y marcá los temas de seguridad cuando aplique."

	prTaskTemplateEN = `PR title: {title}

PR body:
{body}

Changed files:
{changed_files_list}

Task: Write a concise, reviewer-friendly PR description and a focused reviewer checklist. Highlight any security-sensitive files and recommend manual checks.`

	prTaskTemplateES = `Título del PR: {title}

Cuerpo del PR:
{body}

Archivos modificados:
{changed_files_list}

Tarea: Escribí una descripción del PR corta y amigable para quien revisa, con un checklist enfocado. Marcá los archivos sensibles a seguridad y recomendá chequeos manuales.`

	issueTaskTemplateEN = `Issue title: {title}

Body:
{body}

Task: Triage this issue, suggest severity and next steps.`

	issueTaskTemplateES = `Título de la issue: {title}

Cuerpo:
{body}

Tarea: Hacé el triage de esta issue, sugerí severidad y próximos pasos.`
)

func GetPRSystemPrompt(lang string) string {
	if lang == "es" {
		return prSystemPromptES
	}
	return prSystemPromptEN
}

func GetIssueSystemPrompt(lang string) string {
	if lang == "es" {
		return issueSystemPromptES
	}
	return issueSystemPromptEN
}

func GetPRTaskTemplate(lang string) string {
	if lang == "es" {
		return prTaskTemplateES
	}
	return prTaskTemplateEN
}

func GetIssueTaskTemplate(lang string) string {
	if lang == "es" {
		return issueTaskTemplateES
	}
	return issueTaskTemplateEN
}

// RenderTemplate reemplaza los placeholders {clave} conocidos del template.
// Los placeholders que no están en data quedan como están, así un template
// mal escrito no rompe la generación.
func RenderTemplate(template string, data map[string]string) string {
	if len(data) == 0 {
		return template
	}

	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
