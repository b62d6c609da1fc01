package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{
			name:     "replaces known placeholders",
			template: "PR {pr_number} de {repo_full}: {title}",
			data:     map[string]string{"pr_number": "42", "repo_full": "a/b", "title": "fix"},
			expected: "PR 42 de a/b: fix",
		},
		{
			name:     "keeps unknown placeholders",
			template: "Hola {desconocido}, PR {pr_number}",
			data:     map[string]string{"pr_number": "42"},
			expected: "Hola {desconocido}, PR 42",
		},
		{
			name:     "empty data returns template",
			template: "sin cambios {title}",
			data:     nil,
			expected: "sin cambios {title}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderTemplate(tt.template, tt.data))
		})
	}
}

func TestPromptDefaultsPerLanguage(t *testing.T) {
	assert.Contains(t, GetPRSystemPrompt("en"), "security-minded")
	assert.Contains(t, GetPRSystemPrompt("es"), "seguridad")
	assert.Contains(t, GetIssueSystemPrompt("en"), "triage")
	assert.Contains(t, GetIssueSystemPrompt("es"), "triage")

	// Los templates por defecto traen los placeholders que renderiza el servicio
	for _, lang := range []string{"en", "es"} {
		assert.Contains(t, GetPRTaskTemplate(lang), "{title}")
		assert.Contains(t, GetPRTaskTemplate(lang), "{changed_files_list}")
		assert.Contains(t, GetIssueTaskTemplate(lang), "{body}")
	}

	// Un idioma desconocido cae al inglés
	assert.Equal(t, GetPRTaskTemplate("en"), GetPRTaskTemplate("fr"))
}
