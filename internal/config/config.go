package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	domainerrors "github.com/Tomas-vilte/MateTriage/internal/domain/errors"
	"gopkg.in/yaml.v3"
)

// DefaultAssistantConfigPath es la ruta del archivo de configuración dentro
// del repositorio donde corre el workflow.
const DefaultAssistantConfigPath = ".github/assistant-config.yaml"

const (
	defaultLabel             = "ai-assisted"
	defaultLabelColor        = "f29513"
	defaultMaxResponseTokens = 600
	defaultRetryAttempts     = 3
	defaultRetryBackoff      = 2.0
	defaultMaxSnippetFiles   = 5
	defaultMaxSnippetLines   = 40
	defaultOpenAITemperature = 0.0
)

type (
	// Config es la configuración efectiva del asistente: variables de entorno
	// (secretos y knobs del workflow) más el archivo opcional del repositorio.
	Config struct {
		OpenAIAPIKey      string
		OpenAIModel       string
		OpenAITemperature float64

		GeminiAPIKey string
		GeminiModel  string

		GitHubToken string
		EventPath   string

		Label             string
		LabelColor        string
		MaxResponseTokens int
		RetryAttempts     int
		RetryBackoff      float64
		MaxSnippetFiles   int
		LogLevel          string
		Language          string

		Assistant AssistantConfig
	}

	// AssistantConfig es el contenido de .github/assistant-config.yaml.
	// Todos los campos son opcionales.
	AssistantConfig struct {
		SystemPrompt        string   `yaml:"system_prompt"`
		PRPrompt            string   `yaml:"pr_prompt"`
		IssuePrompt         string   `yaml:"issue_prompt"`
		SensitivePaths      []string `yaml:"sensitive_paths"`
		MaxFileSnippetLines int      `yaml:"max_file_snippet_lines"`
		Language            string   `yaml:"language"`
	}
)

// LoadConfig arma la configuración desde el entorno y valida los valores.
// No toca la red ni exige secretos: la ausencia de claves se resuelve más
// adelante (el asistente simplemente no llama al modelo).
func LoadConfig() (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  envOrDefault("OPENAI_MODEL", string(DefaultModelForAI(AIOpenAI))),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOrDefault("GEMINI_MODEL", string(DefaultModelForAI(AIGemini))),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		EventPath:    os.Getenv("GITHUB_EVENT_PATH"),
		Label:        envOrDefault("ASSISTANT_LABEL", defaultLabel),
		LabelColor:   defaultLabelColor,
		LogLevel:     envOrDefault("ASSISTANT_LOG_LEVEL", "info"),
		Language:     envOrDefault("ASSISTANT_LANG", LangEN),
		Assistant: AssistantConfig{
			MaxFileSnippetLines: defaultMaxSnippetLines,
		},
	}

	var err error
	if cfg.OpenAITemperature, err = envFloat("OPENAI_TEMPERATURE", defaultOpenAITemperature); err != nil {
		return nil, err
	}
	if cfg.MaxResponseTokens, err = envInt("MAX_RESPONSE_TOKENS", defaultMaxResponseTokens); err != nil {
		return nil, err
	}
	if cfg.RetryAttempts, err = envInt("OPENAI_RETRY_ATTEMPTS", defaultRetryAttempts); err != nil {
		return nil, err
	}
	if cfg.RetryBackoff, err = envFloat("OPENAI_RETRY_BACKOFF", defaultRetryBackoff); err != nil {
		return nil, err
	}
	if cfg.MaxSnippetFiles, err = envInt("MAX_SNIPPET_FILES", defaultMaxSnippetFiles); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return cfg, nil
}

// LoadAssistantConfig aplica el archivo del repositorio sobre la
// configuración ya cargada. Si el archivo no existe se mantienen los
// defaults; un archivo roto retorna error para que el llamador decida
// (el comando run lo degrada a warning).
func (c *Config) LoadAssistantConfig(path string) error {
	if path == "" {
		path = DefaultAssistantConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error al leer %s: %w", path, err)
	}

	var ac AssistantConfig
	if err := yaml.Unmarshal(data, &ac); err != nil {
		return fmt.Errorf("error al decodificar %s: %w", path, err)
	}

	if ac.MaxFileSnippetLines <= 0 {
		ac.MaxFileSnippetLines = c.Assistant.MaxFileSnippetLines
	}
	if ac.Language == "" {
		ac.Language = c.Assistant.Language
	}
	c.Assistant = ac

	if ac.Language != "" {
		c.Language = GetLocaleConfig(ac.Language)
	}

	return nil
}

// ActiveAI resuelve qué proveedor de IA está habilitado según las claves
// presentes. OpenAI tiene prioridad por ser el proveedor del workflow.
func (c *Config) ActiveAI() AI {
	switch {
	case c.OpenAIAPIKey != "":
		return AIOpenAI
	case c.GeminiAPIKey != "":
		return AIGemini
	default:
		return ""
	}
}

func validateConfig(cfg *Config) error {
	if cfg.OpenAITemperature < 0.0 || cfg.OpenAITemperature > 1.0 {
		return domainerrors.NewConfigError("OPENAI_TEMPERATURE",
			fmt.Sprintf("debe estar entre 0.0 y 1.0, recibido %.2f", cfg.OpenAITemperature), nil)
	}
	if cfg.MaxResponseTokens <= 0 {
		return domainerrors.NewConfigError("MAX_RESPONSE_TOKENS", "debe ser mayor que 0", nil)
	}
	if cfg.RetryAttempts <= 0 {
		return domainerrors.NewConfigError("OPENAI_RETRY_ATTEMPTS", "debe ser mayor que 0", nil)
	}
	if cfg.RetryBackoff <= 0 {
		return domainerrors.NewConfigError("OPENAI_RETRY_BACKOFF", "debe ser mayor que 0", nil)
	}
	if cfg.MaxSnippetFiles < 0 {
		return domainerrors.NewConfigError("MAX_SNIPPET_FILES", "no puede ser negativo", nil)
	}
	if cfg.Label == "" {
		return domainerrors.NewConfigError("ASSISTANT_LABEL", "no puede estar vacío", nil)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, domainerrors.NewConfigError(key, fmt.Sprintf("valor numérico inválido %q", v), err)
	}
	return f, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domainerrors.NewConfigError(key, fmt.Sprintf("valor entero inválido %q", v), err)
	}
	return n, nil
}
