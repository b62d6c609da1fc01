package main

import (
	"context"
	"log"
	"os"

	configcmd "github.com/Tomas-vilte/MateTriage/internal/cli/command/config"
	"github.com/Tomas-vilte/MateTriage/internal/cli/command/issues"
	"github.com/Tomas-vilte/MateTriage/internal/cli/command/pr"
	"github.com/Tomas-vilte/MateTriage/internal/cli/command/run"
	"github.com/Tomas-vilte/MateTriage/internal/cli/registry"
	cfg "github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/ai/gemini"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/ai/openai"
	aiRegistry "github.com/Tomas-vilte/MateTriage/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/factory"
	"github.com/Tomas-vilte/MateTriage/internal/logger"
	"github.com/Tomas-vilte/MateTriage/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	appCfg, err := cfg.LoadConfig()
	if err != nil {
		return nil, err
	}

	// El archivo del repo es opcional y un archivo roto no frena al asistente
	if err := appCfg.LoadAssistantConfig(cfg.DefaultAssistantConfigPath); err != nil {
		log.Printf("Warning: se ignora la configuración del repositorio: %v", err)
	}

	logger.Initialize(appCfg.LogLevel)

	translations, err := i18n.NewTranslations(appCfg.Language, "")
	if err != nil {
		return nil, err
	}

	providerRegistry := aiRegistry.NewAIProviderRegistry()
	if err := providerRegistry.Register("openai", openai.NewOpenAIProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor OpenAI: %v", err)
	}
	if err := providerRegistry.Register("gemini", gemini.NewGeminiProviderFactory()); err != nil {
		log.Printf("Warning: no se pudo registrar el proveedor Gemini: %v", err)
	}

	assistantFactory := factory.NewAssistantFactory(appCfg, translations, providerRegistry)

	registerCommand := registry.NewRegistry(appCfg, translations)

	if err := registerCommand.Register("run", run.NewRunCommandFactory(assistantFactory)); err != nil {
		log.Fatalf("Error al registrar el comando 'run': %v", err)
	}
	if err := registerCommand.Register("pr", pr.NewSuggestCommandFactory(assistantFactory)); err != nil {
		log.Fatalf("Error al registrar el comando 'pr': %v", err)
	}
	if err := registerCommand.Register("issue", issues.NewTriageCommandFactory(assistantFactory)); err != nil {
		log.Fatalf("Error al registrar el comando 'issue': %v", err)
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}
	if err := registerCommand.Register("doctor", configcmd.NewDoctorCommand()); err != nil {
		log.Fatalf("Error al registrar el comando 'doctor': %v", err)
	}

	return &cli.Command{
		Name:     "mate-triage",
		Usage:    translations.GetMessage("app.usage", 0, nil),
		Version:  version.Version,
		Commands: registerCommand.CreateCommands(),
	}, nil
}
