package config

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/ui"
	"github.com/urfave/cli/v3"
)

// newDoctorCommand chequea el entorno sin tocar la red: claves presentes,
// token, payload del evento y archivo de configuración del repo.
func (c *ConfigCommandFactory) newDoctorCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: t.GetMessage("config.doctor_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			ui.PrintSectionBanner(t.GetMessage("doctor.title", 0, nil))

			healthy := true

			if active := cfg.ActiveAI(); active != "" {
				printCheck(true, t.GetMessage("doctor.provider_ok", 0, map[string]interface{}{"Provider": string(active)}))
			} else {
				printCheck(false, t.GetMessage("doctor.provider_missing", 0, nil))
				healthy = false
			}

			if cfg.GitHubToken != "" {
				printCheck(true, t.GetMessage("doctor.token_ok", 0, nil))
			} else {
				printCheck(false, t.GetMessage("doctor.token_missing", 0, nil))
				healthy = false
			}

			if cfg.EventPath != "" && fileReadable(cfg.EventPath) {
				printCheck(true, t.GetMessage("doctor.event_ok", 0, map[string]interface{}{"Path": cfg.EventPath}))
			} else {
				printCheck(false, t.GetMessage("doctor.event_missing", 0, nil))
				healthy = false
			}

			if fileReadable(config.DefaultAssistantConfigPath) {
				printCheck(true, t.GetMessage("doctor.assistant_config_ok", 0, map[string]interface{}{"Path": config.DefaultAssistantConfigPath}))
			} else {
				// El archivo es opcional, no baja la salud general
				printCheck(true, t.GetMessage("doctor.assistant_config_missing", 0, map[string]interface{}{"Path": config.DefaultAssistantConfigPath}))
			}

			fmt.Println()
			if healthy {
				ui.Success.Println(t.GetMessage("doctor.summary_ok", 0, nil))
			} else {
				ui.Warning.Println(t.GetMessage("doctor.summary_warn", 0, nil))
			}

			return nil
		},
	}
}

func printCheck(ok bool, msg string) {
	if ok {
		fmt.Printf("%s %s\n", ui.SuccessEmoji, msg)
	} else {
		fmt.Printf("%s %s\n", ui.WarningEmoji, msg)
	}
}

func fileReadable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
