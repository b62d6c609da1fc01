package config

import (
	"github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory agrupa los subcomandos de inspección de configuración.
type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config.usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newDoctorCommand(t, cfg),
		},
	}
}
