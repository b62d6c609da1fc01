package config

import (
	cfg "github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/urfave/cli/v3"
)

// DoctorCommandFactory expone `doctor` también como comando de primer
// nivel, además del subcomando `config doctor`.
type DoctorCommandFactory struct {
	inner ConfigCommandFactory
}

func NewDoctorCommand() *DoctorCommandFactory {
	return &DoctorCommandFactory{}
}

func (c *DoctorCommandFactory) CreateCommand(t *i18n.Translations, appCfg *cfg.Config) *cli.Command {
	return c.inner.newDoctorCommand(t, appCfg)
}
