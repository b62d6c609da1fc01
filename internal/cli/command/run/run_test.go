package run

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	cfg "github.com/Tomas-vilte/MateTriage/internal/config"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/ai/registry"
	"github.com/Tomas-vilte/MateTriage/internal/infrastructure/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunCommand(t *testing.T, appCfg *cfg.Config) (*RunCommandFactory, *i18n.Translations) {
	t.Helper()
	trans, err := i18n.NewTranslations("es", "")
	require.NoError(t, err)

	assistantFactory := factory.NewAssistantFactory(appCfg, trans, registry.NewAIProviderRegistry())
	return NewRunCommandFactory(assistantFactory), trans
}

func TestRunCommand_NoEventPathIsCleanNoOp(t *testing.T) {
	appCfg := &cfg.Config{EventPath: ""}
	c, trans := newRunCommand(t, appCfg)

	cmd := c.CreateCommand(trans, appCfg)
	err := cmd.Action(context.Background(), cmd)

	assert.NoError(t, err)
}

func TestRunCommand_UnreadablePayloadIsCleanNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0644))

	appCfg := &cfg.Config{EventPath: path}
	c, trans := newRunCommand(t, appCfg)

	cmd := c.CreateCommand(trans, appCfg)
	err := cmd.Action(context.Background(), cmd)

	assert.NoError(t, err)
}

func TestRunCommand_UnsupportedEventIsCleanNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	payload := `{"action": "created", "repository": {"full_name": "tomas/matetriage"}}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	// Sin claves el registro resuelve un suggester nil y el evento
	// desconocido ni siquiera llega a mirarlo
	appCfg := &cfg.Config{EventPath: path, Label: "ai-assisted"}
	c, trans := newRunCommand(t, appCfg)

	cmd := c.CreateCommand(trans, appCfg)
	err := cmd.Action(context.Background(), cmd)

	assert.NoError(t, err)
}
