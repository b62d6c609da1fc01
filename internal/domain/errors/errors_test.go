package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		inner := errors.New("strconv error")
		err := NewConfigError("OPENAI_TEMPERATURE", "valor inválido", inner)

		assert.Contains(t, err.Error(), "OPENAI_TEMPERATURE")
		assert.Contains(t, err.Error(), "valor inválido")
		assert.ErrorIs(t, err, inner)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewConfigError("OPENAI_TEMPERATURE", "fuera de rango", nil)

		assert.Contains(t, err.Error(), "fuera de rango")
		assert.Nil(t, err.Unwrap())
	})
}

func TestAIProviderErrors(t *testing.T) {
	notFound := NewAIProviderNotFoundError("anthropic")
	assert.Contains(t, notFound.Error(), "anthropic")

	notConfigured := NewAIProviderNotConfiguredError("openai", "falta OPENAI_API_KEY")
	assert.Contains(t, notConfigured.Error(), "falta OPENAI_API_KEY")

	noReason := NewAIProviderNotConfiguredError("openai", "")
	assert.Contains(t, noReason.Error(), "openai")
}

func TestEventErrors(t *testing.T) {
	notSupported := NewEventNotSupportedError("push")
	assert.Contains(t, notSupported.Error(), "push")

	invalid := NewPayloadInvalidError("repositorio sin full_name")
	assert.Contains(t, invalid.Error(), "full_name")
}
