package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// AIProviderNotFoundError indica que un proveedor de IA no fue encontrado
type AIProviderNotFoundError struct {
	Provider string
}

func (e *AIProviderNotFoundError) Error() string {
	return fmt.Sprintf("Proveedor de IA '%s' no encontrado en el registro", e.Provider)
}

// NewAIProviderNotFoundError crea un nuevo error de proveedor no encontrado
func NewAIProviderNotFoundError(provider string) *AIProviderNotFoundError {
	return &AIProviderNotFoundError{Provider: provider}
}

// AIProviderNotConfiguredError indica que un proveedor de IA no está configurado
type AIProviderNotConfiguredError struct {
	Provider string
	Reason   string
}

func (e *AIProviderNotConfiguredError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Proveedor IA '%s' no configurado: %s", e.Provider, e.Reason)
	}
	return fmt.Sprintf("Proveedor IA '%s' no configurado", e.Provider)
}

// NewAIProviderNotConfiguredError crea un nuevo error de proveedor no configurado
func NewAIProviderNotConfiguredError(provider, reason string) *AIProviderNotConfiguredError {
	return &AIProviderNotConfiguredError{
		Provider: provider,
		Reason:   reason,
	}
}

// EventNotSupportedError indica que el evento recibido no es de un tipo que
// el asistente procese.
type EventNotSupportedError struct {
	Kind string
}

func (e *EventNotSupportedError) Error() string {
	return fmt.Sprintf("Evento '%s' no soportado por el asistente", e.Kind)
}

// NewEventNotSupportedError crea un nuevo error de evento no soportado
func NewEventNotSupportedError(kind string) *EventNotSupportedError {
	return &EventNotSupportedError{Kind: kind}
}

// PayloadInvalidError indica que el payload del evento no pudo usarse.
type PayloadInvalidError struct {
	Reason string
}

func (e *PayloadInvalidError) Error() string {
	return fmt.Sprintf("Payload del evento inválido: %s", e.Reason)
}

// NewPayloadInvalidError crea un nuevo error de payload inválido
func NewPayloadInvalidError(reason string) *PayloadInvalidError {
	return &PayloadInvalidError{Reason: reason}
}
