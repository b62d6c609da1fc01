package registry

import (
	"context"
	"sync"

	"github.com/Tomas-vilte/MateTriage/internal/config"
	domainerrors "github.com/Tomas-vilte/MateTriage/internal/domain/errors"
	"github.com/Tomas-vilte/MateTriage/internal/domain/ports"
	"github.com/Tomas-vilte/MateTriage/internal/i18n"
)

// AIProviderFactory define la interfaz para crear proveedores de IA
type AIProviderFactory interface {
	// CreateSuggester crea el servicio de sugerencias del proveedor
	CreateSuggester(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Suggester, error)

	// ValidateConfig valida la configuración para este proveedor
	ValidateConfig(cfg *config.Config) error

	// Name retorna el nombre del proveedor
	Name() string
}

// AIProviderRegistry gestiona el registro de proveedores de IA
type AIProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]AIProviderFactory
}

// NewAIProviderRegistry crea un nuevo registro de proveedores de IA
func NewAIProviderRegistry() *AIProviderRegistry {
	return &AIProviderRegistry{
		factories: make(map[string]AIProviderFactory),
	}
}

// Register registra un nuevo proveedor de IA
func (r *AIProviderRegistry) Register(name string, factory AIProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return domainerrors.NewConfigError("ai_provider", "proveedor IA '"+name+"' ya esta registrado", nil)
	}

	r.factories[name] = factory
	return nil
}

// Get obtiene un factory por nombre
func (r *AIProviderRegistry) Get(name string) (AIProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, domainerrors.NewAIProviderNotFoundError(name)
	}

	return factory, nil
}

// List retorna la lista de proveedores registrados
func (r *AIProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	return providers
}

// IsRegistered verifica si un proveedor está registrado
func (r *AIProviderRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// CreateFromConfig crea el suggester del proveedor activo según las claves
// configuradas. Retorna (nil, nil) cuando no hay ningún proveedor
// habilitado: ese es el gate de opt-in del asistente, no un error.
func (r *AIProviderRegistry) CreateFromConfig(ctx context.Context, cfg *config.Config, trans *i18n.Translations) (ports.Suggester, error) {
	active := cfg.ActiveAI()
	if active == "" {
		return nil, nil
	}

	factory, err := r.Get(string(active))
	if err != nil {
		return nil, err
	}

	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return factory.CreateSuggester(ctx, cfg, trans)
}
