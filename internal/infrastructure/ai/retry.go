package ai

import (
	"context"
	"fmt"
	"math"
	"time"
)

// RetryPolicy implementa los reintentos con backoff exponencial para las
// llamadas al modelo: la espera del intento n es Backoff^n segundos.
type RetryPolicy struct {
	Attempts int
	Backoff  float64
}

// Wait calcula la espera posterior al intento dado (1-indexado).
func (p RetryPolicy) Wait(attempt int) time.Duration {
	if p.Backoff <= 0 || attempt <= 0 {
		return 0
	}
	return time.Duration(math.Pow(p.Backoff, float64(attempt)) * float64(time.Second))
}

// Do ejecuta fn hasta que tenga éxito o se agoten los intentos, respetando
// la cancelación del contexto entre esperas.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("reintentos cancelados: %w", ctx.Err())
		case <-time.After(p.Wait(attempt)):
		}
	}

	return fmt.Errorf("agotados %d intentos contra el modelo: %w", attempts, lastErr)
}
