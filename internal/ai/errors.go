package ai

import (
	"errors"
	"fmt"
)

// Familia cerrada de errores del servicio de IA. Todos los errores que salen
// de este paquete envuelven ErrAIService, asi el caller puede atrapar la
// familia completa con errors.Is(err, ErrAIService) o cada clase por separado
// para decidir reintento/backoff/abort.
var (
	ErrAIService = errors.New("ai service")

	// ErrNotConfigured: falta la credencial/config. Se detecta al construir
	// el servicio, antes de cualquier intento de red.
	ErrNotConfigured = fmt.Errorf("%w: not configured", ErrAIService)

	// ErrConnection: fallas de transporte, red o timeout.
	ErrConnection = fmt.Errorf("%w: connection failed", ErrAIService)

	// ErrRateLimited: el proveedor señala throttling explicito.
	ErrRateLimited = fmt.Errorf("%w: rate limited", ErrAIService)

	// ErrMalformedResponse: la respuesta no es parseable o no cumple el
	// contrato estructural (claves/tipos).
	ErrMalformedResponse = fmt.Errorf("%w: malformed response", ErrAIService)
)

// serviceErr envuelve cualquier otro error reportado por el proveedor
// preservando su mensaje original.
func serviceErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAIService, fmt.Sprintf(format, args...))
}

// Clases de warning de calidad: señales no fatales sobre un perfil generado.
// Nunca bloquean la entrega del perfil.
const (
	WarningClamped  = "clamped"
	WarningExtremes = "extremes"
)

// Warning es una señal de calidad observable por el caller, separada del
// canal de errores.
type Warning struct {
	Kind    string
	Key     string // clave de dimension afectada; vacia para warnings globales
	Message string
}
