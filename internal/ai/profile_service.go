package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"dog-ocean/internal/config"
	"dog-ocean/internal/domain"
)

// DefaultTestCount es el total de pruebas asumido cuando el caller no conoce
// la bateria.
const DefaultTestCount = 7

// IdealProfileRequest parametriza la generacion del perfil ideal.
type IdealProfileRequest struct {
	Breed       string
	AgeYears    int
	AgeMonths   int
	Gender      string
	IntendedUse string
	// TestCount es el total de pruebas de la bateria; deriva el limite
	// permitido ±(TestCount x 2). Cero usa DefaultTestCount.
	TestCount int
}

// ProfileService genera perfiles ideales y evaluaciones via el LLM externo.
//
// El generador es una caja negra propensa a valores fuera de rango o pegados
// a los extremos: el trabajo de este servicio es volver ese caso seguro de
// consumir (clamp + warnings), no rechazarlo.
type ProfileService struct {
	client    Client
	maxTokens int
	logger    *zap.Logger
}

// NewProfileService construye el servicio desde la configuracion. Falla con
// ErrNotConfigured si falta la API key, antes de cualquier intento de red.
func NewProfileService(cfg *config.Config, logger *zap.Logger) (*ProfileService, error) {
	if !cfg.OpenAIConfigured() {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not set (see .env.example)", ErrNotConfigured)
	}
	client := NewHTTPClient(
		cfg.OpenAIBaseURL,
		cfg.OpenAIAPIKey,
		cfg.OpenAIModel,
		time.Duration(cfg.OpenAITimeoutSeconds)*time.Second,
		logger,
	)
	return NewProfileServiceWithClient(client, cfg.OpenAIMaxTokens, logger), nil
}

// NewProfileServiceWithClient permite inyectar el cliente (tests).
func NewProfileServiceWithClient(client Client, maxTokens int, logger *zap.Logger) *ProfileService {
	if maxTokens <= 0 {
		maxTokens = 500
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{client: client, maxTokens: maxTokens, logger: logger}
}

// GenerateIdealProfile pide al LLM el perfil OCEAN ideal para el perro y
// aplica el pipeline de validacion: estructura, tipos, clamp a
// [-max, +max] y politica de extremos. Los warnings de calidad vuelven junto
// al perfil y nunca bloquean la entrega.
func (s *ProfileService) GenerateIdealProfile(ctx context.Context, req IdealProfileRequest) (domain.Profile, []Warning, error) {
	testCount := req.TestCount
	if testCount <= 0 {
		testCount = DefaultTestCount
	}
	maxValue := testCount * domain.MaxScore

	raw, err := s.client.Generate(ctx, GenerateRequest{
		System:      idealProfileSystemPrompt,
		Prompt:      buildIdealProfilePrompt(req, maxValue),
		MaxTokens:   150,
		Temperature: 0.3,
		JSONObject:  true,
	})
	if err != nil {
		return domain.Profile{}, nil, err
	}

	profile, warnings, err := parseIdealProfile(raw, maxValue)
	if err != nil {
		return domain.Profile{}, nil, err
	}

	for _, w := range warnings {
		s.logger.Warn("ideal profile quality warning",
			zap.String("kind", w.Kind),
			zap.String("key", w.Key),
			zap.String("message", w.Message),
		)
	}

	return profile, warnings, nil
}

// parseIdealProfile valida la respuesta cruda del generador.
func parseIdealProfile(raw string, maxValue int) (domain.Profile, []Warning, error) {
	jsonObj, ok := ExtractJSONObject(raw)
	if !ok {
		return domain.Profile{}, nil, fmt.Errorf("%w: no JSON object in completion", ErrMalformedResponse)
	}

	var values map[string]any
	if err := json.Unmarshal([]byte(jsonObj), &values); err != nil {
		return domain.Profile{}, nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	// 1. Chequeo estructural: las cinco claves presentes.
	var missing []string
	for _, dim := range domain.Dimensions() {
		if _, ok := values[dim.Key()]; !ok {
			missing = append(missing, dim.Key())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return domain.Profile{}, nil, fmt.Errorf("%w: missing keys: %s", ErrMalformedResponse, strings.Join(missing, ", "))
	}

	var (
		profile  domain.Profile
		warnings []Warning
		extremes []string
	)
	for _, dim := range domain.Dimensions() {
		key := dim.Key()

		// 2. Chequeo de tipo: el valor debe ser numerico.
		num, ok := values[key].(float64)
		if !ok {
			return domain.Profile{}, nil, fmt.Errorf("%w: value for %s is not numeric: %v", ErrMalformedResponse, key, values[key])
		}

		// 3. Coercion a entero y clamp al rango permitido. Se devuelve el
		// valor corregido; el exceso queda como warning, no como fallo.
		intValue := int(num)
		clamped := intValue
		if clamped > maxValue {
			clamped = maxValue
		}
		if clamped < -maxValue {
			clamped = -maxValue
		}
		if clamped != intValue {
			warnings = append(warnings, Warning{
				Kind: WarningClamped,
				Key:  key,
				Message: fmt.Sprintf("value for %s (%d) outside allowed range [%d, %d], clamped to %d",
					key, intValue, -maxValue, maxValue, clamped),
			})
		}

		if clamped == maxValue || clamped == -maxValue {
			extremes = append(extremes, fmt.Sprintf("%s=%d", key, clamped))
		}

		profile.SetValue(dim, clamped)
	}

	// 4. Politica de extremos: dos o mas valores exactamente en el limite
	// sugieren regenerar. Advisory, nunca fallo duro.
	if len(extremes) >= 2 {
		warnings = append(warnings, Warning{
			Kind: WarningExtremes,
			Message: fmt.Sprintf("generator used too many extreme values: %s; consider regenerating (prefer values between %d and %d)",
				strings.Join(extremes, ", "), -maxValue+2, maxValue-2),
		})
	}

	return profile, warnings, nil
}

// GenerateAssessment pide la evaluacion textual comparando los tres perfiles.
// El perfil de cuestionario es opcional; la salida solo se valida como string
// no vacio, sin estructura requerida.
func (s *ProfileService) GenerateAssessment(ctx context.Context, dog domain.DogData, measured, ideal domain.Profile, owner *domain.Profile, testCount int) (string, error) {
	if testCount <= 0 {
		testCount = DefaultTestCount
	}
	maxValue := testCount * domain.MaxScore

	raw, err := s.client.Generate(ctx, GenerateRequest{
		System:      assessmentSystemPrompt,
		Prompt:      buildAssessmentPrompt(dog, measured, ideal, owner, maxValue),
		MaxTokens:   s.maxTokens * 3,
		Temperature: 0.8,
	})
	if err != nil {
		return "", err
	}

	assessment := strings.TrimSpace(raw)
	if assessment == "" {
		return "", fmt.Errorf("%w: empty assessment", ErrMalformedResponse)
	}
	return assessment, nil
}
