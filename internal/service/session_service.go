package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dog-ocean/internal/ai"
	"dog-ocean/internal/domain"
	"dog-ocean/internal/scoring"
	"dog-ocean/internal/storage"
)

var (
	// ErrAIDisabled indica que el servicio corre sin generador de perfiles
	// (API key ausente) y se pidio una operacion de IA.
	ErrAIDisabled = errors.New("ai features disabled: profile service not configured")

	// ErrIdealProfileMissing indica que se pidio una evaluacion sin haber
	// generado antes el perfil ideal.
	ErrIdealProfileMissing = errors.New("ideal profile not generated yet")
)

// SessionService orquesta sesiones, scoring y features de IA sobre el store
// de registros planos.
type SessionService struct {
	logger    *zap.Logger
	store     storage.SessionStore
	batteries *BatteryRegistry
	profiles  *ai.ProfileService // nil cuando la IA no esta configurada
	cache     ProfileCache
}

func NewSessionService(
	logger *zap.Logger,
	store storage.SessionStore,
	batteries *BatteryRegistry,
	profiles *ai.ProfileService,
	cache ProfileCache,
) *SessionService {
	if cache == nil {
		cache = NewMemoryProfileCache()
	}
	return &SessionService{
		logger:    logger,
		store:     store,
		batteries: batteries,
		profiles:  profiles,
		cache:     cache,
	}
}

// CreateSession crea y persiste una sesion nueva para un perro y una bateria
// registrada.
func (s *SessionService) CreateSession(dog domain.DogData, batteryName string) (*domain.TestSession, error) {
	if _, err := s.batteries.Get(batteryName); err != nil {
		return nil, err
	}
	session, err := domain.NewTestSession(uuid.NewString(), dog, batteryName)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	s.logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("battery", session.BatteryName),
		zap.String("dog", dog.DogName),
	)
	return session, nil
}

// GetSession carga una sesion por ID.
func (s *SessionService) GetSession(id string) (*domain.TestSession, error) {
	return s.store.Load(id)
}

// ListSessions devuelve los IDs de sesiones persistidas.
func (s *SessionService) ListSessions() ([]string, error) {
	return s.store.List()
}

// RecordResult registra (o sobreescribe) el resultado de una prueba.
func (s *SessionService) RecordResult(id string, testNumber, score int, notes string) (*domain.TestSession, error) {
	session, err := s.store.Load(id)
	if err != nil {
		return nil, err
	}
	result, err := domain.NewTestResult(testNumber, score, notes)
	if err != nil {
		return nil, err
	}
	session.AddResult(result)
	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetSessionNotes actualiza la nota libre de la sesion.
func (s *SessionService) SetSessionNotes(id, notes string) (*domain.TestSession, error) {
	session, err := s.store.Load(id)
	if err != nil {
		return nil, err
	}
	session.SessionNotes = notes
	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetOwnerProfile adjunta el perfil de cuestionario del dueño. Cada valor se
// valida contra el rango simetrico ±(test_count × 2) de la sesion.
func (s *SessionService) SetOwnerProfile(id string, profile domain.Profile) (*domain.TestSession, error) {
	session, err := s.store.Load(id)
	if err != nil {
		return nil, err
	}
	maxValue := s.sessionBound(session)
	for _, dim := range domain.Dimensions() {
		v := profile.Value(dim)
		if v < -maxValue || v > maxValue {
			return nil, fmt.Errorf("owner profile value for %s out of range [%d, %d]: %d",
				dim.Key(), -maxValue, maxValue, v)
		}
	}
	session.OwnerProfile = &profile
	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Score calcula los valores OCEAN actuales de la sesion.
func (s *SessionService) Score(id string) (scoring.Scores, error) {
	session, err := s.store.Load(id)
	if err != nil {
		return scoring.Scores{}, err
	}
	battery, err := s.batteries.Get(session.BatteryName)
	if err != nil {
		return scoring.Scores{}, err
	}
	return scoring.NewAnalyzer(session, battery).Calculate()
}

// GenerateIdealProfile genera (o recupera del cache) el perfil ideal para la
// sesion y lo adjunta. force saltea el cache.
func (s *SessionService) GenerateIdealProfile(ctx context.Context, id string, force bool) (*domain.TestSession, []ai.Warning, error) {
	if s.profiles == nil {
		return nil, nil, ErrAIDisabled
	}
	session, err := s.store.Load(id)
	if err != nil {
		return nil, nil, err
	}

	req := ai.IdealProfileRequest{
		Breed:       session.DogData.Breed,
		AgeYears:    session.DogData.AgeYears,
		AgeMonths:   session.DogData.AgeMonths,
		Gender:      string(session.DogData.Gender),
		IntendedUse: session.DogData.IntendedUse,
		TestCount:   s.sessionTestCount(session),
	}

	cacheKey := IdealProfileCacheKey(req)
	if !force {
		if cached, ok := s.cache.Get(cacheKey); ok {
			s.logger.Info("ideal profile cache hit", zap.String("session_id", id))
			session.IdealProfile = &cached
			if err := s.store.Save(session); err != nil {
				return nil, nil, err
			}
			return session, nil, nil
		}
	}

	profile, warnings, err := s.profiles.GenerateIdealProfile(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	session.IdealProfile = &profile
	if err := s.store.Save(session); err != nil {
		return nil, nil, err
	}
	s.cache.Set(cacheKey, profile)

	return session, warnings, nil
}

// GenerateAssessment pide la evaluacion textual comparando los tres perfiles
// y la adjunta a la sesion. Requiere bateria resoluble (para el perfil
// medido) y perfil ideal ya generado.
func (s *SessionService) GenerateAssessment(ctx context.Context, id string) (*domain.TestSession, error) {
	if s.profiles == nil {
		return nil, ErrAIDisabled
	}
	session, err := s.store.Load(id)
	if err != nil {
		return nil, err
	}
	if session.IdealProfile == nil {
		return nil, ErrIdealProfileMissing
	}
	battery, err := s.batteries.Get(session.BatteryName)
	if err != nil {
		return nil, err
	}
	scores, err := scoring.NewAnalyzer(session, battery).Calculate()
	if err != nil {
		return nil, err
	}

	assessment, err := s.profiles.GenerateAssessment(
		ctx,
		session.DogData,
		scores.Profile(),
		*session.IdealProfile,
		session.OwnerProfile,
		len(battery.Items),
	)
	if err != nil {
		return nil, err
	}

	session.Assessment = assessment
	if err := s.store.Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Comparison es la vista reconciliada de los tres perfiles que consume la
// capa de reportes/graficos.
type Comparison struct {
	Measured  domain.Profile               `json:"measured"`
	Ideal     *domain.Profile              `json:"ideal,omitempty"`
	Owner     *domain.Profile              `json:"owner,omitempty"`
	Counts    map[domain.Dimension]int     `json:"counts"`
	Averages  map[domain.Dimension]float64 `json:"averages"`
	Bounds    map[domain.Dimension]int     `json:"bounds"`
	TestCount int                          `json:"test_count"`
}

// Compare arma la vista de reconciliacion de una sesion.
func (s *SessionService) Compare(id string) (Comparison, error) {
	session, err := s.store.Load(id)
	if err != nil {
		return Comparison{}, err
	}
	battery, err := s.batteries.Get(session.BatteryName)
	if err != nil {
		return Comparison{}, err
	}
	scores, err := scoring.NewAnalyzer(session, battery).Calculate()
	if err != nil {
		return Comparison{}, err
	}

	bounds := make(map[domain.Dimension]int, 5)
	for _, dim := range domain.Dimensions() {
		bounds[dim] = scoring.DimensionMax(battery, dim)
	}

	return Comparison{
		Measured:  scores.Profile(),
		Ideal:     session.IdealProfile,
		Owner:     session.OwnerProfile,
		Counts:    scores.Counts,
		Averages:  scores.Averages(),
		Bounds:    bounds,
		TestCount: len(battery.Items),
	}, nil
}

// sessionTestCount deriva test_count de la bateria de la sesion; si la
// bateria no esta registrada cae al default.
func (s *SessionService) sessionTestCount(session *domain.TestSession) int {
	battery, err := s.batteries.Get(session.BatteryName)
	if err != nil {
		return ai.DefaultTestCount
	}
	return len(battery.Items)
}

func (s *SessionService) sessionBound(session *domain.TestSession) int {
	return s.sessionTestCount(session) * domain.MaxScore
}
