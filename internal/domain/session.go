package domain

import (
	"errors"
	"strings"
	"time"
)

// TestSession es el registro completo de una evaluacion: perro, referencia a
// la bateria por nombre (clave blanda, se compara por igualdad de nombre) y
// los resultados observados. Los perfiles ideal/cuestionario y la evaluacion
// textual se adjuntan despues de puntuar y se persisten con la sesion; el
// perfil medido NO se guarda, se deriva siempre de los resultados actuales.
type TestSession struct {
	ID           string
	DogData      DogData
	BatteryName  string
	Results      map[int]TestResult
	Date         time.Time
	SessionNotes string

	IdealProfile *Profile
	OwnerProfile *Profile
	Assessment   string
}

// NewTestSession crea una sesion vacia para un perro y una bateria.
func NewTestSession(id string, dog DogData, batteryName string) (*TestSession, error) {
	if err := dog.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(batteryName) == "" {
		return nil, errors.New("battery name must not be empty")
	}
	return &TestSession{
		ID:          id,
		DogData:     dog,
		BatteryName: strings.TrimSpace(batteryName),
		Results:     make(map[int]TestResult),
		Date:        time.Now().UTC(),
	}, nil
}

// AddResult agrega o sobreescribe el resultado de una prueba (last write wins).
func (s *TestSession) AddResult(r TestResult) {
	if s.Results == nil {
		s.Results = make(map[int]TestResult)
	}
	s.Results[r.TestNumber] = r
}

// Result devuelve el resultado de una prueba, o false si no existe.
func (s *TestSession) Result(testNumber int) (TestResult, bool) {
	r, ok := s.Results[testNumber]
	return r, ok
}

// HasResult indica si existe resultado para la prueba.
func (s *TestSession) HasResult(testNumber int) bool {
	_, ok := s.Results[testNumber]
	return ok
}

// CompletedCount devuelve la cantidad de pruebas con resultado.
func (s *TestSession) CompletedCount() int {
	return len(s.Results)
}
