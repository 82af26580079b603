// Package scoring calcula los valores OCEAN de una sesion.
//
// El valor principal por dimension es la SUMA de los scores, no el promedio:
// con distinta cantidad de pruebas por dimension un promedio entre dimensiones
// no seria comparable. El promedio queda disponible como vista derivada.
package scoring

import (
	"errors"

	"dog-ocean/internal/domain"
)

// ErrBatteryRequired indica un error de uso: puntuar sin bateria asociada.
var ErrBatteryRequired = errors.New("battery required for OCEAN scoring")

// Scores guarda la suma y la cantidad de pruebas por dimension.
type Scores struct {
	Sums   map[domain.Dimension]int
	Counts map[domain.Dimension]int
}

// Sum devuelve la suma de una dimension.
func (s Scores) Sum(dim domain.Dimension) int { return s.Sums[dim] }

// Count devuelve la cantidad de pruebas puntuadas de una dimension.
func (s Scores) Count(dim domain.Dimension) int { return s.Counts[dim] }

// Average devuelve suma/cantidad, o exactamente 0.0 con cantidad cero.
func (s Scores) Average(dim domain.Dimension) float64 {
	n := s.Counts[dim]
	if n == 0 {
		return 0.0
	}
	return float64(s.Sums[dim]) / float64(n)
}

// Averages devuelve los promedios de las cinco dimensiones.
func (s Scores) Averages() map[domain.Dimension]float64 {
	out := make(map[domain.Dimension]float64, 5)
	for _, dim := range domain.Dimensions() {
		out[dim] = s.Average(dim)
	}
	return out
}

// Profile devuelve las sumas como perfil medido.
func (s Scores) Profile() domain.Profile {
	var p domain.Profile
	for _, dim := range domain.Dimensions() {
		p.SetValue(dim, s.Sums[dim])
	}
	return p
}

// Analyzer agrupa los resultados de una sesion por dimension via la bateria.
type Analyzer struct {
	session *domain.TestSession
	battery *domain.TestBattery
}

// NewAnalyzer crea un analyzer para una sesion y su bateria (puede ser nil;
// en ese caso Calculate falla con ErrBatteryRequired).
func NewAnalyzer(session *domain.TestSession, battery *domain.TestBattery) *Analyzer {
	return &Analyzer{session: session, battery: battery}
}

// Calculate computa sumas y cantidades por dimension.
//
// Un resultado cuyo numero de prueba no existe en la bateria se excluye en
// silencio: la bateria puede haber cambiado entre sesiones y eso no debe
// romper el analisis.
func (a *Analyzer) Calculate() (Scores, error) {
	if a.battery == nil {
		return Scores{}, ErrBatteryRequired
	}

	scores := Scores{
		Sums:   make(map[domain.Dimension]int, 5),
		Counts: make(map[domain.Dimension]int, 5),
	}
	for _, dim := range domain.Dimensions() {
		scores.Sums[dim] = 0
		scores.Counts[dim] = 0
	}

	for _, result := range a.session.Results {
		item, ok := a.battery.ItemByNumber(result.TestNumber)
		if !ok {
			continue
		}
		scores.Sums[item.Dimension] += result.Score
		scores.Counts[item.Dimension]++
	}

	return scores, nil
}

// DimensionMax devuelve el limite natural de escala para una dimension:
// con N pruebas asignadas el rango posible es [-2N, +2N]. Se deriva de la
// bateria, nunca se fija a mano.
func DimensionMax(battery *domain.TestBattery, dim domain.Dimension) int {
	if battery == nil {
		return 0
	}
	return battery.DimensionItemCount(dim) * domain.MaxScore
}
