package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TestItem es una prueba individual de la bateria. Inmutable tras creacion.
type TestItem struct {
	Number       int       `json:"number"`
	Dimension    Dimension `json:"ocean_dimension"`
	Name         string    `json:"name"`
	Setting      string    `json:"setting"`
	Materials    string    `json:"materials"`
	Duration     string    `json:"duration"`
	RoleFigurant string    `json:"role_figurant"`
	Criteria     string    `json:"observation_criteria"`
	RatingScale  string    `json:"rating_scale"`
}

// NewTestItem construye una prueba validando numero y nombre.
func NewTestItem(number int, dim Dimension, name, setting, materials, duration, roleFigurant, criteria, ratingScale string) (TestItem, error) {
	if number < 1 {
		return TestItem{}, fmt.Errorf("test number must be positive: %d", number)
	}
	if strings.TrimSpace(name) == "" {
		return TestItem{}, errors.New("test name must not be empty")
	}
	if _, err := ParseDimension(string(dim)); err != nil {
		return TestItem{}, err
	}
	return TestItem{
		Number:       number,
		Dimension:    dim,
		Name:         strings.TrimSpace(name),
		Setting:      setting,
		Materials:    materials,
		Duration:     duration,
		RoleFigurant: roleFigurant,
		Criteria:     criteria,
		RatingScale:  ratingScale,
	}, nil
}

// TestBattery es el conjunto ordenado de pruebas de un protocolo.
type TestBattery struct {
	Name  string     `json:"name"`
	Items []TestItem `json:"tests"`
}

// NewTestBattery valida nombre, cardinalidad y unicidad de numeros de prueba.
// Numeros duplicados se rechazan en construccion: una busqueda ambigua por
// numero no tiene respaldo en el modelo de datos.
func NewTestBattery(name string, items []TestItem) (*TestBattery, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("battery name must not be empty")
	}
	if len(items) == 0 {
		return nil, errors.New("battery must contain at least one test")
	}
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		if seen[it.Number] {
			return nil, fmt.Errorf("duplicate test number in battery: %d", it.Number)
		}
		seen[it.Number] = true
	}
	return &TestBattery{Name: strings.TrimSpace(name), Items: items}, nil
}

// ItemByNumber devuelve la prueba con el numero dado, o false si no existe.
func (b *TestBattery) ItemByNumber(number int) (TestItem, bool) {
	for _, it := range b.Items {
		if it.Number == number {
			return it, true
		}
	}
	return TestItem{}, false
}

// ItemsByDimension devuelve las pruebas asignadas a una dimension.
func (b *TestBattery) ItemsByDimension(dim Dimension) []TestItem {
	var out []TestItem
	for _, it := range b.Items {
		if it.Dimension == dim {
			out = append(out, it)
		}
	}
	return out
}

// DimensionItemCount cuenta las pruebas de una dimension.
func (b *TestBattery) DimensionItemCount(dim Dimension) int {
	n := 0
	for _, it := range b.Items {
		if it.Dimension == dim {
			n++
		}
	}
	return n
}
