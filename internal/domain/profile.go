package domain

import (
	"fmt"
	"strings"
)

// Profile asigna un valor entero a cada una de las cinco dimensiones OCEAN.
// Se usa para los tres perfiles de una sesion: medido (derivado de los
// resultados), ideal (generado por el LLM) y cuestionario (ingresado a mano).
type Profile struct {
	O int `json:"O"`
	C int `json:"C"`
	E int `json:"E"`
	A int `json:"A"`
	N int `json:"N"`
}

// Value devuelve el valor de una dimension.
func (p Profile) Value(dim Dimension) int {
	switch dim {
	case DimensionOpenness:
		return p.O
	case DimensionConscientiousness:
		return p.C
	case DimensionExtraversion:
		return p.E
	case DimensionAgreeableness:
		return p.A
	case DimensionNeuroticism:
		return p.N
	}
	return 0
}

// SetValue asigna el valor de una dimension.
func (p *Profile) SetValue(dim Dimension, v int) {
	switch dim {
	case DimensionOpenness:
		p.O = v
	case DimensionConscientiousness:
		p.C = v
	case DimensionExtraversion:
		p.E = v
	case DimensionAgreeableness:
		p.A = v
	case DimensionNeuroticism:
		p.N = v
	}
}

// Format serializa el perfil como "O: 8, C: 10, ..." para prompts y logs.
func (p Profile) Format() string {
	parts := make([]string, 0, 5)
	for _, dim := range Dimensions() {
		parts = append(parts, fmt.Sprintf("%s: %d", dim.Key(), p.Value(dim)))
	}
	return strings.Join(parts, ", ")
}
