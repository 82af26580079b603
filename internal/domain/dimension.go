package domain

import "fmt"

// Dimension es una de las cinco dimensiones OCEAN. Conjunto cerrado:
// no se admiten dimensiones adicionales en runtime.
type Dimension string

const (
	DimensionOpenness          Dimension = "Offenheit"
	DimensionConscientiousness Dimension = "Gewissenhaftigkeit"
	DimensionExtraversion      Dimension = "Extraversion"
	DimensionAgreeableness     Dimension = "Verträglichkeit"
	DimensionNeuroticism       Dimension = "Neurotizismus"
)

// Dimensions devuelve las cinco dimensiones en el orden canonico O-C-E-A-N.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionOpenness,
		DimensionConscientiousness,
		DimensionExtraversion,
		DimensionAgreeableness,
		DimensionNeuroticism,
	}
}

// Key devuelve la letra corta usada en perfiles y en el contrato con el LLM.
func (d Dimension) Key() string {
	switch d {
	case DimensionOpenness:
		return "O"
	case DimensionConscientiousness:
		return "C"
	case DimensionExtraversion:
		return "E"
	case DimensionAgreeableness:
		return "A"
	case DimensionNeuroticism:
		return "N"
	}
	return ""
}

// ParseDimension valida una etiqueta de dimension contra el conjunto cerrado.
func ParseDimension(label string) (Dimension, error) {
	for _, d := range Dimensions() {
		if string(d) == label {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown OCEAN dimension: %q", label)
}
