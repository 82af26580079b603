package domain

import "fmt"

// Limites fijos de la escala de observacion por prueba.
const (
	MinScore = -2
	MaxScore = 2
)

// TestResult es una observacion puntuada de una prueba.
// Score fuera de [-2, +2] es un error de construccion, nunca un warning.
type TestResult struct {
	TestNumber int    `json:"test_number"`
	Score      int    `json:"score"`
	Notes      string `json:"notes"`
}

// NewTestResult construye un resultado validando numero y rango de score.
func NewTestResult(testNumber, score int, notes string) (TestResult, error) {
	if testNumber < 1 {
		return TestResult{}, fmt.Errorf("test number must be positive: %d", testNumber)
	}
	if score < MinScore || score > MaxScore {
		return TestResult{}, fmt.Errorf("score must be between %d and %d: %d", MinScore, MaxScore, score)
	}
	return TestResult{TestNumber: testNumber, Score: score, Notes: notes}, nil
}
