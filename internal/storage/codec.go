package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"dog-ocean/internal/domain"
)

// Registro plano persistido por sesion. El mapeo registro<->dominio es
// explicito y bidireccional: cada campo requerido se valida al decodificar y
// los campos opcionales ausentes quedan sin setear (la ausencia misma señala
// "todavia no generado", no hace falta campo de version).
type sessionRecord struct {
	ID          string                `json:"id,omitempty"`
	DogData     *dogRecord            `json:"dog_data"`
	BatteryName string                `json:"battery_name"`
	Results     map[string]rawResult  `json:"results"`
	Date        string                `json:"date"`
	Notes       string                `json:"session_notes"`
	Ideal       *domain.Profile       `json:"ideal_profile,omitempty"`
	Owner       *domain.Profile       `json:"owner_profile,omitempty"`
	Assessment  *string               `json:"ai_assessment,omitempty"`
}

type dogRecord struct {
	OwnerName   string `json:"owner_name"`
	DogName     string `json:"dog_name"`
	AgeYears    int    `json:"age_years"`
	AgeMonths   int    `json:"age_months"`
	Gender      string `json:"gender"`
	Neutered    bool   `json:"neutered"`
	Breed       string `json:"breed,omitempty"`
	IntendedUse string `json:"intended_use,omitempty"`
}

type rawResult struct {
	TestNumber int    `json:"test_number"`
	Score      int    `json:"score"`
	Notes      string `json:"notes"`
}

// EncodeSession serializa la sesion como registro JSON indentado.
func EncodeSession(s *domain.TestSession) ([]byte, error) {
	if s == nil {
		return nil, errors.New("nil session")
	}
	rec := sessionRecord{
		ID: s.ID,
		DogData: &dogRecord{
			OwnerName:   s.DogData.OwnerName,
			DogName:     s.DogData.DogName,
			AgeYears:    s.DogData.AgeYears,
			AgeMonths:   s.DogData.AgeMonths,
			Gender:      string(s.DogData.Gender),
			Neutered:    s.DogData.Neutered,
			Breed:       s.DogData.Breed,
			IntendedUse: s.DogData.IntendedUse,
		},
		BatteryName: s.BatteryName,
		Results:     make(map[string]rawResult, len(s.Results)),
		Date:        s.Date.UTC().Format(time.RFC3339),
		Notes:       s.SessionNotes,
		Ideal:       s.IdealProfile,
		Owner:       s.OwnerProfile,
	}
	for num, r := range s.Results {
		rec.Results[strconv.Itoa(num)] = rawResult{
			TestNumber: r.TestNumber,
			Score:      r.Score,
			Notes:      r.Notes,
		}
	}
	if s.Assessment != "" {
		rec.Assessment = &s.Assessment
	}
	return json.MarshalIndent(rec, "", "  ")
}

// DecodeSession reconstruye una sesion desde su registro plano. Cada score se
// revalida via el constructor de dominio: un registro corrupto falla aca, no
// mas adelante en el scoring.
func DecodeSession(data []byte) (*domain.TestSession, error) {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}
	if rec.DogData == nil {
		return nil, errors.New("session record missing dog_data")
	}
	if rec.BatteryName == "" {
		return nil, errors.New("session record missing battery_name")
	}

	gender, err := domain.ParseGender(rec.DogData.Gender)
	if err != nil {
		return nil, fmt.Errorf("session record: %w", err)
	}
	dog, err := domain.NewDogData(
		rec.DogData.OwnerName,
		rec.DogData.DogName,
		rec.DogData.AgeYears,
		rec.DogData.AgeMonths,
		gender,
		rec.DogData.Neutered,
		rec.DogData.Breed,
		rec.DogData.IntendedUse,
	)
	if err != nil {
		return nil, fmt.Errorf("session record: %w", err)
	}

	session, err := domain.NewTestSession(rec.ID, dog, rec.BatteryName)
	if err != nil {
		return nil, fmt.Errorf("session record: %w", err)
	}

	if rec.Date != "" {
		date, err := time.Parse(time.RFC3339, rec.Date)
		if err != nil {
			return nil, fmt.Errorf("session record: invalid date %q: %w", rec.Date, err)
		}
		session.Date = date
	}
	session.SessionNotes = rec.Notes

	for key, raw := range rec.Results {
		num, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("session record: invalid result key %q", key)
		}
		result, err := domain.NewTestResult(raw.TestNumber, raw.Score, raw.Notes)
		if err != nil {
			return nil, fmt.Errorf("session record: result %d: %w", num, err)
		}
		session.AddResult(result)
	}

	session.IdealProfile = rec.Ideal
	session.OwnerProfile = rec.Owner
	if rec.Assessment != nil {
		session.Assessment = *rec.Assessment
	}

	return session, nil
}
