package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Gender es el sexo del perro. Conjunto cerrado.
type Gender string

const (
	GenderMale   Gender = "Rüde"
	GenderFemale Gender = "Hündin"
)

// ParseGender valida la etiqueta de sexo.
func ParseGender(label string) (Gender, error) {
	switch Gender(label) {
	case GenderMale, GenderFemale:
		return Gender(label), nil
	}
	return "", fmt.Errorf("unknown gender: %q", label)
}

// DogData contiene los datos maestros del perro y su dueño.
// Breed e IntendedUse son opcionales; el resto se valida en construccion.
type DogData struct {
	OwnerName   string `json:"owner_name"`
	DogName     string `json:"dog_name"`
	AgeYears    int    `json:"age_years"`
	AgeMonths   int    `json:"age_months"`
	Gender      Gender `json:"gender"`
	Neutered    bool   `json:"neutered"`
	Breed       string `json:"breed,omitempty"`
	IntendedUse string `json:"intended_use,omitempty"`
}

// NewDogData construye y valida los datos maestros (fail-fast).
func NewDogData(ownerName, dogName string, ageYears, ageMonths int, gender Gender, neutered bool, breed, intendedUse string) (DogData, error) {
	d := DogData{
		OwnerName:   strings.TrimSpace(ownerName),
		DogName:     strings.TrimSpace(dogName),
		AgeYears:    ageYears,
		AgeMonths:   ageMonths,
		Gender:      gender,
		Neutered:    neutered,
		Breed:       strings.TrimSpace(breed),
		IntendedUse: strings.TrimSpace(intendedUse),
	}
	if err := d.Validate(); err != nil {
		return DogData{}, err
	}
	return d, nil
}

// Validate aplica las invariantes de los datos maestros.
func (d DogData) Validate() error {
	if strings.TrimSpace(d.OwnerName) == "" {
		return errors.New("owner name must not be empty")
	}
	if strings.TrimSpace(d.DogName) == "" {
		return errors.New("dog name must not be empty")
	}
	if d.AgeYears < 0 {
		return fmt.Errorf("age years must not be negative: %d", d.AgeYears)
	}
	if d.AgeMonths < 0 || d.AgeMonths > 11 {
		return fmt.Errorf("age months must be between 0 and 11: %d", d.AgeMonths)
	}
	if _, err := ParseGender(string(d.Gender)); err != nil {
		return err
	}
	return nil
}

// AgeTotalYears devuelve la edad como valor decimal en años.
func (d DogData) AgeTotalYears() float64 {
	return float64(d.AgeYears) + float64(d.AgeMonths)/12.0
}
