package http

import (
	"errors"
	"net/http"
	"time"

	"dog-ocean/internal/ai"
	"dog-ocean/internal/domain"
	"dog-ocean/internal/scoring"
	"dog-ocean/internal/service"
	"dog-ocean/internal/storage"
)

// statusFor traduce la taxonomia de errores del core a codigos HTTP. Las
// clases de IA se mantienen distinguibles para que el cliente decida
// backoff/reintento.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrSessionNotFound),
		errors.Is(err, service.ErrBatteryNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrIdealProfileMissing),
		errors.Is(err, scoring.ErrBatteryRequired):
		return http.StatusConflict
	case errors.Is(err, service.ErrAIDisabled),
		errors.Is(err, ai.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, ai.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, ai.ErrConnection),
		errors.Is(err, ai.ErrMalformedResponse),
		errors.Is(err, ai.ErrAIService):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

// Vistas JSON de los registros de dominio (el dominio no carga tags HTTP).

type sessionView struct {
	ID           string             `json:"id"`
	DogData      domain.DogData     `json:"dog_data"`
	BatteryName  string             `json:"battery_name"`
	Results      map[int]resultView `json:"results"`
	Date         string             `json:"date"`
	SessionNotes string             `json:"session_notes"`
	Completed    int                `json:"completed"`
	IdealProfile *domain.Profile    `json:"ideal_profile,omitempty"`
	OwnerProfile *domain.Profile    `json:"owner_profile,omitempty"`
	Assessment   string             `json:"ai_assessment,omitempty"`
}

type resultView struct {
	TestNumber int    `json:"test_number"`
	Score      int    `json:"score"`
	Notes      string `json:"notes,omitempty"`
}

func toSessionView(s *domain.TestSession) sessionView {
	results := make(map[int]resultView, len(s.Results))
	for num, r := range s.Results {
		results[num] = resultView{TestNumber: r.TestNumber, Score: r.Score, Notes: r.Notes}
	}
	return sessionView{
		ID:           s.ID,
		DogData:      s.DogData,
		BatteryName:  s.BatteryName,
		Results:      results,
		Date:         s.Date.UTC().Format(time.RFC3339),
		SessionNotes: s.SessionNotes,
		Completed:    s.CompletedCount(),
		IdealProfile: s.IdealProfile,
		OwnerProfile: s.OwnerProfile,
		Assessment:   s.Assessment,
	}
}

type warningView struct {
	Kind    string `json:"kind"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

func toWarningViews(warnings []ai.Warning) []warningView {
	out := make([]warningView, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, warningView{Kind: w.Kind, Key: w.Key, Message: w.Message})
	}
	return out
}
