package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dog-ocean/internal/domain"
)

func assessmentDog(t *testing.T) domain.DogData {
	t.Helper()
	dog, err := domain.NewDogData("Ana Lopez", "Bruno", 3, 6, domain.GenderMale, true, "Golden Retriever", "Therapiehund")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return dog
}

func TestGenerateAssessment_ReturnsNarrative(t *testing.T) {
	mock := &MockClient{Response: "El perro muestra buena aptitud para el rol.\n\nFortalezas: ..."}
	svc := NewProfileServiceWithClient(mock, 500, nil)

	measured := domain.Profile{O: 8, C: 10, E: 6, A: 12, N: -6}
	ideal := domain.Profile{O: 10, C: 12, E: 8, A: 14, N: -10}
	owner := &domain.Profile{O: 9, C: 11, E: 7, A: 13, N: -8}

	got, err := svc.GenerateAssessment(context.Background(), assessmentDog(t), measured, ideal, owner, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "buena aptitud") {
		t.Fatalf("unexpected assessment: %q", got)
	}

	prompt := mock.LastRequest.Prompt
	if !strings.Contains(prompt, measured.Format()) {
		t.Fatalf("expected measured profile in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, owner.Format()) {
		t.Fatalf("expected owner profile in prompt:\n%s", prompt)
	}
}

func TestGenerateAssessment_MissingOwnerProfileUsesPlaceholder(t *testing.T) {
	mock := &MockClient{Response: "evaluacion"}
	svc := NewProfileServiceWithClient(mock, 500, nil)

	_, err := svc.GenerateAssessment(context.Background(), assessmentDog(t), domain.Profile{}, domain.Profile{}, nil, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.LastRequest.Prompt, "No proporcionado") {
		t.Fatalf("expected explicit placeholder for missing owner profile:\n%s", mock.LastRequest.Prompt)
	}
}

func TestGenerateAssessment_EmptyCompletionIsMalformed(t *testing.T) {
	mock := &MockClient{Response: "   \n"}
	svc := NewProfileServiceWithClient(mock, 500, nil)

	_, err := svc.GenerateAssessment(context.Background(), assessmentDog(t), domain.Profile{}, domain.Profile{}, nil, 7)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestGenerateAssessment_ConnectionErrorPassesThrough(t *testing.T) {
	mock := &MockClient{Err: ErrConnection}
	svc := NewProfileServiceWithClient(mock, 500, nil)

	_, err := svc.GenerateAssessment(context.Background(), assessmentDog(t), domain.Profile{}, domain.Profile{}, nil, 7)
	if !errors.Is(err, ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestErrorFamily_AllKindsAreDistinguishable(t *testing.T) {
	kinds := []error{ErrNotConfigured, ErrConnection, ErrRateLimited, ErrMalformedResponse}
	for _, kind := range kinds {
		if !errors.Is(kind, ErrAIService) {
			t.Fatalf("%v should belong to the ai service family", kind)
		}
	}
	if errors.Is(ErrConnection, ErrRateLimited) {
		t.Fatal("kinds must not overlap")
	}
}
