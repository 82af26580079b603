package domain

import "testing"

func validDog(t *testing.T) DogData {
	t.Helper()
	dog, err := NewDogData("Ana Lopez", "Bruno", 3, 6, GenderMale, true, "Golden Retriever", "Therapiehund")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return dog
}

func TestNewDogData_Validation(t *testing.T) {
	if _, err := NewDogData("", "Bruno", 3, 0, GenderMale, false, "", ""); err == nil {
		t.Fatal("expected empty owner name to be rejected")
	}
	if _, err := NewDogData("Ana", "  ", 3, 0, GenderMale, false, "", ""); err == nil {
		t.Fatal("expected empty dog name to be rejected")
	}
	if _, err := NewDogData("Ana", "Bruno", -1, 0, GenderMale, false, "", ""); err == nil {
		t.Fatal("expected negative age to be rejected")
	}
	if _, err := NewDogData("Ana", "Bruno", 3, 12, GenderMale, false, "", ""); err == nil {
		t.Fatal("expected 12 months to be rejected")
	}
	if _, err := NewDogData("Ana", "Bruno", 3, 0, Gender("otro"), false, "", ""); err == nil {
		t.Fatal("expected unknown gender to be rejected")
	}
}

func TestDogData_AgeTotalYears(t *testing.T) {
	dog := validDog(t)
	if got := dog.AgeTotalYears(); got != 3.5 {
		t.Fatalf("expected 3.5 years, got %v", got)
	}
}

func TestNewTestSession_RequiresBatteryName(t *testing.T) {
	if _, err := NewTestSession("id", validDog(t), "   "); err == nil {
		t.Fatal("expected empty battery name to be rejected")
	}
}

func TestSession_AddResultOverwrites(t *testing.T) {
	session, err := NewTestSession("id", validDog(t), "standard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, _ := NewTestResult(1, 1, "primera pasada")
	second, _ := NewTestResult(1, -2, "repeticion")
	session.AddResult(first)
	session.AddResult(second)

	if session.CompletedCount() != 1 {
		t.Fatalf("expected 1 result, got %d", session.CompletedCount())
	}
	got, ok := session.Result(1)
	if !ok || got.Score != -2 || got.Notes != "repeticion" {
		t.Fatalf("expected last write to win, got %+v ok=%v", got, ok)
	}
	if !session.HasResult(1) || session.HasResult(2) {
		t.Fatal("unexpected HasResult state")
	}
}

func TestProfile_ValueAndFormat(t *testing.T) {
	p := Profile{O: 10, C: 12, E: 8, A: 14, N: -10}
	if p.Value(DimensionAgreeableness) != 14 {
		t.Fatalf("unexpected value: %d", p.Value(DimensionAgreeableness))
	}

	p.SetValue(DimensionNeuroticism, -4)
	if p.N != -4 {
		t.Fatalf("expected N=-4, got %d", p.N)
	}

	want := "O: 10, C: 12, E: 8, A: 14, N: -4"
	if got := p.Format(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
