package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("super-secreto"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewTokenService("firma-de-test", "cli-dog-ocean", string(hash), ttl)
}

func TestIssueAndParseToken(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	pair, err := svc.IssueToken("cli-dog-ocean", "super-secreto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.ExpiresIn != 60 {
		t.Fatalf("unexpected token pair: %+v", pair)
	}

	claims, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ClientID != "cli-dog-ocean" || claims.TokenType != "access" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestIssueToken_InvalidCredentials(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	if _, err := svc.IssueToken("otro-cliente", "super-secreto"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.IssueToken("cli-dog-ocean", "incorrecto"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestIssueToken_MissingConfig(t *testing.T) {
	svc := NewTokenService("", "", "", time.Minute)
	if _, err := svc.IssueToken("cli-dog-ocean", "super-secreto"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestParseAccessToken_Garbage(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)
	if _, err := svc.ParseAccessToken("no-es-un-jwt"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
	if _, err := svc.ParseAccessToken(""); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestParseAccessToken_WrongSignature(t *testing.T) {
	issuer := newTestTokenService(t, time.Minute)
	pair, err := issuer.IssueToken("cli-dog-ocean", "super-secreto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("super-secreto"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := NewTokenService("otra-firma", "cli-dog-ocean", string(hash), time.Minute)
	if _, err := other.ParseAccessToken(pair.AccessToken); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}
