package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenService emite y valida access tokens JWT para clientes del API.
// La credencial es unica (id + secreto con hash bcrypt en la config); no hay
// cuentas de usuario en este sistema.
type TokenService struct {
	secret     []byte
	ttl        time.Duration
	issuer     string
	clientID   string
	secretHash string
}

type TokenPair struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type Claims struct {
	ClientID  string `json:"cid"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid         = errors.New("jwt invalid")
	ErrJWTExpired         = errors.New("jwt expired")
	ErrInvalidCredentials = errors.New("invalid client credentials")
)

func NewTokenService(secret, clientID, secretHash string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret:     []byte(secret),
		ttl:        ttl,
		issuer:     "dog-ocean",
		clientID:   clientID,
		secretHash: secretHash,
	}
}

// IssueToken valida la credencial del cliente y firma un access token.
func (s *TokenService) IssueToken(clientID, clientSecret string) (TokenPair, error) {
	if len(s.secret) == 0 || s.clientID == "" || s.secretHash == "" {
		return TokenPair{}, ErrJWTInvalid
	}
	if strings.TrimSpace(clientID) != s.clientID {
		return TokenPair{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.secretHash), []byte(clientSecret)); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := Claims{
		ClientID:  clientID,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: signed, ExpiresIn: int64(s.ttl.Seconds())}, nil
}

// ParseAccessToken valida firma, expiracion y claims del token.
func (s *TokenService) ParseAccessToken(tokenString string) (Claims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrJWTInvalid
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}

	if claims.TokenType != "access" {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(claims.ClientID) == "" || claims.Subject != claims.ClientID {
		return Claims{}, ErrJWTInvalid
	}
	if strings.TrimSpace(claims.Issuer) != s.issuer {
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}
