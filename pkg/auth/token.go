// Package auth issues and validates the bearer tokens that guard the API.
//
// Access tokens are HS256-signed JWTs carrying the principal name and roles.
// Refresh tokens are opaque random strings with no claims. No session state
// is kept server-side; every request is authenticated from its own token.
package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

// ErrInvalidToken is returned for every validation failure. Callers must not
// tell clients which check failed.
var ErrInvalidToken = errors.New("invalid token")

const refreshTokenBytes = 32

// TokenConfig configures a TokenService.
type TokenConfig struct {
	SigningKey     []byte
	Issuer         string
	Audience       string
	AccessTokenTTL time.Duration
}

// Claims is the JWT payload of an access token. Subject holds the principal.
type Claims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies access tokens. It is safe for concurrent use.
type TokenService struct {
	cfg TokenConfig
	now func() time.Time
}

// NewTokenService returns a TokenService for cfg.
func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if len(cfg.SigningKey) == 0 {
		return nil, errors.New("token service: signing key is required")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, errors.New("token service: access token TTL must be positive")
	}
	return &TokenService{cfg: cfg, now: time.Now}, nil
}

// AccessTokenTTL reports the lifetime of issued access tokens.
func (s *TokenService) AccessTokenTTL() time.Duration {
	return s.cfg.AccessTokenTTL
}

// GenerateAccessToken returns a signed token for principal with the given roles.
func (s *TokenService) GenerateAccessToken(principal string, roles []string) (string, error) {
	now := s.now()
	claims := Claims{
		Name:  principal,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   principal,
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.SigningKey)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// GenerateRefreshToken returns an opaque base64url string built from
// 32 bytes of CSPRNG output.
func (s *TokenService) GenerateRefreshToken() (string, error) {
	b := securecookie.GenerateRandomKey(refreshTokenBytes)
	if b == nil {
		return "", errors.New("generate refresh token: random source failed")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidateAccessToken checks the signature, algorithm, issuer, audience and
// expiry of raw. Any failure yields ErrInvalidToken.
func (s *TokenService) ValidateAccessToken(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return s.cfg.SigningKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
