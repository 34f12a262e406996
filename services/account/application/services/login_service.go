package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ghuser/productcatalog/services/account/application/dto"
	"github.com/ghuser/productcatalog/services/account/domain"
)

const tokenTypeBearer = "Bearer"

// Login outcomes recorded on the attempts counter.
const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// TokenIssuer is satisfied by *auth.TokenService.
type TokenIssuer interface {
	GenerateAccessToken(principal string, roles []string) (string, error)
	GenerateRefreshToken() (string, error)
	AccessTokenTTL() time.Duration
}

// LoginService exchanges credentials for a token pair.
type LoginService struct {
	verifier domain.CredentialVerifier
	tokens   TokenIssuer
	attempts metric.Int64Counter
}

// NewLoginService registers the catalog_login_attempts_total counter on meter.
func NewLoginService(verifier domain.CredentialVerifier, tokens TokenIssuer, meter metric.Meter) (*LoginService, error) {
	attempts, err := meter.Int64Counter("catalog_login_attempts_total",
		metric.WithDescription("Login attempts by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("login attempts counter: %w", err)
	}
	return &LoginService{verifier: verifier, tokens: tokens, attempts: attempts}, nil
}

// Login returns ErrInvalidCredentials on any mismatch. Refresh tokens are
// issued but not stored; no endpoint redeems them yet.
func (s *LoginService) Login(ctx context.Context, username, password string) (dto.TokenResponse, error) {
	principal, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.record(ctx, outcomeRejected)
			return dto.TokenResponse{}, err
		}
		s.record(ctx, outcomeError)
		return dto.TokenResponse{}, fmt.Errorf("verify credentials: %w", err)
	}

	access, err := s.tokens.GenerateAccessToken(principal.Name, principal.Roles)
	if err != nil {
		s.record(ctx, outcomeError)
		return dto.TokenResponse{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		s.record(ctx, outcomeError)
		return dto.TokenResponse{}, fmt.Errorf("issue refresh token: %w", err)
	}

	s.record(ctx, outcomeSuccess)
	return dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int(s.tokens.AccessTokenTTL().Seconds()),
	}, nil
}

func (s *LoginService) record(ctx context.Context, outcome string) {
	s.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
