package services

import (
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/ghuser/productcatalog/pkg/app"
	"github.com/ghuser/productcatalog/services/account/domain"
)

const meterName = "github.com/ghuser/productcatalog/services/account"

// Services is the application-layer service container for the account context.
type Services struct {
	Login *LoginService
}

// New wires the login service with the configured placeholder credential and
// the global meter provider.
func New(a *app.Application) (*Services, error) {
	verifier, err := domain.NewStaticVerifier(a.Config.AuthUsername, a.Config.AuthPassword, a.Config.Roles())
	if err != nil {
		return nil, fmt.Errorf("account services: %w", err)
	}
	login, err := NewLoginService(verifier, a.Tokens, otel.Meter(meterName))
	if err != nil {
		return nil, fmt.Errorf("account services: %w", err)
	}
	return &Services{Login: login}, nil
}
