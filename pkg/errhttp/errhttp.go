// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"context"
	"errors"
	"net/http"

	"github.com/ghuser/productcatalog/pkg/auth"
	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
	accountdomain "github.com/ghuser/productcatalog/services/account/domain"
	catalogdomain "github.com/ghuser/productcatalog/services/catalog/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 with a generic message; the detail only
// reaches the log.
func WriteError(ctx context.Context, w http.ResponseWriter, log logger.Logger, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(ctx, "request failed", "error", err)
	}
	httpx.JSONError(w, status, message(err, status))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrInvalidProduct),
		errors.Is(err, catalogdomain.ErrInvalidItem),
		errors.Is(err, catalogdomain.ErrUnknownProduct):
		return http.StatusBadRequest // 400
	case errors.Is(err, accountdomain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500
	}
}

// message keeps authentication failures uniform and masks server faults.
func message(err error, status int) string {
	if status == http.StatusUnauthorized {
		if errors.Is(err, auth.ErrInvalidToken) {
			return auth.UnauthenticatedMessage
		}
		return accountdomain.ErrInvalidCredentials.Error()
	}
	return httpx.SafeError(err, status)
}
