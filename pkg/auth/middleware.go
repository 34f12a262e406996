package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ghuser/productcatalog/pkg/httpx"
	"github.com/ghuser/productcatalog/pkg/logger"
)

// Client-facing messages. Neither varies with the failure cause.
const (
	UnauthenticatedMessage = "Authentication token is missing or invalid."
	ForbiddenMessage       = "You do not have permission to access this resource."
)

var errMissingBearer = errors.New("missing bearer token")

// TokenValidator is satisfied by *TokenService.
type TokenValidator interface {
	ValidateAccessToken(raw string) (*Claims, error)
}

// RequireAuth is a chi middleware that authenticates the Authorization: Bearer
// header. Missing, malformed, expired or foreign tokens all get the same 401.
// After this middleware, handlers can call auth.PrincipalFromCtx(r.Context()).
func RequireAuth(tokens TokenValidator, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			if err == nil {
				var claims *Claims
				if claims, err = tokens.ValidateAccessToken(raw); err == nil {
					ctx := WithPrincipal(r.Context(), Principal{Name: claims.Subject, Roles: claims.Roles})
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			log.WarnContext(r.Context(), "request rejected: unauthenticated", "path", r.URL.Path, "error", err)
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			httpx.JSONError(w, http.StatusUnauthorized, UnauthenticatedMessage)
		})
	}
}

// RequireRole answers 403 when the authenticated principal lacks role. It must
// run after RequireAuth; an anonymous request gets 401.
func RequireRole(role string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromCtx(r.Context())
			if !ok {
				httpx.JSONError(w, http.StatusUnauthorized, UnauthenticatedMessage)
				return
			}
			if !p.HasRole(role) {
				log.WarnContext(r.Context(), "request rejected: missing role",
					"principal", p.Name, "role", role, "path", r.URL.Path)
				httpx.JSONError(w, http.StatusForbidden, ForbiddenMessage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errMissingBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingBearer
	}
	return token, nil
}
