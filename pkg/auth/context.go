package auth

import "context"

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// Role names carried in access tokens.
const (
	RoleCatalogRead  = "catalog.read"
	RoleCatalogWrite = "catalog.write"
)

// Principal is the authenticated caller attached to a request by RequireAuth.
type Principal struct {
	Name  string
	Roles []string
}

// HasRole reports whether the principal was granted role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// WithPrincipal returns a new context with p attached.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromCtx returns the authenticated principal, if any.
func PrincipalFromCtx(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.Name == "" {
		return Principal{}, false
	}
	return p, true
}

// ActorFromCtx returns the principal name for audit columns, or "" when the
// request is anonymous.
func ActorFromCtx(ctx context.Context) string {
	p, _ := PrincipalFromCtx(ctx)
	return p.Name
}
