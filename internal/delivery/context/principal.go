package context

import (
	"context"

	"userapi/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

var principalCtxKey = &contextKey{"principal"}

// WithPrincipal returns a copy of ctx carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal entity.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, principal)
}

// PrincipalFrom returns the principal carried by ctx.
func PrincipalFrom(ctx context.Context) (entity.Principal, bool) {
	principal, ok := ctx.Value(principalCtxKey).(entity.Principal)

	return principal, ok
}

// SetPrincipal attaches the principal to the request context so use cases can read it.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}
