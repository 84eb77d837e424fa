package authz

import (
	"context"

	"github.com/annorax/sleek-travel-backend/internal/domain"
)

type principalContextKey struct{}
type tokenContextKey struct{}

// ContextWithPrincipal attaches the resolved user to the request context.
func ContextWithPrincipal(ctx context.Context, user *domain.User) context.Context {
	if user == nil {
		return ctx
	}
	return context.WithValue(ctx, principalContextKey{}, user)
}

// PrincipalFromContext returns the authenticated user, or nil for an
// unauthenticated request.
func PrincipalFromContext(ctx context.Context) *domain.User {
	if ctx == nil {
		return nil
	}
	if u, ok := ctx.Value(principalContextKey{}).(*domain.User); ok {
		return u
	}
	return nil
}

// ContextWithToken stores the raw bearer token so logout and rotation can
// act on the credential that authenticated the request.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the bearer token attached by the session
// middleware, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v, ok := ctx.Value(tokenContextKey{}).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
