package http

import (
	"net/http"
	"strings"

	"github.com/annorax/sleek-travel-backend/internal/authz"
	"github.com/annorax/sleek-travel-backend/internal/service"
)

// bearerToken extracts the credential from the Authorization header. The
// shape must be exactly "Bearer <token>"; any other scheme is treated as an
// absent header, not an error.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SessionContext is the per-request context builder: it resolves the bearer
// token to a principal and attaches both to the request context. Every
// resolution failure (absent, malformed, unknown, retired) collapses to "no
// principal" so the policy layer handles unauthenticated requests uniformly.
func SessionContext(sessions service.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := authz.ContextWithToken(r.Context(), token)
			if user, err := sessions.Resolve(ctx, token); err == nil && user != nil {
				ctx = authz.ContextWithPrincipal(ctx, user)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
