package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/annorax/sleek-travel-backend/internal/authz"
	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/google/uuid"
)

type stubSessions struct {
	// byToken maps active token values to their users.
	byToken map[string]*domain.User

	resolveErr   error
	resolveCalls []string
}

func (s *stubSessions) Create(ctx context.Context, userID domain.UserID, ipAddress string, explicit bool) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubSessions) Resolve(ctx context.Context, tokenValue string) (*domain.User, error) {
	s.resolveCalls = append(s.resolveCalls, tokenValue)
	if s.resolveErr != nil {
		return nil, s.resolveErr
	}
	return s.byToken[tokenValue], nil
}

func (s *stubSessions) Revoke(ctx context.Context, tokenValue string) error {
	return errors.New("not implemented")
}

func (s *stubSessions) Rotate(ctx context.Context, oldTokenValue string) (string, error) {
	return "", errors.New("not implemented")
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{name: "well formed", header: "Bearer abc123", want: "abc123"},
		{name: "missing", header: "", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
		{name: "lowercase scheme", header: "bearer abc123", want: ""},
		{name: "basic scheme", header: "Basic abc123", want: ""},
		{name: "padded credential", header: "Bearer  abc123", want: "abc123"},
		{name: "bare token", header: "abc123", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			if got := bearerToken(r); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func captureContext(captured *context.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = r.Context()
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionContextAttachesPrincipal(t *testing.T) {
	user := &domain.User{ID: uuid.New(), Role: domain.RoleNormal}
	sessions := &stubSessions{byToken: map[string]*domain.User{"tok-1": user}}

	var ctx context.Context
	handler := SessionContext(sessions)(captureContext(&ctx))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer tok-1")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if got := authz.PrincipalFromContext(ctx); got == nil || got.ID != user.ID {
		t.Fatalf("expected the resolved principal, got %+v", got)
	}
	if tok, ok := authz.TokenFromContext(ctx); !ok || tok != "tok-1" {
		t.Fatalf("expected the raw token in context, got %q ok=%v", tok, ok)
	}
}

func TestSessionContextUnknownTokenYieldsNoPrincipal(t *testing.T) {
	sessions := &stubSessions{byToken: map[string]*domain.User{}}

	var ctx context.Context
	handler := SessionContext(sessions)(captureContext(&ctx))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer tok-unknown")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	if got := authz.PrincipalFromContext(ctx); got != nil {
		t.Fatalf("unknown token must not yield a principal, got %+v", got)
	}
	// The raw credential still rides along so logout can retire it.
	if tok, ok := authz.TokenFromContext(ctx); !ok || tok != "tok-unknown" {
		t.Fatalf("expected the raw token in context, got %q ok=%v", tok, ok)
	}
}

func TestSessionContextResolveFailureCollapsesToAnonymous(t *testing.T) {
	sessions := &stubSessions{resolveErr: errors.New("store down")}

	var ctx context.Context
	handler := SessionContext(sessions)(captureContext(&ctx))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer tok-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("the request must still be served, got status %d", rec.Code)
	}
	if got := authz.PrincipalFromContext(ctx); got != nil {
		t.Fatalf("resolution failure must collapse to no principal, got %+v", got)
	}
}

func TestSessionContextSkipsResolveWithoutHeader(t *testing.T) {
	sessions := &stubSessions{}

	var ctx context.Context
	handler := SessionContext(sessions)(captureContext(&ctx))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(sessions.resolveCalls) != 0 {
		t.Fatalf("no header means no store lookup, got %v", sessions.resolveCalls)
	}
	if _, ok := authz.TokenFromContext(ctx); ok {
		t.Fatalf("no token may be attached without a header")
	}
}
