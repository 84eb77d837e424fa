package impl

import (
	"errors"
	"testing"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/google/uuid"
)

func TestSignedTokenServiceRoundTrip(t *testing.T) {
	svc, err := NewSignedTokenServiceHS256([]byte("unit-test-secret"), "email-verification")
	if err != nil {
		t.Fatalf("constructor returned error: %v", err)
	}

	subject := uuid.New()
	token, err := svc.Issue(subject, time.Hour)
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if got != subject {
		t.Fatalf("subject mismatch: got %s want %s", got, subject)
	}
}

func TestSignedTokenServiceRejectsEmptySecret(t *testing.T) {
	if _, err := NewSignedTokenServiceHS256(nil, "email-verification"); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestSignedTokenServiceExpiredToken(t *testing.T) {
	svc, err := NewSignedTokenServiceHS256([]byte("unit-test-secret"), "email-verification")
	if err != nil {
		t.Fatalf("constructor returned error: %v", err)
	}

	token, err := svc.Issue(uuid.New(), -time.Minute)
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestSignedTokenServiceCrossSecretRejected(t *testing.T) {
	issuer, err := NewSignedTokenServiceHS256([]byte("secret-one"), "email-verification")
	if err != nil {
		t.Fatalf("constructor returned error: %v", err)
	}
	verifier, err := NewSignedTokenServiceHS256([]byte("secret-two"), "email-verification")
	if err != nil {
		t.Fatalf("constructor returned error: %v", err)
	}

	token, err := issuer.Issue(uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestSignedTokenServiceCrossAudienceRejected(t *testing.T) {
	secret := []byte("shared-secret")
	links, err := NewSignedTokenServiceHS256(secret, "email-verification")
	if err != nil {
		t.Fatalf("constructor returned error: %v", err)
	}
	resets, err := NewSignedTokenServiceHS256(secret, "password-reset")
	if err != nil {
		t.Fatalf("constructor returned error: %v", err)
	}

	token, err := links.Issue(uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	if _, err := resets.Verify(token); !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature for wrong audience, got %v", err)
	}
}

func TestSignedTokenServiceMalformedToken(t *testing.T) {
	svc, err := NewSignedTokenServiceHS256([]byte("unit-test-secret"), "email-verification")
	if err != nil {
		t.Fatalf("constructor returned error: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "definitely-not-a-jwt"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Verify(tc.token); !errors.Is(err, domain.ErrTokenMalformed) {
				t.Fatalf("expected ErrTokenMalformed, got %v", err)
			}
		})
	}
}

func TestSignedTokenServiceZeroTTLNeverExpires(t *testing.T) {
	svc, err := NewSignedTokenServiceHS256([]byte("unit-test-secret"), "email-verification")
	if err != nil {
		t.Fatalf("constructor returned error: %v", err)
	}

	subject := uuid.New()
	token, err := svc.Issue(subject, 0)
	if err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	if got != subject {
		t.Fatalf("subject mismatch: got %s want %s", got, subject)
	}
}
