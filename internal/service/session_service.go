package service

import (
	"context"

	"github.com/annorax/sleek-travel-backend/internal/domain"
)

// SessionService issues random opaque session tokens backed by the store,
// tracks revocation and records login events. It is the single source of
// truth for "is this bearer token currently valid".
type SessionService interface {
	// Create issues a fresh token for the user and appends a login record.
	// explicit distinguishes a user-initiated login from a silent rotation.
	// Fails with domain.ErrTokenGenerationExhausted after bounded
	// collision retries.
	Create(ctx context.Context, userID domain.UserID, ipAddress string, explicit bool) (string, error)

	// Resolve returns the user behind an active token, or (nil, nil) when
	// the token is absent or retired.
	Resolve(ctx context.Context, tokenValue string) (*domain.User, error)

	// Revoke retires a token. Idempotent.
	Revoke(ctx context.Context, tokenValue string) error

	// Rotate validates the old token, creates a replacement (non-explicit)
	// and only then retires the old one, so a crash in between never
	// leaves the user with zero valid tokens.
	Rotate(ctx context.Context, oldTokenValue string) (string, error)
}
