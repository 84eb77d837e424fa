package service

import (
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
)

// SignedTokenService creates and verifies compact, symmetrically-signed,
// time-bound tokens carrying a subject id. Purely stateless: validity is
// cryptographic plus clock, with no store lookup, so these tokens are never
// the authority for anything revocable (see SessionService for that).
type SignedTokenService interface {
	// Issue signs a token for the subject. ttl <= 0 issues a token with no
	// expiry.
	Issue(subject domain.UserID, ttl time.Duration) (string, error)

	// Verify returns the subject id, or one of domain.ErrTokenSignature,
	// domain.ErrTokenExpired, domain.ErrTokenMalformed.
	Verify(token string) (domain.UserID, error)
}
