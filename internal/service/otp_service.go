package service

import (
	"context"

	"github.com/annorax/sleek-travel-backend/internal/domain"
)

// OtpService manages short numeric one-time codes for phone possession
// proof. A user has at most one outstanding challenge; issuing again
// supersedes the previous code.
type OtpService interface {
	// Generate draws a code uniformly from [0, 1e6), zero-padded to six
	// digits.
	Generate() (string, error)

	// Issue regenerates the user's challenge, persists it and dispatches
	// it over SMS. SMS failure is logged, not returned.
	Issue(ctx context.Context, user *domain.User) error

	// Verify checks the supplied code against the user's challenge:
	// domain.ErrOtpExpired past the validity window, domain.ErrOtpMismatch
	// on a wrong code. Verification does not clear the code; the caller
	// flips the phone-verified fact through a conditional update.
	Verify(user *domain.User, suppliedCode string) error
}
