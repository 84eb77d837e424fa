package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAlreadyVerified    = errors.New("already verified")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrOtpExpired  = errors.New("otp expired")
	ErrOtpMismatch = errors.New("otp mismatch")

	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")

	// ErrTokenGenerationExhausted signals that the bounded collision-retry
	// loop ran out of attempts. Operationally fatal: it means the RNG or
	// the store is misbehaving, so it should alert rather than be retried.
	ErrTokenGenerationExhausted = errors.New("token generation attempts exhausted")

	// ErrDuplicateKey is the store-level translation of a uniqueness
	// constraint violation.
	ErrDuplicateKey = errors.New("duplicate key")

	ErrRecordNotFound = errors.New("record not found")
)
