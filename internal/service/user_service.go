package service

import (
	"context"

	"github.com/annorax/sleek-travel-backend/internal/dto"
)

// UserService exposes the account operations consumed by the API layer.
// Every method returns either a payload or a sentinel error from
// internal/domain; nothing panics across this boundary. User-safe message
// translation happens in the transport.
type UserService interface {
	RegisterUser(ctx context.Context, r dto.RegisterUserRequest, ipAddress string) (*dto.LogInPayload, error)
	LogInUser(ctx context.Context, r dto.LogInUserRequest, ipAddress string) (*dto.LogInPayload, error)
	LogOutUser(ctx context.Context, tokenValue string) error
	ValidateToken(ctx context.Context, tokenValue string) (*dto.LogInPayload, error)
	ResendEmailVerificationRequest(ctx context.Context, email string) error
	ResendPhoneNumberVerificationRequest(ctx context.Context, phoneNumber string) error
	VerifyEmailAddress(ctx context.Context, token string) error
	VerifyPhoneNumber(ctx context.Context, r dto.VerifyPhoneNumberRequest) error
	SendPasswordResetLink(ctx context.Context, emailOrPhone string) error
	ResetPassword(ctx context.Context, r dto.ResetPasswordRequest) error
}
