package service

import (
	"context"

	"github.com/annorax/sleek-travel-backend/internal/domain"
)

// NotificationService is the outbound boundary for email and SMS delivery.
// Callers treat every method as best-effort: failures are logged and never
// fail the enclosing mutation.
type NotificationService interface {
	SendEmailVerification(ctx context.Context, user *domain.User, link string) error
	SendEmailPasswordReset(ctx context.Context, user *domain.User, link string) error
	SendSmsOtp(ctx context.Context, user *domain.User, code string) error
	SendSmsPasswordReset(ctx context.Context, user *domain.User, link string) error
}
