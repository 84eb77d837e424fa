package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/annorax/sleek-travel-backend/internal/service"
)

var otpCodeSpace = big.NewInt(1_000_000)

type OtpServiceImpl struct {
	Users    userStore
	Notifier service.NotificationService
	Window   time.Duration
}

func NewOtpServiceImpl(users userStore, notifier service.NotificationService, window time.Duration) *OtpServiceImpl {
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &OtpServiceImpl{Users: users, Notifier: notifier, Window: window}
}

// Generate draws uniformly from [0, 1e6) and zero-pads to six digits.
func (o *OtpServiceImpl) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Issue overwrites the user's challenge and dispatches it over SMS. The
// dispatch is best-effort: a delivery failure is logged and the new code
// stays valid.
func (o *OtpServiceImpl) Issue(ctx context.Context, user *domain.User) error {
	code, err := o.Generate()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if err := o.Users.SetOtp(ctx, user.ID, code, now); err != nil {
		return err
	}
	user.Otp = code
	user.OtpCreatedAt = &now

	if err := o.Notifier.SendSmsOtp(ctx, user, code); err != nil {
		slog.Warn("otp sms dispatch failed", "user_id", user.ID, "error", err)
	}
	return nil
}

func (o *OtpServiceImpl) Verify(user *domain.User, suppliedCode string) error {
	if user.Otp == "" || user.OtpCreatedAt == nil {
		return domain.ErrOtpMismatch
	}
	if time.Since(*user.OtpCreatedAt) > o.Window {
		return domain.ErrOtpExpired
	}
	if user.Otp != suppliedCode {
		return domain.ErrOtpMismatch
	}
	return nil
}
