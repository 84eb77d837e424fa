package impl

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/annorax/sleek-travel-backend/internal/dto"
	"github.com/annorax/sleek-travel-backend/internal/observability/metrics"
	"github.com/annorax/sleek-travel-backend/internal/service"
	"github.com/google/uuid"
)

type UserServiceImpl struct {
	Users      userStore
	Sessions   service.SessionService
	Passwords  service.PasswordService
	Otp        service.OtpService
	Notifier   service.NotificationService

	// Two token classes, two independent secrets: verification links and
	// password-reset links. Leaking one class cannot forge the other.
	LinkTokens  service.SignedTokenService
	ResetTokens service.SignedTokenService

	ClientBaseURL string
	LinkTTL       time.Duration
}

func NewUserServiceImpl(
	users userStore,
	sessions service.SessionService,
	passwords service.PasswordService,
	linkTokens service.SignedTokenService,
	resetTokens service.SignedTokenService,
	otp service.OtpService,
	notifier service.NotificationService,
	clientBaseURL string,
	linkTTL time.Duration,
) *UserServiceImpl {
	return &UserServiceImpl{
		Users:         users,
		Sessions:      sessions,
		Passwords:     passwords,
		LinkTokens:    linkTokens,
		ResetTokens:   resetTokens,
		Otp:           otp,
		Notifier:      notifier,
		ClientBaseURL: strings.TrimRight(clientBaseURL, "/"),
		LinkTTL:       linkTTL,
	}
}

func (s *UserServiceImpl) RegisterUser(ctx context.Context, r dto.RegisterUserRequest, ipAddress string) (*dto.LogInPayload, error) {
	if r.Name == "" || r.PhoneNumber == "" || r.Email == "" || r.Password == "" {
		return nil, ErrEmptyCredential
	}
	if len(r.Password) < 8 {
		return nil, ErrPasswordLength
	}

	storedForm, err := s.Passwords.Hash(r.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	code, err := s.Otp.Generate()
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New(),
		Name:         r.Name,
		PhoneNumber:  r.PhoneNumber,
		Email:        strings.ToLower(r.Email),
		Password:     storedForm,
		Role:         domain.RoleNormal,
		Otp:          code,
		OtpCreatedAt: &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	token, err := s.Sessions.Create(ctx, user.ID, ipAddress, true)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	// Both notifications are best-effort. Registration succeeds regardless;
	// undelivered channels are reported back as a non-fatal warning.
	var failed []string
	if err := s.sendEmailVerification(ctx, user); err != nil {
		slog.Warn("email verification dispatch failed", "user_id", user.ID, "error", err)
		failed = append(failed, "email verification")
	}
	if err := s.Notifier.SendSmsOtp(ctx, user, code); err != nil {
		slog.Warn("otp sms dispatch failed", "user_id", user.ID, "error", err)
		failed = append(failed, "phone OTP")
	}

	payload := &dto.LogInPayload{Token: token, User: dto.NewSafeUser(user)}
	if len(failed) > 0 {
		payload.Error = "Could not deliver: " + strings.Join(failed, ", ") + "."
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return payload, nil
}

func (s *UserServiceImpl) LogInUser(ctx context.Context, r dto.LogInUserRequest, ipAddress string) (*dto.LogInPayload, error) {
	if r.EmailOrPhone == "" || r.Password == "" {
		return nil, ErrEmptyCredential
	}

	// Unknown identifier and wrong password are reported identically so the
	// response does not reveal which accounts exist.
	user, err := s.Users.GetByEmailOrPhone(ctx, r.EmailOrPhone)
	if errors.Is(err, domain.ErrRecordNotFound) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	if !s.Passwords.Verify(user.Password, r.Password) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.Sessions.Create(ctx, user.ID, ipAddress, true)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &dto.LogInPayload{Token: token, User: dto.NewSafeUser(user)}, nil
}

func (s *UserServiceImpl) LogOutUser(ctx context.Context, tokenValue string) error {
	if tokenValue == "" {
		return domain.ErrTokenNotFound
	}
	return s.Sessions.Revoke(ctx, tokenValue)
}

// ValidateToken resolves the presented token and silently rotates it,
// returning the replacement alongside the user view.
func (s *UserServiceImpl) ValidateToken(ctx context.Context, tokenValue string) (*dto.LogInPayload, error) {
	newValue, err := s.Sessions.Rotate(ctx, tokenValue)
	if err != nil {
		return nil, err
	}
	user, err := s.Sessions.Resolve(ctx, newValue)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrTokenNotFound
	}
	return &dto.LogInPayload{Token: newValue, User: dto.NewSafeUser(user)}, nil
}

func (s *UserServiceImpl) ResendEmailVerificationRequest(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmptyCredential
	}
	user, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if err := s.sendEmailVerification(ctx, user); err != nil {
		slog.Warn("email verification dispatch failed", "user_id", user.ID, "error", err)
	}
	return nil
}

func (s *UserServiceImpl) ResendPhoneNumberVerificationRequest(ctx context.Context, phoneNumber string) error {
	if phoneNumber == "" {
		return ErrEmptyCredential
	}
	user, err := s.Users.GetByPhoneNumber(ctx, phoneNumber)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	return s.Otp.Issue(ctx, user)
}

func (s *UserServiceImpl) VerifyEmailAddress(ctx context.Context, token string) error {
	userID, err := s.LinkTokens.Verify(token)
	if err != nil {
		return err
	}
	// The subject must resolve to an existing user; a zero-row conditional
	// update alone cannot distinguish "gone" from "already verified".
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	rows, err := s.Users.SetEmailVerified(ctx, userID, time.Now().UTC())
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAlreadyVerified
	}
	return nil
}

func (s *UserServiceImpl) VerifyPhoneNumber(ctx context.Context, r dto.VerifyPhoneNumberRequest) error {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	user, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if err := s.Otp.Verify(user, r.Otp); err != nil {
		metrics.OtpVerificationsTotal.WithLabelValues("failure").Inc()
		return err
	}
	rows, err := s.Users.SetPhoneNumberVerified(ctx, userID, time.Now().UTC())
	if err != nil {
		return err
	}
	if rows == 0 {
		metrics.OtpVerificationsTotal.WithLabelValues("already_verified").Inc()
		return domain.ErrAlreadyVerified
	}
	metrics.OtpVerificationsTotal.WithLabelValues("success").Inc()
	return nil
}

func (s *UserServiceImpl) SendPasswordResetLink(ctx context.Context, emailOrPhone string) error {
	if emailOrPhone == "" {
		return ErrEmptyCredential
	}
	user, err := s.Users.GetByEmailOrPhone(ctx, emailOrPhone)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	token, err := s.ResetTokens.Issue(user.ID, s.LinkTTL)
	if err != nil {
		return err
	}
	link := s.ClientBaseURL + "/reset-password?token=" + url.QueryEscape(token)

	// Deliver over the channel the caller identified themselves with.
	if strings.ContainsRune(emailOrPhone, '@') {
		if err := s.Notifier.SendEmailPasswordReset(ctx, user, link); err != nil {
			slog.Warn("password reset email dispatch failed", "user_id", user.ID, "error", err)
		}
	} else {
		if err := s.Notifier.SendSmsPasswordReset(ctx, user, link); err != nil {
			slog.Warn("password reset sms dispatch failed", "user_id", user.ID, "error", err)
		}
	}
	return nil
}

func (s *UserServiceImpl) ResetPassword(ctx context.Context, r dto.ResetPasswordRequest) error {
	if len(r.NewPassword) < 8 {
		return ErrPasswordLength
	}
	userID, err := s.ResetTokens.Verify(r.Token)
	if err != nil {
		return err
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	storedForm, err := s.Passwords.Hash(r.NewPassword)
	if err != nil {
		return err
	}
	return s.Users.UpdatePassword(ctx, userID, storedForm)
}

func (s *UserServiceImpl) sendEmailVerification(ctx context.Context, user *domain.User) error {
	token, err := s.LinkTokens.Issue(user.ID, s.LinkTTL)
	if err != nil {
		return err
	}
	link := s.ClientBaseURL + "/verify-email?token=" + url.QueryEscape(token)
	return s.Notifier.SendEmailVerification(ctx, user, link)
}
