package notify

import (
	"context"
	"fmt"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/annorax/sleek-travel-backend/internal/observability/metrics"
	"github.com/annorax/sleek-travel-backend/internal/service"
)

// Dispatcher implements service.NotificationService over the SMTP mailer
// and the Twilio SMS sender. Callers treat every send as best-effort;
// the dispatcher only reports, it never retries.
type Dispatcher struct {
	mail *Mailer
	sms  *SmsSender
}

var _ service.NotificationService = (*Dispatcher)(nil)

func NewDispatcher(mail *Mailer, sms *SmsSender) *Dispatcher {
	return &Dispatcher{mail: mail, sms: sms}
}

func (d *Dispatcher) SendEmailVerification(_ context.Context, user *domain.User, link string) error {
	err := d.mail.send(user.Email, user.Name, "Account Activation",
		fmt.Sprintf("Simply visit %s to verify your email address and activate your account.", link),
		fmt.Sprintf(`Simply click <a href="%s">this link</a> to verify your email address and activate your account.`, link),
	)
	count("email_verification", err)
	return err
}

func (d *Dispatcher) SendEmailPasswordReset(_ context.Context, user *domain.User, link string) error {
	err := d.mail.send(user.Email, user.Name, "Password Reset",
		fmt.Sprintf("Visit %s to choose a new password. If you did not request this, ignore this message.", link),
		fmt.Sprintf(`Click <a href="%s">this link</a> to choose a new password. If you did not request this, ignore this message.`, link),
	)
	count("email_password_reset", err)
	return err
}

func (d *Dispatcher) SendSmsOtp(_ context.Context, user *domain.User, code string) error {
	err := d.sms.send(user.PhoneNumber, fmt.Sprintf("Your verification code is %s.", code))
	count("sms_otp", err)
	return err
}

func (d *Dispatcher) SendSmsPasswordReset(_ context.Context, user *domain.User, link string) error {
	err := d.sms.send(user.PhoneNumber, fmt.Sprintf("Visit %s to choose a new password.", link))
	count("sms_password_reset", err)
	return err
}

func count(channel string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.NotificationsTotal.WithLabelValues(channel, result).Inc()
}
