package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
)

func TestOtpServiceGenerateProducesSixDigits(t *testing.T) {
	svc := NewOtpServiceImpl(newMemUserStore(), &stubNotifier{}, 0)

	for i := 0; i < 50; i++ {
		code, err := svc.Generate()
		if err != nil {
			t.Fatalf("generate returned error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected six digits, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("expected numeric code, got %q", code)
			}
		}
	}
}

func TestOtpServiceIssueStoresAndSendsCode(t *testing.T) {
	users := newMemUserStore()
	notifier := &stubNotifier{}
	svc := NewOtpServiceImpl(users, notifier, 0)
	user := seedUser(t, users)

	if err := svc.Issue(context.Background(), user); err != nil {
		t.Fatalf("issue returned error: %v", err)
	}
	if user.Otp == "" || user.OtpCreatedAt == nil {
		t.Fatalf("issue must refresh the challenge on the passed user: %+v", user)
	}

	stored := users.get(user.ID)
	if stored.Otp != user.Otp {
		t.Fatalf("persisted code %q does not match issued code %q", stored.Otp, user.Otp)
	}
	if len(notifier.sms) != 1 || notifier.sms[0] != user.Otp {
		t.Fatalf("expected the code to be sent over sms, got %v", notifier.sms)
	}
}

func TestOtpServiceIssueOverwritesPreviousCode(t *testing.T) {
	users := newMemUserStore()
	svc := NewOtpServiceImpl(users, &stubNotifier{}, 0)
	user := seedUser(t, users)
	ctx := context.Background()

	if err := svc.Issue(ctx, user); err != nil {
		t.Fatalf("first issue returned error: %v", err)
	}
	first := user.Otp
	if err := svc.Issue(ctx, user); err != nil {
		t.Fatalf("second issue returned error: %v", err)
	}

	if err := svc.Verify(user, user.Otp); err != nil {
		t.Fatalf("latest code must verify: %v", err)
	}
	if first != user.Otp {
		if err := svc.Verify(user, first); !errors.Is(err, domain.ErrOtpMismatch) {
			t.Fatalf("superseded code must mismatch, got %v", err)
		}
	}
}

func TestOtpServiceIssueSurvivesDeliveryFailure(t *testing.T) {
	users := newMemUserStore()
	svc := NewOtpServiceImpl(users, &stubNotifier{failSms: true}, 0)
	user := seedUser(t, users)

	if err := svc.Issue(context.Background(), user); err != nil {
		t.Fatalf("issue must not fail on delivery problems: %v", err)
	}
	if users.get(user.ID).Otp == "" {
		t.Fatalf("code must be stored even when delivery fails")
	}
}

func TestOtpServiceVerify(t *testing.T) {
	svc := NewOtpServiceImpl(newMemUserStore(), &stubNotifier{}, 5*time.Minute)

	fresh := time.Now().UTC().Add(-time.Minute)
	stale := time.Now().UTC().Add(-6 * time.Minute)

	cases := []struct {
		name     string
		otp      string
		issuedAt *time.Time
		supplied string
		want     error
	}{
		{name: "match", otp: "123456", issuedAt: &fresh, supplied: "123456", want: nil},
		{name: "wrong code", otp: "123456", issuedAt: &fresh, supplied: "654321", want: domain.ErrOtpMismatch},
		{name: "expired", otp: "123456", issuedAt: &stale, supplied: "123456", want: domain.ErrOtpExpired},
		{name: "never issued", otp: "", issuedAt: nil, supplied: "123456", want: domain.ErrOtpMismatch},
		{name: "missing timestamp", otp: "123456", issuedAt: nil, supplied: "123456", want: domain.ErrOtpMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := &domain.User{Otp: tc.otp, OtpCreatedAt: tc.issuedAt}
			if err := svc.Verify(user, tc.supplied); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
