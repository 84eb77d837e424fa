package impl

import (
	"context"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/annorax/sleek-travel-backend/internal/store"
)

// Narrow store contracts consumed by the services. The gorm store satisfies
// them directly; tests substitute in-memory fakes.

type userStore interface {
	Create(ctx context.Context, usr *domain.User) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhoneNumber(ctx context.Context, phone string) (*domain.User, error)
	GetByEmailOrPhone(ctx context.Context, identifier string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID domain.UserID, storedForm string) error
	SetOtp(ctx context.Context, userID domain.UserID, code string, at time.Time) error
	SetEmailVerified(ctx context.Context, userID domain.UserID, at time.Time) (int64, error)
	SetPhoneNumberVerified(ctx context.Context, userID domain.UserID, at time.Time) (int64, error)
}

type tokenStore interface {
	Create(ctx context.Context, tok *domain.AccessToken) error
	GetByValue(ctx context.Context, value string) (*domain.AccessToken, error)
	Expire(ctx context.Context, value string) error
}

type loginStore interface {
	Create(ctx context.Context, l *domain.Login) error
}

var (
	_ userStore  = (*store.UserStore)(nil)
	_ tokenStore = (*store.TokenStore)(nil)
	_ loginStore = (*store.LoginStore)(nil)
)
