package store

import (
	"context"
	"strings"
	"time"

	"github.com/annorax/sleek-travel-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStore struct{ db *gorm.DB }

func (s *Store) Users() *UserStore { return &UserStore{db: s.DB} }

func (u *UserStore) Create(ctx context.Context, usr *domain.User) error {
	if usr.ID == uuid.Nil {
		usr.ID = uuid.New()
	}
	usr.Email = strings.ToLower(usr.Email)
	return translate(u.db.WithContext(ctx).Create(usr).Error)
}

func (u *UserStore) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (u *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (u *UserStore) GetByPhoneNumber(ctx context.Context, phone string) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "phone_number = ?", phone).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetByEmailOrPhone resolves a login identifier: anything containing "@" is
// treated as an email address, everything else as a phone number.
func (u *UserStore) GetByEmailOrPhone(ctx context.Context, identifier string) (*domain.User, error) {
	if strings.ContainsRune(identifier, '@') {
		return u.GetByEmail(ctx, identifier)
	}
	return u.GetByPhoneNumber(ctx, identifier)
}

func (u *UserStore) UpdatePassword(ctx context.Context, userID domain.UserID, storedForm string) error {
	return translate(u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"password": storedForm, "updated_at": time.Now().UTC()}).Error)
}

// SetOtp overwrites the user's outstanding OTP challenge. At most one
// challenge is active per user at any time.
func (u *UserStore) SetOtp(ctx context.Context, userID domain.UserID, code string, at time.Time) error {
	tx := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"otp": code, "otp_created_at": at, "updated_at": at})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// SetEmailVerified flips the email verification timestamp exactly once.
// The prior-null guard makes concurrent double-verification impossible:
// only one update can touch the row, every later attempt affects zero rows.
func (u *UserStore) SetEmailVerified(ctx context.Context, userID domain.UserID, at time.Time) (int64, error) {
	tx := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND email_verified IS NULL", userID).
		Updates(map[string]any{"email_verified": at, "updated_at": at})
	return tx.RowsAffected, translate(tx.Error)
}

// SetPhoneNumberVerified mirrors SetEmailVerified for the phone channel.
func (u *UserStore) SetPhoneNumberVerified(ctx context.Context, userID domain.UserID, at time.Time) (int64, error) {
	tx := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND phone_number_verified IS NULL", userID).
		Updates(map[string]any{"phone_number_verified": at, "updated_at": at})
	return tx.RowsAffected, translate(tx.Error)
}
