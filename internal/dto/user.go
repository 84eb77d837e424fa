package dto

import (
	"github.com/annorax/sleek-travel-backend/internal/domain"
)

// SafeUser is the public-safe projection of a user record. It is built by
// direct field copy so the permitted fields are a static contract; password,
// OTP state and verification timestamps never leave the core.
type SafeUser struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	Role        domain.Role `json:"role"`
}

func NewSafeUser(u *domain.User) *SafeUser {
	if u == nil {
		return nil
	}
	return &SafeUser{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}
}
