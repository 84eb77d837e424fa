package domain

import "time"

type User struct {
	ID          UserID `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Name        string `gorm:"type:text;not null" db:"name" json:"name"`
	Email       string `gorm:"type:citext;uniqueIndex:ux_users_email" db:"email" json:"email"`
	PhoneNumber string `gorm:"type:text;uniqueIndex:ux_users_phone" db:"phone_number" json:"phoneNumber"`

	// Password holds the stored hash form (derived key + salt), never the
	// plaintext. Stripped from every outbound payload via dto.SafeUser.
	Password string `gorm:"type:text;not null" db:"password" json:"-"`

	Role Role `gorm:"type:text;not null;default:'NORMAL'" db:"role" json:"role"`

	// One outstanding OTP challenge per user; overwritten on every resend.
	Otp          string     `gorm:"type:text" db:"otp" json:"-"`
	OtpCreatedAt *time.Time `db:"otp_created_at" json:"-"`

	// Verification timestamps are monotonic: null until the single
	// successful verification, never reset afterwards.
	EmailVerified       *time.Time `db:"email_verified" json:"-"`
	PhoneNumberVerified *time.Time `db:"phone_number_verified" json:"-"`

	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" db:"updated_at" json:"updatedAt"`
}

func (User) TableName() string { return "users" }
