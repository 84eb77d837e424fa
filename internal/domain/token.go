package domain

import "time"

// AccessToken is an opaque bearer credential: a random value with no
// decodable content, valid only by store lookup. A token is either active
// or retired (Expired=true); retired tokens never transition back.
type AccessToken struct {
	Value     string    `gorm:"type:text;primaryKey" db:"value" json:"value"`
	UserID    UserID    `gorm:"type:uuid;index;not null" db:"user_id" json:"userId"`
	Expired   bool      `gorm:"not null;default:false" db:"expired" json:"expired"`
	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (AccessToken) TableName() string { return "access_tokens" }

// Login is an append-only audit record, one per successful login or token
// rotation. Explicit distinguishes a user-initiated login from a silent
// refresh.
type Login struct {
	ID         LoginID   `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	UserID     UserID    `gorm:"type:uuid;index;not null" db:"user_id" json:"userId"`
	TokenValue string    `gorm:"type:text;not null" db:"token_value" json:"tokenValue"`
	IPAddress  string    `gorm:"type:text" db:"ip_address" json:"ipAddress,omitempty"`
	Explicit   bool      `gorm:"not null;default:true" db:"explicit" json:"explicit"`
	CreatedAt  time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (Login) TableName() string { return "logins" }
