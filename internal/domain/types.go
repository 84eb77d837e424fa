package domain

import "github.com/google/uuid"

type UserID = uuid.UUID
type LoginID = uuid.UUID

// Role mirrors the API-level role enum. Roles are assigned at registration
// and immutable within this subsystem.
type Role string

const (
	RoleNormal Role = "NORMAL"
	RoleAdmin  Role = "ADMIN"
)

func (r Role) Valid() bool { return r == RoleNormal || r == RoleAdmin }
