package entity

import (
	"time"
)

// User is the aggregate root for the identity domain.
// Password holds a bcrypt hash, never the plaintext value.
type User struct {
	ID          string
	Email       string
	Password    string
	Name        string
	IsActive    bool
	IsStaff     bool
	IsSuperuser bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AuthToken is an opaque bearer credential tied to exactly one user.
// A user keeps a single token that is reused across logins.
type AuthToken struct {
	Key       string
	UserID    string
	CreatedAt time.Time
}
