package repository

import "recipe-api/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail looks up a user case-insensitively by email address.
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
}

// TokenRepository persists opaque bearer tokens.
type TokenRepository interface {
	Create(t *entity.AuthToken) error
	GetByKey(key string) (*entity.AuthToken, error)
	GetByUser(userID string) (*entity.AuthToken, error)
}
