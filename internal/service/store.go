package service

import (
	"time"

	"git.sr.ht/~jakintosh/warrant/internal/database"
)

// UserStore handles persistence of user accounts
type UserStore interface {
	InsertUser(u *database.User) error
	GetUserByEmail(email string) (*database.User, error)
	GetUserByID(id string) (*database.User, error)
	LinkExternalIdentity(userID, googleID, avatar string) error
}

// RefreshStore handles persistence of refresh tokens
type RefreshStore interface {
	InsertRefreshToken(userID, token string, expiresAt time.Time) error
	GetRefreshToken(token string) (*database.RefreshToken, error)
	DeleteRefreshToken(token string) error
	DeleteUserRefreshTokens(userID string) error
}
