// Package service implements the business logic layer for the warrant
// credential server. It handles registration, password and external-identity
// authentication, and the refresh token lifecycle.
package service

import (
	"errors"
	"testing"

	"git.sr.ht/~jakintosh/warrant/internal/tokens"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenMissing       = errors.New("token missing")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrInternal           = errors.New("internal error")
)

// PasswordMode controls bcrypt cost for password hashing.
// Use PasswordModeProduction for real deployments and PasswordModeTesting only in tests.
type PasswordMode int

const (
	// PasswordModeProduction hashes at cost 12.
	PasswordModeProduction PasswordMode = iota
	// PasswordModeTesting uses bcrypt.MinCost for fast test execution.
	// Panics if used outside of go test.
	PasswordModeTesting
)

const productionCost = 12

// Cost returns the bcrypt cost for this mode.
func (m PasswordMode) Cost() int {
	switch m {
	case PasswordModeTesting:
		if !testing.Testing() {
			panic("service: PasswordModeTesting used outside of test environment")
		}
		return bcrypt.MinCost
	default:
		return productionCost
	}
}

// Service coordinates authentication, registration, and token lifecycle
// operations. It depends on storage interfaces (UserStore, RefreshStore)
// and delegates to them for persistence.
type Service struct {
	users        UserStore
	refresh      RefreshStore
	codec        *tokens.Codec
	passwordMode PasswordMode
	log          logrus.FieldLogger
}

func New(
	users UserStore,
	refresh RefreshStore,
	codec *tokens.Codec,
	passwordMode PasswordMode,
	log logrus.FieldLogger,
) *Service {
	return &Service{
		users:        users,
		refresh:      refresh,
		codec:        codec,
		passwordMode: passwordMode,
		log:          log,
	}
}
