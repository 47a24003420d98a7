package service

import (
	"errors"
	"fmt"

	"git.sr.ht/~jakintosh/warrant/internal/database"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a password-credentialed account and issues its first
// token pair.
func (s *Service) Register(
	name string,
	email string,
	password string,
) (
	*database.User,
	*TokenPair,
	error,
) {
	_, err := s.users.GetUserByEmail(email)
	if err == nil {
		return nil, nil, ErrEmailExists
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, nil, fmt.Errorf("%w: failed to check existing email: %v", ErrInternal, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordMode.Cost())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	user := &database.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.InsertUser(user); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to insert user: %v", ErrInternal, err)
	}

	pair, err := s.IssueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.log.WithField("user", user.ID).Info("registered new account")
	return user, pair, nil
}
