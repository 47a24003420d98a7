package service

import (
	"errors"
	"fmt"

	"git.sr.ht/~jakintosh/warrant/internal/database"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates a password credential and issues a token pair.
//
// Unknown email, wrong password, and provider-only accounts (no stored
// hash) all fail with the same ErrInvalidCredentials; callers must not be
// able to tell which case occurred.
func (s *Service) Login(
	email string,
	password string,
) (
	*database.User,
	*TokenPair,
	error,
) {
	user, err := s.users.GetUserByEmail(email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to retrieve user: %v", ErrInternal, err)
	}

	if user.PasswordHash == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("%w: password comparison failed: %v", ErrInternal, err)
	}

	pair, err := s.IssueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, pair, nil
}

// AuthenticateAccessToken verifies an access token and confirms the subject
// still exists. Store failures during the existence check surface as errors,
// never as a pass-through: authentication fails closed.
func (s *Service) AuthenticateAccessToken(
	accessToken string,
) (
	string,
	error,
) {
	if accessToken == "" {
		return "", ErrTokenMissing
	}

	userID, err := s.codec.VerifyAccessToken(accessToken)
	if err != nil {
		return "", fmt.Errorf("%w: couldn't verify access token: %v", ErrTokenInvalid, err)
	}

	if _, err := s.GetUser(userID); err != nil {
		return "", err
	}

	return userID, nil
}

// GetUser loads a user by id, mapping a missing row to ErrUserNotFound.
func (s *Service) GetUser(
	userID string,
) (
	*database.User,
	error,
) {
	user, err := s.users.GetUserByID(userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to retrieve user: %v", ErrInternal, err)
	}
	return user, nil
}
