package service

import (
	"fmt"
	"time"
)

// TokenPair is the result of a successful issuance.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// IssueTokens mints a fresh access/refresh pair for a user and persists the
// refresh token. Every call creates a brand-new, independently revocable
// pair; concurrent sessions for one user are all live at once.
//
// The store write happens before the caller may emit any transport cookie,
// so a persistence failure never leaves a cookie pointing at an unrecorded
// token.
func (s *Service) IssueTokens(
	userID string,
) (
	*TokenPair,
	error,
) {
	accessToken, err := s.codec.MintAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't mint access token: %v", ErrInternal, err)
	}

	refreshToken, err := s.codec.MintRefreshToken(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't mint refresh token: %v", ErrInternal, err)
	}

	expiresAt := time.Now().Add(s.codec.RefreshTTL())
	if err := s.refresh.InsertRefreshToken(userID, refreshToken, expiresAt); err != nil {
		return nil, fmt.Errorf("%w: failed to store refresh token: %v", ErrInternal, err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
