package service

import (
	"errors"
	"fmt"
	"time"

	"git.sr.ht/~jakintosh/warrant/internal/database"
)

// RotateAccessToken exchanges a still-valid refresh token for a new access
// token. The presented token must carry a valid, unexpired signature AND a
// live store record whose own expiry has not passed; either check failing
// invalidates the token.
//
// The refresh token itself is not rotated: no replacement is minted and the
// record is not consumed, so two concurrent rotations with the same token
// both succeed. The stale-record case deliberately leaves the row in place.
func (s *Service) RotateAccessToken(
	refreshToken string,
) (
	string,
	error,
) {
	if refreshToken == "" {
		return "", ErrTokenMissing
	}

	userID, err := s.codec.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: couldn't verify refresh token: %v", ErrTokenInvalid, err)
	}

	record, err := s.refresh.GetRefreshToken(refreshToken)
	if errors.Is(err, database.ErrNotFound) {
		return "", fmt.Errorf("%w: refresh token revoked", ErrTokenInvalid)
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to look up refresh token: %v", ErrInternal, err)
	}

	// record expiry is authoritative in addition to signature expiry
	if record.ExpiresAt.Before(time.Now()) {
		return "", fmt.Errorf("%w: refresh token expired", ErrTokenInvalid)
	}

	accessToken, err := s.codec.MintAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("%w: couldn't mint access token: %v", ErrInternal, err)
	}

	return accessToken, nil
}

// RevokeRefreshToken deletes the store record for a presented token.
// Logout always succeeds from the caller's perspective: an absent token is
// a no-op and storage failures are logged, not surfaced.
func (s *Service) RevokeRefreshToken(
	refreshToken string,
) {
	if refreshToken == "" {
		return
	}
	if err := s.refresh.DeleteRefreshToken(refreshToken); err != nil {
		s.log.WithError(err).Warn("failed to delete refresh token during logout")
	}
}

// RevokeAllSessions invalidates every stored refresh token for one user
// ("logout everywhere").
func (s *Service) RevokeAllSessions(
	userID string,
) error {
	if err := s.refresh.DeleteUserRefreshTokens(userID); err != nil {
		return fmt.Errorf("%w: failed to delete refresh tokens: %v", ErrInternal, err)
	}
	return nil
}
