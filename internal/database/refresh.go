package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RefreshToken is a stored refresh token record. The token value is the
// unique key; rotation never mutates a record in place.
type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s *SQLiteStore) InsertRefreshToken(
	userID string,
	token string,
	expiresAt time.Time,
) error {
	_, err := s.db.Exec(`
		INSERT INTO refresh_tokens (token, user_id, expires_at, created_at)
		VALUES (?1, ?2, ?3, ?4);`,
		token,
		userID,
		expiresAt.Unix(),
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("couldn't insert into refresh_tokens: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetRefreshToken(
	token string,
) (
	*RefreshToken,
	error,
) {
	row := s.db.QueryRow(`
		SELECT token, user_id, expires_at, created_at
		FROM refresh_tokens
		WHERE token=?1;`,
		token,
	)

	var (
		record    RefreshToken
		expiresAt int64
		createdAt int64
	)
	err := row.Scan(&record.Token, &record.UserID, &expiresAt, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't scan refresh token: %w", err)
	}
	record.ExpiresAt = time.Unix(expiresAt, 0)
	record.CreatedAt = time.Unix(createdAt, 0)
	return &record, nil
}

// DeleteRefreshToken removes a stored token. Deleting a token that is
// already gone is a no-op success.
func (s *SQLiteStore) DeleteRefreshToken(
	token string,
) error {
	_, err := s.db.Exec(`
		DELETE FROM refresh_tokens
		WHERE token=?1;`,
		token,
	)
	if err != nil {
		return fmt.Errorf("couldn't delete from refresh_tokens: %w", err)
	}
	return nil
}

// DeleteUserRefreshTokens invalidates every stored token for one user.
func (s *SQLiteStore) DeleteUserRefreshTokens(
	userID string,
) error {
	_, err := s.db.Exec(`
		DELETE FROM refresh_tokens
		WHERE user_id=?1;`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("couldn't delete from refresh_tokens: %w", err)
	}
	return nil
}
