package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// User is a stored account record. PasswordHash is nil for accounts that
// only authenticate through an external identity provider; GoogleID is
// empty until an external identity is linked.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	GoogleID     string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s *SQLiteStore) InsertUser(u *User) error {
	now := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO users (id, name, email, password_hash, google_id, avatar, created_at, updated_at)
		VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?7);`,
		u.ID,
		u.Name,
		strings.ToLower(u.Email),
		u.PasswordHash,
		nullable(u.GoogleID),
		nullable(u.Avatar),
		now.Unix(),
	)
	if err != nil {
		return fmt.Errorf("couldn't insert into users: %w", err)
	}
	u.Email = strings.ToLower(u.Email)
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (s *SQLiteStore) GetUserByEmail(
	email string,
) (
	*User,
	error,
) {
	row := s.db.QueryRow(`
		SELECT id, name, email, password_hash, google_id, avatar, created_at, updated_at
		FROM users
		WHERE email=?1;`,
		strings.ToLower(email),
	)
	return scanUser(row)
}

func (s *SQLiteStore) GetUserByID(
	id string,
) (
	*User,
	error,
) {
	row := s.db.QueryRow(`
		SELECT id, name, email, password_hash, google_id, avatar, created_at, updated_at
		FROM users
		WHERE id=?1;`,
		id,
	)
	return scanUser(row)
}

// LinkExternalIdentity backfills the google id and avatar on an existing
// account. Empty arguments leave the stored value untouched.
func (s *SQLiteStore) LinkExternalIdentity(
	userID string,
	googleID string,
	avatar string,
) error {
	_, err := s.db.Exec(`
		UPDATE users
		SET google_id  = COALESCE(NULLIF(?2, ''), google_id),
		    avatar     = COALESCE(NULLIF(?3, ''), avatar),
		    updated_at = ?4
		WHERE id=?1;`,
		userID,
		googleID,
		avatar,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("couldn't update users: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (*User, error) {
	var (
		u         User
		googleID  sql.NullString
		avatar    sql.NullString
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&googleID,
		&avatar,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't scan user: %w", err)
	}
	u.GoogleID = googleID.String
	u.Avatar = avatar.String
	u.CreatedAt = time.Unix(createdAt, 0)
	u.UpdatedAt = time.Unix(updatedAt, 0)
	return &u, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
