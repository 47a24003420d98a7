// Package tokens mints and verifies the signed bearer tokens issued by the
// server. Access and refresh tokens are signed with independent HMAC secrets
// so a token from one domain never verifies in the other.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

type claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Codec signs and verifies access and refresh tokens.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewCodec(
	accessSecret string,
	refreshSecret string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) (*Codec, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, fmt.Errorf("both signing secrets are required")
	}
	if refreshTTL <= accessTTL {
		return nil, fmt.Errorf("refresh TTL (%v) must exceed access TTL (%v)", refreshTTL, accessTTL)
	}
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// RefreshTTL returns the configured refresh token lifetime. The store record
// written at issuance uses the same value so both expiries stay consistent.
func (c *Codec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

func (c *Codec) mint(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	return token.SignedString(secret)
}

func (c *Codec) verify(tokenStr string, secret []byte) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	parsedClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if parsedClaims.UserID == "" {
		return "", fmt.Errorf("%w: missing subject id", ErrInvalidToken)
	}
	return parsedClaims.UserID, nil
}
