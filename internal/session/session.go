// Package session issues and verifies the signed handle that proves a
// login. Tokens are HS256 JWTs carrying the username; the game service
// refuses any command whose token does not verify.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/redline/internal/common"
)

// Session binds an authenticated username to a signed, expiring token.
type Session struct {
	ID        string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Token     string
}

// Claims extends the registered JWT claims with the username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Manager mints and verifies session tokens with one shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Issue mints a fresh session for the username, valid from now for the
// configured lifetime.
func (m *Manager) Issue(username string, now time.Time) (*Session, error) {
	id := uuid.NewString()
	expires := now.Add(m.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Username: username,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	return &Session{
		ID:        id,
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: expires,
		Token:     signed,
	}, nil
}

// Verify checks the signature and lifetime of a token and reconstructs
// its session. Expired tokens fail with ErrSessionExpired, everything
// else wrong with them fails with ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (*Session, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || claims.Username == "" {
		return nil, common.ErrInvalidToken
	}

	return &Session{
		ID:        claims.ID,
		Username:  claims.Username,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		Token:     tokenString,
	}, nil
}
