// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

// Session is a server-side login created by the OAuth exchange. Only the
// SHA-256 of the opaque token is stored.
type Session struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func (s *Session) IsExpiredAt(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// UserInfo is the slice of a user record the auth flows need.
type UserInfo struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Picture      string
	Role         string
	Division     string
	Region       string
	CreatedAt    time.Time
}

type NewUser struct {
	Email        string
	Name         string
	PasswordHash string
	Picture      string
	Role         string
}
