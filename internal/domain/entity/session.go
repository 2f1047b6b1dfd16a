package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated bearer session created by a successful login.
// Only the hash of the token is ever persisted; the raw token is handed to the client once.
type Session struct {
	TokenHash string    // SHA-256 hash of the opaque bearer token.
	UserID    uuid.UUID // The user this session authenticates.
	ExpiresAt time.Time // Fixed expiry; sessions are never extended.
	CreatedAt time.Time // Timestamp of the login that created the session.
}

// IsExpired reports whether the session is no longer usable at the given instant.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Principal is the identity resolved from a valid session token.
type Principal struct {
	Token string
	User  *User
}

// UserID returns the ID of the authenticated user, or uuid.Nil for a nil principal.
func (p *Principal) UserID() uuid.UUID {
	if p == nil || p.User == nil {
		return uuid.Nil
	}

	return p.User.ID
}
