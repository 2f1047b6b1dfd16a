package repository

import (
	"context"
	"errors"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session matches a token hash.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the expiring key-value store behind bearer sessions.
// Every operation is a single atomic per-key round trip.
type SessionRepository interface {
	// Create stores a new session keyed by its token hash.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session. Implementations may already drop expired entries.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session. Removing an absent session is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes every session expired at the given instant and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
