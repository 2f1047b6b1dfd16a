package usecase

import (
	"context"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"
)

// Credentials are the email and password presented at login.
type Credentials struct {
	Email    string
	Password string
}

// AuthUsecase manages the lifecycle of bearer sessions.
type AuthUsecase interface {
	// CreateSession verifies the credentials and issues a new session token.
	CreateSession(ctx context.Context, credentials *Credentials) (string, error)

	// ResolveSession returns the principal behind a token.
	// Absent, expired and orphaned tokens all fail with ErrUnauthorized.
	ResolveSession(ctx context.Context, token string) (*entity.Principal, error)

	// RevokeSession ends the session behind a token. An unknown token fails with ErrUnauthorized.
	RevokeSession(ctx context.Context, token string) error

	// CleanupExpiredSessions purges expired sessions and returns how many were removed.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
