package usecase

import (
	"context"

	"github.com/google/uuid"
)

// JobUsecase runs the background jobs consumed by the worker.
// Errors carrying a 4xx domain code are permanent; any other error may be retried.
type JobUsecase interface {
	// GenerateThumbnails writes the resized variants of an uploaded image.
	GenerateThumbnails(ctx context.Context, fileID, userID uuid.UUID) error

	// Welcome greets a newly registered user.
	Welcome(ctx context.Context, userID uuid.UUID) error
}
