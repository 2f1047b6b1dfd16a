package repository

import (
	"context"
	"errors"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFileNotFound is returned when a file or folder is not found.
var ErrFileNotFound = errors.New("file not found")

// FileRepository defines the persistence operations for file tree nodes.
type FileRepository interface {
	// Create persists a new node and fills its generated fields.
	Create(ctx context.Context, file *entity.File) error

	// FindByID retrieves a node by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error)

	// ListByOwnerAndParent returns one page of the owner's nodes placed directly under parentID
	// (nil for the root), ordered by creation time.
	ListByOwnerAndParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID, offset, limit int) ([]*entity.File, error)

	// SetPublic flips the visibility flag of a node and returns the updated node.
	SetPublic(ctx context.Context, id uuid.UUID, isPublic bool) (*entity.File, error)

	// Count returns the number of stored nodes.
	Count(ctx context.Context) (int64, error)
}
