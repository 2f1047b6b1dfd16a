package usecase

import (
	"context"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadInput is the data of a new file tree node.
type UploadInput struct {
	Name     string
	Type     string
	ParentID *uuid.UUID // nil places the node at the root
	IsPublic bool
	Data     string // base64 encoded content, ignored for folders
}

// FileContent is the payload of a content read.
type FileContent struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileUsecase orchestrates uploads and reads of file tree nodes.
// Every operation except Content is restricted to the node's owner and reports
// any other node as not found.
type FileUsecase interface {
	// Upload validates and stores a new node.
	Upload(ctx context.Context, ownerID uuid.UUID, input *UploadInput) (*entity.File, error)

	// Show returns one node.
	Show(ctx context.Context, userID, fileID uuid.UUID) (*entity.File, error)

	// List returns one page of the user's nodes directly under parentID.
	List(ctx context.Context, userID uuid.UUID, parentID *uuid.UUID, page int) ([]*entity.File, error)

	// Publish makes a node's content readable by anyone.
	Publish(ctx context.Context, userID, fileID uuid.UUID) (*entity.File, error)

	// Unpublish restricts a node's content to its owner.
	Unpublish(ctx context.Context, userID, fileID uuid.UUID) (*entity.File, error)

	// Content reads a node's bytes, or those of a thumbnail when size is positive.
	// userID is uuid.Nil for anonymous reads.
	Content(ctx context.Context, userID, fileID uuid.UUID, size int) (*FileContent, error)
}
