package service

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned when no blob is stored under a key.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStorage stores the bytes of uploaded files under opaque keys.
type BlobStorage interface {
	// Put writes data under key, replacing any existing blob.
	Put(ctx context.Context, key string, data []byte) error

	// Get reads the blob stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Exists reports whether a blob is stored under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Ping reports whether the storage backend is accessible.
	Ping(ctx context.Context) error
}
