package service

import (
	"context"

	"github.com/google/uuid"
)

// JobType names a background job handled by the worker.
type JobType string

const (
	// JobTypeThumbnail generates resized variants of an uploaded image.
	JobTypeThumbnail JobType = "thumbnail"

	// JobTypeWelcome greets a newly registered user.
	JobTypeWelcome JobType = "welcome"
)

// Job is the payload published to the worker.
type Job struct {
	Type      JobType   `json:"type"`
	RequestID string    `json:"request_id,omitempty"` // Request ID for distributed tracing
	FileID    uuid.UUID `json:"file_id,omitzero"`
	UserID    uuid.UUID `json:"user_id,omitzero"`
}

// JobSubmitter hands jobs to the asynchronous worker.
// Submission does not wait for the job to run.
type JobSubmitter interface {
	// Submit publishes a job.
	Submit(ctx context.Context, job *Job) error

	// Close releases any resources held by the submitter.
	Close() error
}
