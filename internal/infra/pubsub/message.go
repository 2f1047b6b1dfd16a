package pubsub

import (
	"encoding/json"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage represents the structure of a Pub/Sub push message.
// Both the local publisher and Google push subscriptions deliver this envelope to the worker.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Message attribute keys.
const (
	AttributeJobType   = "job_type"
	AttributeRequestID = "request_id"
)

func encodeJob(job *service.Job) (data []byte, attributes map[string]string, err error) {
	data, err = json.Marshal(job)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes = map[string]string{
		AttributeJobType: string(job.Type),
	}
	if job.RequestID != "" {
		attributes[AttributeRequestID] = job.RequestID
	}

	return data, attributes, nil
}
