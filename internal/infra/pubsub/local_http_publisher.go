package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localDeliveryTimeout = 30 * time.Second

// localHTTPPublisher implements JobSubmitter by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development.
// Deliveries run in the background so Submit never waits for the job to finish.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	inflight   sync.WaitGroup
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.JobSubmitter {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: localDeliveryTimeout,
		},
		logger: logger,
	}
}

// Submit builds the push envelope and delivers it asynchronously.
func (p *localHTTPPublisher) Submit(ctx context.Context, job *service.Job) error {
	data, attributes, err := encodeJob(job)
	if err != nil {
		return err
	}

	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/jobs-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing job",
		slog.String("endpoint", p.endpoint),
		slog.String("job_type", string(job.Type)),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	deliveryCtx := context.WithoutCancel(ctx)
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()

		if err := p.deliver(deliveryCtx, body, job.RequestID); err != nil {
			p.logger.Error("[LocalPubSub] Job delivery failed",
				slog.String("job_type", string(job.Type)),
				slog.String("message_id", pushMsg.Message.MessageID),
				slog.Any("error", err),
			)

			return
		}

		p.logger.Info("[LocalPubSub] Job delivered",
			slog.String("message_id", pushMsg.Message.MessageID),
		)
	}()

	return nil
}

func (p *localHTTPPublisher) deliver(ctx context.Context, body []byte, requestID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Close waits for in-flight deliveries.
func (p *localHTTPPublisher) Close() error {
	p.inflight.Wait()

	return nil
}
