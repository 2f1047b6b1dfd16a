package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/IbrahimMurad/alx-files-manager/config"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_DeliversPushEnvelope(t *testing.T) {
	var (
		mu       sync.Mutex
		received []PushMessage
		headers  []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PushMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		mu.Lock()
		received = append(received, msg)
		headers = append(headers, r.Header.Get("X-Request-Id"))
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	job := &service.Job{
		Type:      service.JobTypeThumbnail,
		RequestID: "req-1",
		FileID:    uuid.New(),
		UserID:    uuid.New(),
	}

	require.NoError(t, publisher.Submit(context.Background(), job))
	require.NoError(t, publisher.Close())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, "req-1", headers[0])
	assert.Equal(t, "thumbnail", received[0].Message.Attributes[AttributeJobType])
	assert.Equal(t, "req-1", received[0].Message.Attributes[AttributeRequestID])
	assert.NotEmpty(t, received[0].Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received[0].Message.Data)
	require.NoError(t, err)

	var decoded service.Job
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *job, decoded)
}

func TestLocalHTTPPublisher_SubmitDoesNotFailOnWorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.Submit(context.Background(), &service.Job{Type: service.JobTypeWelcome, UserID: uuid.New()})
	assert.NoError(t, err)
	assert.NoError(t, publisher.Close())
}

func TestEncodeJob_OmitsEmptyIDs(t *testing.T) {
	data, attributes, err := encodeJob(&service.Job{Type: service.JobTypeWelcome})
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"welcome"}`, string(data))
	assert.Equal(t, map[string]string{AttributeJobType: "welcome"}, attributes)
}

func TestNewJobSubmitter(t *testing.T) {
	newParams := func(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: newDiscardLogger(),
		}
	}

	t.Run("noop when unconfigured", func(t *testing.T) {
		submitter, err := NewJobSubmitter(newParams(t, nil))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, submitter)
		assert.NoError(t, submitter.Submit(context.Background(), &service.Job{Type: service.JobTypeWelcome}))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewJobSubmitter(newParams(t, &config.PubSubConfig{Provider: "local"}))
		assert.ErrorContains(t, err, "local endpoint is required")
	})

	t.Run("local", func(t *testing.T) {
		submitter, err := NewJobSubmitter(newParams(t, &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, submitter)
	})

	t.Run("google requires project", func(t *testing.T) {
		_, err := NewJobSubmitter(newParams(t, &config.PubSubConfig{Provider: "google", TopicID: "jobs"}))
		assert.ErrorContains(t, err, "project ID is required")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewJobSubmitter(newParams(t, &config.PubSubConfig{Provider: "kafka"}))
		assert.ErrorContains(t, err, "unknown pubsub provider")
	})
}
