package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ACIL0001/Mazad-click-backoffice-sub000/config"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/constants"
	"github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.SessionEvent {
	return &service.SessionEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		Type:       service.SessionEventLogin,
		Portal:     "ADMIN",
		UserID:     "u-42",
		Role:       "ADMIN",
		OccurredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishSessionEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishSessionEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "login", received.Message.Attributes["type"])
	assert.Equal(t, "u-42", received.Message.Attributes["user_id"])
	assert.Equal(t, localSubscription, received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.SessionEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, service.SessionEventLogin, event.Type)
	assert.Equal(t, "ADMIN", event.Portal)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishSessionEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEventAttributes_OmitsEmptyOptionalFields(t *testing.T) {
	event := testEvent()
	event.UserID = ""
	event.RequestID = ""

	attributes := eventAttributes(event)

	assert.NotContains(t, attributes, "user_id")
	assert.NotContains(t, attributes, "request_id")
	assert.Equal(t, "ADMIN", attributes["portal"])
}

func TestNewSessionEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		noop    bool
	}{
		{name: "not configured", cfg: nil, noop: true},
		{name: "empty provider", cfg: &config.PubSubConfig{}, noop: true},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID is required"},
		{
			name:    "google without topic",
			cfg:     &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"},
			wantErr: "topic ID is required",
		},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewSessionEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)
			if tt.noop {
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishSessionEvent(context.Background(), testEvent()))
			}
			lc.RequireStart().RequireStop()
		})
	}
}
