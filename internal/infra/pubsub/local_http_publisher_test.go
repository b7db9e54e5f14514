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

	"adboard/config"
	"adboard/internal/domain/constants"
	"adboard/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAdEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.AdEvent{
		RequestID:  "req-1",
		Type:       constants.EventAdDeleted,
		AdID:       42,
		ActorID:    7,
		ImagePath:  "ads/abc.png",
		OccurredAt: time.Now().UTC(),
	}

	require.NoError(t, publisher.PublishAdEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, constants.EventAdDeleted, received.Message.Attributes["type"])
	assert.Equal(t, "42", received.Message.Attributes["ad_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.AdEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, int64(42), decoded.AdID)
	assert.Equal(t, "ads/abc.png", decoded.ImagePath)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishAdEvent(context.Background(), &service.AdEvent{Type: constants.EventAdCreated, AdID: 1})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNewEventPublisher_Providers(t *testing.T) {
	newParams := func(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: newDiscardLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(t, nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishAdEvent(context.Background(), &service.AdEvent{AdID: 1}))

	publisher, err = NewEventPublisher(newParams(t, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:9999/events",
	}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}
