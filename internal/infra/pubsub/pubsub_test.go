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

	"sommelier/config"
	"sommelier/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.CounterRepairEvent {
	return &service.CounterRepairEvent{
		RequestID: "req-1",
		UpdateID:  "11111111-1111-1111-1111-111111111111",
		DrinkID:   "22222222-2222-2222-2222-222222222222",
		Op:        "add_rating",
		Reason:    "context deadline exceeded",
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var got PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishCounterRepairEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, got.Subscription)
	assert.Equal(t, testEvent().UpdateID, got.Message.MessageID)
	assert.Equal(t, "add_rating", got.Message.Attributes["op"])

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.CounterRepairEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishCounterRepairEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)

	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true

	return nil
}

func TestKafkaPublisher_KeysByDrink(t *testing.T) {
	writer := &fakeWriter{}
	publisher := &kafkaPublisher{writer: writer, topic: "drink-counter-repair", logger: discardLogger()}

	require.NoError(t, publisher.PublishCounterRepairEvent(context.Background(), testEvent()))
	require.Len(t, writer.msgs, 1)

	msg := writer.msgs[0]
	assert.Equal(t, testEvent().DrinkID, string(msg.Key))
	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "req-1", headers["request_id"])
	assert.Equal(t, testEvent().UpdateID, headers["update_id"])

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	publisher := &kafkaPublisher{writer: &fakeWriter{err: errors.New("no leader")}, topic: "t", logger: discardLogger()}

	err := publisher.PublishCounterRepairEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no leader")
}

type failingPublisher struct {
	calls int
}

func (p *failingPublisher) PublishCounterRepairEvent(context.Context, *service.CounterRepairEvent) error {
	p.calls++

	return errors.New("broker down")
}

func (p *failingPublisher) Close() error { return nil }

func TestBreakerPublisher_OpensAfterFailures(t *testing.T) {
	next := &failingPublisher{}
	publisher := NewBreakerPublisher("test", next, &config.BreakerConfig{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		FailureRatio: 0.5,
		MinRequests:  3,
	}, discardLogger())

	for i := 0; i < 3; i++ {
		err := publisher.PublishCounterRepairEvent(context.Background(), testEvent())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCircuitOpen)
	}

	err := publisher.PublishCounterRepairEvent(context.Background(), testEvent())
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 3, next.calls)
}

func TestNewPublisher_Selection(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	p, err := newPublisher(ctx, &config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, p)

	p, err = newPublisher(ctx, &config.Config{
		PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"},
		Saga:   &config.SagaConfig{PublishRepairEvents: false},
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, p)

	p, err = newPublisher(ctx, &config.Config{
		PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"},
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &breakerPublisher{}, p)

	p, err = newPublisher(ctx, &config.Config{
		PubSub: &config.PubSubConfig{Provider: "kafka", Brokers: []string{"localhost:9092"}, TopicID: "repairs"},
	}, logger)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	_, err = newPublisher(ctx, &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka", TopicID: "repairs"}}, logger)
	assert.Error(t, err)

	_, err = newPublisher(ctx, &config.Config{PubSub: &config.PubSubConfig{Provider: "carrier-pigeon"}}, logger)
	assert.Error(t, err)
}
