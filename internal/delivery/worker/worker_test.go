package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sommelier/config"
	"sommelier/internal/delivery/worker/handler"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/service"
	mockUsecase "sommelier/internal/mocks/usecase"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeReader hands out queued messages and then blocks until the context ends.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		return msg, nil
	}
	r.mu.Unlock()

	<-ctx.Done()

	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}

	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true

	return nil
}

func (r *fakeReader) commits() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int64(nil), r.committed...)
}

func eventMessage(t *testing.T, offset int64, updateID uuid.UUID) kafka.Message {
	t.Helper()

	data, err := json.Marshal(&service.CounterRepairEvent{UpdateID: updateID.String(), Op: "add_wish"})
	require.NoError(t, err)

	return kafka.Message{
		Offset:  offset,
		Value:   data,
		Headers: []kafka.Header{{Key: "request_id", Value: []byte("req-1")}},
	}
}

func TestKafkaConsumer_ProcessesAndCommits(t *testing.T) {
	reconcile := mockUsecase.NewMockReconcileUsecase(t)
	ok, flaky, gone := uuid.New(), uuid.New(), uuid.New()

	reconcile.EXPECT().ReplayUpdate(mock.Anything, ok).Return(nil).Once()
	reconcile.EXPECT().ReplayUpdate(mock.Anything, flaky).Return(domainerrors.ErrTransactionFailed).Twice()
	reconcile.EXPECT().ReplayUpdate(mock.Anything, flaky).Return(nil).Once()
	reconcile.EXPECT().ReplayUpdate(mock.Anything, gone).Return(domainerrors.ErrCounterUpdateNotFound).Once()

	reader := &fakeReader{queue: []kafka.Message{
		eventMessage(t, 1, ok),
		{Offset: 2, Value: []byte("garbage")},
		eventMessage(t, 3, flaky),
		eventMessage(t, 4, gone),
	}}
	c := newKafkaConsumer(reader, handler.NewRepairProcessor(newDiscardLogger(), reconcile), newDiscardLogger())
	c.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(t.Context())
	served := make(chan error, 1)
	go func() { served <- c.Serve(ctx) }()

	assert.Eventually(t, func() bool { return len(reader.commits()) == 4 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	require.NoError(t, <-served)
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.commits())
}

func TestKafkaConsumer_GivesUpAfterRetries(t *testing.T) {
	reconcile := mockUsecase.NewMockReconcileUsecase(t)
	stuck := uuid.New()
	reconcile.EXPECT().ReplayUpdate(mock.Anything, stuck).Return(domainerrors.ErrTransactionFailed).Times(maxDeliveryRetries)

	reader := &fakeReader{queue: []kafka.Message{eventMessage(t, 9, stuck)}}
	c := newKafkaConsumer(reader, handler.NewRepairProcessor(newDiscardLogger(), reconcile), newDiscardLogger())
	c.backoff = time.Millisecond

	c.handle(t.Context(), reader.queue[0])
}

func TestKafkaConsumer_StopEndsServe(t *testing.T) {
	reader := &fakeReader{}
	c := newKafkaConsumer(reader, nil, newDiscardLogger())

	served := make(chan error, 1)
	go func() { served <- c.Serve(context.Background()) }()

	require.NoError(t, c.stop(context.Background()))
	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
	assert.True(t, reader.closed)
}

func TestNewKafkaConsumer_DisabledForOtherProviders(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	d := NewKafkaConsumer(ConsumerParams{
		Lc:     lc,
		Cfg:    &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}},
		Logger: newDiscardLogger(),
	})

	assert.NoError(t, d.Serve(t.Context()))
}

func TestSweeper_ReplaysOnInterval(t *testing.T) {
	reconcile := mockUsecase.NewMockReconcileUsecase(t)
	var sweeps atomic.Int32
	reconcile.EXPECT().ReplayPending(mock.Anything, 0).RunAndReturn(func(context.Context, int) (*usecase.ReplayResult, error) {
		sweeps.Add(1)

		return &usecase.ReplayResult{Scanned: 1, Applied: 1}, nil
	})

	s := NewSweeper(SweeperParams{
		Lc:        fxtest.NewLifecycle(t),
		Cfg:       &config.Config{Worker: &config.WorkerConfig{ReplayInterval: time.Millisecond}},
		Logger:    newDiscardLogger(),
		Reconcile: reconcile,
	})

	ctx, cancel := context.WithCancel(t.Context())
	served := make(chan error, 1)
	go func() { served <- s.Serve(ctx) }()

	assert.Eventually(t, func() bool { return sweeps.Load() >= 2 }, 2*time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-served)
}

func TestSweeper_DisabledWithoutInterval(t *testing.T) {
	s := NewSweeper(SweeperParams{
		Lc:        fxtest.NewLifecycle(t),
		Cfg:       &config.Config{},
		Logger:    newDiscardLogger(),
		Reconcile: mockUsecase.NewMockReconcileUsecase(t),
	})

	assert.NoError(t, s.Serve(t.Context()))
}

func TestWorkerServer_Routes(t *testing.T) {
	reconcile := mockUsecase.NewMockReconcileUsecase(t)
	reconcile.EXPECT().ReplayPending(mock.Anything, 0).Return(&usecase.ReplayResult{}, nil).Once()

	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	e := newEcho(ServerParams{
		Cfg:    cfg,
		Logger: newDiscardLogger(),
		PushHandler: handler.NewPushHandler(handler.PushHandlerParams{
			Config:    cfg,
			Logger:    newDiscardLogger(),
			Processor: handler.NewRepairProcessor(newDiscardLogger(), reconcile),
		}),
		ReplayHandler: handler.NewReplayHandler(reconcile),
	})

	for _, tc := range []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodPost, "/replay", http.StatusOK},
		{http.MethodPost, "/push", http.StatusBadRequest},
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, tc.want, rec.Code, tc.path)
	}
}
