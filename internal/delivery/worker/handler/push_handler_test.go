package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sommelier/config"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/service"
	"sommelier/internal/infra/pubsub"
	mockUsecase "sommelier/internal/mocks/usecase"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockReconcileUsecase) {
	reconcile := mockUsecase.NewMockReconcileUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    newDiscardLogger(),
		Processor: NewRepairProcessor(newDiscardLogger(), reconcile),
	})

	return h, reconcile
}

func pushBody(t *testing.T, event *service.CounterRepairEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-from-attrs"}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_ReplaysUpdate(t *testing.T) {
	h, reconcile := newPushHandler(t)
	updateID := uuid.New()
	reconcile.EXPECT().ReplayUpdate(mock.Anything, updateID).Return(nil).Once()

	rec := servePush(h, pushBody(t, &service.CounterRepairEvent{UpdateID: updateID.String(), DrinkID: uuid.NewString(), Op: "add_rating"}))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPushHandler_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		replay   error
		wantCode int
	}{
		{name: "storage failure asks for redelivery", replay: domainerrors.ErrTransactionFailed, wantCode: http.StatusServiceUnavailable},
		{name: "unknown update is acknowledged", replay: domainerrors.ErrCounterUpdateNotFound, wantCode: http.StatusNoContent},
		{name: "deleted drink is acknowledged", replay: domainerrors.ErrDrinkNotFound, wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, reconcile := newPushHandler(t)
			updateID := uuid.New()
			reconcile.EXPECT().ReplayUpdate(mock.Anything, updateID).Return(tt.replay).Once()

			rec := servePush(h, pushBody(t, &service.CounterRepairEvent{UpdateID: updateID.String()}))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_BadPayloads(t *testing.T) {
	h, _ := newPushHandler(t)

	assert.Equal(t, http.StatusBadRequest, servePush(h, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`).Code)

	notEvent := base64.StdEncoding.EncodeToString([]byte(`[1,2]`))
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+notEvent+`"}}`).Code)

	// malformed update ids cannot succeed on redelivery
	rec := servePush(h, pushBody(t, &service.CounterRepairEvent{UpdateID: "nope"}))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: newDiscardLogger()})
	assert.True(t, h.verifyPushAuth)

	rec := servePush(h, `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cfg.PubSub.Provider = "local"
	assert.False(t, NewPushHandler(PushHandlerParams{Config: cfg, Logger: newDiscardLogger()}).verifyPushAuth)
}

func TestRepairProcessor_IsRetryable(t *testing.T) {
	reconcile := mockUsecase.NewMockReconcileUsecase(t)
	p := NewRepairProcessor(newDiscardLogger(), reconcile)
	updateID := uuid.New()
	reconcile.EXPECT().ReplayUpdate(mock.Anything, updateID).Return(domainerrors.ErrTransactionFailed).Once()

	err := p.Process(t.Context(), &service.CounterRepairEvent{UpdateID: updateID.String()})

	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestReplayHandler(t *testing.T) {
	reconcile := mockUsecase.NewMockReconcileUsecase(t)
	h := NewReplayHandler(reconcile)
	e := echo.New()

	reconcile.EXPECT().ReplayPending(mock.Anything, 7).Return(&usecase.ReplayResult{Scanned: 3, Applied: 2, Failed: 1}, nil).Once()

	rec := httptest.NewRecorder()
	require.NoError(t, h.Replay(e.NewContext(httptest.NewRequest(http.MethodPost, "/replay?limit=7", nil), rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"scanned":3,"applied":2,"failed":1}`, rec.Body.String())

	rec = httptest.NewRecorder()
	require.NoError(t, h.Replay(e.NewContext(httptest.NewRequest(http.MethodPost, "/replay?limit=x", nil), rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
