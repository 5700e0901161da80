package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sommelier/config"
	apimiddleware "sommelier/internal/delivery/api/middleware"
	"sommelier/internal/delivery/api/router"
	"sommelier/internal/delivery/api/router/handler"
	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/infra/metrics"
	mockUsecase "sommelier/internal/mocks/usecase"
	"sommelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	echo      *echo.Echo
	users     *mockUsecase.MockUserUsecase
	auth      *mockUsecase.MockAuthUsecase
	drinks    *mockUsecase.MockDrinkUsecase
	reviews   *mockUsecase.MockReviewUsecase
	wishes    *mockUsecase.MockWishUsecase
	reconcile *mockUsecase.MockReconcileUsecase
}

func newAPIFixtures(t *testing.T) apiFixtures {
	f := apiFixtures{
		users:     mockUsecase.NewMockUserUsecase(t),
		auth:      mockUsecase.NewMockAuthUsecase(t),
		drinks:    mockUsecase.NewMockDrinkUsecase(t),
		reviews:   mockUsecase.NewMockReviewUsecase(t),
		wishes:    mockUsecase.NewMockWishUsecase(t),
		reconcile: mockUsecase.NewMockReconcileUsecase(t),
	}

	cfg := &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: true}}
	reg := prometheus.NewRegistry()
	f.echo = newEcho(ServerParams{
		Cfg:         cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry:    reg,
		HTTPMetrics: metrics.NewHTTPMetrics(reg),
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(f.users),
			AuthHandler:    handler.NewAuthHandler(f.auth),
			DrinkHandler:   handler.NewDrinkHandler(f.drinks, f.reconcile),
			ReviewHandler:  handler.NewReviewHandler(f.reviews),
			WishHandler:    handler.NewWishHandler(f.wishes),
			TestHandler:    handler.NewTestHandler(),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(f.auth),
			Config:         cfg,
		},
	})

	return f
}

func (f apiFixtures) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func (f apiFixtures) login(token string, userID entity.UserID) {
	f.auth.EXPECT().ValidateToken(mock.Anything, token).Return(userID, nil)
}

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
	Meta  *domainerrors.MetaInfo  `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestAPI_Health(t *testing.T) {
	f := newAPIFixtures(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-1")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "req-1", decode(t, rec).Meta.RequestID)
}

func TestAPI_AuthRequired(t *testing.T) {
	f := newAPIFixtures(t)

	rec := f.do(http.MethodPost, "/api/v1/reviews", `{}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, domainerrors.KindUnauthorized, decode(t, rec).Error.Kind)

	f.auth.EXPECT().ValidateToken(mock.Anything, "forged").Return("", domainerrors.ErrTokenInvalid).Once()
	rec = f.do(http.MethodPost, "/api/v1/reviews", `{}`, "forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_CreateReview(t *testing.T) {
	f := newAPIFixtures(t)
	f.login("tok", "alice")
	drinkID := uuid.New()
	now := time.Now().UTC()

	f.reviews.EXPECT().
		CreateReview(mock.Anything, &usecase.CreateReviewInput{UserID: "alice", DrinkID: drinkID, Rating: 0, Comment: "flat"}).
		Return(&entity.Review{ID: uuid.New(), DrinkID: drinkID, UserID: "alice", Rating: 0, Comment: "flat", CreatedAt: now, UpdatedAt: now}, nil).
		Once()

	rec := f.do(http.MethodPost, "/api/v1/reviews", `{"drink_id":"`+drinkID.String()+`","rating":0,"comment":"flat"}`, "tok")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got handler.ReviewResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, 0, got.Rating)
}

func TestAPI_CreateReview_MissingRating(t *testing.T) {
	f := newAPIFixtures(t)
	f.login("tok", "alice")

	rec := f.do(http.MethodPost, "/api/v1/reviews", `{"drink_id":"`+uuid.NewString()+`"}`, "tok")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, domainerrors.KindInvalid, env.Error.Kind)
	assert.Contains(t, env.Error.Message, "rating")
}

func TestAPI_PendingSyncIsReported(t *testing.T) {
	f := newAPIFixtures(t)
	f.login("tok", "alice")
	drinkID := uuid.New()

	pending := domainerrors.NewPendingSyncError(uuid.New(), drinkID, domainerrors.ErrTransactionFailed)
	f.reviews.EXPECT().CreateReview(mock.Anything, mock.Anything).Return(&entity.Review{ID: uuid.New()}, pending).Once()

	rec := f.do(http.MethodPost, "/api/v1/reviews", `{"drink_id":"`+drinkID.String()+`","rating":4}`, "tok")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, domainerrors.KindSystem, env.Error.Kind)
	assert.Equal(t, "DRINK_SYNC_PENDING", env.Error.Code)
	assert.Contains(t, env.Error.Message, "saved")
	assert.NotContains(t, rec.Body.String(), drinkID.String())
}

func TestAPI_ListDrinks_ParsesQuery(t *testing.T) {
	f := newAPIFixtures(t)

	f.drinks.EXPECT().
		FindDrinks(mock.Anything, entity.DrinkQuery{Type: entity.DrinkTypeWine, Filter: entity.FilterRating, Order: entity.OrderAsc}).
		Return([]*entity.Drink{{ID: uuid.New(), Name: "Chablis", Type: entity.DrinkTypeWine, AvgRating: 4.5}}, nil).
		Once()

	rec := f.do(http.MethodGet, "/drinks?type=wine&filter=rating&order=asc", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []handler.DrinkResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	require.Len(t, got, 1)
	assert.InDelta(t, 4.5, got[0].AvgRating, 1e-9)
}

func TestAPI_DrinkErrors(t *testing.T) {
	f := newAPIFixtures(t)
	missing := uuid.New()
	f.drinks.EXPECT().FindDrink(mock.Anything, missing).Return(nil, domainerrors.ErrDrinkNotFound).Once()

	rec := f.do(http.MethodGet, "/drinks/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.KindInvalid, decode(t, rec).Error.Kind)

	rec = f.do(http.MethodGet, "/drinks/"+missing.String(), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.KindNotFound, decode(t, rec).Error.Kind)

	rec = f.do(http.MethodGet, "/no-such-route", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.KindNotFound, decode(t, rec).Error.Kind)
}

func TestAPI_DrinkQR(t *testing.T) {
	f := newAPIFixtures(t)
	drinkID := uuid.New()
	f.drinks.EXPECT().GenerateShareQR(mock.Anything, drinkID).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	rec := f.do(http.MethodGet, "/drinks/"+drinkID.String()+"/qr", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}

func TestAPI_Wishes(t *testing.T) {
	f := newAPIFixtures(t)
	f.login("tok", "bob")
	drinkID := uuid.New()

	f.wishes.EXPECT().CreateWish(mock.Anything, entity.UserID("bob"), drinkID).
		Return(&entity.Wish{ID: uuid.New(), UserID: "bob", DrinkID: drinkID}, nil).Once()
	f.wishes.EXPECT().DeleteWish(mock.Anything, entity.UserID("bob"), drinkID).
		Return(nil, domainerrors.ErrWishNotFound).Once()

	rec := f.do(http.MethodPost, "/api/v1/wishes/drinks/"+drinkID.String(), "", "tok")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(http.MethodDelete, "/api/v1/wishes/drinks/"+drinkID.String(), "", "tok")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_RegisterAndToken(t *testing.T) {
	f := newAPIFixtures(t)

	f.users.EXPECT().
		RegisterUser(mock.Anything, &usecase.RegisterUserInput{UserID: "carol", Password: "pw", Name: "Carol"}).
		Return(&entity.User{ID: "carol", Name: "Carol", PasswordHash: "secret-hash"}, nil).
		Once()
	f.auth.EXPECT().
		IssueToken(mock.Anything, &usecase.LoginInput{UserID: "carol", Password: "pw"}).
		Return(&usecase.TokenOutput{AccessToken: "jwt", TokenType: "Bearer", ExpiresIn: 3600, UserID: "carol"}, nil).
		Once()

	rec := f.do(http.MethodPost, "/users", `{"id":"carol","password":"pw","name":"Carol"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	rec = f.do(http.MethodPost, "/auth/token", `{"id":"carol","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tok handler.TokenResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &tok))
	assert.Equal(t, "jwt", tok.AccessToken)
}

func TestAPI_PendingUpdatesAndRecount(t *testing.T) {
	f := newAPIFixtures(t)
	f.login("tok", "admin")
	drinkID := uuid.New()

	f.reconcile.EXPECT().PendingForDrink(mock.Anything, drinkID).
		Return([]*entity.CounterUpdate{{ID: uuid.New(), DrinkID: drinkID, Op: entity.CounterOpAddWish}}, nil).Once()
	f.reconcile.EXPECT().RecountDrink(mock.Anything, drinkID).
		Return(&entity.Drink{ID: drinkID, NumOfWish: 1}, nil).Once()

	rec := f.do(http.MethodGet, "/drinks/"+drinkID.String()+"/pending-updates", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "add_wish")

	rec = f.do(http.MethodPost, "/api/v1/drinks/"+drinkID.String()+"/recount", "", "tok")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_Metrics(t *testing.T) {
	f := newAPIFixtures(t)

	f.do(http.MethodGet, "/health", "", "")
	rec := f.do(http.MethodGet, "/metrics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sommelier_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestAPI_TestRoutes(t *testing.T) {
	f := newAPIFixtures(t)
	f.login("tok", "alice")

	rec := f.do(http.MethodGet, "/test/auth", "", "tok")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"alice"`)
}
