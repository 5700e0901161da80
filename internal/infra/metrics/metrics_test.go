package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSyncMetrics(reg).(*syncMetrics)

	m.ObserveCounterUpdate(entity.CounterOpAddRating, true, 10*time.Millisecond)
	m.ObserveCounterUpdate(entity.CounterOpAddRating, false, time.Second)
	m.ObserveCounterUpdate(entity.CounterOpAddWish, true, time.Millisecond)
	m.ObserveRepairEvent(true)
	m.ObserveRepairEvent(false)
	m.ObserveRepairEvent(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.counterUpdates.WithLabelValues("add_rating", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.counterUpdates.WithLabelValues("add_rating", "pending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.counterUpdates.WithLabelValues("add_wish", "applied")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.repairEvents.WithLabelValues("failed")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.counterDuration))
}

func TestHTTPMetrics_Middleware(t *testing.T) {
	reg := NewRegistry()
	m := NewHTTPMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/drinks/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", Handler(reg))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drinks/abc", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/drinks/:id", "204")))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sommelier_http_requests_total")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestHTTPMetrics_MiddlewareCountsErrorStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/drinks/:id", func(c echo.Context) error {
		return domainerrors.ErrDrinkNotFound
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/drinks/abc", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/drinks/:id", "404")))
}
