// Package metrics exposes Prometheus collectors for the counter saga and the HTTP servers.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"sommelier/internal/domain/entity"
	domainerrors "sommelier/internal/domain/errors"
	"sommelier/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sommelier"

// NewRegistry creates the registry every collector of the process registers with.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// syncMetrics implements service.SyncMetrics.
type syncMetrics struct {
	counterUpdates  *prometheus.CounterVec
	counterDuration *prometheus.HistogramVec
	repairEvents    *prometheus.CounterVec
}

// NewSyncMetrics registers the counter saga collectors on reg.
func NewSyncMetrics(reg *prometheus.Registry) service.SyncMetrics {
	factory := promauto.With(reg)

	return &syncMetrics{
		counterUpdates: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "drink_counter_updates_total",
				Help:      "Attempts to apply a counter update to its drink, by op and result",
			},
			[]string{"op", "result"},
		),
		counterDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "drink_counter_update_duration_seconds",
				Help:      "Duration of the transaction that applies a counter update",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		repairEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "drink_counter_repair_events_total",
				Help:      "Repair events published for pending counter updates, by result",
			},
			[]string{"result"},
		),
	}
}

func (m *syncMetrics) ObserveCounterUpdate(op entity.CounterOp, applied bool, elapsed time.Duration) {
	result := "applied"
	if !applied {
		result = "pending"
	}
	m.counterUpdates.WithLabelValues(op.String(), result).Inc()
	m.counterDuration.WithLabelValues(op.String()).Observe(elapsed.Seconds())
}

func (m *syncMetrics) ObserveRepairEvent(published bool) {
	result := "published"
	if !published {
		result = "failed"
	}
	m.repairEvents.WithLabelValues(result).Inc()
}

// HTTPMetrics records request counts and latencies per route template.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	inFlight prometheus.Gauge
}

// NewHTTPMetrics registers the HTTP collectors on reg.
func NewHTTPMetrics(reg *prometheus.Registry) *HTTPMetrics {
	factory := promauto.With(reg)

	return &HTTPMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		inFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being served",
			},
		),
	}
}

// Middleware returns echo middleware that collects the HTTP metrics.
func (m *HTTPMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			m.inFlight.Inc()
			defer m.inFlight.Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = errorStatus(err)
			}

			path := c.Path()
			if path == "" {
				path = "unknown"
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			m.requests.WithLabelValues(labels...).Inc()
			m.duration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// errorStatus is the status the error handler will render for err.
func errorStatus(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
}
