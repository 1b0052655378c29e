package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsPath is excluded from instrumentation.
const MetricsPath = "/metrics"

// UnmatchedPath labels requests that no route handled.
const UnmatchedPath = "unmatched"

// PrometheusMiddleware holds the request metrics.
type PrometheusMiddleware struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusMiddleware creates the request metrics and registers them on reg.
func NewPrometheusMiddleware(reg prometheus.Registerer) (*PrometheusMiddleware, error) {
	m := &PrometheusMiddleware{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.requestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler returns the fiber middleware handler.
func (m *PrometheusMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == MetricsPath {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		// Route pattern (/api/v2/beer/:beerId) keeps label cardinality bounded.
		path := c.Route().Path
		if path == "" || unmatched(err) {
			path = UnmatchedPath
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.requestCount.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(c.Method(), path).Observe(elapsed.Seconds())

		return err
	}
}

// unmatched reports whether err is the router's own 404 ("Cannot GET /x") or
// 405, as opposed to an error returned by a matched handler.
func unmatched(err error) bool {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return false
	}
	switch fe.Code {
	case fiber.StatusMethodNotAllowed:
		return fe.Message == fiber.ErrMethodNotAllowed.Message
	case fiber.StatusNotFound:
		return strings.HasPrefix(fe.Message, "Cannot ")
	}
	return false
}
