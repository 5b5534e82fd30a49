package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const MetricsPath = "/metrics"

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		},
		[]string{"method", "endpoint"},
	)

	// Business metrics
	inquiriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiries_total",
			Help: "Total number of stored inquiries",
		},
		[]string{"inquiry_type"},
	)
)

// Middleware records HTTP metrics per route. Errors are handled here, so recorded status matches the response.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == MetricsPath {
				return next(c)
			}

			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			endpoint := c.Path()
			if endpoint == "" {
				endpoint = "unmatched"
			}

			req, res := c.Request(), c.Response()
			status := strconv.Itoa(res.Status)

			httpRequestsTotal.WithLabelValues(req.Method, endpoint, status).Inc()
			httpRequestDuration.WithLabelValues(req.Method, endpoint, status).Observe(time.Since(start).Seconds())
			httpResponseSize.WithLabelValues(req.Method, endpoint).Observe(float64(res.Size))
			return nil
		}
	}
}

// RecordInquiry records stored inquiry
func RecordInquiry(inquiryType string) {
	inquiriesTotal.WithLabelValues(inquiryType).Inc()
}
