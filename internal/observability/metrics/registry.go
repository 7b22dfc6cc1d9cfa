// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// ActiveConnections tracks the number of in-flight HTTP requests
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

// Journal metrics track article page rendering
var (
	// JournalArticleRendersTotal counts article page renders by outcome
	JournalArticleRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_article_renders_total",
			Help: "Total number of journal article page renders",
		},
		[]string{"result"}, // result: found, not_found, error
	)
)

// Storefront API metrics track the upstream GraphQL dependency
var (
	// StorefrontQueryDuration measures Storefront API query latency
	StorefrontQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_query_duration_seconds",
			Help:    "Storefront API query duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4},
		},
		[]string{"operation", "status"},
	)

	// StorefrontQueryErrors counts failed Storefront API queries by error type
	StorefrontQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_query_errors_total",
			Help: "Total number of failed Storefront API queries",
		},
		[]string{"operation", "type"},
	)

	// StorefrontCircuitOpen is 1 while the Storefront API circuit breaker is open
	StorefrontCircuitOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_circuit_breaker_open",
			Help: "Whether the Storefront API circuit breaker is open (1) or not (0)",
		},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
