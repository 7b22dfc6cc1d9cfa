package metrics

import "time"

// Render outcomes for JournalArticleRendersTotal.
const (
	RenderFound    = "found"
	RenderNotFound = "not_found"
	RenderError    = "error"
)

// RecordArticleRender counts one article page render with the given outcome.
func RecordArticleRender(result string) {
	JournalArticleRendersTotal.WithLabelValues(result).Inc()
}

// RecordStorefrontQuery records the latency of a Storefront API query.
// status is "success" or "error".
func RecordStorefrontQuery(operation, status string, duration time.Duration) {
	StorefrontQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// RecordStorefrontError counts a failed Storefront API query.
// errorType examples: "http_status", "graphql", "decode", "circuit_open", "transport".
func RecordStorefrontError(operation, errorType string) {
	StorefrontQueryErrors.WithLabelValues(operation, errorType).Inc()
}

// SetStorefrontCircuitOpen reflects the circuit breaker state in the gauge.
func SetStorefrontCircuitOpen(open bool) {
	if open {
		StorefrontCircuitOpen.Set(1)
		return
	}
	StorefrontCircuitOpen.Set(0)
}
