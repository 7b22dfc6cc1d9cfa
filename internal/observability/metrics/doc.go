// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Journal page render outcomes
//   - Storefront API query latency, errors and circuit state
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	lookup, err := client.ArticleByHandle(ctx, "journal", handle, loc)
//	status := "success"
//	if err != nil {
//	    status = "error"
//	}
//	metrics.RecordStorefrontQuery("ArticleDetails", status, time.Since(start))
package metrics
