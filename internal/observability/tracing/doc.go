// Package tracing provides OpenTelemetry tracing integration.
//
// Middleware starts a server span per request, honours incoming W3C trace
// context and echoes the trace ID in the X-Trace-Id response header.
// GetTracer returns the tracer used for client spans such as Storefront API
// queries.
//
//	ctx, span := tracing.GetTracer().Start(ctx, "storefront.ArticleDetails")
//	defer span.End()
package tracing
