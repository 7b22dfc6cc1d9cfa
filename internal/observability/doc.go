// Package observability groups the storefront's logging, metrics and tracing
// subpackages.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors for HTTP traffic, page renders and
//     Storefront API queries
//   - tracing: OpenTelemetry server middleware and the shared tracer
package observability
