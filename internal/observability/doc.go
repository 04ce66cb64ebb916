// Package observability groups the service's logging and tracing helpers.
//
// Subpackages:
//   - logging: slog logger construction and context propagation
//   - tracing: OpenTelemetry provider setup and HTTP middleware
//
// Prometheus collectors live next to the code they measure
// (internal/handler/http for HTTP traffic, internal/usecase/dashboard for the
// demo data provider).
package observability
