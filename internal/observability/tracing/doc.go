// Package tracing wires OpenTelemetry into the HTTP server and the demo data provider.
//
// Setup installs an SDK tracer provider at startup; Middleware opens a server span
// per request and echoes its trace ID in the X-Trace-Id response header. Provider
// accessors open child spans named "dashboard.<operation>".
package tracing
