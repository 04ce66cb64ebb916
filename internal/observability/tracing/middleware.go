package tracing

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"dashboard-demo/internal/handler/http/pathutil"
	"dashboard-demo/internal/handler/http/responsewriter"
)

// TraceIDHeader carries the server span's trace ID back to the client.
const TraceIDHeader = "X-Trace-Id"

// Middleware opens a server span per request, continuing any W3C trace context
// sent by the front-end, and returns the trace ID in X-Trace-Id.
// Span names use the normalized route so /api/programs/{slug} stays one series.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract trace context from incoming request headers
		ctx := otel.GetTextMapPropagator().Extract(
			r.Context(),
			propagation.HeaderCarrier(r.Header),
		)

		route := pathutil.NormalizePath(r.URL.Path)
		ctx, span := GetTracer().Start(ctx, r.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		if sc := span.SpanContext(); sc.HasTraceID() {
			w.Header().Set(TraceIDHeader, sc.TraceID().String())
		}

		rw := responsewriter.Wrap(w)
		r = r.WithContext(ctx)
		next.ServeHTTP(rw, r)

		status := rw.Status(r.Context())
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.String("http.method", r.Method),
			attribute.String("http.path", r.URL.Path),
			attribute.String("http.route", route),
		)

		if status >= 500 {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	})
}
