package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dashboard-demo/internal/handler/http/pathutil"
	"dashboard-demo/internal/handler/http/responsewriter"
)

const (
	metricsNamespace = "dashboard"
	metricsSubsystem = "http"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_total",
			Help:      "HTTP requests served, by route template and status code.",
		},
		[]string{"method", "route", "status"},
	)

	// Buckets cluster around the simulated 100-200ms provider latencies.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "Wall time spent serving a request.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .15, .2, .25, .5, 1, 2.5},
		},
		[]string{"method", "route", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_in_flight",
			Help:      "Requests currently being served.",
		},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "response_size_bytes",
			Help:      "Response body size.",
			Buckets:   prometheus.ExponentialBuckets(128, 4, 7),
		},
		[]string{"method", "route"},
	)
)

// observeRequest records one finished request under its route template.
func observeRequest(r *http.Request, rw *responsewriter.ResponseWriter, elapsed time.Duration) {
	method, route := r.Method, pathutil.NormalizePath(r.URL.Path)
	status := strconv.Itoa(rw.Status(r.Context()))
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
	httpResponseSize.WithLabelValues(method, route).Observe(float64(rw.BytesWritten()))
}

// MetricsMiddleware records request count, latency, in-flight requests and
// body size. Program slugs and unknown paths are collapsed so label
// cardinality stays bounded; abandoned requests are labelled 499.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		rw := responsewriter.Wrap(w)
		start := time.Now()
		next.ServeHTTP(rw, r)
		observeRequest(r, rw, time.Since(start))
	})
}

// MetricsHandler serves the default Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
