package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetricsMiddleware_PathNormalization checks that program slugs collapse
// into one route label.
func TestMetricsMiddleware_PathNormalization(t *testing.T) {
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	for _, path := range []string{"/api/programs/hba1c", "/api/programs/timemymeds", "/api/programs/unknown"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/programs", nil))

	assert.Equal(t, 3.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/programs/:slug", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/programs", "200")))
}

func TestMetricsMiddleware_RecordsStatus(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "other", "404")))
}

func TestMetricsMiddleware_InFlightReturnsToZero(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsInFlight)
	var during float64

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(httpRequestsInFlight)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil))

	assert.Equal(t, before+1, during)
	assert.Equal(t, before, testutil.ToFloat64(httpRequestsInFlight))
}

func TestMetricsHandler_ExposesCollectors(t *testing.T) {
	MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/live", nil))

	rec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "dashboard_http_requests_total"))
	assert.True(t, strings.Contains(string(body), "dashboard_http_request_duration_seconds"))
}

func TestMetricsMiddleware_UnknownPathsShareOneSeries(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	for i := 0; i < 50; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, fmt.Sprintf("/scan/%d", i), nil))
	}

	assert.Equal(t, 1, testutil.CollectAndCount(httpRequestsTotal))
	assert.Equal(t, 50.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "other", "404")))
}

func TestMetricsMiddleware_CanceledRequestLabelled499(t *testing.T) {
	httpRequestsTotal.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cancel()
		<-r.Context().Done()
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/overview", nil).WithContext(ctx)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/overview", "499")))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/overview", "200")))
}
