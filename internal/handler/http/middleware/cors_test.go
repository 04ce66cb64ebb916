package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func newTestConfig(t *testing.T, origins ...string) CORSConfig {
	t.Helper()
	cfg, err := NewCORSConfig(origins, 600)
	require.NoError(t, err)
	cfg.Logger = &NoOpLogger{}
	return *cfg
}

/* ───────── NewCORSConfig ───────── */

func TestNewCORSConfig(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		maxAge  int
		wantErr string
	}{
		{name: "single origin", origins: []string{"http://localhost:5173"}, maxAge: 0},
		{name: "wildcard", origins: []string{"*"}, maxAge: 60},
		{name: "no origins", origins: nil, wantErr: "at least one allowed origin"},
		{name: "bad scheme", origins: []string{"ftp://example.com"}, wantErr: "http or https"},
		{name: "with path", origins: []string{"https://example.com/app"}, wantErr: "must not include path"},
		{name: "no host", origins: []string{"https://"}, wantErr: "must include a host"},
		{name: "negative max age", origins: []string{"https://example.com"}, maxAge: -1, wantErr: "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewCORSConfig(tt.origins, tt.maxAge)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.maxAge, cfg.MaxAge)
			assert.Equal(t, DefaultAllowedMethods, cfg.AllowedMethods)
			assert.NotNil(t, cfg.Validator)
		})
	}
}

/* ───────── CORS middleware ───────── */

func TestCORS_NoOriginPassesThrough(t *testing.T) {
	var called bool
	h := CORS(newTestConfig(t, "http://localhost:5173"))(okHandler(&called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/programs", nil))

	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Vary"))
}

func TestCORS_AllowedOrigin(t *testing.T) {
	var called bool
	h := CORS(newTestConfig(t, "http://localhost:5173"))(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/programs", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
	assert.Equal(t, "X-Request-ID, X-Trace-Id", rec.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORS_DisallowedOriginIsLogged(t *testing.T) {
	var buf bytes.Buffer
	cfg := newTestConfig(t, "http://localhost:5173")
	cfg.Logger = &SlogAdapter{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	var called bool
	h := CORS(cfg)(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, buf.String(), "CORS: origin not allowed")
	assert.Contains(t, buf.String(), "https://evil.example")
}

func TestCORS_Preflight(t *testing.T) {
	var called bool
	h := CORS(newTestConfig(t, "http://localhost:5173"))(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/api/overview", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called, "preflight must not reach the handler")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Request-ID")
	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_PlainOptionsIsNotPreflight(t *testing.T) {
	var called bool
	h := CORS(newTestConfig(t, "http://localhost:5173"))(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/api/overview", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, called)
}

func TestCORS_Wildcard(t *testing.T) {
	var called bool
	h := CORS(newTestConfig(t, "*"))(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/announcements", nil)
	req.Header.Set("Origin", "https://anything.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://anything.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
