// Package middleware holds cross-cutting HTTP middleware for the dashboard API.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Defaults for a read-only JSON API consumed by a browser dev server.
var (
	DefaultAllowedMethods = []string{http.MethodGet, http.MethodOptions}
	DefaultAllowedHeaders = []string{"Content-Type", "X-Request-ID", "traceparent", "tracestate"}
)

// DefaultMaxAge is the preflight cache duration in seconds.
const DefaultMaxAge = 86400

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Validator decides which origins get CORS headers.
	Validator OriginValidator
	Logger    CORSLogger
}

// OriginValidator reports whether an Origin header value is permitted.
type OriginValidator interface {
	IsAllowed(origin string) bool
	GetAllowedOrigins() []string
}

// NewCORSConfig validates origins and returns a config with the default
// methods and headers. "*" is accepted as an origin and allows any origin.
// A negative maxAge is rejected.
func NewCORSConfig(origins []string, maxAge int) (*CORSConfig, error) {
	if len(origins) == 0 {
		return nil, errors.New("at least one allowed origin is required")
	}
	for _, o := range origins {
		if o == "*" {
			continue
		}
		if err := ValidateOrigin(o); err != nil {
			return nil, err
		}
	}
	if maxAge < 0 {
		return nil, fmt.Errorf("CORS max age must be non-negative, got: %d", maxAge)
	}

	return &CORSConfig{
		AllowedMethods: append([]string(nil), DefaultAllowedMethods...),
		AllowedHeaders: append([]string(nil), DefaultAllowedHeaders...),
		ExposedHeaders: []string{"X-Request-ID", "X-Trace-Id"},
		MaxAge:         maxAge,
		Validator:      NewWhitelistValidator(origins),
	}, nil
}

// ValidateOrigin checks that origin is a bare http(s) scheme+host.
func ValidateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include path, query or fragment: %s", origin)
	}
	return nil
}

// CORS returns middleware that sets CORS headers for allowed origins.
//
// Requests without an Origin header pass through untouched. Disallowed
// origins are logged and served without CORS headers, so the browser blocks
// the response. Preflight requests from allowed origins are answered with
// 204 No Content and never reach next.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(config.AllowedMethods, ", ")
	headers := strings.Join(config.AllowedHeaders, ", ")
	exposed := strings.Join(config.ExposedHeaders, ", ")
	maxAge := strconv.Itoa(config.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")

			if config.Validator == nil || !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed", map[string]interface{}{
						"origin":      origin,
						"path":        r.URL.Path,
						"method":      r.Method,
						"remote_addr": r.RemoteAddr,
					})
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			if exposed != "" {
				w.Header().Set("Access-Control-Expose-Headers", exposed)
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)

				if config.Logger != nil {
					config.Logger.Debug("CORS: preflight request", map[string]interface{}{
						"origin":            origin,
						"requested_method":  r.Header.Get("Access-Control-Request-Method"),
						"requested_headers": r.Header.Get("Access-Control-Request-Headers"),
					})
				}

				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
