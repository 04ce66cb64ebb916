package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"dashboard-demo/internal/handler/http/respond"
	"dashboard-demo/internal/observability/logging"
)

// Timeout returns middleware that bounds request handling to duration.
// Handlers see the deadline through r.Context(); if they have not written a
// response by then, the client gets 504 Gateway Timeout. A non-positive
// duration disables the middleware.
func Timeout(duration time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if duration <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), duration)
			defer cancel()
			r = r.WithContext(ctx)

			done := make(chan struct{})
			panicChan := make(chan any, 1)
			tw := &timeoutResponseWriter{ResponseWriter: w, h: make(http.Header)}

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicChan <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicChan:
				panic(p)
			case <-done:
				return
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if !tw.written {
					logging.FromContext(r.Context()).Warn("request deadline exceeded",
						slog.String("path", r.URL.Path),
						slog.Duration("timeout", duration))
					respond.JSON(w, http.StatusGatewayTimeout, map[string]string{"error": "request timeout"})
				}
			}
		})
	}
}

// timeoutResponseWriter buffers headers in h so the handler goroutine never
// touches the real header map. Headers are copied across only when the
// handler writes before the deadline; later writes are dropped.
type timeoutResponseWriter struct {
	http.ResponseWriter
	h        http.Header
	mu       sync.Mutex
	timedOut bool
	written  bool
}

func (w *timeoutResponseWriter) Header() http.Header { return w.h }

// writeHeaderLocked must be called with mu held.
func (w *timeoutResponseWriter) writeHeaderLocked(statusCode int) {
	if w.written {
		return
	}
	w.written = true
	dst := w.ResponseWriter.Header()
	for k, vv := range w.h {
		dst[k] = append([]string(nil), vv...)
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *timeoutResponseWriter) WriteHeader(statusCode int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.timedOut {
		w.writeHeaderLocked(statusCode)
	}
}

func (w *timeoutResponseWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	w.writeHeaderLocked(http.StatusOK)
	return w.ResponseWriter.Write(data)
}
