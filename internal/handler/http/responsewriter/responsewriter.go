// Package responsewriter records the status and body size of a response so
// logging, metrics and tracing middleware can report them after the handler
// returns.
package responsewriter

import (
	"context"
	"errors"
	"net/http"
)

// StatusClientClosedRequest labels requests the client abandoned before a
// response was written (nginx convention).
const StatusClientClosedRequest = 499

// ResponseWriter is an http.ResponseWriter that remembers what it sent.
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	size    int
	written bool
}

// Wrap returns w as a *ResponseWriter. Stacked middleware share a single
// recorder: wrapping one twice returns it unchanged.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	if rw, ok := w.(*ResponseWriter); ok {
		return rw
	}
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards only the first status code.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.written {
		return
	}
	w.status, w.written = code, true
	w.ResponseWriter.WriteHeader(code)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Flush implements http.Flusher when the underlying writer does.
func (w *ResponseWriter) Flush() {
	w.WriteHeader(http.StatusOK)
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// StatusCode is the status sent, or 200 if the handler never wrote.
func (w *ResponseWriter) StatusCode() int { return w.status }

// Status is StatusCode, except when nothing was written and ctx has ended:
// a cancelled request reports 499 and an expired deadline 504.
func (w *ResponseWriter) Status(ctx context.Context) int {
	if w.written {
		return w.status
	}
	switch err := ctx.Err(); {
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return w.status
}

// BytesWritten is the body size written so far.
func (w *ResponseWriter) BytesWritten() int { return w.size }

// Written reports whether headers have gone out.
func (w *ResponseWriter) Written() bool { return w.written }

// Unwrap supports http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
