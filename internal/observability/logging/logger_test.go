package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"dashboard-demo/internal/handler/http/requestid"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "")

	logger.Debug("hidden")
	logger.Info("shown", slog.String("operation", "programs"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output should be a single JSON line")
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "programs", entry["operation"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "debug", "text")

	logger.Debug("snapshot written")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="snapshot written"`)
}

func TestNewLogger_ReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	logger := NewLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "info", "")

	ctx := requestid.WithRequestID(context.Background(), "req-123")
	WithRequestID(ctx, base).Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)

	buf.Reset()
	same := WithRequestID(context.Background(), base)
	assert.Same(t, base, same)
}

func TestWithTrace(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, "info", "")

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	WithTrace(ctx, base).Info("traced")
	assert.Contains(t, buf.String(), `"trace_id":"4bf92f3577b34da6a3ce929d0e0e4736"`)
	assert.Contains(t, buf.String(), `"span_id":"00f067aa0ba902b7"`)

	assert.Same(t, base, WithTrace(context.Background(), base))
}

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	custom := New(&bytes.Buffer{}, "debug", "")
	ctx := WithLogger(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))
}
