package responsewriter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWrap_Defaults(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, 0, rw.BytesWritten())
	assert.False(t, rw.Written())
}

func TestWrap_Idempotent(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Same(t, rw, Wrap(rw))
}

func TestResponseWriter_RecordsStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError) // ignored
	n, err := rw.Write([]byte(`{"error":"program not found"}`))

	assert.NoError(t, err)
	assert.Equal(t, 29, n)
	assert.Equal(t, http.StatusNotFound, rw.StatusCode())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 29, rw.BytesWritten())
	assert.True(t, rw.Written())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	_, _ = rw.Write([]byte("[]"))
	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, rec, rw.Unwrap())
}

func TestFlush_SendsHeaderAndForwards(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, rw.Written())
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatus_EndedContextWithoutResponse(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()

	tests := []struct {
		name  string
		ctx   context.Context
		write bool
		want  int
	}{
		{name: "live context", ctx: context.Background(), want: http.StatusOK},
		{name: "client went away", ctx: canceled, want: StatusClientClosedRequest},
		{name: "deadline passed", ctx: expired, want: http.StatusGatewayTimeout},
		{name: "written before cancel", ctx: canceled, write: true, want: http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw := Wrap(httptest.NewRecorder())
			if tt.write {
				rw.WriteHeader(http.StatusAccepted)
			}
			assert.Equal(t, tt.want, rw.Status(tt.ctx))
		})
	}
}
