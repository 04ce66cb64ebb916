package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type noWait struct{}

func (noWait) Wait(ctx context.Context, _ time.Duration) error { return ctx.Err() }

type identityURLs struct{}

func (identityURLs) PublicURL(p string) string { return "https://assets.example.test/" + p }

func newInternalProvider() *Provider {
	return NewProvider(identityURLs{}, DefaultLatency(), WithWaiter(noWait{}),
		WithClock(FixedClock{T: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}))
}

func histogramCount(t *testing.T, op string) uint64 {
	t.Helper()
	observer, err := providerCallDuration.GetMetricWithLabelValues(op)
	require.NoError(t, err)

	m := &dto.Metric{}
	require.NoError(t, observer.(prometheus.Metric).Write(m))
	return m.GetHistogram().GetSampleCount()
}

func TestRun_RecordsSuccessMetrics(t *testing.T) {
	p := newInternalProvider()
	before := testutil.ToFloat64(providerCallsTotal.WithLabelValues(OpBookmarks, "success"))
	beforeObs := histogramCount(t, OpBookmarks)

	items, err := p.ListBookmarks(context.Background())
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(providerCallsTotal.WithLabelValues(OpBookmarks, "success")))
	assert.Equal(t, float64(len(items)), testutil.ToFloat64(providerRecordsReturned.WithLabelValues(OpBookmarks)))
	assert.Equal(t, beforeObs+1, histogramCount(t, OpBookmarks))
}

func TestRun_RecordsCanceledMetrics(t *testing.T) {
	p := newInternalProvider()
	before := testutil.ToFloat64(providerCallsTotal.WithLabelValues(OpAnnouncements, "canceled"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.ListAnnouncements(ctx)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, before+1, testutil.ToFloat64(providerCallsTotal.WithLabelValues(OpAnnouncements, "canceled")))
}

func TestRun_EmitsSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	p := newInternalProvider()
	_, err := p.ListRecentActivity(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.ListQuickAccess(ctx)
	require.True(t, errors.Is(err, context.Canceled))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	assert.Equal(t, "dashboard.recent_activity", spans[0].Name)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)

	assert.Equal(t, "dashboard.quick_access", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
}
