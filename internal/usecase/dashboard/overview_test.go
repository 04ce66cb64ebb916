package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-demo/internal/usecase/dashboard"
)

func TestOverview_RunsAccessorsConcurrently(t *testing.T) {
	latency := dashboard.Latency{
		Programs:       100 * time.Millisecond,
		QuickAccess:    100 * time.Millisecond,
		Bookmarks:      100 * time.Millisecond,
		RecentActivity: 100 * time.Millisecond,
		Announcements:  100 * time.Millisecond,
	}
	p := dashboard.NewProvider(stubURLs{}, latency)

	start := time.Now()
	ov, err := p.Overview(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Len(t, ov.Programs, 5)
	assert.Len(t, ov.QuickAccess, 4)
	assert.Len(t, ov.Bookmarks, 4)
	assert.Len(t, ov.RecentActivity, 3)
	assert.Len(t, ov.Announcements, 2)

	assert.GreaterOrEqual(t, elapsed, latency.Max())
	// Sequential execution would take 500ms.
	assert.Less(t, elapsed, 400*time.Millisecond)
}

func TestOverview_Canceled(t *testing.T) {
	p := dashboard.NewProvider(stubURLs{}, dashboard.DefaultLatency())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ov, err := p.Overview(ctx)
	assert.Nil(t, ov)
	assert.True(t, errors.Is(err, context.Canceled), "err = %v", err)
}

func TestLatency_Max(t *testing.T) {
	assert.Equal(t, 200*time.Millisecond, dashboard.DefaultLatency().Max())
	assert.Equal(t, time.Duration(0), dashboard.Latency{}.Max())
}

func TestTimerWaiter(t *testing.T) {
	w := dashboard.TimerWaiter{}

	start := time.Now()
	require.NoError(t, w.Wait(context.Background(), 30*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	require.NoError(t, w.Wait(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Wait(ctx, time.Hour), context.Canceled)
}
