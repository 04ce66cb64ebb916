package dashboard

import (
	"context"
	"time"
)

// Clock supplies the "now" that relative timestamps are computed from.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. Useful for snapshots and tests.
type FixedClock struct {
	T time.Time
}

// Now returns c.T.
func (c FixedClock) Now() time.Time { return c.T }

// Waiter simulates backend latency.
type Waiter interface {
	// Wait blocks for d or until ctx is done, whichever comes first.
	// It returns ctx.Err() if the context ended the wait.
	Wait(ctx context.Context, d time.Duration) error
}

// TimerWaiter waits on a runtime timer.
type TimerWaiter struct{}

// Wait implements Waiter.
func (TimerWaiter) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Latency holds the simulated delay of each accessor.
// Zero disables the delay for that accessor.
type Latency struct {
	Programs       time.Duration `yaml:"programs"`
	QuickAccess    time.Duration `yaml:"quick_access"`
	Bookmarks      time.Duration `yaml:"bookmarks"`
	RecentActivity time.Duration `yaml:"recent_activity"`
	Announcements  time.Duration `yaml:"announcements"`
}

// DefaultLatency returns the delays the dashboard was designed against.
func DefaultLatency() Latency {
	return Latency{
		Programs:       200 * time.Millisecond,
		QuickAccess:    150 * time.Millisecond,
		Bookmarks:      120 * time.Millisecond,
		RecentActivity: 160 * time.Millisecond,
		Announcements:  100 * time.Millisecond,
	}
}

// Max returns the largest configured delay.
func (l Latency) Max() time.Duration {
	m := l.Programs
	for _, d := range []time.Duration{l.QuickAccess, l.Bookmarks, l.RecentActivity, l.Announcements} {
		if d > m {
			m = d
		}
	}
	return m
}
