package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"dashboard-demo/internal/domain/entity"
	"dashboard-demo/internal/observability/tracing"
)

// Operation names used in metrics and span names.
const (
	OpPrograms       = "programs"
	OpProgram        = "program"
	OpQuickAccess    = "quick_access"
	OpBookmarks      = "bookmarks"
	OpRecentActivity = "recent_activity"
	OpAnnouncements  = "announcements"
)

// PublicURLBuilder maps a relative asset path to an absolute public URL.
type PublicURLBuilder interface {
	PublicURL(relativePath string) string
}

// Provider serves the dashboard demo collections.
// It holds no mutable state; any number of calls may run concurrently.
type Provider struct {
	urls    PublicURLBuilder
	latency Latency
	clock   Clock
	waiter  Waiter
}

// Option customizes a Provider.
type Option func(*Provider)

// WithClock overrides the clock used for relative timestamps.
func WithClock(c Clock) Option {
	return func(p *Provider) { p.clock = c }
}

// WithWaiter overrides how simulated latency is spent.
func WithWaiter(w Waiter) Option {
	return func(p *Provider) { p.waiter = w }
}

// NewProvider creates a Provider. urls must not be nil.
func NewProvider(urls PublicURLBuilder, latency Latency, opts ...Option) *Provider {
	p := &Provider{
		urls:    urls,
		latency: latency,
		clock:   SystemClock{},
		waiter:  TimerWaiter{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Latency returns the configured simulated delays.
func (p *Provider) Latency() Latency {
	return p.latency
}

// ListPrograms returns the five clinical programs in canonical slug order.
func (p *Provider) ListPrograms(ctx context.Context) ([]entity.ClinicalProgram, error) {
	return run(ctx, p, OpPrograms, p.latency.Programs, buildPrograms)
}

// GetProgram returns the program with the given slug.
// Returns ErrProgramNotFound if no program matches.
func (p *Provider) GetProgram(ctx context.Context, slug entity.ProgramSlug) (entity.ClinicalProgram, error) {
	programs, err := run(ctx, p, OpProgram, p.latency.Programs, buildPrograms)
	if err != nil {
		return entity.ClinicalProgram{}, err
	}
	for _, prog := range programs {
		if prog.Slug == slug {
			return prog, nil
		}
	}
	return entity.ClinicalProgram{}, ErrProgramNotFound
}

// ListQuickAccess returns the quick-access tiles. Every tile links to an external asset.
func (p *Provider) ListQuickAccess(ctx context.Context) ([]entity.QuickAccessItem, error) {
	return run(ctx, p, OpQuickAccess, p.latency.QuickAccess, buildQuickAccess)
}

// ListBookmarks returns the current user's bookmarked resources.
func (p *Provider) ListBookmarks(ctx context.Context) ([]entity.ResourceItem, error) {
	return run(ctx, p, OpBookmarks, p.latency.Bookmarks, buildBookmarks)
}

// ListRecentActivity returns recently opened resources, most recent first.
func (p *Provider) ListRecentActivity(ctx context.Context) ([]entity.RecentActivity, error) {
	return run(ctx, p, OpRecentActivity, p.latency.RecentActivity, buildRecentActivity)
}

// ListAnnouncements returns announcements, newest first.
func (p *Provider) ListAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	return run(ctx, p, OpAnnouncements, p.latency.Announcements, buildAnnouncements)
}

// run waits out the simulated delay and then builds the collection against a
// "now" read after the wait. The only error is a done context.
func run[T any](
	ctx context.Context,
	p *Provider,
	op string,
	delay time.Duration,
	build func(now time.Time, urls PublicURLBuilder) []T,
) ([]T, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "dashboard."+op)
	defer span.End()
	span.SetAttributes(
		attribute.String("dashboard.operation", op),
		attribute.Int64("dashboard.simulated_delay_ms", delay.Milliseconds()),
	)

	start := time.Now()
	defer func() {
		providerCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if err := p.waiter.Wait(ctx, delay); err != nil {
		providerCallsTotal.WithLabelValues(op, "canceled").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "canceled")
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := build(p.clock.Now(), p.urls)

	providerCallsTotal.WithLabelValues(op, "success").Inc()
	providerRecordsReturned.WithLabelValues(op).Set(float64(len(out)))
	span.SetAttributes(attribute.Int("dashboard.records", len(out)))
	return out, nil
}
