package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"dashboard-demo/internal/domain/entity"
)

// Overview is everything the dashboard home page renders.
type Overview struct {
	Programs       []entity.ClinicalProgram
	QuickAccess    []entity.QuickAccessItem
	Bookmarks      []entity.ResourceItem
	RecentActivity []entity.RecentActivity
	Announcements  []entity.Announcement
}

// Overview fetches all five collections concurrently. It completes after the
// slowest accessor, not after the sum of their delays.
func (p *Provider) Overview(ctx context.Context) (*Overview, error) {
	var out Overview
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() (err error) {
		out.Programs, err = p.ListPrograms(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		out.QuickAccess, err = p.ListQuickAccess(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		out.Bookmarks, err = p.ListBookmarks(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		out.RecentActivity, err = p.ListRecentActivity(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		out.Announcements, err = p.ListAnnouncements(egCtx)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}
	return &out, nil
}
