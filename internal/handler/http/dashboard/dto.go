// Package dashboard provides HTTP handlers that serve the demo dashboard
// collections as JSON.
package dashboard

import (
	"dashboard-demo/internal/domain/entity"
	dashUC "dashboard-demo/internal/usecase/dashboard"
)

// ProgramDTO represents a clinical program on the wire.
type ProgramDTO struct {
	Slug           string `json:"slug" example:"mtmthefuturetoday"`
	Name           string `json:"name" example:"MTM The Future Today"`
	Description    string `json:"description"`
	Icon           string `json:"icon" example:"pill"`
	ResourceCount  int    `json:"resourceCount" example:"18"`
	LastUpdatedISO string `json:"lastUpdatedISO" example:"2026-10-16T12:00:00.000Z"`
}

// QuickAccessDTO represents a quick-access tile.
type QuickAccessDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTA      string `json:"cta"`
	Icon     string `json:"icon"`
	URL      string `json:"url"`
	External bool   `json:"external"`
}

// ResourceDTO represents a bookmarked resource.
type ResourceDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Program     string `json:"program" example:"MTM"`
	ProgramSlug string `json:"programSlug,omitempty" example:"mtmthefuturetoday"`
	URL         string `json:"url"`
}

// RecentActivityDTO represents a recently opened resource.
type RecentActivityDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Program       string `json:"program"`
	ProgramSlug   string `json:"programSlug,omitempty"`
	AccessedAtISO string `json:"accessedAtISO"`
	URL           string `json:"url"`
}

// AnnouncementDTO represents a dashboard announcement.
type AnnouncementDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	DateISO string `json:"dateISO"`
}

// OverviewDTO bundles every collection the dashboard home page renders.
type OverviewDTO struct {
	Programs       []ProgramDTO        `json:"programs"`
	QuickAccess    []QuickAccessDTO    `json:"quickAccess"`
	Bookmarks      []ResourceDTO       `json:"bookmarks"`
	RecentActivity []RecentActivityDTO `json:"recentActivity"`
	Announcements  []AnnouncementDTO   `json:"announcements"`
}

func toProgramDTO(p entity.ClinicalProgram) ProgramDTO {
	return ProgramDTO{
		Slug:           string(p.Slug),
		Name:           p.Name,
		Description:    p.Description,
		Icon:           p.Icon,
		ResourceCount:  p.ResourceCount,
		LastUpdatedISO: entity.FormatISO(p.LastUpdated),
	}
}

func toQuickAccessDTO(q entity.QuickAccessItem) QuickAccessDTO {
	return QuickAccessDTO{
		ID:       q.ID,
		Title:    q.Title,
		Subtitle: q.Subtitle,
		CTA:      q.CTA,
		Icon:     q.Icon,
		URL:      q.URL,
		External: q.External,
	}
}

func toResourceDTO(r entity.ResourceItem) ResourceDTO {
	return ResourceDTO{
		ID:          r.ID,
		Name:        r.Name,
		Program:     string(r.Program),
		ProgramSlug: string(r.Program.Slug()),
		URL:         r.URL,
	}
}

func toRecentActivityDTO(a entity.RecentActivity) RecentActivityDTO {
	return RecentActivityDTO{
		ID:            a.ID,
		Name:          a.Name,
		Program:       string(a.Program),
		ProgramSlug:   string(a.Program.Slug()),
		AccessedAtISO: entity.FormatISO(a.AccessedAt),
		URL:           a.URL,
	}
}

func toAnnouncementDTO(a entity.Announcement) AnnouncementDTO {
	return AnnouncementDTO{
		ID:      a.ID,
		Title:   a.Title,
		Body:    a.Body,
		DateISO: entity.FormatISO(a.Date),
	}
}

// mapSlice converts every element and never returns nil, so empty
// collections encode as [] rather than null.
func mapSlice[T, D any](in []T, f func(T) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func toOverviewDTO(o *dashUC.Overview) OverviewDTO {
	return OverviewDTO{
		Programs:       mapSlice(o.Programs, toProgramDTO),
		QuickAccess:    mapSlice(o.QuickAccess, toQuickAccessDTO),
		Bookmarks:      mapSlice(o.Bookmarks, toResourceDTO),
		RecentActivity: mapSlice(o.RecentActivity, toRecentActivityDTO),
		Announcements:  mapSlice(o.Announcements, toAnnouncementDTO),
	}
}
