package entity

import "time"

// ClinicalProgram describes one clinical service program shown on the dashboard.
type ClinicalProgram struct {
	Slug          ProgramSlug
	Name          string
	Description   string
	Icon          string // symbolic icon name understood by the front-end
	ResourceCount int
	LastUpdated   time.Time
}

// QuickAccessItem is a shortcut tile linking straight to an asset.
type QuickAccessItem struct {
	ID       string
	Title    string
	Subtitle string
	CTA      string
	Icon     string
	URL      string
	External bool
}

// ResourceItem is a document the current user has bookmarked.
type ResourceItem struct {
	ID      string
	Name    string
	Program ProgramCode
	URL     string
}

// RecentActivity is a document the current user opened recently.
type RecentActivity struct {
	ID         string
	Name       string
	Program    ProgramCode
	AccessedAt time.Time
	URL        string
}

// Announcement is a short news item for dashboard users.
type Announcement struct {
	ID    string
	Title string
	Body  string
	Date  time.Time
}
