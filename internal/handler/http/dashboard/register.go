package dashboard

import (
	"net/http"
)

// Register registers the dashboard collection routes with the given mux.
// All routes are read-only.
func Register(mux *http.ServeMux, svc Service) {
	mux.Handle("GET /api/programs", ProgramsHandler{svc})
	mux.Handle("GET /api/programs/{slug}", ProgramHandler{svc})
	mux.Handle("GET /api/quick-access", QuickAccessHandler{svc})
	mux.Handle("GET /api/bookmarks", BookmarksHandler{svc})
	mux.Handle("GET /api/recent-activity", RecentActivityHandler{svc})
	mux.Handle("GET /api/announcements", AnnouncementsHandler{svc})
	mux.Handle("GET /api/overview", OverviewHandler{svc})
}
