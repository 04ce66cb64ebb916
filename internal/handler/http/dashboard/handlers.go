package dashboard

import (
	"context"
	"errors"
	"net/http"

	"dashboard-demo/internal/domain/entity"
	"dashboard-demo/internal/handler/http/respond"
	"dashboard-demo/internal/observability/logging"
	dashUC "dashboard-demo/internal/usecase/dashboard"
)

// Service is the read side of the demo data provider.
type Service interface {
	ListPrograms(ctx context.Context) ([]entity.ClinicalProgram, error)
	GetProgram(ctx context.Context, slug entity.ProgramSlug) (entity.ClinicalProgram, error)
	ListQuickAccess(ctx context.Context) ([]entity.QuickAccessItem, error)
	ListBookmarks(ctx context.Context) ([]entity.ResourceItem, error)
	ListRecentActivity(ctx context.Context) ([]entity.RecentActivity, error)
	ListAnnouncements(ctx context.Context) ([]entity.Announcement, error)
	Overview(ctx context.Context) (*dashUC.Overview, error)
}

// ProgramsHandler serves GET /api/programs.
type ProgramsHandler struct{ Svc Service }

// ServeHTTP lists clinical programs
// @Summary      List clinical programs
// @Description  Returns the five clinical programs in canonical order, after the simulated programs latency.
// @Tags         programs
// @Produce      json
// @Success      200 {array}  ProgramDTO "Clinical programs"
// @Failure      504 {string} string "Request timeout"
// @Failure      500 {string} string "Internal server error"
// @Router       /api/programs [get]
func (h ProgramsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	programs, err := h.Svc.ListPrograms(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapSlice(programs, toProgramDTO))
}

// ProgramHandler serves GET /api/programs/{slug}.
type ProgramHandler struct{ Svc Service }

// ServeHTTP gets one clinical program
// @Summary      Get clinical program
// @Description  Returns the program with the given slug. Slugs match case-insensitively.
// @Tags         programs
// @Produce      json
// @Param        slug path string true "Program slug" Enums(mtmthefuturetoday, timemymeds, testandtreat, hba1c, oralcontraceptives)
// @Success      200 {object} ProgramDTO "Clinical program"
// @Failure      404 {string} string "Not found - program not found"
// @Failure      504 {string} string "Request timeout"
// @Failure      500 {string} string "Internal server error"
// @Router       /api/programs/{slug} [get]
func (h ProgramHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := entity.ParseProgramSlug(r.PathValue("slug"))
	if err != nil {
		// Unknown slugs are a lookup miss, not a malformed request.
		respond.Problem(w, http.StatusNotFound, respond.NewAppError(http.StatusNotFound, "program not found", err))
		return
	}

	program, err := h.Svc.GetProgram(r.Context(), slug)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toProgramDTO(program))
}

// QuickAccessHandler serves GET /api/quick-access.
type QuickAccessHandler struct{ Svc Service }

// ServeHTTP lists quick-access tiles
// @Summary      List quick-access tiles
// @Description  Returns the four external quick-access tiles.
// @Tags         dashboard
// @Produce      json
// @Success      200 {array}  QuickAccessDTO "Quick-access tiles"
// @Failure      504 {string} string "Request timeout"
// @Failure      500 {string} string "Internal server error"
// @Router       /api/quick-access [get]
func (h QuickAccessHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListQuickAccess(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapSlice(items, toQuickAccessDTO))
}

// BookmarksHandler serves GET /api/bookmarks.
type BookmarksHandler struct{ Svc Service }

// ServeHTTP lists bookmarked resources
// @Summary      List bookmarks
// @Description  Returns the bookmarked resources with public asset URLs.
// @Tags         dashboard
// @Produce      json
// @Success      200 {array}  ResourceDTO "Bookmarked resources"
// @Failure      504 {string} string "Request timeout"
// @Failure      500 {string} string "Internal server error"
// @Router       /api/bookmarks [get]
func (h BookmarksHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListBookmarks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapSlice(items, toResourceDTO))
}

// RecentActivityHandler serves GET /api/recent-activity.
type RecentActivityHandler struct{ Svc Service }

// ServeHTTP lists recently opened resources
// @Summary      List recent activity
// @Description  Returns recently accessed resources, most recent first. Timestamps are relative to the time of the request.
// @Tags         dashboard
// @Produce      json
// @Success      200 {array}  RecentActivityDTO "Recent activity"
// @Failure      504 {string} string "Request timeout"
// @Failure      500 {string} string "Internal server error"
// @Router       /api/recent-activity [get]
func (h RecentActivityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListRecentActivity(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapSlice(items, toRecentActivityDTO))
}

// AnnouncementsHandler serves GET /api/announcements.
type AnnouncementsHandler struct{ Svc Service }

// ServeHTTP lists announcements
// @Summary      List announcements
// @Description  Returns announcements, newest first.
// @Tags         dashboard
// @Produce      json
// @Success      200 {array}  AnnouncementDTO "Announcements"
// @Failure      504 {string} string "Request timeout"
// @Failure      500 {string} string "Internal server error"
// @Router       /api/announcements [get]
func (h AnnouncementsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.ListAnnouncements(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapSlice(items, toAnnouncementDTO))
}

// OverviewHandler serves GET /api/overview.
type OverviewHandler struct{ Svc Service }

// ServeHTTP returns the whole dashboard
// @Summary      Dashboard overview
// @Description  Returns every collection in one payload. Collections load concurrently, so latency is that of the slowest one.
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} OverviewDTO "Dashboard overview"
// @Failure      504 {string} string "Request timeout"
// @Failure      500 {string} string "Internal server error"
// @Router       /api/overview [get]
func (h OverviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Svc.Overview(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toOverviewDTO(overview))
}

// writeError maps provider errors to responses. Nothing is written when the
// request context has already ended: a gone client cannot read it, and an
// expired deadline is answered by the Timeout middleware.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		logging.FromContext(r.Context()).Debug("request ended before response", "error", err)
		return
	}

	switch {
	case errors.Is(err, dashUC.ErrProgramNotFound):
		err = respond.NewAppError(http.StatusNotFound, "program not found", err)
	case errors.Is(err, context.DeadlineExceeded):
		err = respond.NewAppError(http.StatusGatewayTimeout, "request timeout", err)
	case errors.Is(err, context.Canceled):
		logging.FromContext(r.Context()).Debug("provider call cancelled", "error", err)
		return
	}
	respond.Problem(w, http.StatusInternalServerError, err)
}
