package dashboard

import (
	"errors"
	"fmt"

	"dashboard-demo/internal/domain/entity"
)

// Validate builds every collection without delay and checks the dataset
// invariants: unique ids per collection, canonical program slugs, resolvable
// program codes, non-negative resource counts and well-formed asset URLs.
// It is cheap enough to back a health check.
func (p *Provider) Validate() error {
	now := p.clock.Now()
	var errs []error

	programs := buildPrograms(now, p.urls)
	seenSlugs := make(map[entity.ProgramSlug]bool, len(programs))
	for _, prog := range programs {
		if !prog.Slug.Valid() {
			errs = append(errs, fmt.Errorf("program %q: unknown slug", prog.Slug))
		}
		if seenSlugs[prog.Slug] {
			errs = append(errs, fmt.Errorf("program %q: duplicate slug", prog.Slug))
		}
		seenSlugs[prog.Slug] = true
		if prog.ResourceCount < 0 {
			errs = append(errs, fmt.Errorf("program %q: negative resource count", prog.Slug))
		}
	}
	if len(seenSlugs) != len(entity.ProgramSlugs()) {
		errs = append(errs, fmt.Errorf("programs: got %d distinct slugs, want %d", len(seenSlugs), len(entity.ProgramSlugs())))
	}

	var quick []record
	for _, it := range buildQuickAccess(now, p.urls) {
		quick = append(quick, record{id: it.ID, url: it.URL})
	}
	errs = append(errs, checkRecords(OpQuickAccess, quick, true)...)

	var bookmarks []record
	for _, it := range buildBookmarks(now, p.urls) {
		bookmarks = append(bookmarks, record{id: it.ID, url: it.URL, program: it.Program})
	}
	errs = append(errs, checkRecords(OpBookmarks, bookmarks, true)...)

	var recent []record
	for _, it := range buildRecentActivity(now, p.urls) {
		recent = append(recent, record{id: it.ID, url: it.URL, program: it.Program})
	}
	errs = append(errs, checkRecords(OpRecentActivity, recent, true)...)

	var news []record
	for _, it := range buildAnnouncements(now, p.urls) {
		news = append(news, record{id: it.ID})
	}
	errs = append(errs, checkRecords(OpAnnouncements, news, false)...)

	return errors.Join(errs...)
}

// record is the part of a collection item Validate inspects.
type record struct {
	id      string
	url     string
	program entity.ProgramCode
}

func checkRecords(op string, items []record, withURL bool) []error {
	var errs []error
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.id == "" {
			errs = append(errs, fmt.Errorf("%s: empty id", op))
		}
		if seen[it.id] {
			errs = append(errs, fmt.Errorf("%s %q: duplicate id", op, it.id))
		}
		seen[it.id] = true

		if withURL {
			if err := entity.ValidatePublicURL(it.url); err != nil {
				errs = append(errs, fmt.Errorf("%s %q: %w", op, it.id, err))
			}
		}
		if it.program != "" && !it.program.Slug().Valid() {
			errs = append(errs, fmt.Errorf("%s %q: unmapped program code %q", op, it.id, it.program))
		}
	}
	return errs
}
