package dashboard

import (
	"context"
	"fmt"
	"sort"
)

// collections maps the public collection names to a fetch returning DTOs.
var collections = map[string]func(context.Context, Service) (any, error){
	"programs": func(ctx context.Context, svc Service) (any, error) {
		v, err := svc.ListPrograms(ctx)
		return mapSlice(v, toProgramDTO), err
	},
	"quick-access": func(ctx context.Context, svc Service) (any, error) {
		v, err := svc.ListQuickAccess(ctx)
		return mapSlice(v, toQuickAccessDTO), err
	},
	"bookmarks": func(ctx context.Context, svc Service) (any, error) {
		v, err := svc.ListBookmarks(ctx)
		return mapSlice(v, toResourceDTO), err
	},
	"recent-activity": func(ctx context.Context, svc Service) (any, error) {
		v, err := svc.ListRecentActivity(ctx)
		return mapSlice(v, toRecentActivityDTO), err
	},
	"announcements": func(ctx context.Context, svc Service) (any, error) {
		v, err := svc.ListAnnouncements(ctx)
		return mapSlice(v, toAnnouncementDTO), err
	},
}

// CollectionNames lists the names Snapshot accepts, sorted.
func CollectionNames() []string {
	names := make([]string, 0, len(collections))
	for name := range collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns the wire form of one collection, or of the whole overview
// when name is empty. The result encodes exactly like the matching API route.
func Snapshot(ctx context.Context, svc Service, name string) (any, error) {
	if name == "" {
		o, err := svc.Overview(ctx)
		if err != nil {
			return nil, err
		}
		return toOverviewDTO(o), nil
	}

	fetch, ok := collections[name]
	if !ok {
		return nil, fmt.Errorf("unknown collection %q (want one of %v)", name, CollectionNames())
	}
	out, err := fetch(ctx, svc)
	if err != nil {
		return nil, err
	}
	return out, nil
}
