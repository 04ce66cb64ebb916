// Package pathutil maps request paths onto the route templates used for
// metric labels and span names.
package pathutil

import "strings"

// Unmatched is the template reported for any path outside the served routes.
const Unmatched = "other"

// Routes lists every served path in ServeMux syntax. A {name} segment matches
// any single non-empty path segment.
var Routes = []string{
	"/api/programs",
	"/api/programs/{slug}",
	"/api/quick-access",
	"/api/bookmarks",
	"/api/recent-activity",
	"/api/announcements",
	"/api/overview",
	"/health",
	"/live",
	"/metrics",
}

var routes = func() [][]string {
	out := make([][]string, len(Routes))
	for i, r := range Routes {
		out[i] = splitPath(r)
	}
	return out
}()

// NormalizePath returns the template of the route matching path, with
// wildcards rendered as :name, or Unmatched when no route applies.
//
//	NormalizePath("/api/programs/hba1c")   // "/api/programs/:slug"
//	NormalizePath("/api/overview/")        // "/api/overview"
//	NormalizePath("/health?verbose=1")     // "/health"
//	NormalizePath("/wp-login.php")         // "other"
func NormalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	segs := splitPath(path)
	for _, route := range routes {
		if tmpl, ok := match(route, segs); ok {
			return tmpl
		}
	}
	return Unmatched
}

func match(route, segs []string) (string, bool) {
	if len(route) != len(segs) {
		return "", false
	}
	var b strings.Builder
	for i, r := range route {
		b.WriteByte('/')
		if name, ok := wildcard(r); ok {
			if segs[i] == "" {
				return "", false
			}
			b.WriteByte(':')
			b.WriteString(name)
			continue
		}
		if r != segs[i] {
			return "", false
		}
		b.WriteString(r)
	}
	return b.String(), true
}

func wildcard(seg string) (string, bool) {
	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") && len(seg) > 2 {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}

func splitPath(p string) []string {
	return strings.Split(strings.TrimPrefix(p, "/"), "/")
}
