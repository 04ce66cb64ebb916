package middleware

import (
	"strings"
)

// WhitelistValidator matches origins against a fixed list. Comparison is
// case-insensitive and ignores a trailing slash.
type WhitelistValidator struct {
	allowedOrigins []string
}

// NewWhitelistValidator normalizes origins and drops empty entries.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	normalized := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = normalizeOrigin(origin)
		if origin == "" {
			continue
		}
		normalized = append(normalized, origin)
	}

	return &WhitelistValidator{allowedOrigins: normalized}
}

// IsAllowed reports whether origin is in the whitelist. "*" in the list
// allows any origin.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}

	for _, allowed := range v.allowedOrigins {
		if allowed == "*" || origin == allowed {
			return true
		}
	}
	return false
}

// GetAllowedOrigins returns a copy of the normalized whitelist.
func (v *WhitelistValidator) GetAllowedOrigins() []string {
	out := make([]string, len(v.allowedOrigins))
	copy(out, v.allowedOrigins)
	return out
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}
