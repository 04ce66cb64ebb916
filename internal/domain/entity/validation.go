package entity

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// maxURLLength defines the maximum allowed length for asset URLs.
const maxURLLength = 2048

// ISOLayout is the timestamp format used on the wire.
// It matches JavaScript's Date.prototype.toISOString output.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO renders t in UTC using ISOLayout.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// ParseISO parses a timestamp produced by FormatISO.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "timestamp", Message: fmt.Sprintf("invalid ISO-8601 value %q", s)}
	}
	return t, nil
}

// ValidatePublicURL checks that rawURL is an absolute http(s) URL with a host
// and no unencoded whitespace.
// Returns a ValidationError if the URL is invalid or empty.
func ValidatePublicURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	if strings.ContainsAny(rawURL, " \t\r\n") {
		return &ValidationError{Field: "url", Message: "url cannot contain unencoded whitespace"}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	return nil
}
