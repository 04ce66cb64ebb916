// Package storage builds public URLs for files held in the public asset store.
package storage

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// publicObjectPrefix is the path under which the store serves public objects.
const publicObjectPrefix = "/storage/v1/object/public/"

// Sentinel errors for storage configuration.
var (
	// ErrInvalidBaseURL indicates that the configured base URL is not an absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid storage base URL")

	// ErrMissingBucket indicates that no bucket name was configured.
	ErrMissingBucket = errors.New("storage bucket is required")
)

// Config holds settings for the public asset store.
type Config struct {
	// BaseURL is the project URL of the store, e.g. "https://xyz.supabase.co".
	BaseURL string `yaml:"base_url"`

	// Bucket is the public bucket holding program files.
	Bucket string `yaml:"bucket"`
}

// DefaultConfig returns settings pointing at a local development store.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:54321",
		Bucket:  "resources",
	}
}

// PublicURLBuilder maps relative storage paths to absolute public URLs.
// It is immutable and safe for concurrent use.
type PublicURLBuilder struct {
	prefix string
}

// NewPublicURLBuilder validates cfg and returns a builder for it.
func NewPublicURLBuilder(cfg Config) (*PublicURLBuilder, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	bucket := strings.Trim(strings.TrimSpace(cfg.Bucket), "/")
	if bucket == "" {
		return nil, ErrMissingBucket
	}

	root := strings.TrimRight(base.Scheme+"://"+base.Host+base.EscapedPath(), "/")
	return &PublicURLBuilder{
		prefix: root + publicObjectPrefix + url.PathEscape(bucket) + "/",
	}, nil
}

// PublicURL returns the absolute public URL for relativePath.
//
// Segments may arrive already percent-encoded ("Test%20and%20Treat.pdf") or raw;
// each is decoded once and re-escaped so both forms yield the same URL.
func (b *PublicURLBuilder) PublicURL(relativePath string) string {
	relativePath = strings.TrimLeft(relativePath, "/")
	segments := strings.Split(relativePath, "/")
	for i, seg := range segments {
		segments[i] = normalizeSegment(seg)
	}
	return b.prefix + strings.Join(segments, "/")
}

func normalizeSegment(seg string) string {
	decoded, err := url.PathUnescape(seg)
	if err != nil {
		// Stray '%' that is not an escape: encode the segment as-is.
		return url.PathEscape(seg)
	}
	return url.PathEscape(decoded)
}
