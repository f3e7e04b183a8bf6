package bookmirror

import (
	"context"
	"io"
)

// Fetcher retrieves remote content over plain HTTP.
// Transport failures are returned as values; implementations never panic
// on them.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body
	// decoded as text.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (content string, err error)

	// Download performs a single GET request and streams the raw response
	// body to dst, returning the number of bytes written. Nothing is
	// written on a non-2xx response.
	Download(ctx context.Context, url string, dst io.Writer) (int64, error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting so that mirroring stays
// polite to the hosts it crawls.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled while waiting.
	Wait(ctx context.Context, domain string) error
}
