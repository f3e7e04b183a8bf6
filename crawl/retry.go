package crawl

import (
	"context"
	"time"
)

// FetchFunc fetches the content of a URL.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives retry diagnostics.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the standard backoff schedule for fetch
// retries.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays fetches a URL, retrying failures with the given
// delays between attempts. The number of attempts is len(delays)+1. It
// returns the last error if all attempts fail.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logf LogFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			if logf != nil {
				logf("retrying %s (attempt %d/%d): %v", url, attempt+1, maxAttempts, lastErr)
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delays[attempt-1]):
			}
		}

		content, err := fetch(ctx, url)
		if err == nil {
			return content, nil
		}
		lastErr = err
	}

	return "", lastErr
}
