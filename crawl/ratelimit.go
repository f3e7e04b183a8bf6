package crawl

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/bookmirror"
	"golang.org/x/time/rate"
)

// Ensure DomainLimiter implements bookmirror.DomainLimiter at compile time.
var _ bookmirror.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces a minimum delay between requests to the same
// domain. Different domains are limited independently.
type DomainLimiter struct {
	delay time.Duration

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewDomainLimiter creates a limiter that spaces requests to each domain by
// delay. A non-positive delay disables limiting.
func NewDomainLimiter(delay time.Duration) *DomainLimiter {
	return &DomainLimiter{
		delay:    delay,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to the given domain is allowed, or the
// context is cancelled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[domain]
	if !ok {
		limit := rate.Inf
		if d.delay > 0 {
			limit = rate.Every(d.delay)
		}
		l = rate.NewLimiter(limit, 1)
		d.limiters[domain] = l
	}
	return l
}
