package httputil

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out outgoing requests so that consecutive calls to Wait return
// at least one interval apart. The first call returns immediately.
//
// A Pacer is meant to be shared by everything that talks to the same API
// through the same credential.
type Pacer struct {
	interval time.Duration
	bucket   *rate.Limiter
}

// NewPacer creates a Pacer with the given minimum spacing. An interval of
// zero or less disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer{
		interval: interval,
		bucket:   rate.NewLimiter(limit, 1),
	}
}

// Wait blocks until the next request may be sent or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil {
		return ctx.Err()
	}
	return p.bucket.Wait(ctx)
}

// Interval returns the configured minimum spacing.
func (p *Pacer) Interval() time.Duration {
	if p == nil {
		return 0
	}
	return p.interval
}
