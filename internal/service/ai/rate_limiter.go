package ai

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default number of provider calls per minute.
const DefaultRateLimit = 30

// RateLimiter paces outbound provider calls. This is separate from the
// per-client admission limiter: it protects the upstream API, not the
// HTTP surface.
type RateLimiter struct {
	mu        sync.Mutex
	limiter   *rate.Limiter
	perMinute int
}

// NewRateLimiter creates a limiter allowing perMinute calls per minute.
// Non-positive values fall back to DefaultRateLimit.
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{}
	rl.SetLimit(perMinute)
	return rl
}

// Wait blocks until a call may proceed or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Wait(ctx)
}

// SetLimit updates the per-minute call budget. Non-positive values
// reset to DefaultRateLimit.
func (r *RateLimiter) SetLimit(perMinute int) {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.perMinute = perMinute
	r.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute)
}

// GetLimit returns the current per-minute call budget.
func (r *RateLimiter) GetLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.perMinute
}
