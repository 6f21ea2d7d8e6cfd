package ai

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the fallback requests-per-minute toward the
// inference API when an invalid limit is configured.
const DefaultRateLimit = 10

// RateLimiter paces outbound inference calls to stay inside the AI
// provider's quota. This is separate from the inbound per-client
// admission limiter; it smooths the requests that were already
// admitted.
type RateLimiter struct {
	mu        sync.Mutex
	limiter   *rate.Limiter
	perMinute int
}

// NewRateLimiter creates a limiter allowing perMinute requests per
// minute. Non-positive values fall back to DefaultRateLimit.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	return &RateLimiter{
		limiter:   newLimiter(perMinute),
		perMinute: perMinute,
	}
}

func newLimiter(perMinute int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1)
}

// Wait blocks until the next call may be sent or the context ends.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Wait(ctx)
}

// GetLimit returns the current requests-per-minute limit.
func (r *RateLimiter) GetLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.perMinute
}

// SetLimit updates the requests-per-minute limit. Non-positive values
// reset to DefaultRateLimit.
func (r *RateLimiter) SetLimit(perMinute int) {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.perMinute = perMinute
	r.limiter = newLimiter(perMinute)
}
