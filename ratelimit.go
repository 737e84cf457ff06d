package elastic

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures the RateLimit middleware.
type RateLimitConfig struct {
	Rate            float64               // requests per second
	Burst           int                   // max burst (default: 1)
	KeyFunc         func(*Request) string // default: one limiter for all requests
	CleanupInterval time.Duration         // how often to prune idle limiters (default: 1m)
	MaxIdle         time.Duration         // remove limiters idle longer than this (default: 5m)
}

// RateLimit returns middleware that throttles outgoing requests. Callers
// block until a token is available or ctx is done.
func RateLimit(cfg RateLimitConfig) TransportMiddleware {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(*Request) string { return "" }
	}
	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	maxIdle := cfg.MaxIdle
	if maxIdle <= 0 {
		maxIdle = 5 * time.Minute
	}

	var (
		mu          sync.Mutex
		limiters    = make(map[string]*limiterEntry)
		lastCleanup time.Time
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		now := time.Now()

		// Lazy cleanup of idle limiters.
		if now.Sub(lastCleanup) >= cleanupInterval {
			for k, e := range limiters {
				if now.Sub(e.lastSeen) > maxIdle {
					delete(limiters, k)
				}
			}
			lastCleanup = now
		}

		entry, ok := limiters[key]
		if !ok {
			entry = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst)}
			limiters[key] = entry
		}
		entry.lastSeen = now
		return entry.limiter
	}

	return func(next Transport) Transport {
		return TransportFunc(func(ctx context.Context, req *Request) (*Response, error) {
			if err := limiterFor(cfg.KeyFunc(req)).Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
			return next.Perform(ctx, req)
		})
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}
