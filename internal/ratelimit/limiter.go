// Package ratelimit provides a keyed token-bucket limiter used to
// throttle generation operations.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// maxTrackedKeys caps the number of distinct keys so a caller passing
// arbitrary key strings cannot grow the map without bound.
const maxTrackedKeys = 64

// Limiter applies an independent token bucket per operation key.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewLimiter creates a limiter allowing opsPerSecond sustained operations
// with the given burst, independently for each key.
func NewLimiter(opsPerSecond int, burst int) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(opsPerSecond),
		burst:    burst,
	}
}

// Allow reports whether one operation under the given key may proceed
// now. New keys beyond the tracking cap are rejected outright.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	limiter, exists := l.limiters[key]
	if !exists {
		if len(l.limiters) >= maxTrackedKeys {
			l.mu.Unlock()
			return false
		}
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Stats returns the number of tracked keys.
func (l *Limiter) Stats() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}
