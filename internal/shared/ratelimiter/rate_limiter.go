// Package ratelimiter provides a fixed-window rate limiter used to throttle
// login attempts.
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiterInterface limits the frequency of an operation.
type RateLimiterInterface interface {
	Allow() bool
}

// RateLimiter counts operations within a fixed window and rejects the
// overflow. Safe for concurrent use.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // allowed operations per window
	interval  time.Duration // window length
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter allowing limit operations per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Allow reports whether another operation fits in the current window.
// The count resets once the interval has elapsed.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	if rl.count >= rl.limit {
		return false
	}
	rl.count++
	return true
}
