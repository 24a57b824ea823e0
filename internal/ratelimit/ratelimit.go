// Package ratelimit caps how many Gemini requests a run may issue, with
// cache-hit accounting so the logs show how much quota the caches saved.
package ratelimit

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type Limiter struct {
	mu          sync.Mutex
	count       int
	max         int // 0 = unlimited
	resetTime   time.Time
	tokensSaved int
	cacheHits   int
	cacheMisses int
}

// New creates a limiter with the given daily cap.
func New(max int) *Limiter {
	return &Limiter{
		max:       max,
		resetTime: time.Now().Add(24 * time.Hour),
	}
}

// Allow reports whether another request fits under the cap.
func (rl *Limiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.max > 0 && rl.count >= rl.max {
		slog.Warn("Gemini rate limit reached", "used", rl.count, "max", rl.max)
		return false
	}
	return true
}

// Use consumes one request slot.
func (rl *Limiter) Use() error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.checkReset()

	if rl.max > 0 && rl.count >= rl.max {
		return fmt.Errorf("gemini rate limit exceeded (%d/%d)", rl.count, rl.max)
	}

	rl.count++
	rl.cacheMisses++
	slog.Debug("AI usage", "used", rl.count, "max", rl.max)
	return nil
}

// RecordCacheHit records a request answered from cache instead of the API.
func (rl *Limiter) RecordCacheHit(estimatedTokens int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.cacheHits++
	rl.tokensSaved += estimatedTokens
}

// CacheHitRate returns the cache hit percentage for this window.
func (rl *Limiter) CacheHitRate() float64 {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	total := rl.cacheHits + rl.cacheMisses
	if total == 0 {
		return 0
	}
	return float64(rl.cacheHits) / float64(total) * 100
}

// checkReset rolls the window daily. Caller holds the lock.
func (rl *Limiter) checkReset() {
	if time.Now().After(rl.resetTime) {
		rl.count = 0
		rl.cacheHits = 0
		rl.cacheMisses = 0
		rl.tokensSaved = 0
		rl.resetTime = time.Now().Add(24 * time.Hour)
	}
}
