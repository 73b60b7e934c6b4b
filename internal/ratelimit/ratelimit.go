// Package ratelimit provides a token bucket for pacing calls to
// rate-limited collaborators. The clock and sleep function are injectable
// so pacing behavior stays deterministic under test.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const pollInterval = 10 * time.Millisecond

// Limiter implements token bucket rate limiting.
type Limiter struct {
	mu             sync.Mutex
	tokens         int
	maxTokens      int
	refillRate     time.Duration
	lastRefillTime time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a limiter holding up to maxTokens, refilled one token per
// refillRate (e.g. 2s = one call every two seconds once the burst is spent).
func New(maxTokens int, refillRate time.Duration) *Limiter {
	return newWithClock(maxTokens, refillRate, time.Now, time.Sleep)
}

func newWithClock(maxTokens int, refillRate time.Duration, now func() time.Time, sleep func(time.Duration)) *Limiter {
	return &Limiter{
		tokens:         maxTokens,
		maxTokens:      maxTokens,
		refillRate:     refillRate,
		lastRefillTime: now(),
		now:            now,
		sleep:          sleep,
	}
}

// Wait blocks until a token is available or the context is done.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if l.tryAcquire() {
				return nil
			}
			l.sleep(pollInterval)
		}
	}
}

func (l *Limiter) tryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	elapsed := now.Sub(l.lastRefillTime)
	tokensToAdd := int(elapsed / l.refillRate)

	if tokensToAdd > 0 {
		l.tokens += tokensToAdd
		if l.tokens > l.maxTokens {
			l.tokens = l.maxTokens
		}
		l.lastRefillTime = now
	}

	if l.tokens > 0 {
		l.tokens--
		return true
	}
	return false
}
