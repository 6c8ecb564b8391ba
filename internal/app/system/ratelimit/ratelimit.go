// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands out a token bucket per key. It is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	keys    map[string]*entry
	every   time.Duration
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New allows burst events per key, refilling one every interval.
// A non-positive burst yields a nil Limiter, which allows everything.
func New(every time.Duration, burst int) *Limiter {
	if burst <= 0 {
		return nil
	}
	return &Limiter{
		keys:    make(map[string]*entry),
		every:   every,
		burst:   burst,
		idleTTL: every * time.Duration(burst) * 2,
		now:     time.Now,
	}
}

// Allow reports whether key may act now and spends a token if so.
func (l *Limiter) Allow(key string) bool {
	if l == nil {
		return true
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)
	e, ok := l.keys[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Every(l.every), l.burst)}
		l.keys[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Reset forgets key.
func (l *Limiter) Reset(key string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	delete(l.keys, key)
	l.mu.Unlock()
}

// sweep drops keys idle long enough to have a full bucket again.
// Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if l.idleTTL <= 0 {
		return
	}
	for k, e := range l.keys {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.keys, k)
		}
	}
}
