// Package ratelimit implements a per-client sliding-window admission
// limiter. The window is measured continuously from the supplied
// instant, not aligned to calendar buckets, and every decision is
// recomputed from the client's surviving timestamps.
package ratelimit

import (
	"errors"
	"sync"
	"time"
)

const (
	DefaultLimit  = 10
	DefaultWindow = time.Hour
)

// ErrInvalidConfig is returned by New for a non-positive limit or window.
var ErrInvalidConfig = errors.New("ratelimit: limit and window must be positive")

// Decision is the outcome of one admission attempt.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Status is a read-only snapshot of one client's quota.
type Status struct {
	Limit     int
	Used      int
	Remaining int
	ResetIn   time.Duration
}

// Limiter tracks admission timestamps per opaque client key. Client
// keys are not parsed or validated here; the empty string is one
// (degenerate) shared bucket. State lives in memory only, so a process
// restart resets every quota.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string][]time.Time
}

func New(limit int, window time.Duration) (*Limiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, ErrInvalidConfig
	}
	return &Limiter{
		limit:   limit,
		window:  window,
		clients: make(map[string][]time.Time),
	}, nil
}

// Admit records one request for clientID at instant now if the client
// has quota left. The prune-check-append sequence runs under the lock,
// so concurrent admissions for one client cannot both take the last
// slot.
func (l *Limiter) Admit(clientID string, now time.Time) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	window := l.pruneLocked(clientID, now)
	if len(window) >= l.limit {
		retry := l.window - now.Sub(window[0])
		if retry < 0 {
			retry = 0
		}
		return Decision{Allowed: false, RetryAfter: retry}
	}

	l.clients[clientID] = append(window, now)
	return Decision{Allowed: true, Remaining: l.limit - len(window) - 1}
}

// Status reports the client's quota at instant now without consuming
// any of it.
func (l *Limiter) Status(clientID string, now time.Time) Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	window := l.pruneLocked(clientID, now)
	st := Status{
		Limit:     l.limit,
		Used:      len(window),
		Remaining: l.limit - len(window),
	}
	if len(window) > 0 {
		st.ResetIn = l.window - now.Sub(window[0])
		if st.ResetIn < 0 {
			st.ResetIn = 0
		}
	}
	return st
}

// Sweep drops clients whose windows are empty at instant now and
// returns how many were evicted. Windows otherwise live for the
// process lifetime; this is the only eviction path.
func (l *Limiter) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for clientID := range l.clients {
		if len(l.pruneLocked(clientID, now)) == 0 {
			delete(l.clients, clientID)
			evicted++
		}
	}
	return evicted
}

func (l *Limiter) Limit() int {
	return l.limit
}

func (l *Limiter) Window() time.Duration {
	return l.window
}

// pruneLocked removes expired timestamps for clientID and returns the
// surviving window, oldest first. An entry exactly window old counts
// as expired, in both Admit and Status. Caller holds l.mu.
func (l *Limiter) pruneLocked(clientID string, now time.Time) []time.Time {
	window, ok := l.clients[clientID]
	if !ok {
		return nil
	}
	kept := window[:0]
	for _, t := range window {
		if now.Sub(t) < l.window {
			kept = append(kept, t)
		}
	}
	l.clients[clientID] = kept
	return kept
}
