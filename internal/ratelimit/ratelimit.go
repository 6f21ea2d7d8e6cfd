// Package ratelimit implements fixed-window request admission per
// client identity. Windows are non-overlapping buckets of a configured
// duration; each identity gets at most Limit admissions per bucket.
//
// Known limitation: windows for idle identities are never evicted, so
// the table grows with the number of distinct identities seen over the
// process lifetime. Acceptable for deployments with a bounded client
// population.
package ratelimit

import (
	"sync"
	"time"
)

// Config controls the limiter. When Enabled is false, Allow admits
// everything without touching state.
type Config struct {
	Enabled bool
	Limit   int
	Window  time.Duration
}

type window struct {
	start time.Time
	count int
}

// Limiter tracks admission counts per identity. All state lives in
// process memory; a restart resets every quota.
type Limiter struct {
	cfg Config

	mu      sync.Mutex
	windows map[string]*window
}

func New(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		windows: make(map[string]*window),
	}
}

// Allow reports whether a request from identity at the given time may
// proceed, consuming one admission slot when it does. The slot is not
// refunded if the request is later aborted. Time is passed in rather
// than read from the clock so callers and tests control it.
func (l *Limiter) Allow(identity string, now time.Time) bool {
	if !l.cfg.Enabled {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[identity]
	if !ok {
		w = &window{start: now}
		l.windows[identity] = w
	}
	if now.Sub(w.start) >= l.cfg.Window {
		w.start = now
		w.count = 0
	}
	if w.count >= l.cfg.Limit {
		return false
	}
	w.count++
	return true
}
