// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Beatvault Authors

// Package ratelimit implements a per-origin sliding-window request limiter.
//
// State is held in process memory on purpose: each server instance enforces
// its own window, and restarting the process clears all counters. Two
// limiter instances run in the server, a broad one covering every route and
// a stricter one covering only credential endpoints.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter counts requests per origin key inside a sliding time window.
// All methods are safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	origins map[string][]time.Time

	// now is stubbed in tests.
	now func() time.Time
}

// NewLimiter constructs a limiter admitting at most limit requests per origin
// within any interval of length window.
func NewLimiter(window time.Duration, limit int) *Limiter {
	return &Limiter{
		window:  window,
		limit:   limit,
		origins: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow records one request attempt for origin and reports whether it fits
// inside the window. A denied attempt is not recorded, so a client that keeps
// retrying while blocked does not push its own window forward.
func (l *Limiter) Allow(origin string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.origins[origin][:0]
	for _, ts := range l.origins[origin] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.limit {
		l.origins[origin] = kept
		return false
	}

	l.origins[origin] = append(kept, now)
	return true
}

// Prune drops origins whose every recorded request has aged out of the
// window. Called periodically by the janitor worker to bound memory.
func (l *Limiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	for origin, stamps := range l.origins {
		live := false
		for _, ts := range stamps {
			if ts.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(l.origins, origin)
		}
	}
}

// Window returns the configured window length.
func (l *Limiter) Window() time.Duration {
	return l.window
}
