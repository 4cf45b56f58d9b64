package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestAllow_UnderLimit(t *testing.T) {
	l := NewLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("203.0.113.9") {
			t.Fatalf("request %d unexpectedly denied", i+1)
		}
	}
}

func TestAllow_OverLimit(t *testing.T) {
	l := NewLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		l.Allow("203.0.113.9")
	}
	if l.Allow("203.0.113.9") {
		t.Error("expected fourth request to be denied")
	}
}

func TestAllow_OriginsAreIndependent(t *testing.T) {
	l := NewLimiter(time.Minute, 1)

	if !l.Allow("203.0.113.9") {
		t.Fatal("first origin unexpectedly denied")
	}
	if !l.Allow("198.51.100.4") {
		t.Error("second origin should have its own window")
	}
}

func TestAllow_WindowSlides(t *testing.T) {
	current := time.Now()
	l := NewLimiter(time.Minute, 2)
	l.now = func() time.Time { return current }

	l.Allow("203.0.113.9")
	l.Allow("203.0.113.9")
	if l.Allow("203.0.113.9") {
		t.Fatal("expected denial at the limit")
	}

	// Advance past the window; earlier requests age out.
	current = current.Add(61 * time.Second)
	if !l.Allow("203.0.113.9") {
		t.Error("expected request to pass after the window slid")
	}
}

func TestAllow_DeniedAttemptsDoNotExtendWindow(t *testing.T) {
	current := time.Now()
	l := NewLimiter(time.Minute, 1)
	l.now = func() time.Time { return current }

	l.Allow("203.0.113.9")

	// Hammering while blocked must not push the window forward.
	for i := 0; i < 5; i++ {
		current = current.Add(10 * time.Second)
		if l.Allow("203.0.113.9") {
			t.Fatalf("request at +%ds unexpectedly allowed", (i+1)*10)
		}
	}

	current = current.Add(11 * time.Second)
	if !l.Allow("203.0.113.9") {
		t.Error("expected request to pass once the single recorded attempt aged out")
	}
}

func TestPrune_DropsIdleOrigins(t *testing.T) {
	current := time.Now()
	l := NewLimiter(time.Minute, 5)
	l.now = func() time.Time { return current }

	l.Allow("203.0.113.9")
	l.Allow("198.51.100.4")

	current = current.Add(2 * time.Minute)
	l.Allow("198.51.100.4")

	l.Prune()

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.origins["203.0.113.9"]; ok {
		t.Error("expected idle origin to be pruned")
	}
	if _, ok := l.origins["198.51.100.4"]; !ok {
		t.Error("expected active origin to survive pruning")
	}
}

func TestAllow_ConcurrentRequestsRespectLimit(t *testing.T) {
	const limit = 50
	l := NewLimiter(time.Minute, limit)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("203.0.113.9") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != limit {
		t.Errorf("expected exactly %d allowed requests, got %d", limit, allowed)
	}
}
