package workers

import (
	"time"

	"github.com/beatvault/beatvault/internal/ratelimit"
)

// LimiterJanitor periodically prunes a rate limiter's idle origins so the
// per-origin bookkeeping cannot grow without bound. It prunes once per
// limiter window, which is frequent enough since entries older than one
// window are dead by definition.
type LimiterJanitor struct {
	limiter  *ratelimit.Limiter
	interval time.Duration
}

// NewLimiterJanitor constructs a janitor for the given limiter.
func NewLimiterJanitor(limiter *ratelimit.Limiter) *LimiterJanitor {
	return &LimiterJanitor{
		limiter:  limiter,
		interval: limiter.Window(),
	}
}

// Run starts the pruning loop in a background goroutine and returns
// immediately. The loop runs for the lifetime of the process.
func (j *LimiterJanitor) Run() {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for range ticker.C {
			j.limiter.Prune()
		}
	}()
}
