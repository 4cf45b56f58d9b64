package workers

import (
	"github.com/beatvault/beatvault/internal/ratelimit"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the server's background workers: one pruning janitor
// per rate limiter.
func NewWorkers(limiters ...*ratelimit.Limiter) *Workers {
	ws := &Workers{}
	for _, l := range limiters {
		ws.workers = append(ws.workers, NewLimiterJanitor(l))
	}
	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
