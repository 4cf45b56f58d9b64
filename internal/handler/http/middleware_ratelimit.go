package http

import (
	"net"
	"net/http"

	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/ratelimit"
)

// withRateLimit enforces the given limiter per origin address. Requests over
// the cap are rejected with HTTP 429 and a uniform body regardless of which
// limiter tripped.
func (h *Handler) withRateLimit(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := originAddr(r)

			if !limiter.Allow(origin) {
				logger.FromRequest(r).Warn().
					Str("origin", origin).
					Str("uri", r.RequestURI).
					Msg("request rate limited")
				http.Error(w, "too many requests, please try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// originAddr attributes the request to a network origin. The port is
// stripped so one client is one origin across reconnects.
func originAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
