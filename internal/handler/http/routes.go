package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRateLimit(h.globalLimiter))

	// credential routes carry the stricter limiter on top of the global one
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(h.authLimiter))
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// public catalog; session introspection is public too and answers null
	// for anonymous callers
	router.Group(func(r chi.Router) {
		r.Get("/api/tracks", h.listTracks)
		r.Get("/api/tracks/trending", h.trendingTracks)
		r.Get("/api/auth/me", h.me)
	})

	// routes requiring an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.session)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/tracks", h.uploadTrack)
		r.Get("/api/tracks/{trackID}/download", h.downloadTrack)
		r.Get("/api/artist/performance", h.artistPerformance)
		r.Get("/api/admin/logs", h.adminLogs)
	})

	return router
}
