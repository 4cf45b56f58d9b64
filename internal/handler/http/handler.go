package http

import (
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/ratelimit"
	"github.com/beatvault/beatvault/internal/service"
)

type Handler struct {
	services *service.Services

	// globalLimiter covers every route; authLimiter additionally covers the
	// credential endpoints with a much tighter cap.
	globalLimiter *ratelimit.Limiter
	authLimiter   *ratelimit.Limiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, globalLimiter, authLimiter *ratelimit.Limiter, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		globalLimiter: globalLimiter,
		authLimiter:   authLimiter,
		logger:        logger,
	}
}

// Limiters exposes the handler's rate limiters so background janitors can
// prune them.
func (h *Handler) Limiters() []*ratelimit.Limiter {
	return []*ratelimit.Limiter{h.globalLimiter, h.authLimiter}
}
