package handler

import (
	"github.com/beatvault/beatvault/internal/config"
	"github.com/beatvault/beatvault/internal/handler/http"
	"github.com/beatvault/beatvault/internal/logger"
	"github.com/beatvault/beatvault/internal/ratelimit"
	"github.com/beatvault/beatvault/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		globalLimiter := ratelimit.NewLimiter(cfg.RateLimit.GlobalWindow, cfg.RateLimit.GlobalLimit)
		authLimiter := ratelimit.NewLimiter(cfg.RateLimit.AuthWindow, cfg.RateLimit.AuthLimit)
		handlers.HTTP = http.NewHandler(services, globalLimiter, authLimiter, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
