package handler

import (
	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/handler/grpc"
	"github.com/beatfluencer/beatfluencer-api/internal/handler/http"
	"github.com/beatfluencer/beatfluencer-api/internal/limiter"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a transport handler for every address set in cfg.
// loginLimiter may be nil, in which case logins are not throttled.
func NewHandlers(services *service.Services, loginLimiter limiter.Limiter, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, loginLimiter, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
