package http

import (
	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/limiter"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/service"
)

type Handler struct {
	services *service.Services

	// loginLimiter throttles POST /api/auth/login per client IP. Nil disables it.
	loginLimiter limiter.Limiter

	cfg    config.Server
	logger *logger.Logger
}

func NewHandler(services *service.Services, loginLimiter limiter.Limiter, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		loginLimiter: loginLimiter,
		cfg:          cfg,
		logger:       logger,
	}
}
