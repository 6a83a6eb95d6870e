//go:generate swag init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs

// @title                       Beatfluencer API
// @version                     1.0
// @description                 Back-office API for influencers, brands and campaigns.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/handler"
	"github.com/beatfluencer/beatfluencer-api/internal/limiter"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/server"
	"github.com/beatfluencer/beatfluencer-api/internal/service"
	"github.com/beatfluencer/beatfluencer-api/internal/store"
	"github.com/beatfluencer/beatfluencer-api/internal/workers"
	"github.com/beatfluencer/beatfluencer-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("beatfluencer-server").Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.IsKnownVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("beatfluencer-server", cfg.App.LogLevel)
	log.Debug().Str("db_driver", cfg.Storage.DB.Driver).Str("http", cfg.Server.HTTPAddress).Msg("received configs")

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	var loginLimiter limiter.Limiter
	if cfg.Storage.Redis.URL != "" {
		redisClient, err := limiter.NewRedisClient(ctx, cfg.Storage.Redis.URL, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer redisClient.Close()
		loginLimiter = limiter.NewRedisLimiter(redisClient, "login", cfg.Limiter.LoginAttempts, cfg.Limiter.LoginWindow)
	} else {
		log.Warn().Msg("redis is not configured, login attempts are not limited")
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	workers.NewWorkers(services, cfg.App, log).Run(ctx)

	handlers, err := handler.NewHandlers(services, loginLimiter, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
