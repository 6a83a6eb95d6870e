package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/beatfluencer/beatfluencer-api/internal/adapter"
	"github.com/beatfluencer/beatfluencer-api/internal/client"
	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewConsoleLogger("beatfluencer-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}
	api.SetToken(cfg.Adapter.Token)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = client.NewApp(api, os.Stdout, log).Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
