package workers

import (
	"context"

	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the startup workers enabled by cfg.
func NewWorkers(services *service.Services, cfg config.App, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.SeedEnabled() {
		w.workers = append(w.workers, NewSeedWorker(services.UserService, DefaultUsers(), logger))
	}
	return w
}

// Run runs every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
