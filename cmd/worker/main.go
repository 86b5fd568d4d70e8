package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"leadintel_backend/internal/crmsync"
	"leadintel_backend/internal/scheduler"
	"leadintel_backend/platform/config"
	"leadintel_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env, "queue", cfg.GetAsynqQueueName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.IsCrmEnabled() {
		log.Warn("CRM_BASE_URL not configured; queued deliveries will be dropped")
	}
	crmClient := crmsync.NewClient(cfg, log)

	worker, err := scheduler.NewWorker(cfg, crmClient, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	go func() {
		<-ctx.Done()
		log.Info("shutdown signal received, stopping worker")
		worker.Shutdown()
	}()

	if err := worker.Run(); err != nil {
		log.Error("worker error", "error", err)
		panic("worker error: " + err.Error())
	}
}
