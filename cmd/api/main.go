package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadintel_backend/internal/crmsync"
	"leadintel_backend/internal/events"
	apphttp "leadintel_backend/internal/http"
	"leadintel_backend/internal/http/router"
	"leadintel_backend/internal/leads"
	"leadintel_backend/internal/matching"
	"leadintel_backend/internal/scheduler"
	"leadintel_backend/platform/config"
	"leadintel_backend/platform/db"
	"leadintel_backend/platform/logger"
	"leadintel_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// CRM sync subscribes to scoring events (not HTTP-facing)
	dispatcher, closeDispatcher := initCrmDispatcher(cfg, log)
	if closeDispatcher != nil {
		defer closeDispatcher()
	}
	crmSubscriber := crmsync.NewSubscriber(dispatcher, log)
	crmSubscriber.RegisterHandlers(eventBus)

	leadsModule := leads.NewModule(pool, eventBus, val, cfg, log)
	matchingModule := matching.NewModule(pool, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			leadsModule,
			matchingModule,
		},
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router.New(app),
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initCrmDispatcher picks the delivery channel for scoring results. With
// Redis configured deliveries go through the asynq queue so the worker can
// retry once; otherwise they fire directly on a detached goroutine. A
// disabled CRM drops everything.
func initCrmDispatcher(cfg *config.Config, log *logger.Logger) (crmsync.Dispatcher, func()) {
	if !cfg.IsCrmEnabled() {
		log.Warn("CRM_BASE_URL not configured; CRM sync disabled")
		return crmsync.NoopDispatcher{}, nil
	}

	if cfg.GetRedisURL() != "" {
		queueClient, err := scheduler.NewClient(cfg)
		if err != nil {
			log.Error("failed to initialize crm sync queue client", "error", err)
			panic("failed to initialize crm sync queue client: " + err.Error())
		}
		log.Info("crm sync delivering through queue", "queue", cfg.GetAsynqQueueName())
		return scheduler.NewQueueDispatcher(queueClient, log), func() {
			_ = queueClient.Close()
		}
	}

	log.Info("crm sync delivering directly", "baseURL", cfg.GetCrmBaseURL())
	return crmsync.NewDirectDispatcher(crmsync.NewClient(cfg, log), log), nil
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
