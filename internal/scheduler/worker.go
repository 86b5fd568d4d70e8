package scheduler

import (
	"context"
	"fmt"

	"leadintel_backend/internal/crmsync"
	"leadintel_backend/platform/config"
	"leadintel_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Worker drains the CRM delivery queue. A task that fails after its single
// retry is logged and dropped; nothing downstream waits on it.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	crm    *crmsync.Client
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, crm *crmsync.Client, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			log.Warn("task failed", "type", task.Type(), "error", err)
		}),
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		crm:    crm,
		log:    log,
	}

	mux.HandleFunc(TaskCrmLeadUpdate, w.handleCrmLeadUpdate)

	return w, nil
}

// Run blocks processing tasks until the server is shut down.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the server gracefully.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

func (w *Worker) handleCrmLeadUpdate(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseCrmLeadUpdatePayload(task)
	if err != nil {
		// Malformed payloads can never succeed; drop instead of retrying.
		w.log.Warn("dropping malformed crm sync task", "error", err)
		return nil
	}

	if err := w.crm.UpdateLead(ctx, payload); err != nil {
		w.log.CrmSyncFailure(payload.LeadID, err)
		return err
	}

	return nil
}
