package scheduler

import (
	"context"
	"crypto/tls"
	"fmt"

	"leadintel_backend/internal/crmsync"
	"leadintel_backend/platform/config"
	"leadintel_backend/platform/logger"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// crmSyncMaxRetry bounds redelivery: the original attempt plus one retry
// with asynq's default backoff.
const crmSyncMaxRetry = 1

type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueCrmLeadUpdate queues a CRM delivery for the worker to drain.
func (c *Client) EnqueueCrmLeadUpdate(ctx context.Context, payload crmsync.UpdatePayload) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewCrmLeadUpdateTask(payload)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue), asynq.MaxRetry(crmSyncMaxRetry))
	return err
}

// QueueDispatcher implements crmsync.Dispatcher on top of the asynq queue.
// Enqueue failures are logged and dropped so the scoring path stays clean.
type QueueDispatcher struct {
	client *Client
	log    *logger.Logger
}

// NewQueueDispatcher wraps the scheduler client as a CRM sync dispatcher.
func NewQueueDispatcher(client *Client, log *logger.Logger) *QueueDispatcher {
	return &QueueDispatcher{client: client, log: log}
}

// Dispatch enqueues the delivery without waiting for the worker.
func (d *QueueDispatcher) Dispatch(ctx context.Context, payload crmsync.UpdatePayload) {
	if err := d.client.EnqueueCrmLeadUpdate(ctx, payload); err != nil {
		d.log.CrmSyncFailure(payload.LeadID, err)
	}
}

var _ crmsync.Dispatcher = (*QueueDispatcher)(nil)

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
