package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"webhook-gateway/internal/core/domain"
	"webhook-gateway/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	jobsKey     = "delivery:jobs"
	popInterval = time.Second
)

// DeliveryQueue implements ports.JobScheduler on a Redis list. Producers
// LPUSH serialized jobs; the consumer side pops them with BRPOP, so jobs
// execute in scheduling order (FIFO) and survive a process restart.
type DeliveryQueue struct {
	client *goredis.Client
	log    zerolog.Logger

	wg sync.WaitGroup
}

// NewDeliveryQueue creates a Redis-backed delivery job queue.
func NewDeliveryQueue(client *goredis.Client, log zerolog.Logger) *DeliveryQueue {
	return &DeliveryQueue{client: client, log: log}
}

// Schedule enqueues a delivery job. Fire-and-forget: completion is observed
// through the recorded event, not through this call.
func (q *DeliveryQueue) Schedule(ctx context.Context, job domain.DeliveryJob) error {
	encoded, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal delivery job: %w", err)
	}
	if err := q.client.LPush(ctx, jobsKey, encoded).Err(); err != nil {
		return fmt.Errorf("enqueue delivery job: %w", err)
	}
	return nil
}

// Len returns the number of queued jobs.
func (q *DeliveryQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, jobsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("delivery queue length: %w", err)
	}
	return n, nil
}

// Run starts workers goroutines consuming jobs until ctx is cancelled. It
// returns immediately; call Wait to block until all workers have drained.
func (q *DeliveryQueue) Run(ctx context.Context, workers int, handler ports.DeliveryService) {
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i, handler)
	}
	q.log.Info().Int("workers", workers).Msg("delivery workers started")
}

// Wait blocks until all workers started by Run have exited.
func (q *DeliveryQueue) Wait() {
	q.wg.Wait()
}

func (q *DeliveryQueue) worker(ctx context.Context, id int, handler ports.DeliveryService) {
	defer q.wg.Done()
	log := q.log.With().Int("worker", id).Logger()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("delivery worker stopping")
			return
		default:
		}

		// Short BRPOP timeout so cancellation is observed promptly.
		res, err := q.client.BRPop(ctx, popInterval, jobsKey).Result()
		if err != nil {
			if err == goredis.Nil || ctx.Err() != nil {
				continue
			}
			log.Error().Err(err).Msg("delivery queue pop failed")
			continue
		}

		// BRPop returns [key, value].
		var job domain.DeliveryJob
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			log.Error().Err(err).Str("raw", res[1]).Msg("malformed delivery job dropped")
			continue
		}

		// A popped job must reach a terminal event record even when the root
		// context is cancelled mid-flight, so the handler runs detached.
		if err := handler.HandleJob(context.WithoutCancel(ctx), job); err != nil {
			// Failed deliveries are recorded as events; retry is explicit.
			log.Warn().Err(err).
				Str("webhook_uuid", job.WebhookID.String()).
				Str("topic", job.Topic).
				Msg("delivery job failed")
		}
	}
}
