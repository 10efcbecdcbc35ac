package fulfillment

import (
	"booking-settlement-api/internal/config"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/repo"
	"context"
	"time"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Relay moves committed outbox rows to the broker. Delivery is at least once:
// a crash between publish and MarkPublished sends the event again.
type Relay struct {
	tx          repo.Transactor
	outbox      repo.Outbox
	publisher   Publisher
	interval    time.Duration
	batch       int
	maxAttempts int
	log         logger.Logger
	now         func() time.Time
}

func NewRelay(repos *repo.Repositories, publisher Publisher, cfg config.OutboxConfig, log logger.Logger) *Relay {
	return &Relay{
		tx:          repos.Transactor,
		outbox:      repos.Outbox,
		publisher:   publisher,
		interval:    cfg.RelayInterval.Std(),
		batch:       cfg.Batch,
		maxAttempts: cfg.MaxAttempts,
		log:         log.Action("outbox_relay"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Run blocks until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("outbox relay started", "interval", r.interval.String(), "batch", r.batch)
	for {
		select {
		case <-ctx.Done():
			r.log.Info("outbox relay stopped")
			return nil
		case <-ticker.C:
			for {
				published, err := r.Flush(ctx)
				if err != nil {
					if ctx.Err() == nil {
						r.log.Error("outbox flush failed", err)
					}
					break
				}
				if published < r.batch {
					break
				}
			}
		}
	}
}

// Flush publishes one batch and returns how many events the broker accepted.
// Rejected events keep their row with an incremented attempt counter.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	published := 0
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		events, err := r.outbox.FetchPending(ctx, r.batch, r.maxAttempts)
		if err != nil {
			return err
		}

		for _, e := range events {
			if err = r.publisher.Publish(ctx, e.RoutingKey, e.Payload); err != nil {
				r.log.Warn("publish failed", "event_id", e.Id.String(), "routing_key", e.RoutingKey, "attempt", e.Attempts+1, "error", err)
				if e.Attempts+1 >= r.maxAttempts {
					r.log.Error("outbox event abandoned", err, "event_id", e.Id.String(), "routing_key", e.RoutingKey)
				}
				if err = r.outbox.MarkFailed(ctx, e.Id, err.Error()); err != nil {
					return err
				}
				continue
			}

			if err = r.outbox.MarkPublished(ctx, e.Id, r.now()); err != nil {
				return err
			}
			published++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if published > 0 {
		r.log.Debug("outbox events published", "count", published)
	}

	return published, nil
}
