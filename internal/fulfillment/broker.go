package fulfillment

import (
	"booking-settlement-api/internal/config"
	"booking-settlement-api/internal/logger"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	reconnectInterval = 5 * time.Second
	publishTimeout    = 3 * time.Second
)

var ErrBrokerClosed = errors.New("amqp connection closed")

// RabbitMQ publishes to and consumes from one topic exchange over a single
// confirm-mode channel. A dropped connection is re-dialled in the background.
type RabbitMQ struct {
	ctx          context.Context
	cfg          config.RabbitMQConfig
	log          logger.Logger
	conn         *amqp.Connection
	ch           *amqp.Channel
	reconnecting bool
	mu           sync.Mutex
}

func NewRabbitMQ(ctx context.Context, cfg config.RabbitMQConfig, log logger.Logger) (*RabbitMQ, error) {
	r := &RabbitMQ{
		ctx: ctx,
		cfg: cfg,
		log: log,
	}
	if err := r.connect(); err != nil {
		return nil, fmt.Errorf("rabbit connect: %w", err)
	}

	return r, nil
}

// Publish sends body to the exchange and waits for the broker confirm.
func (r *RabbitMQ) Publish(ctx context.Context, routingKey string, body []byte) error {
	ch, ok := r.channel()
	if !ok {
		go r.reconnect()
		return ErrBrokerClosed
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	confirm, err := ch.PublishWithDeferredConfirmWithContext(pubCtx, r.cfg.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	acked, err := confirm.WaitContext(pubCtx)
	if err != nil {
		return fmt.Errorf("confirm %s: %w", routingKey, err)
	}
	if !acked {
		return fmt.Errorf("publish %s: nacked by broker", routingKey)
	}

	return nil
}

// Consume declares queue, binds it to every key in bindings and forwards
// deliveries until ctx is done or the channel closes.
func (r *RabbitMQ) Consume(ctx context.Context, queue string, bindings []string, prefetch int) (<-chan amqp.Delivery, error) {
	ch, ok := r.channel()
	if !ok {
		return nil, ErrBrokerClosed
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("queue declare: %w", err)
	}
	for _, key := range bindings {
		if err := ch.QueueBind(queue, key, r.cfg.Exchange, false, nil); err != nil {
			return nil, fmt.Errorf("queue bind %s: %w", key, err)
		}
	}
	if prefetch > 0 {
		if err := ch.Qos(prefetch, 0, false); err != nil {
			return nil, fmt.Errorf("qos: %w", err)
		}
	}

	deliveries, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("consume: %w", err)
	}

	out := make(chan amqp.Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (r *RabbitMQ) IsAlive() bool {
	_, ok := r.channel()
	return ok
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ch != nil && !r.ch.IsClosed() {
		if err := r.ch.Close(); err != nil {
			return fmt.Errorf("close channel: %w", err)
		}
	}
	if r.conn != nil && !r.conn.IsClosed() {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("close connection: %w", err)
		}
	}

	return nil
}

func (r *RabbitMQ) channel() (*amqp.Channel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil || r.conn.IsClosed() || r.ch == nil || r.ch.IsClosed() {
		return nil, false
	}

	return r.ch, true
}

func (r *RabbitMQ) connect() error {
	conn, err := amqp.Dial(r.cfg.URL)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}
	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}
	if err = ch.ExchangeDeclare(r.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	r.mu.Lock()
	r.conn = conn
	r.ch = ch
	r.mu.Unlock()

	return nil
}

func (r *RabbitMQ) reconnect() {
	r.mu.Lock()
	if r.reconnecting {
		r.mu.Unlock()
		return
	}
	r.reconnecting = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.reconnecting = false
		r.mu.Unlock()
	}()

	t := time.NewTicker(reconnectInterval)
	defer t.Stop()
	l := r.log.Action("mb_reconnecting")

	for {
		select {
		case <-t.C:
			if err := r.connect(); err != nil {
				l.Warn("reconnect failed", "error", err)
				continue
			}
			l.Info("reconnected")
			return
		case <-r.ctx.Done():
			return
		}
	}
}
