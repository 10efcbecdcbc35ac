package fulfillment

import (
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/service"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Source interface {
	Consume(ctx context.Context, queue string, bindings []string, prefetch int) (<-chan amqp.Delivery, error)
}

var errMalformed = errors.New("malformed message")

// Consumer applies fulfillment signals from the booking queue. Messages that
// can never succeed are acked and logged, anything else is requeued.
type Consumer struct {
	source   Source
	bookings service.Booking
	queue    string
	prefetch int
	validate *validator.Validate
	log      logger.Logger
	retry    time.Duration
}

func NewConsumer(source Source, bookings service.Booking, queue string, prefetch int, log logger.Logger) *Consumer {
	return &Consumer{
		source:   source,
		bookings: bookings,
		queue:    queue,
		prefetch: prefetch,
		validate: validator.New(),
		log:      log.Action("consume_fulfillment"),
		retry:    reconnectInterval,
	}
}

// Run blocks until ctx is done, resubscribing when the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		deliveries, err := c.source.Consume(ctx, c.queue, InboundBindings, c.prefetch)
		if err != nil {
			c.log.Warn("subscribe failed", "queue", c.queue, "error", err)
		} else {
			c.log.Info("consuming", "queue", c.queue)
			for d := range deliveries {
				c.Handle(ctx, d)
			}
		}

		select {
		case <-ctx.Done():
			c.log.Info("consumer stopped")
			return nil
		case <-time.After(c.retry):
		}
	}
}

func (c *Consumer) Handle(ctx context.Context, d amqp.Delivery) {
	l := c.log.With("routing_key", d.RoutingKey, "message_id", d.MessageId)

	err := c.dispatch(ctx, d)
	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			l.Error("ack failed", ackErr)
		}
	case permanent(err):
		l.Warn("message dropped", "error", err)
		if ackErr := d.Ack(false); ackErr != nil {
			l.Error("ack failed", ackErr)
		}
	default:
		l.Error("message requeued", err, "redelivered", d.Redelivered)
		if nackErr := d.Nack(false, true); nackErr != nil {
			l.Error("nack failed", nackErr)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) error {
	switch d.RoutingKey {
	case RoutingBookingAssigned:
		var m bookingAssignedMessage
		if err := c.decode(d.Body, &m); err != nil {
			return err
		}
		_, err := c.bookings.MarkAssigned(ctx, m.input())
		return err
	case RoutingBookingCompleted:
		var m bookingCompletedMessage
		if err := c.decode(d.Body, &m); err != nil {
			return err
		}
		_, err := c.bookings.MarkCompleted(ctx, m.input())
		return err
	case RoutingBookingPaymentConfirmed:
		var m paymentConfirmedMessage
		if err := c.decode(d.Body, &m); err != nil {
			return err
		}
		_, err := c.bookings.ConfirmPayment(ctx, m.input())
		return err
	default:
		return fmt.Errorf("%w: unknown routing key %q", errMalformed, d.RoutingKey)
	}
}

func (c *Consumer) decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	if err := c.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}

	return nil
}

func permanent(err error) bool {
	return errors.Is(err, errMalformed) ||
		entity.IsValidation(err) ||
		entity.IsStateTransition(err) ||
		entity.IsNotFound(err)
}
