package service

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/repo"
	"context"
	"time"
)

// setRequestStatus persists the new request status and queues the matching
// fulfillment notification in the current transaction.
func setRequestStatus(ctx context.Context, requests repo.BookingRequest, outbox repo.Outbox, r *entity.BookingRequest, status common.RequestStatus, reason string, now time.Time) error {
	r.Status = status
	r.UpdatedAt = now
	if status == common.RequestCancelled {
		r.CancelReason = reason
	}
	if err := requests.UpdateBookingRequestStatus(ctx, r); err != nil {
		return translate(err, ErrBookingRequestNotFound)
	}

	return enqueue(ctx, outbox, entity.RequestStatusRoutingKey(string(status)), entity.RequestStatusMessage{
		RequestId: r.RequestId,
		Status:    string(status),
		Reason:    reason,
	}, now)
}

func enqueue(ctx context.Context, outbox repo.Outbox, routingKey string, payload any, now time.Time) error {
	event, err := entity.NewOutboxEvent(routingKey, payload, now)
	if err != nil {
		return err
	}

	return outbox.Enqueue(ctx, event)
}
