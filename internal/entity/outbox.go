package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// routing keys of the fulfillment exchange
const (
	RoutingBookingAwarded = "booking.awarded"
	routingRequestStatus  = "request.status."
)

func RequestStatusRoutingKey(status string) string {
	return routingRequestStatus + status
}

// db model for messages waiting to be published
type OutboxEvent struct {
	Id          uuid.UUID       `db:"id"`
	RoutingKey  string          `db:"routing_key"`
	Payload     json.RawMessage `db:"payload"`
	Attempts    int             `db:"attempts"`
	LastError   string          `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	PublishedAt *time.Time      `db:"published_at"`
}

func NewOutboxEvent(routingKey string, payload any, now time.Time) (*OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", routingKey, err)
	}

	return &OutboxEvent{
		Id:         uuid.New(),
		RoutingKey: routingKey,
		Payload:    body,
		CreatedAt:  now,
	}, nil
}

// message payloads sent to the fulfillment side
type BookingAwardedMessage struct {
	BookingId string `json:"bookingId"`
	RequestId string `json:"requestId"`
	CompanyId string `json:"companyId"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

type RequestStatusMessage struct {
	RequestId string `json:"requestId"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}
