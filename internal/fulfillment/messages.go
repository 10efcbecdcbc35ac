package fulfillment

import (
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"time"

	"github.com/google/uuid"
)

// inbound routing keys on the booking queue
const (
	RoutingBookingAssigned         = "booking.assigned"
	RoutingBookingCompleted        = "booking.completed"
	RoutingBookingPaymentConfirmed = "booking.payment_confirmed"
)

var InboundBindings = []string{
	RoutingBookingAssigned,
	RoutingBookingCompleted,
	RoutingBookingPaymentConfirmed,
}

type bookingAssignedMessage struct {
	BookingId uuid.UUID `json:"bookingId" validate:"required"`
	CarId     string    `json:"carId" validate:"required"`
	DriverId  string    `json:"driverId" validate:"required"`
}

func (m bookingAssignedMessage) input() *entity.BookingAssignedInput {
	return &entity.BookingAssignedInput{BookingId: m.BookingId, CarId: m.CarId, DriverId: m.DriverId}
}

type bookingCompletedMessage struct {
	BookingId   uuid.UUID    `json:"bookingId" validate:"required"`
	TotalAmount ledger.Money `json:"totalAmount" validate:"gte=0"`
	CompletedAt time.Time    `json:"completedAt"`
}

func (m bookingCompletedMessage) input() *entity.BookingCompletedInput {
	return &entity.BookingCompletedInput{BookingId: m.BookingId, TotalAmount: m.TotalAmount, CompletedAt: m.CompletedAt}
}

type paymentConfirmedMessage struct {
	BookingId   uuid.UUID    `json:"bookingId" validate:"required"`
	PaymentId   string       `json:"paymentId" validate:"required"`
	TaxAmount   ledger.Money `json:"taxAmount" validate:"gte=0"`
	ConfirmedAt time.Time    `json:"confirmedAt"`
}

func (m paymentConfirmedMessage) input() *entity.PaymentConfirmedInput {
	return &entity.PaymentConfirmedInput{BookingId: m.BookingId, PaymentId: m.PaymentId, TaxAmount: m.TaxAmount, ConfirmedAt: m.ConfirmedAt}
}
