package entity

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/ledger"
	"time"

	"github.com/google/uuid"
)

// db model. The booking itself is run by the fleet; this is the part the
// settlement side observes.
type Booking struct {
	Id                 uuid.UUID            `db:"id"`
	BookingRequestId   uuid.NullUUID        `db:"booking_request_id"`
	CompanyId          uuid.UUID            `db:"company_id"`
	CarId              string               `db:"car_id"`
	DriverId           string               `db:"driver_id"`
	TotalAmount        ledger.Money         `db:"total_amount"`
	TaxAmount          ledger.Money         `db:"tax_amount"`
	Currency           string               `db:"currency"`
	PaymentId          string               `db:"payment_id"`
	Status             common.BookingStatus `db:"status"`
	CompletedAt        *time.Time           `db:"completed_at"`
	PaymentConfirmedAt *time.Time           `db:"payment_confirmed_at"`
	CreatedAt          time.Time            `db:"created_at"`
	UpdatedAt          time.Time            `db:"updated_at"`
}

// NewAwardedBooking materializes the booking for an auction winner.
func NewAwardedBooking(requestId uuid.UUID, companyId uuid.UUID, amount ledger.Money, currency string, now time.Time) *Booking {
	return &Booking{
		Id:               uuid.New(),
		BookingRequestId: uuid.NullUUID{UUID: requestId, Valid: true},
		CompanyId:        companyId,
		TotalAmount:      amount,
		Currency:         currency,
		Status:           common.BookingAwarded,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Settled is true once service finished and the charge was confirmed.
func (b *Booking) Settled() bool {
	return b.CompletedAt != nil && b.PaymentConfirmedAt != nil
}

func (b *Booking) Assign(carId, driverId string, now time.Time) error {
	if b.Status == common.BookingCompleted {
		return invalidTransition("booking", string(b.Status), "assign")
	}
	b.CarId = carId
	b.DriverId = driverId
	b.Status = common.BookingAssigned
	b.UpdatedAt = now

	return nil
}

// Complete records end of service. finalFare of zero keeps the awarded amount.
// Repeating the signal is a no-op.
func (b *Booking) Complete(finalFare ledger.Money, completedAt time.Time, now time.Time) error {
	if b.CompletedAt != nil {
		return nil
	}
	if finalFare < 0 {
		return &ValidationError{Field: "totalAmount", Msg: "must not be negative"}
	}
	if finalFare > 0 {
		b.TotalAmount = finalFare
	}
	b.Status = common.BookingCompleted
	b.CompletedAt = &completedAt
	b.UpdatedAt = now

	return nil
}

// ConfirmPayment records the settled charge. Repeating the signal is a no-op.
func (b *Booking) ConfirmPayment(paymentId string, taxAmount ledger.Money, confirmedAt time.Time, now time.Time) error {
	if b.PaymentConfirmedAt != nil {
		return nil
	}
	if paymentId == "" {
		return &ValidationError{Field: "paymentId", Msg: "is required"}
	}
	if taxAmount < 0 {
		return &ValidationError{Field: "taxAmount", Msg: "must not be negative"}
	}
	b.PaymentId = paymentId
	b.TaxAmount = taxAmount
	b.PaymentConfirmedAt = &confirmedAt
	b.UpdatedAt = now

	return nil
}

// service input models for fulfillment signals
type BookingAssignedInput struct {
	BookingId uuid.UUID
	CarId     string
	DriverId  string
}

type BookingCompletedInput struct {
	BookingId   uuid.UUID
	TotalAmount ledger.Money
	CompletedAt time.Time
}

type PaymentConfirmedInput struct {
	BookingId   uuid.UUID
	PaymentId   string
	TaxAmount   ledger.Money
	ConfirmedAt time.Time
}

// controller model
type BookingOutputModel struct {
	Id                 string       `json:"id"`
	BookingRequestId   string       `json:"bookingRequestId,omitempty"`
	CompanyId          string       `json:"companyId"`
	CarId              string       `json:"carId,omitempty"`
	DriverId           string       `json:"driverId,omitempty"`
	TotalAmount        ledger.Money `json:"totalAmount"`
	TaxAmount          ledger.Money `json:"taxAmount"`
	Currency           string       `json:"currency"`
	PaymentId          string       `json:"paymentId,omitempty"`
	Status             string       `json:"status"`
	CompletedAt        string       `json:"completedAt,omitempty"`
	PaymentConfirmedAt string       `json:"paymentConfirmedAt,omitempty"`
	EarningsId         string       `json:"earningsId,omitempty"`
}
