package entity

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/ledger"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// db model
type Earnings struct {
	Id               uuid.UUID             `db:"id"`
	Reference        string                `db:"reference"`
	CompanyId        uuid.UUID             `db:"company_id"`
	BookingId        uuid.UUID             `db:"booking_id"`
	PaymentId        string                `db:"payment_id"`
	EarningsType     common.EarningsType   `db:"earnings_type"`
	GrossAmount      ledger.Money          `db:"gross_amount"`
	CommissionRate   float64               `db:"commission_rate"`
	CommissionAmount ledger.Money          `db:"commission_amount"`
	PlatformFee      ledger.Money          `db:"platform_fee"`
	TaxAmount        ledger.Money          `db:"tax_amount"`
	NetEarnings      ledger.Money          `db:"net_earnings"`
	Currency         string                `db:"currency"`
	Status           common.EarningsStatus `db:"status"`
	EarnedAt         time.Time             `db:"earned_at"`
	ProcessedAt      *time.Time            `db:"processed_at"`
	PaidAt           *time.Time            `db:"paid_at"`
	CancelledAt      *time.Time            `db:"cancelled_at"`
	CancelReason     string                `db:"cancel_reason"`
	PayoutId         uuid.NullUUID         `db:"payout_id"`
}

// CommissionTerms come from the company directory.
type CommissionTerms struct {
	CompanyId      uuid.UUID
	CommissionRate float64 // percent
	PlatformFee    ledger.Money
	Currency       string
}

// NewBookingCommission derives the commission-bearing record for a settled booking:
// commission = round(gross * rate / 100), net = gross - commission - platform fee - tax.
func NewBookingCommission(b *Booking, terms CommissionTerms, now time.Time) (*Earnings, error) {
	if !b.Settled() {
		return nil, &StateTransitionError{Resource: "booking", From: string(b.Status), Action: "accrue earnings", Err: ErrBookingNotSettled}
	}
	if terms.CommissionRate < 0 || terms.CommissionRate > 100 {
		return nil, &ValidationError{Field: "commissionRate", Msg: fmt.Sprintf("%v is outside 0..100", terms.CommissionRate)}
	}
	if terms.PlatformFee < 0 {
		return nil, &ValidationError{Field: "platformFee", Msg: "must not be negative"}
	}

	gross := b.TotalAmount
	commission := ledger.ApplyPercent(gross, terms.CommissionRate)
	net := gross - commission - terms.PlatformFee - b.TaxAmount
	if net < 0 {
		return nil, &ValidationError{
			Field: "netEarnings",
			Msg:   fmt.Sprintf("gross %s minus commission %s, platform fee %s and tax %s is negative", gross, commission, terms.PlatformFee, b.TaxAmount),
			Err:   ErrNegativeNetEarnings,
		}
	}

	currency := b.Currency
	if currency == "" {
		currency = terms.Currency
	}

	return &Earnings{
		Id:               uuid.New(),
		Reference:        NewReference(EarningsReferencePrefix, now),
		CompanyId:        b.CompanyId,
		BookingId:        b.Id,
		PaymentId:        b.PaymentId,
		EarningsType:     common.EarningsBookingCommission,
		GrossAmount:      gross,
		CommissionRate:   terms.CommissionRate,
		CommissionAmount: commission,
		PlatformFee:      terms.PlatformFee,
		TaxAmount:        b.TaxAmount,
		NetEarnings:      net,
		Currency:         currency,
		Status:           common.EarningsPending,
		EarnedAt:         *b.PaymentConfirmedAt,
	}, nil
}

// MarkProcessed moves a pending record to processed.
func (e *Earnings) MarkProcessed(now time.Time) error {
	if e.Status != common.EarningsPending {
		return invalidTransition("earnings", string(e.Status), "process")
	}
	e.Status = common.EarningsProcessed
	e.ProcessedAt = &now

	return nil
}

// Cancel is only allowed before any payout claimed the record.
func (e *Earnings) Cancel(reason string, now time.Time) error {
	if e.Status != common.EarningsPending && e.Status != common.EarningsProcessed {
		return invalidTransition("earnings", string(e.Status), "cancel")
	}
	if e.PayoutId.Valid {
		return &StateTransitionError{Resource: "earnings", From: string(e.Status), Action: "cancel claimed earnings", Err: ErrInvalidState}
	}
	e.Status = common.EarningsCancelled
	e.CancelledAt = &now
	e.CancelReason = reason

	return nil
}

type EarningsFilter struct {
	CompanyId    *uuid.UUID
	Status       common.EarningsStatus
	EarningsType common.EarningsType
	PayoutId     *uuid.UUID
	From         *time.Time
	To           *time.Time
}

// controller model
type EarningsOutputModel struct {
	Id               string       `json:"id"`
	Reference        string       `json:"reference"`
	CompanyId        string       `json:"companyId"`
	BookingId        string       `json:"bookingId"`
	PaymentId        string       `json:"paymentId"`
	EarningsType     string       `json:"earningsType"`
	GrossAmount      ledger.Money `json:"grossAmount"`
	CommissionRate   float64      `json:"commissionRate"`
	CommissionAmount ledger.Money `json:"commissionAmount"`
	PlatformFee      ledger.Money `json:"platformFee"`
	TaxAmount        ledger.Money `json:"taxAmount"`
	NetEarnings      ledger.Money `json:"netEarnings"`
	Currency         string       `json:"currency"`
	Status           string       `json:"status"`
	EarnedAt         string       `json:"earnedAt"`
	ProcessedAt      string       `json:"processedAt,omitempty"`
	PaidAt           string       `json:"paidAt,omitempty"`
	CancelledAt      string       `json:"cancelledAt,omitempty"`
	CancelReason     string       `json:"cancelReason,omitempty"`
	PayoutId         string       `json:"payoutId,omitempty"`
}
