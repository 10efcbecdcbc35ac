package entity

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/ledger"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func settledBooking(total, tax ledger.Money) *Booking {
	b := NewAwardedBooking(uuid.New(), uuid.New(), total, "USD", t0)
	_ = b.Complete(0, t0.Add(time.Hour), t0.Add(time.Hour))
	_ = b.ConfirmPayment("pay_1", tax, t0.Add(2*time.Hour), t0.Add(2*time.Hour))

	return b
}

func TestNewBookingCommission(t *testing.T) {
	tests := []struct {
		name           string
		total          ledger.Money
		tax            ledger.Money
		rate           float64
		platformFee    ledger.Money
		wantCommission ledger.Money
		wantNet        ledger.Money
		wantErr        error
	}{
		{name: "commission on 200.00 at 10%", total: 20000, rate: 10, platformFee: 500, wantCommission: 2000, wantNet: 17500},
		{name: "with tax", total: 20000, tax: 1200, rate: 10, platformFee: 500, wantCommission: 2000, wantNet: 16300},
		{name: "half cent rounds away from zero", total: 105, rate: 10, wantCommission: 11, wantNet: 94},
		{name: "zero rate", total: 5000, rate: 0, wantCommission: 0, wantNet: 5000},
		{name: "negative net", total: 1000, rate: 50, platformFee: 400, tax: 200, wantErr: ErrNegativeNetEarnings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := settledBooking(tt.total, tt.tax)
			terms := CommissionTerms{CompanyId: b.CompanyId, CommissionRate: tt.rate, PlatformFee: tt.platformFee, Currency: "USD"}

			e, err := NewBookingCommission(b, terms, t0.Add(3*time.Hour))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !IsValidation(err) {
					t.Fatalf("NewBookingCommission() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBookingCommission() unexpected error = %v", err)
			}
			if e.CommissionAmount != tt.wantCommission {
				t.Errorf("CommissionAmount = %v, want %v", e.CommissionAmount, tt.wantCommission)
			}
			if e.NetEarnings != tt.wantNet {
				t.Errorf("NetEarnings = %v, want %v", e.NetEarnings, tt.wantNet)
			}
			if e.GrossAmount-e.CommissionAmount-e.PlatformFee-e.TaxAmount != e.NetEarnings {
				t.Errorf("net identity broken: %+v", e)
			}
			if e.Status != common.EarningsPending || e.EarningsType != common.EarningsBookingCommission {
				t.Errorf("Status %v type %v", e.Status, e.EarningsType)
			}
			if !e.EarnedAt.Equal(*b.PaymentConfirmedAt) {
				t.Errorf("EarnedAt = %v", e.EarnedAt)
			}
		})
	}
}

func TestNewBookingCommission_RequiresSettledBooking(t *testing.T) {
	completedOnly := NewAwardedBooking(uuid.New(), uuid.New(), 20000, "USD", t0)
	_ = completedOnly.Complete(0, t0, t0)

	paidOnly := NewAwardedBooking(uuid.New(), uuid.New(), 20000, "USD", t0)
	_ = paidOnly.ConfirmPayment("pay_2", 0, t0, t0)

	for name, b := range map[string]*Booking{"completed only": completedOnly, "paid only": paidOnly} {
		t.Run(name, func(t *testing.T) {
			_, err := NewBookingCommission(b, CommissionTerms{CommissionRate: 10}, t0)
			if !errors.Is(err, ErrBookingNotSettled) || !IsStateTransition(err) {
				t.Fatalf("error = %v, want ErrBookingNotSettled", err)
			}
		})
	}
}

func TestEarnings_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  common.EarningsStatus
		claimed bool
		wantErr bool
	}{
		{name: "pending", status: common.EarningsPending},
		{name: "processed", status: common.EarningsProcessed},
		{name: "claimed", status: common.EarningsProcessed, claimed: true, wantErr: true},
		{name: "paid", status: common.EarningsPaid, wantErr: true},
		{name: "cancelled", status: common.EarningsCancelled, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Earnings{Status: tt.status}
			if tt.claimed {
				e.PayoutId = uuid.NullUUID{UUID: uuid.New(), Valid: true}
			}

			err := e.Cancel("duplicate booking", t0)
			if tt.wantErr {
				if !IsStateTransition(err) {
					t.Fatalf("Cancel() error = %v, want state transition error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Cancel() error = %v", err)
			}
			if e.Status != common.EarningsCancelled || e.CancelledAt == nil || e.CancelReason != "duplicate booking" {
				t.Errorf("unexpected record %+v", e)
			}
		})
	}
}

func TestBooking_SignalsAreIdempotent(t *testing.T) {
	b := NewAwardedBooking(uuid.New(), uuid.New(), 20000, "USD", t0)

	if err := b.Complete(21000, t0.Add(time.Hour), t0.Add(time.Hour)); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if err := b.Complete(99999, t0.Add(2*time.Hour), t0.Add(2*time.Hour)); err != nil {
		t.Fatalf("second Complete() error = %v", err)
	}
	if b.TotalAmount != 21000 || !b.CompletedAt.Equal(t0.Add(time.Hour)) {
		t.Errorf("second completion changed the booking: %+v", b)
	}

	if err := b.ConfirmPayment("", 0, t0, t0); !IsValidation(err) {
		t.Errorf("ConfirmPayment() without id error = %v", err)
	}
	if err := b.ConfirmPayment("pay_3", 100, t0.Add(3*time.Hour), t0.Add(3*time.Hour)); err != nil {
		t.Fatalf("ConfirmPayment() error = %v", err)
	}
	if err := b.ConfirmPayment("pay_4", 500, t0.Add(4*time.Hour), t0.Add(4*time.Hour)); err != nil {
		t.Fatalf("second ConfirmPayment() error = %v", err)
	}
	if b.PaymentId != "pay_3" || b.TaxAmount != 100 {
		t.Errorf("second payment changed the booking: %+v", b)
	}
	if !b.Settled() {
		t.Error("booking should be settled")
	}
	if err := b.Assign("car", "driver", t0); !IsStateTransition(err) {
		t.Errorf("Assign() after completion error = %v", err)
	}
}
