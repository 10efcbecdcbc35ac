package service

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/logger"
	svcmocks "booking-settlement-api/internal/service/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newBookingService(f *fixture) (*BookingService, *svcmocks.MockEarnings) {
	earnings := svcmocks.NewMockEarnings(f.ctrl)
	svc := NewBookingService(f.repos, earnings, logger.Nop())
	svc.now = f.clock.Now

	return svc, earnings
}

func awardedBooking(req *entity.BookingRequest) *entity.Booking {
	return entity.NewAwardedBooking(req.Id, uuid.New(), 8500, "USD", t0.Add(-time.Hour))
}

func TestBookingService_MarkCompletedCompletesRequest(t *testing.T) {
	f := newFixture(t)
	svc, _ := newBookingService(f)
	req := &entity.BookingRequest{Id: uuid.New(), RequestId: "BR-20260301-000001", Status: common.RequestAuctionWon}
	booking := awardedBooking(req)

	f.bookings.EXPECT().LockBookingById(gomock.Any(), booking.Id).Return(booking, nil)
	f.requests.EXPECT().LockBookingRequestById(gomock.Any(), req.Id).Return(req, nil)
	f.requests.EXPECT().UpdateBookingRequestStatus(gomock.Any(), req).Return(nil)
	f.bookings.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)

	out, err := svc.MarkCompleted(context.Background(), &entity.BookingCompletedInput{BookingId: booking.Id, TotalAmount: 9000})
	if err != nil {
		t.Fatalf("MarkCompleted() error = %v", err)
	}

	if out.Status != string(common.BookingCompleted) || out.TotalAmount != 9000 {
		t.Errorf("booking = %+v, want completed at final fare 90.00", out)
	}
	if req.Status != common.RequestCompleted {
		t.Errorf("request status = %s, want completed", req.Status)
	}
	if !f.hasEvent(entity.RequestStatusRoutingKey(string(common.RequestCompleted))) {
		t.Errorf("events = %v", f.routingKeys())
	}
	if out.EarningsId != "" {
		t.Error("unpaid booking must not accrue")
	}
}

func TestBookingService_PaymentAfterCompletionAccrues(t *testing.T) {
	f := newFixture(t)
	svc, earnings := newBookingService(f)
	booking := awardedBooking(&entity.BookingRequest{Id: uuid.New()})
	completedAt := t0.Add(-30 * time.Minute)
	booking.CompletedAt = &completedAt
	booking.Status = common.BookingCompleted
	earningsId := uuid.New().String()

	f.bookings.EXPECT().LockBookingById(gomock.Any(), booking.Id).Return(booking, nil)
	f.bookings.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	earnings.EXPECT().
		AccrueFromBooking(gomock.Any(), booking.Id).
		Return(&entity.EarningsOutputModel{Id: earningsId}, nil)

	out, err := svc.ConfirmPayment(context.Background(), &entity.PaymentConfirmedInput{BookingId: booking.Id, PaymentId: "pay_1", TaxAmount: 300})
	if err != nil {
		t.Fatalf("ConfirmPayment() error = %v", err)
	}
	if out.EarningsId != earningsId {
		t.Errorf("EarningsId = %q, want %q", out.EarningsId, earningsId)
	}
	if out.TaxAmount != 300 || out.PaymentConfirmedAt != formatTime(t0) {
		t.Errorf("payment fields = tax %s at %q", out.TaxAmount, out.PaymentConfirmedAt)
	}
}

func TestBookingService_AccrualFailureKeepsSignal(t *testing.T) {
	f := newFixture(t)
	svc, earnings := newBookingService(f)
	booking := awardedBooking(&entity.BookingRequest{Id: uuid.New()})
	booking.BookingRequestId = uuid.NullUUID{}
	paidAt := t0.Add(-time.Minute)
	booking.PaymentConfirmedAt = &paidAt
	booking.PaymentId = "pay_1"

	f.bookings.EXPECT().LockBookingById(gomock.Any(), booking.Id).Return(booking, nil)
	f.bookings.EXPECT().UpdateBooking(gomock.Any(), booking).Return(nil)
	earnings.EXPECT().
		AccrueFromBooking(gomock.Any(), booking.Id).
		Return(nil, &entity.ValidationError{Field: "netEarnings", Err: entity.ErrNegativeNetEarnings})

	out, err := svc.MarkCompleted(context.Background(), &entity.BookingCompletedInput{BookingId: booking.Id})
	if err != nil {
		t.Fatalf("MarkCompleted() error = %v", err)
	}
	if out.Status != string(common.BookingCompleted) || out.EarningsId != "" {
		t.Errorf("booking = %+v", out)
	}
}

func TestBookingService_AssignAfterCompletion(t *testing.T) {
	f := newFixture(t)
	svc, _ := newBookingService(f)
	booking := awardedBooking(&entity.BookingRequest{Id: uuid.New()})
	booking.Status = common.BookingCompleted

	f.bookings.EXPECT().LockBookingById(gomock.Any(), booking.Id).Return(booking, nil)

	_, err := svc.MarkAssigned(context.Background(), &entity.BookingAssignedInput{BookingId: booking.Id, CarId: "car-1", DriverId: "drv-1"})
	if !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("MarkAssigned() error = %v, want invalid transition", err)
	}
}

func TestBookingService_GetBookingOwnership(t *testing.T) {
	f := newFixture(t)
	svc, _ := newBookingService(f)
	booking := awardedBooking(&entity.BookingRequest{Id: uuid.New()})

	f.bookings.EXPECT().GetBookingById(gomock.Any(), booking.Id).Return(booking, nil).Times(3)

	if _, err := svc.GetBooking(context.Background(), company(booking.CompanyId), booking.Id); err != nil {
		t.Errorf("owner GetBooking() error = %v", err)
	}
	if _, err := svc.GetBooking(context.Background(), system, booking.Id); err != nil {
		t.Errorf("system GetBooking() error = %v", err)
	}
	if _, err := svc.GetBooking(context.Background(), company(uuid.New()), booking.Id); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("stranger GetBooking() error = %v, want not found", err)
	}
}
