package service

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
)

// BookingService applies fulfillment signals to awarded bookings. Once a booking
// is completed and paid its earnings are accrued.
type BookingService struct {
	tx       repo.Transactor
	bookings repo.Booking
	requests repo.BookingRequest
	outbox   repo.Outbox
	earnings Earnings
	log      logger.Logger
	now      func() time.Time
}

func NewBookingService(repos *repo.Repositories, earnings Earnings, log logger.Logger) *BookingService {
	return &BookingService{
		tx:       repos.Transactor,
		bookings: repos.Booking,
		requests: repos.BookingRequest,
		outbox:   repos.Outbox,
		earnings: earnings,
		log:      log.With("service", "booking"),
		now:      utcNow,
	}
}

func (s *BookingService) GetBooking(ctx context.Context, p entity.Principal, bookingId uuid.UUID) (*entity.BookingOutputModel, error) {
	booking, err := s.bookings.GetBookingById(ctx, bookingId)
	if err != nil {
		return nil, translate(err, ErrBookingNotFound)
	}
	if !p.CanAccessCompany(booking.CompanyId) {
		return nil, ErrBookingNotFound
	}

	return mapBooking(booking), nil
}

// update runs fn on the locked booking and persists the result.
func (s *BookingService) update(ctx context.Context, bookingId uuid.UUID, fn func(ctx context.Context, b *entity.Booking, now time.Time) error) (*entity.Booking, error) {
	var booking *entity.Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.bookings.LockBookingById(ctx, bookingId)
		if err != nil {
			return translate(err, ErrBookingNotFound)
		}

		now := s.now()
		if err = fn(ctx, booking, now); err != nil {
			return err
		}

		return translate(s.bookings.UpdateBooking(ctx, booking), ErrBookingNotFound)
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *BookingService) MarkAssigned(ctx context.Context, input *entity.BookingAssignedInput) (*entity.BookingOutputModel, error) {
	booking, err := s.update(ctx, input.BookingId, func(_ context.Context, b *entity.Booking, now time.Time) error {
		return b.Assign(input.CarId, input.DriverId, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Action("booking_assigned").Info("booking assigned", "booking_id", booking.Id, "driver_id", booking.DriverId)

	return mapBooking(booking), nil
}

// MarkCompleted also completes the originating request when its auction was won.
func (s *BookingService) MarkCompleted(ctx context.Context, input *entity.BookingCompletedInput) (*entity.BookingOutputModel, error) {
	booking, err := s.update(ctx, input.BookingId, func(ctx context.Context, b *entity.Booking, now time.Time) error {
		completedAt := input.CompletedAt
		if completedAt.IsZero() {
			completedAt = now
		}
		if err := b.Complete(input.TotalAmount, completedAt.UTC(), now); err != nil {
			return err
		}
		if !b.BookingRequestId.Valid {
			return nil
		}

		req, err := s.requests.LockBookingRequestById(ctx, b.BookingRequestId.UUID)
		if err != nil {
			return translate(err, ErrBookingRequestNotFound)
		}
		if req.CanComplete() != nil {
			return nil
		}

		return setRequestStatus(ctx, s.requests, s.outbox, req, common.RequestCompleted, "", now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Action("booking_completed").Info("booking completed", "booking_id", booking.Id, "total", booking.TotalAmount.String())

	return s.settle(ctx, booking), nil
}

func (s *BookingService) ConfirmPayment(ctx context.Context, input *entity.PaymentConfirmedInput) (*entity.BookingOutputModel, error) {
	booking, err := s.update(ctx, input.BookingId, func(_ context.Context, b *entity.Booking, now time.Time) error {
		confirmedAt := input.ConfirmedAt
		if confirmedAt.IsZero() {
			confirmedAt = now
		}

		return b.ConfirmPayment(input.PaymentId, input.TaxAmount, confirmedAt.UTC(), now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Action("payment_confirmed").Info("payment confirmed", "booking_id", booking.Id, "payment_id", booking.PaymentId)

	return s.settle(ctx, booking), nil
}

// settle accrues earnings for a settled booking. A failed accrual does not
// undo the signal; it is logged and can be repeated through AccrueFromBooking.
func (s *BookingService) settle(ctx context.Context, booking *entity.Booking) *entity.BookingOutputModel {
	out := mapBooking(booking)
	if !booking.Settled() {
		return out
	}

	earnings, err := s.earnings.AccrueFromBooking(ctx, booking.Id)
	if err != nil {
		s.log.Action("accrue_earnings").Error("failed to accrue earnings", err, "booking_id", booking.Id)
		return out
	}
	out.EarningsId = earnings.Id

	return out
}
