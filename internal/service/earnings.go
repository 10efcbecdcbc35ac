package service

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/repo"
	"booking-settlement-api/internal/repo/repo_errors"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type EarningsService struct {
	tx        repo.Transactor
	bookings  repo.Booking
	earnings  repo.Earnings
	directory Directory
	log       logger.Logger
	now       func() time.Time
}

func NewEarningsService(repos *repo.Repositories, directory Directory, log logger.Logger) *EarningsService {
	return &EarningsService{
		tx:        repos.Transactor,
		bookings:  repos.Booking,
		earnings:  repos.Earnings,
		directory: directory,
		log:       log.With("service", "earnings"),
		now:       utcNow,
	}
}

// AccrueFromBooking is idempotent per booking: the booking row is locked so
// concurrent calls serialize, and an existing record is returned as is.
func (s *EarningsService) AccrueFromBooking(ctx context.Context, bookingId uuid.UUID) (*entity.EarningsOutputModel, error) {
	var earnings *entity.Earnings
	created := false
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		booking, err := s.bookings.LockBookingById(ctx, bookingId)
		if err != nil {
			return translate(err, ErrBookingNotFound)
		}

		earnings, err = s.earnings.GetEarningsByBooking(ctx, booking.Id, common.EarningsBookingCommission)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repo_errors.ErrNotFound) {
			return translate(err, ErrEarningsNotFound)
		}

		if !booking.Settled() {
			return &entity.StateTransitionError{Resource: "booking", From: string(booking.Status), Action: "accrue earnings", Err: entity.ErrBookingNotSettled}
		}

		terms, err := s.directory.CommissionTerms(ctx, booking.CompanyId)
		if err != nil {
			return translate(err, ErrCompanyNotFound)
		}

		now := s.now()
		earnings, err = entity.NewBookingCommission(booking, *terms, now)
		if err != nil {
			return err
		}
		if err = s.earnings.CreateEarnings(ctx, earnings); err != nil {
			if errors.Is(err, repo_errors.ErrDuplicate) {
				return &entity.ConcurrencyConflictError{Resource: "earnings", Msg: "accrued concurrently, retry", Err: err}
			}
			return err
		}
		if err = earnings.MarkProcessed(now); err != nil {
			return err
		}
		created = true

		return translate(s.earnings.UpdateEarnings(ctx, earnings), ErrEarningsNotFound)
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.log.Action("accrue_earnings").Info("earnings accrued",
			"earnings_id", earnings.Id, "booking_id", bookingId, "net", earnings.NetEarnings.String())
	}

	return mapEarnings(earnings), nil
}

func (s *EarningsService) CancelEarnings(ctx context.Context, earningsId uuid.UUID, reason string) (*entity.EarningsOutputModel, error) {
	var earnings *entity.Earnings
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		earnings, err = s.earnings.LockEarningsById(ctx, earningsId)
		if err != nil {
			return translate(err, ErrEarningsNotFound)
		}
		if err = earnings.Cancel(reason, s.now()); err != nil {
			return err
		}

		return translate(s.earnings.UpdateEarnings(ctx, earnings), ErrEarningsNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.log.Action("cancel_earnings").Info("earnings cancelled", "earnings_id", earningsId, "reason", reason)

	return mapEarnings(earnings), nil
}

func (s *EarningsService) GetEarnings(ctx context.Context, p entity.Principal, earningsId uuid.UUID) (*entity.EarningsOutputModel, error) {
	earnings, err := s.earnings.GetEarningsById(ctx, earningsId)
	if err != nil {
		return nil, translate(err, ErrEarningsNotFound)
	}
	if !p.CanAccessCompany(earnings.CompanyId) {
		return nil, ErrEarningsNotFound
	}

	return mapEarnings(earnings), nil
}

func (s *EarningsService) ListEarnings(ctx context.Context, p entity.Principal, filter entity.EarningsFilter, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.EarningsOutputModel], error) {
	companyId, err := scopeCompany(p, filter.CompanyId)
	if err != nil {
		return nil, err
	}
	filter.CompanyId = companyId

	earnings, total, err := s.earnings.ListEarnings(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return entity.NewPage(mapList(earnings, mapEarnings), total, pg), nil
}
