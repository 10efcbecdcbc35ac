package service

import (
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/repo"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PayoutService struct {
	tx        repo.Transactor
	payouts   repo.Payout
	earnings  repo.Earnings
	directory Directory
	log       logger.Logger
	now       func() time.Time
}

func NewPayoutService(repos *repo.Repositories, directory Directory, log logger.Logger) *PayoutService {
	return &PayoutService{
		tx:        repos.Transactor,
		payouts:   repos.Payout,
		earnings:  repos.Earnings,
		directory: directory,
		log:       log.With("service", "payout"),
		now:       utcNow,
	}
}

// RequestPayout claims every eligible earnings record of the period in one
// transaction. Phase one locks the candidates, phase two stamps them with the
// payout id and must take exactly the rows phase one saw.
func (s *PayoutService) RequestPayout(ctx context.Context, p entity.Principal, input *entity.RequestPayoutInput) (*entity.PayoutOutputModel, error) {
	if !p.CanAccessCompany(input.CompanyId) {
		return nil, entity.ErrForbidden
	}

	period, err := ledger.NewPeriod(input.PeriodStart, input.PeriodEnd)
	if err != nil {
		return nil, &entity.ValidationError{Field: "period", Err: err}
	}
	details, err := entity.DecodePayoutMethodDetails(input.Method, input.AccountDetails)
	if err != nil {
		return nil, err
	}
	fees, err := s.directory.PayoutFees(ctx, input.CompanyId, input.Method)
	if err != nil {
		return nil, translate(err, ErrCompanyNotFound)
	}

	var payout *entity.Payout
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		claimable, err := s.earnings.SelectClaimable(ctx, input.CompanyId, period)
		if err != nil {
			return translate(err, ErrEarningsNotFound)
		}

		payout, err = entity.NewPayout(input.CompanyId, period, details, claimable, fees, s.now())
		if err != nil {
			return err
		}
		if err = s.payouts.CreatePayout(ctx, payout); err != nil {
			return translate(err, ErrPayoutNotFound)
		}

		ids := make([]uuid.UUID, 0, len(claimable))
		for _, e := range claimable {
			ids = append(ids, e.Id)
		}
		claimed, err := s.earnings.Claim(ctx, payout.Id, ids)
		if err != nil {
			return translate(err, ErrEarningsNotFound)
		}
		if claimed != int64(len(ids)) {
			return &entity.ConcurrencyConflictError{
				Resource: "earnings",
				Msg:      fmt.Sprintf("claimed %d of %d records", claimed, len(ids)),
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Action("request_payout").Info("payout requested",
		"payout_id", payout.Id, "company_id", payout.CompanyId, "earnings", payout.EarningsCount,
		"total", payout.TotalAmount.String(), "fee", payout.FeeAmount.String())

	return mapPayout(payout), nil
}

// transition applies fn to the locked payout, persists it and runs after in
// the same transaction.
func (s *PayoutService) transition(ctx context.Context, action entity.PayoutAction, payoutId uuid.UUID,
	fn func(p *entity.Payout, now time.Time) error,
	after func(ctx context.Context, p *entity.Payout, now time.Time) error,
) (*entity.PayoutOutputModel, error) {
	var payout *entity.Payout
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		payout, err = s.payouts.LockPayoutById(ctx, payoutId)
		if err != nil {
			return translate(err, ErrPayoutNotFound)
		}

		now := s.now()
		if err = fn(payout, now); err != nil {
			return err
		}
		if err = s.payouts.UpdatePayout(ctx, payout); err != nil {
			return translate(err, ErrPayoutNotFound)
		}
		if after == nil {
			return nil
		}

		return after(ctx, payout, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Action(string(action)+"_payout").Info("payout "+string(payout.Status), "payout_id", payout.Id)

	return mapPayout(payout), nil
}

func (s *PayoutService) ApprovePayout(ctx context.Context, p entity.Principal, payoutId uuid.UUID) (*entity.PayoutOutputModel, error) {
	return s.transition(ctx, entity.ActionApprove, payoutId, func(payout *entity.Payout, now time.Time) error {
		return payout.Approve(p.Subject, now)
	}, nil)
}

func (s *PayoutService) ProcessPayout(ctx context.Context, payoutId uuid.UUID, externalTransactionId string) (*entity.PayoutOutputModel, error) {
	return s.transition(ctx, entity.ActionProcess, payoutId, func(payout *entity.Payout, now time.Time) error {
		return payout.Process(externalTransactionId, now)
	}, nil)
}

// CompletePayout marks every claimed earnings record paid.
func (s *PayoutService) CompletePayout(ctx context.Context, payoutId uuid.UUID) (*entity.PayoutOutputModel, error) {
	return s.transition(ctx, entity.ActionComplete, payoutId, (*entity.Payout).Complete,
		func(ctx context.Context, payout *entity.Payout, now time.Time) error {
			paid, err := s.earnings.MarkPaid(ctx, payout.Id, now)
			if err != nil {
				return translate(err, ErrEarningsNotFound)
			}
			if paid != int64(payout.EarningsCount) {
				return &entity.ConcurrencyConflictError{
					Resource: "earnings",
					Msg:      fmt.Sprintf("marked %d of %d claimed records paid", paid, payout.EarningsCount),
				}
			}

			return nil
		})
}

func (s *PayoutService) FailPayout(ctx context.Context, payoutId uuid.UUID, reason string) (*entity.PayoutOutputModel, error) {
	return s.transition(ctx, entity.ActionFail, payoutId, func(payout *entity.Payout, now time.Time) error {
		return payout.Fail(reason, now)
	}, s.release)
}

// CancelPayout is open to the owning company before processing starts.
func (s *PayoutService) CancelPayout(ctx context.Context, p entity.Principal, payoutId uuid.UUID, reason string) (*entity.PayoutOutputModel, error) {
	return s.transition(ctx, entity.ActionCancel, payoutId, func(payout *entity.Payout, now time.Time) error {
		if !p.CanAccessCompany(payout.CompanyId) {
			return ErrPayoutNotFound
		}

		return payout.Cancel(reason, now)
	}, s.release)
}

// release returns the claimed earnings to the processed pool.
func (s *PayoutService) release(ctx context.Context, payout *entity.Payout, _ time.Time) error {
	if !payout.ReleasesEarnings() {
		return nil
	}
	if _, err := s.earnings.Release(ctx, payout.Id); err != nil {
		return translate(err, ErrEarningsNotFound)
	}

	return nil
}

func (s *PayoutService) GetPayout(ctx context.Context, p entity.Principal, payoutId uuid.UUID) (*entity.PayoutOutputModel, error) {
	payout, err := s.payouts.GetPayoutById(ctx, payoutId)
	if err != nil {
		return nil, translate(err, ErrPayoutNotFound)
	}
	if !p.CanAccessCompany(payout.CompanyId) {
		return nil, ErrPayoutNotFound
	}

	return mapPayout(payout), nil
}

func (s *PayoutService) ListPayouts(ctx context.Context, p entity.Principal, filter entity.PayoutFilter, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.PayoutOutputModel], error) {
	companyId, err := scopeCompany(p, filter.CompanyId)
	if err != nil {
		return nil, err
	}
	filter.CompanyId = companyId

	payouts, total, err := s.payouts.ListPayouts(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return entity.NewPage(mapList(payouts, mapPayout), total, pg), nil
}
