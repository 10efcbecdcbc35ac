package service

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/logger"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var bankDetails = []byte(`{"accountHolder":"Fleet LLC","bankName":"First Bank","accountNumber":"000123","routingNumber":"110000000"}`)

func newPayoutService(f *fixture) *PayoutService {
	svc := NewPayoutService(f.repos, f.directory, logger.Nop())
	svc.now = f.clock.Now

	return svc
}

func processed(companyId uuid.UUID, net ledger.Money, earnedAt time.Time) entity.Earnings {
	processedAt := earnedAt
	return entity.Earnings{
		Id:          uuid.New(),
		Reference:   entity.NewReference(entity.EarningsReferencePrefix, earnedAt),
		CompanyId:   companyId,
		GrossAmount: net,
		NetEarnings: net,
		Currency:    "USD",
		Status:      common.EarningsProcessed,
		EarnedAt:    earnedAt,
		ProcessedAt: &processedAt,
	}
}

func payoutInput(companyId uuid.UUID) *entity.RequestPayoutInput {
	return &entity.RequestPayoutInput{
		CompanyId:      companyId,
		PeriodStart:    t0.AddDate(0, 0, -1),
		PeriodEnd:      t0.AddDate(0, 1, 0),
		Method:         common.MethodBankTransfer,
		AccountDetails: bankDetails,
	}
}

// 175.00 and 325.00 at a 1% fee give 500.00 total, 5.00 fee and 495.00 net.
func TestPayoutService_RequestPayout(t *testing.T) {
	f := newFixture(t)
	svc := newPayoutService(f)
	companyId := uuid.New()
	claimable := []entity.Earnings{
		processed(companyId, 17500, t0.Add(time.Hour)),
		processed(companyId, 32500, t0.Add(2*time.Hour)),
	}

	var created *entity.Payout
	f.directory.EXPECT().
		PayoutFees(gomock.Any(), companyId, common.MethodBankTransfer).
		Return(ledger.FeeSchedule{Percent: 1}, nil)
	gomock.InOrder(
		f.earnings.EXPECT().SelectClaimable(gomock.Any(), companyId, gomock.Any()).Return(claimable, nil),
		f.payouts.EXPECT().
			CreatePayout(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *entity.Payout) error {
				created = p
				return nil
			}),
		f.earnings.EXPECT().
			Claim(gomock.Any(), gomock.Any(), []uuid.UUID{claimable[0].Id, claimable[1].Id}).
			DoAndReturn(func(_ context.Context, payoutId uuid.UUID, ids []uuid.UUID) (int64, error) {
				if payoutId != created.Id {
					t.Errorf("claimed for %s, want the new payout %s", payoutId, created.Id)
				}
				return int64(len(ids)), nil
			}),
	)

	out, err := svc.RequestPayout(context.Background(), company(companyId), payoutInput(companyId))
	if err != nil {
		t.Fatalf("RequestPayout() error = %v", err)
	}

	if out.TotalAmount != 50000 || out.FeeAmount != 500 || out.NetAmount != 49500 {
		t.Errorf("amounts = total %s fee %s net %s, want 500.00 / 5.00 / 495.00", out.TotalAmount, out.FeeAmount, out.NetAmount)
	}
	if out.Status != string(common.PayoutRequested) || out.EarningsCount != 2 {
		t.Errorf("status %s count %d", out.Status, out.EarningsCount)
	}
	if _, ok := out.AccountDetails.(*entity.BankTransferDetails); !ok {
		t.Errorf("details = %T, want bank transfer", out.AccountDetails)
	}
}

func TestPayoutService_RequestPayoutShortClaimIsConflict(t *testing.T) {
	f := newFixture(t)
	svc := newPayoutService(f)
	companyId := uuid.New()
	claimable := []entity.Earnings{
		processed(companyId, 17500, t0.Add(time.Hour)),
		processed(companyId, 32500, t0.Add(2*time.Hour)),
	}

	f.directory.EXPECT().PayoutFees(gomock.Any(), companyId, gomock.Any()).Return(ledger.FeeSchedule{Percent: 1}, nil)
	f.earnings.EXPECT().SelectClaimable(gomock.Any(), companyId, gomock.Any()).Return(claimable, nil)
	f.payouts.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).Return(nil)
	f.earnings.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

	_, err := svc.RequestPayout(context.Background(), company(companyId), payoutInput(companyId))
	if !entity.IsConflict(err) {
		t.Fatalf("RequestPayout() error = %v, want conflict", err)
	}
}

func TestPayoutService_RequestPayoutRejections(t *testing.T) {
	companyId := uuid.New()

	tests := []struct {
		name    string
		caller  entity.Principal
		input   func() *entity.RequestPayoutInput
		prepare func(f *fixture)
		wantErr func(error) bool
	}{
		{
			name:    "other company",
			caller:  company(uuid.New()),
			input:   func() *entity.RequestPayoutInput { return payoutInput(companyId) },
			wantErr: func(err error) bool { return errors.Is(err, entity.ErrForbidden) },
		},
		{
			name:   "inverted period",
			caller: admin,
			input: func() *entity.RequestPayoutInput {
				in := payoutInput(companyId)
				in.PeriodStart, in.PeriodEnd = in.PeriodEnd, in.PeriodStart
				return in
			},
			wantErr: func(err error) bool { return errors.Is(err, ledger.ErrInvalidPeriod) },
		},
		{
			name:   "bad account details",
			caller: admin,
			input: func() *entity.RequestPayoutInput {
				in := payoutInput(companyId)
				in.AccountDetails = []byte(`{"accountHolder":"Fleet LLC"}`)
				return in
			},
			wantErr: entity.IsValidation,
		},
		{
			name:   "nothing to claim",
			caller: company(companyId),
			input:  func() *entity.RequestPayoutInput { return payoutInput(companyId) },
			prepare: func(f *fixture) {
				f.directory.EXPECT().PayoutFees(gomock.Any(), companyId, gomock.Any()).Return(ledger.FeeSchedule{}, nil)
				f.earnings.EXPECT().SelectClaimable(gomock.Any(), companyId, gomock.Any()).Return(nil, nil)
			},
			wantErr: func(err error) bool { return errors.Is(err, entity.ErrNoEligibleEarnings) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc := newPayoutService(f)
			if tt.prepare != nil {
				tt.prepare(f)
			}

			_, err := svc.RequestPayout(context.Background(), tt.caller, tt.input())
			if !tt.wantErr(err) {
				t.Fatalf("RequestPayout() error = %v", err)
			}
		})
	}
}

func storedPayout(status common.PayoutStatus) *entity.Payout {
	return &entity.Payout{
		Id:            uuid.New(),
		CompanyId:     uuid.New(),
		TotalAmount:   50000,
		FeeAmount:     500,
		NetAmount:     49500,
		PayoutMethod:  common.MethodBankTransfer,
		Details:       &entity.BankTransferDetails{AccountHolder: "Fleet LLC"},
		Status:        status,
		EarningsCount: 2,
		RequestedAt:   t0,
	}
}

func TestPayoutService_LifecycleToPaid(t *testing.T) {
	f := newFixture(t)
	svc := newPayoutService(f)
	payout := storedPayout(common.PayoutRequested)

	f.payouts.EXPECT().LockPayoutById(gomock.Any(), payout.Id).Return(payout, nil).Times(3)
	f.payouts.EXPECT().UpdatePayout(gomock.Any(), payout).Return(nil).Times(3)
	f.earnings.EXPECT().MarkPaid(gomock.Any(), payout.Id, t0).Return(int64(2), nil)

	ctx := context.Background()
	if _, err := svc.ApprovePayout(ctx, admin, payout.Id); err != nil {
		t.Fatalf("ApprovePayout() error = %v", err)
	}
	if _, err := svc.ProcessPayout(ctx, payout.Id, "tx-991"); err != nil {
		t.Fatalf("ProcessPayout() error = %v", err)
	}
	out, err := svc.CompletePayout(ctx, payout.Id)
	if err != nil {
		t.Fatalf("CompletePayout() error = %v", err)
	}

	if out.Status != string(common.PayoutPaid) || out.PaidAt == "" {
		t.Errorf("status = %s paidAt %q", out.Status, out.PaidAt)
	}
	if out.ApprovedBy != admin.Subject || out.ExternalTransactionId != "tx-991" {
		t.Errorf("approvedBy %q external id %q", out.ApprovedBy, out.ExternalTransactionId)
	}
}

// A failed payout hands its earnings back to the processed, unclaimed pool.
func TestPayoutService_FailReleasesEarnings(t *testing.T) {
	f := newFixture(t)
	svc := newPayoutService(f)
	payout := storedPayout(common.PayoutProcessing)

	gomock.InOrder(
		f.payouts.EXPECT().LockPayoutById(gomock.Any(), payout.Id).Return(payout, nil),
		f.payouts.EXPECT().UpdatePayout(gomock.Any(), payout).Return(nil),
		f.earnings.EXPECT().Release(gomock.Any(), payout.Id).Return(int64(2), nil),
	)

	out, err := svc.FailPayout(context.Background(), payout.Id, "account closed")
	if err != nil {
		t.Fatalf("FailPayout() error = %v", err)
	}
	if out.Status != string(common.PayoutFailed) || out.FailureReason != "account closed" {
		t.Errorf("FailPayout() = %+v", out)
	}
}

func TestPayoutService_CancelReleasesEarnings(t *testing.T) {
	f := newFixture(t)
	svc := newPayoutService(f)
	payout := storedPayout(common.PayoutApproved)

	f.payouts.EXPECT().LockPayoutById(gomock.Any(), payout.Id).Return(payout, nil).Times(2)
	f.payouts.EXPECT().UpdatePayout(gomock.Any(), payout).Return(nil)
	f.earnings.EXPECT().Release(gomock.Any(), payout.Id).Return(int64(2), nil)

	if _, err := svc.CancelPayout(context.Background(), company(uuid.New()), payout.Id, "changed my mind"); !errors.Is(err, ErrPayoutNotFound) {
		t.Fatalf("CancelPayout() by another company error = %v, want not found", err)
	}

	out, err := svc.CancelPayout(context.Background(), company(payout.CompanyId), payout.Id, "changed my mind")
	if err != nil {
		t.Fatalf("CancelPayout() error = %v", err)
	}
	if out.Status != string(common.PayoutCancelled) {
		t.Errorf("status = %s, want cancelled", out.Status)
	}
}

func TestPayoutService_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name   string
		status common.PayoutStatus
		call   func(svc *PayoutService, id uuid.UUID) error
	}{
		{
			name:   "complete from requested",
			status: common.PayoutRequested,
			call: func(svc *PayoutService, id uuid.UUID) error {
				_, err := svc.CompletePayout(context.Background(), id)
				return err
			},
		},
		{
			name:   "process from requested",
			status: common.PayoutRequested,
			call: func(svc *PayoutService, id uuid.UUID) error {
				_, err := svc.ProcessPayout(context.Background(), id, "tx-1")
				return err
			},
		},
		{
			name:   "cancel while processing",
			status: common.PayoutProcessing,
			call: func(svc *PayoutService, id uuid.UUID) error {
				_, err := svc.CancelPayout(context.Background(), admin, id, "late")
				return err
			},
		},
		{
			name:   "fail after paid",
			status: common.PayoutPaid,
			call: func(svc *PayoutService, id uuid.UUID) error {
				_, err := svc.FailPayout(context.Background(), id, "bounced")
				return err
			},
		},
		{
			name:   "approve twice",
			status: common.PayoutApproved,
			call: func(svc *PayoutService, id uuid.UUID) error {
				_, err := svc.ApprovePayout(context.Background(), admin, id)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			svc := newPayoutService(f)
			payout := storedPayout(tt.status)

			f.payouts.EXPECT().LockPayoutById(gomock.Any(), payout.Id).Return(payout, nil)

			err := tt.call(svc, payout.Id)
			if !entity.IsStateTransition(err) || !errors.Is(err, entity.ErrInvalidTransition) {
				t.Fatalf("error = %v, want invalid transition", err)
			}
			if payout.Status != tt.status {
				t.Errorf("status changed to %s", payout.Status)
			}
		})
	}
}

func TestPayoutService_CompleteCountMismatchIsConflict(t *testing.T) {
	f := newFixture(t)
	svc := newPayoutService(f)
	payout := storedPayout(common.PayoutProcessing)

	f.payouts.EXPECT().LockPayoutById(gomock.Any(), payout.Id).Return(payout, nil)
	f.payouts.EXPECT().UpdatePayout(gomock.Any(), payout).Return(nil)
	f.earnings.EXPECT().MarkPaid(gomock.Any(), payout.Id, gomock.Any()).Return(int64(1), nil)

	if _, err := svc.CompletePayout(context.Background(), payout.Id); !entity.IsConflict(err) {
		t.Fatalf("CompletePayout() error = %v, want conflict", err)
	}
}
