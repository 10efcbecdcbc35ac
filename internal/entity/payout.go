package entity

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/ledger"
	"strings"
	"time"

	"github.com/google/uuid"
)

// db model
type Payout struct {
	Id                    uuid.UUID           `db:"id"`
	Reference             string              `db:"reference"`
	CompanyId             uuid.UUID           `db:"company_id"`
	TotalAmount           ledger.Money        `db:"total_amount"`
	FeeAmount             ledger.Money        `db:"fee_amount"`
	NetAmount             ledger.Money        `db:"net_amount"`
	Currency              string              `db:"currency"`
	PayoutMethod          common.PayoutMethod `db:"payout_method"`
	Details               PayoutMethodDetails `db:"account_details"`
	Status                common.PayoutStatus `db:"status"`
	PeriodStart           time.Time           `db:"period_start"`
	PeriodEnd             time.Time           `db:"period_end"`
	EarningsCount         int                 `db:"earnings_count"`
	ExternalTransactionId string              `db:"external_transaction_id"`
	FailureReason         string              `db:"failure_reason"`
	CancelReason          string              `db:"cancel_reason"`
	ApprovedBy            string              `db:"approved_by"`
	RequestedAt           time.Time           `db:"requested_at"`
	ApprovedAt            *time.Time          `db:"approved_at"`
	ProcessingAt          *time.Time          `db:"processing_at"`
	PaidAt                *time.Time          `db:"paid_at"`
	FailedAt              *time.Time          `db:"failed_at"`
	CancelledAt           *time.Time          `db:"cancelled_at"`
	UpdatedAt             time.Time           `db:"updated_at"`
}

type PayoutAction string

const (
	ActionApprove  PayoutAction = "approve"
	ActionProcess  PayoutAction = "process"
	ActionComplete PayoutAction = "complete"
	ActionFail     PayoutAction = "fail"
	ActionCancel   PayoutAction = "cancel"
)

type payoutTransition struct {
	from []common.PayoutStatus
	to   common.PayoutStatus
}

var payoutTransitions = map[PayoutAction]payoutTransition{
	ActionApprove:  {from: []common.PayoutStatus{common.PayoutRequested}, to: common.PayoutApproved},
	ActionProcess:  {from: []common.PayoutStatus{common.PayoutApproved}, to: common.PayoutProcessing},
	ActionComplete: {from: []common.PayoutStatus{common.PayoutProcessing}, to: common.PayoutPaid},
	ActionFail:     {from: []common.PayoutStatus{common.PayoutProcessing}, to: common.PayoutFailed},
	ActionCancel:   {from: []common.PayoutStatus{common.PayoutRequested, common.PayoutApproved}, to: common.PayoutCancelled},
}

// NewPayout aggregates claimable earnings into a requested payout. Every record
// must belong to the company, be processed, unclaimed and earned inside the period.
func NewPayout(companyId uuid.UUID, period ledger.Period, details PayoutMethodDetails, claimable []Earnings, fees ledger.FeeSchedule, now time.Time) (*Payout, error) {
	if details == nil {
		return nil, &ValidationError{Field: "accountDetails", Msg: "is required"}
	}
	if len(claimable) == 0 {
		return nil, ErrNoEligibleEarnings
	}

	currency := claimable[0].Currency
	var total ledger.Money
	for i := range claimable {
		e := &claimable[i]
		if !IsClaimable(e, companyId, period) {
			return nil, &ConcurrencyConflictError{Resource: "earnings", Msg: "record " + e.Reference + " is no longer claimable"}
		}
		if e.Currency != currency {
			return nil, &ValidationError{Field: "currency", Msg: "earnings in the period carry more than one currency"}
		}
		total += e.GrossAmount
	}

	fee := fees.Fee(total)

	return &Payout{
		Id:            uuid.New(),
		Reference:     NewReference(PayoutReferencePrefix, now),
		CompanyId:     companyId,
		TotalAmount:   total,
		FeeAmount:     fee,
		NetAmount:     total - fee,
		Currency:      currency,
		PayoutMethod:  details.Method(),
		Details:       details,
		Status:        common.PayoutRequested,
		PeriodStart:   period.Start,
		PeriodEnd:     period.End,
		EarningsCount: len(claimable),
		RequestedAt:   now,
		UpdatedAt:     now,
	}, nil
}

// IsClaimable is the aggregation predicate for payouts.
func IsClaimable(e *Earnings, companyId uuid.UUID, period ledger.Period) bool {
	return e.CompanyId == companyId &&
		e.Status == common.EarningsProcessed &&
		!e.PayoutId.Valid &&
		period.Contains(e.EarnedAt)
}

func (p *Payout) transition(action PayoutAction, now time.Time) error {
	t, ok := payoutTransitions[action]
	if !ok {
		return invalidTransition("payout", string(p.Status), string(action))
	}
	for _, from := range t.from {
		if p.Status == from {
			p.Status = t.to
			p.UpdatedAt = now
			return nil
		}
	}

	return invalidTransition("payout", string(p.Status), string(action))
}

func (p *Payout) Approve(approvedBy string, now time.Time) error {
	if err := p.transition(ActionApprove, now); err != nil {
		return err
	}
	p.ApprovedBy = approvedBy
	p.ApprovedAt = &now

	return nil
}

func (p *Payout) Process(externalTransactionId string, now time.Time) error {
	externalTransactionId = strings.TrimSpace(externalTransactionId)
	if externalTransactionId == "" {
		return &ValidationError{Field: "externalTransactionId", Msg: "is required"}
	}
	if err := p.transition(ActionProcess, now); err != nil {
		return err
	}
	p.ExternalTransactionId = externalTransactionId
	p.ProcessingAt = &now

	return nil
}

func (p *Payout) Complete(now time.Time) error {
	if err := p.transition(ActionComplete, now); err != nil {
		return err
	}
	p.PaidAt = &now

	return nil
}

func (p *Payout) Fail(reason string, now time.Time) error {
	if err := p.transition(ActionFail, now); err != nil {
		return err
	}
	p.FailureReason = reason
	p.FailedAt = &now

	return nil
}

func (p *Payout) Cancel(reason string, now time.Time) error {
	if err := p.transition(ActionCancel, now); err != nil {
		return err
	}
	p.CancelReason = reason
	p.CancelledAt = &now

	return nil
}

// ReleasesEarnings is true for the terminal states that hand claimed earnings back.
func (p *Payout) ReleasesEarnings() bool {
	return p.Status == common.PayoutFailed || p.Status == common.PayoutCancelled
}

// service input model
type RequestPayoutInput struct {
	CompanyId      uuid.UUID
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Method         common.PayoutMethod
	AccountDetails []byte
}

type PayoutFilter struct {
	CompanyId *uuid.UUID
	Status    common.PayoutStatus
	Method    common.PayoutMethod
	From      *time.Time
	To        *time.Time
}

// controller model
type PayoutOutputModel struct {
	Id                    string              `json:"id"`
	Reference             string              `json:"reference"`
	CompanyId             string              `json:"companyId"`
	TotalAmount           ledger.Money        `json:"totalAmount"`
	FeeAmount             ledger.Money        `json:"feeAmount"`
	NetAmount             ledger.Money        `json:"netAmount"`
	Currency              string              `json:"currency"`
	PayoutMethod          string              `json:"payoutMethod"`
	AccountDetails        PayoutMethodDetails `json:"accountDetails"`
	Status                string              `json:"status"`
	PeriodStart           string              `json:"periodStart"`
	PeriodEnd             string              `json:"periodEnd"`
	EarningsCount         int                 `json:"earningsCount"`
	ExternalTransactionId string              `json:"externalTransactionId,omitempty"`
	FailureReason         string              `json:"failureReason,omitempty"`
	CancelReason          string              `json:"cancelReason,omitempty"`
	ApprovedBy            string              `json:"approvedBy,omitempty"`
	RequestedAt           string              `json:"requestedAt"`
	ApprovedAt            string              `json:"approvedAt,omitempty"`
	ProcessingAt          string              `json:"processingAt,omitempty"`
	PaidAt                string              `json:"paidAt,omitempty"`
	FailedAt              string              `json:"failedAt,omitempty"`
	CancelledAt           string              `json:"cancelledAt,omitempty"`
}
