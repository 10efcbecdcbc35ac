package entity

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/ledger"
	"time"

	"github.com/google/uuid"
)

// db model
type Auction struct {
	Id               uuid.UUID            `db:"id"`
	BookingRequestId uuid.UUID            `db:"booking_request_id"`
	Ceiling          ledger.Money         `db:"ceiling"`
	Currency         string               `db:"currency"`
	OpenedAt         time.Time            `db:"opened_at"`
	ClosesAt         time.Time            `db:"closes_at"`
	BidCount         int                  `db:"bid_count"`
	BestBidId        uuid.NullUUID        `db:"best_bid_id"`
	BestBidAmount    ledger.Money         `db:"best_bid_amount"`
	BestCompanyId    uuid.NullUUID        `db:"best_company_id"`
	WinnerCompanyId  uuid.NullUUID        `db:"winner_company_id"`
	Status           common.AuctionStatus `db:"status"`
	CloseReason      common.CloseReason   `db:"close_reason"`
	ClosedAt         *time.Time           `db:"closed_at"`
}

// db model
type Bid struct {
	Id          uuid.UUID    `db:"id"`
	AuctionId   uuid.UUID    `db:"auction_id"`
	CompanyId   uuid.UUID    `db:"company_id"`
	Amount      ledger.Money `db:"amount"`
	SubmittedAt time.Time    `db:"submitted_at"`
}

// NewAuction opens bidding for a pending request. The ceiling defaults to the
// request's max budget.
func NewAuction(req *BookingRequest, ceilingOverride *ledger.Money, duration time.Duration, now time.Time) (*Auction, error) {
	if err := req.CanOpenAuction(); err != nil {
		return nil, err
	}

	ceiling := req.MaxBudget
	if ceilingOverride != nil {
		ceiling = *ceilingOverride
	}
	if ceiling <= 0 {
		return nil, &ValidationError{Field: "ceiling", Msg: "must be greater than zero"}
	}
	if duration <= 0 {
		return nil, &ValidationError{Field: "duration", Msg: "must be positive"}
	}

	return &Auction{
		Id:               uuid.New(),
		BookingRequestId: req.Id,
		Ceiling:          ceiling,
		Currency:         req.Currency,
		OpenedAt:         now,
		ClosesAt:         now.Add(duration),
		Status:           common.AuctionOpen,
	}, nil
}

func (a *Auction) IsClosed() bool {
	return a.Status != common.AuctionOpen
}

// AcceptsBidsAt is false once the auction closed or its deadline passed.
func (a *Auction) AcceptsBidsAt(now time.Time) bool {
	return a.Status == common.AuctionOpen && now.Before(a.ClosesAt)
}

// CheckBid validates a bid against the auction state and ceiling.
func (a *Auction) CheckBid(amount ledger.Money, now time.Time) error {
	if !a.AcceptsBidsAt(now) {
		return &StateTransitionError{Resource: "auction", From: string(a.Status), Action: "bid", Err: ErrAuctionClosed}
	}
	if amount <= 0 {
		return &ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}
	if amount > a.Ceiling {
		return &ValidationError{Field: "amount", Msg: "exceeds auction ceiling " + a.Ceiling.String(), Err: ErrBidTooHigh}
	}

	return nil
}

// ranksBefore orders bids by amount, then submission time, then id.
func ranksBefore(x, y *Bid) bool {
	if x.Amount != y.Amount {
		return x.Amount < y.Amount
	}
	if !x.SubmittedAt.Equal(y.SubmittedAt) {
		return x.SubmittedAt.Before(y.SubmittedAt)
	}

	return x.Id.String() < y.Id.String()
}

// Rank keeps each company's best qualifying bid and returns the overall best
// with the number of companies holding a qualifying bid. Bids outside
// (0, ceiling] are ignored.
func (a *Auction) Rank(bids []Bid) (*Bid, int) {
	perCompany := make(map[uuid.UUID]*Bid)
	for i := range bids {
		b := &bids[i]
		if b.Amount <= 0 || b.Amount > a.Ceiling {
			continue
		}
		if cur, ok := perCompany[b.CompanyId]; !ok || ranksBefore(b, cur) {
			perCompany[b.CompanyId] = b
		}
	}

	var best *Bid
	for _, b := range perCompany {
		if best == nil || ranksBefore(b, best) {
			best = b
		}
	}

	return best, len(perCompany)
}

// ApplyBids recomputes the best bid and bid count.
func (a *Auction) ApplyBids(bids []Bid) *Bid {
	best, count := a.Rank(bids)
	a.BidCount = count
	if best == nil {
		a.BestBidId = uuid.NullUUID{}
		a.BestBidAmount = 0
		a.BestCompanyId = uuid.NullUUID{}
		return nil
	}

	a.BestBidId = uuid.NullUUID{UUID: best.Id, Valid: true}
	a.BestBidAmount = best.Amount
	a.BestCompanyId = uuid.NullUUID{UUID: best.CompanyId, Valid: true}

	return best
}

// Close settles the auction. A cancelled request always leaves it unfilled.
// Returns the winning bid, nil when unfilled.
func (a *Auction) Close(bids []Bid, reason common.CloseReason, now time.Time) *Bid {
	best := a.ApplyBids(bids)
	closedAt := now
	a.ClosedAt = &closedAt
	a.CloseReason = reason

	if best == nil || reason == common.CloseRequestCancelled {
		a.Status = common.AuctionClosedUnfilled
		a.WinnerCompanyId = uuid.NullUUID{}
		return nil
	}

	a.Status = common.AuctionClosedAwarded
	a.WinnerCompanyId = uuid.NullUUID{UUID: best.CompanyId, Valid: true}

	return best
}

type AuctionFilter struct {
	Status           common.AuctionStatus
	BookingRequestId *uuid.UUID
	WinnerCompanyId  *uuid.UUID
	ClosesBefore     *time.Time
}

// controller models
type BidOutputModel struct {
	Id          string       `json:"id"`
	AuctionId   string       `json:"auctionId"`
	CompanyId   string       `json:"companyId"`
	Amount      ledger.Money `json:"amount"`
	SubmittedAt string       `json:"submittedAt"`
}

type AuctionOutputModel struct {
	Id               string        `json:"id"`
	BookingRequestId string        `json:"bookingRequestId"`
	Ceiling          ledger.Money  `json:"ceiling"`
	Currency         string        `json:"currency"`
	OpenedAt         string        `json:"openedAt"`
	ClosesAt         string        `json:"closesAt"`
	BidCount         int           `json:"bidCount"`
	BestBidAmount    *ledger.Money `json:"bestBidAmount,omitempty"`
	BestCompanyId    string        `json:"bestCompanyId,omitempty"`
	WinnerCompanyId  string        `json:"winnerCompanyId,omitempty"`
	Status           string        `json:"status"`
	CloseReason      string        `json:"closeReason,omitempty"`
	ClosedAt         string        `json:"closedAt,omitempty"`
}

// AuctionCloseResult is what CloseAuction reports, also on repeated calls.
type AuctionCloseResult struct {
	Auction   AuctionOutputModel `json:"auction"`
	BookingId string             `json:"bookingId,omitempty"`
}
