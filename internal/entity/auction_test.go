package entity

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/ledger"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func pendingRequest(budget ledger.Money) *BookingRequest {
	return &BookingRequest{
		Id:        uuid.New(),
		RequestId: "BR-20260301-000001",
		MaxBudget: budget,
		Currency:  "USD",
		Status:    common.RequestPending,
	}
}

func openAuction(t *testing.T, ceiling ledger.Money) *Auction {
	t.Helper()
	a, err := NewAuction(pendingRequest(ceiling), nil, time.Hour, t0)
	if err != nil {
		t.Fatalf("NewAuction: %v", err)
	}

	return a
}

func bid(companyId uuid.UUID, amount ledger.Money, at time.Time) Bid {
	return Bid{Id: uuid.New(), CompanyId: companyId, Amount: amount, SubmittedAt: at}
}

func TestNewAuction(t *testing.T) {
	override := ledger.Money(15000)
	zero := ledger.Money(0)

	tests := []struct {
		name        string
		status      common.RequestStatus
		override    *ledger.Money
		duration    time.Duration
		wantCeiling ledger.Money
		wantErr     func(error) bool
	}{
		{name: "defaults to max budget", status: common.RequestPending, duration: time.Hour, wantCeiling: 20000},
		{name: "override", status: common.RequestPending, override: &override, duration: time.Hour, wantCeiling: 15000},
		{name: "zero override", status: common.RequestPending, override: &zero, duration: time.Hour, wantErr: IsValidation},
		{name: "zero duration", status: common.RequestPending, duration: 0, wantErr: IsValidation},
		{name: "not pending", status: common.RequestAuctionActive, duration: time.Hour, wantErr: func(err error) bool {
			return IsStateTransition(err) && errors.Is(err, ErrInvalidState)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := pendingRequest(20000)
			req.Status = tt.status

			a, err := NewAuction(req, tt.override, tt.duration, t0)
			if tt.wantErr != nil {
				if err == nil || !tt.wantErr(err) {
					t.Fatalf("NewAuction() error = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAuction() unexpected error = %v", err)
			}
			if a.Ceiling != tt.wantCeiling {
				t.Errorf("Ceiling = %v, want %v", a.Ceiling, tt.wantCeiling)
			}
			if !a.ClosesAt.Equal(t0.Add(tt.duration)) {
				t.Errorf("ClosesAt = %v", a.ClosesAt)
			}
			if a.Status != common.AuctionOpen {
				t.Errorf("Status = %v", a.Status)
			}
		})
	}
}

func TestAuction_CheckBid(t *testing.T) {
	a := openAuction(t, 20000)

	tests := []struct {
		name    string
		amount  ledger.Money
		at      time.Time
		wantErr error
		check   func(error) bool
	}{
		{name: "below ceiling", amount: 18000, at: t0.Add(time.Minute)},
		{name: "equal to ceiling", amount: 20000, at: t0.Add(time.Minute)},
		{name: "above ceiling", amount: 25000, at: t0.Add(time.Minute), wantErr: ErrBidTooHigh, check: IsValidation},
		{name: "zero", amount: 0, at: t0.Add(time.Minute), check: IsValidation},
		{name: "after deadline", amount: 10000, at: t0.Add(time.Hour), wantErr: ErrAuctionClosed, check: IsStateTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.CheckBid(tt.amount, tt.at)
			if tt.check == nil {
				if err != nil {
					t.Fatalf("CheckBid() error = %v", err)
				}
				return
			}
			if !tt.check(err) {
				t.Fatalf("CheckBid() error = %v, wrong kind", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("CheckBid() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuction_CheckBidOnClosed(t *testing.T) {
	a := openAuction(t, 20000)
	a.Close(nil, common.CloseManual, t0.Add(time.Minute))

	err := a.CheckBid(10000, t0.Add(2*time.Minute))
	if !errors.Is(err, ErrAuctionClosed) {
		t.Fatalf("CheckBid() error = %v, want ErrAuctionClosed", err)
	}
}

func TestAuction_CloseAwardsLowestBid(t *testing.T) {
	a := openAuction(t, 20000)
	c1, c2 := uuid.New(), uuid.New()
	bids := []Bid{
		bid(c1, 18000, t0.Add(1*time.Minute)),
		bid(c2, 17500, t0.Add(2*time.Minute)),
	}

	winner := a.Close(bids, common.CloseDeadline, t0.Add(time.Hour))
	if winner == nil || winner.CompanyId != c2 {
		t.Fatalf("winner = %+v, want company %v", winner, c2)
	}
	if a.Status != common.AuctionClosedAwarded {
		t.Errorf("Status = %v", a.Status)
	}
	if a.WinnerCompanyId.UUID != c2 || a.BestBidAmount != 17500 {
		t.Errorf("winner %v best %v", a.WinnerCompanyId, a.BestBidAmount)
	}
	if a.BidCount != 2 {
		t.Errorf("BidCount = %d, want 2", a.BidCount)
	}
	if a.ClosedAt == nil || a.CloseReason != common.CloseDeadline {
		t.Errorf("ClosedAt %v reason %v", a.ClosedAt, a.CloseReason)
	}
}

func TestAuction_TieGoesToEarliestBid(t *testing.T) {
	a := openAuction(t, 20000)
	early, late := uuid.New(), uuid.New()
	bids := []Bid{
		bid(late, 15000, t0.Add(5*time.Minute)),
		bid(early, 15000, t0.Add(3*time.Minute)),
	}

	winner := a.Close(bids, common.CloseDeadline, t0.Add(time.Hour))
	if winner == nil || winner.CompanyId != early {
		t.Fatalf("winner = %+v, want earliest company %v", winner, early)
	}
}

func TestAuction_RankKeepsBestBidPerCompany(t *testing.T) {
	a := openAuction(t, 20000)
	c1, c2 := uuid.New(), uuid.New()
	bids := []Bid{
		bid(c1, 19000, t0.Add(1*time.Minute)),
		bid(c1, 16000, t0.Add(4*time.Minute)),
		bid(c2, 17000, t0.Add(2*time.Minute)),
		bid(c2, 30000, t0.Add(3*time.Minute)),
	}

	best, companies := a.Rank(bids)
	if companies != 2 {
		t.Errorf("companies = %d, want 2", companies)
	}
	if best == nil || best.CompanyId != c1 || best.Amount != 16000 {
		t.Fatalf("best = %+v", best)
	}
}

func TestAuction_CloseWithoutBidsIsUnfilled(t *testing.T) {
	a := openAuction(t, 20000)

	if winner := a.Close(nil, common.CloseDeadline, t0.Add(time.Hour)); winner != nil {
		t.Fatalf("winner = %+v, want nil", winner)
	}
	if a.Status != common.AuctionClosedUnfilled || a.WinnerCompanyId.Valid {
		t.Errorf("Status = %v winner %v", a.Status, a.WinnerCompanyId)
	}
}

func TestAuction_CloseOnCancelledRequestIgnoresBids(t *testing.T) {
	a := openAuction(t, 20000)
	bids := []Bid{bid(uuid.New(), 12000, t0.Add(time.Minute))}

	if winner := a.Close(bids, common.CloseRequestCancelled, t0.Add(2*time.Minute)); winner != nil {
		t.Fatalf("winner = %+v, want nil", winner)
	}
	if a.Status != common.AuctionClosedUnfilled {
		t.Errorf("Status = %v", a.Status)
	}
}

func TestBookingRequest_CanCancel(t *testing.T) {
	tests := []struct {
		status  common.RequestStatus
		wantErr bool
	}{
		{common.RequestPending, false},
		{common.RequestAuctionActive, false},
		{common.RequestAuctionWon, false},
		{common.RequestAuctionLost, false},
		{common.RequestCompleted, true},
		{common.RequestCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &BookingRequest{Status: tt.status}
			if err := r.CanCancel(); (err != nil) != tt.wantErr {
				t.Errorf("CanCancel() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
