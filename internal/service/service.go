package service

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Diagnostics interface {
	Ping(ctx context.Context) error
}

// Directory supplies per-company commercial terms.
type Directory interface {
	CommissionTerms(ctx context.Context, companyId uuid.UUID) (*entity.CommissionTerms, error)
	PayoutFees(ctx context.Context, companyId uuid.UUID, method common.PayoutMethod) (ledger.FeeSchedule, error)
}

// BookingRequest operations accept either the uuid or the BR- reference as requestRef.
type BookingRequest interface {
	CreateBookingRequest(ctx context.Context, p entity.Principal, input *entity.CreateBookingRequestInput) (*entity.BookingRequestOutputModel, error)
	GetBookingRequest(ctx context.Context, p entity.Principal, requestRef string) (*entity.BookingRequestOutputModel, error)
	ListBookingRequests(ctx context.Context, p entity.Principal, filter entity.BookingRequestFilter, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.BookingRequestOutputModel], error)
	CancelRequest(ctx context.Context, p entity.Principal, requestRef string, reason string) (*entity.BookingRequestOutputModel, error)
}

type Auction interface {
	OpenAuction(ctx context.Context, p entity.Principal, requestRef string, ceilingOverride *ledger.Money) (*entity.AuctionOutputModel, error)
	SubmitBid(ctx context.Context, p entity.Principal, auctionId uuid.UUID, companyId uuid.UUID, amount ledger.Money) (*entity.BidOutputModel, error)
	CloseAuction(ctx context.Context, auctionId uuid.UUID) (*entity.AuctionCloseResult, error)
	GetAuction(ctx context.Context, caller entity.Principal, auctionId uuid.UUID) (*entity.AuctionOutputModel, error)
	ListAuctions(ctx context.Context, caller entity.Principal, filter entity.AuctionFilter, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.AuctionOutputModel], error)
	ListBids(ctx context.Context, auctionId uuid.UUID, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.BidOutputModel], error)
	CloseExpired(ctx context.Context, limit int, skip []uuid.UUID) (closed int, failed []uuid.UUID, err error)
}

type Booking interface {
	GetBooking(ctx context.Context, p entity.Principal, bookingId uuid.UUID) (*entity.BookingOutputModel, error)
	MarkAssigned(ctx context.Context, input *entity.BookingAssignedInput) (*entity.BookingOutputModel, error)
	MarkCompleted(ctx context.Context, input *entity.BookingCompletedInput) (*entity.BookingOutputModel, error)
	ConfirmPayment(ctx context.Context, input *entity.PaymentConfirmedInput) (*entity.BookingOutputModel, error)
}

type Earnings interface {
	AccrueFromBooking(ctx context.Context, bookingId uuid.UUID) (*entity.EarningsOutputModel, error)
	CancelEarnings(ctx context.Context, earningsId uuid.UUID, reason string) (*entity.EarningsOutputModel, error)
	GetEarnings(ctx context.Context, p entity.Principal, earningsId uuid.UUID) (*entity.EarningsOutputModel, error)
	ListEarnings(ctx context.Context, p entity.Principal, filter entity.EarningsFilter, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.EarningsOutputModel], error)
}

type Payout interface {
	RequestPayout(ctx context.Context, p entity.Principal, input *entity.RequestPayoutInput) (*entity.PayoutOutputModel, error)
	ApprovePayout(ctx context.Context, p entity.Principal, payoutId uuid.UUID) (*entity.PayoutOutputModel, error)
	ProcessPayout(ctx context.Context, payoutId uuid.UUID, externalTransactionId string) (*entity.PayoutOutputModel, error)
	CompletePayout(ctx context.Context, payoutId uuid.UUID) (*entity.PayoutOutputModel, error)
	FailPayout(ctx context.Context, payoutId uuid.UUID, reason string) (*entity.PayoutOutputModel, error)
	CancelPayout(ctx context.Context, p entity.Principal, payoutId uuid.UUID, reason string) (*entity.PayoutOutputModel, error)
	GetPayout(ctx context.Context, p entity.Principal, payoutId uuid.UUID) (*entity.PayoutOutputModel, error)
	ListPayouts(ctx context.Context, p entity.Principal, filter entity.PayoutFilter, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.PayoutOutputModel], error)
}

type Services struct {
	Diagnostics    Diagnostics
	BookingRequest BookingRequest
	Auction        Auction
	Booking        Booking
	Earnings       Earnings
	Payout         Payout
}

type Deps struct {
	Repos           *repo.Repositories
	Directory       Directory
	AuctionDuration time.Duration
	Log             logger.Logger
}

func NewServices(deps Deps) *Services {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	auctions := NewAuctionService(deps.Repos, deps.AuctionDuration, log)
	earnings := NewEarningsService(deps.Repos, deps.Directory, log)

	return &Services{
		Diagnostics:    NewDiagnosticsService(deps.Repos),
		BookingRequest: NewBookingRequestService(deps.Repos, auctions, log),
		Auction:        auctions,
		Booking:        NewBookingService(deps.Repos, earnings, log),
		Earnings:       earnings,
		Payout:         NewPayoutService(deps.Repos, deps.Directory, log),
	}
}

// scopeCompany narrows a list filter to the caller's company unless the caller
// may see every company.
func scopeCompany(p entity.Principal, requested *uuid.UUID) (*uuid.UUID, error) {
	if p.Role == common.RoleAdmin || p.Role == common.RoleSystem {
		return requested, nil
	}
	if p.CompanyId == uuid.Nil {
		return nil, entity.ErrForbidden
	}
	if requested != nil && *requested != p.CompanyId {
		return nil, entity.ErrForbidden
	}
	own := p.CompanyId

	return &own, nil
}
