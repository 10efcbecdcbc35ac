package repo

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/repo/pgdb"
	"booking-settlement-api/pkg/postgres"
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=repo.go -destination=mocks/mock_repo.go -package=mocks

// Transactor runs fn in one database transaction carried by ctx. Every
// repository call made with that ctx joins the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type BookingRequest interface {
	CreateBookingRequest(ctx context.Context, r *entity.BookingRequest) error
	GetBookingRequestById(ctx context.Context, id uuid.UUID) (*entity.BookingRequest, error)
	GetBookingRequestByRequestId(ctx context.Context, requestId string) (*entity.BookingRequest, error)
	LockBookingRequestById(ctx context.Context, id uuid.UUID) (*entity.BookingRequest, error)
	UpdateBookingRequestStatus(ctx context.Context, r *entity.BookingRequest) error
	ListBookingRequests(ctx context.Context, filter entity.BookingRequestFilter, pg *entity.PaginationInput) ([]entity.BookingRequest, int, error)
}

type Auction interface {
	CreateAuction(ctx context.Context, a *entity.Auction) error
	GetAuctionById(ctx context.Context, id uuid.UUID) (*entity.Auction, error)
	LockAuctionById(ctx context.Context, id uuid.UUID) (*entity.Auction, error)
	LockOpenAuctionByRequestId(ctx context.Context, requestId uuid.UUID) (*entity.Auction, error)
	UpdateAuction(ctx context.Context, a *entity.Auction) error
	ListAuctions(ctx context.Context, filter entity.AuctionFilter, pg *entity.PaginationInput) ([]entity.Auction, int, error)
	ListExpiredOpenAuctionIds(ctx context.Context, now time.Time, limit int, skip []uuid.UUID) ([]uuid.UUID, error)
	CreateBid(ctx context.Context, b *entity.Bid) error
	GetAuctionBids(ctx context.Context, auctionId uuid.UUID) ([]entity.Bid, error)
	ListAuctionBids(ctx context.Context, auctionId uuid.UUID, pg *entity.PaginationInput) ([]entity.Bid, int, error)
}

type Booking interface {
	CreateBooking(ctx context.Context, b *entity.Booking) error
	GetBookingById(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	LockBookingById(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	GetBookingByRequestId(ctx context.Context, requestId uuid.UUID) (*entity.Booking, error)
	UpdateBooking(ctx context.Context, b *entity.Booking) error
}

// Earnings claiming is two-phase: SelectClaimable locks the eligible rows,
// Claim stamps them with the payout id and reports how many it took.
type Earnings interface {
	CreateEarnings(ctx context.Context, e *entity.Earnings) error
	GetEarningsById(ctx context.Context, id uuid.UUID) (*entity.Earnings, error)
	LockEarningsById(ctx context.Context, id uuid.UUID) (*entity.Earnings, error)
	GetEarningsByBooking(ctx context.Context, bookingId uuid.UUID, earningsType common.EarningsType) (*entity.Earnings, error)
	UpdateEarnings(ctx context.Context, e *entity.Earnings) error
	ListEarnings(ctx context.Context, filter entity.EarningsFilter, pg *entity.PaginationInput) ([]entity.Earnings, int, error)
	SelectClaimable(ctx context.Context, companyId uuid.UUID, period ledger.Period) ([]entity.Earnings, error)
	Claim(ctx context.Context, payoutId uuid.UUID, earningsIds []uuid.UUID) (int64, error)
	MarkPaid(ctx context.Context, payoutId uuid.UUID, paidAt time.Time) (int64, error)
	Release(ctx context.Context, payoutId uuid.UUID) (int64, error)
}

type Payout interface {
	CreatePayout(ctx context.Context, p *entity.Payout) error
	GetPayoutById(ctx context.Context, id uuid.UUID) (*entity.Payout, error)
	LockPayoutById(ctx context.Context, id uuid.UUID) (*entity.Payout, error)
	UpdatePayout(ctx context.Context, p *entity.Payout) error
	ListPayouts(ctx context.Context, filter entity.PayoutFilter, pg *entity.PaginationInput) ([]entity.Payout, int, error)
}

type Outbox interface {
	Enqueue(ctx context.Context, e *entity.OutboxEvent) error
	FetchPending(ctx context.Context, limit, maxAttempts int) ([]entity.OutboxEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type Company interface {
	GetCommissionTerms(ctx context.Context, companyId uuid.UUID) (*entity.CommissionTerms, error)
	GetPayoutFeeOverride(ctx context.Context, companyId uuid.UUID, method common.PayoutMethod) (*ledger.FeeSchedule, error)
}

type Repositories struct {
	Transactor
	Diagnostics
	BookingRequest
	Auction
	Booking
	Earnings
	Payout
	Outbox
	Company
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Transactor:     p,
		Diagnostics:    pgdb.NewDiagnosticsRepo(p),
		BookingRequest: pgdb.NewBookingRequestRepo(p),
		Auction:        pgdb.NewAuctionRepo(p),
		Booking:        pgdb.NewBookingRepo(p),
		Earnings:       pgdb.NewEarningsRepo(p),
		Payout:         pgdb.NewPayoutRepo(p),
		Outbox:         pgdb.NewOutboxRepo(p),
		Company:        pgdb.NewCompanyRepo(p),
	}
}
