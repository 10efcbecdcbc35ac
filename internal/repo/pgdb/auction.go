package pgdb

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/pkg/postgres"
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var auctionColumns = []string{
	"id", "booking_request_id", "ceiling", "currency", "opened_at", "closes_at", "bid_count",
	"best_bid_id", "best_bid_amount", "best_company_id", "winner_company_id", "status",
	"close_reason", "closed_at",
}

var bidColumns = []string{"id", "auction_id", "company_id", "amount", "submitted_at"}

type AuctionRepo struct {
	*postgres.Postgres
}

func NewAuctionRepo(pgdb *postgres.Postgres) *AuctionRepo {
	return &AuctionRepo{pgdb}
}

func scanAuction(row rowScanner) (*entity.Auction, error) {
	var a entity.Auction
	err := row.Scan(&a.Id, &a.BookingRequestId, &a.Ceiling, &a.Currency, &a.OpenedAt, &a.ClosesAt, &a.BidCount,
		&a.BestBidId, &a.BestBidAmount, &a.BestCompanyId, &a.WinnerCompanyId, &a.Status,
		&a.CloseReason, &a.ClosedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return &a, nil
}

func scanBid(row rowScanner) (*entity.Bid, error) {
	var b entity.Bid
	if err := row.Scan(&b.Id, &b.AuctionId, &b.CompanyId, &b.Amount, &b.SubmittedAt); err != nil {
		return nil, translateError(err)
	}

	return &b, nil
}

// CreateAuction reports ErrDuplicate when the request already has an open auction.
func (r *AuctionRepo) CreateAuction(ctx context.Context, a *entity.Auction) error {
	createSql, args, err := r.SqlBuilder.
		Insert("auction").
		Columns(auctionColumns...).
		Values(a.Id, a.BookingRequestId, a.Ceiling, a.Currency, a.OpenedAt, a.ClosesAt, a.BidCount,
			a.BestBidId, a.BestBidAmount, a.BestCompanyId, a.WinnerCompanyId, a.Status,
			a.CloseReason, a.ClosedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = r.Conn(ctx).ExecContext(ctx, createSql, args...); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *AuctionRepo) get(ctx context.Context, where squirrel.Sqlizer, suffix string) (*entity.Auction, error) {
	builder := r.SqlBuilder.
		Select(auctionColumns...).
		From("auction").
		Where(where)
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	getSql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	return scanAuction(r.Conn(ctx).QueryRowContext(ctx, getSql, args...))
}

func (r *AuctionRepo) GetAuctionById(ctx context.Context, id uuid.UUID) (*entity.Auction, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, "")
}

func (r *AuctionRepo) LockAuctionById(ctx context.Context, id uuid.UUID) (*entity.Auction, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, "FOR UPDATE")
}

func (r *AuctionRepo) LockOpenAuctionByRequestId(ctx context.Context, requestId uuid.UUID) (*entity.Auction, error) {
	return r.get(ctx, squirrel.Eq{"booking_request_id": requestId, "status": common.AuctionOpen}, "FOR UPDATE")
}

func (r *AuctionRepo) UpdateAuction(ctx context.Context, a *entity.Auction) error {
	updateSql, args, err := r.SqlBuilder.
		Update("auction").
		Set("bid_count", a.BidCount).
		Set("best_bid_id", a.BestBidId).
		Set("best_bid_amount", a.BestBidAmount).
		Set("best_company_id", a.BestCompanyId).
		Set("winner_company_id", a.WinnerCompanyId).
		Set("status", a.Status).
		Set("close_reason", a.CloseReason).
		Set("closed_at", a.ClosedAt).
		Where(squirrel.Eq{"id": a.Id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.Conn(ctx).ExecContext(ctx, updateSql, args...)
	if err != nil {
		return translateError(err)
	}

	return expectOne(res)
}

func auctionWhere(f entity.AuctionFilter) squirrel.And {
	where := squirrel.And{}
	if f.Status != "" {
		where = append(where, squirrel.Eq{"status": f.Status})
	}
	if f.BookingRequestId != nil {
		where = append(where, squirrel.Eq{"booking_request_id": *f.BookingRequestId})
	}
	if f.WinnerCompanyId != nil {
		where = append(where, squirrel.Eq{"winner_company_id": *f.WinnerCompanyId})
	}
	if f.ClosesBefore != nil {
		where = append(where, squirrel.Lt{"closes_at": *f.ClosesBefore})
	}

	return where
}

func (r *AuctionRepo) ListAuctions(ctx context.Context, filter entity.AuctionFilter, pg *entity.PaginationInput) ([]entity.Auction, int, error) {
	where := auctionWhere(filter)
	total, err := count(ctx, r.Postgres, "auction", where)
	if err != nil {
		return nil, 0, err
	}

	listSql, args, err := page(r.SqlBuilder.Select(auctionColumns...).From("auction"), where, pg).
		OrderBy("opened_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.Conn(ctx).QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	auctions := make([]entity.Auction, 0)
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, 0, err
		}
		auctions = append(auctions, *a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return auctions, total, nil
}

// ListExpiredOpenAuctionIds returns open auctions whose deadline has passed,
// oldest first, leaving out the skipped ids.
func (r *AuctionRepo) ListExpiredOpenAuctionIds(ctx context.Context, now time.Time, limit int, skip []uuid.UUID) ([]uuid.UUID, error) {
	query := r.SqlBuilder.
		Select("id").
		From("auction").
		Where(squirrel.Eq{"status": common.AuctionOpen}).
		Where(squirrel.LtOrEq{"closes_at": now})
	if len(skip) > 0 {
		query = query.Where(squirrel.NotEq{"id": skip})
	}
	listSql, args, err := query.
		OrderBy("closes_at").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn(ctx).QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *AuctionRepo) CreateBid(ctx context.Context, b *entity.Bid) error {
	createSql, args, err := r.SqlBuilder.
		Insert("bid").
		Columns(bidColumns...).
		Values(b.Id, b.AuctionId, b.CompanyId, b.Amount, b.SubmittedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = r.Conn(ctx).ExecContext(ctx, createSql, args...); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *AuctionRepo) queryBids(ctx context.Context, builder squirrel.SelectBuilder) ([]entity.Bid, error) {
	listSql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn(ctx).QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		b, err := scanBid(rows)
		if err != nil {
			return nil, err
		}
		bids = append(bids, *b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}

// GetAuctionBids returns every stored bid of the auction in ranking order.
func (r *AuctionRepo) GetAuctionBids(ctx context.Context, auctionId uuid.UUID) ([]entity.Bid, error) {
	return r.queryBids(ctx, r.SqlBuilder.
		Select(bidColumns...).
		From("bid").
		Where(squirrel.Eq{"auction_id": auctionId}).
		OrderBy("amount", "submitted_at", "id"))
}

func (r *AuctionRepo) ListAuctionBids(ctx context.Context, auctionId uuid.UUID, pg *entity.PaginationInput) ([]entity.Bid, int, error) {
	where := squirrel.And{squirrel.Eq{"auction_id": auctionId}}
	total, err := count(ctx, r.Postgres, "bid", where)
	if err != nil {
		return nil, 0, err
	}

	bids, err := r.queryBids(ctx, page(r.SqlBuilder.Select(bidColumns...).From("bid"), where, pg).
		OrderBy("amount", "submitted_at", "id"))
	if err != nil {
		return nil, 0, err
	}

	return bids, total, nil
}
