package pgdb

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/pkg/postgres"
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var earningsColumns = []string{
	"id", "reference", "company_id", "booking_id", "payment_id", "earnings_type", "gross_amount",
	"commission_rate", "commission_amount", "platform_fee", "tax_amount", "net_earnings", "currency",
	"status", "earned_at", "processed_at", "paid_at", "cancelled_at", "cancel_reason", "payout_id",
}

type EarningsRepo struct {
	*postgres.Postgres
}

func NewEarningsRepo(pgdb *postgres.Postgres) *EarningsRepo {
	return &EarningsRepo{pgdb}
}

func scanEarnings(row rowScanner) (*entity.Earnings, error) {
	var e entity.Earnings
	err := row.Scan(&e.Id, &e.Reference, &e.CompanyId, &e.BookingId, &e.PaymentId, &e.EarningsType, &e.GrossAmount,
		&e.CommissionRate, &e.CommissionAmount, &e.PlatformFee, &e.TaxAmount, &e.NetEarnings, &e.Currency,
		&e.Status, &e.EarnedAt, &e.ProcessedAt, &e.PaidAt, &e.CancelledAt, &e.CancelReason, &e.PayoutId)
	if err != nil {
		return nil, translateError(err)
	}

	return &e, nil
}

// CreateEarnings reports ErrDuplicate when the booking already accrued this earnings type.
func (r *EarningsRepo) CreateEarnings(ctx context.Context, e *entity.Earnings) error {
	createSql, args, err := r.SqlBuilder.
		Insert("earnings").
		Columns(earningsColumns...).
		Values(e.Id, e.Reference, e.CompanyId, e.BookingId, e.PaymentId, e.EarningsType, e.GrossAmount,
			e.CommissionRate, e.CommissionAmount, e.PlatformFee, e.TaxAmount, e.NetEarnings, e.Currency,
			e.Status, e.EarnedAt, e.ProcessedAt, e.PaidAt, e.CancelledAt, e.CancelReason, e.PayoutId).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = r.Conn(ctx).ExecContext(ctx, createSql, args...); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *EarningsRepo) get(ctx context.Context, where squirrel.Sqlizer, suffix string) (*entity.Earnings, error) {
	builder := r.SqlBuilder.
		Select(earningsColumns...).
		From("earnings").
		Where(where)
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	getSql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	return scanEarnings(r.Conn(ctx).QueryRowContext(ctx, getSql, args...))
}

func (r *EarningsRepo) GetEarningsById(ctx context.Context, id uuid.UUID) (*entity.Earnings, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, "")
}

func (r *EarningsRepo) LockEarningsById(ctx context.Context, id uuid.UUID) (*entity.Earnings, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, "FOR UPDATE")
}

func (r *EarningsRepo) GetEarningsByBooking(ctx context.Context, bookingId uuid.UUID, earningsType common.EarningsType) (*entity.Earnings, error) {
	return r.get(ctx, squirrel.Eq{"booking_id": bookingId, "earnings_type": earningsType}, "")
}

func (r *EarningsRepo) UpdateEarnings(ctx context.Context, e *entity.Earnings) error {
	updateSql, args, err := r.SqlBuilder.
		Update("earnings").
		Set("status", e.Status).
		Set("processed_at", e.ProcessedAt).
		Set("paid_at", e.PaidAt).
		Set("cancelled_at", e.CancelledAt).
		Set("cancel_reason", e.CancelReason).
		Where(squirrel.Eq{"id": e.Id}).
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

func earningsWhere(f entity.EarningsFilter) squirrel.And {
	where := squirrel.And{}
	if f.CompanyId != nil {
		where = append(where, squirrel.Eq{"company_id": *f.CompanyId})
	}
	if f.Status != "" {
		where = append(where, squirrel.Eq{"status": f.Status})
	}
	if f.EarningsType != "" {
		where = append(where, squirrel.Eq{"earnings_type": f.EarningsType})
	}
	if f.PayoutId != nil {
		where = append(where, squirrel.Eq{"payout_id": *f.PayoutId})
	}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"earned_at": *f.From})
	}
	if f.To != nil {
		where = append(where, squirrel.LtOrEq{"earned_at": *f.To})
	}

	return where
}

func (r *EarningsRepo) query(ctx context.Context, builder squirrel.SelectBuilder) ([]entity.Earnings, error) {
	listSql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn(ctx).QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	records := make([]entity.Earnings, 0)
	for rows.Next() {
		e, err := scanEarnings(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *e)
	}
	if err = rows.Err(); err != nil {
		return nil, translateError(err)
	}

	return records, nil
}

func (r *EarningsRepo) ListEarnings(ctx context.Context, filter entity.EarningsFilter, pg *entity.PaginationInput) ([]entity.Earnings, int, error) {
	where := earningsWhere(filter)
	total, err := count(ctx, r.Postgres, "earnings", where)
	if err != nil {
		return nil, 0, err
	}

	records, err := r.query(ctx, page(r.SqlBuilder.Select(earningsColumns...).From("earnings"), where, pg).
		OrderBy("earned_at DESC", "id"))
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// SelectClaimable locks the processed, unclaimed earnings of the company inside the period.
func (r *EarningsRepo) SelectClaimable(ctx context.Context, companyId uuid.UUID, period ledger.Period) ([]entity.Earnings, error) {
	return r.query(ctx, r.SqlBuilder.
		Select(earningsColumns...).
		From("earnings").
		Where(squirrel.Eq{"company_id": companyId, "status": common.EarningsProcessed, "payout_id": nil}).
		Where(squirrel.GtOrEq{"earned_at": period.Start}).
		Where(squirrel.LtOrEq{"earned_at": period.End}).
		OrderBy("earned_at", "id").
		Suffix("FOR UPDATE"))
}

// Claim stamps the payout id on the given records that are still unclaimed.
// The caller compares the returned count with len(earningsIds).
func (r *EarningsRepo) Claim(ctx context.Context, payoutId uuid.UUID, earningsIds []uuid.UUID) (int64, error) {
	if len(earningsIds) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(earningsIds))
	for _, id := range earningsIds {
		ids = append(ids, id.String())
	}

	claimSql, args, err := r.SqlBuilder.
		Update("earnings").
		Set("payout_id", payoutId).
		Where(squirrel.Eq{"id": ids, "status": common.EarningsProcessed, "payout_id": nil}).
		ToSql()
	if err != nil {
		return 0, err
	}

	return r.exec(ctx, claimSql, args)
}

// MarkPaid flips every record claimed by the payout to paid.
func (r *EarningsRepo) MarkPaid(ctx context.Context, payoutId uuid.UUID, paidAt time.Time) (int64, error) {
	paidSql, args, err := r.SqlBuilder.
		Update("earnings").
		Set("status", common.EarningsPaid).
		Set("paid_at", paidAt).
		Where(squirrel.Eq{"payout_id": payoutId, "status": common.EarningsProcessed}).
		ToSql()
	if err != nil {
		return 0, err
	}

	return r.exec(ctx, paidSql, args)
}

// Release hands the records claimed by the payout back to the processed pool.
func (r *EarningsRepo) Release(ctx context.Context, payoutId uuid.UUID) (int64, error) {
	releaseSql, args, err := r.SqlBuilder.
		Update("earnings").
		Set("payout_id", nil).
		Set("status", common.EarningsProcessed).
		Where(squirrel.Eq{"payout_id": payoutId}).
		Where(squirrel.NotEq{"status": common.EarningsPaid}).
		ToSql()
	if err != nil {
		return 0, err
	}

	return r.exec(ctx, releaseSql, args)
}

func (r *EarningsRepo) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := r.Conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translateError(err)
	}

	return res.RowsAffected()
}
