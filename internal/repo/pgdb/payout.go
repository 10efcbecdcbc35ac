package pgdb

import (
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/pkg/postgres"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var payoutColumns = []string{
	"id", "reference", "company_id", "total_amount", "fee_amount", "net_amount", "currency",
	"payout_method", "account_details", "status", "period_start", "period_end", "earnings_count",
	"external_transaction_id", "failure_reason", "cancel_reason", "approved_by", "requested_at",
	"approved_at", "processing_at", "paid_at", "failed_at", "cancelled_at", "updated_at",
}

type PayoutRepo struct {
	*postgres.Postgres
}

func NewPayoutRepo(pgdb *postgres.Postgres) *PayoutRepo {
	return &PayoutRepo{pgdb}
}

func scanPayout(row rowScanner) (*entity.Payout, error) {
	var p entity.Payout
	var details []byte
	err := row.Scan(&p.Id, &p.Reference, &p.CompanyId, &p.TotalAmount, &p.FeeAmount, &p.NetAmount, &p.Currency,
		&p.PayoutMethod, &details, &p.Status, &p.PeriodStart, &p.PeriodEnd, &p.EarningsCount,
		&p.ExternalTransactionId, &p.FailureReason, &p.CancelReason, &p.ApprovedBy, &p.RequestedAt,
		&p.ApprovedAt, &p.ProcessingAt, &p.PaidAt, &p.FailedAt, &p.CancelledAt, &p.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	p.Details, err = entity.DecodePayoutMethodDetails(p.PayoutMethod, details)
	if err != nil {
		return nil, fmt.Errorf("payout %s has unreadable account details: %w", p.Id, err)
	}

	return &p, nil
}

func (r *PayoutRepo) CreatePayout(ctx context.Context, p *entity.Payout) error {
	details, err := json.Marshal(p.Details)
	if err != nil {
		return err
	}

	createSql, args, err := r.SqlBuilder.
		Insert("payout").
		Columns(payoutColumns...).
		Values(p.Id, p.Reference, p.CompanyId, p.TotalAmount, p.FeeAmount, p.NetAmount, p.Currency,
			p.PayoutMethod, details, p.Status, p.PeriodStart, p.PeriodEnd, p.EarningsCount,
			p.ExternalTransactionId, p.FailureReason, p.CancelReason, p.ApprovedBy, p.RequestedAt,
			p.ApprovedAt, p.ProcessingAt, p.PaidAt, p.FailedAt, p.CancelledAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = r.Conn(ctx).ExecContext(ctx, createSql, args...); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *PayoutRepo) get(ctx context.Context, id uuid.UUID, suffix string) (*entity.Payout, error) {
	builder := r.SqlBuilder.
		Select(payoutColumns...).
		From("payout").
		Where(squirrel.Eq{"id": id})
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	getSql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPayout(r.Conn(ctx).QueryRowContext(ctx, getSql, args...))
}

func (r *PayoutRepo) GetPayoutById(ctx context.Context, id uuid.UUID) (*entity.Payout, error) {
	return r.get(ctx, id, "")
}

func (r *PayoutRepo) LockPayoutById(ctx context.Context, id uuid.UUID) (*entity.Payout, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *PayoutRepo) UpdatePayout(ctx context.Context, p *entity.Payout) error {
	updateSql, args, err := r.SqlBuilder.
		Update("payout").
		Set("status", p.Status).
		Set("external_transaction_id", p.ExternalTransactionId).
		Set("failure_reason", p.FailureReason).
		Set("cancel_reason", p.CancelReason).
		Set("approved_by", p.ApprovedBy).
		Set("approved_at", p.ApprovedAt).
		Set("processing_at", p.ProcessingAt).
		Set("paid_at", p.PaidAt).
		Set("failed_at", p.FailedAt).
		Set("cancelled_at", p.CancelledAt).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.Id}).
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

func payoutWhere(f entity.PayoutFilter) squirrel.And {
	where := squirrel.And{}
	if f.CompanyId != nil {
		where = append(where, squirrel.Eq{"company_id": *f.CompanyId})
	}
	if f.Status != "" {
		where = append(where, squirrel.Eq{"status": f.Status})
	}
	if f.Method != "" {
		where = append(where, squirrel.Eq{"payout_method": f.Method})
	}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"requested_at": *f.From})
	}
	if f.To != nil {
		where = append(where, squirrel.LtOrEq{"requested_at": *f.To})
	}

	return where
}

func (r *PayoutRepo) ListPayouts(ctx context.Context, filter entity.PayoutFilter, pg *entity.PaginationInput) ([]entity.Payout, int, error) {
	where := payoutWhere(filter)
	total, err := count(ctx, r.Postgres, "payout", where)
	if err != nil {
		return nil, 0, err
	}

	listSql, args, err := page(r.SqlBuilder.Select(payoutColumns...).From("payout"), where, pg).
		OrderBy("requested_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.Conn(ctx).QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	payouts := make([]entity.Payout, 0)
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, 0, err
		}
		payouts = append(payouts, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return payouts, total, nil
}
