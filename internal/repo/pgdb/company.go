package pgdb

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/pkg/postgres"
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type CompanyRepo struct {
	*postgres.Postgres
}

func NewCompanyRepo(pgdb *postgres.Postgres) *CompanyRepo {
	return &CompanyRepo{pgdb}
}

func (r *CompanyRepo) GetCommissionTerms(ctx context.Context, companyId uuid.UUID) (*entity.CommissionTerms, error) {
	sqlReq, args, err := r.SqlBuilder.
		Select("id", "commission_rate", "platform_fee", "currency").
		From("company").
		Where(squirrel.Eq{"id": companyId}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var terms entity.CommissionTerms
	err = r.Conn(ctx).QueryRowContext(ctx, sqlReq, args...).
		Scan(&terms.CompanyId, &terms.CommissionRate, &terms.PlatformFee, &terms.Currency)
	if err != nil {
		return nil, translateError(err)
	}

	return &terms, nil
}

// GetPayoutFeeOverride returns ErrNotFound when the company uses the default schedule.
func (r *CompanyRepo) GetPayoutFeeOverride(ctx context.Context, companyId uuid.UUID, method common.PayoutMethod) (*ledger.FeeSchedule, error) {
	sqlReq, args, err := r.SqlBuilder.
		Select("fee_percent", "fee_flat").
		From("company_payout_fee").
		Where(squirrel.Eq{"company_id": companyId, "payout_method": method}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var fee ledger.FeeSchedule
	if err = r.Conn(ctx).QueryRowContext(ctx, sqlReq, args...).Scan(&fee.Percent, &fee.Flat); err != nil {
		return nil, translateError(err)
	}

	return &fee, nil
}
