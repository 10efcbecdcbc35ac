// Package directory resolves per-company commercial terms: the commission
// rate and platform fee for accrual, and the payout fee schedule per method.
package directory

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/repo"
	"booking-settlement-api/internal/repo/repo_errors"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

type termsKey struct {
	companyId uuid.UUID
}

type feeKey struct {
	companyId uuid.UUID
	method    common.PayoutMethod
}

type Directory struct {
	companies repo.Company
	cache     *lru.Cache
	fees      map[common.PayoutMethod]ledger.FeeSchedule
}

func New(companies repo.Company, cacheSize int, fees map[string]ledger.FeeSchedule) (*Directory, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory cache: %w", err)
	}

	defaults := make(map[common.PayoutMethod]ledger.FeeSchedule, len(fees))
	for method, fee := range fees {
		defaults[common.PayoutMethod(method)] = fee
	}

	return &Directory{companies: companies, cache: cache, fees: defaults}, nil
}

func (d *Directory) CommissionTerms(ctx context.Context, companyId uuid.UUID) (*entity.CommissionTerms, error) {
	key := termsKey{companyId}
	if v, ok := d.cache.Get(key); ok {
		terms := v.(entity.CommissionTerms)
		return &terms, nil
	}

	terms, err := d.companies.GetCommissionTerms(ctx, companyId)
	if err != nil {
		return nil, err
	}
	d.cache.Add(key, *terms)

	return terms, nil
}

// PayoutFees returns the company override for method, falling back to the configured default.
func (d *Directory) PayoutFees(ctx context.Context, companyId uuid.UUID, method common.PayoutMethod) (ledger.FeeSchedule, error) {
	key := feeKey{companyId, method}
	if v, ok := d.cache.Get(key); ok {
		return v.(ledger.FeeSchedule), nil
	}

	fee, ok := d.fees[method]
	override, err := d.companies.GetPayoutFeeOverride(ctx, companyId, method)
	switch {
	case err == nil:
		fee, ok = *override, true
	case !errors.Is(err, repo_errors.ErrNotFound):
		return ledger.FeeSchedule{}, err
	}
	if !ok {
		return ledger.FeeSchedule{}, &entity.ValidationError{Field: "payoutMethod", Msg: fmt.Sprintf("no fee schedule for %q", method)}
	}
	d.cache.Add(key, fee)

	return fee, nil
}

// Invalidate drops cached terms after the company record changed.
func (d *Directory) Invalidate(companyId uuid.UUID) {
	d.cache.Remove(termsKey{companyId})
	for method := range d.fees {
		d.cache.Remove(feeKey{companyId, method})
	}
}
