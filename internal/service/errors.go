package service

import (
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/repo/repo_errors"
	"errors"
)

var (
	ErrBookingRequestNotFound = &entity.NotFoundError{Resource: "booking request"}
	ErrAuctionNotFound        = &entity.NotFoundError{Resource: "auction"}
	ErrBookingNotFound        = &entity.NotFoundError{Resource: "booking"}
	ErrEarningsNotFound       = &entity.NotFoundError{Resource: "earnings"}
	ErrPayoutNotFound         = &entity.NotFoundError{Resource: "payout"}
	ErrCompanyNotFound        = &entity.NotFoundError{Resource: "company"}
)

// translate maps repository errors onto the service taxonomy. notFound also
// names the resource reported on lock conflicts.
func translate(err error, notFound *entity.NotFoundError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo_errors.ErrNotFound):
		return notFound
	case errors.Is(err, repo_errors.ErrConflict):
		return &entity.ConcurrencyConflictError{Resource: notFound.Resource, Msg: "concurrent update, retry", Err: err}
	}

	return err
}
