package pgdb

import (
	"booking-settlement-api/internal/repo/repo_errors"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
	lockNotAvailable     = "55P03"
)

// translateError maps driver errors onto repo_errors, keeping the original in the chain.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repo_errors.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", repo_errors.ErrDuplicate, pqErr.Constraint)
		case serializationFailure, deadlockDetected, lockNotAvailable:
			return fmt.Errorf("%w: %s", repo_errors.ErrConflict, pqErr.Message)
		}
	}

	return err
}
