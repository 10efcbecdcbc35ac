package pgdb

import (
	"booking-settlement-api/pkg/postgres"
	"context"
)

type DiagnosticsRepo struct {
	*postgres.Postgres
}

func NewDiagnosticsRepo(pgdb *postgres.Postgres) *DiagnosticsRepo {
	return &DiagnosticsRepo{pgdb}
}

func (tr *DiagnosticsRepo) Ping(ctx context.Context) error {
	if err := tr.Database.PingContext(ctx); err != nil {
		return err
	}

	return nil
}
