package pgdb

import (
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/repo/repo_errors"
	"booking-settlement-api/pkg/postgres"
	"context"

	"github.com/Masterminds/squirrel"
)

// count runs SELECT count(*) over table with the same predicates as the page query.
func count(ctx context.Context, p *postgres.Postgres, table string, where squirrel.And) (int, error) {
	builder := p.SqlBuilder.Select("count(*)").From(table)
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	sqlReq, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var total int
	if err := p.Conn(ctx).QueryRowContext(ctx, sqlReq, args...).Scan(&total); err != nil {
		return 0, translateError(err)
	}

	return total, nil
}

func page(builder squirrel.SelectBuilder, where squirrel.And, pg *entity.PaginationInput) squirrel.SelectBuilder {
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	return builder.
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit))
}

// expectOne turns a zero-row update into ErrNotFound.
func expectOne(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}
