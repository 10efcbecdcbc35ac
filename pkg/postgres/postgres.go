package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

const defaultLockTimeout = 5 * time.Second

type Postgres struct {
	Database    *sql.DB
	SqlBuilder  squirrel.StatementBuilderType
	LockTimeout time.Duration
}

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func NewDB(url string) (*Postgres, error) {
	driver := "postgres"
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error while opening database with driver `%s`. %w", driver, err)
	}

	return New(db), nil
}

// New wraps an already opened connection pool.
func New(db *sql.DB) *Postgres {
	return &Postgres{
		Database:    db,
		SqlBuilder:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		LockTimeout: defaultLockTimeout,
	}
}

func (p *Postgres) Close() error {
	if p.Database != nil {
		err := p.Database.Close()
		if err != nil {
			return err
		}

		return nil
	}

	return nil
}
