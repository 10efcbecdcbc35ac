package pgdb

import (
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/pkg/postgres"
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type OutboxRepo struct {
	*postgres.Postgres
}

func NewOutboxRepo(pgdb *postgres.Postgres) *OutboxRepo {
	return &OutboxRepo{pgdb}
}

func (r *OutboxRepo) Enqueue(ctx context.Context, e *entity.OutboxEvent) error {
	insertSql, args, err := r.SqlBuilder.
		Insert("outbox").
		Columns("id", "routing_key", "payload", "created_at").
		Values(e.Id, e.RoutingKey, []byte(e.Payload), e.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = r.Conn(ctx).ExecContext(ctx, insertSql, args...); err != nil {
		return translateError(err)
	}

	return nil
}

// FetchPending locks up to limit unpublished events below maxAttempts; concurrent relays skip locked rows.
func (r *OutboxRepo) FetchPending(ctx context.Context, limit, maxAttempts int) ([]entity.OutboxEvent, error) {
	fetchSql, args, err := r.SqlBuilder.
		Select("id", "routing_key", "payload", "attempts", "last_error", "created_at").
		From("outbox").
		Where(squirrel.Eq{"published_at": nil}).
		Where(squirrel.Lt{"attempts": maxAttempts}).
		OrderBy("created_at").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn(ctx).QueryContext(ctx, fetchSql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	events := make([]entity.OutboxEvent, 0)
	for rows.Next() {
		var e entity.OutboxEvent
		var payload []byte
		if err := rows.Scan(&e.Id, &e.RoutingKey, &payload, &e.Attempts, &e.LastError, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Payload = payload
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *OutboxRepo) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	updateSql, args, err := r.SqlBuilder.
		Update("outbox").
		Set("published_at", publishedAt).
		Set("attempts", squirrel.Expr("attempts + 1")).
		Where(squirrel.Eq{"id": id}).
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

func (r *OutboxRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	updateSql, args, err := r.SqlBuilder.
		Update("outbox").
		Set("last_error", reason).
		Set("attempts", squirrel.Expr("attempts + 1")).
		Where(squirrel.Eq{"id": id}).
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
