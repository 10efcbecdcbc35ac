package pgdb

import (
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/pkg/postgres"
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var bookingRequestColumns = []string{
	"id", "request_id", "partner_company_id", "source", "customer_name", "customer_phone",
	"customer_email", "origin", "destination", "pickup_at", "passengers", "luggage",
	"vehicle_preference", "special_requirements", "max_budget", "currency", "priority",
	"status", "cancel_reason", "created_at", "updated_at",
}

type BookingRequestRepo struct {
	*postgres.Postgres
}

func NewBookingRequestRepo(pgdb *postgres.Postgres) *BookingRequestRepo {
	return &BookingRequestRepo{pgdb}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRequest(row rowScanner) (*entity.BookingRequest, error) {
	var r entity.BookingRequest
	err := row.Scan(&r.Id, &r.RequestId, &r.PartnerCompanyId, &r.Source, &r.CustomerName, &r.CustomerPhone,
		&r.CustomerEmail, &r.Origin, &r.Destination, &r.PickupAt, &r.Passengers, &r.Luggage,
		&r.VehiclePreference, &r.SpecialRequirements, &r.MaxBudget, &r.Currency, &r.Priority,
		&r.Status, &r.CancelReason, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return &r, nil
}

func (r *BookingRequestRepo) CreateBookingRequest(ctx context.Context, req *entity.BookingRequest) error {
	createSql, args, err := r.SqlBuilder.
		Insert("booking_request").
		Columns(bookingRequestColumns...).
		Values(req.Id, req.RequestId, req.PartnerCompanyId, req.Source, req.CustomerName, req.CustomerPhone,
			req.CustomerEmail, req.Origin, req.Destination, req.PickupAt, req.Passengers, req.Luggage,
			req.VehiclePreference, req.SpecialRequirements, req.MaxBudget, req.Currency, req.Priority,
			req.Status, req.CancelReason, req.CreatedAt, req.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = r.Conn(ctx).ExecContext(ctx, createSql, args...); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *BookingRequestRepo) get(ctx context.Context, where squirrel.Sqlizer, suffix string) (*entity.BookingRequest, error) {
	builder := r.SqlBuilder.
		Select(bookingRequestColumns...).
		From("booking_request").
		Where(where)
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	getSql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	return scanBookingRequest(r.Conn(ctx).QueryRowContext(ctx, getSql, args...))
}

func (r *BookingRequestRepo) GetBookingRequestById(ctx context.Context, id uuid.UUID) (*entity.BookingRequest, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, "")
}

func (r *BookingRequestRepo) GetBookingRequestByRequestId(ctx context.Context, requestId string) (*entity.BookingRequest, error) {
	return r.get(ctx, squirrel.Eq{"request_id": requestId}, "")
}

func (r *BookingRequestRepo) LockBookingRequestById(ctx context.Context, id uuid.UUID) (*entity.BookingRequest, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, "FOR UPDATE")
}

func (r *BookingRequestRepo) UpdateBookingRequestStatus(ctx context.Context, req *entity.BookingRequest) error {
	updateSql, args, err := r.SqlBuilder.
		Update("booking_request").
		Set("status", req.Status).
		Set("cancel_reason", req.CancelReason).
		Set("updated_at", req.UpdatedAt).
		Where(squirrel.Eq{"id": req.Id}).
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

func bookingRequestWhere(f entity.BookingRequestFilter) squirrel.And {
	where := squirrel.And{}
	if f.Status != "" {
		where = append(where, squirrel.Eq{"status": f.Status})
	}
	if f.PartnerCompanyId != nil {
		where = append(where, squirrel.Eq{"partner_company_id": *f.PartnerCompanyId})
	}
	if f.Priority != "" {
		where = append(where, squirrel.Eq{"priority": f.Priority})
	}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *f.From})
	}
	if f.To != nil {
		where = append(where, squirrel.LtOrEq{"created_at": *f.To})
	}

	return where
}

func (r *BookingRequestRepo) ListBookingRequests(ctx context.Context, filter entity.BookingRequestFilter, pg *entity.PaginationInput) ([]entity.BookingRequest, int, error) {
	where := bookingRequestWhere(filter)
	total, err := count(ctx, r.Postgres, "booking_request", where)
	if err != nil {
		return nil, 0, err
	}

	listSql, args, err := page(r.SqlBuilder.Select(bookingRequestColumns...).From("booking_request"), where, pg).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.Conn(ctx).QueryContext(ctx, listSql, args...)
	if err != nil {
		return nil, 0, translateError(err)
	}
	defer rows.Close()

	requests := make([]entity.BookingRequest, 0)
	for rows.Next() {
		req, err := scanBookingRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *req)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}
