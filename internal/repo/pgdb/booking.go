package pgdb

import (
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/pkg/postgres"
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var bookingColumns = []string{
	"id", "booking_request_id", "company_id", "car_id", "driver_id", "total_amount", "tax_amount",
	"currency", "payment_id", "status", "completed_at", "payment_confirmed_at", "created_at", "updated_at",
}

type BookingRepo struct {
	*postgres.Postgres
}

func NewBookingRepo(pgdb *postgres.Postgres) *BookingRepo {
	return &BookingRepo{pgdb}
}

func scanBooking(row rowScanner) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(&b.Id, &b.BookingRequestId, &b.CompanyId, &b.CarId, &b.DriverId, &b.TotalAmount, &b.TaxAmount,
		&b.Currency, &b.PaymentId, &b.Status, &b.CompletedAt, &b.PaymentConfirmedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}

	return &b, nil
}

func (r *BookingRepo) CreateBooking(ctx context.Context, b *entity.Booking) error {
	createSql, args, err := r.SqlBuilder.
		Insert("booking").
		Columns(bookingColumns...).
		Values(b.Id, b.BookingRequestId, b.CompanyId, b.CarId, b.DriverId, b.TotalAmount, b.TaxAmount,
			b.Currency, b.PaymentId, b.Status, b.CompletedAt, b.PaymentConfirmedAt, b.CreatedAt, b.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = r.Conn(ctx).ExecContext(ctx, createSql, args...); err != nil {
		return translateError(err)
	}

	return nil
}

func (r *BookingRepo) get(ctx context.Context, where squirrel.Sqlizer, suffix string) (*entity.Booking, error) {
	builder := r.SqlBuilder.
		Select(bookingColumns...).
		From("booking").
		Where(where)
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	getSql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	return scanBooking(r.Conn(ctx).QueryRowContext(ctx, getSql, args...))
}

func (r *BookingRepo) GetBookingById(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, "")
}

func (r *BookingRepo) LockBookingById(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.get(ctx, squirrel.Eq{"id": id}, "FOR UPDATE")
}

func (r *BookingRepo) GetBookingByRequestId(ctx context.Context, requestId uuid.UUID) (*entity.Booking, error) {
	return r.get(ctx, squirrel.Eq{"booking_request_id": requestId}, "")
}

func (r *BookingRepo) UpdateBooking(ctx context.Context, b *entity.Booking) error {
	updateSql, args, err := r.SqlBuilder.
		Update("booking").
		Set("car_id", b.CarId).
		Set("driver_id", b.DriverId).
		Set("total_amount", b.TotalAmount).
		Set("tax_amount", b.TaxAmount).
		Set("payment_id", b.PaymentId).
		Set("status", b.Status).
		Set("completed_at", b.CompletedAt).
		Set("payment_confirmed_at", b.PaymentConfirmedAt).
		Set("updated_at", b.UpdatedAt).
		Where(squirrel.Eq{"id": b.Id}).
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
