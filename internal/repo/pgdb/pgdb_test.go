package pgdb

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/repo/repo_errors"
	"booking-settlement-api/pkg/postgres"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

func newMockPostgres(t *testing.T) (*postgres.Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})

	return postgres.New(db), mock
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: sql.ErrNoRows, want: repo_errors.ErrNotFound},
		{name: "unique", err: &pq.Error{Code: "23505", Constraint: "auction_one_open_per_request"}, want: repo_errors.ErrDuplicate},
		{name: "lock timeout", err: &pq.Error{Code: "55P03"}, want: repo_errors.ErrConflict},
		{name: "deadlock", err: &pq.Error{Code: "40P01"}, want: repo_errors.ErrConflict},
		{name: "serialization", err: &pq.Error{Code: "40001"}, want: repo_errors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateError(tt.err); !errors.Is(got, tt.want) {
				t.Errorf("translateError() = %v, want %v", got, tt.want)
			}
		})
	}

	other := errors.New("connection reset")
	if got := translateError(other); got != other {
		t.Errorf("translateError() = %v, want the original error", got)
	}
	if translateError(nil) != nil {
		t.Error("translateError(nil) should be nil")
	}
}

func TestAuctionRepo_LockAuctionById(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewAuctionRepo(p)
	id, requestId := uuid.New(), uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(auctionColumns).
		AddRow(id.String(), requestId.String(), int64(10000), "USD", now, now.Add(time.Hour), 0,
			nil, int64(0), nil, nil, "open", "", nil)
	mock.ExpectQuery(`SELECT .* FROM auction WHERE id = \$1 FOR UPDATE`).
		WithArgs(id).
		WillReturnRows(rows)

	a, err := r.LockAuctionById(context.Background(), id)
	if err != nil {
		t.Fatalf("LockAuctionById() error = %v", err)
	}
	if a.Id != id || a.Ceiling != 10000 || a.Status != common.AuctionOpen || a.ClosedAt != nil || a.BestBidId.Valid {
		t.Errorf("unexpected auction %+v", a)
	}
}

func TestAuctionRepo_ListExpiredSkipsFailedIds(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewAuctionRepo(p)
	skipped, next := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT id FROM auction WHERE status = \$1 AND closes_at <= \$2 AND id NOT IN \(\$3\) ORDER BY closes_at LIMIT 5`).
		WithArgs(common.AuctionOpen, now, skipped).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(next.String()))

	ids, err := r.ListExpiredOpenAuctionIds(context.Background(), now, 5, []uuid.UUID{skipped})
	if err != nil {
		t.Fatalf("ListExpiredOpenAuctionIds() error = %v", err)
	}
	if len(ids) != 1 || ids[0] != next {
		t.Errorf("ids = %v, want [%s]", ids, next)
	}
}

func TestAuctionRepo_GetAuctionByIdNotFound(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewAuctionRepo(p)

	mock.ExpectQuery(`SELECT .* FROM auction WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(auctionColumns))

	_, err := r.GetAuctionById(context.Background(), uuid.New())
	if !errors.Is(err, repo_errors.ErrNotFound) {
		t.Fatalf("GetAuctionById() error = %v, want ErrNotFound", err)
	}
}

func TestAuctionRepo_CreateAuctionDuplicateOpen(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewAuctionRepo(p)

	mock.ExpectExec("INSERT INTO auction").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "auction_one_open_per_request"})

	err := r.CreateAuction(context.Background(), &entity.Auction{Id: uuid.New(), Status: common.AuctionOpen})
	if !errors.Is(err, repo_errors.ErrDuplicate) {
		t.Fatalf("CreateAuction() error = %v, want ErrDuplicate", err)
	}
}

func TestEarningsRepo_Claim(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewEarningsRepo(p)
	payoutId := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectExec(`UPDATE earnings SET payout_id = \$1 WHERE id IN \(\$2,\$3\)`).
		WithArgs(payoutId, ids[0].String(), ids[1].String(), "processed").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := r.Claim(context.Background(), payoutId, ids)
	if err != nil {
		t.Fatalf("Claim() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Claim() = %d, want 1 so the caller can detect the lost race", n)
	}
}

func TestEarningsRepo_ClaimNothing(t *testing.T) {
	p, _ := newMockPostgres(t)
	r := NewEarningsRepo(p)

	n, err := r.Claim(context.Background(), uuid.New(), nil)
	if err != nil || n != 0 {
		t.Fatalf("Claim() = %d, %v", n, err)
	}
}

func TestEarningsRepo_SelectClaimableLocksRows(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewEarningsRepo(p)
	companyId := uuid.New()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	period, _ := ledger.NewPeriod(start, start.AddDate(0, 1, 0))

	rows := sqlmock.NewRows(earningsColumns).
		AddRow(uuid.NewString(), "ERN-20260302-AAAAAA", companyId.String(), uuid.NewString(), "pay_1",
			"booking_commission", int64(20000), 10.0, int64(2000), int64(500), int64(0), int64(17500), "USD",
			"processed", start.Add(24*time.Hour), start.Add(24*time.Hour), nil, nil, "", nil)
	mock.ExpectQuery(`SELECT .* FROM earnings WHERE company_id = \$1 AND payout_id IS NULL AND status = \$2 AND earned_at >= \$3 AND earned_at <= \$4 ORDER BY earned_at, id FOR UPDATE`).
		WithArgs(companyId, "processed", period.Start, period.End).
		WillReturnRows(rows)

	got, err := r.SelectClaimable(context.Background(), companyId, period)
	if err != nil {
		t.Fatalf("SelectClaimable() error = %v", err)
	}
	if len(got) != 1 || got[0].NetEarnings != 17500 || got[0].PayoutId.Valid {
		t.Fatalf("unexpected records %+v", got)
	}
}

func TestEarningsRepo_Release(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewEarningsRepo(p)
	payoutId := uuid.New()

	mock.ExpectExec(`UPDATE earnings SET payout_id = \$1, status = \$2 WHERE payout_id = \$3 AND status <> \$4`).
		WithArgs(nil, "processed", payoutId, "paid").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := r.Release(context.Background(), payoutId)
	if err != nil || n != 2 {
		t.Fatalf("Release() = %d, %v", n, err)
	}
}

func TestPayoutRepo_GetPayoutByIdDecodesDetails(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewPayoutRepo(p)
	id := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(payoutColumns).
		AddRow(id.String(), "PO-20260401-BBBBBB", uuid.NewString(), int64(50000), int64(500), int64(49500), "USD",
			"paypal", []byte(`{"email":"fleet@example.com"}`), "requested", now, now, 2,
			"", "", "", "", now, nil, nil, nil, nil, nil, now)
	mock.ExpectQuery(`SELECT .* FROM payout WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(rows)

	got, err := r.GetPayoutById(context.Background(), id)
	if err != nil {
		t.Fatalf("GetPayoutById() error = %v", err)
	}
	details, ok := got.Details.(*entity.PayPalDetails)
	if !ok || details.Email != "fleet@example.com" {
		t.Fatalf("Details = %#v", got.Details)
	}
	if got.NetAmount != 49500 || got.Status != common.PayoutRequested {
		t.Errorf("unexpected payout %+v", got)
	}
}

func TestBookingRequestRepo_UpdateStatusMissingRow(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewBookingRequestRepo(p)

	mock.ExpectExec("UPDATE booking_request SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.UpdateBookingRequestStatus(context.Background(), &entity.BookingRequest{Id: uuid.New(), Status: common.RequestCancelled})
	if !errors.Is(err, repo_errors.ErrNotFound) {
		t.Fatalf("UpdateBookingRequestStatus() error = %v, want ErrNotFound", err)
	}
}

func TestBookingRequestRepo_ListAppliesFilters(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewBookingRequestRepo(p)
	partner := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM booking_request WHERE \(status = \$1 AND partner_company_id = \$2\)`).
		WithArgs("pending", partner).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .* FROM booking_request WHERE \(status = \$1 AND partner_company_id = \$2\) ORDER BY created_at DESC, id LIMIT 20 OFFSET 0`).
		WithArgs("pending", partner).
		WillReturnRows(sqlmock.NewRows(bookingRequestColumns))

	filter := entity.BookingRequestFilter{Status: common.RequestPending, PartnerCompanyId: &partner}
	got, total, err := r.ListBookingRequests(context.Background(), filter, entity.NewPaginationInput(20, 0))
	if err != nil {
		t.Fatalf("ListBookingRequests() error = %v", err)
	}
	if total != 0 || len(got) != 0 {
		t.Errorf("got %d records, total %d", len(got), total)
	}
}

func TestOutboxRepo_FetchPendingSkipsLocked(t *testing.T) {
	p, mock := newMockPostgres(t)
	r := NewOutboxRepo(p)

	mock.ExpectQuery(`SELECT id, routing_key, payload, attempts, last_error, created_at FROM outbox WHERE published_at IS NULL AND attempts < \$1 ORDER BY created_at LIMIT 50 FOR UPDATE SKIP LOCKED`).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "routing_key", "payload", "attempts", "last_error", "created_at"}).
			AddRow(uuid.NewString(), "booking.awarded", []byte(`{"bookingId":"b"}`), 0, "", time.Now()))

	events, err := r.FetchPending(context.Background(), 50, 20)
	if err != nil {
		t.Fatalf("FetchPending() error = %v", err)
	}
	if len(events) != 1 || string(events[0].Payload) != `{"bookingId":"b"}` {
		t.Fatalf("unexpected events %+v", events)
	}
}
