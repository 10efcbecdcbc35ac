package service

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/repo"
	repomocks "booking-settlement-api/internal/repo/mocks"
	svcmocks "booking-settlement-api/internal/service/mocks"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	admin  = entity.Principal{Subject: "ops@broker", Role: common.RoleAdmin}
	system = entity.Principal{Subject: "fleet", Role: common.RoleSystem}
)

func company(id uuid.UUID) entity.Principal {
	return entity.Principal{Subject: id.String(), CompanyId: id, Role: common.RoleCompany}
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type fixture struct {
	ctrl      *gomock.Controller
	tx        *repomocks.MockTransactor
	requests  *repomocks.MockBookingRequest
	auctions  *repomocks.MockAuction
	bookings  *repomocks.MockBooking
	earnings  *repomocks.MockEarnings
	payouts   *repomocks.MockPayout
	outbox    *repomocks.MockOutbox
	directory *svcmocks.MockDirectory
	repos     *repo.Repositories
	clock     *clock
	events    []*entity.OutboxEvent
}

// newFixture runs every WithinTx body inline and records queued outbox events.
func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:      ctrl,
		tx:        repomocks.NewMockTransactor(ctrl),
		requests:  repomocks.NewMockBookingRequest(ctrl),
		auctions:  repomocks.NewMockAuction(ctrl),
		bookings:  repomocks.NewMockBooking(ctrl),
		earnings:  repomocks.NewMockEarnings(ctrl),
		payouts:   repomocks.NewMockPayout(ctrl),
		outbox:    repomocks.NewMockOutbox(ctrl),
		directory: svcmocks.NewMockDirectory(ctrl),
		clock:     &clock{now: t0},
	}
	f.repos = &repo.Repositories{
		Transactor:     f.tx,
		BookingRequest: f.requests,
		Auction:        f.auctions,
		Booking:        f.bookings,
		Earnings:       f.earnings,
		Payout:         f.payouts,
		Outbox:         f.outbox,
	}

	f.tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	f.outbox.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *entity.OutboxEvent) error {
			f.events = append(f.events, e)
			return nil
		}).
		AnyTimes()

	return f
}

func (f *fixture) routingKeys() []string {
	keys := make([]string, 0, len(f.events))
	for _, e := range f.events {
		keys = append(keys, e.RoutingKey)
	}

	return keys
}

func (f *fixture) hasEvent(routingKey string) bool {
	for _, e := range f.events {
		if e.RoutingKey == routingKey {
			return true
		}
	}

	return false
}
