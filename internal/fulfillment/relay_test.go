package fulfillment

import (
	"booking-settlement-api/internal/config"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/repo"
	repomocks "booking-settlement-api/internal/repo/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

type published struct {
	routingKey string
	body       string
}

type fakePublisher struct {
	sent []published
	fail map[string]error
}

func (p *fakePublisher) Publish(_ context.Context, routingKey string, body []byte) error {
	if err, ok := p.fail[routingKey]; ok {
		return err
	}
	p.sent = append(p.sent, published{routingKey: routingKey, body: string(body)})
	return nil
}

func newRelay(t *testing.T, pub Publisher) (*Relay, *repomocks.MockOutbox) {
	ctrl := gomock.NewController(t)
	tx := repomocks.NewMockTransactor(ctrl)
	tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }).
		AnyTimes()
	outbox := repomocks.NewMockOutbox(ctrl)

	cfg := config.OutboxConfig{RelayInterval: config.Duration(time.Second), Batch: 10, MaxAttempts: 3}
	r := NewRelay(&repo.Repositories{Transactor: tx, Outbox: outbox}, pub, cfg, logger.Nop())
	r.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	return r, outbox
}

func TestRelay_FlushPublishesInOrder(t *testing.T) {
	pub := &fakePublisher{}
	r, outbox := newRelay(t, pub)
	events := []entity.OutboxEvent{
		{Id: uuid.New(), RoutingKey: entity.RoutingBookingAwarded, Payload: []byte(`{"bookingId":"b1"}`)},
		{Id: uuid.New(), RoutingKey: entity.RequestStatusRoutingKey("auction_won"), Payload: []byte(`{"requestId":"BR-1"}`)},
	}

	outbox.EXPECT().FetchPending(gomock.Any(), 10, 3).Return(events, nil)
	gomock.InOrder(
		outbox.EXPECT().MarkPublished(gomock.Any(), events[0].Id, r.now()).Return(nil),
		outbox.EXPECT().MarkPublished(gomock.Any(), events[1].Id, r.now()).Return(nil),
	)

	n, err := r.Flush(context.Background())
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Flush() = %d, want 2", n)
	}
	if len(pub.sent) != 2 || pub.sent[0].routingKey != "booking.awarded" || pub.sent[1].routingKey != "request.status.auction_won" {
		t.Errorf("sent = %+v", pub.sent)
	}
}

func TestRelay_FlushRecordsFailures(t *testing.T) {
	pub := &fakePublisher{fail: map[string]error{entity.RoutingBookingAwarded: errors.New("channel closed")}}
	r, outbox := newRelay(t, pub)
	failing := entity.OutboxEvent{Id: uuid.New(), RoutingKey: entity.RoutingBookingAwarded, Attempts: 2}
	ok := entity.OutboxEvent{Id: uuid.New(), RoutingKey: entity.RequestStatusRoutingKey("cancelled")}

	outbox.EXPECT().FetchPending(gomock.Any(), 10, 3).Return([]entity.OutboxEvent{failing, ok}, nil)
	outbox.EXPECT().MarkFailed(gomock.Any(), failing.Id, "channel closed").Return(nil)
	outbox.EXPECT().MarkPublished(gomock.Any(), ok.Id, gomock.Any()).Return(nil)

	n, err := r.Flush(context.Background())
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Flush() = %d, want 1", n)
	}
}

func TestRelay_FlushAbortsOnStoreError(t *testing.T) {
	pub := &fakePublisher{}
	r, outbox := newRelay(t, pub)
	storeErr := errors.New("connection reset")

	outbox.EXPECT().FetchPending(gomock.Any(), 10, 3).Return([]entity.OutboxEvent{{Id: uuid.New(), RoutingKey: "booking.awarded"}}, nil)
	outbox.EXPECT().MarkPublished(gomock.Any(), gomock.Any(), gomock.Any()).Return(storeErr)

	if _, err := r.Flush(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("Flush() error = %v, want %v", err, storeErr)
	}
}

func TestRelay_RunStopsWithContext(t *testing.T) {
	r, outbox := newRelay(t, &fakePublisher{})
	r.interval = 5 * time.Millisecond
	outbox.EXPECT().FetchPending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}
