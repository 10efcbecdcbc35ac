package service

import (
	"booking-settlement-api/internal/logger"
	svcmocks "booking-settlement-api/internal/service/mocks"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestAuctionSweeper_DrainsFullBatches(t *testing.T) {
	auctions := svcmocks.NewMockAuction(gomock.NewController(t))
	gomock.InOrder(
		auctions.EXPECT().CloseExpired(gomock.Any(), 2, nil).Return(2, nil, nil),
		auctions.EXPECT().CloseExpired(gomock.Any(), 2, nil).Return(1, nil, nil),
	)

	sweeper := NewAuctionSweeper(auctions, time.Second, 2, logger.Nop())
	if got := sweeper.Sweep(context.Background()); got != 3 {
		t.Errorf("Sweep() = %d, want 3", got)
	}
}

// A batch that keeps failing is skipped so later auctions still close.
func TestAuctionSweeper_SkipsFailingBatch(t *testing.T) {
	auctions := svcmocks.NewMockAuction(gomock.NewController(t))
	stuck := []uuid.UUID{uuid.New(), uuid.New()}
	gomock.InOrder(
		auctions.EXPECT().CloseExpired(gomock.Any(), 2, nil).Return(0, stuck, nil),
		auctions.EXPECT().CloseExpired(gomock.Any(), 2, stuck).Return(2, nil, nil),
		auctions.EXPECT().CloseExpired(gomock.Any(), 2, stuck).Return(0, nil, nil),
	)

	sweeper := NewAuctionSweeper(auctions, time.Second, 2, logger.Nop())
	if got := sweeper.Sweep(context.Background()); got != 2 {
		t.Errorf("Sweep() = %d, want 2", got)
	}
}

func TestAuctionSweeper_StopsOnError(t *testing.T) {
	auctions := svcmocks.NewMockAuction(gomock.NewController(t))
	auctions.EXPECT().CloseExpired(gomock.Any(), 5, nil).Return(0, nil, errors.New("connection refused"))

	sweeper := NewAuctionSweeper(auctions, time.Second, 5, logger.Nop())
	if got := sweeper.Sweep(context.Background()); got != 0 {
		t.Errorf("Sweep() = %d, want 0", got)
	}
}

func TestAuctionSweeper_RunStopsWithContext(t *testing.T) {
	auctions := svcmocks.NewMockAuction(gomock.NewController(t))
	auctions.EXPECT().CloseExpired(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil, nil).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	sweeper := NewAuctionSweeper(auctions, 5*time.Millisecond, 10, logger.Nop())
	done := make(chan error, 1)
	go func() { done <- sweeper.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}
