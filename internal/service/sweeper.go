package service

import (
	"booking-settlement-api/internal/logger"
	"context"
	"time"

	"github.com/google/uuid"
)

// AuctionSweeper closes auctions whose deadline passed. It is safe to run next
// to manual closes since both serialize on the auction row.
type AuctionSweeper struct {
	auctions Auction
	interval time.Duration
	batch    int
	log      logger.Logger
}

func NewAuctionSweeper(auctions Auction, interval time.Duration, batch int, log logger.Logger) *AuctionSweeper {
	return &AuctionSweeper{
		auctions: auctions,
		interval: interval,
		batch:    batch,
		log:      log.Action("sweep_auctions"),
	}
}

// Run blocks until ctx is done.
func (s *AuctionSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("auction sweeper started", "interval", s.interval.String(), "batch", s.batch)
	for {
		select {
		case <-ctx.Done():
			s.log.Info("auction sweeper stopped")
			return nil
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep drains expired auctions in batches until none are left. Auctions that
// fail to close are skipped for the rest of the sweep so they cannot hold back
// the ones behind them.
func (s *AuctionSweeper) Sweep(ctx context.Context) int {
	total := 0
	var skip []uuid.UUID
	for {
		closed, failed, err := s.auctions.CloseExpired(ctx, s.batch, skip)
		total += closed
		skip = append(skip, failed...)
		if err != nil {
			if ctx.Err() == nil {
				s.log.Error("auction sweep failed", err)
			}
			return total
		}
		// a short batch means the backlog is drained
		if closed+len(failed) < s.batch {
			if total > 0 || len(skip) > 0 {
				s.log.Info("expired auctions swept", "closed", total, "failed", len(skip))
			}
			return total
		}
	}
}
