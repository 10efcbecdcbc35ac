package service

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/repo"
	"booking-settlement-api/internal/repo/repo_errors"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// closeTimeout bounds one deadline close inside a sweep.
const closeTimeout = 10 * time.Second

type AuctionService struct {
	tx       repo.Transactor
	requests repo.BookingRequest
	auctions repo.Auction
	bookings repo.Booking
	outbox   repo.Outbox
	duration time.Duration
	log      logger.Logger
	now      func() time.Time
}

func NewAuctionService(repos *repo.Repositories, duration time.Duration, log logger.Logger) *AuctionService {
	return &AuctionService{
		tx:       repos.Transactor,
		requests: repos.BookingRequest,
		auctions: repos.Auction,
		bookings: repos.Booking,
		outbox:   repos.Outbox,
		duration: duration,
		log:      log.With("service", "auction"),
		now:      utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func (s *AuctionService) OpenAuction(ctx context.Context, p entity.Principal, requestRef string, ceilingOverride *ledger.Money) (*entity.AuctionOutputModel, error) {
	var auction *entity.Auction
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		req, err := findRequest(ctx, s.requests, requestRef, true)
		if err != nil {
			return err
		}
		if !p.IsAdmin() && p.Role != common.RoleSystem && !req.IsOwnedBy(p.CompanyId) {
			return entity.ErrForbidden
		}

		now := s.now()
		auction, err = entity.NewAuction(req, ceilingOverride, s.duration, now)
		if err != nil {
			return err
		}

		if err = s.auctions.CreateAuction(ctx, auction); err != nil {
			if errors.Is(err, repo_errors.ErrDuplicate) {
				return &entity.ConcurrencyConflictError{Resource: "auction", Msg: "request already has an open auction", Err: err}
			}
			return translate(err, ErrAuctionNotFound)
		}

		if err = setRequestStatus(ctx, s.requests, s.outbox, req, common.RequestAuctionCreated, "", now); err != nil {
			return err
		}

		return setRequestStatus(ctx, s.requests, s.outbox, req, common.RequestAuctionActive, "", now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Action("open_auction").Info("auction opened",
		"auction_id", auction.Id, "request_id", auction.BookingRequestId, "ceiling", auction.Ceiling.String())

	return mapAuction(auction), nil
}

// SubmitBid serializes on the auction row and recomputes the best bid from
// every company's lowest qualifying bid.
func (s *AuctionService) SubmitBid(ctx context.Context, p entity.Principal, auctionId uuid.UUID, companyId uuid.UUID, amount ledger.Money) (*entity.BidOutputModel, error) {
	if !p.CanAccessCompany(companyId) {
		return nil, entity.ErrForbidden
	}

	var bid *entity.Bid
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		auction, err := s.auctions.LockAuctionById(ctx, auctionId)
		if err != nil {
			return translate(err, ErrAuctionNotFound)
		}

		now := s.now()
		if err = auction.CheckBid(amount, now); err != nil {
			return err
		}

		req, err := s.requests.GetBookingRequestById(ctx, auction.BookingRequestId)
		if err != nil {
			return translate(err, ErrBookingRequestNotFound)
		}
		if req.Status.IsTerminal() {
			return &entity.StateTransitionError{Resource: "auction", From: string(req.Status), Action: "bid", Err: entity.ErrAuctionClosed}
		}
		if req.IsOwnedBy(companyId) {
			return &entity.ValidationError{Field: "companyId", Err: entity.ErrSelfBid}
		}

		bid = &entity.Bid{
			Id:          uuid.New(),
			AuctionId:   auction.Id,
			CompanyId:   companyId,
			Amount:      amount,
			SubmittedAt: now,
		}
		if err = s.auctions.CreateBid(ctx, bid); err != nil {
			return translate(err, ErrAuctionNotFound)
		}

		bids, err := s.auctions.GetAuctionBids(ctx, auction.Id)
		if err != nil {
			return translate(err, ErrAuctionNotFound)
		}
		auction.ApplyBids(bids)

		return translate(s.auctions.UpdateAuction(ctx, auction), ErrAuctionNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.log.Action("submit_bid").Debug("bid accepted",
		"auction_id", auctionId, "company_id", companyId, "amount", amount.String())

	return mapBid(bid), nil
}

// CloseAuction settles the auction once; later calls return the stored result.
// A close before the deadline is recorded as manual.
func (s *AuctionService) CloseAuction(ctx context.Context, auctionId uuid.UUID) (*entity.AuctionCloseResult, error) {
	var result *entity.AuctionCloseResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		auction, err := s.auctions.LockAuctionById(ctx, auctionId)
		if err != nil {
			return translate(err, ErrAuctionNotFound)
		}
		if auction.IsClosed() {
			result, err = s.closedResult(ctx, auction)
			return err
		}

		req, err := s.requests.LockBookingRequestById(ctx, auction.BookingRequestId)
		if err != nil {
			return translate(err, ErrBookingRequestNotFound)
		}

		now := s.now()
		reason := common.CloseManual
		if !now.Before(auction.ClosesAt) {
			reason = common.CloseDeadline
		}
		result, err = s.closeLocked(ctx, auction, req, reason, now)

		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// closeLocked expects both the auction and its request to be locked by the
// caller's transaction. A cancelled request is never awarded and keeps its status.
func (s *AuctionService) closeLocked(ctx context.Context, auction *entity.Auction, req *entity.BookingRequest, reason common.CloseReason, now time.Time) (*entity.AuctionCloseResult, error) {
	if req.Status == common.RequestCancelled {
		reason = common.CloseRequestCancelled
	}

	bids, err := s.auctions.GetAuctionBids(ctx, auction.Id)
	if err != nil {
		return nil, translate(err, ErrAuctionNotFound)
	}

	winner := auction.Close(bids, reason, now)
	if err = s.auctions.UpdateAuction(ctx, auction); err != nil {
		return nil, translate(err, ErrAuctionNotFound)
	}

	log := s.log.Action("close_auction").With("auction_id", auction.Id, "reason", reason)
	result := &entity.AuctionCloseResult{Auction: *mapAuction(auction)}

	switch {
	case winner != nil:
		booking := entity.NewAwardedBooking(req.Id, winner.CompanyId, winner.Amount, auction.Currency, now)
		if err = s.bookings.CreateBooking(ctx, booking); err != nil {
			return nil, translate(err, ErrBookingNotFound)
		}
		err = enqueue(ctx, s.outbox, entity.RoutingBookingAwarded, entity.BookingAwardedMessage{
			BookingId: booking.Id.String(),
			RequestId: req.RequestId,
			CompanyId: winner.CompanyId.String(),
			Amount:    winner.Amount.String(),
			Currency:  booking.Currency,
		}, now)
		if err != nil {
			return nil, err
		}
		if err = setRequestStatus(ctx, s.requests, s.outbox, req, common.RequestAuctionWon, "", now); err != nil {
			return nil, err
		}
		result.BookingId = booking.Id.String()
		log.Info("auction awarded", "winner_company_id", winner.CompanyId, "amount", winner.Amount.String())
	case reason != common.CloseRequestCancelled:
		if err = setRequestStatus(ctx, s.requests, s.outbox, req, common.RequestAuctionLost, "", now); err != nil {
			return nil, err
		}
		log.Info("auction closed unfilled")
	default:
		log.Info("auction closed for cancelled request")
	}

	return result, nil
}

func (s *AuctionService) closedResult(ctx context.Context, auction *entity.Auction) (*entity.AuctionCloseResult, error) {
	result := &entity.AuctionCloseResult{Auction: *mapAuction(auction)}
	if auction.Status != common.AuctionClosedAwarded {
		return result, nil
	}

	booking, err := s.bookings.GetBookingByRequestId(ctx, auction.BookingRequestId)
	if err != nil {
		return nil, translate(err, ErrBookingNotFound)
	}
	result.BookingId = booking.Id.String()

	return result, nil
}

// CloseExpired closes up to limit auctions past their deadline, each in its own
// transaction. Skipped ids are not listed; ids that failed are returned so the
// caller can skip them for the rest of its sweep. The next sweep retries them.
func (s *AuctionService) CloseExpired(ctx context.Context, limit int, skip []uuid.UUID) (int, []uuid.UUID, error) {
	ids, err := s.auctions.ListExpiredOpenAuctionIds(ctx, s.now(), limit, skip)
	if err != nil {
		return 0, nil, err
	}

	log := s.log.Action("sweep_auctions")
	closed := 0
	var failed []uuid.UUID
	for _, id := range ids {
		if ctx.Err() != nil {
			return closed, failed, ctx.Err()
		}

		closeCtx, cancel := context.WithTimeout(ctx, closeTimeout)
		_, err := s.CloseAuction(closeCtx, id)
		cancel()
		if err != nil {
			log.Error("failed to close expired auction", err, "auction_id", id)
			failed = append(failed, id)
			continue
		}
		closed++
	}

	return closed, failed, nil
}

func (s *AuctionService) GetAuction(ctx context.Context, caller entity.Principal, auctionId uuid.UUID) (*entity.AuctionOutputModel, error) {
	auction, err := s.auctions.GetAuctionById(ctx, auctionId)
	if err != nil {
		return nil, translate(err, ErrAuctionNotFound)
	}

	return auctionView(caller)(auction), nil
}

func (s *AuctionService) ListAuctions(ctx context.Context, caller entity.Principal, filter entity.AuctionFilter, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.AuctionOutputModel], error) {
	auctions, total, err := s.auctions.ListAuctions(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return entity.NewPage(mapList(auctions, auctionView(caller)), total, pg), nil
}

// auctionView hides the running best bid from bidding companies; they only
// learn the winner once the auction closes.
func auctionView(caller entity.Principal) func(*entity.Auction) *entity.AuctionOutputModel {
	if caller.Role == common.RoleAdmin || caller.Role == common.RoleSystem {
		return mapAuction
	}

	return func(a *entity.Auction) *entity.AuctionOutputModel {
		out := mapAuction(a)
		out.BestBidAmount = nil
		out.BestCompanyId = ""
		return out
	}
}

func (s *AuctionService) ListBids(ctx context.Context, auctionId uuid.UUID, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.BidOutputModel], error) {
	if _, err := s.auctions.GetAuctionById(ctx, auctionId); err != nil {
		return nil, translate(err, ErrAuctionNotFound)
	}

	bids, total, err := s.auctions.ListAuctionBids(ctx, auctionId, pg)
	if err != nil {
		return nil, err
	}

	return entity.NewPage(mapList(bids, mapBid), total, pg), nil
}
