package service

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/repo"
	"booking-settlement-api/internal/repo/repo_errors"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultCurrency = "USD"

type BookingRequestService struct {
	tx       repo.Transactor
	requests repo.BookingRequest
	auctions repo.Auction
	outbox   repo.Outbox
	closer   *AuctionService
	log      logger.Logger
	now      func() time.Time
}

func NewBookingRequestService(repos *repo.Repositories, auctions *AuctionService, log logger.Logger) *BookingRequestService {
	return &BookingRequestService{
		tx:       repos.Transactor,
		requests: repos.BookingRequest,
		auctions: repos.Auction,
		outbox:   repos.Outbox,
		closer:   auctions,
		log:      log.With("service", "booking_request"),
		now:      utcNow,
	}
}

// findRequest resolves a request by uuid or by its BR- reference.
func findRequest(ctx context.Context, requests repo.BookingRequest, ref string, lock bool) (*entity.BookingRequest, error) {
	id, err := uuid.Parse(ref)
	if err != nil {
		req, err := requests.GetBookingRequestByRequestId(ctx, ref)
		if err != nil {
			return nil, translate(err, ErrBookingRequestNotFound)
		}
		if !lock {
			return req, nil
		}
		id = req.Id
	}

	var req *entity.BookingRequest
	if lock {
		req, err = requests.LockBookingRequestById(ctx, id)
	} else {
		req, err = requests.GetBookingRequestById(ctx, id)
	}
	if err != nil {
		return nil, translate(err, ErrBookingRequestNotFound)
	}

	return req, nil
}

func canSeeRequest(p entity.Principal, r *entity.BookingRequest) bool {
	return p.IsAdmin() || p.Role == common.RoleSystem || r.IsOwnedBy(p.CompanyId)
}

func (s *BookingRequestService) CreateBookingRequest(ctx context.Context, p entity.Principal, input *entity.CreateBookingRequestInput) (*entity.BookingRequestOutputModel, error) {
	now := s.now()

	partner := uuid.NullUUID{}
	switch {
	case p.Role == common.RoleCompany:
		if input.PartnerCompanyId != nil && *input.PartnerCompanyId != p.CompanyId {
			return nil, entity.ErrForbidden
		}
		partner = uuid.NullUUID{UUID: p.CompanyId, Valid: true}
	case input.PartnerCompanyId != nil:
		partner = uuid.NullUUID{UUID: *input.PartnerCompanyId, Valid: true}
	}

	if input.MaxBudget <= 0 {
		return nil, &entity.ValidationError{Field: "maxBudget", Msg: "must be greater than zero"}
	}
	if !input.PickupAt.After(now) {
		return nil, &entity.ValidationError{Field: "pickupAt", Msg: "must be in the future"}
	}

	source := input.Source
	if source == "" {
		source = common.SourceDirect
		if partner.Valid {
			source = common.SourceB2B
		}
	}
	priority := input.Priority
	if priority == "" {
		priority = common.PriorityMedium
	}
	currency := strings.ToUpper(input.Currency)
	if currency == "" {
		currency = defaultCurrency
	}

	req := &entity.BookingRequest{
		Id:                  uuid.New(),
		RequestId:           entity.NewReference(entity.RequestReferencePrefix, now),
		PartnerCompanyId:    partner,
		Source:              source,
		CustomerName:        input.CustomerName,
		CustomerPhone:       input.CustomerPhone,
		CustomerEmail:       input.CustomerEmail,
		Origin:              input.Origin,
		Destination:         input.Destination,
		PickupAt:            input.PickupAt.UTC(),
		Passengers:          input.Passengers,
		Luggage:             input.Luggage,
		VehiclePreference:   input.VehiclePreference,
		SpecialRequirements: input.SpecialRequirements,
		MaxBudget:           input.MaxBudget,
		Currency:            currency,
		Priority:            priority,
		Status:              common.RequestPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.requests.CreateBookingRequest(ctx, req); err != nil {
		if errors.Is(err, repo_errors.ErrDuplicate) {
			return nil, &entity.ConcurrencyConflictError{Resource: "booking request", Msg: "reference collision, retry", Err: err}
		}
		return nil, err
	}

	s.log.Action("create_booking_request").Info("booking request created", "request_id", req.RequestId)

	return mapBookingRequest(req), nil
}

func (s *BookingRequestService) GetBookingRequest(ctx context.Context, p entity.Principal, requestRef string) (*entity.BookingRequestOutputModel, error) {
	req, err := findRequest(ctx, s.requests, requestRef, false)
	if err != nil {
		return nil, err
	}
	if !canSeeRequest(p, req) {
		return nil, ErrBookingRequestNotFound
	}

	return mapBookingRequest(req), nil
}

func (s *BookingRequestService) ListBookingRequests(ctx context.Context, p entity.Principal, filter entity.BookingRequestFilter, pg *entity.PaginationInput) (*entity.PageOutputModel[entity.BookingRequestOutputModel], error) {
	companyId, err := scopeCompany(p, filter.PartnerCompanyId)
	if err != nil {
		return nil, err
	}
	filter.PartnerCompanyId = companyId

	requests, total, err := s.requests.ListBookingRequests(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return entity.NewPage(mapList(requests, mapBookingRequest), total, pg), nil
}

// CancelRequest force-closes an open auction unfilled before cancelling. Locks
// are taken auction first, then request, the same order CloseAuction uses.
func (s *BookingRequestService) CancelRequest(ctx context.Context, p entity.Principal, requestRef string, reason string) (*entity.BookingRequestOutputModel, error) {
	var req *entity.BookingRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		found, err := findRequest(ctx, s.requests, requestRef, false)
		if err != nil {
			return err
		}
		if !canSeeRequest(p, found) {
			return ErrBookingRequestNotFound
		}

		auction, err := s.auctions.LockOpenAuctionByRequestId(ctx, found.Id)
		if err != nil && !errors.Is(err, repo_errors.ErrNotFound) {
			return translate(err, ErrAuctionNotFound)
		}

		req, err = s.requests.LockBookingRequestById(ctx, found.Id)
		if err != nil {
			return translate(err, ErrBookingRequestNotFound)
		}
		if err = req.CanCancel(); err != nil {
			return err
		}
		// an auction opened while we waited for the request lock is visible now
		if auction == nil && (req.Status == common.RequestAuctionCreated || req.Status == common.RequestAuctionActive) {
			auction, err = s.auctions.LockOpenAuctionByRequestId(ctx, req.Id)
			if err != nil && !errors.Is(err, repo_errors.ErrNotFound) {
				return translate(err, ErrAuctionNotFound)
			}
		}

		now := s.now()
		if auction != nil {
			if _, err = s.closer.closeLocked(ctx, auction, req, common.CloseRequestCancelled, now); err != nil {
				return err
			}
		}

		return setRequestStatus(ctx, s.requests, s.outbox, req, common.RequestCancelled, reason, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Action("cancel_request").Info("booking request cancelled", "request_id", req.RequestId, "reason", reason)

	return mapBookingRequest(req), nil
}
