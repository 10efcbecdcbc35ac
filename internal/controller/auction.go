package controller

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

type auctionRoutesHandler struct {
	auctionService service.Auction
	validate       *validator.Validate
}

func newAuctionRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *auctionRoutesHandler {
	h := &auctionRoutesHandler{auctionService: services.Auction, validate: v}

	admins := requireRole(common.RoleAdmin)
	outer.GET("/auctions", h.GetAuctions)
	outer.GET("/auctions/:auctionId", h.GetAuction)
	outer.GET("/auctions/:auctionId/bids", h.GetBids, admins)
	outer.POST("/auctions/:auctionId/bids", h.PostBid, requireRole(common.RoleAdmin, common.RoleCompany))
	outer.POST("/auctions/:auctionId/close", h.CloseAuction, admins)

	return h
}

type getAuctionsInput struct {
	PageQuery
	Status           string `query:"status" validate:"omitempty,oneof=open closed_awarded closed_unfilled"`
	BookingRequestId string `query:"bookingRequestId"`
	WinnerCompanyId  string `query:"winnerCompanyId"`
	ClosesBefore     string `query:"closesBefore"`
}

func (in getAuctionsInput) filter() (entity.AuctionFilter, error) {
	filter := entity.AuctionFilter{Status: common.AuctionStatus(in.Status)}

	var err error
	if filter.BookingRequestId, err = parseOptionalUUID("bookingRequestId", in.BookingRequestId); err != nil {
		return filter, err
	}
	if filter.WinnerCompanyId, err = parseOptionalUUID("winnerCompanyId", in.WinnerCompanyId); err != nil {
		return filter, err
	}
	if filter.ClosesBefore, err = parseOptionalTime("closesBefore", in.ClosesBefore); err != nil {
		return filter, err
	}

	return filter, nil
}

// /auctions
func (h *auctionRoutesHandler) GetAuctions(c echo.Context) error {
	input := getAuctionsInput{PageQuery: newPageQuery()}
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}
	filter, err := input.filter()
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.auctionService.ListAuctions(c.Request().Context(), principal(c), filter, input.model())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// /auctions/:auctionId
func (h *auctionRoutesHandler) GetAuction(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "auctionId")
	if !ok {
		return err
	}

	auction, err := h.auctionService.GetAuction(c.Request().Context(), principal(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, auction)
}

// /auctions/:auctionId/bids
func (h *auctionRoutesHandler) GetBids(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "auctionId")
	if !ok {
		return err
	}
	input := newPageQuery()
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	page, err := h.auctionService.ListBids(c.Request().Context(), id, input.model())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

type postBidInput struct {
	CompanyId string       `json:"companyId" validate:"omitempty,uuid"`
	Amount    ledger.Money `json:"amount" validate:"gt=0"`
}

func (h *auctionRoutesHandler) PostBid(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "auctionId")
	if !ok {
		return err
	}
	var input postBidInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	p := principal(c)
	companyId := p.CompanyId
	if input.CompanyId != "" {
		companyId = uuid.MustParse(input.CompanyId)
	}
	if companyId == uuid.Nil {
		return badRequest(c, "'companyId': this field is required")
	}

	bid, err := h.auctionService.SubmitBid(c.Request().Context(), p, id, companyId, input.Amount)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, bid)
}

// /auctions/:auctionId/close
func (h *auctionRoutesHandler) CloseAuction(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "auctionId")
	if !ok {
		return err
	}

	result, err := h.auctionService.CloseAuction(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
