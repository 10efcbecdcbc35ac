package controller

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/service"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

type bookingRequestRoutesHandler struct {
	requestService service.BookingRequest
	auctionService service.Auction
	validate       *validator.Validate
}

func newBookingRequestRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bookingRequestRoutesHandler {
	h := &bookingRequestRoutesHandler{requestService: services.BookingRequest, auctionService: services.Auction, validate: v}

	partners := requireRole(common.RoleAdmin, common.RoleCompany)
	outer.POST("/booking-requests", h.PostBookingRequest, partners)
	outer.GET("/booking-requests", h.GetBookingRequests)
	outer.GET("/booking-requests/:requestId", h.GetBookingRequest)
	outer.POST("/booking-requests/:requestId/cancel", h.CancelBookingRequest, partners)
	outer.POST("/booking-requests/:requestId/auction", h.OpenAuction, partners)

	return h
}

type postBookingRequestInput struct {
	PartnerCompanyId    string       `json:"partnerCompanyId" validate:"omitempty,uuid"`
	Source              string       `json:"source" validate:"omitempty,oneof=b2b affiliate direct"`
	CustomerName        string       `json:"customerName" validate:"required,max=200"`
	CustomerPhone       string       `json:"customerPhone" validate:"max=50"`
	CustomerEmail       string       `json:"customerEmail" validate:"omitempty,email"`
	Origin              string       `json:"origin" validate:"required,max=500"`
	Destination         string       `json:"destination" validate:"required,max=500"`
	PickupAt            time.Time    `json:"pickupAt" validate:"required"`
	Passengers          int          `json:"passengers" validate:"gte=1,lte=100"`
	Luggage             int          `json:"luggage" validate:"gte=0,lte=100"`
	VehiclePreference   string       `json:"vehiclePreference" validate:"max=100"`
	SpecialRequirements string       `json:"specialRequirements" validate:"max=1000"`
	MaxBudget           ledger.Money `json:"maxBudget" validate:"gt=0"`
	Currency            string       `json:"currency" validate:"omitempty,len=3"`
	Priority            string       `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func (in postBookingRequestInput) model() *entity.CreateBookingRequestInput {
	model := &entity.CreateBookingRequestInput{
		Source:              common.RequestSource(in.Source),
		CustomerName:        in.CustomerName,
		CustomerPhone:       in.CustomerPhone,
		CustomerEmail:       in.CustomerEmail,
		Origin:              in.Origin,
		Destination:         in.Destination,
		PickupAt:            in.PickupAt.UTC(),
		Passengers:          in.Passengers,
		Luggage:             in.Luggage,
		VehiclePreference:   in.VehiclePreference,
		SpecialRequirements: in.SpecialRequirements,
		MaxBudget:           in.MaxBudget,
		Currency:            in.Currency,
		Priority:            common.Priority(in.Priority),
	}
	if id, err := uuid.Parse(in.PartnerCompanyId); err == nil {
		model.PartnerCompanyId = &id
	}

	return model
}

// /booking-requests
func (h *bookingRequestRoutesHandler) PostBookingRequest(c echo.Context) error {
	var input postBookingRequestInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	request, err := h.requestService.CreateBookingRequest(c.Request().Context(), principal(c), input.model())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, request)
}

type getBookingRequestsInput struct {
	PageQuery
	Status           string `query:"status" validate:"omitempty,oneof=pending auction_created auction_active auction_won auction_lost completed cancelled"`
	PartnerCompanyId string `query:"partnerCompanyId"`
	Priority         string `query:"priority" validate:"omitempty,oneof=low medium high"`
	From             string `query:"from"`
	To               string `query:"to"`
}

func (in getBookingRequestsInput) filter() (entity.BookingRequestFilter, error) {
	filter := entity.BookingRequestFilter{Status: common.RequestStatus(in.Status), Priority: common.Priority(in.Priority)}

	var err error
	if filter.PartnerCompanyId, err = parseOptionalUUID("partnerCompanyId", in.PartnerCompanyId); err != nil {
		return filter, err
	}
	if filter.From, err = parseOptionalTime("from", in.From); err != nil {
		return filter, err
	}
	if filter.To, err = parseOptionalTime("to", in.To); err != nil {
		return filter, err
	}

	return filter, nil
}

func (h *bookingRequestRoutesHandler) GetBookingRequests(c echo.Context) error {
	input := getBookingRequestsInput{PageQuery: newPageQuery()}
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}
	filter, err := input.filter()
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.requestService.ListBookingRequests(c.Request().Context(), principal(c), filter, input.model())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// /booking-requests/:requestId
func (h *bookingRequestRoutesHandler) GetBookingRequest(c echo.Context) error {
	request, err := h.requestService.GetBookingRequest(c.Request().Context(), principal(c), c.Param("requestId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, request)
}

// /booking-requests/:requestId/cancel
func (h *bookingRequestRoutesHandler) CancelBookingRequest(c echo.Context) error {
	var input reasonInput
	if ok, err := bindOptional(c, h.validate, &input); !ok {
		return err
	}

	request, err := h.requestService.CancelRequest(c.Request().Context(), principal(c), c.Param("requestId"), input.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, request)
}

type openAuctionInput struct {
	Ceiling *ledger.Money `json:"ceiling" validate:"omitempty,gt=0"`
}

// /booking-requests/:requestId/auction
func (h *bookingRequestRoutesHandler) OpenAuction(c echo.Context) error {
	var input openAuctionInput
	if ok, err := bindOptional(c, h.validate, &input); !ok {
		return err
	}

	auction, err := h.auctionService.OpenAuction(c.Request().Context(), principal(c), c.Param("requestId"), input.Ceiling)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, auction)
}
