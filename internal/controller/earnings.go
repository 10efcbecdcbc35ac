package controller

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type earningsRoutesHandler struct {
	earningsService service.Earnings
	validate        *validator.Validate
}

func newEarningsRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *earningsRoutesHandler {
	h := &earningsRoutesHandler{earningsService: services.Earnings, validate: v}

	outer.GET("/earnings", h.GetEarningsList)
	outer.GET("/earnings/:earningsId", h.GetEarnings)
	outer.POST("/earnings/:earningsId/cancel", h.CancelEarnings, requireRole(common.RoleAdmin))

	return h
}

type getEarningsInput struct {
	PageQuery
	CompanyId    string `query:"companyId"`
	Status       string `query:"status" validate:"omitempty,oneof=pending processed paid cancelled"`
	EarningsType string `query:"earningsType" validate:"omitempty,oneof=booking_commission auction_win referral_bonus platform_bonus"`
	PayoutId     string `query:"payoutId"`
	From         string `query:"from"`
	To           string `query:"to"`
}

func (in getEarningsInput) filter() (entity.EarningsFilter, error) {
	filter := entity.EarningsFilter{Status: common.EarningsStatus(in.Status), EarningsType: common.EarningsType(in.EarningsType)}

	var err error
	if filter.CompanyId, err = parseOptionalUUID("companyId", in.CompanyId); err != nil {
		return filter, err
	}
	if filter.PayoutId, err = parseOptionalUUID("payoutId", in.PayoutId); err != nil {
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

// /earnings
func (h *earningsRoutesHandler) GetEarningsList(c echo.Context) error {
	input := getEarningsInput{PageQuery: newPageQuery()}
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}
	filter, err := input.filter()
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.earningsService.ListEarnings(c.Request().Context(), principal(c), filter, input.model())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// /earnings/:earningsId
func (h *earningsRoutesHandler) GetEarnings(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "earningsId")
	if !ok {
		return err
	}

	earnings, err := h.earningsService.GetEarnings(c.Request().Context(), principal(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, earnings)
}

type cancelEarningsInput struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// /earnings/:earningsId/cancel
func (h *earningsRoutesHandler) CancelEarnings(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "earningsId")
	if !ok {
		return err
	}
	var input cancelEarningsInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	earnings, err := h.earningsService.CancelEarnings(c.Request().Context(), id, input.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, earnings)
}
