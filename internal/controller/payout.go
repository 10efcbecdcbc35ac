package controller

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

type payoutRoutesHandler struct {
	payoutService service.Payout
	validate      *validator.Validate
}

func newPayoutRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *payoutRoutesHandler {
	h := &payoutRoutesHandler{payoutService: services.Payout, validate: v}

	admins := requireRole(common.RoleAdmin)
	partners := requireRole(common.RoleAdmin, common.RoleCompany)
	outer.POST("/payouts", h.PostPayout, partners)
	outer.GET("/payouts", h.GetPayouts)
	outer.GET("/payouts/:payoutId", h.GetPayout)
	outer.POST("/payouts/:payoutId/approve", h.ApprovePayout, admins)
	outer.POST("/payouts/:payoutId/process", h.ProcessPayout, admins)
	outer.POST("/payouts/:payoutId/complete", h.CompletePayout, admins)
	outer.POST("/payouts/:payoutId/fail", h.FailPayout, admins)
	outer.POST("/payouts/:payoutId/cancel", h.CancelPayout, partners)

	return h
}

type postPayoutInput struct {
	CompanyId      string          `json:"companyId" validate:"omitempty,uuid"`
	PeriodStart    time.Time       `json:"periodStart" validate:"required"`
	PeriodEnd      time.Time       `json:"periodEnd" validate:"required"`
	Method         string          `json:"method" validate:"required,oneof=bank_transfer paypal wire_transfer check"`
	AccountDetails json.RawMessage `json:"accountDetails" validate:"required"`
}

// /payouts
func (h *payoutRoutesHandler) PostPayout(c echo.Context) error {
	var input postPayoutInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	companyId := principal(c).CompanyId
	if input.CompanyId != "" {
		companyId = uuid.MustParse(input.CompanyId)
	}
	if companyId == uuid.Nil {
		return badRequest(c, "'companyId': this field is required")
	}

	payout, err := h.payoutService.RequestPayout(c.Request().Context(), principal(c), &entity.RequestPayoutInput{
		CompanyId:      companyId,
		PeriodStart:    input.PeriodStart.UTC(),
		PeriodEnd:      input.PeriodEnd.UTC(),
		Method:         common.PayoutMethod(input.Method),
		AccountDetails: input.AccountDetails,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, payout)
}

type getPayoutsInput struct {
	PageQuery
	CompanyId string `query:"companyId"`
	Status    string `query:"status" validate:"omitempty,oneof=requested approved processing paid failed cancelled"`
	Method    string `query:"method" validate:"omitempty,oneof=bank_transfer paypal wire_transfer check"`
	From      string `query:"from"`
	To        string `query:"to"`
}

func (in getPayoutsInput) filter() (entity.PayoutFilter, error) {
	filter := entity.PayoutFilter{Status: common.PayoutStatus(in.Status), Method: common.PayoutMethod(in.Method)}

	var err error
	if filter.CompanyId, err = parseOptionalUUID("companyId", in.CompanyId); err != nil {
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

func (h *payoutRoutesHandler) GetPayouts(c echo.Context) error {
	input := getPayoutsInput{PageQuery: newPageQuery()}
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}
	filter, err := input.filter()
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.payoutService.ListPayouts(c.Request().Context(), principal(c), filter, input.model())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// /payouts/:payoutId
func (h *payoutRoutesHandler) GetPayout(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "payoutId")
	if !ok {
		return err
	}

	payout, err := h.payoutService.GetPayout(c.Request().Context(), principal(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, payout)
}

// /payouts/:payoutId/approve
func (h *payoutRoutesHandler) ApprovePayout(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "payoutId")
	if !ok {
		return err
	}

	payout, err := h.payoutService.ApprovePayout(c.Request().Context(), principal(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, payout)
}

type processPayoutInput struct {
	ExternalTransactionId string `json:"externalTransactionId" validate:"required,max=200"`
}

// /payouts/:payoutId/process
func (h *payoutRoutesHandler) ProcessPayout(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "payoutId")
	if !ok {
		return err
	}
	var input processPayoutInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	payout, err := h.payoutService.ProcessPayout(c.Request().Context(), id, input.ExternalTransactionId)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, payout)
}

// /payouts/:payoutId/complete
func (h *payoutRoutesHandler) CompletePayout(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "payoutId")
	if !ok {
		return err
	}

	payout, err := h.payoutService.CompletePayout(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, payout)
}

type failPayoutInput struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// /payouts/:payoutId/fail
func (h *payoutRoutesHandler) FailPayout(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "payoutId")
	if !ok {
		return err
	}
	var input failPayoutInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	payout, err := h.payoutService.FailPayout(c.Request().Context(), id, input.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, payout)
}

// /payouts/:payoutId/cancel
func (h *payoutRoutesHandler) CancelPayout(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "payoutId")
	if !ok {
		return err
	}
	var input reasonInput
	if ok, err := bindOptional(c, h.validate, &input); !ok {
		return err
	}

	payout, err := h.payoutService.CancelPayout(c.Request().Context(), principal(c), id, input.Reason)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, payout)
}
