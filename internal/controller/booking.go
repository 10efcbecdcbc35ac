package controller

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/entity"
	"booking-settlement-api/internal/ledger"
	"booking-settlement-api/internal/service"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

// bookingRoutesHandler accepts the fulfillment signals over HTTP, next to the
// booking queue consumer.
type bookingRoutesHandler struct {
	bookingService service.Booking
	validate       *validator.Validate
}

func newBookingRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bookingRoutesHandler {
	h := &bookingRoutesHandler{bookingService: services.Booking, validate: v}

	fleet := requireRole(common.RoleAdmin, common.RoleSystem)
	outer.GET("/bookings/:bookingId", h.GetBooking)
	outer.POST("/bookings/:bookingId/assigned", h.PostAssigned, fleet)
	outer.POST("/bookings/:bookingId/completed", h.PostCompleted, fleet)
	outer.POST("/bookings/:bookingId/payment-confirmed", h.PostPaymentConfirmed, fleet)

	return h
}

// /bookings/:bookingId
func (h *bookingRoutesHandler) GetBooking(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "bookingId")
	if !ok {
		return err
	}

	booking, err := h.bookingService.GetBooking(c.Request().Context(), principal(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, booking)
}

type postAssignedInput struct {
	CarId    string `json:"carId" validate:"required,max=100"`
	DriverId string `json:"driverId" validate:"required,max=100"`
}

func (h *bookingRoutesHandler) PostAssigned(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "bookingId")
	if !ok {
		return err
	}
	var input postAssignedInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	booking, err := h.bookingService.MarkAssigned(c.Request().Context(), &entity.BookingAssignedInput{
		BookingId: id,
		CarId:     input.CarId,
		DriverId:  input.DriverId,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, booking)
}

type postCompletedInput struct {
	TotalAmount ledger.Money `json:"totalAmount" validate:"gte=0"`
	CompletedAt time.Time    `json:"completedAt"`
}

func (h *bookingRoutesHandler) PostCompleted(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "bookingId")
	if !ok {
		return err
	}
	var input postCompletedInput
	if ok, err := bindOptional(c, h.validate, &input); !ok {
		return err
	}

	booking, err := h.bookingService.MarkCompleted(c.Request().Context(), &entity.BookingCompletedInput{
		BookingId:   id,
		TotalAmount: input.TotalAmount,
		CompletedAt: input.CompletedAt.UTC(),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, booking)
}

type postPaymentConfirmedInput struct {
	PaymentId   string       `json:"paymentId" validate:"required,max=100"`
	TaxAmount   ledger.Money `json:"taxAmount" validate:"gte=0"`
	ConfirmedAt time.Time    `json:"confirmedAt"`
}

func (h *bookingRoutesHandler) PostPaymentConfirmed(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "bookingId")
	if !ok {
		return err
	}
	var input postPaymentConfirmedInput
	if ok, err := bindAndValidate(c, h.validate, &input); !ok {
		return err
	}

	booking, err := h.bookingService.ConfirmPayment(c.Request().Context(), &entity.PaymentConfirmedInput{
		BookingId:   id,
		PaymentId:   input.PaymentId,
		TaxAmount:   input.TaxAmount,
		ConfirmedAt: input.ConfirmedAt.UTC(),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, booking)
}
