package controller

import (
	"booking-settlement-api/internal/entity"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

const (
	defaultLimit  = 20
	defaultOffset = 0
)

type errorResponse struct {
	Reason    string `json:"reason"`
	Retryable bool   `json:"retryable,omitempty"`
}

// PageQuery is embedded by list inputs so echo binds limit and offset.
type PageQuery struct {
	Limit  int `query:"limit" validate:"gte=1,lte=100"`
	Offset int `query:"offset" validate:"gte=0"`
}

func newPageQuery() PageQuery {
	return PageQuery{Limit: defaultLimit, Offset: defaultOffset}
}

func (p PageQuery) model() *entity.PaginationInput {
	return entity.NewPaginationInput(p.Limit, p.Offset)
}

type reasonInput struct {
	Reason string `json:"reason" validate:"max=500"`
}

func badRequest(c echo.Context, reason string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Reason: reason})
}

// bindAndValidate writes a 400 and returns false when the input is unusable.
func bindAndValidate(c echo.Context, v *validator.Validate, input any) (bool, error) {
	if err := c.Bind(input); err != nil {
		return false, badRequest(c, "Input data is not formed correctly")
	}
	if err := v.Struct(input); err != nil {
		return false, badRequest(c, getAllErrorMessages(err))
	}

	return true, nil
}

// bindOptional is bindAndValidate for bodies that may be omitted entirely.
func bindOptional(c echo.Context, v *validator.Validate, input any) (bool, error) {
	if c.Request().ContentLength == 0 {
		return true, nil
	}

	return bindAndValidate(c, v, input)
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false, badRequest(c, fmt.Sprintf("'%s': should be a valid uuid", name))
	}

	return id, true, nil
}

// parseOptionalUUID parses an optional filter value; empty means unset.
func parseOptionalUUID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("'%s': should be a valid uuid", field)
	}

	return &id, nil
}

func parseOptionalTime(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("'%s': should be an RFC 3339 timestamp", field)
	}
	t = t.UTC()

	return &t, nil
}

// respondError maps service errors onto status codes. Only unexpected errors
// are returned to echo so they reach the error log.
func respondError(c echo.Context, err error) error {
	var conflict *entity.ConcurrencyConflictError

	switch {
	case errors.Is(err, entity.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Reason: err.Error()})
	case entity.IsNotFound(err):
		return c.JSON(http.StatusNotFound, errorResponse{Reason: err.Error()})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, errorResponse{Reason: err.Error(), Retryable: true})
	case entity.IsStateTransition(err), errors.Is(err, entity.ErrNoEligibleEarnings):
		return c.JSON(http.StatusConflict, errorResponse{Reason: err.Error()})
	case entity.IsValidation(err):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Reason: err.Error()})
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{Reason: "Internal error"}); e != nil {
		return e
	}

	return err
}

func getAllErrorMessages(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	var builder strings.Builder
	for _, fe := range errs {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	if fe.Kind() == reflect.String {
		return getMessageForString(fe)
	}

	switch fe.Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return getMessageForInt(fe)
	}

	if fe.Tag() == "required" {
		return "this field is required"
	}

	return "incorrect value passed"
}

func getMessageForInt(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	case "gt":
		return "should be greater than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	case "uuid":
		return "should be a valid uuid"
	case "email":
		return "should be a valid email address"
	case "len":
		return "length should be exactly " + fe.Param()
	}

	return "incorrect value passed"
}
