package entity

import (
	"booking-settlement-api/internal/common"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// PayoutMethodDetails is the destination of a payout; the concrete type is
// selected by the payout method.
type PayoutMethodDetails interface {
	Method() common.PayoutMethod
	Validate() error
}

var detailsValidator = newDetailsValidator()

func newDetailsValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

type BankTransferDetails struct {
	AccountHolder string `json:"accountHolder" validate:"notblank"`
	BankName      string `json:"bankName" validate:"notblank"`
	AccountNumber string `json:"accountNumber" validate:"notblank"`
	RoutingNumber string `json:"routingNumber" validate:"notblank"`
}

func (BankTransferDetails) Method() common.PayoutMethod { return common.MethodBankTransfer }

func (d BankTransferDetails) Validate() error { return validateDetails(d) }

type PayPalDetails struct {
	Email string `json:"email" validate:"required,email"`
}

func (PayPalDetails) Method() common.PayoutMethod { return common.MethodPayPal }

func (d PayPalDetails) Validate() error { return validateDetails(d) }

type WireTransferDetails struct {
	AccountHolder string `json:"accountHolder" validate:"notblank"`
	BankName      string `json:"bankName" validate:"notblank"`
	BankAddress   string `json:"bankAddress"`
	IBAN          string `json:"iban" validate:"notblank"`
	SwiftCode     string `json:"swiftCode" validate:"notblank,len=8|len=11"`
}

func (WireTransferDetails) Method() common.PayoutMethod { return common.MethodWireTransfer }

func (d WireTransferDetails) Validate() error { return validateDetails(d) }

type CheckDetails struct {
	PayeeName      string `json:"payeeName" validate:"notblank"`
	MailingAddress string `json:"mailingAddress" validate:"notblank"`
}

func (CheckDetails) Method() common.PayoutMethod { return common.MethodCheck }

func (d CheckDetails) Validate() error { return validateDetails(d) }

// validateDetails reports the first failing field as accountDetails.<json name>.
func validateDetails(d PayoutMethodDetails) error {
	err := detailsValidator.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "accountDetails", Err: err}
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: "accountDetails." + fe.Field(), Msg: detailsMessage(fe), Err: err}
}

func detailsMessage(fe validator.FieldError) string {
	switch tag := fe.Tag(); {
	case tag == "required" || tag == "notblank":
		return "is required"
	case tag == "email":
		return "must be a valid email address"
	case strings.HasPrefix(tag, "len"):
		return "must be 8 or 11 characters"
	}

	return fmt.Sprintf("failed %q check", fe.Tag())
}

// DecodePayoutMethodDetails picks the variant for method and validates it.
func DecodePayoutMethodDetails(method common.PayoutMethod, raw json.RawMessage) (PayoutMethodDetails, error) {
	var details PayoutMethodDetails
	switch method {
	case common.MethodBankTransfer:
		details = &BankTransferDetails{}
	case common.MethodPayPal:
		details = &PayPalDetails{}
	case common.MethodWireTransfer:
		details = &WireTransferDetails{}
	case common.MethodCheck:
		details = &CheckDetails{}
	default:
		return nil, &ValidationError{Field: "payoutMethod", Msg: fmt.Sprintf("unknown method %q", method)}
	}

	if len(raw) == 0 {
		return nil, &ValidationError{Field: "accountDetails", Msg: "is required"}
	}
	if err := json.Unmarshal(raw, details); err != nil {
		return nil, &ValidationError{Field: "accountDetails", Msg: "is not formed correctly", Err: err}
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	return details, nil
}
