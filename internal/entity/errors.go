package entity

import (
	"errors"
	"fmt"
)

var (
	ErrAuctionClosed       = errors.New("auction is closed")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrInvalidState        = errors.New("invalid state")
	ErrBidTooHigh          = errors.New("bid exceeds auction ceiling")
	ErrSelfBid             = errors.New("company can't bid on its own request")
	ErrBookingNotSettled   = errors.New("booking is not completed and paid")
	ErrNegativeNetEarnings = errors.New("net earnings would be negative")
	ErrNoEligibleEarnings  = errors.New("no eligible earnings for payout")
	ErrForbidden           = errors.New("operation not allowed for caller")
)

// StateTransitionError is returned when an operation is not legal from the
// current status. Err is ErrAuctionClosed, ErrInvalidTransition or ErrInvalidState.
type StateTransitionError struct {
	Resource string
	From     string
	Action   string
	Err      error
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: can't %s from status %q: %v", e.Resource, e.Action, e.From, e.Err)
}

func (e *StateTransitionError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e *ValidationError) Error() string {
	switch {
	case e.Field != "" && e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil && e.Field != "":
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	}

	return "validation error"
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ConcurrencyConflictError means a race for a lock or claim was lost; the caller may retry.
type ConcurrencyConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	}

	return fmt.Sprintf("%s conflict", e.Resource)
}

func (e *ConcurrencyConflictError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func invalidTransition(resource, from, action string) error {
	return &StateTransitionError{Resource: resource, From: from, Action: action, Err: ErrInvalidTransition}
}

func IsStateTransition(err error) bool {
	var target *StateTransitionError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConcurrencyConflictError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
