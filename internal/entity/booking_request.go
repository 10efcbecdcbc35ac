package entity

import (
	"booking-settlement-api/internal/common"
	"booking-settlement-api/internal/ledger"
	"time"

	"github.com/google/uuid"
)

// db model
type BookingRequest struct {
	Id                  uuid.UUID            `db:"id"`
	RequestId           string               `db:"request_id"`
	PartnerCompanyId    uuid.NullUUID        `db:"partner_company_id"`
	Source              common.RequestSource `db:"source"`
	CustomerName        string               `db:"customer_name"`
	CustomerPhone       string               `db:"customer_phone"`
	CustomerEmail       string               `db:"customer_email"`
	Origin              string               `db:"origin"`
	Destination         string               `db:"destination"`
	PickupAt            time.Time            `db:"pickup_at"`
	Passengers          int                  `db:"passengers"`
	Luggage             int                  `db:"luggage"`
	VehiclePreference   string               `db:"vehicle_preference"`
	SpecialRequirements string               `db:"special_requirements"`
	MaxBudget           ledger.Money         `db:"max_budget"`
	Currency            string               `db:"currency"`
	Priority            common.Priority      `db:"priority"`
	Status              common.RequestStatus `db:"status"`
	CancelReason        string               `db:"cancel_reason"`
	CreatedAt           time.Time            `db:"created_at"`
	UpdatedAt           time.Time            `db:"updated_at"`
}

// CanOpenAuction only allows a pending request to enter bidding.
func (r *BookingRequest) CanOpenAuction() error {
	if r.Status != common.RequestPending {
		return &StateTransitionError{Resource: "booking request", From: string(r.Status), Action: "open auction", Err: ErrInvalidState}
	}

	return nil
}

func (r *BookingRequest) CanCancel() error {
	if r.Status == common.RequestCompleted || r.Status == common.RequestCancelled {
		return invalidTransition("booking request", string(r.Status), "cancel")
	}

	return nil
}

// CanComplete accepts completion only for a request whose auction was won.
func (r *BookingRequest) CanComplete() error {
	if r.Status != common.RequestAuctionWon {
		return invalidTransition("booking request", string(r.Status), "complete")
	}

	return nil
}

// IsOwnedBy reports whether the request was submitted by the given partner company.
func (r *BookingRequest) IsOwnedBy(companyId uuid.UUID) bool {
	return r.PartnerCompanyId.Valid && r.PartnerCompanyId.UUID == companyId
}

// service + repo input model
type CreateBookingRequestInput struct {
	PartnerCompanyId    *uuid.UUID // given, nil for direct customers
	Source              common.RequestSource
	CustomerName        string
	CustomerPhone       string
	CustomerEmail       string
	Origin              string
	Destination         string
	PickupAt            time.Time
	Passengers          int
	Luggage             int
	VehiclePreference   string
	SpecialRequirements string
	MaxBudget           ledger.Money
	Currency            string
	Priority            common.Priority
	// Id, RequestId, Status and timestamps are set by the service
}

type BookingRequestFilter struct {
	Status           common.RequestStatus
	PartnerCompanyId *uuid.UUID
	Priority         common.Priority
	From             *time.Time
	To               *time.Time
}

// controller model
type BookingRequestOutputModel struct {
	Id                  string       `json:"id"`
	RequestId           string       `json:"requestId"`
	PartnerCompanyId    string       `json:"partnerCompanyId,omitempty"`
	Source              string       `json:"source"`
	CustomerName        string       `json:"customerName"`
	CustomerPhone       string       `json:"customerPhone,omitempty"`
	CustomerEmail       string       `json:"customerEmail,omitempty"`
	Origin              string       `json:"origin"`
	Destination         string       `json:"destination"`
	PickupAt            string       `json:"pickupAt"`
	Passengers          int          `json:"passengers"`
	Luggage             int          `json:"luggage"`
	VehiclePreference   string       `json:"vehiclePreference,omitempty"`
	SpecialRequirements string       `json:"specialRequirements,omitempty"`
	MaxBudget           ledger.Money `json:"maxBudget"`
	Currency            string       `json:"currency"`
	Priority            string       `json:"priority"`
	Status              string       `json:"status"`
	CancelReason        string       `json:"cancelReason,omitempty"`
	CreatedAt           string       `json:"createdAt"`
	UpdatedAt           string       `json:"updatedAt"`
}
