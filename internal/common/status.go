package common

type RequestStatus string

const (
	RequestPending        RequestStatus = "pending"
	RequestAuctionCreated RequestStatus = "auction_created"
	RequestAuctionActive  RequestStatus = "auction_active"
	RequestAuctionWon     RequestStatus = "auction_won"
	RequestAuctionLost    RequestStatus = "auction_lost"
	RequestCompleted      RequestStatus = "completed"
	RequestCancelled      RequestStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestCompleted || s == RequestCancelled || s == RequestAuctionLost
}

type RequestSource string

const (
	SourceB2B       RequestSource = "b2b"
	SourceAffiliate RequestSource = "affiliate"
	SourceDirect    RequestSource = "direct"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type AuctionStatus string

const (
	AuctionOpen           AuctionStatus = "open"
	AuctionClosedAwarded  AuctionStatus = "closed_awarded"
	AuctionClosedUnfilled AuctionStatus = "closed_unfilled"
)

type CloseReason string

const (
	CloseDeadline         CloseReason = "deadline"
	CloseManual           CloseReason = "manual"
	CloseRequestCancelled CloseReason = "request_cancelled"
)

type BookingStatus string

const (
	BookingAwarded   BookingStatus = "awarded"
	BookingAssigned  BookingStatus = "assigned"
	BookingCompleted BookingStatus = "completed"
)

type EarningsType string

const (
	EarningsBookingCommission EarningsType = "booking_commission"
	EarningsAuctionWin        EarningsType = "auction_win"
	EarningsReferralBonus     EarningsType = "referral_bonus"
	EarningsPlatformBonus     EarningsType = "platform_bonus"
)

type EarningsStatus string

const (
	EarningsPending   EarningsStatus = "pending"
	EarningsProcessed EarningsStatus = "processed"
	EarningsPaid      EarningsStatus = "paid"
	EarningsCancelled EarningsStatus = "cancelled"
)

type PayoutStatus string

const (
	// PayoutPending is a pre-request placeholder and is never produced by the API.
	PayoutPending    PayoutStatus = "pending"
	PayoutRequested  PayoutStatus = "requested"
	PayoutApproved   PayoutStatus = "approved"
	PayoutProcessing PayoutStatus = "processing"
	PayoutPaid       PayoutStatus = "paid"
	PayoutFailed     PayoutStatus = "failed"
	PayoutCancelled  PayoutStatus = "cancelled"
)

func (s PayoutStatus) IsTerminal() bool {
	return s == PayoutPaid || s == PayoutFailed || s == PayoutCancelled
}

type PayoutMethod string

const (
	MethodBankTransfer PayoutMethod = "bank_transfer"
	MethodPayPal       PayoutMethod = "paypal"
	MethodWireTransfer PayoutMethod = "wire_transfer"
	MethodCheck        PayoutMethod = "check"
)

var PayoutMethods = []PayoutMethod{MethodBankTransfer, MethodPayPal, MethodWireTransfer, MethodCheck}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCompany Role = "company"
	RoleSystem  Role = "system"
)
