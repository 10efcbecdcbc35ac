package service

import (
	"booking-settlement-api/internal/entity"
	"time"

	"github.com/google/uuid"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}

	return formatTime(*t)
}

func formatNullUUID(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}

	return id.UUID.String()
}

func mapList[T any, O any](items []T, fn func(*T) *O) []O {
	s := make([]O, 0, len(items))
	for i := range items {
		s = append(s, *fn(&items[i]))
	}

	return s
}

func mapBookingRequest(r *entity.BookingRequest) *entity.BookingRequestOutputModel {
	return &entity.BookingRequestOutputModel{
		Id:                  r.Id.String(),
		RequestId:           r.RequestId,
		PartnerCompanyId:    formatNullUUID(r.PartnerCompanyId),
		Source:              string(r.Source),
		CustomerName:        r.CustomerName,
		CustomerPhone:       r.CustomerPhone,
		CustomerEmail:       r.CustomerEmail,
		Origin:              r.Origin,
		Destination:         r.Destination,
		PickupAt:            formatTime(r.PickupAt),
		Passengers:          r.Passengers,
		Luggage:             r.Luggage,
		VehiclePreference:   r.VehiclePreference,
		SpecialRequirements: r.SpecialRequirements,
		MaxBudget:           r.MaxBudget,
		Currency:            r.Currency,
		Priority:            string(r.Priority),
		Status:              string(r.Status),
		CancelReason:        r.CancelReason,
		CreatedAt:           formatTime(r.CreatedAt),
		UpdatedAt:           formatTime(r.UpdatedAt),
	}
}

func mapAuction(a *entity.Auction) *entity.AuctionOutputModel {
	out := &entity.AuctionOutputModel{
		Id:               a.Id.String(),
		BookingRequestId: a.BookingRequestId.String(),
		Ceiling:          a.Ceiling,
		Currency:         a.Currency,
		OpenedAt:         formatTime(a.OpenedAt),
		ClosesAt:         formatTime(a.ClosesAt),
		BidCount:         a.BidCount,
		BestCompanyId:    formatNullUUID(a.BestCompanyId),
		WinnerCompanyId:  formatNullUUID(a.WinnerCompanyId),
		Status:           string(a.Status),
		CloseReason:      string(a.CloseReason),
		ClosedAt:         formatTimePtr(a.ClosedAt),
	}
	if a.BestBidId.Valid {
		amount := a.BestBidAmount
		out.BestBidAmount = &amount
	}

	return out
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:          b.Id.String(),
		AuctionId:   b.AuctionId.String(),
		CompanyId:   b.CompanyId.String(),
		Amount:      b.Amount,
		SubmittedAt: formatTime(b.SubmittedAt),
	}
}

func mapBooking(b *entity.Booking) *entity.BookingOutputModel {
	return &entity.BookingOutputModel{
		Id:                 b.Id.String(),
		BookingRequestId:   formatNullUUID(b.BookingRequestId),
		CompanyId:          b.CompanyId.String(),
		CarId:              b.CarId,
		DriverId:           b.DriverId,
		TotalAmount:        b.TotalAmount,
		TaxAmount:          b.TaxAmount,
		Currency:           b.Currency,
		PaymentId:          b.PaymentId,
		Status:             string(b.Status),
		CompletedAt:        formatTimePtr(b.CompletedAt),
		PaymentConfirmedAt: formatTimePtr(b.PaymentConfirmedAt),
	}
}

func mapEarnings(e *entity.Earnings) *entity.EarningsOutputModel {
	return &entity.EarningsOutputModel{
		Id:               e.Id.String(),
		Reference:        e.Reference,
		CompanyId:        e.CompanyId.String(),
		BookingId:        e.BookingId.String(),
		PaymentId:        e.PaymentId,
		EarningsType:     string(e.EarningsType),
		GrossAmount:      e.GrossAmount,
		CommissionRate:   e.CommissionRate,
		CommissionAmount: e.CommissionAmount,
		PlatformFee:      e.PlatformFee,
		TaxAmount:        e.TaxAmount,
		NetEarnings:      e.NetEarnings,
		Currency:         e.Currency,
		Status:           string(e.Status),
		EarnedAt:         formatTime(e.EarnedAt),
		ProcessedAt:      formatTimePtr(e.ProcessedAt),
		PaidAt:           formatTimePtr(e.PaidAt),
		CancelledAt:      formatTimePtr(e.CancelledAt),
		CancelReason:     e.CancelReason,
		PayoutId:         formatNullUUID(e.PayoutId),
	}
}

func mapPayout(p *entity.Payout) *entity.PayoutOutputModel {
	return &entity.PayoutOutputModel{
		Id:                    p.Id.String(),
		Reference:             p.Reference,
		CompanyId:             p.CompanyId.String(),
		TotalAmount:           p.TotalAmount,
		FeeAmount:             p.FeeAmount,
		NetAmount:             p.NetAmount,
		Currency:              p.Currency,
		PayoutMethod:          string(p.PayoutMethod),
		AccountDetails:        p.Details,
		Status:                string(p.Status),
		PeriodStart:           formatTime(p.PeriodStart),
		PeriodEnd:             formatTime(p.PeriodEnd),
		EarningsCount:         p.EarningsCount,
		ExternalTransactionId: p.ExternalTransactionId,
		FailureReason:         p.FailureReason,
		CancelReason:          p.CancelReason,
		ApprovedBy:            p.ApprovedBy,
		RequestedAt:           formatTime(p.RequestedAt),
		ApprovedAt:            formatTimePtr(p.ApprovedAt),
		ProcessingAt:          formatTimePtr(p.ProcessingAt),
		PaidAt:                formatTimePtr(p.PaidAt),
		FailedAt:              formatTimePtr(p.FailedAt),
		CancelledAt:           formatTimePtr(p.CancelledAt),
	}
}
