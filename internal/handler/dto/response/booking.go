package response

import (
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/usecase/commands"
	"turf-booking/internal/usecase/queries"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutcomeResponse struct {
	BookingID         uuid.UUID `json:"bookingId"`
	Status            string    `json:"status"`
	Message           string    `json:"message"`
	NotificationsSent int       `json:"notificationsSent"`
}

type CreateBookingResponse struct {
	OutcomeResponse
	TotalCostCents int64 `json:"totalCostCents"`
}

type ApprovalResponse struct {
	OutcomeResponse
	RejectedConflicts []uuid.UUID `json:"rejectedConflicts"`
	PaymentDeadline   time.Time   `json:"paymentDeadline"`
}

type CancellationResponse struct {
	OutcomeResponse
	RefundEligible    bool      `json:"refundEligible"`
	RefundAmountCents int64     `json:"refundAmountCents"`
	RefundDeadline    time.Time `json:"refundDeadline"`
	RefundTimeline    string    `json:"refundTimeline,omitempty"`
}

type PaymentResponse struct {
	OutcomeResponse
	PaymentID     uuid.UUID `json:"paymentId"`
	Method        string    `json:"method"`
	PaymentStatus string    `json:"paymentStatus"`
	Dispatched    bool      `json:"dispatched"`
}

type PaymentItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Method         string    `json:"method"`
	Status         string    `json:"status"`
	TransactionRef *string   `json:"transactionRef,omitempty"`
	AmountCents    int64     `json:"amountCents"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type BookingResponse struct {
	ID             uuid.UUID              `json:"id"`
	TurfID         uuid.UUID              `json:"turfId"`
	TurfName       string                 `json:"turfName"`
	OrganizerID    uuid.UUID              `json:"organizerId"`
	Date           string                 `json:"date"`
	StartTime      string                 `json:"startTime"`
	EndTime        string                 `json:"endTime"`
	AudienceCount  int                    `json:"audienceCount"`
	ExtraServices  []booking.ExtraService `json:"extraServices"`
	TotalCostCents int64                  `json:"totalCostCents"`
	Status         string                 `json:"status"`
	Reason         *string                `json:"reason,omitempty"`
	PaymentFlag    string                 `json:"paymentFlag"`
	PaymentState   string                 `json:"paymentState"`
	IsConfirmed    bool                   `json:"isConfirmed"`
	Payments       []PaymentItemResponse  `json:"payments"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type BookingListResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizerID    uuid.UUID `json:"organizerId"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	Status         string    `json:"status"`
	PaymentFlag    string    `json:"paymentFlag"`
	TotalCostCents int64     `json:"totalCostCents"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromOutcome(o shared.Outcome) OutcomeResponse {
	return OutcomeResponse{
		BookingID:         o.BookingID,
		Status:            o.Status.String(),
		Message:           o.Message,
		NotificationsSent: o.Delivered,
	}
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		OutcomeResponse: FromOutcome(r.Outcome),
		TotalCostCents:  r.TotalCostCents,
	}
}

func FromApprovalResult(r *commands.ApprovalResult) *ApprovalResponse {
	rejected := r.RejectedConflicts
	if rejected == nil {
		rejected = []uuid.UUID{}
	}
	return &ApprovalResponse{
		OutcomeResponse:   FromOutcome(r.Outcome),
		RejectedConflicts: rejected,
		PaymentDeadline:   r.PaymentDeadline,
	}
}

func FromCancellationResult(r *commands.CancellationResult) *CancellationResponse {
	return &CancellationResponse{
		OutcomeResponse:   FromOutcome(r.Outcome),
		RefundEligible:    r.RefundEligible,
		RefundAmountCents: r.RefundAmountCents,
		RefundDeadline:    r.Deadline,
		RefundTimeline:    r.RefundTimeline,
	}
}

func FromPaymentResult(r *commands.PaymentResult) *PaymentResponse {
	return &PaymentResponse{
		OutcomeResponse: FromOutcome(r.Outcome),
		PaymentID:       r.PaymentID,
		Method:          r.Method.String(),
		PaymentStatus:   r.PaymentStatus.String(),
		Dispatched:      r.Dispatched,
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	payments := make([]PaymentItemResponse, len(v.Payments))
	for i, p := range v.Payments {
		payments[i] = PaymentItemResponse{
			ID:             p.ID,
			Method:         p.Method,
			Status:         p.Status,
			TransactionRef: p.TransactionRef,
			AmountCents:    p.AmountCents,
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		}
	}
	return &BookingResponse{
		ID:             v.ID,
		TurfID:         v.TurfID,
		TurfName:       v.TurfName,
		OrganizerID:    v.OrganizerID,
		Date:           v.Date,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		AudienceCount:  v.AudienceCount,
		ExtraServices:  v.ExtraServices,
		TotalCostCents: v.TotalCostCents,
		Status:         v.Status,
		Reason:         v.Reason,
		PaymentFlag:    v.PaymentFlag,
		PaymentState:   v.PaymentState,
		IsConfirmed:    v.IsConfirmed,
		Payments:       payments,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromBookingListItems(items []*queries.BookingListItem) []BookingListResponse {
	out := make([]BookingListResponse, len(items))
	for i, it := range items {
		out[i] = BookingListResponse{
			ID:             it.ID,
			OrganizerID:    it.OrganizerID,
			StartTime:      it.StartTime,
			EndTime:        it.EndTime,
			Status:         it.Status,
			PaymentFlag:    it.PaymentFlag,
			TotalCostCents: it.TotalCostCents,
			CreatedAt:      it.CreatedAt,
		}
	}
	return out
}
