package request

import (
	"turf-booking/internal/domain/booking"
	"turf-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type ExtraServiceRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"priceCents" binding:"min=0"`
}

type CreateBookingRequest struct {
	TurfID        uuid.UUID             `json:"turfId" binding:"required"`
	Date          string                `json:"date" binding:"required"`
	StartTime     string                `json:"startTime" binding:"required"`
	EndTime       string                `json:"endTime" binding:"required"`
	AudienceCount int                   `json:"audienceCount" binding:"required,min=1,max=500"`
	ExtraServices []ExtraServiceRequest `json:"extraServices,omitempty" binding:"omitempty,dive"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	start, err := booking.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	end, err := booking.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	extras := make([]booking.ExtraService, 0, len(r.ExtraServices))
	for _, e := range r.ExtraServices {
		svc, err := booking.NewExtraService(e.Name, e.PriceCents)
		if err != nil {
			return commands.CreateBookingInput{}, err
		}
		extras = append(extras, svc)
	}

	return commands.CreateBookingInput{
		TurfID:   r.TurfID,
		Date:     date,
		Start:    start,
		End:      end,
		Audience: r.AudienceCount,
		Extras:   extras,
	}, nil
}

type ReasonRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

const (
	BillingStatusSuccess = "success"
	BillingStatusFailed  = "failed"
)

type BillingCallbackRequest struct {
	BookingID      uuid.UUID `json:"bookingId" binding:"required"`
	TransactionRef string    `json:"transactionRef" binding:"max=255"`
	Status         string    `json:"status" binding:"required,oneof=success failed"`
}

func (r BillingCallbackRequest) Succeeded() bool {
	return r.Status == BillingStatusSuccess
}
