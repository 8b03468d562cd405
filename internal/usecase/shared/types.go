package shared

import (
	"turf-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type TurfSnapshot struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	HourlyRateCents int64
}

func (t *TurfSnapshot) Spec() booking.TurfSpec {
	return booking.TurfSpec{
		ID:              t.ID,
		OwnerID:         t.OwnerID,
		HourlyRateCents: t.HourlyRateCents,
	}
}

// Outcome is the transient result of a lifecycle command: what changed and
// which notifications were emitted. The request layer decides how to surface it.
type Outcome struct {
	BookingID     uuid.UUID
	Status        booking.Status
	Message       string
	Notifications []Notification
	Delivered     int
}
