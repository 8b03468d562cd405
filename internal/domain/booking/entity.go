package booking

import (
	"time"

	"turf-booking/internal/domain/payment"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxAudience = 500

// TurfSpec is the slice of a turf the booking lifecycle needs.
type TurfSpec struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	HourlyRateCents int64
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
	Policy          Policy
}

type Booking struct {
	id          uuid.UUID
	turfID      uuid.UUID
	organizerID uuid.UUID
	date        time.Time
	interval    Interval
	audience    int
	extras      []ExtraService
	totalCost   Money
	status      Status
	reason      *string
	paymentFlag PaymentFlag
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a pending booking request for a future slot.
func NewBooking(
	services *Services,
	turf TurfSpec,
	organizerID uuid.UUID,
	date time.Time,
	interval Interval,
	audience int,
	extras []ExtraService,
) (*Booking, error) {
	if audience < 1 || audience > MaxAudience {
		return nil, errs.Wrap(errs.ErrInvalidBooking, "audience count out of range")
	}

	now := services.Clock.Now()
	date = Date(date)
	if !interval.Start().On(date, services.Policy.location()).After(now) {
		return nil, errs.Wrap(errs.ErrInvalidTimeSlot, "start time cannot be in the past")
	}

	cost := services.PriceCalculator.CalculatePriceCents(turf, interval, extras)
	if cost < 0 {
		return nil, errs.Wrap(errs.ErrInvalidBooking, "price cannot be negative")
	}

	return &Booking{
		id:          uuid.New(),
		turfID:      turf.ID,
		organizerID: organizerID,
		date:        date,
		interval:    interval,
		audience:    audience,
		extras:      append([]ExtraService(nil), extras...),
		totalCost:   NewMoney(cost),
		status:      StatusPending,
		paymentFlag: PaymentFlagUnpaid,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, turfID, organizerID uuid.UUID,
	date time.Time,
	interval Interval,
	audience int,
	extras []ExtraService,
	totalCost Money,
	status Status,
	reason *string,
	paymentFlag PaymentFlag,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		turfID:      turfID,
		organizerID: organizerID,
		date:        Date(date),
		interval:    interval,
		audience:    audience,
		extras:      extras,
		totalCost:   totalCost,
		status:      status,
		reason:      reason,
		paymentFlag: paymentFlag,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// StartsAt is the booking's start timestamp in the venue's location.
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	return b.interval.Start().On(b.date, loc)
}

func (b *Booking) EndsAt(loc *time.Location) time.Time {
	return b.interval.End().On(b.date, loc)
}

// HasStarted is true from the start instant onwards.
func (b *Booking) HasStarted(now time.Time, loc *time.Location) bool {
	return !now.Before(b.StartsAt(loc))
}

func (b *Booking) IsOrganizedBy(userID uuid.UUID) bool {
	return b.organizerID == userID
}

func (b *Booking) IsPaid() bool {
	return b.paymentFlag == PaymentFlagPaid
}

// Approve moves a pending booking to approved. Slot conflicts are checked by
// the caller against the store before this transition.
func (b *Booking) Approve(now time.Time, loc *time.Location) error {
	if err := b.guardPendingDecision(now, loc); err != nil {
		return err
	}
	b.status = StatusApproved
	b.reason = nil
	b.updatedAt = now
	return nil
}

func (b *Booking) Reject(reason string, now time.Time, loc *time.Location) error {
	if err := b.guardPendingDecision(now, loc); err != nil {
		return err
	}
	b.markRejected(reason, now)
	return nil
}

// RejectAsConflict is the cascade transition for a pending booking that lost
// its slot to an approved one. It has no timing guard.
func (b *Booking) RejectAsConflict(now time.Time) error {
	if b.status != StatusPending {
		return errs.Wrap(errs.ErrInvalidState, "only pending bookings can be rejected")
	}
	b.markRejected(ConflictRejectionReason, now)
	return nil
}

// CanDecide reports whether the owner may still approve or reject.
func (b *Booking) CanDecide(now time.Time, loc *time.Location) error {
	return b.guardPendingDecision(now, loc)
}

func (b *Booking) guardPendingDecision(now time.Time, loc *time.Location) error {
	if b.status != StatusPending {
		return errs.Wrap(errs.ErrInvalidState, "booking is "+b.status.String()+", expected pending")
	}
	if b.HasStarted(now, loc) {
		return errs.Wrap(errs.ErrTooLate, "no decision possible after the match has started")
	}
	return nil
}

func (b *Booking) markRejected(reason string, now time.Time) {
	b.status = StatusRejected
	if reason != "" {
		b.reason = &reason
	} else {
		b.reason = nil
	}
	b.updatedAt = now
}

// Cancel is only available to approved or confirmed bookings before start.
func (b *Booking) Cancel(reason string, now time.Time, loc *time.Location) error {
	if !b.status.HoldsSlot() {
		return errs.Wrap(errs.ErrInvalidState, "booking is "+b.status.String()+", expected approved or confirmed")
	}
	if b.HasStarted(now, loc) {
		return errs.Wrap(errs.ErrTooLate, "cannot cancel after the match has started")
	}
	b.status = StatusCancelled
	b.reason = &reason
	b.updatedAt = now
	return nil
}

// Confirm records that the organizer committed to a payment for an approved
// booking. Confirming a confirmed booking is a no-op.
func (b *Booking) Confirm(now time.Time) error {
	switch b.status {
	case StatusConfirmed:
		return nil
	case StatusApproved:
		b.status = StatusConfirmed
		b.updatedAt = now
		return nil
	default:
		return errs.Wrap(errs.ErrInvalidState, "booking is "+b.status.String()+", expected approved")
	}
}

func (b *Booking) MarkPaid(now time.Time) {
	b.paymentFlag = PaymentFlagPaid
	b.updatedAt = now
}

// MarkRefunded clears the paid flag once the current payment is refunded.
func (b *Booking) MarkRefunded(now time.Time) {
	b.paymentFlag = PaymentFlagUnpaid
	b.updatedAt = now
}

// IsConfirmed resolves the two "locked in" representations: the canonical
// confirmed status, and the legacy approved status with a completed payment.
func IsConfirmed(status Status, current payment.Status) bool {
	switch status {
	case StatusConfirmed:
		return true
	case StatusApproved:
		return current == payment.StatusCompleted
	default:
		return false
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) TurfID() uuid.UUID        { return b.turfID }
func (b *Booking) OrganizerID() uuid.UUID   { return b.organizerID }
func (b *Booking) Date() time.Time          { return b.date }
func (b *Booking) Interval() Interval       { return b.interval }
func (b *Booking) Audience() int            { return b.audience }
func (b *Booking) Extras() []ExtraService   { return b.extras }
func (b *Booking) TotalCost() Money         { return b.totalCost }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Reason() *string          { return b.reason }
func (b *Booking) PaymentFlag() PaymentFlag { return b.paymentFlag }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
