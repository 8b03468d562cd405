package booking

import (
	"time"

	"turf-booking/internal/domain/payment"
)

const (
	DefaultRefundWindow  = 24 * time.Hour
	DefaultPaymentWindow = 24 * time.Hour
)

// Policy carries venue-wide lifecycle rules.
type Policy struct {
	Location       *time.Location
	RefundWindow   time.Duration
	PaymentWindow  time.Duration
	RefundTimeline string
}

func DefaultPolicy(loc *time.Location) Policy {
	return Policy{
		Location:       loc,
		RefundWindow:   DefaultRefundWindow,
		PaymentWindow:  DefaultPaymentWindow,
		RefundTimeline: "5-7 business days",
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// Loc returns the venue location, UTC when unset.
func (p Policy) Loc() *time.Location {
	return p.location()
}

func (p Policy) refundWindow() time.Duration {
	if p.RefundWindow <= 0 {
		return DefaultRefundWindow
	}
	return p.RefundWindow
}

// PaymentDeadline is when an approved booking should be paid: the payment
// window after approval, capped at the start of the match.
func (p Policy) PaymentDeadline(b *Booking, approvedAt time.Time) time.Time {
	window := p.PaymentWindow
	if window <= 0 {
		window = DefaultPaymentWindow
	}
	deadline := approvedAt.Add(window)
	if start := b.StartsAt(p.location()); start.Before(deadline) {
		return start
	}
	return deadline
}

type RefundDecision struct {
	Eligible        bool
	AmountCents     int64
	Deadline        time.Time
	HoursUntilStart float64
	Timeline        string
}

// DecideRefund evaluates refund eligibility at now. The payment must be a
// completed, non-cash payment and now must not be later than start minus the
// refund window. A nil payment is never eligible.
func (p Policy) DecideRefund(b *Booking, current *payment.Payment, now time.Time) RefundDecision {
	start := b.StartsAt(p.location())
	decision := RefundDecision{
		Deadline:        start.Add(-p.refundWindow()),
		HoursUntilStart: start.Sub(now).Hours(),
	}
	if current == nil || current.IsCash() || current.Status() != payment.StatusCompleted {
		return decision
	}
	if now.After(decision.Deadline) {
		return decision
	}
	decision.Eligible = true
	decision.AmountCents = b.totalCost.Cents()
	decision.Timeline = p.RefundTimeline
	return decision
}
