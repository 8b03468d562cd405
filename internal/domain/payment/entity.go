package payment

import (
	"slices"
	"time"

	"turf-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type Payment struct {
	id             uuid.UUID
	bookingID      uuid.UUID
	seq            int64
	method         Method
	status         Status
	transactionRef *string
	amountCents    int64
	createdAt      time.Time
	updatedAt      time.Time
}

// New starts a pending payment for a booking.
func New(bookingID uuid.UUID, method Method, amountCents int64, now time.Time) (*Payment, error) {
	if !method.IsValid() {
		return nil, errs.Wrap(errs.ErrInvalidPaymentState, "unknown payment method "+method.String())
	}
	if amountCents < 0 {
		return nil, errs.Wrap(errs.ErrInvalidPaymentState, "payment amount cannot be negative")
	}
	return &Payment{
		id:          uuid.New(),
		bookingID:   bookingID,
		method:      method,
		status:      StatusPending,
		amountCents: amountCents,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, bookingID uuid.UUID,
	seq int64,
	method Method,
	status Status,
	transactionRef *string,
	amountCents int64,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:             id,
		bookingID:      bookingID,
		seq:            seq,
		method:         method,
		status:         status,
		transactionRef: transactionRef,
		amountCents:    amountCents,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Complete moves a pending payment to completed. Timing rules for cash are
// enforced by the settlement flow, which knows the booking's start.
func (p *Payment) Complete(transactionRef *string, now time.Time) error {
	if p.status != StatusPending {
		return errs.Wrap(errs.ErrInvalidPaymentState, "only pending payments can complete")
	}
	p.status = StatusCompleted
	if transactionRef != nil {
		p.transactionRef = transactionRef
	}
	p.updatedAt = now
	return nil
}

// Refund is allowed only for completed, non-cash payments.
func (p *Payment) Refund(now time.Time) error {
	if p.method == MethodCash {
		return errs.Wrap(errs.ErrInvalidPaymentState, "cash payments have no refund path")
	}
	if p.status != StatusCompleted {
		return errs.Wrap(errs.ErrInvalidPaymentState, "only completed payments can be refunded")
	}
	p.status = StatusRefunded
	p.updatedAt = now
	return nil
}

func (p *Payment) Fail(transactionRef *string, now time.Time) error {
	if p.status != StatusPending {
		return errs.Wrap(errs.ErrInvalidPaymentState, "only pending payments can fail")
	}
	p.status = StatusFailed
	if transactionRef != nil {
		p.transactionRef = transactionRef
	}
	p.updatedAt = now
	return nil
}

func (p *Payment) IsCash() bool            { return p.method == MethodCash }
func (p *Payment) IsCompletedCash() bool   { return p.method == MethodCash && p.status == StatusCompleted }
func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) Seq() int64              { return p.seq }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) Status() Status          { return p.status }
func (p *Payment) TransactionRef() *string { return p.transactionRef }
func (p *Payment) AmountCents() int64      { return p.amountCents }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time    { return p.updatedAt }

// Current picks the authoritative row among a booking's payments: latest
// update, then latest creation, then highest insertion sequence.
func Current(payments []*Payment) *Payment {
	if len(payments) == 0 {
		return nil
	}
	return slices.MaxFunc(payments, compareRecency)
}

func compareRecency(a, b *Payment) int {
	if c := a.updatedAt.Compare(b.updatedAt); c != 0 {
		return c
	}
	if c := a.createdAt.Compare(b.createdAt); c != 0 {
		return c
	}
	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	default:
		return 0
	}
}

// StatusOf returns the status of p, or StatusNone when there is no payment.
func StatusOf(p *Payment) Status {
	if p == nil {
		return StatusNone
	}
	return p.status
}
