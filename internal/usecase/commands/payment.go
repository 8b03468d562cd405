package commands

import (
	"context"
	"strings"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ChooseCashPayment commits the organizer to paying at the venue. The booking
// is confirmed immediately; the owner settles the payment on match day.
func (uc *bookingUseCaseImpl) ChooseCashPayment(ctx context.Context, bookingID, organizerID uuid.UUID) (*PaymentResult, error) {
	var result *PaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, current, derr := uc.loadPayable(ctx, tx, bookingID, organizerID)
		if derr != nil {
			return derr
		}
		if current != nil {
			return errs.Wrap(errs.ErrInvalidPaymentState, "a "+current.Method().String()+" payment is already "+current.Status().String())
		}

		now := uc.now()
		p, derr := payment.New(b.ID(), payment.MethodCash, b.TotalCost().Cents(), now)
		if derr != nil {
			return derr
		}
		if _, derr = tx.Payments().Create(ctx, tx.DB(), p); derr != nil {
			return derr
		}
		if derr = b.Confirm(now); derr != nil {
			return derr
		}
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); derr != nil {
			return derr
		}

		turf, derr := tx.Reads().TurfByID(ctx, b.TurfID())
		if derr != nil {
			return derr
		}

		result = &PaymentResult{
			Outcome: shared.Outcome{
				BookingID:     b.ID(),
				Status:        b.Status(),
				Message:       "Booking confirmed. Pay " + b.TotalCost().String() + " in cash at the venue.",
				Notifications: []shared.Notification{cashSelectedNotice(b, turf)},
			},
			PaymentID:     p.ID(),
			Method:        p.Method(),
			PaymentStatus: p.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, classifyErr(err)
	}

	uc.dispatch(ctx, &result.Outcome)
	return result, nil
}

// StartOnlinePayment opens an online payment and hands it to billing after
// commit. Retrying while the online payment is still pending re-dispatches it.
func (uc *bookingUseCaseImpl) StartOnlinePayment(ctx context.Context, bookingID, organizerID uuid.UUID) (*PaymentResult, error) {
	var (
		result *PaymentResult
		req    shared.PaymentRequest
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, current, derr := uc.loadPayable(ctx, tx, bookingID, organizerID)
		if derr != nil {
			return derr
		}

		p := current
		switch {
		case current == nil:
			p, derr = payment.New(b.ID(), payment.MethodOnline, b.TotalCost().Cents(), uc.now())
			if derr != nil {
				return derr
			}
			if _, derr = tx.Payments().Create(ctx, tx.DB(), p); derr != nil {
				return derr
			}
		case current.Method() == payment.MethodOnline && current.Status() == payment.StatusPending:
			// resume the open attempt
		default:
			return errs.Wrap(errs.ErrInvalidPaymentState, "a "+current.Method().String()+" payment is already "+current.Status().String())
		}

		req = shared.PaymentRequest{
			BookingID:   b.ID(),
			PaymentID:   p.ID(),
			AmountCents: p.AmountCents(),
			Method:      p.Method(),
		}
		result = &PaymentResult{
			Outcome: shared.Outcome{
				BookingID: b.ID(),
				Status:    b.Status(),
				Message:   "Redirecting to payment.",
			},
			PaymentID:     p.ID(),
			Method:        p.Method(),
			PaymentStatus: p.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, classifyErr(err)
	}

	if derr := uc.billing.Dispatch(ctx, req); derr != nil {
		uc.logger.ErrorContext(ctx, "billing dispatch failed",
			"booking_id", bookingID.String(),
			"payment_id", req.PaymentID.String(),
			"error", derr.Error(),
		)
		result.Message = "Payment could not be started. Please try again."
		return result, nil
	}
	result.Dispatched = true
	return result, nil
}

// loadPayable locks an approved, not yet started booking of the organizer and
// returns its live payment. Failed payments do not count as live.
func (uc *bookingUseCaseImpl) loadPayable(
	ctx context.Context,
	tx shared.Tx,
	bookingID, organizerID uuid.UUID,
) (*booking.Booking, *payment.Payment, error) {
	b, err := uc.loadOrganized(ctx, tx, bookingID, organizerID)
	if err != nil {
		return nil, nil, err
	}
	if b.Status() != booking.StatusApproved {
		return nil, nil, errs.Wrap(errs.ErrInvalidState, "booking is "+b.Status().String()+", expected approved")
	}
	if b.HasStarted(uc.now(), uc.loc()) {
		return nil, nil, errs.Wrap(errs.ErrTooLate, "payment window closed at match start")
	}

	payments, err := tx.Payments().ListByBooking(ctx, tx.DB(), b.ID(), true)
	if err != nil {
		return nil, nil, err
	}
	current := payment.Current(payments)
	if current != nil && current.Status() == payment.StatusFailed {
		current = nil
	}
	return b, current, nil
}

// RecordOnlinePayment applies the billing gateway's verdict on the current
// online payment.
func (uc *bookingUseCaseImpl) RecordOnlinePayment(ctx context.Context, bookingID uuid.UUID, transactionRef string, succeeded bool) (*PaymentResult, error) {
	transactionRef = strings.TrimSpace(transactionRef)

	var result *PaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().GetForUpdate(ctx, tx.DB(), bookingID)
		if derr != nil {
			return derr
		}
		payments, derr := tx.Payments().ListByBooking(ctx, tx.DB(), b.ID(), true)
		if derr != nil {
			return derr
		}
		current := payment.Current(payments)
		if current == nil || current.Method() != payment.MethodOnline {
			return errs.Wrap(errs.ErrInvalidPaymentState, "no online payment in progress")
		}
		if current.Status() == payment.StatusCompleted && succeeded {
			return errs.Wrap(errs.ErrAlreadyPaid, "online payment already recorded")
		}

		var ref *string
		if transactionRef != "" {
			ref = &transactionRef
		}

		now := uc.now()
		if !succeeded {
			if derr = current.Fail(ref, now); derr != nil {
				return derr
			}
			if derr = tx.Payments().UpdateStatus(ctx, tx.DB(), current); derr != nil {
				return derr
			}
			result = &PaymentResult{
				Outcome: shared.Outcome{
					BookingID:     b.ID(),
					Status:        b.Status(),
					Message:       "Payment failed.",
					Notifications: []shared.Notification{paymentFailedNotice(b)},
				},
				PaymentID:     current.ID(),
				Method:        current.Method(),
				PaymentStatus: current.Status(),
			}
			return nil
		}

		if !b.Status().HoldsSlot() {
			return errs.Wrap(errs.ErrInvalidState, "booking is "+b.Status().String()+", payment cannot be applied")
		}
		if derr = current.Complete(ref, now); derr != nil {
			return derr
		}
		if derr = tx.Payments().UpdateStatus(ctx, tx.DB(), current); derr != nil {
			return derr
		}
		if derr = b.Confirm(now); derr != nil {
			return derr
		}
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		b.MarkPaid(now)
		if derr = tx.Bookings().UpdatePaymentFlag(ctx, tx.DB(), b); derr != nil {
			return derr
		}

		result = &PaymentResult{
			Outcome: shared.Outcome{
				BookingID:     b.ID(),
				Status:        b.Status(),
				Message:       "Payment completed. Booking confirmed.",
				Notifications: []shared.Notification{paymentCompletedNotice(b)},
			},
			PaymentID:     current.ID(),
			Method:        current.Method(),
			PaymentStatus: current.Status(),
		}
		return nil
	})
	if err != nil {
		return nil, classifyErr(err)
	}

	uc.dispatch(ctx, &result.Outcome)
	return result, nil
}
