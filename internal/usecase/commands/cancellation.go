package commands

import (
	"context"
	"strings"

	"turf-booking/internal/domain/payment"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultCancelReason = "cancelled by organizer"

// Cancel releases an approved or confirmed slot. A completed online payment is
// refunded in the same transaction when the cancellation is early enough.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID, organizerID uuid.UUID, reason string) (*CancellationResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = defaultCancelReason
	}

	var result *CancellationResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := uc.loadOrganized(ctx, tx, bookingID, organizerID)
		if derr != nil {
			return derr
		}

		payments, derr := tx.Payments().ListByBooking(ctx, tx.DB(), b.ID(), true)
		if derr != nil {
			return derr
		}
		current := payment.Current(payments)

		now := uc.now()
		decision := uc.services.Policy.DecideRefund(b, current, now)

		if derr = b.Cancel(reason, now, uc.loc()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); derr != nil {
			return derr
		}
		if decision.Eligible {
			if derr = current.Refund(now); derr != nil {
				return derr
			}
			if derr = tx.Payments().UpdateStatus(ctx, tx.DB(), current); derr != nil {
				return derr
			}
			b.MarkRefunded(now)
			if derr = tx.Bookings().UpdatePaymentFlag(ctx, tx.DB(), b); derr != nil {
				return derr
			}
		}

		turf, derr := tx.Reads().TurfByID(ctx, b.TurfID())
		if derr != nil {
			return derr
		}

		message := "Booking cancelled. No refund applies."
		if decision.Eligible {
			message = "Booking cancelled. Refund of " + formatCents(decision.AmountCents) +
				" will be processed within " + decision.Timeline + "."
		}

		result = &CancellationResult{
			Outcome: shared.Outcome{
				BookingID: b.ID(),
				Status:    b.Status(),
				Message:   message,
				Notifications: []shared.Notification{
					cancelledNotice(b, turf, decision),
					ownerCancellationNotice(b, turf, reason),
				},
			},
			RefundEligible:    decision.Eligible,
			RefundAmountCents: decision.AmountCents,
			Deadline:          decision.Deadline,
			RefundTimeline:    decision.Timeline,
		}
		return nil
	})
	if err != nil {
		return nil, classifyErr(err)
	}

	uc.dispatch(ctx, &result.Outcome)
	return result, nil
}
