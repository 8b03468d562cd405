package commands

import (
	"context"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/domain/user"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ConfirmCashCollected records that the turf owner received cash at the venue.
// All checks and writes happen under the booking row lock, so a second
// confirmation always observes the first and fails with ErrAlreadyPaid.
func (uc *bookingUseCaseImpl) ConfirmCashCollected(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*PaymentResult, error) {
	var result *PaymentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, turf, derr := uc.loadOwned(ctx, tx, bookingID, actorID, role)
		if derr != nil {
			return derr
		}

		payments, derr := tx.Payments().ListByBooking(ctx, tx.DB(), b.ID(), true)
		if derr != nil {
			return derr
		}
		current := payment.Current(payments)

		if !booking.IsConfirmed(b.Status(), payment.StatusOf(current)) {
			return errs.Wrap(errs.ErrInvalidState, "booking is "+b.Status().String()+", expected confirmed")
		}
		if b.IsPaid() || (current != nil && current.IsCompletedCash()) {
			return errs.Wrap(errs.ErrAlreadyPaid, "cash already collected")
		}

		now := uc.now()
		if !role.IsAdmin() && !b.HasStarted(now, uc.loc()) {
			return errs.Wrap(errs.ErrTooEarly, "cash can be collected once the match has started")
		}

		if current == nil {
			created, derr := payment.New(b.ID(), payment.MethodCash, b.TotalCost().Cents(), now)
			if derr != nil {
				return derr
			}
			if _, derr = tx.Payments().Create(ctx, tx.DB(), created); derr != nil {
				return derr
			}
			current = created
		} else if !current.IsCash() || current.Status() != payment.StatusPending {
			return errs.Wrap(errs.ErrInvalidPaymentState,
				"current payment is "+current.Method().String()+"/"+current.Status().String()+", expected cash/pending")
		}

		if derr = current.Complete(nil, now); derr != nil {
			return derr
		}
		if derr = tx.Payments().UpdateStatus(ctx, tx.DB(), current); derr != nil {
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
				Message:       "Cash payment recorded.",
				Notifications: []shared.Notification{cashCollectedNotice(b, turf)},
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
