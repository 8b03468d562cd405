package commands

import (
	"context"
	"fmt"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/user"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Approve grants the slot to a pending booking and rejects every pending
// booking that overlaps it, atomically. Concurrent approvals on the same turf
// and day are serialized by an advisory lock; the first one wins.
func (uc *bookingUseCaseImpl) Approve(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*ApprovalResult, error) {
	var result *ApprovalResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// turf and date never change, so an unlocked read is enough to pick the lock key
		peek, derr := tx.Bookings().Get(ctx, tx.DB(), bookingID)
		if derr != nil {
			return derr
		}
		if derr = tx.Bookings().LockTurfDay(ctx, tx.DB(), peek.TurfID(), peek.Date()); derr != nil {
			return derr
		}

		b, turf, derr := uc.loadOwned(ctx, tx, bookingID, actorID, role)
		if derr != nil {
			return derr
		}

		now := uc.now()
		if derr = b.CanDecide(now, uc.loc()); derr != nil {
			return derr
		}

		held, derr := uc.resolver.FindConflictIDs(ctx, tx, shared.ConflictQuery{
			TurfID:    b.TurfID(),
			Date:      b.Date(),
			Interval:  b.Interval(),
			Statuses:  booking.HardConflictStatuses,
			ExcludeID: b.ID(),
		})
		if derr != nil {
			return derr
		}
		if len(held) > 0 {
			return errs.WithDetail(
				errs.Wrap(errs.ErrSlotTaken, "slot already approved for another booking"),
				fmt.Sprintf("conflicting bookings: %v", held),
			)
		}

		if derr = b.Approve(now, uc.loc()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); derr != nil {
			return derr
		}

		rejected, notices, derr := uc.cascadeReject(ctx, tx, b)
		if derr != nil {
			return derr
		}

		deadline := uc.services.Policy.PaymentDeadline(b, now)
		notices = append([]shared.Notification{approvedNotice(b, turf, deadline)}, notices...)

		result = &ApprovalResult{
			Outcome: shared.Outcome{
				BookingID:     b.ID(),
				Status:        b.Status(),
				Message:       approvalMessage(len(rejected)),
				Notifications: notices,
			},
			RejectedConflicts: rejected,
			PaymentDeadline:   deadline,
		}
		return nil
	})
	if err != nil {
		return nil, classifyErr(err)
	}

	uc.dispatch(ctx, &result.Outcome)
	uc.logger.InfoContext(ctx, "booking approved",
		"booking_id", bookingID.String(),
		"cascade_rejected", len(result.RejectedConflicts),
	)
	return result, nil
}

// cascadeReject rejects the pending bookings overlapping an approved one.
func (uc *bookingUseCaseImpl) cascadeReject(ctx context.Context, tx shared.Tx, approved *booking.Booking) ([]uuid.UUID, []shared.Notification, error) {
	pending, err := uc.resolver.FindConflicts(ctx, tx, shared.ConflictQuery{
		TurfID:    approved.TurfID(),
		Date:      approved.Date(),
		Interval:  approved.Interval(),
		Statuses:  booking.SoftConflictStatuses,
		ExcludeID: approved.ID(),
		Lock:      true,
	})
	if err != nil {
		return nil, nil, err
	}

	now := uc.now()
	ids := make([]uuid.UUID, 0, len(pending))
	notices := make([]shared.Notification, 0, len(pending))
	for _, c := range pending {
		if err := c.RejectAsConflict(now); err != nil {
			return nil, nil, err
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), c); err != nil {
			return nil, nil, err
		}
		ids = append(ids, c.ID())
		notices = append(notices, conflictRejectedNotice(c))
	}
	return ids, notices, nil
}

func (uc *bookingUseCaseImpl) Reject(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role, reason string) (*shared.Outcome, error) {
	var result *shared.Outcome
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, turf, derr := uc.loadOwned(ctx, tx, bookingID, actorID, role)
		if derr != nil {
			return derr
		}
		if derr = b.Reject(reason, uc.now(), uc.loc()); derr != nil {
			return derr
		}
		if derr = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); derr != nil {
			return derr
		}

		result = &shared.Outcome{
			BookingID:     b.ID(),
			Status:        b.Status(),
			Message:       "Booking rejected.",
			Notifications: []shared.Notification{rejectedNotice(b, turf, reason)},
		}
		return nil
	})
	if err != nil {
		return nil, classifyErr(err)
	}

	uc.dispatch(ctx, result)
	return result, nil
}

func approvalMessage(rejected int) string {
	switch rejected {
	case 0:
		return "Booking approved."
	case 1:
		return "Booking approved. 1 overlapping request was rejected."
	default:
		return fmt.Sprintf("Booking approved. %d overlapping requests were rejected.", rejected)
	}
}
