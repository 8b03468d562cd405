package commands

import (
	"fmt"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/usecase/shared"
)

func slotLabel(b *booking.Booking) string {
	return b.Date().Format(time.DateOnly) + " " + b.Interval().String()
}

func formatCents(cents int64) string {
	return booking.NewMoney(cents).String()
}

func notice(to *booking.Booking, kind shared.NotificationKind, subject, body string, data map[string]any) shared.Notification {
	return shared.Notification{
		RecipientID: to.OrganizerID(),
		Message: shared.Message{
			Kind:      kind,
			BookingID: to.ID(),
			Subject:   subject,
			Body:      body,
			Data:      data,
		},
	}
}

func bookingRequestedNotice(b *booking.Booking, turf *shared.TurfSnapshot) shared.Notification {
	n := notice(b, shared.KindBookingRequested,
		"New booking request",
		fmt.Sprintf("A booking for %s on %s is waiting for your decision.", slotLabel(b), turf.Name),
		map[string]any{"audience": b.Audience(), "total_cost": b.TotalCost().String()},
	)
	n.RecipientID = turf.OwnerID
	return n
}

func approvedNotice(b *booking.Booking, turf *shared.TurfSnapshot, paymentDeadline time.Time) shared.Notification {
	return notice(b, shared.KindBookingApproved,
		"Booking approved",
		fmt.Sprintf("Your booking for %s on %s was approved. Please complete payment of %s by %s.",
			slotLabel(b), turf.Name, b.TotalCost().String(), paymentDeadline.Format(time.RFC1123)),
		map[string]any{"payment_deadline": paymentDeadline},
	)
}

func rejectedNotice(b *booking.Booking, turf *shared.TurfSnapshot, reason string) shared.Notification {
	body := fmt.Sprintf("Your booking for %s on %s was rejected.", slotLabel(b), turf.Name)
	if reason != "" {
		body += " Reason: " + reason
	}
	return notice(b, shared.KindBookingRejected, "Booking rejected", body, nil)
}

func conflictRejectedNotice(b *booking.Booking) shared.Notification {
	return notice(b, shared.KindRejectedConflict,
		"Booking rejected",
		fmt.Sprintf("Your booking for %s was rejected: %s.", slotLabel(b), booking.ConflictRejectionReason),
		nil,
	)
}

func cancelledNotice(b *booking.Booking, turf *shared.TurfSnapshot, decision booking.RefundDecision) shared.Notification {
	body := fmt.Sprintf("Your booking for %s on %s was cancelled.", slotLabel(b), turf.Name)
	if decision.Eligible {
		body += fmt.Sprintf(" A refund of %s will be processed within %s.", formatCents(decision.AmountCents), decision.Timeline)
	}
	return notice(b, shared.KindBookingCancelled, "Booking cancelled", body, map[string]any{
		"refund_eligible":     decision.Eligible,
		"refund_amount_cents": decision.AmountCents,
	})
}

func ownerCancellationNotice(b *booking.Booking, turf *shared.TurfSnapshot, reason string) shared.Notification {
	n := notice(b, shared.KindCancellationNotice,
		"Booking cancelled by organizer",
		fmt.Sprintf("The booking for %s on %s was cancelled. Reason: %s", slotLabel(b), turf.Name, reason),
		nil,
	)
	n.RecipientID = turf.OwnerID
	return n
}

func cashSelectedNotice(b *booking.Booking, turf *shared.TurfSnapshot) shared.Notification {
	n := notice(b, shared.KindCashSelected,
		"Cash payment selected",
		fmt.Sprintf("The booking for %s on %s will be paid in cash (%s) at the venue.", slotLabel(b), turf.Name, b.TotalCost().String()),
		nil,
	)
	n.RecipientID = turf.OwnerID
	return n
}

func cashCollectedNotice(b *booking.Booking, turf *shared.TurfSnapshot) shared.Notification {
	return notice(b, shared.KindCashCollected,
		"Payment received",
		fmt.Sprintf("%s cash payment for %s on %s was received.", b.TotalCost().String(), slotLabel(b), turf.Name),
		nil,
	)
}

func paymentCompletedNotice(b *booking.Booking) shared.Notification {
	return notice(b, shared.KindPaymentCompleted,
		"Payment completed",
		fmt.Sprintf("Payment of %s for %s was successful. Your booking is confirmed.", b.TotalCost().String(), slotLabel(b)),
		nil,
	)
}

func paymentFailedNotice(b *booking.Booking) shared.Notification {
	return notice(b, shared.KindPaymentFailed,
		"Payment failed",
		fmt.Sprintf("Payment for %s did not go through. You can try again before the match starts.", slotLabel(b)),
		nil,
	)
}
