package shared

import (
	"context"
	"log/slog"

	"turf-booking/internal/domain/payment"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	KindBookingRequested   NotificationKind = "booking_requested"
	KindBookingApproved    NotificationKind = "booking_approved"
	KindBookingRejected    NotificationKind = "booking_rejected"
	KindRejectedConflict   NotificationKind = "booking_rejected_conflict"
	KindBookingCancelled   NotificationKind = "booking_cancelled"
	KindCancellationNotice NotificationKind = "booking_cancellation_notice"
	KindCashSelected       NotificationKind = "cash_payment_selected"
	KindCashCollected      NotificationKind = "cash_collected"
	KindPaymentCompleted   NotificationKind = "payment_completed"
	KindPaymentFailed      NotificationKind = "payment_failed"
)

type Message struct {
	Kind      NotificationKind `json:"kind"`
	BookingID uuid.UUID        `json:"booking_id"`
	Subject   string           `json:"subject"`
	Body      string           `json:"body"`
	Data      map[string]any   `json:"data,omitempty"`
}

type Notification struct {
	RecipientID uuid.UUID
	Message     Message
}

// Notifier delivers a message to a user. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, msg Message) error
}

type PaymentRequest struct {
	BookingID   uuid.UUID      `json:"booking_id"`
	PaymentID   uuid.UUID      `json:"payment_id"`
	AmountCents int64          `json:"amount_cents"`
	Method      payment.Method `json:"method"`
}

// BillingDispatcher hands a payment to the external gateway flow.
type BillingDispatcher interface {
	Dispatch(ctx context.Context, req PaymentRequest) error
}

// NotificationDispatcher sends post-commit notifications. Failures are logged
// and never propagated.
type NotificationDispatcher struct {
	notifier Notifier
	logger   *slog.Logger
}

func NewNotificationDispatcher(notifier Notifier, logger *slog.Logger) *NotificationDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationDispatcher{notifier: notifier, logger: logger}
}

// Dispatch returns the number of notifications delivered.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, notifications []Notification) int {
	delivered := 0
	for _, n := range notifications {
		if err := d.notifier.Notify(ctx, n.RecipientID, n.Message); err != nil {
			d.logger.WarnContext(ctx, "notification delivery failed",
				slog.String("kind", string(n.Message.Kind)),
				slog.String("booking_id", n.Message.BookingID.String()),
				slog.String("recipient_id", n.RecipientID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		delivered++
	}
	return delivered
}
