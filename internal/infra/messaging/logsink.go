package messaging

import (
	"context"
	"log/slog"

	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// LogNotifier stands in for the broker when no AMQP URL is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, userID uuid.UUID, msg shared.Message) error {
	n.logger.InfoContext(ctx, "notification",
		"recipient_id", userID.String(),
		"kind", string(msg.Kind),
		"booking_id", msg.BookingID.String(),
		"subject", msg.Subject,
	)
	return nil
}

type LogBillingDispatcher struct {
	logger *slog.Logger
}

func NewLogBillingDispatcher(logger *slog.Logger) *LogBillingDispatcher {
	return &LogBillingDispatcher{logger: logger}
}

func (d *LogBillingDispatcher) Dispatch(ctx context.Context, req shared.PaymentRequest) error {
	d.logger.InfoContext(ctx, "billing dispatch",
		"booking_id", req.BookingID.String(),
		"payment_id", req.PaymentID.String(),
		"amount_cents", req.AmountCents,
		"method", req.Method.String(),
	)
	return nil
}
