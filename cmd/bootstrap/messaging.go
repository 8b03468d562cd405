package bootstrap

import (
	"context"
	"log/slog"

	"turf-booking/internal/infra/messaging"
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewMessaging,
	),
)

type MessagingResult struct {
	fx.Out

	Notifier shared.Notifier
	Billing  shared.BillingDispatcher
}

// NewMessaging publishes to RabbitMQ when AMQP_URL is set and falls back to
// the log sinks otherwise.
func NewMessaging(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (MessagingResult, error) {
	if cfg.AMQP.URL == "" {
		logger.Warn("AMQP_URL not set, notifications and billing requests go to the log")
		return MessagingResult{
			Notifier: messaging.NewLogNotifier(logger),
			Billing:  messaging.NewLogBillingDispatcher(logger),
		}, nil
	}

	pub, err := messaging.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
	if err != nil {
		return MessagingResult{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return MessagingResult{
		Notifier: messaging.NewNotifier(pub),
		Billing:  messaging.NewBillingDispatcher(pub),
	}, nil
}
