package components

import (
	"turf-booking/internal/domain/booking"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/usecase"
	"turf-booking/internal/usecase/commands"
	"turf-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewDefaultPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	NewBookingPolicy,
	func(clock clock.Clock, calc booking.PriceCalculator, policy booking.Policy) *booking.Services {
		return &booking.Services{
			Clock:           clock,
			PriceCalculator: calc,
			Policy:          policy,
		}
	},
)

func NewBookingPolicy(cfg config.Config) (booking.Policy, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return booking.Policy{}, err
	}
	policy := booking.DefaultPolicy(loc)
	policy.RefundWindow = cfg.Booking.RefundWindow
	policy.PaymentWindow = cfg.Booking.PaymentWindow
	if cfg.Booking.RefundTimeline != "" {
		policy.RefundTimeline = cfg.Booking.RefundTimeline
	}
	return policy, nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
