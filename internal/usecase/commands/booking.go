package commands

import (
	"context"
	"log/slog"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/domain/user"
	"turf-booking/internal/infra"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	TurfID   uuid.UUID
	Date     time.Time
	Start    booking.TimeOfDay
	End      booking.TimeOfDay
	Audience int
	Extras   []booking.ExtraService
}

type CreateBookingResult struct {
	shared.Outcome
	TotalCostCents int64
}

type ApprovalResult struct {
	shared.Outcome
	RejectedConflicts []uuid.UUID
	PaymentDeadline   time.Time
}

type CancellationResult struct {
	shared.Outcome
	RefundEligible    bool
	RefundAmountCents int64
	Deadline          time.Time
	RefundTimeline    string
}

type PaymentResult struct {
	shared.Outcome
	PaymentID     uuid.UUID
	Method        payment.Method
	PaymentStatus payment.Status
	// Dispatched is false when the billing hand-off failed after commit.
	Dispatched bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, organizerID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error)
	Approve(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*ApprovalResult, error)
	Reject(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role, reason string) (*shared.Outcome, error)
	Cancel(ctx context.Context, bookingID, organizerID uuid.UUID, reason string) (*CancellationResult, error)
	ConfirmCashCollected(ctx context.Context, bookingID, actorID uuid.UUID, role user.Role) (*PaymentResult, error)
	ChooseCashPayment(ctx context.Context, bookingID, organizerID uuid.UUID) (*PaymentResult, error)
	StartOnlinePayment(ctx context.Context, bookingID, organizerID uuid.UUID) (*PaymentResult, error)
	RecordOnlinePayment(ctx context.Context, bookingID uuid.UUID, transactionRef string, succeeded bool) (*PaymentResult, error)
}

type bookingUseCaseImpl struct {
	uow           shared.UnitOfWork
	services      *booking.Services
	resolver      *shared.ConflictResolver
	notifications *shared.NotificationDispatcher
	billing       shared.BillingDispatcher
	logger        *slog.Logger
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	services *booking.Services,
	notifier shared.Notifier,
	billing shared.BillingDispatcher,
	logger *slog.Logger,
) BookingCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingUseCaseImpl{
		uow:           uow,
		services:      services,
		resolver:      shared.NewConflictResolver(),
		notifications: shared.NewNotificationDispatcher(notifier, logger),
		billing:       billing,
		logger:        logger,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, organizerID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error) {
	interval, err := booking.NewInterval(in.Start, in.End)
	if err != nil {
		return nil, err
	}

	var result *CreateBookingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		turf, derr := tx.Reads().TurfByID(ctx, in.TurfID)
		if derr != nil {
			return derr
		}

		b, derr := booking.NewBooking(uc.services, turf.Spec(), organizerID, in.Date, interval, in.Audience, in.Extras)
		if derr != nil {
			return derr
		}

		taken, derr := uc.resolver.FindConflictIDs(ctx, tx, shared.ConflictQuery{
			TurfID:   b.TurfID(),
			Date:     b.Date(),
			Interval: b.Interval(),
			Statuses: booking.HardConflictStatuses,
		})
		if derr != nil {
			return derr
		}
		if len(taken) > 0 {
			return errs.Wrap(errs.ErrSlotTaken, "slot "+interval.String()+" is already booked")
		}

		if _, derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}

		result = &CreateBookingResult{
			Outcome: shared.Outcome{
				BookingID:     b.ID(),
				Status:        b.Status(),
				Message:       "Booking request sent to the turf owner.",
				Notifications: []shared.Notification{bookingRequestedNotice(b, turf)},
			},
			TotalCostCents: b.TotalCost().Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, classifyErr(err)
	}

	uc.dispatch(ctx, &result.Outcome)
	return result, nil
}

// loadOwned locks the booking and checks the actor owns its turf. Admins
// bypass ownership but not existence.
func (uc *bookingUseCaseImpl) loadOwned(
	ctx context.Context,
	tx shared.Tx,
	bookingID, actorID uuid.UUID,
	role user.Role,
) (*booking.Booking, *shared.TurfSnapshot, error) {
	b, err := tx.Bookings().GetForUpdate(ctx, tx.DB(), bookingID)
	if err != nil {
		return nil, nil, err
	}
	turf, err := tx.Reads().TurfByID(ctx, b.TurfID())
	if err != nil {
		return nil, nil, err
	}
	if !role.IsAdmin() && turf.OwnerID != actorID {
		return nil, nil, errs.Wrap(errs.ErrUnauthorized, "turf is owned by another user")
	}
	return b, turf, nil
}

func (uc *bookingUseCaseImpl) loadOrganized(
	ctx context.Context,
	tx shared.Tx,
	bookingID, organizerID uuid.UUID,
) (*booking.Booking, error) {
	b, err := tx.Bookings().GetForUpdate(ctx, tx.DB(), bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsOrganizedBy(organizerID) {
		return nil, errs.Wrap(errs.ErrUnauthorized, "booking belongs to another organizer")
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) now() time.Time {
	return uc.services.Clock.Now()
}

func (uc *bookingUseCaseImpl) loc() *time.Location {
	return uc.services.Policy.Loc()
}

func (uc *bookingUseCaseImpl) dispatch(ctx context.Context, outcome *shared.Outcome) {
	outcome.Delivered = uc.notifications.Dispatch(ctx, outcome.Notifications)
}

var lifecycleErrors = []error{
	errs.ErrNotFound,
	errs.ErrUnauthorized,
	errs.ErrInvalidState,
	errs.ErrSlotTaken,
	errs.ErrTooLate,
	errs.ErrTooEarly,
	errs.ErrAlreadyPaid,
	errs.ErrInvalidPaymentState,
	errs.ErrInvalidTimeSlot,
	errs.ErrInvalidBooking,
}

// classifyErr maps an error escaping a transaction onto the lifecycle
// taxonomy. Anything unrecognized is a persistence failure.
func classifyErr(err error) error {
	for _, target := range lifecycleErrors {
		if errs.Is(err, target) {
			return err
		}
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		// exclusion constraint backstop on overlapping held slots
		return errs.Mark(err, errs.ErrSlotTaken)
	default:
		return errs.Mark(err, errs.ErrPersistence)
	}
}
