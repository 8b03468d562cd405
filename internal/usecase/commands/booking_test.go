//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/domain/user"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/commands"
	"turf-booking/internal/usecase/shared"
	"turf-booking/tests/common/builder"
	"turf-booking/tests/fake"
	mock_shared "turf-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	// matchDay hosts every staged booking; the suite clock starts two days earlier.
	matchDay  = time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	suiteTime = time.Date(2025, time.January, 8, 12, 0, 0, 0, time.UTC)
)

type sentNotification struct {
	recipient uuid.UUID
	message   shared.Message
}

type bookingCommandsSuite struct {
	suite.Suite
	ctx context.Context

	ctrl     *gomock.Controller
	store    *fake.Store
	clock    *clock.MockClock
	notifier *mock_shared.MockNotifier
	billing  *mock_shared.MockBillingDispatcher
	sent     []sentNotification
	uc       commands.BookingCommands

	turf        *shared.TurfSnapshot
	organizerID uuid.UUID
}

func TestBookingCommands(t *testing.T) {
	suite.Run(t, new(bookingCommandsSuite))
}

func (s *bookingCommandsSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.store = fake.NewStore()
	s.clock = clock.NewMockClock(suiteTime)
	s.notifier = mock_shared.NewMockNotifier(s.ctrl)
	s.billing = mock_shared.NewMockBillingDispatcher(s.ctrl)
	s.sent = nil

	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID uuid.UUID, msg shared.Message) error {
			s.sent = append(s.sent, sentNotification{recipient: userID, message: msg})
			return nil
		}).
		AnyTimes()

	s.turf = &shared.TurfSnapshot{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Name:            "Centre Court",
		HourlyRateCents: 150000,
	}
	s.store.AddTurf(s.turf)
	s.organizerID = uuid.New()

	s.uc = s.newUseCase(s.notifier)
}

func (s *bookingCommandsSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *bookingCommandsSuite) newUseCase(notifier shared.Notifier) commands.BookingCommands {
	services := &booking.Services{
		Clock:           s.clock,
		PriceCalculator: booking.NewDefaultPriceCalculator(),
		Policy:          booking.DefaultPolicy(time.UTC),
	}
	return commands.NewBookingUseCase(fake.NewUoW(s.store), services, notifier, s.billing, nil)
}

// stage stores a booking on the suite turf and match day.
func (s *bookingCommandsSuite) stage(startHour, endHour int, status booking.Status, mutate ...func(*builder.BookingBuilder)) *booking.Booking {
	bb := builder.NewBookingBuilder().
		WithTurf(s.turf.ID, s.turf.OwnerID).
		WithOrganizerID(uuid.New()).
		WithDate(matchDay).
		WithSlot(startHour, endHour).
		WithTotalCostCents(int64(endHour-startHour) * s.turf.HourlyRateCents).
		WithStatus(status).
		WithCreatedAt(suiteTime.Add(-time.Hour))
	for _, m := range mutate {
		bb.With(m)
	}
	b := bb.BuildDomain()
	s.store.AddBooking(b)
	return b
}

func (s *bookingCommandsSuite) stagePayment(b *booking.Booking, method payment.Method, status payment.Status) *payment.Payment {
	p := builder.NewPaymentBuilder().
		WithBookingID(b.ID()).
		WithMethod(method).
		WithStatus(status).
		WithAmountCents(b.TotalCost().Cents()).
		WithTimes(suiteTime.Add(-time.Hour), suiteTime.Add(-time.Hour)).
		BuildDomain()
	s.store.AddPayment(p)
	return p
}

func (s *bookingCommandsSuite) requireErrIs(err, target error) {
	s.T().Helper()
	s.Require().Error(err)
	s.Require().True(errs.Is(err, target), "expected %v, got %v", target, err)
}

func (s *bookingCommandsSuite) sentKinds() map[shared.NotificationKind]uuid.UUID {
	kinds := make(map[shared.NotificationKind]uuid.UUID, len(s.sent))
	for _, n := range s.sent {
		kinds[n.message.Kind] = n.recipient
	}
	return kinds
}

// =============================================================================
// CreateBooking
// =============================================================================

func (s *bookingCommandsSuite) TestCreateBooking() {
	in := func(start, end int) commands.CreateBookingInput {
		return commands.CreateBookingInput{
			TurfID:   s.turf.ID,
			Date:     matchDay,
			Start:    booking.TimeOfDay(start * 60),
			End:      booking.TimeOfDay(end * 60),
			Audience: 22,
		}
	}

	s.Run("stores a pending request and notifies the owner", func() {
		extra, err := booking.NewExtraService("Floodlights", 50000)
		s.Require().NoError(err)
		req := in(18, 20)
		req.Extras = []booking.ExtraService{extra}

		result, err := s.uc.CreateBooking(s.ctx, s.organizerID, req)

		s.Require().NoError(err)
		s.Equal(booking.StatusPending, result.Status)
		s.Equal(int64(2*150000+50000), result.TotalCostCents)
		s.Equal(1, result.Delivered)

		stored := s.store.Booking(result.BookingID)
		s.Require().NotNil(stored)
		s.Equal(s.organizerID, stored.OrganizerID())
		s.Equal(booking.PaymentFlagUnpaid, stored.PaymentFlag())
		s.Equal(s.turf.OwnerID, s.sentKinds()[shared.KindBookingRequested])
	})

	s.Run("pending overlaps are allowed", func() {
		s.stage(10, 12, booking.StatusPending)

		_, err := s.uc.CreateBooking(s.ctx, s.organizerID, in(11, 13))

		s.NoError(err)
	})

	s.Run("an approved overlap takes the slot", func() {
		s.stage(10, 12, booking.StatusApproved)
		commitsBefore := s.store.Commits

		_, err := s.uc.CreateBooking(s.ctx, s.organizerID, in(11, 13))

		s.requireErrIs(err, errs.ErrSlotTaken)
		s.Equal(commitsBefore, s.store.Commits)
	})

	s.Run("touching an approved slot is fine", func() {
		s.stage(10, 12, booking.StatusConfirmed)

		_, err := s.uc.CreateBooking(s.ctx, s.organizerID, in(12, 14))

		s.NoError(err)
	})

	s.Run("unknown turf", func() {
		req := in(10, 12)
		req.TurfID = uuid.New()

		_, err := s.uc.CreateBooking(s.ctx, s.organizerID, req)

		s.requireErrIs(err, errs.ErrNotFound)
	})

	s.Run("invalid slot", func() {
		_, err := s.uc.CreateBooking(s.ctx, s.organizerID, in(20, 25))
		s.requireErrIs(err, errs.ErrInvalidTimeSlot)

		_, err = s.uc.CreateBooking(s.ctx, s.organizerID, in(10, 15))
		s.requireErrIs(err, errs.ErrInvalidTimeSlot)
	})

	s.Run("store failure is a persistence error", func() {
		s.store.FailOn("Bookings.Create", errors.New("connection reset"))
		defer s.store.FailOn("Bookings.Create", nil)

		_, err := s.uc.CreateBooking(s.ctx, s.organizerID, in(7, 8))

		s.requireErrIs(err, errs.ErrPersistence)
	})
}

// =============================================================================
// Notifications
// =============================================================================

func (s *bookingCommandsSuite) TestNotificationFailuresAreSwallowed() {
	failing := mock_shared.NewMockNotifier(s.ctrl)
	failing.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp unavailable")).
		Times(2)
	uc := s.newUseCase(failing)

	pending := s.stage(10, 12, booking.StatusPending)
	rival := s.stage(11, 13, booking.StatusPending)

	result, err := uc.Approve(s.ctx, pending.ID(), s.turf.OwnerID, user.RoleOwner)

	s.Require().NoError(err)
	s.Equal(0, result.Delivered)
	s.Len(result.Notifications, 2)
	s.Equal(booking.StatusApproved, s.store.Booking(pending.ID()).Status())
	s.Equal(booking.StatusRejected, s.store.Booking(rival.ID()).Status())
}
