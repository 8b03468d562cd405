//go:build unit

package commands_test

import (
	"errors"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/user"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"
	"turf-booking/tests/common/builder"

	"github.com/google/uuid"
)

// =============================================================================
// Approve
// =============================================================================

func (s *bookingCommandsSuite) TestApprove_CascadesToOverlappingPending() {
	target := s.stage(10, 12, booking.StatusPending)
	overlapping := s.stage(11, 13, booking.StatusPending)
	contained := s.stage(10, 11, booking.StatusPending)
	touching := s.stage(12, 14, booking.StatusPending)
	otherDay := s.stage(10, 12, booking.StatusPending, func(b *builder.BookingBuilder) {
		b.WithDate(matchDay.AddDate(0, 0, 1))
	})

	result, err := s.uc.Approve(s.ctx, target.ID(), s.turf.OwnerID, user.RoleOwner)

	s.Require().NoError(err)
	s.Equal(booking.StatusApproved, result.Status)
	s.ElementsMatch([]uuid.UUID{overlapping.ID(), contained.ID()}, result.RejectedConflicts)
	s.Equal("Booking approved. 2 overlapping requests were rejected.", result.Message)
	s.Equal(time.Date(2025, time.January, 9, 12, 0, 0, 0, time.UTC), result.PaymentDeadline)

	s.Equal(booking.StatusApproved, s.store.Booking(target.ID()).Status())
	for _, id := range result.RejectedConflicts {
		rejected := s.store.Booking(id)
		s.Equal(booking.StatusRejected, rejected.Status())
		s.Require().NotNil(rejected.Reason())
		s.Equal(booking.ConflictRejectionReason, *rejected.Reason())
	}
	s.Equal(booking.StatusPending, s.store.Booking(touching.ID()).Status())
	s.Equal(booking.StatusPending, s.store.Booking(otherDay.ID()).Status())
	s.False(s.store.HeldOverlaps())

	s.Equal([]string{s.turf.ID.String() + "|2025-01-10"}, s.store.Locks)
	s.Equal(3, s.store.LockedForUpdate, "pending rows of the day are row-locked")

	s.Equal(3, result.Delivered)
	recipients := map[uuid.UUID]shared.NotificationKind{}
	for _, n := range s.sent {
		recipients[n.recipient] = n.message.Kind
	}
	s.Equal(shared.KindBookingApproved, recipients[target.OrganizerID()])
	s.Equal(shared.KindRejectedConflict, recipients[overlapping.OrganizerID()])
	s.Equal(shared.KindRejectedConflict, recipients[contained.OrganizerID()])
}

func (s *bookingCommandsSuite) TestApprove_HardConflict() {
	target := s.stage(10, 12, booking.StatusPending)
	s.stage(11, 13, booking.StatusConfirmed)
	rival := s.stage(9, 11, booking.StatusPending)

	_, err := s.uc.Approve(s.ctx, target.ID(), s.turf.OwnerID, user.RoleOwner)

	s.requireErrIs(err, errs.ErrSlotTaken)
	s.Equal(booking.StatusPending, s.store.Booking(target.ID()).Status())
	s.Equal(booking.StatusPending, s.store.Booking(rival.ID()).Status())
	s.Empty(s.sent)
}

func (s *bookingCommandsSuite) TestApprove_FirstApprovalWins() {
	first := s.stage(10, 12, booking.StatusPending)
	second := s.stage(11, 13, booking.StatusPending)

	_, err := s.uc.Approve(s.ctx, first.ID(), s.turf.OwnerID, user.RoleOwner)
	s.Require().NoError(err)

	_, err = s.uc.Approve(s.ctx, second.ID(), s.turf.OwnerID, user.RoleOwner)

	s.requireErrIs(err, errs.ErrInvalidState)
	s.False(s.store.HeldOverlaps())
}

func (s *bookingCommandsSuite) TestApprove_Guards() {
	s.Run("not found", func() {
		_, err := s.uc.Approve(s.ctx, uuid.New(), s.turf.OwnerID, user.RoleOwner)
		s.requireErrIs(err, errs.ErrNotFound)
	})

	s.Run("another owner", func() {
		b := s.stage(10, 12, booking.StatusPending)

		_, err := s.uc.Approve(s.ctx, b.ID(), uuid.New(), user.RoleOwner)

		s.requireErrIs(err, errs.ErrUnauthorized)
		s.Equal(booking.StatusPending, s.store.Booking(b.ID()).Status())
	})

	s.Run("admin bypasses ownership", func() {
		b := s.stage(10, 12, booking.StatusPending)

		_, err := s.uc.Approve(s.ctx, b.ID(), uuid.New(), user.RoleAdmin)

		s.NoError(err)
	})

	s.Run("not pending", func() {
		b := s.stage(10, 12, booking.StatusRejected)

		_, err := s.uc.Approve(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.requireErrIs(err, errs.ErrInvalidState)
	})

	s.Run("after start the booking stays pending", func() {
		b := s.stage(10, 12, booking.StatusPending)
		s.clock.Set(time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC))

		_, err := s.uc.Approve(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.requireErrIs(err, errs.ErrTooLate)
		s.Equal(booking.StatusPending, s.store.Booking(b.ID()).Status())
	})

	s.Run("failed write rolls back the whole approval", func() {
		b := s.stage(10, 12, booking.StatusPending)
		rival := s.stage(11, 13, booking.StatusPending)
		s.store.FailOn("Bookings.UpdateStatus", errors.New("connection reset"))

		_, err := s.uc.Approve(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.requireErrIs(err, errs.ErrPersistence)
		s.Equal(booking.StatusPending, s.store.Booking(b.ID()).Status())
		s.Equal(booking.StatusPending, s.store.Booking(rival.ID()).Status())
		s.Equal(1, s.store.Rollbacks)
	})
}

// =============================================================================
// Reject
// =============================================================================

func (s *bookingCommandsSuite) TestReject() {
	s.Run("owner rejects with a reason", func() {
		b := s.stage(10, 12, booking.StatusPending)

		outcome, err := s.uc.Reject(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner, "pitch maintenance")

		s.Require().NoError(err)
		s.Equal(booking.StatusRejected, outcome.Status)
		stored := s.store.Booking(b.ID())
		s.Equal(booking.StatusRejected, stored.Status())
		s.Equal("pitch maintenance", *stored.Reason())
		s.Require().Len(s.sent, 1)
		s.Equal(b.OrganizerID(), s.sent[0].recipient)
		s.Equal(shared.KindBookingRejected, s.sent[0].message.Kind)
		s.Contains(s.sent[0].message.Body, "pitch maintenance")
	})

	s.Run("another owner", func() {
		b := s.stage(10, 12, booking.StatusPending)

		_, err := s.uc.Reject(s.ctx, b.ID(), uuid.New(), user.RoleOwner, "")

		s.requireErrIs(err, errs.ErrUnauthorized)
	})

	s.Run("already approved", func() {
		b := s.stage(10, 12, booking.StatusApproved)

		_, err := s.uc.Reject(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner, "")

		s.requireErrIs(err, errs.ErrInvalidState)
	})
}
