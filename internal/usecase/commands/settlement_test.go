//go:build unit

package commands_test

import (
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/domain/user"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"
	"turf-booking/tests/common/builder"

	"github.com/google/uuid"
)

// kickOff is the start of every 10:00 booking staged on matchDay.
var kickOff = time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC)

func (s *bookingCommandsSuite) TestConfirmCashCollected() {
	s.Run("owner settles the pending cash payment", func() {
		b := s.stage(10, 12, booking.StatusConfirmed)
		p := s.stagePayment(b, payment.MethodCash, payment.StatusPending)
		s.clock.Set(kickOff.Add(30 * time.Minute))

		result, err := s.uc.ConfirmCashCollected(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.Require().NoError(err)
		s.Equal(p.ID(), result.PaymentID)
		s.Equal(payment.StatusCompleted, result.PaymentStatus)
		s.Equal(booking.PaymentFlagPaid, s.store.Booking(b.ID()).PaymentFlag())
		s.Equal(payment.StatusCompleted, s.store.CurrentPayment(b.ID()).Status())
		s.Equal(b.OrganizerID(), s.sentKinds()[shared.KindCashCollected])

		_, err = s.uc.ConfirmCashCollected(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.requireErrIs(err, errs.ErrAlreadyPaid)
		s.Len(s.store.Payments(b.ID()), 1)
	})

	s.Run("creates the cash payment when none exists", func() {
		b := s.stage(10, 12, booking.StatusConfirmed)
		s.clock.Set(kickOff)

		result, err := s.uc.ConfirmCashCollected(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.Require().NoError(err)
		s.Equal(payment.MethodCash, result.Method)
		payments := s.store.Payments(b.ID())
		s.Require().Len(payments, 1)
		s.Equal(payment.StatusCompleted, payments[0].Status())
		s.Equal(b.TotalCost().Cents(), payments[0].AmountCents())
	})

	s.Run("before the match starts", func() {
		b := s.stage(10, 12, booking.StatusConfirmed)
		s.stagePayment(b, payment.MethodCash, payment.StatusPending)
		s.clock.Set(kickOff.Add(-time.Minute))

		_, err := s.uc.ConfirmCashCollected(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.requireErrIs(err, errs.ErrTooEarly)
		s.Equal(payment.StatusPending, s.store.CurrentPayment(b.ID()).Status())
		s.Equal(booking.PaymentFlagUnpaid, s.store.Booking(b.ID()).PaymentFlag())
	})

	s.Run("admins may settle early", func() {
		b := s.stage(10, 12, booking.StatusConfirmed)
		s.stagePayment(b, payment.MethodCash, payment.StatusPending)

		_, err := s.uc.ConfirmCashCollected(s.ctx, b.ID(), uuid.New(), user.RoleAdmin)

		s.NoError(err)
	})

	s.Run("approved without any payment is not confirmed", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.clock.Set(kickOff)

		_, err := s.uc.ConfirmCashCollected(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.requireErrIs(err, errs.ErrInvalidState)
		s.Empty(s.store.Payments(b.ID()))
	})

	s.Run("legacy approved booking paid online", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.stagePayment(b, payment.MethodOnline, payment.StatusCompleted)
		s.clock.Set(kickOff)

		_, err := s.uc.ConfirmCashCollected(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.requireErrIs(err, errs.ErrInvalidPaymentState)
	})

	s.Run("paid flag wins over a pending row", func() {
		b := s.stage(10, 12, booking.StatusConfirmed, func(bb *builder.BookingBuilder) { bb.AsPaid() })
		s.stagePayment(b, payment.MethodCash, payment.StatusPending)
		s.clock.Set(kickOff)

		_, err := s.uc.ConfirmCashCollected(s.ctx, b.ID(), s.turf.OwnerID, user.RoleOwner)

		s.requireErrIs(err, errs.ErrAlreadyPaid)
	})

	s.Run("another owner", func() {
		b := s.stage(10, 12, booking.StatusConfirmed)
		s.clock.Set(kickOff)

		_, err := s.uc.ConfirmCashCollected(s.ctx, b.ID(), uuid.New(), user.RoleOwner)

		s.requireErrIs(err, errs.ErrUnauthorized)
	})
}
