//go:build unit

package commands_test

import (
	"errors"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"
	"turf-booking/tests/common/builder"

	"github.com/google/uuid"
)

func (s *bookingCommandsSuite) TestCancel_Refunds() {
	// match starts 2025-01-10 18:00, refund deadline is 2025-01-09 18:00
	deadline := time.Date(2025, time.January, 9, 18, 0, 0, 0, time.UTC)

	s.Run("completed online payment 25h before start", func() {
		b := s.stage(18, 20, booking.StatusConfirmed, func(bb *builder.BookingBuilder) { bb.AsPaid() })
		p := s.stagePayment(b, payment.MethodOnline, payment.StatusCompleted)
		s.clock.Set(time.Date(2025, time.January, 9, 17, 0, 0, 0, time.UTC))

		result, err := s.uc.Cancel(s.ctx, b.ID(), b.OrganizerID(), "team unavailable")

		s.Require().NoError(err)
		s.True(result.RefundEligible)
		s.Equal(b.TotalCost().Cents(), result.RefundAmountCents)
		s.Equal(deadline, result.Deadline)
		s.Equal("5-7 business days", result.RefundTimeline)
		s.Equal(booking.StatusCancelled, result.Status)
		s.Contains(result.Message, "3000.00")

		s.Equal(booking.StatusCancelled, s.store.Booking(b.ID()).Status())
		s.Equal("team unavailable", *s.store.Booking(b.ID()).Reason())
		s.Equal(payment.StatusRefunded, s.store.CurrentPayment(b.ID()).Status())
		s.Equal(p.ID(), s.store.CurrentPayment(b.ID()).ID())
		s.Equal(booking.PaymentFlagUnpaid, s.store.Booking(b.ID()).PaymentFlag())

		kinds := s.sentKinds()
		s.Equal(b.OrganizerID(), kinds[shared.KindBookingCancelled])
		s.Equal(s.turf.OwnerID, kinds[shared.KindCancellationNotice])
		s.Equal(2, result.Delivered)
	})

	s.Run("exactly at the deadline is still refunded", func() {
		b := s.stage(18, 20, booking.StatusConfirmed)
		s.stagePayment(b, payment.MethodOnline, payment.StatusCompleted)
		s.clock.Set(deadline)

		result, err := s.uc.Cancel(s.ctx, b.ID(), b.OrganizerID(), "")

		s.Require().NoError(err)
		s.True(result.RefundEligible)
	})

	s.Run("one minute past the deadline is not refunded", func() {
		b := s.stage(18, 20, booking.StatusConfirmed, func(bb *builder.BookingBuilder) { bb.AsPaid() })
		s.stagePayment(b, payment.MethodOnline, payment.StatusCompleted)
		s.clock.Set(deadline.Add(time.Minute))

		result, err := s.uc.Cancel(s.ctx, b.ID(), b.OrganizerID(), "")

		s.Require().NoError(err)
		s.False(result.RefundEligible)
		s.Zero(result.RefundAmountCents)
		s.Equal(booking.StatusCancelled, s.store.Booking(b.ID()).Status())
		s.Equal(payment.StatusCompleted, s.store.CurrentPayment(b.ID()).Status())
		s.Equal(booking.PaymentFlagPaid, s.store.Booking(b.ID()).PaymentFlag())
	})

	s.Run("failed flag write rolls back the refund", func() {
		b := s.stage(18, 20, booking.StatusConfirmed, func(bb *builder.BookingBuilder) { bb.AsPaid() })
		s.stagePayment(b, payment.MethodOnline, payment.StatusCompleted)
		s.clock.Set(time.Date(2025, time.January, 9, 17, 0, 0, 0, time.UTC))
		s.store.FailOn("Bookings.UpdatePaymentFlag", errors.New("connection reset"))

		_, err := s.uc.Cancel(s.ctx, b.ID(), b.OrganizerID(), "")

		s.requireErrIs(err, errs.ErrPersistence)
		s.Equal(booking.StatusConfirmed, s.store.Booking(b.ID()).Status())
		s.Equal(booking.PaymentFlagPaid, s.store.Booking(b.ID()).PaymentFlag())
		s.Equal(payment.StatusCompleted, s.store.CurrentPayment(b.ID()).Status())
		s.Equal(1, s.store.Rollbacks)
	})

	s.Run("cash is never refunded", func() {
		b := s.stage(18, 20, booking.StatusConfirmed)
		s.stagePayment(b, payment.MethodCash, payment.StatusCompleted)

		result, err := s.uc.Cancel(s.ctx, b.ID(), b.OrganizerID(), "")

		s.Require().NoError(err)
		s.False(result.RefundEligible)
		s.Equal(payment.StatusCompleted, s.store.CurrentPayment(b.ID()).Status())
	})

	s.Run("no payment row still cancels", func() {
		b := s.stage(18, 20, booking.StatusApproved)

		result, err := s.uc.Cancel(s.ctx, b.ID(), b.OrganizerID(), "")

		s.Require().NoError(err)
		s.False(result.RefundEligible)
		s.Equal("Booking cancelled. No refund applies.", result.Message)
		s.Empty(s.store.Payments(b.ID()))
	})
}

func (s *bookingCommandsSuite) TestCancel_Guards() {
	s.Run("unknown booking", func() {
		_, err := s.uc.Cancel(s.ctx, uuid.New(), s.organizerID, "")
		s.requireErrIs(err, errs.ErrNotFound)
	})

	s.Run("someone else's booking", func() {
		b := s.stage(18, 20, booking.StatusApproved)

		_, err := s.uc.Cancel(s.ctx, b.ID(), uuid.New(), "")

		s.requireErrIs(err, errs.ErrUnauthorized)
		s.Equal(booking.StatusApproved, s.store.Booking(b.ID()).Status())
	})

	s.Run("pending bookings are rejected, not cancelled", func() {
		b := s.stage(18, 20, booking.StatusPending)

		_, err := s.uc.Cancel(s.ctx, b.ID(), b.OrganizerID(), "")

		s.requireErrIs(err, errs.ErrInvalidState)
	})

	s.Run("after start", func() {
		b := s.stage(18, 20, booking.StatusConfirmed)
		s.stagePayment(b, payment.MethodOnline, payment.StatusCompleted)
		s.clock.Set(time.Date(2025, time.January, 10, 18, 30, 0, 0, time.UTC))

		_, err := s.uc.Cancel(s.ctx, b.ID(), b.OrganizerID(), "")

		s.requireErrIs(err, errs.ErrTooLate)
		s.Equal(booking.StatusConfirmed, s.store.Booking(b.ID()).Status())
		s.Equal(payment.StatusCompleted, s.store.CurrentPayment(b.ID()).Status())
		s.Empty(s.sent)
	})

	s.Run("blank reason falls back to the default", func() {
		b := s.stage(18, 20, booking.StatusApproved)

		_, err := s.uc.Cancel(s.ctx, b.ID(), b.OrganizerID(), "   ")

		s.Require().NoError(err)
		s.Equal("cancelled by organizer", *s.store.Booking(b.ID()).Reason())
	})
}
