//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/infra"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// ChooseCashPayment
// =============================================================================

func (s *bookingCommandsSuite) TestChooseCashPayment() {
	s.Run("confirms the booking with a pending cash payment", func() {
		b := s.stage(10, 12, booking.StatusApproved)

		result, err := s.uc.ChooseCashPayment(s.ctx, b.ID(), b.OrganizerID())

		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, result.Status)
		s.Equal(payment.MethodCash, result.Method)
		s.Equal(payment.StatusPending, result.PaymentStatus)
		s.Equal(booking.StatusConfirmed, s.store.Booking(b.ID()).Status())
		s.Equal(booking.PaymentFlagUnpaid, s.store.Booking(b.ID()).PaymentFlag())
		s.Equal(result.PaymentID, s.store.CurrentPayment(b.ID()).ID())
		s.Equal(s.turf.OwnerID, s.sentKinds()[shared.KindCashSelected])
	})

	s.Run("choosing twice", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		_, err := s.uc.ChooseCashPayment(s.ctx, b.ID(), b.OrganizerID())
		s.Require().NoError(err)

		_, err = s.uc.ChooseCashPayment(s.ctx, b.ID(), b.OrganizerID())

		s.requireErrIs(err, errs.ErrInvalidState)
		s.Len(s.store.Payments(b.ID()), 1)
	})

	s.Run("an online attempt is already open", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.stagePayment(b, payment.MethodOnline, payment.StatusPending)

		_, err := s.uc.ChooseCashPayment(s.ctx, b.ID(), b.OrganizerID())

		s.requireErrIs(err, errs.ErrInvalidPaymentState)
		s.Equal(booking.StatusApproved, s.store.Booking(b.ID()).Status())
	})

	s.Run("a failed online attempt does not block cash", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.stagePayment(b, payment.MethodOnline, payment.StatusFailed)

		_, err := s.uc.ChooseCashPayment(s.ctx, b.ID(), b.OrganizerID())

		s.NoError(err)
		s.Len(s.store.Payments(b.ID()), 2)
	})

	s.Run("pending booking", func() {
		b := s.stage(10, 12, booking.StatusPending)

		_, err := s.uc.ChooseCashPayment(s.ctx, b.ID(), b.OrganizerID())

		s.requireErrIs(err, errs.ErrInvalidState)
	})

	s.Run("after start", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.clock.Set(time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC))

		_, err := s.uc.ChooseCashPayment(s.ctx, b.ID(), b.OrganizerID())

		s.requireErrIs(err, errs.ErrTooLate)
	})

	s.Run("another organizer", func() {
		b := s.stage(10, 12, booking.StatusApproved)

		_, err := s.uc.ChooseCashPayment(s.ctx, b.ID(), uuid.New())

		s.requireErrIs(err, errs.ErrUnauthorized)
	})
}

// =============================================================================
// StartOnlinePayment
// =============================================================================

func (s *bookingCommandsSuite) TestStartOnlinePayment() {
	s.Run("creates the payment and hands it to billing", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		var dispatched shared.PaymentRequest
		s.billing.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req shared.PaymentRequest) error {
				dispatched = req
				return nil
			})

		result, err := s.uc.StartOnlinePayment(s.ctx, b.ID(), b.OrganizerID())

		s.Require().NoError(err)
		s.True(result.Dispatched)
		s.Equal(booking.StatusApproved, result.Status)
		s.Equal(shared.PaymentRequest{
			BookingID:   b.ID(),
			PaymentID:   result.PaymentID,
			AmountCents: b.TotalCost().Cents(),
			Method:      payment.MethodOnline,
		}, dispatched)
		current := s.store.CurrentPayment(b.ID())
		s.Equal(payment.MethodOnline, current.Method())
		s.Equal(payment.StatusPending, current.Status())
	})

	s.Run("resumes an open online attempt", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		open := s.stagePayment(b, payment.MethodOnline, payment.StatusPending)
		s.billing.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil)

		result, err := s.uc.StartOnlinePayment(s.ctx, b.ID(), b.OrganizerID())

		s.Require().NoError(err)
		s.Equal(open.ID(), result.PaymentID)
		s.Len(s.store.Payments(b.ID()), 1)
	})

	s.Run("billing failure keeps the payment open", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.billing.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))

		result, err := s.uc.StartOnlinePayment(s.ctx, b.ID(), b.OrganizerID())

		s.Require().NoError(err)
		s.False(result.Dispatched)
		s.Equal("Payment could not be started. Please try again.", result.Message)
		s.Equal(payment.StatusPending, s.store.CurrentPayment(b.ID()).Status())
	})

	s.Run("cash already chosen", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.stagePayment(b, payment.MethodCash, payment.StatusPending)

		_, err := s.uc.StartOnlinePayment(s.ctx, b.ID(), b.OrganizerID())

		s.requireErrIs(err, errs.ErrInvalidPaymentState)
	})

	s.Run("guards fail before billing is called", func() {
		b := s.stage(10, 12, booking.StatusRejected)

		_, err := s.uc.StartOnlinePayment(s.ctx, b.ID(), b.OrganizerID())

		s.requireErrIs(err, errs.ErrInvalidState)
	})
}

// =============================================================================
// RecordOnlinePayment
// =============================================================================

func (s *bookingCommandsSuite) TestRecordOnlinePayment() {
	s.Run("success confirms and marks paid", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.stagePayment(b, payment.MethodOnline, payment.StatusPending)

		result, err := s.uc.RecordOnlinePayment(s.ctx, b.ID(), " txn-42 ", true)

		s.Require().NoError(err)
		s.Equal(booking.StatusConfirmed, result.Status)
		stored := s.store.Booking(b.ID())
		s.Equal(booking.StatusConfirmed, stored.Status())
		s.Equal(booking.PaymentFlagPaid, stored.PaymentFlag())
		current := s.store.CurrentPayment(b.ID())
		s.Equal(payment.StatusCompleted, current.Status())
		s.Require().NotNil(current.TransactionRef())
		s.Equal("txn-42", *current.TransactionRef())
		s.Equal(b.OrganizerID(), s.sentKinds()[shared.KindPaymentCompleted])
	})

	s.Run("duplicate success callback", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.stagePayment(b, payment.MethodOnline, payment.StatusPending)
		_, err := s.uc.RecordOnlinePayment(s.ctx, b.ID(), "txn-42", true)
		s.Require().NoError(err)

		_, err = s.uc.RecordOnlinePayment(s.ctx, b.ID(), "txn-42", true)

		s.requireErrIs(err, errs.ErrAlreadyPaid)
	})

	s.Run("failure leaves the booking approved", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.stagePayment(b, payment.MethodOnline, payment.StatusPending)

		result, err := s.uc.RecordOnlinePayment(s.ctx, b.ID(), "", false)

		s.Require().NoError(err)
		s.Equal(payment.StatusFailed, result.PaymentStatus)
		s.Equal(booking.StatusApproved, s.store.Booking(b.ID()).Status())
		s.Equal(booking.PaymentFlagUnpaid, s.store.Booking(b.ID()).PaymentFlag())
		s.Equal(b.OrganizerID(), s.sentKinds()[shared.KindPaymentFailed])
	})

	s.Run("no online payment", func() {
		b := s.stage(10, 12, booking.StatusConfirmed)
		s.stagePayment(b, payment.MethodCash, payment.StatusPending)

		_, err := s.uc.RecordOnlinePayment(s.ctx, b.ID(), "txn-1", true)

		s.requireErrIs(err, errs.ErrInvalidPaymentState)
	})

	s.Run("booking cancelled while paying", func() {
		b := s.stage(10, 12, booking.StatusCancelled)
		s.stagePayment(b, payment.MethodOnline, payment.StatusPending)

		_, err := s.uc.RecordOnlinePayment(s.ctx, b.ID(), "txn-1", true)

		s.requireErrIs(err, errs.ErrInvalidState)
		s.Equal(payment.StatusPending, s.store.CurrentPayment(b.ID()).Status())
	})

	s.Run("payment row missing on update is a persistence failure", func() {
		b := s.stage(10, 12, booking.StatusApproved)
		s.stagePayment(b, payment.MethodOnline, payment.StatusPending)
		s.store.FailOn("Payments.UpdateStatus", infra.WrapRepoErr("payment row missing on update", nil, infra.KindDBFailure))

		_, err := s.uc.RecordOnlinePayment(s.ctx, b.ID(), "txn-1", true)

		s.requireErrIs(err, errs.ErrPersistence)
		s.False(errs.Is(err, errs.ErrNotFound))
		s.Equal(booking.StatusApproved, s.store.Booking(b.ID()).Status())
	})

	s.Run("unknown booking", func() {
		_, err := s.uc.RecordOnlinePayment(s.ctx, uuid.New(), "txn-1", true)

		s.requireErrIs(err, errs.ErrNotFound)
	})
}
