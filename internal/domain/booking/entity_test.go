//go:build unit

package booking_test

import (
	"testing"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/pkg/clock"
	"turf-booking/internal/pkg/errs"
	"turf-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matchDate is 2025-01-10; bookings built on it start at builder slot times in UTC.
var matchDate = time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

func newServices(now time.Time) *booking.Services {
	return &booking.Services{
		Clock:           clock.NewMockClock(now),
		PriceCalculator: booking.NewDefaultPriceCalculator(),
		Policy:          booking.DefaultPolicy(time.UTC),
	}
}

func TestNewBooking(t *testing.T) {
	dayBefore := time.Date(2025, time.January, 9, 12, 0, 0, 0, time.UTC)

	t.Run("pending, unpaid and priced by the hour plus extras", func(t *testing.T) {
		extra, err := booking.NewExtraService("Floodlights", 50000)
		require.NoError(t, err)

		actual, err := builder.NewBookingBuilder().
			WithDate(matchDate).
			WithSlot(18, 21).
			WithExtras(extra).
			BuildNew(newServices(dayBefore))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, booking.PaymentFlagUnpaid, actual.PaymentFlag())
		assert.Equal(t, int64(3*150000+50000), actual.TotalCost().Cents())
		assert.Equal(t, dayBefore, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	testCases := []struct {
		name   string
		now    time.Time
		mutate func(*builder.BookingBuilder)
		errIs  error
	}{
		{
			name:   "start in the past",
			now:    time.Date(2025, time.January, 10, 18, 30, 0, 0, time.UTC),
			mutate: func(b *builder.BookingBuilder) { b.WithDate(matchDate).WithSlot(18, 20) },
			errIs:  errs.ErrInvalidTimeSlot,
		},
		{
			name:   "start exactly now",
			now:    time.Date(2025, time.January, 10, 18, 0, 0, 0, time.UTC),
			mutate: func(b *builder.BookingBuilder) { b.WithDate(matchDate).WithSlot(18, 20) },
			errIs:  errs.ErrInvalidTimeSlot,
		},
		{
			name:   "no audience",
			now:    dayBefore,
			mutate: func(b *builder.BookingBuilder) { b.WithDate(matchDate).WithAudience(0) },
			errIs:  errs.ErrInvalidBooking,
		},
		{
			name:   "audience above capacity",
			now:    dayBefore,
			mutate: func(b *builder.BookingBuilder) { b.WithDate(matchDate).WithAudience(booking.MaxAudience + 1) },
			errIs:  errs.ErrInvalidBooking,
		},
		{
			name:   "slot past closing time",
			now:    dayBefore,
			mutate: func(b *builder.BookingBuilder) { b.WithDate(matchDate).WithSlot(21, 24) },
			errIs:  errs.ErrInvalidTimeSlot,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewBookingBuilder().With(tc.mutate).BuildNew(newServices(tc.now))
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestBooking_Decisions(t *testing.T) {
	beforeStart := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	atStart := time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC)

	t.Run("approve a pending booking", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(matchDate).WithSlot(10, 12).BuildDomain()

		require.NoError(t, b.Approve(beforeStart, time.UTC))
		assert.Equal(t, booking.StatusApproved, b.Status())
		assert.Equal(t, beforeStart, b.UpdatedAt())
	})

	t.Run("approve at or after start is too late and leaves the booking pending", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(matchDate).WithSlot(10, 12).BuildDomain()

		assert.ErrorIs(t, b.Approve(atStart, time.UTC), errs.ErrTooLate)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("only pending bookings can be decided", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusApproved, booking.StatusConfirmed, booking.StatusRejected, booking.StatusCancelled} {
			b := builder.NewBookingBuilder().WithDate(matchDate).WithStatus(status).BuildDomain()
			assert.ErrorIs(t, b.Approve(beforeStart, time.UTC), errs.ErrInvalidState, status)
			assert.ErrorIs(t, b.Reject("no", beforeStart, time.UTC), errs.ErrInvalidState, status)
			assert.Equal(t, status, b.Status())
		}
	})

	t.Run("reject keeps the reason", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(matchDate).BuildDomain()

		require.NoError(t, b.Reject("pitch maintenance", beforeStart, time.UTC))
		assert.Equal(t, booking.StatusRejected, b.Status())
		require.NotNil(t, b.Reason())
		assert.Equal(t, "pitch maintenance", *b.Reason())
	})

	t.Run("conflict rejection has no timing guard", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithDate(matchDate).BuildDomain()

		require.NoError(t, b.RejectAsConflict(atStart.Add(time.Hour)))
		require.NotNil(t, b.Reason())
		assert.Equal(t, booking.ConflictRejectionReason, *b.Reason())
	})
}

func TestBooking_Cancel(t *testing.T) {
	beforeStart := time.Date(2025, time.January, 9, 17, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		status booking.Status
		now    time.Time
		errIs  error
	}{
		{name: "approved", status: booking.StatusApproved, now: beforeStart},
		{name: "confirmed", status: booking.StatusConfirmed, now: beforeStart},
		{name: "pending", status: booking.StatusPending, now: beforeStart, errIs: errs.ErrInvalidState},
		{name: "already cancelled", status: booking.StatusCancelled, now: beforeStart, errIs: errs.ErrInvalidState},
		{name: "rejected", status: booking.StatusRejected, now: beforeStart, errIs: errs.ErrInvalidState},
		{name: "after start", status: booking.StatusConfirmed, now: time.Date(2025, time.January, 10, 18, 0, 0, 0, time.UTC), errIs: errs.ErrTooLate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder().WithDate(matchDate).WithSlot(18, 20).WithStatus(tc.status).BuildDomain()

			err := b.Cancel("rain", tc.now, time.UTC)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.status, b.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusCancelled, b.Status())
			assert.Equal(t, "rain", *b.Reason())
		})
	}
}

func TestBooking_Confirm(t *testing.T) {
	now := time.Now()

	approved := builder.NewBookingBuilder().AsApproved().BuildDomain()
	require.NoError(t, approved.Confirm(now))
	assert.Equal(t, booking.StatusConfirmed, approved.Status())

	require.NoError(t, approved.Confirm(now), "confirming twice is a no-op")

	pending := builder.NewBookingBuilder().BuildDomain()
	assert.ErrorIs(t, pending.Confirm(now), errs.ErrInvalidState)
}

func TestBooking_PaymentFlag(t *testing.T) {
	now := time.Now()

	b := builder.NewBookingBuilder().AsConfirmed().BuildDomain()
	assert.False(t, b.IsPaid())

	b.MarkPaid(now)
	assert.True(t, b.IsPaid())
	assert.Equal(t, booking.PaymentFlagPaid, b.PaymentFlag())

	later := now.Add(time.Hour)
	b.MarkRefunded(later)
	assert.False(t, b.IsPaid())
	assert.Equal(t, booking.PaymentFlagUnpaid, b.PaymentFlag())
	assert.Equal(t, later, b.UpdatedAt())
}

func TestIsConfirmed(t *testing.T) {
	testCases := []struct {
		status   booking.Status
		payment  payment.Status
		expected bool
	}{
		{booking.StatusConfirmed, payment.StatusNone, true},
		{booking.StatusConfirmed, payment.StatusPending, true},
		{booking.StatusApproved, payment.StatusCompleted, true},
		{booking.StatusApproved, payment.StatusPending, false},
		{booking.StatusApproved, payment.StatusNone, false},
		{booking.StatusPending, payment.StatusCompleted, false},
		{booking.StatusCancelled, payment.StatusCompleted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String()+"/"+tc.payment.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, booking.IsConfirmed(tc.status, tc.payment))
		})
	}
}
