//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/readstore"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/tests/common/builder"
	readstoremock "turf-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// txHandle stands in for the transaction every read of one view must share.
type txHandle struct {
	sqlc.DBTX
	name string
}

var txDB = &txHandle{name: "read-only snapshot"}

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	bb := builder.NewBookingBuilder().
		WithSlot(18, 20).
		WithExtras([]booking.ExtraService{{Name: "Floodlights", PriceCents: 50000}}...).
		AsConfirmed()
	cash := builder.NewPaymentBuilder().WithBookingID(bb.ID).AsCash().BuildInfra()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingViewQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking with turf and payments",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingByID(ctx, txDB, bb.ID).Return(bb.BuildInfra(), nil)
				mock.EXPECT().GetTurfByID(ctx, txDB, bb.TurfID).Return(bb.BuildTurfInfra(), nil)
				mock.EXPECT().ListPaymentsByBookingID(ctx, txDB, bb.ID).Return([]sqlc.Payments{cash}, nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingByID(ctx, txDB, bb.ID).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: turf lookup fails",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingByID(ctx, txDB, bb.ID).Return(bb.BuildInfra(), nil)
				mock.EXPECT().GetTurfByID(ctx, txDB, bb.TurfID).Return(sqlc.Turfs{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: payments lookup fails",
			setupMock: func(mock *readstoremock.MockBookingViewQueries) {
				mock.EXPECT().GetBookingByID(ctx, txDB, bb.ID).Return(bb.BuildInfra(), nil)
				mock.EXPECT().GetTurfByID(ctx, txDB, bb.TurfID).Return(bb.BuildTurfInfra(), nil)
				mock.EXPECT().ListPaymentsByBookingID(ctx, txDB, bb.ID).Return(nil, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewBookingReadStore(mockQueries)

			view, err := store.FindByID(ctx, txDB, bb.ID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, view)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, bb.ID, view.ID)
			assert.Equal(t, "Centre Court", view.TurfName)
			assert.Equal(t, bb.OwnerID, view.TurfOwnerID)
			assert.Equal(t, "2030-01-10", view.Date)
			assert.Equal(t, "18:00", view.StartTime)
			assert.Equal(t, "20:00", view.EndTime)
			assert.Equal(t, "confirmed", view.Status)
			assert.Equal(t, bb.Extras, view.ExtraServices)
			require.Len(t, view.Payments, 1)
			assert.Equal(t, cash.ID, view.Payments[0].ID)
			assert.Equal(t, payment.MethodCash.String(), view.Payments[0].Method)
		})
	}
}

func TestBookingReadStore_FindByTurfAndDate(t *testing.T) {
	ctx := context.Background()
	turfID := uuid.New()

	t.Run("success: every status is listed in query order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)

		rejected := builder.NewBookingBuilder().WithTurf(turfID, uuid.New()).WithStatus(booking.StatusRejected).BuildInfra()
		approved := builder.NewBookingBuilder().WithTurf(turfID, uuid.New()).WithSlot(14, 16).AsApproved().BuildInfra()
		mockQueries.EXPECT().ListBookingsForDay(ctx, txDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListBookingsForDayParams) ([]sqlc.Bookings, error) {
				assert.Equal(t, turfID, arg.TurfID)
				assert.Len(t, arg.Statuses, 5)
				return []sqlc.Bookings{rejected, approved}, nil
			})

		items, err := readstore.NewBookingReadStore(mockQueries).FindByTurfAndDate(ctx, txDB, turfID, builder.TestDate)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, rejected.ID, items[0].ID)
		assert.Equal(t, "rejected", items[0].Status)
		assert.Equal(t, "14:00", items[1].StartTime)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().ListBookingsForDay(ctx, txDB, gomock.Any()).Return(nil, errors.New("database connection error"))

		_, err := readstore.NewBookingReadStore(mockQueries).FindByTurfAndDate(ctx, txDB, turfID, builder.TestDate)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_FindTurfOwner(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewBookingBuilder()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetTurfByID(ctx, txDB, bb.TurfID).Return(bb.BuildTurfInfra(), nil)

		ownerID, err := readstore.NewBookingReadStore(mockQueries).FindTurfOwner(ctx, txDB, bb.TurfID)

		require.NoError(t, err)
		assert.Equal(t, bb.OwnerID, ownerID)
	})

	t.Run("error: turf not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetTurfByID(ctx, txDB, bb.TurfID).Return(sqlc.Turfs{}, pgx.ErrNoRows)

		_, err := readstore.NewBookingReadStore(mockQueries).FindTurfOwner(ctx, txDB, bb.TurfID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestTurfReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	bb := builder.NewBookingBuilder()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetTurfByID(ctx, nil, bb.TurfID).Return(bb.BuildTurfInfra(), nil)

		turf, err := readstore.NewTurfReadStore(mockQueries).FindByID(ctx, nil, bb.TurfID)

		require.NoError(t, err)
		assert.Equal(t, bb.BuildTurfSnapshot(), turf)
	})

	t.Run("error: turf not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingViewQueries(ctrl)
		mockQueries.EXPECT().GetTurfByID(ctx, nil, bb.TurfID).Return(sqlc.Turfs{}, pgx.ErrNoRows)

		_, err := readstore.NewTurfReadStore(mockQueries).FindByID(ctx, nil, bb.TurfID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
