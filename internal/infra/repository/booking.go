package repository

import (
	"context"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/repository/converter"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/internal/pkg/pgconv"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsForDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForDayParams) ([]sqlc.Bookings, error)
	ListBookingsForDayForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForDayForUpdateParams) ([]sqlc.Bookings, error)
	LockTurfDay(ctx context.Context, db sqlc.DBTX, lockKey string) error
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	UpdateBookingPaymentFlag(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingPaymentFlagParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	params, err := converter.BookingToCreateParams(b)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to convert booking", err)
	}

	row, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return row.ID, nil
}

func (r *BookingRepository) Get(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return r.toDomain(row)
}

// GetForUpdate row-locks the booking until the surrounding transaction ends.
func (r *BookingRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return r.toDomain(row)
}

func (r *BookingRepository) ListForDay(ctx context.Context, tx sqlc.DBTX, q shared.DayQuery) ([]*booking.Booking, error) {
	statuses := make([]string, 0, len(q.Statuses))
	for _, s := range q.Statuses {
		statuses = append(statuses, s.String())
	}
	date := pgconv.DateToPgtype(q.Date)

	var (
		rows []sqlc.Bookings
		err  error
	)
	if q.ForUpdate {
		rows, err = r.queries.ListBookingsForDayForUpdate(ctx, tx, sqlc.ListBookingsForDayForUpdateParams{
			TurfID:      q.TurfID,
			BookingDate: date,
			Statuses:    statuses,
		})
	} else {
		rows, err = r.queries.ListBookingsForDay(ctx, tx, sqlc.ListBookingsForDayParams{
			TurfID:      q.TurfID,
			BookingDate: date,
			Statuses:    statuses,
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for day", err)
	}

	bookings, err := converter.BookingsFromInfra(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert bookings", err)
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingStatus(ctx, tx, converter.BookingToStatusParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) UpdatePaymentFlag(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	affected, err := r.queries.UpdateBookingPaymentFlag(ctx, tx, converter.BookingToPaymentFlagParams(b))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking payment flag", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) LockTurfDay(ctx context.Context, tx sqlc.DBTX, turfID uuid.UUID, date time.Time) error {
	if err := r.queries.LockTurfDay(ctx, tx, TurfDayLockKey(turfID, date)); err != nil {
		return infra.WrapRepoErr("failed to lock turf day", err)
	}
	return nil
}

// TurfDayLockKey is hashed by PostgreSQL into the advisory lock id.
func TurfDayLockKey(turfID uuid.UUID, date time.Time) string {
	return turfID.String() + "|" + booking.Date(date).Format(time.DateOnly)
}

func (r *BookingRepository) toDomain(row sqlc.Bookings) (*booking.Booking, error) {
	b, err := converter.BookingFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking", err)
	}
	return b, nil
}
