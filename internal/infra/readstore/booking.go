package readstore

import (
	"context"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/repository/converter"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/internal/pkg/pgconv"
	"turf-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsForDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForDayParams) ([]sqlc.Bookings, error)
	ListPaymentsByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Payments, error)
	GetTurfByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Turfs, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
}

func NewBookingReadStore(queries BookingViewQueries) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
	}
}

var allStatuses = []string{
	booking.StatusPending.String(),
	booking.StatusApproved.String(),
	booking.StatusConfirmed.String(),
	booking.StatusRejected.String(),
	booking.StatusCancelled.String(),
}

func (r *BookingReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	turf, err := r.queries.GetTurfByID(ctx, db, row.TurfID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("turf not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get turf for booking view", err)
	}

	payments, err := r.queries.ListPaymentsByBookingID(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments for booking view", err)
	}

	extras, err := converter.UnmarshalExtras(row.ExtraServices)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode extra services", err)
	}
	if extras == nil {
		extras = []booking.ExtraService{}
	}

	return &queries.BookingView{
		ID:             row.ID,
		TurfID:         row.TurfID,
		TurfName:       turf.Name,
		TurfOwnerID:    turf.OwnerID,
		OrganizerID:    row.OrganizerID,
		Date:           pgconv.DateFromPgtype(row.BookingDate).Format(time.DateOnly),
		StartTime:      booking.TimeOfDay(pgconv.MinutesFromPgtypeTime(row.StartTime)).String(),
		EndTime:        booking.TimeOfDay(pgconv.MinutesFromPgtypeTime(row.EndTime)).String(),
		AudienceCount:  int(row.AudienceCount),
		ExtraServices:  extras,
		TotalCostCents: row.TotalCostCents,
		Status:         row.Status,
		Reason:         pgconv.StringPtrFromPgtype(row.Reason),
		PaymentFlag:    row.PaymentFlag,
		Payments:       mapPaymentRows(payments),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindByTurfAndDate(ctx context.Context, db sqlc.DBTX, turfID uuid.UUID, date time.Time) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsForDay(ctx, db, sqlc.ListBookingsForDayParams{
		TurfID:      turfID,
		BookingDate: pgconv.DateToPgtype(date),
		Statuses:    allStatuses,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by turf and date", err)
	}

	items := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		items[i] = &queries.BookingListItem{
			ID:             row.ID,
			OrganizerID:    row.OrganizerID,
			StartTime:      booking.TimeOfDay(pgconv.MinutesFromPgtypeTime(row.StartTime)).String(),
			EndTime:        booking.TimeOfDay(pgconv.MinutesFromPgtypeTime(row.EndTime)).String(),
			Status:         row.Status,
			PaymentFlag:    row.PaymentFlag,
			TotalCostCents: row.TotalCostCents,
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return items, nil
}

func (r *BookingReadStore) FindTurfOwner(ctx context.Context, db sqlc.DBTX, turfID uuid.UUID) (uuid.UUID, error) {
	turf, err := r.queries.GetTurfByID(ctx, db, turfID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("turf not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to get turf owner", err)
	}
	return turf.OwnerID, nil
}

// payments arrive most recent first from the query
func mapPaymentRows(rows []sqlc.Payments) []queries.PaymentView {
	views := make([]queries.PaymentView, len(rows))
	for i, row := range rows {
		views[i] = queries.PaymentView{
			ID:             row.ID,
			Method:         row.Method,
			Status:         row.Status,
			TransactionRef: pgconv.StringPtrFromPgtype(row.TransactionRef),
			AmountCents:    row.AmountCents,
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return views
}
