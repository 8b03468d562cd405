package converter

import (
	"encoding/json"
	"math"

	"turf-booking/internal/domain/booking"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	extras, err := MarshalExtras(b.Extras())
	if err != nil {
		return sqlc.CreateBookingParams{}, err
	}

	audience := b.Audience()
	if audience > math.MaxInt32 || audience < 0 {
		return sqlc.CreateBookingParams{}, errs.Newf("audience count out of int32 range: %d", audience)
	}

	return sqlc.CreateBookingParams{
		ID:             b.ID(),
		TurfID:         b.TurfID(),
		OrganizerID:    b.OrganizerID(),
		BookingDate:    pgconv.DateToPgtype(b.Date()),
		StartTime:      pgconv.MinutesToPgtypeTime(int(b.Interval().Start())),
		EndTime:        pgconv.MinutesToPgtypeTime(int(b.Interval().End())),
		AudienceCount:  int32(audience),
		ExtraServices:  extras,
		TotalCostCents: b.TotalCost().Cents(),
		Status:         b.Status().String(),
		Reason:         pgconv.StringPtrToPgtype(b.Reason()),
		PaymentFlag:    b.PaymentFlag().String(),
		CreatedAt:      pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BookingToStatusParams(b *booking.Booking) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		Reason:    pgconv.StringPtrToPgtype(b.Reason()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToPaymentFlagParams(b *booking.Booking) sqlc.UpdateBookingPaymentFlagParams {
	return sqlc.UpdateBookingPaymentFlagParams{
		ID:          b.ID(),
		PaymentFlag: b.PaymentFlag().String(),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromInfra(row sqlc.Bookings) (*booking.Booking, error) {
	extras, err := UnmarshalExtras(row.ExtraServices)
	if err != nil {
		return nil, err
	}

	interval := booking.ReconstructInterval(
		booking.TimeOfDay(pgconv.MinutesFromPgtypeTime(row.StartTime)),
		booking.TimeOfDay(pgconv.MinutesFromPgtypeTime(row.EndTime)),
	)

	return booking.ReconstructBooking(
		row.ID,
		row.TurfID,
		row.OrganizerID,
		pgconv.DateFromPgtype(row.BookingDate),
		interval,
		int(row.AudienceCount),
		extras,
		booking.NewMoney(row.TotalCostCents),
		booking.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.Reason),
		booking.PaymentFlag(row.PaymentFlag),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromInfra(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	bookings := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromInfra(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// MarshalExtras encodes extra services for the JSONB column. An empty list is
// stored as [] rather than null.
func MarshalExtras(extras []booking.ExtraService) ([]byte, error) {
	if extras == nil {
		extras = []booking.ExtraService{}
	}
	data, err := json.Marshal(extras)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal extra services")
	}
	return data, nil
}

func UnmarshalExtras(data []byte) ([]booking.ExtraService, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var extras []booking.ExtraService
	if err := json.Unmarshal(data, &extras); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal extra services")
	}
	return extras, nil
}
