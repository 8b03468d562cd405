//go:build unit || e2e

package builder

import (
	"time"

	"turf-booking/internal/domain/booking"
	reqdto "turf-booking/internal/handler/dto/request"
	"turf-booking/internal/infra/repository/converter"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/internal/pkg/pgconv"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// TestDate is far enough ahead that freshly built bookings never start in the past.
var TestDate = time.Date(2030, time.January, 10, 0, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID              uuid.UUID
	TurfID          uuid.UUID
	TurfName        string
	OwnerID         uuid.UUID
	OrganizerID     uuid.UUID
	HourlyRateCents int64
	Date            time.Time
	Start           booking.TimeOfDay
	End             booking.TimeOfDay
	Audience        int
	Extras          []booking.ExtraService
	TotalCostCents  int64
	Status          booking.Status
	Reason          *string
	PaymentFlag     booking.PaymentFlag
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		ID:              uuid.New(),
		TurfID:          uuid.New(),
		TurfName:        "Centre Court",
		OwnerID:         uuid.New(),
		OrganizerID:     uuid.New(),
		HourlyRateCents: 150000,
		Date:            TestDate,
		Start:           booking.TimeOfDay(10 * 60),
		End:             booking.TimeOfDay(12 * 60),
		Audience:        22,
		TotalCostCents:  300000,
		Status:          booking.StatusPending,
		PaymentFlag:     booking.PaymentFlagUnpaid,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.ID,
		b.TurfID,
		b.OrganizerID,
		b.Date,
		booking.ReconstructInterval(b.Start, b.End),
		b.Audience,
		b.Extras,
		booking.NewMoney(b.TotalCostCents),
		b.Status,
		b.Reason,
		b.PaymentFlag,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

// BuildNew goes through the validating constructor, so ID and cost are derived.
func (b *BookingBuilder) BuildNew(services *booking.Services) (*booking.Booking, error) {
	interval, err := booking.NewInterval(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(services, b.BuildTurfSpec(), b.OrganizerID, b.Date, interval, b.Audience, b.Extras)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	extras, _ := converter.MarshalExtras(b.Extras)
	return sqlc.Bookings{
		ID:             b.ID,
		TurfID:         b.TurfID,
		OrganizerID:    b.OrganizerID,
		BookingDate:    pgconv.DateToPgtype(b.Date),
		StartTime:      pgconv.MinutesToPgtypeTime(int(b.Start)),
		EndTime:        pgconv.MinutesToPgtypeTime(int(b.End)),
		AudienceCount:  int32(b.Audience),
		ExtraServices:  extras,
		TotalCostCents: b.TotalCostCents,
		Status:         b.Status.String(),
		Reason:         pgconv.StringPtrToPgtype(b.Reason),
		PaymentFlag:    b.PaymentFlag.String(),
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildTurfSpec() booking.TurfSpec {
	return booking.TurfSpec{
		ID:              b.TurfID,
		OwnerID:         b.OwnerID,
		HourlyRateCents: b.HourlyRateCents,
	}
}

func (b *BookingBuilder) BuildTurfSnapshot() *shared.TurfSnapshot {
	return &shared.TurfSnapshot{
		ID:              b.TurfID,
		OwnerID:         b.OwnerID,
		Name:            b.TurfName,
		HourlyRateCents: b.HourlyRateCents,
	}
}

func (b *BookingBuilder) BuildTurfInfra() sqlc.Turfs {
	return sqlc.Turfs{
		ID:              b.TurfID,
		OwnerID:         b.OwnerID,
		Name:            b.TurfName,
		HourlyRateCents: b.HourlyRateCents,
		CreatedAt:       pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	extras := make([]reqdto.ExtraServiceRequest, 0, len(b.Extras))
	for _, e := range b.Extras {
		extras = append(extras, reqdto.ExtraServiceRequest{Name: e.Name, PriceCents: e.PriceCents})
	}
	return reqdto.CreateBookingRequest{
		TurfID:        b.TurfID,
		Date:          b.Date.Format(time.DateOnly),
		StartTime:     b.Start.String(),
		EndTime:       b.End.String(),
		AudienceCount: b.Audience,
		ExtraServices: extras,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithTurf(turfID, ownerID uuid.UUID) *BookingBuilder {
	b.TurfID = turfID
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) WithOrganizerID(organizerID uuid.UUID) *BookingBuilder {
	b.OrganizerID = organizerID
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

// WithSlot sets whole-hour start and end times.
func (b *BookingBuilder) WithSlot(startHour, endHour int) *BookingBuilder {
	b.Start = booking.TimeOfDay(startHour * 60)
	b.End = booking.TimeOfDay(endHour * 60)
	return b
}

func (b *BookingBuilder) WithAudience(audience int) *BookingBuilder {
	b.Audience = audience
	return b
}

func (b *BookingBuilder) WithExtras(extras ...booking.ExtraService) *BookingBuilder {
	b.Extras = extras
	return b
}

func (b *BookingBuilder) WithTotalCostCents(cents int64) *BookingBuilder {
	b.TotalCostCents = cents
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPaymentFlag(flag booking.PaymentFlag) *BookingBuilder {
	b.PaymentFlag = flag
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	b.UpdatedAt = createdAt
	return b
}

func (b *BookingBuilder) AsApproved() *BookingBuilder {
	b.Status = booking.StatusApproved
	return b
}

func (b *BookingBuilder) AsConfirmed() *BookingBuilder {
	b.Status = booking.StatusConfirmed
	return b
}

func (b *BookingBuilder) AsPaid() *BookingBuilder {
	b.PaymentFlag = booking.PaymentFlagPaid
	return b
}
