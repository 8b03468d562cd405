package shared

import (
	"context"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	sqlc "turf-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Payments() PaymentRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	TurfByID(ctx context.Context, id uuid.UUID) (*TurfSnapshot, error)
}

// DayQuery selects bookings of one turf and calendar day by status.
// ForUpdate row-locks every returned booking until the transaction ends.
type DayQuery struct {
	TurfID    uuid.UUID
	Date      time.Time
	Statuses  []booking.Status
	ForUpdate bool
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	Get(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	ListForDay(ctx context.Context, tx sqlc.DBTX, q DayQuery) ([]*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	UpdatePaymentFlag(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// LockTurfDay serializes slot decisions for one turf and day until commit.
	LockTurfDay(ctx context.Context, tx sqlc.DBTX, turfID uuid.UUID, date time.Time) error
}

type PaymentRepository interface {
	// ListByBooking returns payments most recent first.
	ListByBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, forUpdate bool) ([]*payment.Payment, error)
	Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error
}
