package shared

import (
	"context"
	"time"

	"turf-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type ConflictQuery struct {
	TurfID    uuid.UUID
	Date      time.Time
	Interval  booking.Interval
	Statuses  []booking.Status
	ExcludeID uuid.UUID
	// Lock row-locks the candidates so they can be transitioned safely.
	Lock bool
}

// ConflictResolver finds bookings that compete with a candidate interval.
// It only reads; callers own the transaction and any resulting writes.
type ConflictResolver struct{}

func NewConflictResolver() *ConflictResolver {
	return &ConflictResolver{}
}

// FindConflicts returns the overlapping bookings in creation order. The turf
// must exist and the interval must be a valid booking slot.
func (r *ConflictResolver) FindConflicts(ctx context.Context, tx Tx, q ConflictQuery) ([]*booking.Booking, error) {
	if _, err := booking.NewInterval(q.Interval.Start(), q.Interval.End()); err != nil {
		return nil, err
	}
	if _, err := tx.Reads().TurfByID(ctx, q.TurfID); err != nil {
		return nil, err
	}

	candidates, err := tx.Bookings().ListForDay(ctx, tx.DB(), DayQuery{
		TurfID:    q.TurfID,
		Date:      q.Date,
		Statuses:  q.Statuses,
		ForUpdate: q.Lock,
	})
	if err != nil {
		return nil, err
	}

	var conflicts []*booking.Booking
	for _, c := range candidates {
		if c.ID() == q.ExcludeID {
			continue
		}
		if booking.Overlaps(q.Interval, c.Interval()) {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts, nil
}

// FindConflictIDs is FindConflicts reduced to booking ids.
func (r *ConflictResolver) FindConflictIDs(ctx context.Context, tx Tx, q ConflictQuery) ([]uuid.UUID, error) {
	conflicts, err := r.FindConflicts(ctx, tx, q)
	if err != nil {
		return nil, err
	}
	return BookingIDs(conflicts), nil
}

func BookingIDs(bs []*booking.Booking) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(bs))
	for _, b := range bs {
		ids = append(ids, b.ID())
	}
	return ids
}
