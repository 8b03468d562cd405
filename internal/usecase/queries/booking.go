package queries

import (
	"context"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/payment"
	"turf-booking/internal/domain/user"
	"turf-booking/internal/infra"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID             uuid.UUID              `json:"id"`
	TurfID         uuid.UUID              `json:"turf_id"`
	TurfName       string                 `json:"turf_name"`
	TurfOwnerID    uuid.UUID              `json:"turf_owner_id"`
	OrganizerID    uuid.UUID              `json:"organizer_id"`
	Date           string                 `json:"date"`
	StartTime      string                 `json:"start_time"`
	EndTime        string                 `json:"end_time"`
	AudienceCount  int                    `json:"audience_count"`
	ExtraServices  []booking.ExtraService `json:"extra_services"`
	TotalCostCents int64                  `json:"total_cost_cents"`
	Status         string                 `json:"status"`
	Reason         *string                `json:"reason,omitempty"`
	PaymentFlag    string                 `json:"payment_flag"`
	// Payments are ordered most recent first.
	Payments []PaymentView `json:"payments"`
	// PaymentState is the status of the current payment, empty when none.
	PaymentState string    `json:"payment_state"`
	IsConfirmed  bool      `json:"is_confirmed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type PaymentView struct {
	ID             uuid.UUID `json:"id"`
	Method         string    `json:"method"`
	Status         string    `json:"status"`
	TransactionRef *string   `json:"transaction_ref,omitempty"`
	AmountCents    int64     `json:"amount_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID             uuid.UUID `json:"id"`
	OrganizerID    uuid.UUID `json:"organizer_id"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Status         string    `json:"status"`
	PaymentFlag    string    `json:"payment_flag"`
	TotalCostCents int64     `json:"total_cost_cents"`
	CreatedAt      time.Time `json:"created_at"`
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*BookingView, error)
	ListTurfDay(ctx context.Context, actorID uuid.UUID, role user.Role, turfID uuid.UUID, date time.Time) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*BookingView, error)
	FindByTurfAndDate(ctx context.Context, db sqlc.DBTX, turfID uuid.UUID, date time.Time) ([]*BookingListItem, error)
	FindTurfOwner(ctx context.Context, db sqlc.DBTX, turfID uuid.UUID) (uuid.UUID, error)
}

type bookingQueriesImpl struct {
	uow  shared.UnitOfWork
	repo BookingViewRepo
}

func NewBookingQueries(uow shared.UnitOfWork, repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{uow: uow, repo: repo}
}

// GetByID is visible to the organizer, the turf owner and admins. The booking
// and its payments are read from one snapshot.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, role user.Role, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		view, err = q.repo.FindByID(ctx, tx.DB(), id)
		return err
	})
	if err != nil {
		return nil, classifyReadErr(err)
	}
	if !role.IsAdmin() && view.OrganizerID != actorID && view.TurfOwnerID != actorID {
		return nil, errs.Wrap(errs.ErrUnauthorized, "booking belongs to another user")
	}

	DerivePaymentState(view)
	return view, nil
}

// ListTurfDay is restricted to the turf owner and admins.
func (q *bookingQueriesImpl) ListTurfDay(ctx context.Context, actorID uuid.UUID, role user.Role, turfID uuid.UUID, date time.Time) ([]*BookingListItem, error) {
	var items []*BookingListItem
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ownerID, err := q.repo.FindTurfOwner(ctx, tx.DB(), turfID)
		if err != nil {
			return err
		}
		if !role.IsAdmin() && ownerID != actorID {
			return errs.Wrap(errs.ErrUnauthorized, "turf belongs to another owner")
		}
		items, err = q.repo.FindByTurfAndDate(ctx, tx.DB(), turfID, booking.Date(date))
		return err
	})
	if err != nil {
		if errs.Is(err, errs.ErrUnauthorized) {
			return nil, err
		}
		return nil, classifyReadErr(err)
	}
	return items, nil
}

func classifyReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrPersistence)
}

// DerivePaymentState fills the fields computed from the current payment.
func DerivePaymentState(view *BookingView) {
	current := payment.StatusNone
	if len(view.Payments) > 0 {
		current = payment.Status(view.Payments[0].Status)
	}
	view.PaymentState = current.String()
	view.IsConfirmed = booking.IsConfirmed(booking.Status(view.Status), current)
}
