//go:build unit || e2e

package builder

import (
	"time"

	"turf-booking/internal/domain/payment"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentBuilder struct {
	ID             uuid.UUID
	BookingID      uuid.UUID
	Seq            int64
	Method         payment.Method
	Status         payment.Status
	TransactionRef *string
	AmountCents    int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	now := time.Now()
	return &PaymentBuilder{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		Seq:         1,
		Method:      payment.MethodOnline,
		Status:      payment.StatusPending,
		AmountCents: 300000,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (p *PaymentBuilder) BuildDomain() *payment.Payment {
	return payment.Reconstruct(
		p.ID,
		p.BookingID,
		p.Seq,
		p.Method,
		p.Status,
		p.TransactionRef,
		p.AmountCents,
		p.CreatedAt,
		p.UpdatedAt,
	)
}

func (p *PaymentBuilder) BuildInfra() sqlc.Payments {
	return sqlc.Payments{
		ID:             p.ID,
		Seq:            p.Seq,
		BookingID:      p.BookingID,
		Method:         p.Method.String(),
		Status:         p.Status.String(),
		TransactionRef: pgconv.StringPtrToPgtype(p.TransactionRef),
		AmountCents:    p.AmountCents,
		CreatedAt:      pgtype.Timestamptz{Time: p.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: p.UpdatedAt, Valid: true},
	}
}

func (p *PaymentBuilder) WithBookingID(bookingID uuid.UUID) *PaymentBuilder {
	p.BookingID = bookingID
	return p
}

func (p *PaymentBuilder) WithSeq(seq int64) *PaymentBuilder {
	p.Seq = seq
	return p
}

func (p *PaymentBuilder) WithMethod(method payment.Method) *PaymentBuilder {
	p.Method = method
	return p
}

func (p *PaymentBuilder) WithStatus(status payment.Status) *PaymentBuilder {
	p.Status = status
	return p
}

func (p *PaymentBuilder) WithAmountCents(cents int64) *PaymentBuilder {
	p.AmountCents = cents
	return p
}

func (p *PaymentBuilder) WithTimes(createdAt, updatedAt time.Time) *PaymentBuilder {
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	return p
}

func (p *PaymentBuilder) AsCash() *PaymentBuilder {
	p.Method = payment.MethodCash
	return p
}

func (p *PaymentBuilder) AsCompleted() *PaymentBuilder {
	p.Status = payment.StatusCompleted
	return p
}
