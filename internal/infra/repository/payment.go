package repository

import (
	"context"

	"turf-booking/internal/domain/payment"
	"turf-booking/internal/infra"
	"turf-booking/internal/infra/repository/converter"
	sqlc "turf-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	CreatePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePaymentParams) (sqlc.Payments, error)
	ListPaymentsByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Payments, error)
	ListPaymentsByBookingIDForUpdate(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.Payments, error)
	UpdatePaymentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePaymentStatusParams) (int64, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, forUpdate bool) ([]*payment.Payment, error) {
	var (
		rows []sqlc.Payments
		err  error
	)
	if forUpdate {
		rows, err = r.queries.ListPaymentsByBookingIDForUpdate(ctx, tx, bookingID)
	} else {
		rows, err = r.queries.ListPaymentsByBookingID(ctx, tx, bookingID)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	return converter.PaymentsFromInfra(rows), nil
}

func (r *PaymentRepository) Create(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) (uuid.UUID, error) {
	row, err := r.queries.CreatePayment(ctx, tx, converter.PaymentToCreateParams(p))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create payment", err)
	}
	return row.ID, nil
}

func (r *PaymentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *payment.Payment) error {
	affected, err := r.queries.UpdatePaymentStatus(ctx, tx, converter.PaymentToStatusParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update payment status", err)
	}
	// the row was read under lock in this transaction, so a miss is a store fault
	if affected == 0 {
		return infra.WrapRepoErr("payment row missing on update", nil, infra.KindDBFailure)
	}
	return nil
}
