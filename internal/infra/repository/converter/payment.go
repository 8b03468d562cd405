package converter

import (
	"turf-booking/internal/domain/payment"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:             p.ID(),
		BookingID:      p.BookingID(),
		Method:         p.Method().String(),
		Status:         p.Status().String(),
		TransactionRef: pgconv.StringPtrToPgtype(p.TransactionRef()),
		AmountCents:    p.AmountCents(),
		CreatedAt:      pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentToStatusParams(p *payment.Payment) sqlc.UpdatePaymentStatusParams {
	return sqlc.UpdatePaymentStatusParams{
		ID:             p.ID(),
		Status:         p.Status().String(),
		TransactionRef: pgconv.StringPtrToPgtype(p.TransactionRef()),
		UpdatedAt:      pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentFromInfra(row sqlc.Payments) *payment.Payment {
	return payment.Reconstruct(
		row.ID,
		row.BookingID,
		row.Seq,
		payment.Method(row.Method),
		payment.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.TransactionRef),
		row.AmountCents,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PaymentsFromInfra(rows []sqlc.Payments) []*payment.Payment {
	payments := make([]*payment.Payment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, PaymentFromInfra(row))
	}
	return payments
}
