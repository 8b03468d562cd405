//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	sqlc "turf-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestTurf(t *testing.T, db DBLike, ownerID uuid.UUID, name string, hourlyRateCents int64) uuid.UUID {
	t.Helper()

	turfID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO turfs (id, owner_id, name, hourly_rate_cents) VALUES ($1, $2, $3, $4)",
		turfID, ownerID, name, hourlyRateCents)
	require.NoError(t, err)

	return turfID
}

// InsertBooking writes a booking row directly, bypassing the lifecycle rules.
// Used to stage bookings whose start already lies in the past.
func InsertBooking(t *testing.T, db DBLike, b sqlc.Bookings) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, turf_id, organizer_id, booking_date, start_time, end_time, audience_count,
		                      extra_services, total_cost_cents, status, reason, payment_flag, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		b.ID, b.TurfID, b.OrganizerID, b.BookingDate, b.StartTime, b.EndTime, b.AudienceCount,
		b.ExtraServices, b.TotalCostCents, b.Status, b.Reason, b.PaymentFlag, b.CreatedAt, b.UpdatedAt)
	require.NoError(t, err)
}

func InsertPayment(t *testing.T, db DBLike, p sqlc.Payments) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO payments (id, booking_id, method, status, transaction_ref, amount_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.BookingID, p.Method, p.Status, p.TransactionRef, p.AmountCents, p.CreatedAt, p.UpdatedAt)
	require.NoError(t, err)
}

func CountPayments(t *testing.T, db DBLike, bookingID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM payments WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
