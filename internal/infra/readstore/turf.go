package readstore

import (
	"context"

	"turf-booking/internal/infra"
	sqlc "turf-booking/internal/infra/sqlc/generated"
	"turf-booking/internal/pkg/pgconv"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type TurfReadQueries interface {
	GetTurfByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Turfs, error)
}

type TurfReadStore struct {
	queries TurfReadQueries
}

func NewTurfReadStore(queries TurfReadQueries) *TurfReadStore {
	return &TurfReadStore{
		queries: queries,
	}
}

func (r *TurfReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.TurfSnapshot, error) {
	row, err := r.queries.GetTurfByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("turf not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find turf by ID", err)
	}

	return &shared.TurfSnapshot{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Name:            row.Name,
		HourlyRateCents: row.HourlyRateCents,
	}, nil
}
