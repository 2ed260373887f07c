package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
)

// PgxTargetRepository reads the weekly target schedule.
type PgxTargetRepository struct {
	BaseRepository
}

// NewPgxTargetRepository creates a new repository for target schedule data.
func NewPgxTargetRepository(pool *pgxpool.Pool) portsrepo.TargetRepository {
	return &PgxTargetRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TargetRepository = (*PgxTargetRepository)(nil)

// ListWeeklyTargets returns the target schedule sorted by start date.
func (r *PgxTargetRepository) ListWeeklyTargets(ctx context.Context) ([]domain.WeeklyTarget, error) {
	query := `
		SELECT pekan, start_date, end_date, target_amount, percent
		FROM target_penghimpunan
		ORDER BY start_date;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query weekly targets", err)
	}
	defer rows.Close()

	targets := []domain.WeeklyTarget{}
	for rows.Next() {
		var t domain.WeeklyTarget
		if err := rows.Scan(&t.Label, &t.StartDate, &t.EndDate, &t.TargetAmount, &t.Percent); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan weekly target row", err)
		}
		targets = append(targets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating weekly target rows", err)
	}
	return targets, nil
}
