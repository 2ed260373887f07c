package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
)

// PgxDropdownRepository reads the validation form dropdown values.
type PgxDropdownRepository struct {
	BaseRepository
}

// NewPgxDropdownRepository creates a new repository for dropdown data.
func NewPgxDropdownRepository(pool *pgxpool.Pool) portsrepo.DropdownRepository {
	return &PgxDropdownRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DropdownRepository = (*PgxDropdownRepository)(nil)

// ListDropdownValues returns all dropdown values.
func (r *PgxDropdownRepository) ListDropdownValues(ctx context.Context) ([]domain.DropdownValue, error) {
	query := `SELECT jenis_kolom, nilai FROM dropdown_validation;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query dropdown values", err)
	}
	defer rows.Close()

	values := []domain.DropdownValue{}
	for rows.Next() {
		var v domain.DropdownValue
		if err := rows.Scan(&v.JenisKolom, &v.Nilai); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan dropdown row", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating dropdown rows", err)
	}
	return values, nil
}
