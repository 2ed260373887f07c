package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
)

// PgxPartnershipRepository persists kemitraan (partnership) records.
type PgxPartnershipRepository struct {
	BaseRepository
}

// NewPgxPartnershipRepository creates a new repository for kemitraan data.
func NewPgxPartnershipRepository(pool *pgxpool.Pool) portsrepo.PartnershipRepository {
	return &PgxPartnershipRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartnershipRepository = (*PgxPartnershipRepository)(nil)

// SavePartnership inserts one kemitraan record.
func (r *PgxPartnershipRepository) SavePartnership(ctx context.Context, partnership domain.Partnership) error {
	query := `
		INSERT INTO kemitraan (
			nama_mitra, tanggal_kerjasama, pks_urls, dokumentasi_urls,
			pelaksana_event, pic_report, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	createdAt := partnership.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.Pool.Exec(ctx, query,
		partnership.NamaMitra,
		partnership.TanggalKerjasama,
		partnership.PKSURLs,
		partnership.DokumentasiURLs,
		partnership.PelaksanaEvent,
		partnership.PICReport,
		createdAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert kemitraan record", err)
	}
	return nil
}

// ListPartnerships returns all kemitraan records, newest first.
func (r *PgxPartnershipRepository) ListPartnerships(ctx context.Context) ([]domain.Partnership, error) {
	query := `
		SELECT id, nama_mitra, tanggal_kerjasama, pks_urls, dokumentasi_urls,
		       pelaksana_event, pic_report, created_at
		FROM kemitraan
		ORDER BY created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query kemitraan records", err)
	}
	defer rows.Close()

	partnerships := []domain.Partnership{}
	for rows.Next() {
		var p domain.Partnership
		err := rows.Scan(
			&p.ID,
			&p.NamaMitra,
			&p.TanggalKerjasama,
			&p.PKSURLs,
			&p.DokumentasiURLs,
			&p.PelaksanaEvent,
			&p.PICReport,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan kemitraan row", err)
		}
		partnerships = append(partnerships, p)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating kemitraan rows", err)
	}
	return partnerships, nil
}
