package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
)

// PgxEventRepository persists logged fundraising events.
type PgxEventRepository struct {
	BaseRepository
}

// NewPgxEventRepository creates a new repository for event data.
func NewPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepository {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepository = (*PgxEventRepository)(nil)

// SaveEvent inserts one event record.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.EventRecord) error {
	query := `
		INSERT INTO events (
			nama_event, lokasi, tanggal_pelaksanaan, dokumentasi_urls,
			peserta, pelaksana_event, pic_report, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.Pool.Exec(ctx, query,
		event.NamaEvent,
		event.Lokasi,
		event.TanggalPelaksanaan,
		event.DokumentasiURLs,
		event.Peserta,
		event.PelaksanaEvent,
		event.PICReport,
		createdAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert event", err)
	}
	return nil
}

// ListEvents returns all events, newest first.
func (r *PgxEventRepository) ListEvents(ctx context.Context) ([]domain.EventRecord, error) {
	query := `
		SELECT id, nama_event, lokasi, tanggal_pelaksanaan, dokumentasi_urls,
		       peserta, pelaksana_event, pic_report, created_at
		FROM events
		ORDER BY created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query events", err)
	}
	defer rows.Close()

	events := []domain.EventRecord{}
	for rows.Next() {
		var e domain.EventRecord
		err := rows.Scan(
			&e.ID,
			&e.NamaEvent,
			&e.Lokasi,
			&e.TanggalPelaksanaan,
			&e.DokumentasiURLs,
			&e.Peserta,
			&e.PelaksanaEvent,
			&e.PICReport,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan event row", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating event rows", err)
	}
	return events, nil
}
