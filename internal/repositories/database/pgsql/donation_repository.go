package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
)

// PgxDonationRepository persists the donation ledger in the finance table.
type PgxDonationRepository struct {
	BaseRepository
}

// NewPgxDonationRepository creates a new repository for ledger data.
func NewPgxDonationRepository(pool *pgxpool.Pool) portsrepo.DonationRepository {
	return &PgxDonationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DonationRepository = (*PgxDonationRepository)(nil)

// SaveDonations inserts the ingested rows as one batch inside a transaction,
// so a failing file leaves no partial ledger state behind.
func (r *PgxDonationRepository) SaveDonations(ctx context.Context, donations []domain.Donation) error {
	if len(donations) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO finance (
			row_index, occurred_at, raw_date, amount, raw_amount,
			donor_name, description, status,
			validator_name, unique_code, campaign, donor_type, donation_type,
			category, executing_program, method, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`

	now := time.Now()
	batch := &pgx.Batch{}
	for _, d := range donations {
		batch.Queue(query,
			d.RowIndex,
			d.OccurredAt,
			d.RawDate,
			d.Amount,
			d.RawAmount,
			d.DonorName,
			d.Description,
			string(domain.DonationPending),
			"", "", "", "", "", "", "", "",
			now,
			now,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert donation batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit donation batch", err)
	}
	return nil
}

// ListDonations returns the full ledger.
func (r *PgxDonationRepository) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	query := `
		SELECT id, row_index, occurred_at, raw_date, amount, raw_amount,
		       donor_name, description, status,
		       validator_name, unique_code, campaign, donor_type, donation_type,
		       category, executing_program, method, created_at, updated_at
		FROM finance;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query donations", err)
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		var d domain.Donation
		var status string
		err := rows.Scan(
			&d.ID,
			&d.RowIndex,
			&d.OccurredAt,
			&d.RawDate,
			&d.Amount,
			&d.RawAmount,
			&d.DonorName,
			&d.Description,
			&status,
			&d.ValidatorName,
			&d.UniqueCode,
			&d.Campaign,
			&d.DonorType,
			&d.DonationType,
			&d.Category,
			&d.ExecutingProgram,
			&d.Method,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan donation row", err)
		}
		d.Status = domain.DonationStatus(status)
		donations = append(donations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating donation rows", err)
	}
	return donations, nil
}

// UpdateDonationDetails overwrites the editable row fields of one ledger row.
func (r *PgxDonationRepository) UpdateDonationDetails(ctx context.Context, id int64, details domain.DonationDetails) error {
	query := `
		UPDATE finance
		SET occurred_at = $2,
		    raw_date = $3,
		    amount = $4,
		    raw_amount = $5,
		    donor_name = $6,
		    description = $7,
		    updated_at = $8
		WHERE id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		id,
		details.OccurredAt,
		details.RawDate,
		details.Amount,
		details.RawAmount,
		details.DonorName,
		details.Description,
		time.Now(),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update donation "+strconv.FormatInt(id, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("donation " + strconv.FormatInt(id, 10) + " not found for update")
	}
	return nil
}

// UpdateDonationValidation sets the row status and classification fields.
func (r *PgxDonationRepository) UpdateDonationValidation(ctx context.Context, id int64, status domain.DonationStatus, fields domain.ValidationFields) error {
	query := `
		UPDATE finance
		SET status = $2,
		    validator_name = $3,
		    unique_code = $4,
		    campaign = $5,
		    donor_type = $6,
		    donation_type = $7,
		    category = $8,
		    executing_program = $9,
		    method = $10,
		    updated_at = $11
		WHERE id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		id,
		string(status),
		fields.ValidatorName,
		fields.UniqueCode,
		fields.Campaign,
		fields.DonorType,
		fields.DonationType,
		fields.Category,
		fields.ExecutingProgram,
		fields.Method,
		time.Now(),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update validation for donation "+strconv.FormatInt(id, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("donation " + strconv.FormatInt(id, 10) + " not found for validation update")
	}
	return nil
}
