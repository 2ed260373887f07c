package repositories

import (
	"context"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
)

// DonationRepository defines persistence operations for the donation ledger
// (finance table).
type DonationRepository interface {
	// SaveDonations inserts a batch of ingested rows in a single write.
	SaveDonations(ctx context.Context, donations []domain.Donation) error
	// ListDonations returns the full ledger.
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	// UpdateDonationDetails overwrites the editable row fields (date, donor,
	// description, amount) of one ledger row.
	UpdateDonationDetails(ctx context.Context, id int64, details domain.DonationDetails) error
	// UpdateDonationValidation sets the row status together with its
	// classification fields.
	UpdateDonationValidation(ctx context.Context, id int64, status domain.DonationStatus, fields domain.ValidationFields) error
}
