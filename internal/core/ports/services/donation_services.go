package services

import (
	"context"
	"io"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
	"github.com/rumahamal/ref26-backend/internal/dto"
)

// IngestSvcFacade parses an uploaded ledger CSV and inserts the resulting
// rows as a single batch.
type IngestSvcFacade interface {
	// IngestCSV returns the number of rows inserted. It fails the whole
	// batch only when the file is empty, unparsable as CSV, or yields zero
	// valid rows; individual malformed rows are skipped.
	IngestCSV(ctx context.Context, file io.Reader) (int, error)
}

// DonationSvcFacade covers the ledger read and validation operations.
type DonationSvcFacade interface {
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	// EditDonation overwrites the row fields of one entry; date and amount
	// arrive in display format.
	EditDonation(ctx context.Context, req dto.EditTransactionRequest) error
	// SubmitValidation applies the classification fields and marks the row
	// validated.
	SubmitValidation(ctx context.Context, req dto.SubmitValidationRequest) error
	// RejectDonation marks the row rejected and clears its classification;
	// with undo it returns the row to pending.
	RejectDonation(ctx context.Context, id int64, undo bool) error
}

// DashboardSvcFacade computes the reporting dashboard aggregation.
type DashboardSvcFacade interface {
	GetDashboardData(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardData, error)
}

// DropdownSvcFacade serves the validation form dropdown values grouped by
// column display name.
type DropdownSvcFacade interface {
	GetDropdownOptions(ctx context.Context) (map[string][]string, error)
}
