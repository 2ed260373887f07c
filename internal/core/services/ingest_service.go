package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/utils/format"
)

// maxLedgerColumns caps how many cells of a CSV row are considered. Bank
// exports occasionally carry trailing junk columns past the ledger fields.
const maxLedgerColumns = 8

// IngestService parses uploaded ledger CSV files and inserts the rows as
// pending donations.
type IngestService struct {
	donationRepo portsrepo.DonationRepository
}

// NewIngestService creates a new IngestService.
func NewIngestService(donationRepo portsrepo.DonationRepository) *IngestService {
	return &IngestService{donationRepo: donationRepo}
}

var _ portssvc.IngestSvcFacade = (*IngestService)(nil)

// IngestCSV reads the whole file, maps each data row to a donation and saves
// the batch. Malformed rows are skipped; the call fails only when the file is
// empty, not CSV, or yields zero usable rows.
func (s *IngestService) IngestCSV(ctx context.Context, file io.Reader) (int, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse CSV: %v", apperrors.ErrValidation, err)
	}
	if len(records) == 0 {
		return 0, apperrors.ErrEmptyFile
	}

	dateIdx := columnIndex(records[0], "Date")
	descIdx := columnIndex(records[0], "Description")
	amountIdx := columnIndex(records[0], "Amount")

	donations := make([]domain.Donation, 0, len(records)-1)
	for rowNum, row := range records[1:] {
		row = trimRow(row)
		if len(row) == 0 {
			continue
		}

		d := buildDonation(row, dateIdx, descIdx, amountIdx)
		if isEmptyDonation(d) {
			continue
		}
		d.RowIndex = rowNum + 1
		donations = append(donations, d)
	}

	if len(donations) == 0 {
		return 0, fmt.Errorf("%w: no valid data rows found in CSV", apperrors.ErrValidation)
	}

	if err := s.donationRepo.SaveDonations(ctx, donations); err != nil {
		return 0, err
	}
	return len(donations), nil
}

// columnIndex finds a header column by exact name, -1 when absent.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// trimRow caps the row width and drops trailing empty cells.
func trimRow(row []string) []string {
	if len(row) > maxLedgerColumns {
		row = row[:maxLedgerColumns]
	}
	for len(row) > 0 && row[len(row)-1] == "" {
		row = row[:len(row)-1]
	}
	return row
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// buildDonation maps one CSV row to a pending donation. A missing or empty
// Date column falls back to the first cell; unparsable dates and amounts keep
// the verbatim cell text.
func buildDonation(row []string, dateIdx, descIdx, amountIdx int) domain.Donation {
	d := domain.Donation{Status: domain.DonationPending}

	rawDate := cellAt(row, dateIdx)
	if rawDate == "" && len(row) > 0 {
		rawDate = row[0]
	}
	if t, ok := format.ParseRawDate(rawDate); ok {
		d.OccurredAt = &t
	} else {
		d.RawDate = rawDate
	}

	if desc := cellAt(row, descIdx); desc != "" {
		d.Description, d.DonorName = format.ExtractDescAndDonor(desc)
	}

	if rawAmount := cellAt(row, amountIdx); rawAmount != "" {
		if n, ok := format.ParseRawAmount(rawAmount); ok {
			d.Amount = &n
		} else {
			d.RawAmount = rawAmount
		}
	}

	return d
}

func isEmptyDonation(d domain.Donation) bool {
	return d.OccurredAt == nil && d.RawDate == "" &&
		d.Amount == nil && d.RawAmount == "" &&
		d.DonorName == "" && d.Description == ""
}
