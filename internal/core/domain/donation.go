package domain

import (
	"time"

	"github.com/rumahamal/ref26-backend/internal/utils/format"
)

// DonationStatus is the explicit lifecycle state of a ledger row.
type DonationStatus string

const (
	DonationPending   DonationStatus = "PENDING"
	DonationValidated DonationStatus = "VALIDATED"
	DonationRejected  DonationStatus = "REJECTED"
)

// StatusLabel returns the Indonesian label used by the frontend tables.
func (s DonationStatus) Label() string {
	switch s {
	case DonationValidated:
		return "Tervalidasi"
	case DonationRejected:
		return "Ditolak"
	default:
		return "Pending"
	}
}

// Donation is one row of the donation ledger (the finance table).
//
// Dates and amounts are stored structurally; OccurredAt and Amount are nil
// when the uploaded CSV cell could not be parsed, in which case the verbatim
// cell is kept in RawDate / RawAmount and passed through on display.
type Donation struct {
	ID          int64
	RowIndex    int
	OccurredAt  *time.Time
	RawDate     string
	Amount      *int64
	RawAmount   string
	DonorName   string
	Description string

	Status DonationStatus
	ValidationFields

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DonationDetails are the editable row fields of a ledger entry.
type DonationDetails struct {
	OccurredAt  *time.Time
	RawDate     string
	Amount      *int64
	RawAmount   string
	DonorName   string
	Description string
}

// ValidationFields are the classification fields a validator fills in.
type ValidationFields struct {
	ValidatorName    string
	UniqueCode       string
	Campaign         string
	DonorType        string
	DonationType     string
	Category         string
	ExecutingProgram string
	Method           string
}

// DisplayDate renders the ledger's canonical date string, falling back to the
// raw uploaded value when no structured timestamp is available.
func (d Donation) DisplayDate() string {
	if d.OccurredAt != nil {
		return format.FormatDateWithDay(*d.OccurredAt)
	}
	return d.RawDate
}

// DisplayAmount renders the canonical "Rp X.XXX.XXX" string, falling back to
// the raw uploaded value.
func (d Donation) DisplayAmount() string {
	if d.Amount != nil {
		return format.FormatAmount(*d.Amount)
	}
	return d.RawAmount
}

// AmountValue returns the structured amount, treating unparsed amounts as 0.
func (d Donation) AmountValue() int64 {
	if d.Amount == nil {
		return 0
	}
	return *d.Amount
}
