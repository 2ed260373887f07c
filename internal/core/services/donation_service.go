package services

import (
	"context"
	"fmt"

	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/dto"
	"github.com/rumahamal/ref26-backend/internal/utils/format"
)

// DonationService covers the ledger read path and the validation desk
// operations (edit, validate, reject).
type DonationService struct {
	donationRepo portsrepo.DonationRepository
}

// NewDonationService creates a new DonationService.
func NewDonationService(donationRepo portsrepo.DonationRepository) *DonationService {
	return &DonationService{donationRepo: donationRepo}
}

var _ portssvc.DonationSvcFacade = (*DonationService)(nil)

// ListDonations returns the full ledger.
func (s *DonationService) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	donations, err := s.donationRepo.ListDonations(ctx)
	if err != nil {
		return nil, err
	}
	if donations == nil {
		donations = []domain.Donation{}
	}
	return donations, nil
}

// EditDonation overwrites the row fields of one ledger entry. The date and
// amount arrive in display format; values that no longer parse are kept
// verbatim so nothing typed by the validator is lost.
func (s *DonationService) EditDonation(ctx context.Context, req dto.EditTransactionRequest) error {
	id := req.RecordID()
	if id == 0 {
		return fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}

	details := domain.DonationDetails{
		DonorName:   req.NamaDonatur,
		Description: req.Keterangan,
	}

	if t, ok := format.ParseFormattedDate(req.Date); ok {
		details.OccurredAt = &t
	} else {
		details.RawDate = req.Date
	}

	if req.Amount != "" {
		if n, ok := format.ParseDisplayAmount(req.Amount); ok {
			details.Amount = &n
		} else {
			details.RawAmount = req.Amount
		}
	}

	return s.donationRepo.UpdateDonationDetails(ctx, id, details)
}

// SubmitValidation applies the classification fields and marks the row
// validated.
func (s *DonationService) SubmitValidation(ctx context.Context, req dto.SubmitValidationRequest) error {
	id := req.RecordID()
	if id == 0 {
		return fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}
	return s.donationRepo.UpdateDonationValidation(ctx, id, domain.DonationValidated, req.Fields())
}

// RejectDonation marks the row rejected and clears its classification. With
// undo the row returns to pending, also with a clean classification, so a
// re-validation starts from scratch.
func (s *DonationService) RejectDonation(ctx context.Context, id int64, undo bool) error {
	if id == 0 {
		return fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
	}
	status := domain.DonationRejected
	if undo {
		status = domain.DonationPending
	}
	return s.donationRepo.UpdateDonationValidation(ctx, id, status, domain.ValidationFields{})
}
