package services

import (
	"context"
	"time"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/dto"
)

// KemitraanService logs partnership records. PKS contracts and activity
// documentation live in separate buckets.
type KemitraanService struct {
	partnershipRepo portsrepo.PartnershipRepository
	fileStore       portsrepo.FileStore
	pksBucket       string
	dokBucket       string
}

// NewKemitraanService creates a new KemitraanService.
func NewKemitraanService(partnershipRepo portsrepo.PartnershipRepository, fileStore portsrepo.FileStore, pksBucket, dokBucket string) *KemitraanService {
	return &KemitraanService{
		partnershipRepo: partnershipRepo,
		fileStore:       fileStore,
		pksBucket:       pksBucket,
		dokBucket:       dokBucket,
	}
}

var _ portssvc.KemitraanSvcFacade = (*KemitraanService)(nil)

// SubmitKemitraan uploads the PKS and documentation files best-effort, then
// stores the partnership record referencing the successful uploads. The
// returned manifest covers both file groups; Field tells them apart.
func (s *KemitraanService) SubmitKemitraan(ctx context.Context, req dto.SubmitKemitraanRequest, pksFiles, dokFiles []dto.UploadedFile) ([]domain.AttachmentResult, error) {
	pksResults := uploadAttachments(ctx, s.fileStore, s.pksBucket, pksFiles)
	dokResults := uploadAttachments(ctx, s.fileStore, s.dokBucket, dokFiles)

	partnership := domain.Partnership{
		NamaMitra:        req.NamaMitra,
		TanggalKerjasama: req.TanggalKerjasama,
		PKSURLs:          domain.JoinURLs(domain.URLs(pksResults)),
		DokumentasiURLs:  domain.JoinURLs(domain.URLs(dokResults)),
		PelaksanaEvent:   req.PelaksanaEvent,
		PICReport:        req.PICReport,
		CreatedAt:        time.Now(),
	}

	results := append(pksResults, dokResults...)
	if err := s.partnershipRepo.SavePartnership(ctx, partnership); err != nil {
		return results, err
	}
	return results, nil
}

// ListPartnerships returns all partnership records, newest first.
func (s *KemitraanService) ListPartnerships(ctx context.Context) ([]domain.Partnership, error) {
	partnerships, err := s.partnershipRepo.ListPartnerships(ctx)
	if err != nil {
		return nil, err
	}
	if partnerships == nil {
		partnerships = []domain.Partnership{}
	}
	return partnerships, nil
}
