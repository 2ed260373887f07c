package services

import (
	"context"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
	"github.com/rumahamal/ref26-backend/internal/dto"
)

// EventSvcFacade covers event submission and listing.
type EventSvcFacade interface {
	// SubmitEvent uploads the documentation files best-effort and stores the
	// event record. The returned manifest holds one entry per file, failed
	// uploads included.
	SubmitEvent(ctx context.Context, req dto.SubmitEventRequest, files []dto.UploadedFile) ([]domain.AttachmentResult, error)
	ListEvents(ctx context.Context) ([]domain.EventRecord, error)
}

// KemitraanSvcFacade covers partnership submission and listing.
type KemitraanSvcFacade interface {
	SubmitKemitraan(ctx context.Context, req dto.SubmitKemitraanRequest, pksFiles, dokFiles []dto.UploadedFile) ([]domain.AttachmentResult, error)
	ListPartnerships(ctx context.Context) ([]domain.Partnership, error)
}
