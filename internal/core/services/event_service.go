package services

import (
	"context"
	"time"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/dto"
)

// EventService logs fundraising events with their documentation attachments.
type EventService struct {
	eventRepo portsrepo.EventRepository
	fileStore portsrepo.FileStore
	bucket    string
}

// NewEventService creates a new EventService writing attachments to bucket.
func NewEventService(eventRepo portsrepo.EventRepository, fileStore portsrepo.FileStore, bucket string) *EventService {
	return &EventService{eventRepo: eventRepo, fileStore: fileStore, bucket: bucket}
}

var _ portssvc.EventSvcFacade = (*EventService)(nil)

// SubmitEvent uploads the documentation files best-effort, then stores the
// event record referencing the successful uploads. The returned manifest
// carries one entry per file so callers can see which attachments failed.
func (s *EventService) SubmitEvent(ctx context.Context, req dto.SubmitEventRequest, files []dto.UploadedFile) ([]domain.AttachmentResult, error) {
	results := uploadAttachments(ctx, s.fileStore, s.bucket, files)

	event := domain.EventRecord{
		NamaEvent:          req.NamaEvent,
		Lokasi:             req.Lokasi,
		TanggalPelaksanaan: req.TanggalPelaksanaan,
		DokumentasiURLs:    domain.JoinURLs(domain.URLs(results)),
		Peserta:            req.Peserta,
		PelaksanaEvent:     req.PelaksanaEvent,
		PICReport:          req.PICReport,
		CreatedAt:          time.Now(),
	}
	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return results, err
	}
	return results, nil
}

// ListEvents returns all logged events, newest first.
func (s *EventService) ListEvents(ctx context.Context) ([]domain.EventRecord, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.EventRecord{}
	}
	return events, nil
}
