package dto

import (
	"time"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
)

// UploadedFile is one attachment read out of a multipart form.
type UploadedFile struct {
	Field       string
	FileName    string
	ContentType string
	Content     []byte
}

// SubmitEventRequest holds the text fields of the event submission form.
type SubmitEventRequest struct {
	NamaEvent          string `form:"nama_event" binding:"required"`
	Lokasi             string `form:"lokasi"`
	TanggalPelaksanaan string `form:"tanggal_pelaksanaan"`
	Peserta            string `form:"peserta"`
	PelaksanaEvent     string `form:"pelaksana_event"`
	PICReport          string `form:"pic_report"`
}

// EventResponse is one event row as served by all-event-data.
type EventResponse struct {
	Timestamp          time.Time `json:"timestamp"`
	NamaEvent          string    `json:"nama_event"`
	Lokasi             string    `json:"lokasi"`
	TanggalPelaksanaan string    `json:"tanggal_pelaksanaan"`
	Dokumentasi        string    `json:"dokumentasi"`
	Peserta            string    `json:"peserta"`
	PelaksanaEvent     string    `json:"pelaksana_event"`
	PICReport          string    `json:"pic_report"`
}

// ToEventResponses converts event records to their wire shape.
func ToEventResponses(events []domain.EventRecord) []EventResponse {
	res := make([]EventResponse, len(events))
	for i, e := range events {
		dok := e.DokumentasiURLs
		if dok == "" {
			dok = domain.EmptyAttachments
		}
		res[i] = EventResponse{
			Timestamp:          e.CreatedAt,
			NamaEvent:          e.NamaEvent,
			Lokasi:             e.Lokasi,
			TanggalPelaksanaan: e.TanggalPelaksanaan,
			Dokumentasi:        dok,
			Peserta:            e.Peserta,
			PelaksanaEvent:     e.PelaksanaEvent,
			PICReport:          e.PICReport,
		}
	}
	return res
}

// SubmitRecordResponse acknowledges an event/kemitraan submission together
// with the per-file upload manifest, so the caller can see which attachments
// were dropped instead of failures disappearing into the log.
type SubmitRecordResponse struct {
	Message     string                    `json:"message"`
	Success     bool                      `json:"success"`
	Attachments []domain.AttachmentResult `json:"attachments,omitempty"`
}
