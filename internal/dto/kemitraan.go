package dto

import (
	"time"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
)

// SubmitKemitraanRequest holds the text fields of the partnership form.
type SubmitKemitraanRequest struct {
	NamaMitra        string `form:"nama_mitra" binding:"required"`
	TanggalKerjasama string `form:"tanggal_kerjasama"`
	PelaksanaEvent   string `form:"pelaksana_event"`
	PICReport        string `form:"pic_report"`
}

// KemitraanResponse is one partnership row as served by all-kemitraan-data.
type KemitraanResponse struct {
	Timestamp           time.Time `json:"timestamp"`
	NamaMitra           string    `json:"nama_mitra"`
	TanggalKerjasama    string    `json:"tanggal_kerjasama"`
	DokumenPKS          string    `json:"dokumen_pks"`
	DokumentasiKegiatan string    `json:"dokumentasi_kegiatan"`
	PelaksanaEvent      string    `json:"pelaksana_event"`
	PICReport           string    `json:"pic_report"`
}

// ToKemitraanResponses converts partnership records to their wire shape.
func ToKemitraanResponses(partnerships []domain.Partnership) []KemitraanResponse {
	res := make([]KemitraanResponse, len(partnerships))
	for i, p := range partnerships {
		pks := p.PKSURLs
		if pks == "" {
			pks = domain.EmptyAttachments
		}
		dok := p.DokumentasiURLs
		if dok == "" {
			dok = domain.EmptyAttachments
		}
		res[i] = KemitraanResponse{
			Timestamp:           p.CreatedAt,
			NamaMitra:           p.NamaMitra,
			TanggalKerjasama:    p.TanggalKerjasama,
			DokumenPKS:          pks,
			DokumentasiKegiatan: dok,
			PelaksanaEvent:      p.PelaksanaEvent,
			PICReport:           p.PICReport,
		}
	}
	return res
}
