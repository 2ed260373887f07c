package domain

import "time"

// EventRecord is one logged fundraising event with its documentation
// attachment URLs. Records are immutable once submitted.
type EventRecord struct {
	ID                 int64
	NamaEvent          string
	Lokasi             string
	TanggalPelaksanaan string
	DokumentasiURLs    string // joined by AttachmentSeparator, "-" when empty
	Peserta            string
	PelaksanaEvent     string
	PICReport          string
	CreatedAt          time.Time
}

// Partnership is one logged kemitraan (partnership) record with its PKS
// contract and documentation attachment URLs.
type Partnership struct {
	ID               int64
	NamaMitra        string
	TanggalKerjasama string
	PKSURLs          string
	DokumentasiURLs  string
	PelaksanaEvent   string
	PICReport        string
	CreatedAt        time.Time
}
