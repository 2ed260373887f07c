package dto

import (
	"sort"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
)

// ValidationBlock mirrors the nested validation object of the legacy
// all-finance-data payload.
type ValidationBlock struct {
	NamaValidator    string `json:"nama_validator"`
	KodeUnik         string `json:"kode_unik"`
	Campaign         string `json:"campaign"`
	TipeDonatur      string `json:"tipe_donatur"`
	JenisDonasi      string `json:"jenis_donasi"`
	Kategori         string `json:"kategori"`
	PelaksanaProgram string `json:"pelaksana_program"`
	Metode           string `json:"metode"`
}

// FinanceRowResponse is one ledger row as served to the frontend tables.
// Date and amount are display-formatted strings derived at this boundary.
type FinanceRowResponse struct {
	ID          int64           `json:"id"`
	RowIndex    int             `json:"row_index"`
	Date        string          `json:"date"`
	NamaDonatur string          `json:"nama_donatur"`
	Keterangan  string          `json:"keterangan"`
	Amount      string          `json:"amount"`
	Status      string          `json:"status"`
	Validation  ValidationBlock `json:"validation"`
}

// ToFinanceRowResponse converts a ledger row to its wire shape.
func ToFinanceRowResponse(d domain.Donation) FinanceRowResponse {
	return FinanceRowResponse{
		ID:          d.ID,
		RowIndex:    d.RowIndex,
		Date:        d.DisplayDate(),
		NamaDonatur: d.DonorName,
		Keterangan:  d.Description,
		Amount:      d.DisplayAmount(),
		Status:      d.Status.Label(),
		Validation: ValidationBlock{
			NamaValidator:    d.ValidatorName,
			KodeUnik:         d.UniqueCode,
			Campaign:         d.Campaign,
			TipeDonatur:      d.DonorType,
			JenisDonasi:      d.DonationType,
			Kategori:         d.Category,
			PelaksanaProgram: d.ExecutingProgram,
			Metode:           d.Method,
		},
	}
}

// ToFinanceRowResponses converts the full ledger, sorted newest first with
// undated rows at the end.
func ToFinanceRowResponses(donations []domain.Donation) []FinanceRowResponse {
	sorted := make([]domain.Donation, len(donations))
	copy(sorted, donations)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].OccurredAt, sorted[j].OccurredAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	res := make([]FinanceRowResponse, len(sorted))
	for i, d := range sorted {
		res[i] = ToFinanceRowResponse(d)
	}
	return res
}

// EditTransactionRequest edits the row fields of one ledger entry. Date and
// amount arrive in display format and are parsed back at the boundary.
type EditTransactionRequest struct {
	ID          int64  `json:"id"`
	RowIndex    int64  `json:"row_index"`
	Date        string `json:"date"`
	NamaDonatur string `json:"nama_donatur"`
	Keterangan  string `json:"keterangan"`
	Amount      string `json:"amount"`
}

// RecordID resolves the target row: the frontend sends id for new rows and
// row_index for legacy ones.
func (r EditTransactionRequest) RecordID() int64 {
	if r.ID != 0 {
		return r.ID
	}
	return r.RowIndex
}

// SubmitValidationRequest applies a validator's classification to one row.
type SubmitValidationRequest struct {
	ID               int64  `json:"id"`
	RowIndex         int64  `json:"row_index"`
	NamaValidator    string `json:"nama_validator"`
	KodeUnik         string `json:"kode_unik"`
	Campaign         string `json:"campaign"`
	TipeDonatur      string `json:"tipe_donatur"`
	JenisDonasi      string `json:"jenis_donasi"`
	Kategori         string `json:"kategori"`
	PelaksanaProgram string `json:"pelaksana_program"`
	Metode           string `json:"metode"`
}

// RecordID resolves the target row.
func (r SubmitValidationRequest) RecordID() int64 {
	if r.ID != 0 {
		return r.ID
	}
	return r.RowIndex
}

// Fields converts the request into domain classification fields.
func (r SubmitValidationRequest) Fields() domain.ValidationFields {
	return domain.ValidationFields{
		ValidatorName:    r.NamaValidator,
		UniqueCode:       r.KodeUnik,
		Campaign:         r.Campaign,
		DonorType:        r.TipeDonatur,
		DonationType:     r.JenisDonasi,
		Category:         r.Kategori,
		ExecutingProgram: r.PelaksanaProgram,
		Method:           r.Metode,
	}
}

// RejectTransactionRequest rejects a row, or with Undo returns it to Pending.
type RejectTransactionRequest struct {
	ID   int64 `json:"id"`
	Undo bool  `json:"undo"`
}
