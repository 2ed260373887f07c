package dto

// UploadCSVResponse acknowledges a processed ledger file.
type UploadCSVResponse struct {
	Message      string `json:"message"`
	RowsInserted int    `json:"rowsInserted"`
}

// ErrorResponse is the generic error payload: a stable message plus the
// underlying details passed through from the backend.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
