package dto

// LoginRequest carries the credentials plus the realm selector ("validasi"
// or "upload"; defaults to validasi).
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Type     string `json:"type"`
}

// LogoutRequest selects which realm's session cookie to clear.
type LogoutRequest struct {
	Type string `json:"type"`
}

// AuthStatusResponse answers the session check.
type AuthStatusResponse struct {
	Authenticated bool `json:"authenticated"`
}

// SimpleResultResponse is the generic {success, message} acknowledgement.
type SimpleResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
