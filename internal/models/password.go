package models

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// New password
	// required: true
	// example: C0nt3nta
	Password string `json:"password"`
}

// MessageResponse represents a plain success response
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Password changed successfully
	Message string `json:"message"`
}
