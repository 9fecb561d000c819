package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full name
	// example: Clark Kent
	Fullname string `json:"fullname"`

	// Username, alphanumeric, at least 5 characters
	// required: true
	// example: superman
	Username string `json:"username"`

	// Email
	// required: true
	// example: clark.kent@gmail.com
	Email string `json:"email"`

	// Password, at least 8 ASCII characters with a digit, a lowercase and an uppercase letter
	// required: true
	// example: TeSt12345
	Password string `json:"password"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Username or email already exists
	Error string `json:"error"`
}
