package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// required: true
	// example: superman
	Login string `json:"login"`

	// Password
	// required: true
	// example: TeSt12345
	Password string `json:"password"`

	// Also issue a REMEMBER access token
	// example: false
	Remember bool `json:"remember"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`

	// REMEMBER access token, present when requested
	RememberToken string `json:"remember_token,omitempty"`

	// Authenticated user
	User UserPublic `json:"user"`
}
