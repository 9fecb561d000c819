package models

import "time"

// Seeded access token type codes
const (
	TokenTypeAPI      = "API"
	TokenTypeRemember = "REMEMBER"
	TokenTypeReset    = "RESET"
)

// DefaultTokenExpirationInterval is the expiration interval, in seconds, of the seeded token types.
const DefaultTokenExpirationInterval int64 = 3600

// AccessTokenType represents a row of the access_token_type table
type AccessTokenType struct {
	Code               string `json:"code" db:"code"`                               // Primary key
	DisplayName        string `json:"display_name" db:"display_name"`               // Human readable name
	ExpirationInterval int64  `json:"expiration_interval" db:"expiration_interval"` // Token lifetime in seconds
}

// Expiration returns the token lifetime as a duration.
func (t AccessTokenType) Expiration() time.Duration {
	return time.Duration(t.ExpirationInterval) * time.Second
}
