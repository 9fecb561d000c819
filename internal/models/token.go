package models

import "time"

// TokenResponse represents an access token returned to its owner
// swagger:model TokenResponse
type TokenResponse struct {
	// example: API
	Type string `json:"type"`

	// example: 3q2-7wAAAAA...
	Token string `json:"token"`

	ExpiresAt *time.Time `json:"expires_at"`

	// example: false
	Expired bool `json:"expired"`
}

// NewTokenResponse projects an access token onto its response shape.
func NewTokenResponse(t AccessToken) TokenResponse {
	return TokenResponse{
		Type:      t.TypeCode,
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		Expired:   t.IsExpired(),
	}
}
