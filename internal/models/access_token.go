package models

import "time"

// expiredBackdate is how far into the past expires_at is moved when a token is revoked.
const expiredBackdate = 1000 * time.Second

// AccessToken represents a row of the access_token table
type AccessToken struct {
	ID        int64      `json:"id" db:"id"`                 // Primary key
	TypeCode  string     `json:"type_code" db:"type_code"`   // References access_token_type.code
	UserID    int64      `json:"user_id" db:"user_id"`       // Owner, references users.id
	Token     string     `json:"token" db:"token"`           // URL-safe random token, unique
	CreatedAt time.Time  `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"` // Last update timestamp
	ExpiresAt *time.Time `json:"expires_at" db:"expires_at"` // Expiration timestamp
}

// IsExpired reports whether the token expired before now.
func (t *AccessToken) IsExpired() bool {
	return t.IsExpiredAt(time.Now())
}

// IsExpiredAt reports whether the token expired before the given instant.
func (t *AccessToken) IsExpiredAt(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}

// SetExpired revokes the token by moving its expiration into the past.
// Passing false leaves the token untouched.
func (t *AccessToken) SetExpired(expired bool) {
	if !expired {
		return
	}
	at := time.Now().Add(-expiredBackdate)
	t.ExpiresAt = &at
}
