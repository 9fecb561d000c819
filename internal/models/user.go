package models

import "time"

// User represents a row of the users table
type User struct {
	ID              int64      `json:"id" db:"id"`                           // Assigned on persist
	TypeCode        string     `json:"type_code" db:"type_code"`             // References user_type.code
	Username        string     `json:"username" db:"username"`               // Unique, alphanumeric
	Email           string     `json:"email" db:"email"`                     // Unique email address
	PasswordHash    *string    `json:"-" db:"password_hash"`                 // bcrypt hash, nil until first set
	FailedLogins    int        `json:"-" db:"failed_logins"`                 // Consecutive failed logins
	Fullname        string     `json:"fullname" db:"fullname"`               // Display name
	Active          bool       `json:"active" db:"active"`                   // Inactive users cannot log in
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`           // Last update timestamp
	LastLogin       *time.Time `json:"last_login,omitempty" db:"last_login"` // Last successful login
	LastFailedLogin *time.Time `json:"-" db:"last_failed_login"`             // Last failed login
}

// HasPassword reports whether a password hash has been stored for the user.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// UserPublic is the public-safe projection of a User.
// swagger:model UserPublic
type UserPublic struct {
	// example: 1
	ID int64 `json:"id"`

	// example: Clark Kent
	Fullname string `json:"fullname"`

	// example: superman
	Username string `json:"username"`

	// example: clark.kent@gmail.com
	Email string `json:"email"`

	// example: REG
	TypeCode string `json:"type_code"`
}

// ToPublic projects the user onto the fields safe to expose to clients.
func (u User) ToPublic() UserPublic {
	return UserPublic{
		ID:       u.ID,
		Fullname: u.Fullname,
		Username: u.Username,
		Email:    u.Email,
		TypeCode: u.TypeCode,
	}
}
