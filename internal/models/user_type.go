package models

// Seeded user type codes
const (
	UserTypeUnregistered  = "UNR"
	UserTypeRegistered    = "REG"
	UserTypeAdministrator = "ADMIN"
)

// UserType represents a row of the user_type table
type UserType struct {
	Code        string `json:"code" db:"code"`                 // Primary key
	DisplayName string `json:"display_name" db:"display_name"` // Human readable name
	IsDefault   bool   `json:"is_default" db:"is_default"`     // At most one type is the default
}
