package models

import "time"

// Network represents a distinct IP address seen for one or more users
type Network struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	IPAddress string    `json:"ip_address" db:"ip_address"` // Address as reported, unique
	IPHash    string    `json:"ip_hash" db:"ip_hash"`       // Normalized textual form of the address
	Active    bool      `json:"active" db:"active"`         // Whether the network is still in use
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserNetworkJoin represents a row of the user_network table
type UserNetworkJoin struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	NetworkID int64     `json:"network_id" db:"network_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
