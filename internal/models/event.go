package models

// Event types published on user and token lifecycle changes.
const (
	EventUserRegistered      = "user.registered"
	EventUserPasswordChanged = "user.password_changed"
	EventUserDeleted         = "user.deleted"
	EventTokenIssued         = "token.issued"
	EventTokenExpired        = "token.expired"
)

// Event represents a lifecycle change, published as a Kafka message.
type Event struct {
	EventID   string `json:"event_id"`         // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`        // Timestamp is the Unix time (seconds) the event happened.
	Type      string `json:"type"`             // Type is one of the Event* constants.
	UserID    int64  `json:"user_id"`          // UserID is the user the event concerns.
	Detail    string `json:"detail,omitempty"` // Detail carries the token type for token events.
}
