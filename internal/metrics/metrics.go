package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Status label values.
const (
	StatusSuccess  = "success"
	StatusInvalid  = "invalid"
	StatusConflict = "conflict"
	StatusInactive = "inactive"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// Registrations counts registration attempts by outcome.
var Registrations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "identity_registrations_total",
		Help: "Total number of user registration attempts",
	},
	[]string{"status"},
)

// Logins counts login attempts by outcome.
var Logins = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "identity_logins_total",
		Help: "Total number of login attempts",
	},
	[]string{"status"},
)

// TokensIssued counts minted access tokens by token type.
var TokensIssued = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "identity_tokens_issued_total",
		Help: "Total number of access tokens issued",
	},
	[]string{"type"},
)

// UserDeletions counts cascade deletions by outcome.
var UserDeletions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "identity_user_deletions_total",
		Help: "Total number of user deletions",
	},
	[]string{"status"},
)

// RegisterMetrics registers the identity metrics with the given registry.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Registrations, Logins, TokensIssued, UserDeletions)
}

func RecordRegistration(status string) {
	Registrations.WithLabelValues(status).Inc()
}

func RecordLogin(status string) {
	Logins.WithLabelValues(status).Inc()
}

func RecordTokenIssued(typeCode string) {
	TokensIssued.WithLabelValues(typeCode).Inc()
}

func RecordUserDeletion(status string) {
	UserDeletions.WithLabelValues(status).Inc()
}
