// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used for stored passwords (2^12 rounds).
const DefaultCost = 12

// Hasher hashes passwords with a random salt and verifies them.
type Hasher struct {
	cost int
}

// New creates a Hasher with the given bcrypt cost. Costs outside bcrypt's
// accepted range fall back to DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of the plaintext password.
// Every call produces a different value for the same input.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored hash. An empty or malformed
// hash never matches.
func (h *Hasher) Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
