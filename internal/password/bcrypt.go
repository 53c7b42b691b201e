// Package password provides the bcrypt credential hasher.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/clipstream/account-server/internal/model"
)

// Bcrypt implements PasswordHasher with a tunable cost factor. Each hash
// embeds its own random salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher. Costs outside the bcrypt range fall
// back to the library default.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Hash produces a salted one-way hash of the plaintext.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
func (b *Bcrypt) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
