package model

// PasswordHasher is a one-way hash and verify for plaintext credentials.
// Verify reports a mismatch as false, not as an error.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
