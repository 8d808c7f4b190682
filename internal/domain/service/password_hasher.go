// Package service defines ports for domain logic implemented by infrastructure,
// such as hashing, token signing, event publishing and account notification.
package service

// PasswordHasher hashes account passwords and verifies login attempts.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
