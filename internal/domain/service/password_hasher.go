// Package service defines interfaces for domain services, which encapsulate
// logic that doesn't naturally fit within a single entity.
package service

// PasswordHasher defines the contract for hashing and verifying passwords.
type PasswordHasher interface {
	// Hash generates a hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
