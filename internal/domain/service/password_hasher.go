// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying digest algorithm, keeping the domain pure.
type PasswordHasher interface {
	// Encode returns the digest of a plaintext password.
	Encode(password string) string

	// Matches reports whether the plaintext password produces the given digest.
	Matches(password, digest string) bool
}
