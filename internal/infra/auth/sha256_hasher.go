// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"usermgr/internal/domain/service"
)

// sha256Hasher is a concrete implementation of the PasswordHasher interface using
// an unsalted SHA-256 digest rendered as lowercase hex.
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Encode returns the 64 character hex digest of the UTF-8 bytes of password.
func (h *sha256Hasher) Encode(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Matches compares a plaintext password with a stored digest.
func (h *sha256Hasher) Matches(password, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(h.Encode(password)), []byte(digest)) == 1
}
