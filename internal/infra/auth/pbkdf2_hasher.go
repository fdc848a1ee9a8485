// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"studyhub/internal/domain/service"
)

// PBKDF2 parameters for stored credentials. Changing any of these would
// invalidate every existing hash, so they are fixed constants rather than
// configuration.
const (
	saltBytes  = 16
	iterations = 10000
	keyLength  = 64
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface
// using PBKDF2 with SHA-512 and a per-credential random salt.
type pbkdf2Hasher struct{}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher() service.PasswordHasher {
	return &pbkdf2Hasher{}
}

// Hash generates a fresh random salt and derives the stored hash from it.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}

	salt := hex.EncodeToString(raw)

	return h.HashWithSalt(password, salt), salt, nil
}

// HashWithSalt recomputes the hash for a password and a stored salt. The salt
// is mixed in as its hex text form, matching how it was stored at signup.
func (h *pbkdf2Hasher) HashWithSalt(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha512.New)

	return base64.StdEncoding.EncodeToString(key)
}

// Check compares the recomputed hash against the stored one in constant time.
func (h *pbkdf2Hasher) Check(password, salt, hash string) bool {
	computed := h.HashWithSalt(password, salt)

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
