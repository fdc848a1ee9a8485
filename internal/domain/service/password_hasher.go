// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password hashing and
// verification. This abstracts the underlying KDF, keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a fresh random salt and derives the password hash from
	// it. Both values are returned as storable text.
	Hash(password string) (hash string, salt string, err error)

	// HashWithSalt deterministically recomputes the hash for a password and a
	// previously stored salt.
	HashWithSalt(password, salt string) string

	// Check reports whether the password, combined with the stored salt,
	// reproduces the stored hash.
	Check(password, salt, hash string) bool
}
