// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrMalformedHash is returned by Check when the stored digest cannot be parsed.
var ErrMalformedHash = errors.New("malformed password hash")

// ErrPasswordTooLong is returned by Hash when the password exceeds what the algorithm accepts.
var ErrPasswordTooLong = errors.New("password too long")

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted, self-describing digest from a plaintext password.
	// Passwords over the algorithm's limit return ErrPasswordTooLong.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a digest in constant time.
	// A mismatch returns (false, nil); a malformed digest returns ErrMalformedHash.
	Check(password, hash string) (bool, error)
}
