// Package service defines interfaces for stateless domain logic.
package service

// PasswordHasher turns plaintext passwords into salted, adaptive hashes and checks them.
// Only hashes are ever persisted.
type PasswordHasher interface {
	// Hash returns a freshly salted hash of password. It fails for passwords the
	// algorithm cannot represent, such as bcrypt input longer than 72 bytes.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
