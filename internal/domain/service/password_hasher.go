// Package service holds the ports for stateless domain helpers that the use cases
// depend on: hashing, tokens, push delivery, event publishing and share codes.
package service

// PasswordHasher hashes and verifies account passwords.
// Hashes are self-describing, so a stored hash can be checked against the current cost.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with weaker settings than the current ones.
	NeedsRehash(hash string) bool
}
