package ports

// PasswordHasher creates and verifies one-way password hashes. Both calls
// may be slow.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
