// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plaintext password.
	HashPassword(password string) (string, error)

	// ComparePassword checks a plaintext password against a stored hash.
	ComparePassword(hashedPassword, password string) error
}
