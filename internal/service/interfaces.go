package service

import "github.com/MKhiriev/go-pass-vault/models"

// GeneratorService produces random passwords from a character-class policy.
type GeneratorService interface {
	// Generate returns a new random password satisfying policy.
	Generate(policy models.PasswordPolicy) (string, error)
	// DefaultPolicy returns the policy used when the user has not picked
	// any options, with the configured default length applied.
	DefaultPolicy() models.PasswordPolicy
}

// StrengthService estimates how resistant a password is to guessing.
type StrengthService interface {
	Evaluate(password string) models.StrengthReport
}

// VaultService manages the encrypted vault and its key file. All methods
// are safe for concurrent use.
type VaultService interface {
	// EnsureKey loads the encryption key from the key file, creating a
	// fresh key on first run. Subsequent calls reuse the cached key.
	EnsureKey() error

	// List returns all stored records in insertion order. A vault that
	// does not exist yet reads as empty.
	List() ([]models.VaultRecord, error)

	// Add appends a record and persists the vault.
	Add(record models.VaultRecord) error

	// Get returns the record with the given label.
	Get(label string) (models.VaultRecord, error)
}
