// Package vault reads and writes the encrypted vault file.
//
// On-disk format, fixed for all vaults: nonce (12 bytes) ‖ AES-256-GCM
// ciphertext ‖ tag (16 bytes), one blob per file. The plaintext inside the
// blob is a JSON array of [models.VaultRecord] in insertion order. Every
// save rewrites the whole file through an atomic replace; there is no
// append path and no format versioning.
package vault

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Codec serializes vault records and encrypts them through a
// [crypto.KeyChainService]. The key is borrowed for the duration of one
// call and never retained.
type Codec struct {
	keychain crypto.KeyChainService
}

// NewCodec constructs a [Codec] on top of keychain.
func NewCodec(keychain crypto.KeyChainService) *Codec {
	return &Codec{keychain: keychain}
}

// Save serializes records, encrypts them with key, and replaces the vault
// file at path. The blob is first written to a uniquely named temporary
// file next to path and then renamed into place, so a failure at any point
// leaves the previous vault file untouched — a half-written file can never
// be mistaken for a valid vault.
//
// Returns a wrapped [ErrVaultWrite] on any I/O failure.
func (c *Codec) Save(records []models.VaultRecord, key []byte, path string) error {
	plaintext, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	blob, err := c.keychain.Seal(plaintext, key)
	if err != nil {
		return fmt.Errorf("encrypt vault: %w", err)
	}

	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.NewString())
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrVaultWrite, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrVaultWrite, err)
	}

	return nil
}

// Load reads the vault file at path, decrypts it with key, and returns the
// records in their stored order.
//
// Returns [ErrVaultNotFound] if path does not exist,
// [crypto.ErrDecryptionFailed] if the authentication tag does not verify
// (wrong key or tampered file), and [ErrVaultCorrupt] if the decrypted
// bytes do not parse as a well-formed record list. A failed load never
// degrades to an empty vault: masking tampering behind "no records" would
// defeat the integrity check.
func (c *Codec) Load(key []byte, path string) ([]models.VaultRecord, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, path)
		}
		return nil, fmt.Errorf("read vault file: %w", err)
	}

	plaintext, err := c.keychain.Open(blob, key)
	if err != nil {
		return nil, err
	}

	var records []models.VaultRecord
	if err := json.Unmarshal(plaintext, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVaultCorrupt, err)
	}

	if err := checkWellFormed(records); err != nil {
		return nil, err
	}

	return records, nil
}

// AddRecord appends rec to records and returns the extended list. It is a
// pure in-memory operation; persisting the result is a separate Save call
// made by the caller.
//
// Returns [ErrDuplicateLabel] if a record with the same label already
// exists.
func AddRecord(records []models.VaultRecord, rec models.VaultRecord) ([]models.VaultRecord, error) {
	for _, existing := range records {
		if existing.Label == rec.Label {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, rec.Label)
		}
	}
	return append(records, rec), nil
}

// checkWellFormed rejects decrypted payloads that parsed as JSON but break
// the record invariants. Such a payload can only come from a foreign or
// hand-edited vault: Save never produces one.
func checkWellFormed(records []models.VaultRecord) error {
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.Label == "" {
			return fmt.Errorf("%w: record with empty label", ErrVaultCorrupt)
		}
		if seen[rec.Label] {
			return fmt.Errorf("%w: duplicate label %q", ErrVaultCorrupt, rec.Label)
		}
		seen[rec.Label] = true
	}
	return nil
}
