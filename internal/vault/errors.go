package vault

import "errors"

// Sentinel errors returned by the vault codec. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrVaultNotFound is returned by Load when no vault file exists at
	// the given path.
	ErrVaultNotFound = errors.New("vault file not found")

	// ErrVaultWrite is returned by Save when the vault file cannot be
	// written or moved into place. The previous vault file, if any, is
	// left untouched.
	ErrVaultWrite = errors.New("vault write failed")

	// ErrVaultCorrupt is returned by Load when the decrypted payload does
	// not parse as a well-formed record list: broken JSON, a record with
	// an empty label, or two records sharing one label.
	ErrVaultCorrupt = errors.New("vault contents are corrupt")

	// ErrDuplicateLabel is returned by AddRecord when the new record's
	// label already exists in the record list. Labels are case-sensitive.
	ErrDuplicateLabel = errors.New("duplicate label")
)
